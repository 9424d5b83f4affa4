/*
 * Copyright 2022 Xiongfa Li.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package bean

import (
	"errors"
	"fmt"
	"reflect"
)

// TypeHandle 可构造类型的句柄，通过无参方式创建新的实例
type TypeHandle interface {
	// 类型标识
	Name() string

	// 创建的实例类型
	Type() reflect.Type

	// 创建一个新的实例
	New() (interface{}, error)
}

// namedType 使用注册时指定的类型标识
type namedType struct {
	TypeHandle
	name string
}

func (t *namedType) Name() string {
	return t.name
}

// Instantiate calls h.New. A panic raised by the constructor and a nil instance are both
// reported as errors.
func Instantiate(h TypeHandle) (o interface{}, err error) {
	if h == nil {
		return nil, errors.New("TypeHandle is nil. ")
	}
	defer func() {
		if r := recover(); r != nil {
			o = nil
			if e, ok := r.(error); ok {
				err = fmt.Errorf("constructor panic: %w", e)
			} else {
				err = fmt.Errorf("constructor panic: %v", r)
			}
		}
	}()

	o, err = h.New()
	if err != nil {
		return nil, err
	}
	if isNil(o) {
		return nil, fmt.Errorf("constructor of %s returned nil", h.Name())
	}
	return o, nil
}

func isNil(o interface{}) bool {
	if o == nil {
		return true
	}
	v := reflect.ValueOf(o)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
