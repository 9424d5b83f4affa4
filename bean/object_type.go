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
	"github.com/xfali/neve-factory/reflection"
	"reflect"
)

// objectType 通过指针原型注册的类型，每次New分配一个新的零值对象
type objectType struct {
	name string
	t    reflect.Type
}

func newObjectType(o interface{}) (TypeHandle, error) {
	t := reflect.TypeOf(o)
	if t.Kind() != reflect.Ptr {
		return nil, errors.New("o must be a Pointer but get " + t.String())
	}
	if t.Elem().Kind() == reflect.Ptr {
		return nil, errors.New("o must be a Pointer but get Pointer's Pointer")
	}
	return &objectType{
		name: reflection.GetTypeName(t.Elem()),
		t:    t,
	}, nil
}

func (d *objectType) Name() string {
	return d.name
}

func (d *objectType) Type() reflect.Type {
	return d.t
}

func (d *objectType) New() (interface{}, error) {
	return reflect.New(d.t.Elem()).Interface(), nil
}
