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

var errType = reflect.TypeOf((*error)(nil)).Elem()

// functionType 通过构造方法注册的类型
// 支持：
//  1、func() TYPE
//  2、func() (TYPE, error)
// TYPE必须为指针或者interface
type functionType struct {
	name string
	fn   reflect.Value
	t    reflect.Type
}

func verifyBeanFunction(ft reflect.Type) error {
	if ft.Kind() != reflect.Func {
		return errors.New("Param not function. ")
	}
	if ft.NumIn() != 0 {
		return errors.New("Bean function must not have parameters. ")
	}
	if ft.NumOut() == 0 || ft.NumOut() > 2 {
		return errors.New("Bean function must return TYPE or (TYPE, error). ")
	}
	if ft.NumOut() == 2 && ft.Out(1) != errType {
		return errors.New("Bean function 2nd return value must be error. ")
	}

	rt := ft.Out(0)
	if rt.Kind() != reflect.Ptr && rt.Kind() != reflect.Interface {
		return errors.New("Bean function 1st return value must be pointer or interface. ")
	}
	return nil
}

func newFunctionType(o interface{}) (TypeHandle, error) {
	ft := reflect.TypeOf(o)
	err := verifyBeanFunction(ft)
	if err != nil {
		return nil, err
	}
	fn := reflect.ValueOf(o)
	if fn.IsNil() {
		return nil, errors.New("Bean function is nil. ")
	}
	ot := ft.Out(0)
	name := reflection.GetTypeName(ot)
	if ot.Kind() == reflect.Ptr {
		name = reflection.GetTypeName(ot.Elem())
	}
	return &functionType{
		name: name,
		fn:   fn,
		t:    ot,
	}, nil
}

func (d *functionType) Name() string {
	return d.name
}

func (d *functionType) Type() reflect.Type {
	return d.t
}

func (d *functionType) New() (interface{}, error) {
	out := d.fn.Call(nil)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	v := out[0]
	if !v.IsValid() || ((v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) && v.IsNil()) {
		return nil, nil
	}
	return v.Interface(), nil
}
