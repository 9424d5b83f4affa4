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
	errors2 "github.com/xfali/neve-factory/errors"
	"github.com/xfali/neve-factory/reflection"
	"reflect"
	"sort"
	"strings"
	"sync"
)

type HandleCreator func(o interface{}) (TypeHandle, error)

var typeHandleCreators = map[reflect.Kind]HandleCreator{
	reflect.Ptr:  newObjectType,
	reflect.Func: newFunctionType,
}

// CreateTypeHandle 根据注册对象的Kind选择创建器
// 默认支持Pointer（原型）、Function（构造方法）
func CreateTypeHandle(o interface{}) (TypeHandle, error) {
	if o == nil {
		return nil, errors.New("Cannot register nil. ")
	}
	t := reflect.TypeOf(o)

	creator, ok := typeHandleCreators[t.Kind()]
	if !ok || creator == nil {
		return nil, errors.New("Cannot handle this type: " + reflection.GetTypeName(t))
	}

	return creator(o)
}

// TypeRegistry 类型标识到无参构造方法的映射表，在程序启动时显式注册
type TypeRegistry struct {
	handles map[string]TypeHandle
	// 别名可能对应多个类型（简短名称冲突），此时解析失败
	aliases map[string][]string
	lock    sync.RWMutex
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		handles: map[string]TypeHandle{},
		aliases: map[string][]string{},
	}
}

// Register 注册类型，类型标识使用【类型名称】
// 支持注册
//  1、struct指针原型，如(*UserDaoImpl)(nil)；
//  2、无参构造方法 func() TYPE 或 func() (TYPE, error)。
func (r *TypeRegistry) Register(o interface{}, opts ...TypeOpt) error {
	return r.RegisterByName("", o, opts...)
}

// RegisterByName 使用指定的类型标识注册类型
func (r *TypeRegistry) RegisterByName(name string, o interface{}, opts ...TypeOpt) error {
	h, err := CreateTypeHandle(o)
	if err != nil {
		return err
	}
	setting := typeSetting{}
	for _, opt := range opts {
		opt(&setting)
	}

	if name == "" {
		name = h.Name()
	}
	id := reflection.NormalizeTypeName(name)
	if id == "" {
		return errors.New("Cannot get type name. ")
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.handles[id]; ok {
		return errors.New(id + " type is exists. ")
	}
	aliases := make([]string, 0, len(setting.aliases))
	for _, a := range setting.aliases {
		a = reflection.NormalizeTypeName(a)
		if a == "" || a == id {
			continue
		}
		if _, ok := r.handles[a]; ok {
			return fmt.Errorf("alias %s conflicts with a registered type. ", a)
		}
		if _, ok := r.aliases[a]; ok {
			return fmt.Errorf("alias %s is exists. ", a)
		}
		aliases = append(aliases, a)
	}

	if h.Name() != id {
		h = &namedType{TypeHandle: h, name: id}
	}
	r.handles[id] = h
	for _, a := range aliases {
		r.aliases[a] = []string{id}
	}
	if !setting.noShortName {
		short := reflection.NormalizeTypeName(reflection.GetShortTypeName(h.Type()))
		if short != id {
			r.aliases[short] = appendUnique(r.aliases[short], id)
		}
	}
	return nil
}

// Resolve 解析类型标识，先匹配完整标识，再匹配别名
func (r *TypeRegistry) Resolve(typeName string) (TypeHandle, error) {
	id := reflection.NormalizeTypeName(typeName)
	if id == "" {
		return nil, &errors2.TypeResolutionError{TypeName: typeName, Reason: "empty type identifier"}
	}

	r.lock.RLock()
	defer r.lock.RUnlock()

	if h, ok := r.handles[id]; ok {
		return h, nil
	}
	if ids, ok := r.aliases[id]; ok {
		if len(ids) == 1 {
			return r.handles[ids[0]], nil
		}
		candidates := append([]string(nil), ids...)
		sort.Strings(candidates)
		return nil, &errors2.TypeResolutionError{
			TypeName: typeName,
			Reason:   "ambiguous short name, candidates: " + strings.Join(candidates, ", "),
		}
	}
	return nil, &errors2.TypeResolutionError{TypeName: typeName, Reason: "type is not registered"}
}

// Names 返回所有已注册的类型标识（已排序）
func (r *TypeRegistry) Names() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	ret := make([]string, 0, len(r.handles))
	for k := range r.handles {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

func appendUnique(s []string, v string) []string {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}
