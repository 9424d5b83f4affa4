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
	"strings"
)

// Definition 将bean名称与可构造类型关联，创建后不可修改
type Definition struct {
	name   string
	handle TypeHandle
	order  int
	origin string
}

type DefinitionOpt func(*Definition)

// OptSetOrder 配置定义在资源中的位置，用于按资源顺序遍历
func OptSetOrder(order int) DefinitionOpt {
	return func(d *Definition) {
		d.order = order
	}
}

// OptSetOrigin 配置定义的来源，如 beans.properties:3
func OptSetOrigin(origin string) DefinitionOpt {
	return func(d *Definition) {
		d.origin = origin
	}
}

func NewDefinition(name string, handle TypeHandle, opts ...DefinitionOpt) (*Definition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("Bean name is empty. ")
	}
	if handle == nil {
		return nil, errors.New("Bean " + name + " TypeHandle is nil. ")
	}
	ret := &Definition{
		name:   name,
		handle: handle,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret, nil
}

func (d *Definition) Name() string {
	return d.name
}

func (d *Definition) Handle() TypeHandle {
	return d.handle
}

// 类型标识
func (d *Definition) TypeName() string {
	return d.handle.Name()
}

func (d *Definition) Order() int {
	return d.order
}

func (d *Definition) Origin() string {
	return d.origin
}
