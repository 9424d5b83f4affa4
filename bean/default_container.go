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
	"github.com/xfali/goutils/container/skiplist"
	"sort"
)

// Definitions bean名称到Definition的映射，构造完成后只读，可以并发读取
// 遍历顺序为定义在资源中的顺序
type Definitions struct {
	l *skiplist.SkipList
	m map[string]*Definition
	k []string
}

// NewDefinitions 使用Source加载的结果构造，每个Definition的名称必须与其key一致
func NewDefinitions(defs map[string]*Definition) (*Definitions, error) {
	ret := &Definitions{
		m: make(map[string]*Definition, len(defs)),
		l: skiplist.New(skiplist.SetKeyCompareFunc(skiplist.CompareInt)),
	}
	for name, d := range defs {
		if d == nil {
			return nil, errors.New("Definition of " + name + " is nil. ")
		}
		if d.Name() != name {
			return nil, fmt.Errorf("Definition %s is keyed by %s. ", d.Name(), name)
		}
		ret.m[name] = d

		keys := ret.l.Get(d.Order())
		if keys == nil {
			keys = []string{name}
		} else {
			keys = append(keys.([]string), name)
		}
		ret.l.Set(d.Order(), keys)
	}

	ret.k = make([]string, 0, len(ret.m))
	for x := ret.l.First(); x != nil; x = x.Next() {
		names := append([]string(nil), x.Value().([]string)...)
		// same order, sort by name
		sort.Strings(names)
		ret.k = append(ret.k, names...)
	}
	return ret, nil
}

func (c *Definitions) Get(name string) (*Definition, bool) {
	d, ok := c.m[name]
	return d, ok
}

func (c *Definitions) Contains(name string) bool {
	_, ok := c.m[name]
	return ok
}

func (c *Definitions) Len() int {
	return len(c.m)
}

// Names 按资源中的顺序返回所有bean名称
func (c *Definitions) Names() []string {
	return append([]string(nil), c.k...)
}

// Scan 按资源中的顺序遍历，f返回false时停止
func (c *Definitions) Scan(f func(name string, d *Definition) bool) {
	for _, k := range c.k {
		if !f(k, c.m[k]) {
			break
		}
	}
}
