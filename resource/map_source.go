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

package resource

import (
	"github.com/xfali/neve-factory/bean"
	"sort"
)

// MapSource 内存中的定义，按名称排序
type MapSource struct {
	loader
	pairs map[string]string
}

func NewMapSource(name string, pairs map[string]string, types TypeResolver, opts ...Opt) *MapSource {
	return &MapSource{
		loader: newLoader(name, types, opts...),
		pairs:  pairs,
	}
}

func (s *MapSource) Load() (map[string]*bean.Definition, error) {
	names := make([]string, 0, len(s.pairs))
	for k := range s.pairs {
		names = append(names, k)
	}
	sort.Strings(names)

	entries := make([]entry, 0, len(names))
	for _, k := range names {
		entries = append(entries, entry{
			name:     k,
			typeName: s.pairs[k],
		})
	}
	return s.build(entries)
}
