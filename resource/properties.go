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
	"bufio"
	"github.com/xfali/neve-factory/bean"
	errors2 "github.com/xfali/neve-factory/errors"
	"io"
	"strings"
)

// PropertiesSource 按行读取 name = type 格式的定义资源
//
//	# comment
//	userDao = demo.UserDaoImpl
//	hello: demo.HelloImpl
type PropertiesSource struct {
	loader
	open Opener
}

func NewPropertiesSource(name string, open Opener, types TypeResolver, opts ...Opt) *PropertiesSource {
	return &PropertiesSource{
		loader: newLoader(name, types, opts...),
		open:   open,
	}
}

func (s *PropertiesSource) Load() (map[string]*bean.Definition, error) {
	r, err := s.open()
	if err != nil {
		return nil, &errors2.ResourceUnavailableError{Resource: s.resource, Cause: err}
	}
	defer r.Close()

	entries, err := parseProperties(r)
	if err != nil {
		return nil, &errors2.ResourceUnavailableError{Resource: s.resource, Cause: err}
	}
	s.logger.Debugf("%s: read %d definitions\n", s.resource, len(entries))
	return s.build(entries)
}

func parseProperties(r io.Reader) ([]entry, error) {
	var ret []entry
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if line == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}
		text = strings.TrimSpace(text)
		if text == "" || text[0] == '#' || text[0] == '!' {
			continue
		}
		key, value := splitProperty(text)
		ret = append(ret, entry{
			name:     key,
			typeName: value,
			line:     line,
		})
	}
	return ret, scanner.Err()
}

// 分隔符为第一个'='或':'，都不存在时使用第一个空白字符
func splitProperty(text string) (string, string) {
	i := strings.IndexAny(text, "=:")
	if i < 0 {
		i = strings.IndexAny(text, " \t\f")
	}
	if i < 0 {
		return text, ""
	}
	return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:])
}
