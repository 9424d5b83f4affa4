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

package reflection

import (
	"fmt"
	"reflect"
	"strings"
)

// GetTypeName 获得类型的完整名称，包路径中的"/"替换为"."，指针类型以"*"开头
// 例如：*github.com.xfali.demo.UserDaoImpl
func GetTypeName(t reflect.Type) string {
	buf := strings.Builder{}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
		buf.WriteString("*")
	}

	switch t.Kind() {
	case reflect.Slice:
		buf.WriteString(GetSliceName(t))
	case reflect.Map:
		buf.WriteString(GetMapName(t))
	default:
		buf.WriteString(qualifiedName(t))
	}
	return buf.String()
}

// GetShortTypeName 获得类型的简短名称：<包名最后一段>.<类型名>
// 例如：demo.UserDaoImpl
// 匿名类型或内建类型返回t.String()
func GetShortTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	pkg := t.PkgPath()
	if i := strings.LastIndex(pkg, "/"); i >= 0 {
		pkg = pkg[i+1:]
	}
	return pkg + "." + t.Name()
}

// NormalizeTypeName converts a type identifier written in a definitions resource to the
// form produced by GetTypeName without the pointer marker.
func NormalizeTypeName(id string) string {
	id = strings.TrimSpace(id)
	id = strings.TrimLeft(id, "*")
	return strings.Replace(id, "/", ".", -1)
}

func GetSliceName(t reflect.Type) string {
	elemType := t.Elem()

	name := elemType.PkgPath()
	if name != "" {
		return "[]" + qualifiedName(elemType)
	} else {
		return t.String()
	}
}

func GetMapName(t reflect.Type) string {
	keyType := t.Key()
	elemType := t.Elem()

	key := keyType.PkgPath()
	if key != "" {
		key = qualifiedName(keyType)
	} else {
		key = keyType.String()
	}

	name := elemType.PkgPath()
	if name != "" {
		return fmt.Sprintf("map[%s]%s", key, qualifiedName(elemType))
	} else {
		return t.String()
	}
}

func qualifiedName(t reflect.Type) string {
	name := t.PkgPath()
	if name != "" {
		return strings.Replace(name, "/", ".", -1) + "." + t.Name()
	}
	return t.Name()
}
