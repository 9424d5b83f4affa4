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

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ResourceUnavailableError 定义资源无法打开、读取或解析
type ResourceUnavailableError struct {
	Resource string
	Cause    error
}

func (e *ResourceUnavailableError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("definitions resource %s unavailable", e.Resource)
	}
	return fmt.Sprintf("definitions resource %s unavailable: %v", e.Resource, e.Cause)
}

func (e *ResourceUnavailableError) Unwrap() error {
	return e.Cause
}

// TypeResolutionError 类型标识无法解析为已注册的可构造类型
type TypeResolutionError struct {
	Bean     string
	TypeName string
	// Line is the 1-based line in the definitions resource, 0 if unknown.
	Line   int
	Reason string
}

func (e *TypeResolutionError) Error() string {
	buf := strings.Builder{}
	buf.WriteString("cannot resolve type ")
	buf.WriteString(fmt.Sprintf("%q", e.TypeName))
	if e.Bean != "" {
		buf.WriteString(" of bean ")
		buf.WriteString(e.Bean)
	}
	if e.Line > 0 {
		buf.WriteString(fmt.Sprintf(" (line %d)", e.Line))
	}
	if e.Reason != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Reason)
	}
	return buf.String()
}

// DuplicateDefinitionError 同一个bean名称在资源中被定义多次
type DuplicateDefinitionError struct {
	Bean     string
	Line     int
	PrevLine int
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("bean %s defined more than once (line %d, previous line %d)", e.Bean, e.Line, e.PrevLine)
}

// UnknownBeanError 获取未定义的bean
type UnknownBeanError struct {
	Name string
}

func (e *UnknownBeanError) Error() string {
	return fmt.Sprintf("no bean named %s is defined", e.Name)
}

// InstantiationError bean构造失败，Cause为构造方法返回的错误或panic的值
type InstantiationError struct {
	Bean     string
	TypeName string
	Cause    error
}

func (e *InstantiationError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("instantiate bean %s of type %s failed", e.Bean, e.TypeName)
	}
	return fmt.Sprintf("instantiate bean %s of type %s failed: %v", e.Bean, e.TypeName, e.Cause)
}

func (e *InstantiationError) Unwrap() error {
	return e.Cause
}

func IsResourceUnavailable(err error) bool {
	var e *ResourceUnavailableError
	return stderrors.As(err, &e)
}

func IsTypeResolution(err error) bool {
	var e *TypeResolutionError
	return stderrors.As(err, &e)
}

func IsDuplicateDefinition(err error) bool {
	var e *DuplicateDefinitionError
	return stderrors.As(err, &e)
}

func IsUnknownBean(err error) bool {
	var e *UnknownBeanError
	return stderrors.As(err, &e)
}

func IsInstantiation(err error) bool {
	var e *InstantiationError
	return stderrors.As(err, &e)
}

type ErrList interface {
	Empty() bool

	AddError(e error)

	Error() string
}

type Errors []error

func (es Errors) Empty() bool {
	return len(es) == 0
}

func (es *Errors) AddError(e error) {
	if e != nil {
		*es = append(*es, e)
	}
}

func (es Errors) Error() string {
	buf := strings.Builder{}
	for i := range es {
		buf.WriteString(es[i].Error())
		if i < len(es)-1 {
			buf.WriteString(", ")
		}
	}
	return buf.String()
}

func (es Errors) Unwrap() []error {
	return es
}

// Err 返回nil（无错误）、唯一的错误或者错误列表本身
func (es Errors) Err() error {
	switch len(es) {
	case 0:
		return nil
	case 1:
		return es[0]
	default:
		return es
	}
}
