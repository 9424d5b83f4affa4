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
	"errors"
	"fmt"
	"github.com/xfali/neve-factory/bean"
	errors2 "github.com/xfali/neve-factory/errors"
	"github.com/xfali/xlog"
	"io"
)

// Source 定义资源，加载 bean名称 -> 类型标识 的映射
type Source interface {
	// 资源名称，用于错误信息
	Name() string

	// 读取所有定义并解析类型，任何一个定义失败则整体失败
	Load() (map[string]*bean.Definition, error)
}

// TypeResolver 将类型标识解析为可构造类型，bean.TypeRegistry实现了该接口
type TypeResolver interface {
	Resolve(typeName string) (bean.TypeHandle, error)
}

// Opener 打开资源，调用方负责关闭
type Opener func() (io.ReadCloser, error)

type DuplicatePolicy int

const (
	// 重复定义时加载失败（默认）
	DuplicateReject DuplicatePolicy = iota
	// 重复定义时使用最后一个定义，并打印警告
	DuplicateOverride
)

func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "", "reject":
		return DuplicateReject, nil
	case "override":
		return DuplicateOverride, nil
	}
	return DuplicateReject, fmt.Errorf("unknown duplicate policy: %s", s)
}

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateReject:
		return "reject"
	case DuplicateOverride:
		return "override"
	}
	return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
}

type Opt func(*loader)

func OptDuplicatePolicy(p DuplicatePolicy) Opt {
	return func(l *loader) {
		l.policy = p
	}
}

func OptSetLogger(logger xlog.Logger) Opt {
	return func(l *loader) {
		l.logger = logger
	}
}

type entry struct {
	name     string
	typeName string
	line     int
	// 解析阶段已确定的错误
	err error
}

// loader 各种格式共享的定义构建逻辑
type loader struct {
	resource string
	types    TypeResolver
	policy   DuplicatePolicy
	logger   xlog.Logger
}

func newLoader(resource string, types TypeResolver, opts ...Opt) loader {
	ret := loader{
		resource: resource,
		types:    types,
		policy:   DuplicateReject,
		logger:   xlog.GetLogger(),
	}
	for _, opt := range opts {
		opt(&ret)
	}
	return ret
}

func (l *loader) Name() string {
	return l.resource
}

func (l *loader) origin(line int) string {
	if line <= 0 {
		return l.resource
	}
	return fmt.Sprintf("%s:%d", l.resource, line)
}

func (l *loader) build(entries []entry) (map[string]*bean.Definition, error) {
	if l.types == nil {
		return nil, errors.New("TypeResolver is nil. ")
	}
	var errs errors2.Errors

	// 先处理重名，override时只保留最后一条，再解析类型
	survivors := make([]int, 0, len(entries))
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.name == "" {
			errs.AddError(fmt.Errorf("%s: bean name is empty", l.origin(e.line)))
			continue
		}
		if pos, ok := index[e.name]; ok {
			prev := entries[survivors[pos]].line
			if l.policy == DuplicateReject {
				errs.AddError(&errors2.DuplicateDefinitionError{Bean: e.name, Line: e.line, PrevLine: prev})
				continue
			}
			l.logger.Warnf("%s: bean %s overrides the definition at line %d\n", l.origin(e.line), e.name, prev)
			survivors[pos] = -1
		}
		index[e.name] = len(survivors)
		survivors = append(survivors, i)
	}

	ret := make(map[string]*bean.Definition, len(index))
	for _, i := range survivors {
		if i < 0 {
			continue
		}
		e := entries[i]
		if e.err != nil {
			errs.AddError(&errors2.TypeResolutionError{Bean: e.name, TypeName: e.typeName, Line: e.line, Reason: e.err.Error()})
			continue
		}
		h, err := l.types.Resolve(e.typeName)
		if err != nil {
			errs.AddError(resolutionError(e, err))
			continue
		}
		d, err := bean.NewDefinition(e.name, h, bean.OptSetOrder(i), bean.OptSetOrigin(l.origin(e.line)))
		if err != nil {
			errs.AddError(err)
			continue
		}
		ret[e.name] = d
	}

	if !errs.Empty() {
		return nil, errs.Err()
	}
	return ret, nil
}

func resolutionError(e entry, err error) error {
	var te *errors2.TypeResolutionError
	if errors.As(err, &te) {
		ret := *te
		ret.Bean = e.name
		ret.Line = e.line
		return &ret
	}
	return &errors2.TypeResolutionError{Bean: e.name, TypeName: e.typeName, Line: e.line, Reason: err.Error()}
}
