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
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/xfali/neve-factory/bean"
	errors2 "github.com/xfali/neve-factory/errors"
	"github.com/zclconf/go-cty/cty"
	"io"
	"sort"
	"strings"
)

// HCLSource 读取只包含属性的HCL定义资源，不支持block
//
//	userDao = "demo.UserDaoImpl"
//	hello   = demo.HelloImpl
//
// HCL解析器本身拒绝重复的属性，因此重复定义总是失败。
type HCLSource struct {
	loader
	open Opener
}

func NewHCLSource(name string, open Opener, types TypeResolver, opts ...Opt) *HCLSource {
	return &HCLSource{
		loader: newLoader(name, types, opts...),
		open:   open,
	}
}

func (s *HCLSource) Load() (map[string]*bean.Definition, error) {
	r, err := s.open()
	if err != nil {
		return nil, &errors2.ResourceUnavailableError{Resource: s.resource, Cause: err}
	}
	defer r.Close()

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, &errors2.ResourceUnavailableError{Resource: s.resource, Cause: err}
	}

	file, diags := hclparse.NewParser().ParseHCL(src, s.resource)
	if diags.HasErrors() {
		return nil, &errors2.ResourceUnavailableError{Resource: s.resource, Cause: diags}
	}
	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, &errors2.ResourceUnavailableError{Resource: s.resource, Cause: diags}
	}

	entries := make([]entry, 0, len(attrs))
	for name, attr := range attrs {
		typeName, err := exprTypeName(attr.Expr)
		entries = append(entries, entry{
			name:     name,
			typeName: typeName,
			line:     attr.Range.Start.Line,
			err:      err,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].line < entries[j].line
	})
	s.logger.Debugf("%s: read %d definitions\n", s.resource, len(entries))
	return s.build(entries)
}

// 属性值可以是字符串，也可以是不带引号的标识 demo.UserDaoImpl
func exprTypeName(expr hcl.Expression) (string, error) {
	if tr, diags := hcl.AbsTraversalForExpr(expr); !diags.HasErrors() {
		return traversalName(tr)
	}
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if v.IsNull() || !v.IsKnown() || v.Type() != cty.String {
		return "", errors.New("type identifier must be a string")
	}
	return v.AsString(), nil
}

func traversalName(tr hcl.Traversal) (string, error) {
	parts := make([]string, 0, len(tr))
	for _, step := range tr {
		switch s := step.(type) {
		case hcl.TraverseRoot:
			parts = append(parts, s.Name)
		case hcl.TraverseAttr:
			parts = append(parts, s.Name)
		default:
			return "", fmt.Errorf("unsupported traversal step %T", step)
		}
	}
	return strings.Join(parts, "."), nil
}
