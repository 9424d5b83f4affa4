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
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	envResourceDir = "NEVE_RESOURCE_DIR"
)

var ResourceRoot string

// GetResource 获得资源路径，相对路径基于环境变量NEVE_RESOURCE_DIR，未设置时基于ResourceRoot
func GetResource(relFilePath string) string {
	if filepath.IsAbs(relFilePath) {
		return relFilePath
	}
	dir := os.Getenv(envResourceDir)
	if dir == "" {
		dir = ResourceRoot
	}
	return filepath.Join(dir, relFilePath)
}

func SetResourceRoot(dir string) {
	ResourceRoot = dir
}

func FileOpener(path string) Opener {
	return func() (io.ReadCloser, error) {
		return os.Open(path)
	}
}

// NewFileSource 根据扩展名选择资源格式：.hcl使用HCLSource，其他使用PropertiesSource
func NewFileSource(path string, types TypeResolver, opts ...Opt) Source {
	path = GetResource(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return NewHCLSource(path, FileOpener(path), types, opts...)
	default:
		return NewPropertiesSource(path, FileOpener(path), types, opts...)
	}
}
