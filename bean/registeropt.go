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

// 类型注册配置：
// * bean.TypeOpts.Alias(names...) 增加别名
// * bean.TypeOpts.NoShortName() 不注册简短名称
type TypeOpt func(setting *typeSetting)

type typeSetting struct {
	aliases     []string
	noShortName bool
}

type typeOpts struct{}

var TypeOpts typeOpts

// Alias 为类型增加别名，别名可以在定义资源中代替类型标识使用
func (o typeOpts) Alias(names ...string) TypeOpt {
	return func(setting *typeSetting) {
		setting.aliases = append(setting.aliases, names...)
	}
}

// NoShortName 不使用<包名>.<类型名>作为别名
func (o typeOpts) NoShortName() TypeOpt {
	return func(setting *typeSetting) {
		setting.noShortName = true
	}
}
