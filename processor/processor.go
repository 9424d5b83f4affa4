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

package processor

import (
	"github.com/xfali/fig"
)

type Processor interface {
	// 初始化对象处理器
	Init(conf fig.Properties) error

	// 处理新创建的bean，在bean写入单例缓存之前调用。为了支持多协程处理，该方法应线程安全。
	// 返回错误时bean创建失败，不会被缓存。
	Process(name string, o interface{}) error
}
