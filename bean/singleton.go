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
	"sort"
	"sync"
	"sync/atomic"
)

type singletonEntry struct {
	value  interface{}
	done   bool
	locker sync.Mutex
}

// SingletonCache 单例缓存，每个名称最多保存一个实例
// 同一名称的“检查-创建-写入”在该名称的锁内完成，不同名称互不阻塞。
// 创建失败时不写入缓存，下一次请求会重新创建。
type SingletonCache struct {
	instances sync.Map
	size      int32

	entries map[string]*singletonEntry
	locker  sync.Mutex
}

func NewSingletonCache() *SingletonCache {
	return &SingletonCache{
		entries: map[string]*singletonEntry{},
	}
}

func (c *SingletonCache) Get(name string) (interface{}, bool) {
	return c.instances.Load(name)
}

func (c *SingletonCache) Contains(name string) bool {
	_, ok := c.instances.Load(name)
	return ok
}

// GetOrCreate 返回已缓存的实例，不存在时调用create创建并缓存。
// 并发请求同一个未创建的名称时只有一个调用者执行create，其余调用者等待并获得同一个实例。
// 返回值created表示本次调用是否创建了实例。
func (c *SingletonCache) GetOrCreate(name string, create func() (interface{}, error)) (o interface{}, created bool, err error) {
	if v, ok := c.instances.Load(name); ok {
		return v, false, nil
	}

	e := c.entry(name)
	e.locker.Lock()
	defer e.locker.Unlock()

	if e.done {
		return e.value, false, nil
	}
	v, err := create()
	if err != nil {
		return nil, false, err
	}
	e.value = v
	e.done = true
	c.instances.Store(name, v)
	atomic.AddInt32(&c.size, 1)
	return v, true, nil
}

func (c *SingletonCache) entry(name string) *singletonEntry {
	c.locker.Lock()
	defer c.locker.Unlock()

	e, ok := c.entries[name]
	if !ok {
		e = &singletonEntry{}
		c.entries[name] = e
	}
	return e
}

func (c *SingletonCache) Len() int {
	return int(atomic.LoadInt32(&c.size))
}

// Names 返回已缓存的bean名称（已排序）
func (c *SingletonCache) Names() []string {
	var ret []string
	c.instances.Range(func(key, value interface{}) bool {
		ret = append(ret, key.(string))
		return true
	})
	sort.Strings(ret)
	return ret
}
