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

package neve

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/xfali/neve-factory/bean"
	errors2 "github.com/xfali/neve-factory/errors"
	"github.com/xfali/neve-factory/processor"
	"github.com/xfali/neve-factory/resource"
	"github.com/xfali/xlog"
	"reflect"
)

// BeanFactory 根据定义资源按需创建bean并缓存为单例
// 创建时一次性加载所有定义，之后定义只读；GetBean可以被多个协程并发调用。
type BeanFactory struct {
	id         string
	logger     xlog.Logger
	source     string
	processors []processor.Processor

	definitions *bean.Definitions
	singletons  *bean.SingletonCache
}

type Opt func(*BeanFactory)

func OptSetLogger(logger xlog.Logger) Opt {
	return func(f *BeanFactory) {
		f.logger = logger
	}
}

// OptAddProcessor 添加bean处理器，处理器需已经初始化
func OptAddProcessor(p ...processor.Processor) Opt {
	return func(f *BeanFactory) {
		for _, v := range p {
			if v != nil {
				f.processors = append(f.processors, v)
			}
		}
	}
}

// NewBeanFactory 加载source中的所有定义并创建BeanFactory，加载失败时返回错误
func NewBeanFactory(source resource.Source, opts ...Opt) (*BeanFactory, error) {
	if source == nil {
		return nil, errors.New("Definition source is nil. ")
	}
	ret := &BeanFactory{
		id:         uuid.NewString(),
		logger:     xlog.GetLogger(),
		source:     source.Name(),
		singletons: bean.NewSingletonCache(),
	}
	for _, opt := range opts {
		opt(ret)
	}

	defs, err := source.Load()
	if err != nil {
		return nil, err
	}
	ret.definitions, err = bean.NewDefinitions(defs)
	if err != nil {
		return nil, err
	}
	ret.logger.Infof("BeanFactory %s loaded %d definitions from %s\n", ret.id, ret.definitions.Len(), ret.source)
	return ret, nil
}

func (f *BeanFactory) ID() string {
	return f.id
}

// GetBean 根据名称获得bean
// 第一次获取时创建并缓存，之后返回同一个实例。
// 名称未定义返回*errors.UnknownBeanError，创建失败返回*errors.InstantiationError，失败不会写入缓存。
func (f *BeanFactory) GetBean(name string) (interface{}, error) {
	if o, ok := f.singletons.Get(name); ok {
		return o, nil
	}

	d, ok := f.definitions.Get(name)
	if !ok {
		return nil, &errors2.UnknownBeanError{Name: name}
	}

	o, created, err := f.singletons.GetOrCreate(name, func() (interface{}, error) {
		return f.createBean(d)
	})
	if err != nil {
		return nil, err
	}
	if created {
		f.logger.Debugf("BeanFactory %s created bean %s of type %s\n", f.id, name, d.TypeName())
	}
	return o, nil
}

func (f *BeanFactory) createBean(d *bean.Definition) (interface{}, error) {
	o, err := bean.Instantiate(d.Handle())
	if err != nil {
		return nil, &errors2.InstantiationError{Bean: d.Name(), TypeName: d.TypeName(), Cause: err}
	}
	for _, p := range f.processors {
		if err := p.Process(d.Name(), o); err != nil {
			return nil, &errors2.InstantiationError{Bean: d.Name(), TypeName: d.TypeName(), Cause: err}
		}
	}
	return o, nil
}

// GetBeanByType 获得bean并赋值给ptr指向的变量，ptr必须为非nil指针
// 如：
//
//	var dao UserDao
//	err := factory.GetBeanByType("userDao", &dao)
func (f *BeanFactory) GetBeanByType(name string, ptr interface{}) error {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return errors.New("Param must be a non-nil pointer. ")
	}
	o, err := f.GetBean(name)
	if err != nil {
		return err
	}
	ov := reflect.ValueOf(o)
	elem := v.Elem()
	if !ov.Type().AssignableTo(elem.Type()) {
		return fmt.Errorf("bean %s of type %s is not assignable to %s", name, ov.Type().String(), elem.Type().String())
	}
	elem.Set(ov)
	return nil
}

// ContainsBean 是否定义了该名称的bean
func (f *BeanFactory) ContainsBean(name string) bool {
	return f.definitions.Contains(name)
}

// IsCached 该名称的bean是否已经创建
func (f *BeanFactory) IsCached(name string) bool {
	return f.singletons.Contains(name)
}

// BeanNames 按定义资源中的顺序返回所有bean名称
func (f *BeanFactory) BeanNames() []string {
	return f.definitions.Names()
}

// CachedBeanNames 返回已经创建的bean名称
func (f *BeanFactory) CachedBeanNames() []string {
	return f.singletons.Names()
}
