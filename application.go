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
	"github.com/xfali/fig"
	errors2 "github.com/xfali/neve-factory/errors"
	"github.com/xfali/neve-factory/processor"
	"github.com/xfali/neve-factory/resource"
	"github.com/xfali/xlog"
)

const (
	KeyApplicationName = "neve.application.name"
	KeyBanner          = "neve.application.banner"
	KeyBannerMode      = "neve.application.bannerMode"
	KeyBeansResource   = "neve.beans.resource"
	KeyBeansDuplicate  = "neve.beans.duplicate"
	KeyValueDisable    = "neve.value.disable"

	defaultApplicationName = "Neve Application"
	defaultBeansResource   = "beans.properties"
)

type Application interface {
	// 获得应用名称
	GetApplicationName() string

	// 根据名称获得bean
	GetBean(name string) (interface{}, error)

	// 获得bean并赋值给ptr
	GetBeanByType(name string, ptr interface{}) error

	// 获得BeanFactory
	Factory() *BeanFactory
}

// FileConfigApplication 从yaml配置文件创建BeanFactory
//
//	neve:
//	  application:
//	    name: demo
//	    bannerMode: off
//	  beans:
//	    resource: beans.properties
//	    duplicate: reject
//	  value:
//	    disable: false
type FileConfigApplication struct {
	name       string
	config     fig.Properties
	logger     xlog.Logger
	processors []processor.Processor
	factory    *BeanFactory
}

type AppOpt func(*FileConfigApplication)

func OptSetAppLogger(logger xlog.Logger) AppOpt {
	return func(app *FileConfigApplication) {
		app.logger = logger
	}
}

// OptAddAppProcessor 添加bean处理器，处理器会使用应用配置初始化
func OptAddAppProcessor(p ...processor.Processor) AppOpt {
	return func(app *FileConfigApplication) {
		for _, v := range p {
			if v != nil {
				app.processors = append(app.processors, v)
			}
		}
	}
}

// NewFileConfigApplication 读取configPath配置文件，使用types解析定义资源中的类型标识
func NewFileConfigApplication(configPath string, types resource.TypeResolver, opts ...AppOpt) (*FileConfigApplication, error) {
	prop, err := fig.LoadYamlFile(configPath)
	if err != nil {
		return nil, &errors2.ResourceUnavailableError{Resource: configPath, Cause: err}
	}
	return NewApplication(prop, types, opts...)
}

func NewApplication(config fig.Properties, types resource.TypeResolver, opts ...AppOpt) (*FileConfigApplication, error) {
	if config == nil {
		return nil, errors.New("Properties is nil. ")
	}
	ret := &FileConfigApplication{
		config: config,
		logger: xlog.GetLogger(),
	}
	for _, opt := range opts {
		opt(ret)
	}

	ret.name = config.Get(KeyApplicationName, defaultApplicationName)
	if config.Get(KeyBannerMode, "") != "off" {
		printBanner(config.Get(KeyBanner, ""), ret.name)
	}

	policy, err := resource.ParseDuplicatePolicy(config.Get(KeyBeansDuplicate, ""))
	if err != nil {
		return nil, err
	}

	if config.Get(KeyValueDisable, "false") != "true" {
		ret.processors = append([]processor.Processor{processor.NewValueProcessor()}, ret.processors...)
	}
	for _, p := range ret.processors {
		if err := p.Init(config); err != nil {
			return nil, err
		}
	}

	source := resource.NewFileSource(config.Get(KeyBeansResource, defaultBeansResource), types,
		resource.OptDuplicatePolicy(policy), resource.OptSetLogger(ret.logger))
	ret.factory, err = NewBeanFactory(source, OptSetLogger(ret.logger), OptAddProcessor(ret.processors...))
	if err != nil {
		return nil, err
	}
	ret.logger.Infof("%s started, bean factory: %s\n", ret.name, ret.factory.ID())
	return ret, nil
}

func (app *FileConfigApplication) GetApplicationName() string {
	return app.name
}

func (app *FileConfigApplication) GetBean(name string) (interface{}, error) {
	return app.factory.GetBean(name)
}

func (app *FileConfigApplication) GetBeanByType(name string, ptr interface{}) error {
	return app.factory.GetBeanByType(name, ptr)
}

func (app *FileConfigApplication) Factory() *BeanFactory {
	return app.factory
}

func (app *FileConfigApplication) Config() fig.Properties {
	return app.config
}
