// Copyright (C) 2019-2020, Xiongfa Li.
// @author xiongfa.li
// @version V1.0
// Description:

package processor

import (
	"errors"
	"github.com/xfali/fig"
	"reflect"
)

// ValueProcessor 使用配置填充bean中带有fig tag的字段，如：
//
//	type HelloImpl struct {
//		Greeting string `fig:"demo.greeting"`
//	}
type ValueProcessor struct {
	conf      fig.Properties
	tagPxName string
	tagName   string
}

type Opt func(processor *ValueProcessor)

func OptSetValueTag(tagPxName, tagName string) Opt {
	return func(processor *ValueProcessor) {
		if tagName != "" {
			if tagPxName == "" {
				tagPxName = fig.TagPrefixName
			}
			processor.tagName = tagName
			processor.tagPxName = tagPxName
		}
	}
}

func NewValueProcessor(opts ...Opt) *ValueProcessor {
	ret := &ValueProcessor{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (p *ValueProcessor) Init(conf fig.Properties) error {
	if conf == nil {
		return errors.New("Properties is nil. ")
	}
	p.conf = conf
	return nil
}

func (p *ValueProcessor) Process(name string, o interface{}) error {
	if p.conf == nil {
		return nil
	}
	// 只处理struct指针
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil
	}
	if p.tagName == "" {
		return fig.Fill(p.conf, o)
	} else {
		return fig.FillExWithTagName(p.conf, o, false, p.tagPxName, p.tagName)
	}
}
