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

package neve_test

import (
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/xfali/fig"
	neve "github.com/xfali/neve-factory"
	"github.com/xfali/neve-factory/bean"
	errors2 "github.com/xfali/neve-factory/errors"
	"github.com/xfali/neve-factory/resource"
)

type UserDao interface {
	QueryUserInfo() string
}

type UserDaoImpl struct {
	queried int
}

func (d *UserDaoImpl) QueryUserInfo() string {
	d.queried++
	return "neve"
}

type Hello interface {
	Test() string
}

type HelloImpl struct {
	Greeting string `fig:"demo.greeting"`
}

func (h *HelloImpl) Test() string {
	return h.Greeting
}

func newTypes(t *testing.T) *bean.TypeRegistry {
	types := bean.NewTypeRegistry()
	if err := types.RegisterByName("pkg.UserDaoImpl", (*UserDaoImpl)(nil)); err != nil {
		t.Fatal(err)
	}
	if err := types.RegisterByName("pkg.HelloImpl", (*HelloImpl)(nil)); err != nil {
		t.Fatal(err)
	}
	return types
}

func source(content string, types resource.TypeResolver) resource.Source {
	return resource.NewPropertiesSource("beans.properties", func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(content)), nil
	}, types)
}

func newFactory(t *testing.T, content string, types resource.TypeResolver, opts ...neve.Opt) *neve.BeanFactory {
	f, err := neve.NewBeanFactory(source(content, types), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestBeanFactory(t *testing.T) {
	f := newFactory(t, "userDao = pkg.UserDaoImpl\nhello = pkg.HelloImpl\n", newTypes(t))

	t.Run("same instance", func(t *testing.T) {
		o1, err := f.GetBean("userDao")
		if err != nil {
			t.Fatal(err)
		}
		o1.(UserDao).QueryUserInfo()

		o2, err := f.GetBean("userDao")
		if err != nil {
			t.Fatal(err)
		}
		if o1.(*UserDaoImpl) != o2.(*UserDaoImpl) {
			t.Fatal("expect same instance")
		}
		if o2.(*UserDaoImpl).queried != 1 {
			t.Fatal("expect state kept in cached instance")
		}
	})

	t.Run("distinct names", func(t *testing.T) {
		h, err := f.GetBean("hello")
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := h.(*HelloImpl); !ok {
			t.Fatalf("expect *HelloImpl but get %T", h)
		}
		u, _ := f.GetBean("userDao")
		if u == h {
			t.Fatal("expect distinct instances")
		}
	})

	t.Run("unknown", func(t *testing.T) {
		before := f.CachedBeanNames()
		o, err := f.GetBean("missing")
		if o != nil {
			t.Fatal("expect nil bean")
		}
		var ue *errors2.UnknownBeanError
		if !errors.As(err, &ue) || ue.Name != "missing" {
			t.Fatal("expect UnknownBeanError but get ", err)
		}
		after := f.CachedBeanNames()
		if len(before) != len(after) || f.IsCached("missing") {
			t.Fatal("unknown bean must not mutate cache")
		}
	})

	t.Run("names", func(t *testing.T) {
		names := f.BeanNames()
		if len(names) != 2 || names[0] != "userDao" || names[1] != "hello" {
			t.Fatal("expect source order but get ", names)
		}
		if !f.ContainsBean("hello") || f.ContainsBean("missing") {
			t.Fatal("ContainsBean failed")
		}
		if f.ID() == "" {
			t.Fatal("expect factory id")
		}
	})
}

func TestLazyConstruction(t *testing.T) {
	var count int32
	types := bean.NewTypeRegistry()
	err := types.RegisterByName("pkg.UserDaoImpl", func() *UserDaoImpl {
		atomic.AddInt32(&count, 1)
		return &UserDaoImpl{}
	})
	if err != nil {
		t.Fatal(err)
	}
	f := newFactory(t, "userDao = pkg.UserDaoImpl\n", types)
	if atomic.LoadInt32(&count) != 0 || f.IsCached("userDao") {
		t.Fatal("expect no construction before GetBean")
	}
	f.GetBean("userDao")
	f.GetBean("userDao")
	if atomic.LoadInt32(&count) != 1 || !f.IsCached("userDao") {
		t.Fatal("expect exactly one construction but get ", count)
	}
}

func TestConcurrentGetBean(t *testing.T) {
	var count int32
	types := bean.NewTypeRegistry()
	err := types.RegisterByName("pkg.UserDaoImpl", func() *UserDaoImpl {
		atomic.AddInt32(&count, 1)
		time.Sleep(20 * time.Millisecond)
		return &UserDaoImpl{}
	})
	if err != nil {
		t.Fatal(err)
	}
	f := newFactory(t, "userDao = pkg.UserDaoImpl\n", types)

	const n = 100
	results := make([]interface{}, n)
	start := make(chan struct{})
	wg := sync.WaitGroup{}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			o, err := f.GetBean("userDao")
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = o
		}(i)
	}
	close(start)
	wg.Wait()

	if atomic.LoadInt32(&count) != 1 {
		t.Fatal("expect exactly one construction but get ", atomic.LoadInt32(&count))
	}
	for i := range results {
		if results[i].(*UserDaoImpl) != results[0].(*UserDaoImpl) {
			t.Fatal("expect same instance at ", i)
		}
	}
}

func TestInstantiationError(t *testing.T) {
	t.Run("retry after failure", func(t *testing.T) {
		var count int32
		cause := errors.New("connection refused")
		types := bean.NewTypeRegistry()
		types.RegisterByName("pkg.UserDaoImpl", func() (*UserDaoImpl, error) {
			if atomic.AddInt32(&count, 1) == 1 {
				return nil, cause
			}
			return &UserDaoImpl{}, nil
		})
		f := newFactory(t, "userDao = pkg.UserDaoImpl\n", types)

		_, err := f.GetBean("userDao")
		var ie *errors2.InstantiationError
		if !errors.As(err, &ie) {
			t.Fatal("expect InstantiationError but get ", err)
		}
		if ie.Bean != "userDao" || ie.TypeName != "pkg.UserDaoImpl" || !errors.Is(err, cause) {
			t.Fatal("unexpected error ", err)
		}
		if f.IsCached("userDao") {
			t.Fatal("failure must not be cached")
		}

		o, err := f.GetBean("userDao")
		if err != nil || o == nil {
			t.Fatal("expect retry succeed, err: ", err)
		}
	})

	t.Run("panic", func(t *testing.T) {
		types := bean.NewTypeRegistry()
		types.RegisterByName("pkg.HelloImpl", func() *HelloImpl {
			panic("no default constructor")
		})
		f := newFactory(t, "hello = pkg.HelloImpl\n", types)
		_, err := f.GetBean("hello")
		if !errors2.IsInstantiation(err) {
			t.Fatal("expect InstantiationError but get ", err)
		}
		if !strings.Contains(err.Error(), "no default constructor") {
			t.Fatal("expect panic value in message: ", err)
		}
	})

	t.Run("nil instance", func(t *testing.T) {
		types := bean.NewTypeRegistry()
		types.RegisterByName("pkg.Hello", func() Hello {
			return nil
		})
		f := newFactory(t, "hello = pkg.Hello\n", types)
		_, err := f.GetBean("hello")
		if !errors2.IsInstantiation(err) {
			t.Fatal("expect InstantiationError but get ", err)
		}
	})

	t.Run("processor failure", func(t *testing.T) {
		cause := errors.New("rejected")
		f := newFactory(t, "hello = pkg.HelloImpl\n", newTypes(t), neve.OptAddProcessor(&failProcessor{err: cause}))
		_, err := f.GetBean("hello")
		if !errors2.IsInstantiation(err) || !errors.Is(err, cause) {
			t.Fatal("expect InstantiationError but get ", err)
		}
		if f.IsCached("hello") {
			t.Fatal("failure must not be cached")
		}
	})
}

type failProcessor struct {
	err error
}

func (p *failProcessor) Init(conf fig.Properties) error {
	return nil
}

func (p *failProcessor) Process(name string, o interface{}) error {
	return p.err
}

func TestNewBeanFactoryFailed(t *testing.T) {
	t.Run("missing resource", func(t *testing.T) {
		t.Setenv("NEVE_RESOURCE_DIR", "")
		f, err := neve.NewBeanFactory(resource.NewFileSource("testdata/not-exist.properties", newTypes(t)))
		if f != nil {
			t.Fatal("expect nil factory")
		}
		if !errors2.IsResourceUnavailable(err) {
			t.Fatal("expect ResourceUnavailableError but get ", err)
		}
	})

	t.Run("unresolved type", func(t *testing.T) {
		f, err := neve.NewBeanFactory(source("userDao = pkg.UserDaoImpl\nx = pkg.Missing\n", newTypes(t)))
		if f != nil {
			t.Fatal("expect nil factory")
		}
		var te *errors2.TypeResolutionError
		if !errors.As(err, &te) || te.Bean != "x" || te.Line != 2 {
			t.Fatal("expect TypeResolutionError but get ", err)
		}
	})

	t.Run("nil source", func(t *testing.T) {
		_, err := neve.NewBeanFactory(nil)
		if err == nil {
			t.Fatal("expect error")
		}
	})
}

func TestGetBeanByType(t *testing.T) {
	f := newFactory(t, "userDao = pkg.UserDaoImpl\nhello = pkg.HelloImpl\n", newTypes(t))

	var dao UserDao
	if err := f.GetBeanByType("userDao", &dao); err != nil {
		t.Fatal(err)
	}
	o, _ := f.GetBean("userDao")
	if dao.(*UserDaoImpl) != o.(*UserDaoImpl) {
		t.Fatal("expect cached instance")
	}

	var h *HelloImpl
	if err := f.GetBeanByType("userDao", &h); err == nil {
		t.Fatal("expect not assignable error")
	}
	if err := f.GetBeanByType("hello", h); err == nil {
		t.Fatal("expect nil pointer rejected")
	}
	if err := f.GetBeanByType("missing", &h); !errors2.IsUnknownBean(err) {
		t.Fatal("expect UnknownBeanError but get ", err)
	}
}
