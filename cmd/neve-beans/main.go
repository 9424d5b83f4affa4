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

package main

import (
	"flag"
	"github.com/joho/godotenv"
	"github.com/xfali/neve-factory"
	"github.com/xfali/neve-factory/bean"
	"github.com/xfali/neve-utils/neverror"
	"github.com/xfali/xlog"
	"os"
)

type UserDao interface {
	QueryUserInfo(id string) string
}

type UserDaoImpl struct {
	users map[string]string
}

func NewUserDao() *UserDaoImpl {
	return &UserDaoImpl{
		users: map[string]string{
			"10001": "xiongfa",
			"10002": "neve",
		},
	}
}

func (d *UserDaoImpl) QueryUserInfo(id string) string {
	return d.users[id]
}

type HelloImpl struct {
	Greeting string `fig:"demo.greeting"`
}

func (h *HelloImpl) Hello() string {
	return h.Greeting
}

// .env可选，用于配置NEVE_RESOURCE_DIR等环境变量
func loadEnv(logger xlog.Logger, filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !os.IsNotExist(err) {
		logger.Warnln(err)
		return err
	}
	return nil
}

func main() {
	logger := xlog.GetLogger()
	loadEnv(logger)

	configPath := flag.String("f", "conf/application.yaml", "Application configuration file path.")
	flag.Parse()

	types := bean.NewTypeRegistry()
	neverror.PanicError(types.Register(NewUserDao))
	neverror.PanicError(types.Register((*HelloImpl)(nil)))

	app, err := neve.NewFileConfigApplication(*configPath, types)
	if err != nil {
		logger.Errorln(err)
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = app.Factory().BeanNames()
	}
	exitCode := 0
	for _, name := range names {
		o, err := app.GetBean(name)
		if err != nil {
			logger.Errorln(err)
			exitCode = 1
			continue
		}
		logger.Infof("bean %s: %T %p\n", name, o, o)
		switch v := o.(type) {
		case UserDao:
			logger.Infof("userDao query 10001: %s\n", v.QueryUserInfo("10001"))
		case *HelloImpl:
			logger.Infof("hello: %s\n", v.Hello())
		}
	}

	// 再次获取，返回同一个实例
	for _, name := range app.Factory().CachedBeanNames() {
		o, _ := app.GetBean(name)
		logger.Infof("cached bean %s: %p\n", name, o)
	}
	os.Exit(exitCode)
}
