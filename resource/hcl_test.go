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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	errors2 "github.com/xfali/neve-factory/errors"
)

func TestHCLSource(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join("testdata", "beans.hcl")
		s := NewFileSource(path, newTypes(t))
		require.IsType(t, &HCLSource{}, s)

		defs, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"hello", "userDao"}, definitionNames(defs))
		assert.Equal(t, pkgName+".UserDaoImpl", defs["userDao"].TypeName())
		assert.Equal(t, pkgName+".HelloImpl", defs["hello"].TypeName())
		assert.Equal(t, path+":2", defs["userDao"].Origin())
		assert.True(t, defs["userDao"].Order() < defs["hello"].Order())
	})

	t.Run("block", func(t *testing.T) {
		s := NewFileSource(filepath.Join("testdata", "block.hcl"), newTypes(t))
		_, err := s.Load()
		assert.True(t, errors2.IsResourceUnavailable(err))
	})

	t.Run("syntax", func(t *testing.T) {
		s := NewHCLSource("beans.hcl", stringOpener("userDao = = \n"), newTypes(t))
		_, err := s.Load()
		assert.True(t, errors2.IsResourceUnavailable(err))
	})

	t.Run("duplicate", func(t *testing.T) {
		s := NewHCLSource("beans.hcl", stringOpener("a = \"resource.UserDaoImpl\"\na = \"resource.HelloImpl\"\n"), newTypes(t),
			OptDuplicatePolicy(DuplicateOverride))
		_, err := s.Load()
		require.Error(t, err)
	})

	t.Run("slash path", func(t *testing.T) {
		s := NewHCLSource("beans.hcl", stringOpener("a = \"github.com/xfali/neve-factory/resource.UserDaoImpl\"\n"), newTypes(t))
		defs, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, pkgName+".UserDaoImpl", defs["a"].TypeName())
	})

	t.Run("not a string", func(t *testing.T) {
		s := NewHCLSource("beans.hcl", stringOpener("a = 1\n"), newTypes(t))
		_, err := s.Load()
		var te *errors2.TypeResolutionError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, "a", te.Bean)
		assert.Equal(t, 1, te.Line)
	})

	t.Run("unknown", func(t *testing.T) {
		s := NewHCLSource("beans.hcl", stringOpener("a = pkg.Missing\n"), newTypes(t))
		_, err := s.Load()
		assert.True(t, errors2.IsTypeResolution(err))
	})
}
