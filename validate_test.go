// Copyright 2025 The Rivaas Authors
// Copyright 2025 Company.info B.V.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !integration

package typedconf

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_Basic(t *testing.T) {
	t.Parallel()

	type conf struct {
		Host string  `config:"host"`
		Port int     `config:"port"`
		Rate float64 `config:"rate"`
	}
	s := MustSchemaOf[conf]()

	tests := []struct {
		name    string
		data    map[string]any
		wantErr bool
		path    string
	}{
		{
			name: "conforming values pass",
			data: map[string]any{"host": "localhost", "port": 8080, "rate": 0.5},
		},
		{
			name: "absent fields are skipped",
			data: map[string]any{},
		},
		{
			name: "nil passes for basic fields",
			data: map[string]any{"host": nil},
		},
		{
			name:    "string for int fails",
			data:    map[string]any{"port": "8080"},
			wantErr: true,
			path:    "port",
		},
		{
			name:    "bool for string fails",
			data:    map[string]any{"host": true},
			wantErr: true,
			path:    "host",
		},
		{
			name: "json float for int field passes when integral",
			data: map[string]any{"port": float64(8080)},
		},
		{
			name:    "fractional float for int field fails",
			data:    map[string]any{"port": 80.5},
			wantErr: true,
			path:    "port",
		},
		{
			name: "int for float field passes",
			data: map[string]any{"rate": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := s.Check(tt.data)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			var mismatch *TypeMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, tt.path, mismatch.Path)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestCheck_DurationAndTimeStrings(t *testing.T) {
	t.Parallel()

	type conf struct {
		Timeout time.Duration `config:"timeout"`
		Start   time.Time     `config:"start"`
	}
	s := MustSchemaOf[conf]()

	require.NoError(t, s.Check(map[string]any{"timeout": "30s"}))
	require.NoError(t, s.Check(map[string]any{"timeout": 5 * time.Second}))
	require.NoError(t, s.Check(map[string]any{"start": "2025-06-01T12:00:00Z"}))

	err := s.Check(map[string]any{"timeout": "soon"})
	require.Error(t, err)
	err = s.Check(map[string]any{"start": "yesterday"})
	require.Error(t, err)
}

func TestCheck_Containers(t *testing.T) {
	t.Parallel()

	type conf struct {
		Tags   []string       `config:"tags"`
		Limits map[string]int `config:"limits"`
	}
	s := MustSchemaOf[conf]()

	require.NoError(t, s.Check(map[string]any{
		"tags":   []any{"a", "b"},
		"limits": map[string]any{"reads": 10},
	}))

	err := s.Check(map[string]any{"tags": []any{"a", 3, "c"}})
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "tags[1]", mismatch.Path)

	err = s.Check(map[string]any{"tags": "not-a-list"})
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "tags", mismatch.Path)

	err = s.Check(map[string]any{"limits": map[string]any{"reads": "ten"}})
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "limits[reads]", mismatch.Path)
}

func TestCheck_Tuples(t *testing.T) {
	t.Parallel()

	type conf struct {
		Pair []any `config:"pair"`
		Args []any `config:"args"`
	}
	s := MustSchemaOf[conf](
		WithField("pair", Tuple(BasicOf[string](), BasicOf[int]())),
		WithField("args", VariadicTuple(BasicOf[int]())),
	)

	require.NoError(t, s.Check(map[string]any{"pair": []any{"x", 1}}))
	require.NoError(t, s.Check(map[string]any{"args": []any{1, 2, 3}}))
	require.NoError(t, s.Check(map[string]any{"args": []any{}}))

	var mismatch *TypeMismatchError

	// Wrong arity fails on the tuple itself.
	err := s.Check(map[string]any{"pair": []any{"x"}})
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "pair", mismatch.Path)
	assert.Contains(t, mismatch.Actual, "1 element")

	// Positional mismatch names the position.
	err = s.Check(map[string]any{"pair": []any{"x", "y"}})
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "pair[1]", mismatch.Path)

	// A variadic violation names the offending index.
	err = s.Check(map[string]any{"args": []any{1, "x", 3}})
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "args[1]", mismatch.Path)
}

func TestCheck_Set(t *testing.T) {
	t.Parallel()

	type conf struct {
		Labels []string `config:"labels"`
	}
	s := MustSchemaOf[conf](WithField("labels", Set(BasicOf[string]())))

	require.NoError(t, s.Check(map[string]any{"labels": []any{"a", "b"}}))

	var mismatch *TypeMismatchError
	err := s.Check(map[string]any{"labels": []any{"a", 1}})
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "labels[1]", mismatch.Path)
	assert.Equal(t, "string", mismatch.Expected)
}

func TestCheck_Sum(t *testing.T) {
	t.Parallel()

	type conf struct {
		Port  any `config:"port"`
		Extra any `config:"extra"`
	}
	s := MustSchemaOf[conf](
		WithField("port", OneOf(BasicOf[int](), BasicOf[string]())),
		WithField("extra", Nullable(BasicOf[int]())),
	)

	require.NoError(t, s.Check(map[string]any{"port": 8080}))
	require.NoError(t, s.Check(map[string]any{"port": "8080"}))
	require.NoError(t, s.Check(map[string]any{"extra": nil}))
	require.NoError(t, s.Check(map[string]any{"extra": 1}))

	var mismatch *TypeMismatchError

	// nil only passes a sum carrying a none alternative.
	err := s.Check(map[string]any{"port": nil})
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "port", mismatch.Path)

	// The expected rendering names every alternative.
	err = s.Check(map[string]any{"port": true})
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "int | string", mismatch.Expected)
}

func TestCheck_NestedRecord(t *testing.T) {
	t.Parallel()

	type pool struct {
		Size int `config:"size"`
	}
	type database struct {
		Host string `config:"host"`
		Pool pool   `config:"pool"`
	}
	s := MustSchemaOf[database]()

	require.NoError(t, s.Check(map[string]any{
		"pool": map[string]any{"size": 10},
	}))

	// Nested violations carry the dotted path.
	var mismatch *TypeMismatchError
	err := s.Check(map[string]any{
		"pool": map[string]any{"size": "big"},
	})
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "pool.size", mismatch.Path)

	// An already-typed instance passes untouched.
	require.NoError(t, s.Check(map[string]any{"pool": pool{Size: 3}}))
	require.NoError(t, s.Check(map[string]any{"pool": &pool{Size: 3}}))

	// nil is not a record.
	err = s.Check(map[string]any{"pool": nil})
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "pool", mismatch.Path)
}

func TestCheck_FirstFailureWins(t *testing.T) {
	t.Parallel()

	type conf struct {
		First  int `config:"first"`
		Second int `config:"second"`
	}
	s := MustSchemaOf[conf]()

	// Both fields are wrong; declaration order decides the report.
	err := s.Check(map[string]any{"first": "x", "second": "y"})
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "first", mismatch.Path)
}

func TestCheck_DoesNotMutate(t *testing.T) {
	t.Parallel()

	type conf struct {
		Tags []string `config:"tags"`
	}
	s := MustSchemaOf[conf]()

	data := map[string]any{"tags": []any{"a", "b"}}
	require.NoError(t, s.Check(data))
	assert.Equal(t, map[string]any{"tags": []any{"a", "b"}}, data)
}

func TestCheck_NumericStringNeverConforms(t *testing.T) {
	t.Parallel()

	type conf struct {
		Port int `config:"port"`
	}
	s := MustSchemaOf[conf]()

	err := s.Check(map[string]any{"port": "8080"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
}
