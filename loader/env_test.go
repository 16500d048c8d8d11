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

package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv_Patterns(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewEnv("APP_").Patterns())
}

func TestEnv_Load(t *testing.T) {
	// NOTE: Cannot use t.Parallel() with t.Setenv()

	t.Setenv("APP_DATABASE_HOST", "envhost")
	t.Setenv("APP_DATABASE_PORT", "5432")
	t.Setenv("APP_SERVER_HOST", "other-scope")

	e := NewEnv("APP_")

	conf, err := e.Load(context.Background(), "database")
	require.NoError(t, err)
	assert.Equal(t, "envhost", conf["host"])
	assert.Equal(t, "5432", conf["port"])

	// Variables from other scopes are not visible.
	assert.NotContains(t, conf, "server")
}

func TestEnv_LoadNested(t *testing.T) {
	// NOTE: Cannot use t.Parallel() with t.Setenv()

	t.Setenv("APP_DATABASE_POOL_SIZE", "25")

	e := NewEnv("APP_")

	conf, err := e.Load(context.Background(), "database")
	require.NoError(t, err)

	pool, ok := conf["pool"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "25", pool["size"])
}

func TestEnv_LoadStripsRecognizedSuffix(t *testing.T) {
	// NOTE: Cannot use t.Parallel() with t.Setenv()

	t.Setenv("APP_DATABASE_HOST", "envhost")

	e := NewEnv("APP_")

	// "database.json" scopes the same variables as "database".
	conf, err := e.Load(context.Background(), "database.json")
	require.NoError(t, err)
	assert.Equal(t, "envhost", conf["host"])
}

func TestEnv_LoadEmptyScope(t *testing.T) {
	t.Parallel()

	e := NewEnv("DEFINITELY_UNSET_PREFIX_")

	conf, err := e.Load(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, conf)
}

func TestEnv_Exists(t *testing.T) {
	// NOTE: Cannot use t.Parallel() with t.Setenv()

	t.Setenv("APP_DATABASE_HOST", "envhost")

	e := NewEnv("APP_")
	assert.True(t, e.Exists(context.Background(), "database"))
	assert.False(t, e.Exists(context.Background(), "unset_source"))
}

func TestEnv_NoPrefix(t *testing.T) {
	// NOTE: Cannot use t.Parallel() with t.Setenv()

	t.Setenv("CACHE_TTL", "300")

	e := NewEnv("")

	conf, err := e.Load(context.Background(), "cache")
	require.NoError(t, err)
	assert.Equal(t, "300", conf["ttl"])
}
