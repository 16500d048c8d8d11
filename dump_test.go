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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	t.Parallel()

	type database struct {
		Host string `config:"host"`
		Port int    `config:"port" default:"5432"`
	}

	db, err := Load[database](context.Background(), WithData(map[string]any{
		"host": "db.local",
	}))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "database.yaml")
	require.NoError(t, Save(context.Background(), db, path))

	//nolint:gosec // test file read is safe
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "db.local")
}

func TestSave_FormatBySuffix(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, Save(context.Background(), map[string]any{"key": "value"}, path))

	//nolint:gosec // test file read is safe
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"key": "value"}`, string(data))
}

func TestSave_UnrecognizedSuffix(t *testing.T) {
	t.Parallel()

	err := Save(context.Background(), map[string]any{}, "out.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no codec registered")
}
