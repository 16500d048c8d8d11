// Copyright 2025 The Rivaas Authors
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

package typedconf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// mockLoader is a test implementation of the Loader interface. It serves
// a fixed data map for the source names it knows.
type mockLoader struct {
	patterns []string
	data     map[string]map[string]any
	err      error
}

// Patterns implements the Loader interface for testing.
func (m *mockLoader) Patterns() []string { return m.patterns }

// Exists implements the Loader interface for testing.
func (m *mockLoader) Exists(_ context.Context, name string) bool {
	_, ok := m.data[name]
	return ok
}

// Load implements the Loader interface for testing.
func (m *mockLoader) Load(_ context.Context, name string) (map[string]any, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.data[name], nil
}

// TestLoader creates a mock pattern loader for testing. The data map is
// keyed by full source name including suffix (e.g. "database.json").
func TestLoader(patterns []string, data map[string]map[string]any) Loader {
	return &mockLoader{patterns: patterns, data: data}
}

// TestCatchAllLoader creates a mock catch-all loader serving the given
// configuration map for every source name.
func TestCatchAllLoader(conf map[string]any) Loader {
	return &catchAllLoader{conf: conf}
}

type catchAllLoader struct {
	conf map[string]any
}

func (c *catchAllLoader) Patterns() []string                  { return nil }
func (c *catchAllLoader) Exists(context.Context, string) bool { return true }
func (c *catchAllLoader) Load(context.Context, string) (map[string]any, error) {
	return c.conf, nil
}

// TestLoaderWithError creates a mock catch-all loader that fails every
// Load with the given error.
func TestLoaderWithError(err error) Loader {
	return &mockLoader{err: err}
}

// TestRegistry creates a registry pre-populated with the given loaders
// and unregisters nothing on cleanup; it never touches the process-wide
// default registry.
func TestRegistry(t *testing.T, loaders ...Loader) *Registry {
	t.Helper()
	return NewRegistry(loaders...)
}

// TestConfigFile writes content to a file with the given name in a
// temporary directory and returns the directory. The file is cleaned up
// when the test completes.
func TestConfigFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, name), content, 0o600)
	require.NoError(t, err, "failed to create test config file")
	return tmpDir
}
