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

package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rivaas.dev/typedconf/codec"
)

// Env is a catch-all loader that reads configuration from environment
// variables. Variables are scoped per source name: with prefix "APP_",
// the source "database" reads variables starting with "APP_DATABASE_".
//
// The remainder of each variable name is lowercased and underscores
// create nested structures, so APP_DATABASE_POOL_SIZE becomes
// pool.size under the database source. Values stay strings; the
// materializer's decode hooks handle durations and timestamps.
type Env struct {
	prefix  string
	decoder codec.Decoder
}

// NewEnv creates an Env loader with the given application prefix. The
// prefix should include its trailing separator (e.g. "APP_"); an empty
// prefix scopes by source name alone.
func NewEnv(prefix string) *Env {
	return &Env{
		prefix:  prefix,
		decoder: codec.EnvVarCodec{},
	}
}

// Patterns returns nil: environment variables are a catch-all source
// with no filename association.
func (e *Env) Patterns() []string { return nil }

// Exists reports whether at least one environment variable falls under
// the source's scope.
func (e *Env) Exists(_ context.Context, name string) bool {
	scope := e.scope(name)
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, scope) {
			return true
		}
	}
	return false
}

// Load reads the scoped environment variables and decodes them into a
// configuration map. A source with no matching variables loads as an
// empty map.
//
// Errors:
//   - Returns error if decoding fails
func (e *Env) Load(_ context.Context, name string) (map[string]any, error) {
	scope := e.scope(name)

	matched := make([]string, 0, len(os.Environ()))
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, scope) {
			continue
		}
		matched = append(matched, strings.TrimPrefix(env, scope))
	}

	data := strings.Join(matched, "\n")

	var conf map[string]any
	if err := e.decoder.Decode([]byte(data), &conf); err != nil {
		return nil, fmt.Errorf("failed to decode environment variables: %w", err)
	}

	return conf, nil
}

// scope builds the variable-name prefix for a source. A recognized
// codec suffix on the name is dropped first, so "database.json" and
// "database" scope identically.
func (e *Env) scope(name string) string {
	if ext := filepath.Ext(name); ext != "" {
		if _, ok := codec.TypeForPattern(ext); ok {
			name = strings.TrimSuffix(name, ext)
		}
	}
	return e.prefix + strings.ToUpper(name) + "_"
}
