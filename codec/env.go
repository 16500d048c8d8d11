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

package codec

import (
	"bytes"
	"fmt"
	"strings"
)

// TypeEnvVar is a constant representing the environment variable codec.
const TypeEnvVar Type = "env_var"

// init registers the EnvVarCodec under the TypeEnvVar type.
// Environment variables carry no filename patterns.
func init() {
	RegisterEncoder(TypeEnvVar, EnvVarCodec{})
	RegisterDecoder(TypeEnvVar, EnvVarCodec{})
}

// EnvVarCodec decodes environment variable listings into configuration maps.
// Input is a newline-separated list of KEY=VALUE pairs. Keys are lowercased
// and underscores create nested structures, so SERVER_PORT=8080 decodes to
// {"server": {"port": "8080"}}. Values stay strings; no coercion happens here.
type EnvVarCodec struct{}

// Encode is provided for interface compatibility only; environment
// variables are a read-only source.
func (EnvVarCodec) Encode(_ any) ([]byte, error) {
	return nil, fmt.Errorf("encoding to environment variables is not supported")
}

// Decode decodes the provided KEY=VALUE lines into a configuration map.
// Malformed lines and empty keys are skipped.
func (EnvVarCodec) Decode(data []byte, v any) error {
	conf := make(map[string]any)

	for _, line := range bytes.Split(data, []byte("\n")) {
		pair := strings.SplitN(string(line), "=", 2)
		if len(pair) != 2 {
			continue
		}

		key := strings.TrimSpace(pair[0])
		if key == "" {
			continue
		}

		parts := splitEnvKey(key)
		if len(parts) == 0 {
			continue
		}

		current := conf
		for _, part := range parts[:len(parts)-1] {
			next, ok := current[part].(map[string]any)
			if !ok {
				// Overwrites a previously-set scalar at this level.
				next = make(map[string]any)
				current[part] = next
			}
			current = next
		}
		current[parts[len(parts)-1]] = strings.TrimSpace(pair[1])
	}

	ptr, ok := v.(*map[string]any)
	if !ok {
		return fmt.Errorf("EnvVarCodec.Decode: expected *map[string]any, got %T", v)
	}
	*ptr = conf

	return nil
}

// splitEnvKey lowercases an environment variable name and splits it on
// underscores, dropping empty segments produced by doubled underscores.
func splitEnvKey(key string) []string {
	raw := strings.Split(strings.ToLower(key), "_")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
