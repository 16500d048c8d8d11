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

// Package codec provides encoding and decoding of configuration data.
//
// Codecs register themselves under a [Type] together with the filename
// patterns they serve. Loaders use the pattern registry to decide which
// codec handles a given source name, and the loader resolution chain uses
// it to recognize source-name suffixes.
//
// # Built-in codecs
//
//   - JSON (".json"), via encoding/json
//   - YAML (".yaml", ".yml"), via github.com/goccy/go-yaml
//   - TOML (".toml"), via github.com/BurntSushi/toml
//   - Environment variable listings (no patterns)
//   - Casters: single-value decoders for scalar leaf keys
//
// # Example
//
// Retrieving a decoder by type:
//
//	decoder, err := codec.GetDecoder(codec.TypeYAML)
//
// Resolving a codec from a filename suffix:
//
//	t, ok := codec.TypeForPattern(".yaml")  // codec.TypeYAML, true
package codec
