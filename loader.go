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

package typedconf

import "context"

// Loader is a stateless capability that retrieves raw configuration data
// from one kind of source. Implementations identify themselves by the
// source-name patterns they satisfy; a loader with no patterns is a
// catch-all source such as environment variables.
//
// The resolution chain selects loaders by declared capability and source
// existence only; it never inspects file contents.
type Loader interface {
	// Patterns returns the source-name suffixes this loader recognizes
	// (e.g. ".json"). A nil or empty result marks a catch-all loader.
	Patterns() []string

	// Exists reports whether a backing source can be found for the
	// given source name. It must not load or parse the source.
	Exists(ctx context.Context, name string) bool

	// Load retrieves the raw configuration mapping for the given source
	// name. Catch-all loaders may return an empty map.
	Load(ctx context.Context, name string) (map[string]any, error)
}
