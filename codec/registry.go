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

import "fmt"

// Registry holds the registered encoders and decoders together with the
// filename patterns each codec serves. Patterns are suffixes such as
// ".json" or ".yaml"; loaders consult them to decide which codec handles
// a given source name.
type Registry struct {
	encoders map[Type]Encoder
	decoders map[Type]Decoder
	patterns map[Type][]string
	byExt    map[string]Type
}

var registry = &Registry{
	encoders: make(map[Type]Encoder),
	decoders: make(map[Type]Decoder),
	patterns: make(map[Type][]string),
	byExt:    make(map[string]Type),
}

// RegisterEncoder registers an encoder for the given type. The encoder can be
// retrieved later with GetEncoder.
func RegisterEncoder(name Type, encoder Encoder) {
	registry.encoders[name] = encoder
}

// RegisterDecoder registers a decoder for the given type. The decoder can be
// retrieved later with GetDecoder.
func RegisterDecoder(name Type, decoder Decoder) {
	registry.decoders[name] = decoder
}

// RegisterPatterns associates filename patterns with a codec type.
// Patterns are recorded in registration order; the first registered
// pattern is the codec's canonical suffix.
func RegisterPatterns(name Type, patterns ...string) {
	registry.patterns[name] = append(registry.patterns[name], patterns...)
	for _, p := range patterns {
		if _, exists := registry.byExt[p]; !exists {
			registry.byExt[p] = name
		}
	}
}

// GetEncoder retrieves the registered encoder for the given type. If no encoder
// is registered for the given type, an error is returned.
func GetEncoder(name Type) (Encoder, error) {
	encoder, exists := registry.encoders[name]
	if !exists {
		return nil, fmt.Errorf("encoder not found for type: %s", name)
	}

	return encoder, nil
}

// GetDecoder retrieves the registered decoder for the given type. If no decoder
// is registered for the given type, an error is returned.
func GetDecoder(name Type) (Decoder, error) {
	decoder, exists := registry.decoders[name]
	if !exists {
		return nil, fmt.Errorf("decoder not found for type: %s", name)
	}

	return decoder, nil
}

// Patterns returns the filename patterns registered for the given type,
// in registration order. The returned slice is a copy.
func Patterns(name Type) []string {
	src := registry.patterns[name]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// TypeForPattern returns the codec type that serves the given filename
// pattern (e.g. ".yaml"). The second return value reports whether any
// codec recognizes the pattern.
func TypeForPattern(pattern string) (Type, bool) {
	t, ok := registry.byExt[pattern]
	return t, ok
}
