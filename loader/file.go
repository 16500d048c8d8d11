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

	"rivaas.dev/typedconf/codec"
)

// File loads configuration files of one format from a directory. Its
// patterns come from the codec registry, so a JSON file loader answers
// for names ending in ".json".
//
// Environment variables in the directory path are expanded at
// construction, so "$CONFIG_DIR" resolves against the process
// environment.
type File struct {
	dir      string
	patterns []string
	decoder  codec.Decoder
}

// NewFile creates a File loader serving the given directory with the
// codec registered under codecType.
//
// Errors:
//   - Returns error if no decoder is registered for codecType
//   - Returns error if the codec carries no filename patterns
func NewFile(dir string, codecType codec.Type) (*File, error) {
	decoder, err := codec.GetDecoder(codecType)
	if err != nil {
		return nil, err
	}
	patterns := codec.Patterns(codecType)
	if len(patterns) == 0 {
		return nil, fmt.Errorf("codec %q has no filename patterns", codecType)
	}
	return &File{
		dir:      os.ExpandEnv(dir),
		patterns: patterns,
		decoder:  decoder,
	}, nil
}

// Patterns returns the filename suffixes the loader's codec serves.
func (f *File) Patterns() []string {
	out := make([]string, len(f.patterns))
	copy(out, f.patterns)
	return out
}

// Exists reports whether a file with the given name is present in the
// loader's directory. The file is not opened.
func (f *File) Exists(_ context.Context, name string) bool {
	info, err := os.Stat(filepath.Join(f.dir, name))
	return err == nil && !info.IsDir()
}

// Load reads and decodes the named file from the loader's directory.
//
// Errors:
//   - Returns error if the file cannot be read
//   - Returns error if decoding fails
func (f *File) Load(_ context.Context, name string) (map[string]any, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var conf map[string]any
	if err = f.decoder.Decode(data, &conf); err != nil {
		return nil, fmt.Errorf("failed to decode file %q: %w", name, err)
	}

	return conf, nil
}
