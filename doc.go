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

// Package typedconf resolves raw configuration data into validated,
// typed record instances.
//
// A record is any struct whose exported fields describe configuration.
// The package derives a schema from the struct, resolves backing data
// through an ordered chain of loaders, validates the data against each
// field's declared type, and materializes a fully typed instance with
// nested records constructed recursively.
//
// # Key Features
//
//   - Schema derivation from struct types, with per-field defaults
//   - Recursive type validation with precise field paths in errors
//   - Nested record materialization, including records in slices and maps
//   - Ordered loader resolution across files, environment variables, and Consul
//   - Automatic format detection by filename pattern (JSON, YAML, TOML)
//   - Overlay merging and JSON Schema validation at load time
//
// # Quick Start
//
// Declare a record and load it:
//
//	type Database struct {
//	    Host    string        `config:"host"`
//	    Port    int           `config:"port" default:"5432"`
//	    Timeout time.Duration `config:"timeout" default:"30s"`
//	}
//
//	jsonLoader, _ := loader.NewFile("$CONFIG_DIR", codec.TypeJSON)
//	typedconf.Register(jsonLoader)
//
//	db, err := typedconf.Load[Database](ctx)
//
// The schema's source name is the snake_case form of the struct name, so
// Database resolves "database" and a registered JSON file loader reads
// "database.json".
//
// # Field Declaration
//
// Field names come from the `config` tag, or the snake_case form of the
// Go name when the tag is absent. A `default` tag makes the field
// optional; fields without one are required. A field tagged `config:"-"`
// is ignored.
//
//	type Server struct {
//	    Host     string `config:"host" default:"localhost"`
//	    Port     int    `default:"8080"`       // named "port"
//	    internal int    // unexported, ignored
//	}
//
// Pointer fields are optional: *Endpoint accepts either a nested mapping
// or nothing at all.
//
// # Validation
//
// Data is validated against the schema before construction. A value of
// the wrong shape fails with a [TypeMismatchError] naming the offending
// field by its dotted path:
//
//	field database.pool.size: expected int, got string
//
// After construction, `validate` struct tags run, and a record
// implementing [Validator] has its Validate method called:
//
//	func (d *Database) Validate() error {
//	    if d.Port < 1 || d.Port > 65535 {
//	        return fmt.Errorf("port out of range: %d", d.Port)
//	    }
//	    return nil
//	}
//
// # Loader Resolution
//
// Loaders are registered in order; registration order decides which
// loader wins when several could satisfy a source. Pattern loaders serve
// names by suffix, catch-all loaders (environment variables) answer for
// anything and are consulted last. See [Registry.Resolve] for the exact
// selection rules.
//
// # Error Handling
//
// All failures match one of two sentinels with errors.Is: [ErrNotFound]
// when no loader could locate backing data, and [ErrInvalid] for type
// mismatches, schema violations and construction failures. Concrete
// error types carry the detail:
//
//	var mismatch *typedconf.TypeMismatchError
//	if errors.As(err, &mismatch) {
//	    fmt.Printf("bad value at %s\n", mismatch.Path)
//	}
//
// # Thread Safety
//
// Schema derivation is cached and safe for concurrent use. Loader
// registration and resolution are atomic per operation; Load never
// caches instances, so every call yields a fresh value.
package typedconf
