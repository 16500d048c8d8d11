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

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"reflect"

	"dario.cat/mergo"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// LoadOption customizes a single Load call.
type LoadOption func(c *loadConfig) error

type loadConfig struct {
	data     map[string]any
	explicit bool
	registry *Registry
	overlays []Loader
	schema   *jsonschema.Schema
	logger   *slog.Logger
}

// WithData supplies the raw configuration mapping directly, skipping the
// loader resolution chain entirely.
func WithData(data map[string]any) LoadOption {
	return func(c *loadConfig) error {
		c.data = data
		c.explicit = true
		return nil
	}
}

// WithRegistry resolves the schema's source through the given registry
// instead of the process-wide default.
func WithRegistry(r *Registry) LoadOption {
	return func(c *loadConfig) error {
		if r == nil {
			return errors.New("registry cannot be nil")
		}
		c.registry = r
		return nil
	}
}

// WithOverlay merges an additional source over the resolved base data,
// later overlays overriding earlier ones. Overlays load by the schema's
// source name; a failing overlay fails the Load call.
func WithOverlay(l Loader) LoadOption {
	return func(c *loadConfig) error {
		if l == nil {
			return errors.New("overlay loader cannot be nil")
		}
		c.overlays = append(c.overlays, l)
		return nil
	}
}

// WithJSONSchema validates the raw mapping against a JSON Schema before
// materialization. Schema violations surface as ErrInvalid.
func WithJSONSchema(schema []byte) LoadOption {
	return func(c *loadConfig) error {
		// Unique resource name to avoid compiler caching across calls.
		//nolint:gosec // rand.Int() names the schema resource, not security sensitive
		schemaName := fmt.Sprintf("inline_%d.json", rand.Int())
		compiler := jsonschema.NewCompiler()

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
		if err != nil {
			return err
		}
		if err = compiler.AddResource(schemaName, doc); err != nil {
			return err
		}
		s, err := compiler.Compile(schemaName)
		if err != nil {
			return err
		}
		c.schema = s
		return nil
	}
}

// WithLogger enables debug logging of resolution decisions on the given
// logger. Without it the engine is silent.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(c *loadConfig) error {
		c.logger = logger
		return nil
	}
}

// Load resolves, validates and materializes configuration for the record
// type T, deriving the schema with SchemaOf. The instance is created
// fresh on every call; the engine never caches it.
//
// Errors match ErrNotFound when no loader could locate backing data, and
// ErrInvalid for type mismatches, schema violations and construction
// failures, with the original cause chained.
//
// Example:
//
//	type Database struct {
//	    Host string `config:"host"`
//	    Port int    `config:"port" default:"5432"`
//	}
//
//	db, err := typedconf.Load[Database](ctx)
func Load[T any](ctx context.Context, opts ...LoadOption) (*T, error) {
	// The instance is returned as *T, so T itself must be the struct
	// type. A pointer type parameter would make the assertion below a
	// double pointer.
	if t := reflect.TypeOf((*T)(nil)).Elem(); t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("record type must be a struct, got %s", t.Kind())
	}
	s, err := SchemaOf[T]()
	if err != nil {
		return nil, err
	}
	instance, err := LoadSchema(ctx, s, opts...)
	if err != nil {
		return nil, err
	}
	return instance.(*T), nil
}

// MustLoad loads configuration for T or panics. Use this in main() or
// initialization code where configuration failure should halt the
// program; everywhere else use Load.
func MustLoad[T any](ctx context.Context, opts ...LoadOption) *T {
	instance, err := Load[T](ctx, opts...)
	if err != nil {
		panic(fmt.Sprintf("typedconf: failed to load configuration: %v", err))
	}
	return instance
}

// LoadSchema is the non-generic form of Load for callers holding a
// customized or dynamically derived schema. The returned instance is a
// pointer to the schema's record type.
func LoadSchema(ctx context.Context, s *Schema, opts ...LoadOption) (any, error) {
	if ctx == nil {
		return nil, errors.New("context cannot be nil")
	}
	if s == nil {
		return nil, errors.New("schema cannot be nil")
	}

	cfg := &loadConfig{registry: defaultRegistry}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	raw := cfg.data
	if !cfg.explicit {
		resolved, err := cfg.registry.Resolve(ctx, s.Name())
		if err != nil {
			return nil, err
		}
		raw = resolved
	}
	if raw == nil {
		raw = make(map[string]any)
	}

	for _, overlay := range cfg.overlays {
		conf, err := overlay.Load(ctx, s.Name())
		if err != nil {
			return nil, fmt.Errorf("overlay load failed for %q: %w", s.Name(), err)
		}
		if err := mergo.Map(&raw, conf, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("overlay merge failed for %q: %w", s.Name(), err)
		}
	}

	if cfg.schema != nil {
		if err := cfg.schema.Validate(raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}

	// Unknown keys are dropped so schemas can evolve ahead of their
	// sources.
	filtered := make(map[string]any, len(raw))
	for key, value := range raw {
		if _, ok := s.index[key]; ok {
			filtered[key] = value
		}
	}

	instance, err := s.Materialize(filtered)
	if err != nil {
		return nil, err
	}

	if cfg.logger != nil {
		cfg.logger.DebugContext(ctx, "configuration loaded",
			slog.String("schema", s.GoType().Name()),
			slog.String("source", s.Name()),
			slog.Bool("explicit", cfg.explicit),
			slog.Int("fields", len(filtered)),
		)
	}

	return instance, nil
}
