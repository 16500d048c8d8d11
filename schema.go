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
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cast"
	"github.com/stoewer/go-strcase"
)

// TagName is the struct tag that names a field in raw configuration data.
// Untagged fields default to the snake_case form of their Go name.
const TagName = "config"

// DefaultTagName is the struct tag carrying a field's default value.
const DefaultTagName = "default"

// Schema is the declared shape of a configuration record: an ordered field
// table derived once from a struct type by reflection. Schemas are
// immutable after construction; the engine only ever reads them.
type Schema struct {
	name   string
	goType reflect.Type
	fields []Field
	index  map[string]int
}

// Field is one entry of a schema's ordered field table.
type Field struct {
	// Name is the field's key in raw configuration data.
	Name string
	// GoName is the struct field name.
	GoName string
	// Descriptor is the field's normalized type.
	Descriptor *Descriptor
	// HasDefault reports whether a default value was declared.
	HasDefault bool
	// Default is the declared default value, valid when HasDefault is set.
	Default any

	// decodeName is the key the construction decoder matches against the
	// struct: the config tag when present, the Go name otherwise.
	decodeName string
}

// Required reports whether the field must be present in configuration
// data. A field is required exactly when it declares no default.
func (f Field) Required() bool { return !f.HasDefault }

// SchemaOption customizes a schema during construction.
type SchemaOption func(s *Schema) error

// WithName overrides the schema's logical source name. The name may carry
// a recognized suffix (e.g. "database.json") to pin the source format.
func WithName(name string) SchemaOption {
	return func(s *Schema) error {
		if name == "" {
			return fmt.Errorf("schema name cannot be empty")
		}
		s.name = name
		return nil
	}
}

// WithField overrides the descriptor of the named field. This is how
// shapes Go's type system cannot declare (sets, heterogeneous tuples,
// variadic tuples, sums) are attached to a field.
func WithField(name string, d *Descriptor) SchemaOption {
	return func(s *Schema) error {
		i, ok := s.fieldIndex(name)
		if !ok {
			return fmt.Errorf("schema %s has no field %q", s.goType.Name(), name)
		}
		if d == nil {
			return fmt.Errorf("descriptor for field %q cannot be nil", name)
		}
		s.fields[i].Descriptor = d
		return nil
	}
}

// WithDefault sets a programmatic default value for the named field,
// replacing any default declared via struct tag.
func WithDefault(name string, value any) SchemaOption {
	return func(s *Schema) error {
		i, ok := s.fieldIndex(name)
		if !ok {
			return fmt.Errorf("schema %s has no field %q", s.goType.Name(), name)
		}
		s.fields[i].HasDefault = true
		s.fields[i].Default = value
		return nil
	}
}

// Name returns the schema's logical source name.
func (s *Schema) Name() string { return s.name }

// GoType returns the struct type the schema was derived from.
func (s *Schema) GoType() reflect.Type { return s.goType }

// Fields returns the schema's ordered field table. The returned slice is
// a copy.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field returns the field with the given data name or Go name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.fieldIndex(name)
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

func (s *Schema) fieldIndex(name string) (int, bool) {
	if i, ok := s.index[name]; ok {
		return i, true
	}
	for i, f := range s.fields {
		if f.GoName == name {
			return i, true
		}
	}
	return 0, false
}

// hasRequiredFields reports whether any field lacks a default, meaning
// the schema cannot be constructed from defaults alone.
func (s *Schema) hasRequiredFields() bool {
	for _, f := range s.fields {
		if f.Required() {
			return true
		}
	}
	return false
}

// Descriptor trees are derived once per struct type and reused; reflection
// cost is paid at schema construction, not per load.
var (
	schemaMu    sync.Mutex
	schemaCache = make(map[reflect.Type]*Schema)
)

// SchemaOf derives the schema for the struct type T. Without options the
// schema is cached per type and shared; options produce a fresh copy.
//
// Example:
//
//	type Database struct {
//	    Host string `config:"host"`
//	    Port int    `config:"port" default:"5432"`
//	}
//
//	schema, err := typedconf.SchemaOf[Database]()
func SchemaOf[T any](opts ...SchemaOption) (*Schema, error) {
	return SchemaFor(reflect.TypeOf((*T)(nil)).Elem(), opts...)
}

// MustSchemaOf derives the schema for T and panics on declaration errors.
// Use this for package-level schema variables where a bad declaration
// should halt the program.
func MustSchemaOf[T any](opts ...SchemaOption) *Schema {
	s, err := SchemaOf[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("typedconf: failed to derive schema: %v", err))
	}
	return s
}

// SchemaFor derives the schema for the given struct type. A pointer type
// is unwrapped to its element. See SchemaOf for the generic form.
func SchemaFor(t reflect.Type, opts ...SchemaOption) (*Schema, error) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema type must be a struct, got %v", t)
	}

	schemaMu.Lock()
	s, err := buildSchema(t, make(map[reflect.Type]*Schema))
	schemaMu.Unlock()
	if err != nil {
		return nil, err
	}

	if len(opts) == 0 {
		return s, nil
	}

	clone := s.clone()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(clone); err != nil {
			return nil, err
		}
	}
	return clone, nil
}

// clone returns a shallow copy safe to customize without touching the
// cached schema.
func (s *Schema) clone() *Schema {
	c := &Schema{
		name:   s.name,
		goType: s.goType,
		fields: make([]Field, len(s.fields)),
		index:  make(map[string]int, len(s.index)),
	}
	copy(c.fields, s.fields)
	for k, v := range s.index {
		c.index[k] = v
	}
	return c
}

// buildSchema derives the field table for a struct type, consulting the
// cache first. The building map holds in-progress schemas so
// self-referential record types terminate. Callers must hold schemaMu.
func buildSchema(t reflect.Type, building map[reflect.Type]*Schema) (*Schema, error) {
	if cached, ok := schemaCache[t]; ok {
		return cached, nil
	}
	if inProgress, ok := building[t]; ok {
		return inProgress, nil
	}

	s := &Schema{
		name:   strcase.SnakeCase(t.Name()),
		goType: t,
		index:  make(map[string]int),
	}
	building[t] = s

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}

		tag, tagged := fieldTag(sf)
		if tag == "-" {
			continue
		}

		f := Field{
			GoName:     sf.Name,
			decodeName: sf.Name,
		}
		if tagged {
			f.Name = tag
			f.decodeName = tag
		} else {
			f.Name = strcase.SnakeCase(sf.Name)
		}

		d, err := describeType(sf.Type, building)
		if err != nil {
			return nil, err
		}
		f.Descriptor = d

		if defTag, ok := sf.Tag.Lookup(DefaultTagName); ok {
			def, err := parseDefault(defTag, sf.Type)
			if err != nil {
				return nil, fmt.Errorf("field %s.%s: %w", t.Name(), sf.Name, err)
			}
			f.HasDefault = true
			f.Default = def
		}

		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	schemaCache[t] = s
	return s, nil
}

// fieldTag returns the config tag's name part, reporting whether a
// non-empty name was given. Tag options after a comma are ignored.
func fieldTag(sf reflect.StructField) (string, bool) {
	tag, ok := sf.Tag.Lookup(TagName)
	if !ok {
		return "", false
	}
	if i := strings.Index(tag, ","); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" {
		return "", false
	}
	return tag, true
}

// parseDefault converts a default tag value to the field's type.
// Only scalar field types support the tag; everything else must use
// WithDefault.
func parseDefault(value string, t reflect.Type) (any, error) {
	switch t.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if t == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return nil, err
			}
			return d, nil
		}
		i, err := cast.ToInt64E(value)
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(i).Convert(t).Interface(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := cast.ToUint64E(value)
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(u).Convert(t).Interface(), nil
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(value)
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(f).Convert(t).Interface(), nil
	case reflect.Bool:
		b, err := cast.ToBoolE(value)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unsupported type for default tag: %s", t.Kind())
	}
}
