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
	"reflect"
	"strings"
)

// Kind discriminates the variants of a [Descriptor].
type Kind int

// Descriptor kinds. Every field of a schema normalizes to exactly one of
// these; exhaustive switches over Kind keep the validator and materializer
// compiler-checked.
const (
	// KindAny matches every value; all checks are skipped.
	KindAny Kind = iota
	// KindBasic is a single concrete type such as string or int.
	KindBasic
	// KindSequence is an ordered collection with one element descriptor.
	KindSequence
	// KindSet is an unordered collection with one element descriptor.
	KindSet
	// KindMapping is a key/value mapping with two element descriptors.
	KindMapping
	// KindTuple is a fixed-size ordered collection with positional
	// element descriptors.
	KindTuple
	// KindVariadicTuple is an ordered collection of any length whose
	// single element descriptor repeats for every position.
	KindVariadicTuple
	// KindSum is an ordered list of alternatives; the first structural
	// match wins.
	KindSum
	// KindNone matches only the absence of a value (nil).
	KindNone
	// KindRecord is a nested schema.
	KindRecord
)

// Descriptor is the normalized representation of a field's declared type.
// Descriptors form an immutable tree; the validator and materializer only
// ever read them.
type Descriptor struct {
	kind   Kind
	typ    reflect.Type  // KindBasic
	elems  []*Descriptor // container parameters or sum alternatives
	record *Schema       // KindRecord
}

// Kind returns the descriptor's variant tag.
func (d *Descriptor) Kind() Kind { return d.kind }

// Elems returns the descriptor's element descriptors: container
// parameters for container kinds, alternatives for sums.
func (d *Descriptor) Elems() []*Descriptor { return d.elems }

// Record returns the nested schema of a KindRecord descriptor, nil otherwise.
func (d *Descriptor) Record() *Schema { return d.record }

// AnyValue returns a descriptor that matches everything.
func AnyValue() *Descriptor {
	return &Descriptor{kind: KindAny}
}

// BasicType returns a descriptor for a single concrete type.
func BasicType(t reflect.Type) *Descriptor {
	return &Descriptor{kind: KindBasic, typ: t}
}

// BasicOf returns a descriptor for the concrete type T.
func BasicOf[T any]() *Descriptor {
	return BasicType(reflect.TypeOf((*T)(nil)).Elem())
}

// Sequence returns a descriptor for an ordered collection of elem.
func Sequence(elem *Descriptor) *Descriptor {
	return &Descriptor{kind: KindSequence, elems: []*Descriptor{elem}}
}

// Set returns a descriptor for an unordered collection of elem.
// Raw data has no native set shape; a set validates any collection value
// element-wise without considering order.
func Set(elem *Descriptor) *Descriptor {
	return &Descriptor{kind: KindSet, elems: []*Descriptor{elem}}
}

// Mapping returns a descriptor for a key/value mapping.
func Mapping(key, value *Descriptor) *Descriptor {
	return &Descriptor{kind: KindMapping, elems: []*Descriptor{key, value}}
}

// Tuple returns a descriptor for a fixed-size ordered collection with one
// positional descriptor per element.
func Tuple(elems ...*Descriptor) *Descriptor {
	return &Descriptor{kind: KindTuple, elems: elems}
}

// VariadicTuple returns a descriptor for an ordered collection of any
// length, every element checked against elem. An empty value always matches.
func VariadicTuple(elem *Descriptor) *Descriptor {
	return &Descriptor{kind: KindVariadicTuple, elems: []*Descriptor{elem}}
}

// OneOf returns a sum descriptor. Alternatives are tried in the given
// order and the first structural match wins.
func OneOf(alternatives ...*Descriptor) *Descriptor {
	return &Descriptor{kind: KindSum, elems: alternatives}
}

// None returns a descriptor matching only the absence of a value.
// It is meaningful as a sum alternative: OneOf(BasicOf[int](), None()).
func None() *Descriptor {
	return &Descriptor{kind: KindNone}
}

// Nullable is shorthand for OneOf(d, None()).
func Nullable(d *Descriptor) *Descriptor {
	return OneOf(d, None())
}

// RecordOf returns a descriptor for a nested schema.
func RecordOf(s *Schema) *Descriptor {
	return &Descriptor{kind: KindRecord, record: s}
}

// String renders the descriptor in a compact Go-flavored notation, used
// in type mismatch messages.
func (d *Descriptor) String() string {
	switch d.kind {
	case KindAny:
		return "any"
	case KindNone:
		return "none"
	case KindBasic:
		return d.typ.String()
	case KindSequence:
		return "[]" + d.elems[0].String()
	case KindSet:
		return "set[" + d.elems[0].String() + "]"
	case KindMapping:
		return "map[" + d.elems[0].String() + "]" + d.elems[1].String()
	case KindTuple:
		parts := make([]string, len(d.elems))
		for i, e := range d.elems {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KindVariadicTuple:
		return "(" + d.elems[0].String() + ", ...)"
	case KindSum:
		parts := make([]string, len(d.elems))
		for i, e := range d.elems {
			parts[i] = e.String()
		}
		return strings.Join(parts, " | ")
	case KindRecord:
		return "record " + d.record.GoType().Name()
	}
	return "unknown"
}

// describeType normalizes a declared Go type into a descriptor.
// It never fails on an unsupported shape; types the engine cannot check
// degrade to AnyValue so that validation stays advisory for them.
// The building map carries in-progress schemas so self-referential record
// types resolve to the schema under construction instead of recursing.
func describeType(t reflect.Type, building map[reflect.Type]*Schema) (*Descriptor, error) {
	if t == nil {
		return AnyValue(), nil
	}

	switch t.Kind() {
	case reflect.Interface:
		return AnyValue(), nil

	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return BasicType(t), nil

	case reflect.Slice:
		elem, err := describeType(t.Elem(), building)
		if err != nil {
			return nil, err
		}
		return Sequence(elem), nil

	case reflect.Array:
		elem, err := describeType(t.Elem(), building)
		if err != nil {
			return nil, err
		}
		elems := make([]*Descriptor, t.Len())
		for i := range elems {
			elems[i] = elem
		}
		return Tuple(elems...), nil

	case reflect.Map:
		key, err := describeType(t.Key(), building)
		if err != nil {
			return nil, err
		}
		value, err := describeType(t.Elem(), building)
		if err != nil {
			return nil, err
		}
		return Mapping(key, value), nil

	case reflect.Pointer:
		elem, err := describeType(t.Elem(), building)
		if err != nil {
			return nil, err
		}
		return OneOf(elem, None()), nil

	case reflect.Struct:
		if !hasExportedFields(t) {
			// Opaque structs such as time.Time are scalars, not records.
			return BasicType(t), nil
		}
		nested, err := buildSchema(t, building)
		if err != nil {
			return nil, err
		}
		return RecordOf(nested), nil

	default:
		return AnyValue(), nil
	}
}

// hasExportedFields reports whether t declares at least one exported field.
func hasExportedFields(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return true
		}
	}
	return false
}
