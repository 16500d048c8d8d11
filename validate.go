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
	"math"
	"reflect"
	"time"
)

// Check validates data against the schema's field descriptors. It is a
// pure predicate: it never mutates its inputs and has no side effects.
// Fields are checked in declaration order and the first violation is
// returned as a *TypeMismatchError; fields absent from data are skipped.
func (s *Schema) Check(data map[string]any) error {
	return checkFields(s, "", data)
}

func checkFields(s *Schema, prefix string, data map[string]any) error {
	for _, f := range s.fields {
		v, ok := data[f.Name]
		if !ok {
			continue
		}
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}
		if err := conforms(path, f.Descriptor, v); err != nil {
			return err
		}
	}
	return nil
}

// conforms checks a single value against a descriptor, recursing through
// containers, sums and nested records.
func conforms(path string, d *Descriptor, v any) error {
	switch d.kind {
	case KindAny:
		return nil

	case KindNone:
		if isNil(v) {
			return nil
		}
		return mismatch(path, d, v)

	case KindBasic:
		// nil is accepted for any basic-typed field; optional-by-default
		// semantics rely on this.
		if isNil(v) {
			return nil
		}
		if basicConforms(d.typ, v) {
			return nil
		}
		return mismatch(path, d, v)

	case KindSequence, KindSet:
		items, ok := asSequence(v)
		if !ok {
			return mismatch(path, d, v)
		}
		for i, item := range items {
			if err := conforms(fmt.Sprintf("%s[%d]", path, i), d.elems[0], item); err != nil {
				return err
			}
		}
		return nil

	case KindMapping:
		entries, ok := asMapping(v)
		if !ok {
			return mismatch(path, d, v)
		}
		for _, e := range entries {
			keyPath := fmt.Sprintf("%s[%v]", path, e.key)
			if err := conforms(keyPath, d.elems[0], e.key); err != nil {
				return err
			}
			if err := conforms(keyPath, d.elems[1], e.value); err != nil {
				return err
			}
		}
		return nil

	case KindTuple:
		items, ok := asSequence(v)
		if !ok {
			return mismatch(path, d, v)
		}
		if len(items) != len(d.elems) {
			return &TypeMismatchError{
				Path:     path,
				Expected: d.String(),
				Actual:   fmt.Sprintf("%d elements", len(items)),
			}
		}
		for i, item := range items {
			if err := conforms(fmt.Sprintf("%s[%d]", path, i), d.elems[i], item); err != nil {
				return err
			}
		}
		return nil

	case KindVariadicTuple:
		items, ok := asSequence(v)
		if !ok {
			return mismatch(path, d, v)
		}
		for i, item := range items {
			if err := conforms(fmt.Sprintf("%s[%d]", path, i), d.elems[0], item); err != nil {
				return err
			}
		}
		return nil

	case KindSum:
		if isNil(v) {
			for _, alt := range d.elems {
				if alt.kind == KindNone {
					return nil
				}
			}
			return mismatch(path, d, v)
		}
		for _, alt := range d.elems {
			if conforms(path, alt, v) == nil {
				return nil
			}
		}
		// None of the alternatives matched; the expected rendering
		// names all of them.
		return mismatch(path, d, v)

	case KindRecord:
		if isNil(v) {
			return mismatch(path, d, v)
		}
		// An already-typed instance passes without re-validation.
		if isInstanceOf(v, d.record.goType) {
			return nil
		}
		if m, ok := asStringMap(v); ok {
			return checkFields(d.record, path, m)
		}
		return mismatch(path, d, v)
	}

	return mismatch(path, d, v)
}

// mismatch builds the TypeMismatchError for a non-conforming value.
func mismatch(path string, d *Descriptor, v any) error {
	return &TypeMismatchError{
		Path:     path,
		Expected: d.String(),
		Actual:   describeValue(v),
	}
}

// describeValue renders a value's runtime type for error messages.
func describeValue(v any) string {
	if isNil(v) {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

// isNil reports whether v is nil or a nil-valued pointer, map, slice or
// interface. Decoded configuration trees can carry either form.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// isInstanceOf reports whether v is an instance of the struct type t,
// directly or behind a pointer.
func isInstanceOf(v any, t reflect.Type) bool {
	vt := reflect.TypeOf(v)
	if vt == nil {
		return false
	}
	if vt.Kind() == reflect.Pointer {
		vt = vt.Elem()
	}
	return vt == t
}

// asSequence returns the elements of an ordered collection value.
func asSequence(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return items, true
	default:
		return nil, false
	}
}

type mapEntry struct {
	key   any
	value any
}

// asMapping returns the entries of a mapping value. Iteration order is
// not significant for validation; each entry is checked independently.
func asMapping(v any) ([]mapEntry, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	entries := make([]mapEntry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, mapEntry{key: iter.Key().Interface(), value: iter.Value().Interface()})
	}
	return entries, true
}

// asStringMap returns v as a string-keyed map, converting reflect-level
// string-keyed maps of other value types if needed.
func asStringMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

var (
	durationType = reflect.TypeOf(time.Duration(0))
	timeType     = reflect.TypeOf(time.Time{})
)

// basicConforms reports whether a value's runtime type conforms to the
// declared basic type. Numeric kinds form families, since decoded trees
// carry JSON numbers as float64 and YAML integers as varying widths, but
// a numeric string never conforms to a numeric type. Duration and time
// fields additionally accept their string forms, which the construction
// decoder's hooks understand.
func basicConforms(t reflect.Type, v any) bool {
	vt := reflect.TypeOf(v)
	if vt.AssignableTo(t) {
		return true
	}

	if s, ok := v.(string); ok {
		switch t {
		case durationType:
			_, err := time.ParseDuration(s)
			return err == nil
		case timeType:
			_, err := time.Parse(time.RFC3339, s)
			return err == nil
		}
		return false
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return isIntegral(v)
	case reflect.Float32, reflect.Float64:
		return isNumeric(v)
	}
	return false
}

// isIntegral reports whether v is an integer, or a float carrying a whole
// number.
func isIntegral(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	case float32:
		return float64(n) == math.Trunc(float64(n))
	case float64:
		return n == math.Trunc(n)
	}
	return false
}

// isNumeric reports whether v is any integer or float.
func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr, float32, float64:
		return true
	}
	return false
}
