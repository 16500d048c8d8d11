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
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// Validator is implemented by record types that run their own checks
// after construction. A returned error is propagated unchanged in cause.
type Validator interface {
	Validate() error
}

// Materialize recursively converts raw configuration data into a fresh
// instance of the schema's record type, returned as a pointer to the
// struct. For every declared field, in declaration order:
//
//  1. An absent field takes the declared default; without one it stays
//     absent and surfaces as a construction error if required.
//  2. A nil value for a nested record constructs the record from its own
//     defaults; if the nested schema has required fields the value stays
//     nil instead.
//  3. A raw mapping for a nested record recurses.
//  4. Containers of nested records convert element-wise, preserving
//     order and key shape. Sets pass through raw: record instances are
//     not required to be comparable, so set elements stay unconverted.
//  5. Everything else passes through unchanged.
//
// Validation runs after conversion, so it sees concrete nested instances
// rather than raw mappings. An instance is created fresh on every call
// and never cached.
func (s *Schema) Materialize(data map[string]any) (any, error) {
	resolved := make(map[string]any, len(s.fields))

	for _, f := range s.fields {
		v, ok := data[f.Name]
		if !ok {
			if f.HasDefault {
				resolved[f.Name] = f.Default
			}
			continue
		}

		converted, err := convertValue(f.Descriptor, v)
		if err != nil {
			return nil, err
		}
		resolved[f.Name] = converted
	}

	if err := s.Check(resolved); err != nil {
		return nil, err
	}

	return s.construct(resolved)
}

// convertValue applies nested-record materialization beneath a single
// descriptor. Values the descriptor cannot convert pass through raw; the
// validator reports them afterwards with a proper field path.
func convertValue(d *Descriptor, v any) (any, error) {
	switch d.kind {
	case KindRecord:
		return convertRecord(d.record, v)

	case KindSequence, KindTuple, KindVariadicTuple:
		elem := recordElem(d)
		if elem == nil {
			return v, nil
		}
		items, ok := asSequence(v)
		if !ok {
			return v, nil
		}
		out := make([]any, len(items))
		for i, item := range items {
			converted, err := convertRecord(elem.record, item)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil

	case KindMapping:
		if d.elems[1].kind != KindRecord {
			return v, nil
		}
		m, ok := asStringMap(v)
		if !ok {
			return v, nil
		}
		out := make(map[string]any, len(m))
		for k, item := range m {
			converted, err := convertRecord(d.elems[1].record, item)
			if err != nil {
				return nil, err
			}
			out[k] = converted
		}
		return out, nil

	case KindSum:
		if isNil(v) {
			return v, nil
		}
		m, ok := asStringMap(v)
		if !ok {
			return v, nil
		}
		// A raw mapping is tried against each record alternative in sum
		// order; the first that constructs wins. If none does, the first
		// alternative's failure is reported.
		var firstErr error
		for _, alt := range d.elems {
			if alt.kind != KindRecord {
				continue
			}
			instance, err := alt.record.Materialize(m)
			if err == nil {
				return instance, nil
			}
			if firstErr == nil {
				firstErr = err
			}
		}
		if firstErr != nil {
			return nil, firstErr
		}
		return v, nil

	default:
		return v, nil
	}
}

// recordElem returns the element descriptor's nested record when a
// sequence or tuple carries record elements, nil otherwise.
func recordElem(d *Descriptor) *Descriptor {
	if len(d.elems) == 0 {
		return nil
	}
	// Fixed tuples repeat the check positionally only when every
	// position is the same record.
	first := d.elems[0]
	if first.kind != KindRecord {
		return nil
	}
	for _, e := range d.elems[1:] {
		if e.kind != KindRecord || e.record != first.record {
			return nil
		}
	}
	return first
}

// convertRecord materializes one nested record value per steps 2 and 3
// of Materialize.
func convertRecord(nested *Schema, v any) (any, error) {
	if isNil(v) {
		if nested.hasRequiredFields() {
			// Absence stays absence; it is only valid if the outer
			// field permits nil.
			return nil, nil
		}
		return nested.Materialize(map[string]any{})
	}

	if isInstanceOf(v, nested.goType) {
		// Already typed; passes through without re-materialization.
		return v, nil
	}

	if m, ok := asStringMap(v); ok {
		return nested.Materialize(m)
	}

	return v, nil
}

// structValidator runs `validate` struct tags after construction,
// complementing the Validator interface hook.
var structValidator = validator.New(validator.WithRequiredStructEnabled())

// construct builds the typed instance from the resolved field values.
func (s *Schema) construct(resolved map[string]any) (any, error) {
	for _, f := range s.fields {
		if f.Required() {
			if _, ok := resolved[f.Name]; !ok {
				return nil, newConstructionError(s, fmt.Errorf("missing required field %q", f.Name))
			}
		}
	}

	// The decoder matches struct fields by tag name or Go name, not by
	// the external data name; remap before decoding.
	input := make(map[string]any, len(resolved))
	for _, f := range s.fields {
		if v, ok := resolved[f.Name]; ok {
			input[f.decodeName] = v
		}
	}

	target := reflect.New(s.goType).Interface()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: TagName,
		Result:  target,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToURLHookFunc(),
		),
	})
	if err != nil {
		return nil, newConstructionError(s, fmt.Errorf("failed to create decoder: %w", err))
	}
	if err := decoder.Decode(input); err != nil {
		return nil, newConstructionError(s, err)
	}

	if err := structValidator.Struct(target); err != nil {
		return nil, newConstructionError(s, err)
	}
	if v, ok := target.(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, newConstructionError(s, err)
		}
	}

	return target, nil
}
