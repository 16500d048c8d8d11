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
	"errors"
	"fmt"
)

// Sentinel errors for the two failure categories callers are expected to
// branch on. Every error returned by Load matches exactly one of them
// under errors.Is; the concrete error types below carry the detail.
var (
	// ErrNotFound reports that no loader could locate backing data for
	// the schema.
	ErrNotFound = errors.New("configuration not found")
	// ErrInvalid reports that located data does not satisfy the schema:
	// a type mismatch, a failed construction, or a failed
	// post-construction check.
	ErrInvalid = errors.New("configuration invalid")
)

// NotFoundError is returned when the loader resolution chain exhausts all
// registered loaders without locating backing data.
type NotFoundError struct {
	// Name is the logical source name that was resolved.
	Name string
	// Err is the last loader failure observed, if any.
	Err error
}

// Error returns a formatted message naming the unresolvable source.
func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration not found for %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("configuration not found for %q", e.Name)
}

// Unwrap returns the underlying loader error, if any.
func (e *NotFoundError) Unwrap() error { return e.Err }

// Is reports ErrNotFound so callers can branch with errors.Is.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// TypeMismatchError reports the first value whose runtime shape does not
// conform to its declared descriptor. Validation stops at the first
// violation, in field declaration order, so the reported path is
// deterministic for identical inputs.
type TypeMismatchError struct {
	// Path is the dotted, indexed path of the offending value,
	// e.g. "child.ports[1]".
	Path string
	// Expected is the declared descriptor rendering.
	Expected string
	// Actual describes the value that was found.
	Actual string
}

// Error returns a formatted message with the field path and the
// expected/actual descriptions.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Is reports ErrInvalid so callers can branch with errors.Is.
func (e *TypeMismatchError) Is(target error) bool { return target == ErrInvalid }

// ConstructionError reports that the record type itself rejected the
// assembled field values: a missing required field, a decode failure, or
// a post-construction check raised by the type. The original cause is
// chained unmodified.
type ConstructionError struct {
	// Schema names the record type under construction.
	Schema string
	// Err is the original failure.
	Err error
}

// Error returns a formatted message naming the record type.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("failed to construct %s: %v", e.Schema, e.Err)
}

// Unwrap returns the original construction failure.
func (e *ConstructionError) Unwrap() error { return e.Err }

// Is reports ErrInvalid so callers can branch with errors.Is.
func (e *ConstructionError) Is(target error) bool { return target == ErrInvalid }

// newConstructionError wraps err as a construction failure of schema s.
func newConstructionError(s *Schema, err error) *ConstructionError {
	return &ConstructionError{Schema: s.goType.Name(), Err: err}
}
