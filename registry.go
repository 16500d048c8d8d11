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
	"context"
	"path/filepath"
	"sync"
)

// Registry is an insertion-ordered collection of loaders. Registration
// order is significant: it decides which loader wins when several could
// satisfy a source. The zero Registry is ready to use.
//
// Registration and unregistration are atomic; Resolve works on a
// snapshot taken under the same lock. Beyond that the registry provides
// no synchronization; callers mutating the registry while a resolve is
// in flight must serialize themselves.
type Registry struct {
	mu      sync.Mutex
	loaders []Loader
}

// NewRegistry creates a registry pre-populated with the given loaders,
// in order. Applications with independent configuration contexts can
// hold several registries; everything else uses the process-wide default.
func NewRegistry(loaders ...Loader) *Registry {
	r := &Registry{}
	for _, l := range loaders {
		r.Register(l)
	}
	return r
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide loader registry used by Load
// unless WithRegistry overrides it.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register appends a loader to the process-wide registry.
func Register(l Loader) { defaultRegistry.Register(l) }

// Unregister removes a loader from the process-wide registry.
func Unregister(l Loader) { defaultRegistry.Unregister(l) }

// Register appends a loader to the registry. Registering the same loader
// twice appends it again; duplicates are allowed by design.
func (r *Registry) Register(l Loader) {
	if l == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders = append(r.loaders, l)
}

// Unregister removes the first occurrence of the given loader, compared
// by identity. Unregistering a loader that is not registered is a
// silent no-op.
func (r *Registry) Unregister(l Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.loaders {
		if existing == l {
			r.loaders = append(r.loaders[:i], r.loaders[i+1:]...)
			return
		}
	}
}

// Loaders returns all registered loaders in registration order.
func (r *Registry) Loaders() []Loader {
	return r.snapshot()
}

// PatternLoaders returns the registered pattern-based loaders in
// registration order, excluding catch-alls.
func (r *Registry) PatternLoaders() []Loader {
	var out []Loader
	for _, l := range r.snapshot() {
		if len(l.Patterns()) > 0 {
			out = append(out, l)
		}
	}
	return out
}

func (r *Registry) snapshot() []Loader {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Loader, len(r.loaders))
	copy(out, r.loaders)
	return out
}

// Resolve locates and loads raw configuration data for the given logical
// source name. Selection is by declared capability and source existence,
// in registry order:
//
//  1. A name with a suffix some pattern loader recognizes narrows the
//     candidates to loaders carrying that suffix; the first whose
//     backing source exists is loaded.
//  2. A name without a recognized suffix tries each pattern loader with
//     each of the loader's own patterns appended, in registration order
//     then pattern order.
//  3. Catch-all loaders are tried next, in registration order; the first
//     that produces data, even an empty map, is accepted.
//
// When nothing matches, Resolve fails with a *NotFoundError.
func (r *Registry) Resolve(ctx context.Context, name string) (map[string]any, error) {
	loaders := r.snapshot()

	ext := filepath.Ext(name)
	recognized := false
	if ext != "" {
		for _, l := range loaders {
			if containsPattern(l.Patterns(), ext) {
				recognized = true
				break
			}
		}
	}

	if recognized {
		for _, l := range loaders {
			if !containsPattern(l.Patterns(), ext) {
				continue
			}
			if l.Exists(ctx, name) {
				return l.Load(ctx, name)
			}
		}
	} else {
		for _, l := range loaders {
			for _, p := range l.Patterns() {
				candidate := name + p
				if l.Exists(ctx, candidate) {
					return l.Load(ctx, candidate)
				}
			}
		}
	}

	var lastErr error
	for _, l := range loaders {
		if len(l.Patterns()) > 0 {
			continue
		}
		conf, err := l.Load(ctx, name)
		if err != nil {
			lastErr = err
			continue
		}
		if conf == nil {
			conf = make(map[string]any)
		}
		return conf, nil
	}

	return nil, &NotFoundError{Name: name, Err: lastErr}
}

func containsPattern(patterns []string, ext string) bool {
	for _, p := range patterns {
		if p == ext {
			return true
		}
	}
	return false
}
