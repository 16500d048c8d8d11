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

// Package loader provides loader implementations for the resolution
// chain.
//
// Loaders retrieve raw configuration data from locations such as files,
// environment variables, and remote services. Each loader declares the
// source-name patterns it serves; a loader with no patterns is a
// catch-all.
//
// # Available Loaders
//
//   - File: Load configuration files of one format from a directory
//   - Env: Load configuration from environment variables (catch-all)
//   - Consul: Load configuration from Consul key-value store
//
// # Example
//
// Registering a file loader for JSON sources:
//
//	jsonLoader, _ := loader.NewFile("$CONFIG_DIR", codec.TypeJSON)
//	typedconf.Register(jsonLoader)
//
// Registering an environment variable catch-all:
//
//	typedconf.Register(loader.NewEnv("APP_"))
package loader
