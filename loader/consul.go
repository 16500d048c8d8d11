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
	"path"
	"strings"

	"github.com/hashicorp/consul/api"

	"rivaas.dev/typedconf/codec"
)

// ConsulKV defines the Consul key-value operations the loader needs.
// This interface enables testing with mock implementations.
type ConsulKV interface {
	Get(key string, q *api.QueryOptions) (*api.KVPair, *api.QueryMeta, error)
}

// Consul loads configuration from Consul's key-value store. Source
// names map to keys under a fixed root, so with root "config" the
// source "database.json" reads the key "config/database.json".
//
// The decoder determines how the retrieved value is parsed:
//   - Regular decoders (JSON, YAML, TOML): Parse structured configuration data
//   - Caster decoders: Convert single values to specific types
//
// A Consul loader built on a caster codec has no patterns and acts as a
// catch-all for single-value keys.
//
// The Consul client is configured using environment variables:
//   - CONSUL_HTTP_ADDR: The address of the Consul server (e.g., "http://localhost:8500")
//   - CONSUL_HTTP_TOKEN: The access token for authentication (optional)
type Consul struct {
	kv       ConsulKV
	root     string
	patterns []string
	decoder  codec.Decoder
}

// NewConsul creates a Consul loader rooted at the given key prefix,
// using the codec registered under codecType. If kv is nil, a client
// built from the default Consul configuration is used.
//
// Errors:
//   - Returns error if no decoder is registered for codecType
//   - Returns error if the Consul client cannot be created
func NewConsul(root string, codecType codec.Type, kv ConsulKV) (*Consul, error) {
	decoder, err := codec.GetDecoder(codecType)
	if err != nil {
		return nil, err
	}
	if kv == nil {
		client, err := api.NewClient(api.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to create consul client: %w", err)
		}
		kv = client.KV()
	}
	return &Consul{
		kv:       kv,
		root:     strings.Trim(root, "/"),
		patterns: codec.Patterns(codecType),
		decoder:  decoder,
	}, nil
}

// Patterns returns the filename suffixes of the loader's codec. Caster
// codecs carry none, making the loader a catch-all.
func (c *Consul) Patterns() []string {
	out := make([]string, len(c.patterns))
	copy(out, c.patterns)
	return out
}

// Exists reports whether the key for the given source name is present.
func (c *Consul) Exists(ctx context.Context, name string) bool {
	pair, _, err := c.kv.Get(c.key(name), (&api.QueryOptions{}).WithContext(ctx))
	return err == nil && pair != nil
}

// Load retrieves and decodes the key for the given source name. For
// caster decoders the result is a single-entry map keyed by the last
// segment of the Consul key.
//
// Errors:
//   - Returns error if the Consul query fails
//   - Returns error if the key does not exist
//   - Returns error if decoding the value fails
func (c *Consul) Load(ctx context.Context, name string) (map[string]any, error) {
	key := c.key(name)
	pair, _, err := c.kv.Get(key, (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get consul key: %w", err)
	}
	if pair == nil {
		return nil, fmt.Errorf("consul key %q not found", key)
	}

	if caster, ok := c.decoder.(*codec.CasterCodec); ok {
		var val any
		if err := caster.Decode(pair.Value, &val); err != nil {
			return nil, fmt.Errorf("failed to decode consul value: %w", err)
		}
		leaf := path.Base(pair.Key)
		return map[string]any{leaf: val}, nil
	}

	var conf map[string]any
	if err := c.decoder.Decode(pair.Value, &conf); err != nil {
		return nil, fmt.Errorf("failed to decode consul value: %w", err)
	}

	return conf, nil
}

func (c *Consul) key(name string) string {
	if c.root == "" {
		return name
	}
	return c.root + "/" + name
}
