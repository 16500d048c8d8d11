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
	"fmt"
	"path/filepath"

	"rivaas.dev/typedconf/codec"
	"rivaas.dev/typedconf/dumper"
)

// Dumper writes a materialized configuration instance to a destination.
type Dumper interface {
	// Dump writes the value to the dumper's destination.
	Dump(ctx context.Context, v any) error
}

// Save writes a configuration instance to the given path, choosing the
// encoder by the path's suffix. Unrecognized suffixes are an error.
func Save(ctx context.Context, instance any, path string) error {
	ext := filepath.Ext(path)
	codecType, ok := codec.TypeForPattern(ext)
	if !ok {
		return fmt.Errorf("no codec registered for pattern %q", ext)
	}
	encoder, err := codec.GetEncoder(codecType)
	if err != nil {
		return err
	}
	return dumper.NewFile(path, encoder).Dump(ctx, instance)
}
