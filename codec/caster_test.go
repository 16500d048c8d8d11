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

//go:build !integration

package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCasterCodec_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		castType CastType
		input    string
		want     any
	}{
		{"bool", CastTypeBool, "true", true},
		{"duration", CastTypeDuration, "30s", 30 * time.Second},
		{"float64", CastTypeFloat64, "3.14", 3.14},
		{"int64", CastTypeInt64, "42", int64(42)},
		{"int", CastTypeInt, "42", 42},
		{"uint", CastTypeUint, "42", uint(42)},
		{"string", CastTypeString, "hello", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var v any
			err := NewCaster(tt.castType).Decode([]byte(tt.input), &v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestCasterCodec_DecodeTime(t *testing.T) {
	t.Parallel()

	var v any
	err := NewCaster(CastTypeTime).Decode([]byte("2025-06-01T12:00:00Z"), &v)
	require.NoError(t, err)

	ts, ok := v.(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2025, ts.Year())
}

func TestCasterCodec_DecodeError(t *testing.T) {
	t.Parallel()

	var v any
	err := NewCaster(CastTypeInt).Decode([]byte("not-a-number"), &v)
	require.Error(t, err)
}

func TestCasterCodec_WrongTarget(t *testing.T) {
	t.Parallel()

	var v int
	err := NewCaster(CastTypeInt).Decode([]byte("42"), &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected *any")
}

func TestCasterCodec_UnknownCastType(t *testing.T) {
	t.Parallel()

	var v any
	err := NewCaster(CastType("complex")).Decode([]byte("1"), &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cast type")
}

func TestCasterCodec_Registered(t *testing.T) {
	t.Parallel()

	for _, name := range []Type{
		TypeCasterBool, TypeCasterTime, TypeCasterDuration, TypeCasterFloat64,
		TypeCasterInt64, TypeCasterInt, TypeCasterUint, TypeCasterString,
	} {
		d, err := GetDecoder(name)
		require.NoError(t, err, "decoder %s", name)
		assert.NotNil(t, d)
	}
}
