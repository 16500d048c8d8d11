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

package codec

import (
	"fmt"

	"github.com/spf13/cast"
)

// CastType names the target type of a caster codec.
type CastType string

// revive:disable:exported
const (
	CastTypeBool       CastType = "bool"
	TypeCasterBool     Type     = "caster-bool"
	CastTypeTime       CastType = "time"
	TypeCasterTime     Type     = "caster-time"
	CastTypeDuration   CastType = "duration"
	TypeCasterDuration Type     = "caster-duration"
	CastTypeFloat64    CastType = "float64"
	TypeCasterFloat64  Type     = "caster-float64"
	CastTypeInt64      CastType = "int64"
	TypeCasterInt64    Type     = "caster-int64"
	CastTypeInt        CastType = "int"
	TypeCasterInt      Type     = "caster-int"
	CastTypeUint       CastType = "uint"
	TypeCasterUint     Type     = "caster-uint"
	CastTypeString     CastType = "string"
	TypeCasterString   Type     = "caster-string"
)

// init registers the caster decoders with the codec registry.
func init() {
	RegisterDecoder(TypeCasterBool, NewCaster(CastTypeBool))
	RegisterDecoder(TypeCasterTime, NewCaster(CastTypeTime))
	RegisterDecoder(TypeCasterDuration, NewCaster(CastTypeDuration))
	RegisterDecoder(TypeCasterFloat64, NewCaster(CastTypeFloat64))
	RegisterDecoder(TypeCasterInt64, NewCaster(CastTypeInt64))
	RegisterDecoder(TypeCasterInt, NewCaster(CastTypeInt))
	RegisterDecoder(TypeCasterUint, NewCaster(CastTypeUint))
	RegisterDecoder(TypeCasterString, NewCaster(CastTypeString))
}

// CasterCodec is a decoder that casts raw byte input to a single typed
// value instead of a structured document. Remote key-value loaders use it
// for leaf keys whose payload is one scalar.
type CasterCodec struct {
	castType CastType
}

// NewCaster creates a CasterCodec targeting the given castType.
func NewCaster(castType CastType) *CasterCodec {
	return &CasterCodec{
		castType: castType,
	}
}

// Decode casts the input data to the configured type and stores the result
// in the value pointed to by v, which must be a *any.
func (c *CasterCodec) Decode(data []byte, v any) error {
	m, ok := v.(*any)
	if !ok {
		return fmt.Errorf("CasterCodec.Decode: expected *any, got %T", v)
	}
	value := string(data)

	var err error
	switch c.castType {
	case CastTypeBool:
		*m, err = cast.ToBoolE(value)
	case CastTypeTime:
		*m, err = cast.ToTimeE(value)
	case CastTypeDuration:
		*m, err = cast.ToDurationE(value)
	case CastTypeFloat64:
		*m, err = cast.ToFloat64E(value)
	case CastTypeInt64:
		*m, err = cast.ToInt64E(value)
	case CastTypeInt:
		*m, err = cast.ToIntE(value)
	case CastTypeUint:
		*m, err = cast.ToUintE(value)
	case CastTypeString:
		*m, err = cast.ToStringE(value)
	default:
		err = fmt.Errorf("unknown cast type: %s", c.castType)
	}

	return err
}
