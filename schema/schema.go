// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/base64"

	"github.com/moznion/go-optional"

	"github.com/KatasonovYP/concordium-walletconnect/utils"
)

// Kind discriminates the Schema variants.
type Kind string

const (
	// KindModule is the discriminant of a full module schema.
	KindModule Kind = "ModuleSchema"
	// KindType is the discriminant of a single-type schema.
	KindType Kind = "TypeSchema"
)

// Schema is a binary description of how to serialize and deserialize smart
// contract parameters. It is either a ModuleSchema covering a whole module
// or a TypeSchema covering a single parameter type.
type Schema interface {
	// Kind returns the variant discriminant.
	Kind() Kind
	// SchemaBytes returns the raw schema bytes.
	SchemaBytes() []byte
}

// ModuleSchema is the schema of a whole smart contract module, optionally
// tagged with a schema format version. An absent version means the version
// is embedded in the schema bytes themselves.
type ModuleSchema struct {
	Value   []byte
	Version optional.Option[uint8]
}

var _ Schema = ModuleSchema{}

func (ModuleSchema) Kind() Kind { return KindModule }

func (s ModuleSchema) SchemaBytes() []byte { return s.Value }

// Base64 returns the canonical base64 rendering of the schema bytes.
func (s ModuleSchema) Base64() string { return base64.StdEncoding.EncodeToString(s.Value) }

// TypeSchema is the schema of a single smart contract type, used to
// describe the parameter of one init or receive function, or the layout of
// a binary message.
type TypeSchema struct {
	Value []byte
}

var _ Schema = TypeSchema{}

func (TypeSchema) Kind() Kind { return KindType }

func (s TypeSchema) SchemaBytes() []byte { return s.Value }

// Base64 returns the canonical base64 rendering of the schema bytes.
func (s TypeSchema) Base64() string { return base64.StdEncoding.EncodeToString(s.Value) }

// NewModuleSchema wraps raw module schema bytes.
func NewModuleSchema(value []byte, version optional.Option[uint8]) ModuleSchema {
	return ModuleSchema{Value: value, Version: version}
}

// ModuleSchemaFromBase64 decodes a module schema from its canonical base64
// representation. Fails with utils.ErrDecoding if the input is malformed or
// does not round-trip exactly.
func ModuleSchemaFromBase64(schemaBase64 string, version optional.Option[uint8]) (ModuleSchema, error) {
	value, err := utils.DecodeBase64Exact(schemaBase64)
	if err != nil {
		return ModuleSchema{}, err
	}
	return ModuleSchema{Value: value, Version: version}, nil
}

// NewTypeSchema wraps raw type schema bytes.
func NewTypeSchema(value []byte) TypeSchema {
	return TypeSchema{Value: value}
}

// TypeSchemaFromBase64 decodes a type schema from its canonical base64
// representation. Fails with utils.ErrDecoding if the input is malformed or
// does not round-trip exactly.
func TypeSchemaFromBase64(schemaBase64 string) (TypeSchema, error) {
	value, err := utils.DecodeBase64Exact(schemaBase64)
	if err != nil {
		return TypeSchema{}, err
	}
	return TypeSchema{Value: value}, nil
}
