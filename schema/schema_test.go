// SPDX-License-Identifier: Apache-2.0

package schema_test

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/KatasonovYP/concordium-walletconnect/schema"
	"github.com/KatasonovYP/concordium-walletconnect/utils"
)

func TestModuleSchemaFromBase64(t *testing.T) {
	s, err := schema.ModuleSchemaFromBase64("AAE=", optional.None[uint8]())
	require.NoError(t, err)
	require.Equal(t, schema.KindModule, s.Kind())
	require.Equal(t, []byte{0x00, 0x01}, s.SchemaBytes())
	require.False(t, s.Version.IsSome())
	require.Equal(t, "AAE=", s.Base64())
}

func TestModuleSchemaFromBase64Versioned(t *testing.T) {
	s, err := schema.ModuleSchemaFromBase64("//8=", optional.Some[uint8](2))
	require.NoError(t, err)
	version, err := s.Version.Take()
	require.NoError(t, err)
	require.Equal(t, uint8(2), version)
}

func TestModuleSchemaFromBase64Invalid(t *testing.T) {
	for _, in := range []string{"AAE", "AAE==", "AB==", "!!"} {
		_, err := schema.ModuleSchemaFromBase64(in, optional.None[uint8]())
		require.Error(t, err, "input %q", in)
		require.True(t, errors.Is(err, utils.ErrDecoding), "input %q", in)
	}
}

func TestTypeSchemaFromBase64(t *testing.T) {
	s, err := schema.TypeSchemaFromBase64("FAA=")
	require.NoError(t, err)
	require.Equal(t, schema.KindType, s.Kind())
	require.Equal(t, "FAA=", s.Base64())

	_, err = schema.TypeSchemaFromBase64("FAA")
	require.True(t, errors.Is(err, utils.ErrDecoding))
}

func TestSchemaDiscriminants(t *testing.T) {
	require.Equal(t, schema.KindModule, schema.NewModuleSchema([]byte{1}, optional.None[uint8]()).Kind())
	require.Equal(t, schema.KindType, schema.NewTypeSchema([]byte{1}).Kind())
}
