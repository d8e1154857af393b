// SPDX-License-Identifier: Apache-2.0

package utils_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/KatasonovYP/concordium-walletconnect/utils"
)

func TestDecodeBase64Exact(t *testing.T) {
	value, err := utils.DecodeBase64Exact("AAE=")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x01}, value)

	value, err = utils.DecodeBase64Exact("")
	require.NoError(t, err)
	require.Empty(t, value)

	for _, in := range []string{
		"AAE",      // missing padding
		"AAE==",    // excess padding
		"AB==",     // non-canonical trailing bits
		"not b64!", // invalid alphabet
	} {
		_, err := utils.DecodeBase64Exact(in)
		require.Error(t, err, "input %q", in)
		require.True(t, errors.Is(err, utils.ErrDecoding), "input %q", in)
	}
}

func TestDecodeHexExact(t *testing.T) {
	value, err := utils.DecodeHexExact("deadbeef")
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, value)

	for _, in := range []string{
		"deadbee",  // odd length
		"DEADBEEF", // uppercase does not round-trip
		"zzzz",     // invalid digits
	} {
		_, err := utils.DecodeHexExact(in)
		require.Error(t, err, "input %q", in)
		require.True(t, errors.Is(err, utils.ErrDecoding), "input %q", in)
	}
}

func TestFormatWithUnderscores(t *testing.T) {
	require.Equal(t, "1", utils.FormatWithUnderscores(1))
	require.Equal(t, "999", utils.FormatWithUnderscores(999))
	require.Equal(t, "1_000", utils.FormatWithUnderscores(1000))
	require.Equal(t, "1_234_567", utils.FormatWithUnderscores(1234567))
}

func TestMicroCCDString(t *testing.T) {
	require.Equal(t, "5 CCD", utils.MicroCCDString(5_000_000))
	require.Equal(t, "0.5 CCD", utils.MicroCCDString(500_000))
	require.Equal(t, "1.000001 CCD", utils.MicroCCDString(1_000_001))
	require.Equal(t, "1_234.5 CCD", utils.MicroCCDString(1_234_500_000))
}
