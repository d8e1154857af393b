// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrDecoding indicates that a base64 or hex input string could not be
// decoded canonically: either the string is malformed, or re-encoding the
// decoded bytes does not reproduce the input exactly.
var ErrDecoding = errors.New("non-canonical encoding")

// DecodeBase64Exact decodes s as standard base64 and verifies that encoding
// the result again yields s. Inputs with invalid or non-canonical padding
// are rejected with ErrDecoding.
func DecodeBase64Exact(s string) ([]byte, error) {
	value, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrDecoding, "base64 %q: %v", s, err)
	}
	if reencoded := base64.StdEncoding.EncodeToString(value); reencoded != s {
		return nil, errors.Wrapf(ErrDecoding, "base64 %q re-encodes to %q", s, reencoded)
	}
	return value, nil
}

// DecodeHexExact decodes s as lowercase hex and verifies that encoding the
// result again yields s. Odd-length, mixed-case and otherwise malformed
// inputs are rejected with ErrDecoding.
func DecodeHexExact(s string) ([]byte, error) {
	value, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrDecoding, "hex %q: %v", s, err)
	}
	if reencoded := hex.EncodeToString(value); reencoded != s {
		return nil, errors.Wrapf(ErrDecoding, "hex %q re-encodes to %q", s, reencoded)
	}
	return value, nil
}

// FormatWithUnderscores renders n with an underscore every three digits,
// e.g. 1234567 -> "1_234_567".
func FormatWithUnderscores(n uint64) string {
	s := fmt.Sprintf("%d", n)
	parts := make([]string, 0, (len(s)+2)/3)

	for len(s) > 0 {
		chunkSize := len(s) % 3
		if chunkSize == 0 {
			chunkSize = 3
		}
		parts = append(parts, s[:chunkSize])
		s = s[chunkSize:]
	}

	return strings.Join(parts, "_")
}

// MicroCCDString renders a microCCD amount as a decimal CCD string. The
// whole part is grouped with underscores, e.g. 1_234.5 CCD.
func MicroCCDString(microCCD uint64) string {
	whole := FormatWithUnderscores(microCCD / 1_000_000)
	frac := microCCD % 1_000_000
	if frac == 0 {
		return whole + " CCD"
	}
	return whole + strings.TrimRight(fmt.Sprintf(".%06d", frac), "0") + " CCD"
}
