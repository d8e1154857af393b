// SPDX-License-Identifier: Apache-2.0
package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome resolves a leading "~" in path against the user's home
// directory. Paths without the prefix are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
