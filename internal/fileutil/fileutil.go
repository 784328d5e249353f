// Package fileutil provides common file path utilities.
package fileutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SafeJoin joins base and elem and verifies the result stays under base.
// It returns an error when elem escapes base through "..", absolute paths,
// or similar tricks. Use it whenever a path component comes from user input
// or from the database.
func SafeJoin(base string, elem ...string) (string, error) {
	joined := filepath.Join(append([]string{base}, elem...)...)

	cleanBase := filepath.Clean(base)
	cleanJoined := filepath.Clean(joined)

	if cleanJoined != cleanBase &&
		!strings.HasPrefix(cleanJoined, cleanBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes base %q", filepath.Join(elem...), base)
	}

	return cleanJoined, nil
}
