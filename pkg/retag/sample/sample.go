// Package sample loads text samples from disk.
package sample

import (
	"fmt"
	"os"

	"github.com/cognicore/retag/pkg/retag/internalerr"
)

// Load reads the sample file at path. A file with zero-length content fails
// with internalerr.ErrEmptySource; I/O failures propagate wrapped.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read sample: %w", err)
	}
	if len(data) == 0 {
		return "", internalerr.ErrEmptySource
	}
	return string(data), nil
}
