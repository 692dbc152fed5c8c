package sample

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/retag/pkg/retag/internalerr"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("01100001 01100010"), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != "01100001 01100010" {
		t.Errorf("Load = %q, want sample content", got)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, internalerr.ErrEmptySource) {
		t.Errorf("Load(empty) error = %v, want ErrEmptySource", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want fs.ErrNotExist", err)
	}
}
