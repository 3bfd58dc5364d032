package snapshot

import (
	"context"
	"fmt"
	"os"
)

// File stores the snapshot as a JSON file on disk. It is the local default
// when no Redis address is configured.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Load(_ context.Context) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return data, true, nil
}

func (f *File) Save(_ context.Context, data []byte) error {
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	return nil
}
