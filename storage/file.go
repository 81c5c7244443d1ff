package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File keeps every key in one JSON object on disk.
type File struct {
	mu       sync.RWMutex
	filePath string
	values   map[string]string
}

// NewFile loads the store from filePath, or starts empty if the file does not
// exist. Returns an error only on unexpected I/O or decode failures.
func NewFile(filePath string) (*File, error) {
	f := &File{filePath: filePath, values: map[string]string{}}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}
	if len(data) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(data, &f.values); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filePath, err)
	}
	if f.values == nil {
		f.values = map[string]string{}
	}
	return f, nil
}

func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok, nil
}

// Set writes the whole object atomically, then updates memory.
func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := make(map[string]string, len(f.values)+1)
	for k, v := range f.values {
		next[k] = v
	}
	next[key] = value
	if err := f.writeAtomic(next); err != nil {
		return err
	}
	f.values = next
	return nil
}

func (f *File) Close() error { return nil }

// writeAtomic writes to a temp file then renames it over filePath.
// Caller must hold f.mu.
func (f *File) writeAtomic(values map[string]string) error {
	dir := filepath.Dir(f.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp := f.filePath + ".tmp"
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, f.filePath)
}
