package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// File is the legacy synchronous key/value store: a single JSON file
// holding a string→string map, the local-disk equivalent of the browser
// localStorage area earlier versions persisted into. It exists only as the
// source side of the Adapter's one-time migration; nothing writes new data
// here.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile returns a File store reading and writing path. The file is
// created lazily on first Set.
func NewFile(path string) *File {
	return &File{path: path}
}

// Get implements Backend. A missing file means every key is absent.
func (f *File) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return nil, false, err
	}
	value, ok := entries[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

// Set implements Backend.
func (f *File) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return err
	}
	entries[key] = string(value)
	return f.write(entries)
}

// Remove implements Backend. Removing an absent key (or from a missing
// file) is not an error.
func (f *File) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return f.write(entries)
}

func (f *File) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage.File: read %s: %w", f.path, err)
	}
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("storage.File: decode %s: %w", f.path, err)
	}
	if entries == nil {
		entries = map[string]string{}
	}
	return entries, nil
}

func (f *File) write(entries map[string]string) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("storage.File: encode: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("storage.File: write %s: %w", f.path, err)
	}
	return nil
}
