// Package store holds the backends that persist widget configurations,
// one namespace per widget variant.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"widgetconfig/internal/errs"
	"widgetconfig/internal/logging"
	"widgetconfig/internal/widget"
)

// FileStore keeps one JSON document per namespace in dir, mapping widget
// ids to their configuration.
type FileStore struct {
	dir   string
	mutex sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(ns string) (string, error) {
	if ns == "" || strings.ContainsAny(ns, `/\`) || ns == "." || ns == ".." {
		return "", errs.NewValidationError(fmt.Sprintf("invalid store namespace %q", ns))
	}
	return filepath.Join(s.dir, ns+".json"), nil
}

func (s *FileStore) read(ns string) (map[string]widget.Configuration, error) {
	p, err := s.path(ns)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]widget.Configuration{}, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to read "+p, err)
	}
	entries := map[string]widget.Configuration{}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse "+p, err)
	}
	return entries, nil
}

func (s *FileStore) write(ns string, entries map[string]widget.Configuration) error {
	p, err := s.path(ns)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errs.NewDatabaseError("write", "failed to encode "+ns, err)
	}

	tmp, err := os.CreateTemp(s.dir, ns+".*.tmp")
	if err != nil {
		return errs.NewDatabaseError("write", "failed to create temp file", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errs.NewDatabaseError("write", "failed to write "+tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errs.NewDatabaseError("write", "failed to close "+tmpName, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		os.Remove(tmpName)
		return errs.NewDatabaseError("write", "failed to replace "+p, err)
	}
	return nil
}

func (s *FileStore) Load(_ context.Context, ns, widgetID string) (*widget.Configuration, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entries, err := s.read(ns)
	if err != nil {
		return nil, err
	}
	cfg, ok := entries[widgetID]
	if !ok {
		return nil, errs.NewNotFoundError(fmt.Sprintf("widget %s not found in %s", widgetID, ns))
	}
	return &cfg, nil
}

func (s *FileStore) Save(_ context.Context, ns, widgetID string, cfg widget.Configuration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entries, err := s.read(ns)
	if err != nil {
		return err
	}
	entries[widgetID] = cfg
	if err := s.write(ns, entries); err != nil {
		return err
	}
	logging.DebugModule("store", "wrote %s/%s", ns, widgetID)
	return nil
}

func (s *FileStore) Delete(_ context.Context, ns, widgetID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entries, err := s.read(ns)
	if err != nil {
		return err
	}
	if _, ok := entries[widgetID]; !ok {
		return errs.NewNotFoundError(fmt.Sprintf("widget %s not found in %s", widgetID, ns))
	}
	delete(entries, widgetID)
	return s.write(ns, entries)
}

func (s *FileStore) List(_ context.Context, ns string) ([]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entries, err := s.read(ns)
	if err != nil {
		return nil, err
	}
	return sortedKeys(entries), nil
}

func sortedKeys(entries map[string]widget.Configuration) []string {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
