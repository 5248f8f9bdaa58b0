package store

import (
	"context"
	"fmt"
	"sync"

	"widgetconfig/internal/errs"
	"widgetconfig/internal/widget"
)

type MemoryStore struct {
	mutex sync.RWMutex
	data  map[string]map[string]widget.Configuration
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]widget.Configuration)}
}

func (s *MemoryStore) Load(_ context.Context, ns, widgetID string) (*widget.Configuration, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	cfg, ok := s.data[ns][widgetID]
	if !ok {
		return nil, errs.NewNotFoundError(fmt.Sprintf("widget %s not found in %s", widgetID, ns))
	}
	return &cfg, nil
}

func (s *MemoryStore) Save(_ context.Context, ns, widgetID string, cfg widget.Configuration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.data[ns] == nil {
		s.data[ns] = make(map[string]widget.Configuration)
	}
	s.data[ns][widgetID] = cfg
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, ns, widgetID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, ok := s.data[ns][widgetID]; !ok {
		return errs.NewNotFoundError(fmt.Sprintf("widget %s not found in %s", widgetID, ns))
	}
	delete(s.data[ns], widgetID)
	return nil
}

func (s *MemoryStore) List(_ context.Context, ns string) ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return sortedKeys(s.data[ns]), nil
}
