package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"widgetconfig/internal/capability"
	"widgetconfig/internal/errs"
	"widgetconfig/internal/logging"
	"widgetconfig/internal/widget"
)

const (
	defaultMaxSessions = 256
	defaultSessionTTL  = 30 * time.Minute
)

// sessions keeps the edited controllers, one per widget instance. Only
// create and patch register a session; reads of an unregistered id open a
// throwaway controller from the store. The least recently used session
// goes first once the cap is hit, and idle sessions expire.
type sessions struct {
	registry *widget.Registry
	store    widget.Store
	lunar    capability.Check

	mutex sync.Mutex
	open  *expirable.LRU[string, *widget.Controller]
}

func newSessions(registry *widget.Registry, store widget.Store, lunar capability.Check, size int, ttl time.Duration) *sessions {
	if size <= 0 {
		size = defaultMaxSessions
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	onEvict := func(key string, _ *widget.Controller) {
		logging.DebugModule("server", "session %s closed", key)
	}
	return &sessions{
		registry: registry,
		store:    store,
		lunar:    lunar,
		open:     expirable.NewLRU[string, *widget.Controller](size, onEvict, ttl),
	}
}

func sessionKey(variant, id string) string {
	return variant + "/" + id
}

func (s *sessions) variant(name string) (widget.ConfigurableWidget, error) {
	w, ok := s.registry.Get(name)
	if !ok {
		return nil, errs.NewNotFoundError(fmt.Sprintf("unknown widget variant %q", name))
	}
	return w, nil
}

// get returns the registered session, or a controller opened from the
// store that is not kept.
func (s *sessions) get(ctx context.Context, variant, id string) (*widget.Controller, error) {
	return s.lookup(ctx, variant, id, false)
}

// acquire returns the registered session, registering a new one if needed.
func (s *sessions) acquire(ctx context.Context, variant, id string) (*widget.Controller, error) {
	return s.lookup(ctx, variant, id, true)
}

func (s *sessions) lookup(ctx context.Context, variant, id string, keep bool) (*widget.Controller, error) {
	w, err := s.variant(variant)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, errs.NewValidationError("widget id is required")
	}

	key := sessionKey(variant, id)
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if c, ok := s.open.Get(key); ok {
		// re-adding restarts the idle timer
		s.open.Add(key, c)
		return c, nil
	}
	c := widget.NewController(w, s.store, s.lunar)
	if err := c.Open(ctx, id); err != nil {
		return nil, err
	}
	if keep {
		s.open.Add(key, c)
	}
	return c, nil
}

func (s *sessions) drop(variant, id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.open.Remove(sessionKey(variant, id))
}

func (s *sessions) len() int {
	return s.open.Len()
}
