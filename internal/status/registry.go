package status

import (
	"sort"
	"sync"
	"time"

	"widgetconfig/internal/logging"
)

type Registry struct {
	items map[string]Item
	mutex sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Item)}
}

// DefaultRegistry registers every service item.
func DefaultRegistry(previews *Counter) *Registry {
	r := NewRegistry()
	r.Register(NewProcessRSSItem())
	r.Register(NewHostUptimeItem())
	r.Register(NewLoadAvgItem())
	r.Register(NewPreviewCountItem(previews))
	r.Register(NewCurrentTimeItem(nil))
	return r
}

func (r *Registry) Register(item Item) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.items[item.Name()] = item
}

func (r *Registry) Get(name string) Item {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.items[name]
}

func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UpdateAll refreshes every item. Failing items are marked unavailable
// and do not stop the others.
func (r *Registry) UpdateAll() {
	for _, name := range r.Names() {
		item := r.Get(name)
		start := time.Now()
		if err := item.Update(); err != nil {
			logging.DebugModule("status", "item %s unavailable: %v", name, err)
		}
		if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
			logging.WarnModule("status", "item %s slow update: %v", name, elapsed)
		}
	}
}

type Entry struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	Value     string `json:"value"`
	Available bool   `json:"available"`
}

// Snapshot updates all items and returns them sorted by name.
func (r *Registry) Snapshot() []Entry {
	r.UpdateAll()
	names := r.Names()
	out := make([]Entry, 0, len(names))
	for _, name := range names {
		item := r.Get(name)
		e := Entry{Name: name, Label: item.Label(), Available: item.IsAvailable()}
		if e.Available {
			e.Value = FormatValue(item.Value(), true)
		}
		out = append(out, e)
	}
	return out
}
