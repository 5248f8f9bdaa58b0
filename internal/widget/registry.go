package widget

import (
	"fmt"
	"sort"
)

type Registry struct {
	widgets map[string]ConfigurableWidget
}

// NewRegistry rejects duplicate names and duplicate store keys, two
// variants must never share a persisted namespace.
func NewRegistry(widgets ...ConfigurableWidget) (*Registry, error) {
	r := &Registry{widgets: make(map[string]ConfigurableWidget, len(widgets))}
	keys := make(map[string]string, len(widgets))
	for _, w := range widgets {
		if _, dup := r.widgets[w.Name()]; dup {
			return nil, fmt.Errorf("duplicate widget variant %q", w.Name())
		}
		if other, dup := keys[w.ConfigStoreKey()]; dup {
			return nil, fmt.Errorf("variants %q and %q share store key %q", other, w.Name(), w.ConfigStoreKey())
		}
		r.widgets[w.Name()] = w
		keys[w.ConfigStoreKey()] = w.Name()
	}
	return r, nil
}

// DefaultRegistry builds every known variant over deps.
func DefaultRegistry(deps Deps) (*Registry, error) {
	clockDayWeek, err := NewClockDayWeek(deps)
	if err != nil {
		return nil, err
	}
	dayWeek, err := NewDayWeek(deps)
	if err != nil {
		return nil, err
	}
	details, err := NewClockDayDetails(deps)
	if err != nil {
		return nil, err
	}
	return NewRegistry(clockDayWeek, dayWeek, details)
}

func (r *Registry) Get(name string) (ConfigurableWidget, bool) {
	w, ok := r.widgets[name]
	return w, ok
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.widgets))
	for name := range r.widgets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
