// Package status exposes service figures (memory, uptime, preview
// activity) as named monitor items.
package status

import (
	"fmt"
	"sync"
)

type Value struct {
	Value     interface{}
	Unit      string
	Precision int
}

type Item interface {
	Name() string
	Label() string
	Update() error
	Value() *Value
	IsAvailable() bool
}

type BaseItem struct {
	name      string
	label     string
	value     Value
	available bool
	mutex     sync.RWMutex
}

func NewBaseItem(name, label, unit string, precision int) *BaseItem {
	return &BaseItem{
		name:  name,
		label: label,
		value: Value{Value: 0.0, Unit: unit, Precision: precision},
	}
}

func (b *BaseItem) Name() string  { return b.name }
func (b *BaseItem) Label() string { return b.label }

// Value returns a copy so callers never observe a concurrent update.
func (b *BaseItem) Value() *Value {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	v := b.value
	return &v
}

func (b *BaseItem) IsAvailable() bool {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.available
}

func (b *BaseItem) SetValue(value interface{}) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.value.Value = value
	b.available = true
}

func (b *BaseItem) SetAvailable(available bool) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.available = available
}

func FormatValue(value *Value, showUnit bool) string {
	if value == nil {
		return "N/A"
	}
	switch v := value.Value.(type) {
	case string:
		return v
	case float64, float32, int, int64, uint64:
		text := fmt.Sprintf("%.*f", value.Precision, toFloat64(v))
		if showUnit && value.Unit != "" {
			text += value.Unit
		}
		return text
	default:
		return fmt.Sprintf("%v", value.Value)
	}
}

func toFloat64(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return 0.0
	}
}
