package status

import (
	"errors"
	"testing"
	"time"
)

type failingItem struct {
	*BaseItem
}

func (f *failingItem) Update() error {
	f.SetAvailable(false)
	return errors.New("sensor gone")
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value    *Value
		showUnit bool
		want     string
	}{
		{nil, true, "N/A"},
		{&Value{Value: 12.345, Unit: "MB", Precision: 1}, true, "12.3MB"},
		{&Value{Value: 12.345, Unit: "MB", Precision: 1}, false, "12.3"},
		{&Value{Value: int64(7), Precision: 0}, true, "7"},
		{&Value{Value: "2024-06-10 08:00:00"}, true, "2024-06-10 08:00:00"},
		{&Value{Value: true}, true, "true"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.value, tt.showUnit); got != tt.want {
			t.Errorf("FormatValue(%+v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestBaseItemAvailability(t *testing.T) {
	b := NewBaseItem("x", "X", "", 0)
	if b.IsAvailable() {
		t.Fatal("new item should start unavailable")
	}
	b.SetValue(3)
	if !b.IsAvailable() {
		t.Fatal("SetValue should mark the item available")
	}
	v := b.Value()
	v.Value = 99
	if b.Value().Value != 3 {
		t.Fatal("Value exposed internal state")
	}
}

func TestPreviewCountItem(t *testing.T) {
	var c Counter
	item := NewPreviewCountItem(&c)
	c.Inc()
	c.Inc()
	if err := item.Update(); err != nil {
		t.Fatal(err)
	}
	if got := FormatValue(item.Value(), true); got != "2" {
		t.Fatalf("preview_count = %q", got)
	}
}

func TestCurrentTimeItem(t *testing.T) {
	item := NewCurrentTimeItem(func() time.Time {
		return time.Date(2024, 6, 10, 8, 30, 0, 0, time.UTC)
	})
	if err := item.Update(); err != nil {
		t.Fatal(err)
	}
	if got := FormatValue(item.Value(), true); got != "2024-06-10 08:30:00" {
		t.Fatalf("current_time = %q", got)
	}
}

func TestSnapshot(t *testing.T) {
	var c Counter
	r := NewRegistry()
	r.Register(NewPreviewCountItem(&c))
	r.Register(&failingItem{BaseItem: NewBaseItem("broken", "Broken", "", 0)})
	c.Inc()

	entries := r.Snapshot()
	if len(entries) != 2 {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[0].Name != "broken" || entries[0].Available || entries[0].Value != "" {
		t.Fatalf("broken entry = %+v", entries[0])
	}
	if entries[1].Name != "preview_count" || !entries[1].Available || entries[1].Value != "1" {
		t.Fatalf("preview entry = %+v", entries[1])
	}
}

func TestDefaultRegistryItems(t *testing.T) {
	r := DefaultRegistry(&Counter{})
	want := []string{"current_time", "host_uptime", "load_avg", "preview_count", "process_rss"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("names = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("names = %v, want %v", got, want)
		}
	}
	for _, e := range r.Snapshot() {
		if e.Name == "current_time" && !e.Available {
			t.Fatal("current_time should always be available")
		}
	}
}
