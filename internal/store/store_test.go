package store

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"widgetconfig/internal/errs"
	"widgetconfig/internal/widget"
)

const ns = "widget_clock_day_week_setting"

func sampleConfig(id string) widget.Configuration {
	cfg := widget.DefaultConfiguration()
	cfg.WidgetID = id
	cfg.Variant = widget.ClockDayWeekName
	cfg.CardStyle = "dark"
	cfg.CardAlpha = 40
	cfg.UpdatedAt = time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	return cfg
}

func testContract(t *testing.T, s widget.Store) {
	ctx := context.Background()

	if _, err := s.Load(ctx, ns, "1"); !errs.IsNotFound(err) {
		t.Fatalf("Load on empty store: expected not found, got %v", err)
	}

	want := sampleConfig("1")
	if err := s.Save(ctx, ns, "1", want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, ns, "2", sampleConfig("2")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, "widget_day_week_setting", "1", sampleConfig("1")); err != nil {
		t.Fatalf("Save other namespace: %v", err)
	}

	got, err := s.Load(ctx, ns, "1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.UpdatedAt.Equal(want.UpdatedAt) {
		t.Fatalf("UpdatedAt = %v, want %v", got.UpdatedAt, want.UpdatedAt)
	}
	got.UpdatedAt = want.UpdatedAt
	if *got != want {
		t.Fatalf("Load = %+v, want %+v", *got, want)
	}

	ids, err := s.List(ctx, ns)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"1", "2"}) {
		t.Fatalf("List = %v", ids)
	}

	if err := s.Delete(ctx, ns, "1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, ns, "1"); !errs.IsNotFound(err) {
		t.Fatalf("second Delete: expected not found, got %v", err)
	}
	if _, err := s.Load(ctx, ns, "1"); !errs.IsNotFound(err) {
		t.Fatalf("Load after Delete: expected not found, got %v", err)
	}
	if _, err := s.Load(ctx, "widget_day_week_setting", "1"); err != nil {
		t.Fatalf("other namespace affected: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	testContract(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	testContract(t, s)
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Save(ctx, ns, "7", sampleConfig("7")); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, ns+".json")); err != nil {
		t.Fatalf("namespace file missing: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if len(matches) != 0 {
		t.Fatalf("temp files left behind: %v", matches)
	}

	second, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	got, err := second.Load(ctx, ns, "7")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.CardStyle != "dark" || got.CardAlpha != 40 {
		t.Fatalf("Load = %+v", got)
	}
}

func TestFileStoreRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Save(ctx, "../escape", "1", sampleConfig("1")); !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ns+".json"), []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(ctx, ns, "1"); !errs.IsDatabase(err) {
		t.Fatalf("expected database error, got %v", err)
	}
}
