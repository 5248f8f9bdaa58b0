package main

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"widgetconfig/internal/config"
	"widgetconfig/internal/errs"
	"widgetconfig/internal/logging"
	"widgetconfig/internal/widget"
)

func memoryConfig() *config.AppConfig {
	cfg := config.Default()
	cfg.Store = "memory"
	cfg.Locale = "en_US.UTF-8"
	cfg.Preview = config.PreviewSize{Width: 320, Height: 160}
	return cfg
}

func TestNewAppBuildsAllVariants(t *testing.T) {
	a, err := newApp(context.Background(), memoryConfig())
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	defer a.Close()

	if len(a.registry.Names()) != 3 {
		t.Fatalf("variants = %v", a.registry.Names())
	}
	if a.lunar() {
		t.Fatal("lunar enabled for an English locale")
	}
	loc, err := a.location("")
	if err != nil || loc == nil {
		t.Fatalf("default location: %v", err)
	}
	if _, err := a.location("atlantis"); err == nil {
		t.Fatal("expected unknown location error")
	}
}

func TestNewAppRejectsBrokenResources(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "values.yaml")
	data := "string_arrays:\n  widget_clock_fonts: [Bold, Black]\n  widget_clock_font_values: [bold, black]\n"
	if err := os.WriteFile(override, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := memoryConfig()
	cfg.Resources = override

	if _, err := newApp(context.Background(), cfg); !errs.IsIntegrity(err) {
		t.Fatalf("expected integrity error, got %v", err)
	}
}

func TestNewAppUnknownStore(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store = "tape"
	if _, err := newApp(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unknown store")
	}
}

func TestRenderOnceUsesSavedSettings(t *testing.T) {
	ctx := context.Background()
	a, err := newApp(ctx, memoryConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	saved := widget.DefaultConfiguration()
	saved.CardStyle = "dark"
	if err := a.store.Save(ctx, "widget_clock_day_week_setting", "w1", saved); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "preview.png")
	if err := renderOnce(ctx, a, widget.ClockDayWeekName, "w1", "", out); err != nil {
		t.Fatalf("renderOnce: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds().Dx() != 320 || img.Bounds().Dy() != 160 {
		t.Fatalf("bounds = %v", img.Bounds())
	}

	if err := renderOnce(ctx, a, "nope", "w1", "", out); err == nil {
		t.Fatal("expected unknown variant error")
	}
}

func TestCloseLogsCloserErrors(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.Logger().Out
	logging.SetOutput(&buf)
	defer logging.SetOutput(prev)

	closed := false
	a := &app{closers: []closer{
		{name: "firestore", close: func() error { return errors.New("connection reset") }},
		{name: "other", close: func() error { closed = true; return nil }},
	}}
	a.Close()

	if !closed {
		t.Fatal("later closers skipped after a failure")
	}
	if got := buf.String(); !strings.Contains(got, "firestore close failed: connection reset") {
		t.Fatalf("close error not logged: %q", got)
	}
}
