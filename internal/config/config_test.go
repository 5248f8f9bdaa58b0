package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadConfigResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "home.json"), `{
		"name": "home",
		"listen": "127.0.0.1:9000",
		"store": "FILE",
		"store_dir": "prefs",
		"locations_file": "/abs/locations.json",
		"preview": {"width": 400},
		"preview_dir": "previews",
		"sessions": {"max": 16, "idle_minutes": 5}
	}`)

	cm := NewConfigManager(dir)
	cfg, err := cm.LoadConfig("home")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.GetListen() != "127.0.0.1:9000" {
		t.Errorf("listen = %q", cfg.GetListen())
	}
	if cfg.GetStore() != "file" {
		t.Errorf("store = %q", cfg.GetStore())
	}
	if cfg.GetStoreDir() != filepath.Join(dir, "prefs") {
		t.Errorf("store dir = %q", cfg.GetStoreDir())
	}
	if cfg.LocationsFile != "/abs/locations.json" {
		t.Errorf("absolute path rewritten: %q", cfg.LocationsFile)
	}
	if cfg.PreviewDir != filepath.Join(dir, "previews") {
		t.Errorf("preview dir = %q", cfg.PreviewDir)
	}
	if cfg.Sessions.Max != 16 || cfg.GetSessionTTL() != 5*time.Minute {
		t.Errorf("sessions = %+v ttl=%v", cfg.Sessions, cfg.GetSessionTTL())
	}
	if cfg.GetPreviewWidth() != 400 || cfg.GetPreviewHeight() != 320 {
		t.Errorf("preview = %dx%d", cfg.GetPreviewWidth(), cfg.GetPreviewHeight())
	}

	again, err := cm.LoadConfig("home")
	if err != nil || again != cfg {
		t.Fatalf("expected cached config, got %p err=%v", again, err)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	cm := NewConfigManager(t.TempDir())
	if _, err := cm.LoadConfig("nope"); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestListConfigs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.json"), `{}`)
	writeFile(t, filepath.Join(dir, "a.json"), `{}`)
	writeFile(t, filepath.Join(dir, "notes.txt"), `x`)

	got, err := NewConfigManager(dir).ListConfigs()
	if err != nil {
		t.Fatalf("ListConfigs: %v", err)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.GetListen() != ":8206" {
		t.Errorf("listen = %q", cfg.GetListen())
	}
	if cfg.GetStore() != "file" {
		t.Errorf("store = %q", cfg.GetStore())
	}
	if cfg.GetFirestoreCollection() != "widget_settings" {
		t.Errorf("collection = %q", cfg.GetFirestoreCollection())
	}
	if cfg.GetSessionTTL() != 0 {
		t.Errorf("session ttl = %v", cfg.GetSessionTTL())
	}
	if cfg.GetColor("card_dark", "#000000") != "#000000" {
		t.Errorf("color fallback not used")
	}
	t.Setenv("LANG", "zh_CN.UTF-8")
	if cfg.GetLocale() != "zh_CN.UTF-8" {
		t.Errorf("locale = %q", cfg.GetLocale())
	}
}
