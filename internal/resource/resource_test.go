package resource

import (
	"strings"
	"testing"

	"widgetconfig/internal/errs"
)

func TestDefaultTable(t *testing.T) {
	tbl := Default()

	fonts, err := tbl.StringArray("widget_clock_font_values")
	if err != nil {
		t.Fatalf("StringArray: %v", err)
	}
	if len(fonts) != 4 || fonts[0] != "light" || fonts[3] != "analog" {
		t.Fatalf("unexpected font values %v", fonts)
	}

	name, err := tbl.String("sp_widget_clock_day_week_setting")
	if err != nil || name != "widget_clock_day_week_setting" {
		t.Fatalf("store name = %q err=%v", name, err)
	}
}

func TestStringArrayReturnsCopy(t *testing.T) {
	tbl := Default()
	a, _ := tbl.StringArray("widget_clock_fonts")
	a[0] = "changed"
	b, _ := tbl.StringArray("widget_clock_fonts")
	if b[0] != "Light" {
		t.Fatalf("table mutated through returned slice: %v", b)
	}
}

func TestMissingKeys(t *testing.T) {
	tbl := Default()
	if _, err := tbl.StringArray("nope"); !errs.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := tbl.String("nope"); !errs.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("arrays:\n  a: [x]\n"))
	if err == nil {
		t.Fatal("expected error for unknown top-level field")
	}
}

func TestMergeOverrides(t *testing.T) {
	override, err := Load(strings.NewReader(`
string_arrays:
  widget_clock_fonts: [Thin, Regular, Heavy]
strings:
  location_current: Here
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	merged := Default().Merge(override)

	fonts, _ := merged.StringArray("widget_clock_fonts")
	if strings.Join(fonts, ",") != "Thin,Regular,Heavy" {
		t.Fatalf("override not applied: %v", fonts)
	}
	values, _ := merged.StringArray("widget_clock_font_values")
	if len(values) != 4 {
		t.Fatalf("untouched key lost: %v", values)
	}
	if s, _ := merged.String("location_current"); s != "Here" {
		t.Fatalf("string override not applied: %q", s)
	}
}
