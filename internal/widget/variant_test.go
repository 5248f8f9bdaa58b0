package widget

import (
	"context"
	"testing"

	"widgetconfig/internal/errs"
	"widgetconfig/internal/resource"
)

func TestDayWeekHidesClockFont(t *testing.T) {
	w, err := NewDayWeek(Deps{Table: resource.Default(), Renderer: &fakeRenderer{}})
	if err != nil {
		t.Fatal(err)
	}
	c := NewController(w, newFakeStore(), lunar(true))
	if err := c.Open(context.Background(), "1"); err != nil {
		t.Fatal(err)
	}
	if c.Controls().Visible(ControlClockFont) {
		t.Fatal("clock font visible on a widget without clock")
	}
	if !c.Controls().Visible(ControlHideLunar) {
		t.Fatal("hide lunar hidden despite support")
	}
	if err := c.SetClockFont("light"); !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if c.Options().View().ClockFonts != nil {
		t.Fatal("day week exposes clock fonts")
	}
}

func TestClockDayDetailsOffersAnalog(t *testing.T) {
	r := &fakeRenderer{}
	w, err := NewClockDayDetails(Deps{Table: resource.Default(), Renderer: r, Width: 400, Height: 200})
	if err != nil {
		t.Fatal(err)
	}
	c := NewController(w, newFakeStore(), nil)
	if err := c.Open(context.Background(), "1"); err != nil {
		t.Fatal(err)
	}
	if c.Options().ClockFonts.Len() != 4 {
		t.Fatalf("fonts = %v", c.Options().ClockFonts.Values())
	}
	mustOK(t, c.SetClockFont("analog"))
	if _, err := c.Preview(context.Background(), nil, previewTime); err != nil {
		t.Fatal(err)
	}
	if r.lastLayout.Width != 400 || r.lastLayout.Height != 200 {
		t.Fatalf("layout size = %dx%d", r.lastLayout.Width, r.lastLayout.Height)
	}
}

func TestNewVariantRequiresStoreName(t *testing.T) {
	table := &resource.Table{StringArrays: resource.Default().StringArrays}
	if _, err := NewClockDayWeek(Deps{Table: table, Renderer: &fakeRenderer{}}); !errs.IsIntegrity(err) {
		t.Fatalf("expected integrity error, got %v", err)
	}
	if _, err := NewClockDayWeek(Deps{Table: resource.Default()}); err == nil {
		t.Fatal("expected error without renderer")
	}
}

func TestRegistry(t *testing.T) {
	deps := Deps{Table: resource.Default(), Renderer: &fakeRenderer{}}
	r, err := DefaultRegistry(deps)
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	names := r.Names()
	if len(names) != 3 || names[0] != ClockDayDetailsName || names[1] != ClockDayWeekName || names[2] != DayWeekName {
		t.Fatalf("names = %v", names)
	}

	keys := map[string]bool{}
	for _, n := range names {
		w, ok := r.Get(n)
		if !ok {
			t.Fatalf("Get(%q) failed", n)
		}
		if keys[w.ConfigStoreKey()] {
			t.Fatalf("store key %q shared", w.ConfigStoreKey())
		}
		keys[w.ConfigStoreKey()] = true
	}

	a, _ := NewClockDayWeek(deps)
	b, _ := NewClockDayWeek(deps)
	if _, err := NewRegistry(a, b); err == nil {
		t.Fatal("expected duplicate variant error")
	}
}

func TestConfigurationValidate(t *testing.T) {
	if err := DefaultConfiguration().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	cfg := DefaultConfiguration()
	cfg.TextSize = MaxTextSize + 1
	if err := cfg.Validate(); !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
