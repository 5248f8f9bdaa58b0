package widget

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"
	"time"

	"widgetconfig/internal/errs"
	"widgetconfig/internal/render"
	"widgetconfig/internal/resource"
	"widgetconfig/internal/weather"
)

// --- Fakes ---

type fakeStore struct {
	data    map[string]map[string]Configuration
	loadErr error
	saveErr error
	saves   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]map[string]Configuration)}
}

func (f *fakeStore) Load(_ context.Context, ns, id string) (*Configuration, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	cfg, ok := f.data[ns][id]
	if !ok {
		return nil, errs.NewNotFoundError("not found")
	}
	return &cfg, nil
}

func (f *fakeStore) Save(_ context.Context, ns, id string, cfg Configuration) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.data[ns] == nil {
		f.data[ns] = make(map[string]Configuration)
	}
	f.data[ns][id] = cfg
	f.saves++
	return nil
}

func (f *fakeStore) Delete(_ context.Context, ns, id string) error {
	if _, ok := f.data[ns][id]; !ok {
		return errs.NewNotFoundError("not found")
	}
	delete(f.data[ns], id)
	return nil
}

func (f *fakeStore) List(_ context.Context, ns string) ([]string, error) {
	var ids []string
	for id := range f.data[ns] {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeRenderer struct {
	calls      int
	lastLayout render.Layout
	lastParams render.Params
	err        error
}

func (f *fakeRenderer) Render(_ context.Context, layout render.Layout, _ *weather.Location, params render.Params) (image.Image, error) {
	f.calls++
	f.lastLayout = layout
	f.lastParams = params
	if f.err != nil {
		return nil, f.err
	}
	return image.NewRGBA(image.Rect(0, 0, layout.Width, layout.Height)), nil
}

// --- Helpers ---

func tableWithFonts(t *testing.T, labels, values string) *resource.Table {
	t.Helper()
	override, err := resource.Load(strings.NewReader(
		"string_arrays:\n  widget_clock_fonts: [" + labels + "]\n  widget_clock_font_values: [" + values + "]\n"))
	if err != nil {
		t.Fatalf("resource.Load: %v", err)
	}
	return resource.Default().Merge(override)
}

func lunar(v bool) func() bool {
	return func() bool { return v }
}

var errBoom = errors.New("boom")

var previewTime = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
