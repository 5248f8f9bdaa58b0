package main

import (
	"context"
	"fmt"
	"time"

	"widgetconfig/internal/capability"
	"widgetconfig/internal/config"
	"widgetconfig/internal/logging"
	"widgetconfig/internal/render"
	"widgetconfig/internal/resource"
	"widgetconfig/internal/store"
	"widgetconfig/internal/weather"
	"widgetconfig/internal/widget"
)

// app holds everything built from one AppConfig.
type app struct {
	config    *config.AppConfig
	registry  *widget.Registry
	store     widget.Store
	lunar     capability.Check
	locations []*weather.Location
	closers   []closer
}

type closer struct {
	name  string
	close func() error
}

func newApp(ctx context.Context, cfg *config.AppConfig) (*app, error) {
	table := resource.Default()
	if cfg.Resources != "" {
		override, err := resource.LoadFile(cfg.Resources)
		if err != nil {
			return nil, err
		}
		table = table.Merge(override)
	}

	var locations []*weather.Location
	if cfg.LocationsFile != "" {
		locs, err := weather.LoadLocations(cfg.LocationsFile)
		if err != nil {
			return nil, err
		}
		locations = locs
	}

	fonts := render.NewFontCache(append(append([]string{}, cfg.FontFamilies...), render.DefaultSystemFonts()...)...)
	renderer := render.NewRenderManager(fonts, render.PaletteFromColors(cfg.Colors))
	lunar := capability.LunarCheck(cfg.GetLocale())

	registry, err := widget.DefaultRegistry(widget.Deps{
		Table:    table,
		Renderer: renderer,
		Width:    cfg.GetPreviewWidth(),
		Height:   cfg.GetPreviewHeight(),
	})
	if err != nil {
		return nil, err
	}
	if err := checkCatalogs(registry); err != nil {
		return nil, err
	}

	a := &app{
		config:    cfg,
		registry:  registry,
		lunar:     lunar,
		locations: locations,
	}
	if err := a.openStore(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// checkCatalogs initializes every variant once so broken resources stop
// startup instead of the first request.
func checkCatalogs(registry *widget.Registry) error {
	for _, name := range registry.Names() {
		w, _ := registry.Get(name)
		if _, err := w.Initialize(&widget.Configuration{}); err != nil {
			return fmt.Errorf("widget %s: %w", name, err)
		}
	}
	return nil
}

func (a *app) openStore(ctx context.Context) error {
	switch a.config.GetStore() {
	case "memory":
		a.store = store.NewMemoryStore()
	case "file":
		s, err := store.NewFileStore(a.config.GetStoreDir())
		if err != nil {
			return err
		}
		a.store = s
	case "firestore":
		if a.config.Firestore.ProjectID == "" {
			return fmt.Errorf("firestore store requires firestore.project_id")
		}
		client, err := store.NewFirestoreClient(ctx, a.config.Firestore.ProjectID)
		if err != nil {
			return fmt.Errorf("failed to connect to firestore: %w", err)
		}
		a.store = store.NewFirestoreStore(client, a.config.GetFirestoreCollection())
		a.closers = append(a.closers, closer{name: "firestore", close: client.Close})
	default:
		return fmt.Errorf("unknown store backend %q", a.config.GetStore())
	}
	return nil
}

// location resolves a location id, falling back to the first configured
// location and then to the built-in sample.
func (a *app) location(id string) (*weather.Location, error) {
	if id != "" {
		loc, ok := weather.Find(a.locations, id)
		if !ok {
			return nil, fmt.Errorf("unknown location %q", id)
		}
		return loc, nil
	}
	if len(a.locations) > 0 {
		return a.locations[0], nil
	}
	return weather.DefaultLocation(time.Now()), nil
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.close(); err != nil {
			logging.WarnModule("store", "%s close failed: %v", c.name, err)
		}
	}
}
