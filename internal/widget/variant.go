package widget

import (
	"context"
	"fmt"
	"image"
	"time"

	"widgetconfig/internal/catalog"
	"widgetconfig/internal/errs"
	"widgetconfig/internal/render"
	"widgetconfig/internal/resource"
	"widgetconfig/internal/weather"
)

// ConfigurableWidget is implemented once per widget variant. The
// Controller calls Initialize, SetupView and RenderPreview in that order.
type ConfigurableWidget interface {
	Name() string
	// Initialize fills cfg with the variant's defaults and returns the
	// catalogs the user may choose from.
	Initialize(cfg *Configuration) (*Options, error)
	SetupView(caps Capabilities) Controls
	RenderPreview(ctx context.Context, in PreviewInput, cfg Configuration) (image.Image, error)
	// ConfigStoreKey namespaces the variant's persisted settings.
	ConfigStoreKey() string
}

// PreviewInput is the context a preview is drawn in. The same input and
// configuration always give the same image.
type PreviewInput struct {
	Location *weather.Location
	Now      time.Time
	Caps     Capabilities
}

// PreviewRenderer is satisfied by *render.RenderManager.
type PreviewRenderer interface {
	Render(ctx context.Context, layout render.Layout, loc *weather.Location, params render.Params) (image.Image, error)
}

// Deps are shared by every variant.
type Deps struct {
	Table    *resource.Table
	Renderer PreviewRenderer
	Width    int
	Height   int
}

// base carries the steps common to all variants.
type base struct {
	name     string
	storeKey string
	deps     Deps
	layout   render.Layout
	current  string
}

func newBase(name, storeKeyRes string, deps Deps, layout func(w, h int) render.Layout) (base, error) {
	if deps.Table == nil || deps.Renderer == nil {
		return base{}, fmt.Errorf("%s: resource table and renderer are required", name)
	}
	storeKey, err := deps.Table.String(storeKeyRes)
	if err != nil {
		return base{}, errs.NewIntegrityError(fmt.Sprintf("%s: %v", name, err))
	}
	current, err := deps.Table.String("location_current")
	if err != nil {
		current = "Current location"
	}
	w, h := deps.Width, deps.Height
	if w <= 0 || h <= 0 {
		w, h = 640, 320
	}
	return base{
		name:     name,
		storeKey: storeKey,
		deps:     deps,
		layout:   layout(w, h),
		current:  current,
	}, nil
}

func (b *base) Name() string {
	return b.name
}

func (b *base) ConfigStoreKey() string {
	return b.storeKey
}

// initData loads the full catalogs and resets cfg to defaults.
func (b *base) initData(cfg *Configuration) (*Options, error) {
	cardStyles, err := catalog.Load(b.deps.Table, "widget_card_styles", "widget_card_style_values")
	if err != nil {
		return nil, err
	}
	textColors, err := catalog.Load(b.deps.Table, "widget_text_colors", "widget_text_color_values")
	if err != nil {
		return nil, err
	}
	clockFonts, err := catalog.Load(b.deps.Table, "widget_clock_fonts", "widget_clock_font_values")
	if err != nil {
		return nil, err
	}

	def := DefaultConfiguration()
	def.WidgetID = cfg.WidgetID
	def.Variant = b.name
	*cfg = def

	return &Options{
		CardStyles: cardStyles,
		TextColors: textColors,
		ClockFonts: clockFonts,
	}, nil
}

func (b *base) render(ctx context.Context, in PreviewInput, cfg Configuration) (image.Image, error) {
	params := render.Params{
		CardStyle:    cfg.CardStyle,
		CardAlpha:    cfg.CardAlpha,
		TextColor:    cfg.TextColor,
		TextSize:     cfg.TextSize,
		ClockFont:    cfg.ClockFont,
		ShowLunar:    in.Caps.Lunar && !cfg.HideLunar,
		Now:          in.Now,
		CurrentLabel: b.current,
	}
	return b.deps.Renderer.Render(ctx, b.layout, in.Location, params)
}

// requireDefaultFont fails when the fixed default is not selectable.
func requireDefaultFont(name string, fonts *catalog.OptionCatalog) error {
	if !fonts.Contains(DefaultClockFont) {
		return errs.NewIntegrityError(fmt.Sprintf(
			"%s: default clock font %q missing from visible fonts %v", name, DefaultClockFont, fonts.Values()))
	}
	return nil
}
