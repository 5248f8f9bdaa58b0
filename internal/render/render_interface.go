package render

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/fogleman/gg"

	"widgetconfig/internal/weather"
)

// ItemConfig places one element of a widget layout.
type ItemConfig struct {
	Type     string `json:"type"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	FontSize int    `json:"font_size,omitempty"`
	Count    int    `json:"count,omitempty"`
}

type Layout struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Items  []ItemConfig `json:"items"`
}

// Params carries the user's selections into a render.
type Params struct {
	CardStyle string
	CardAlpha int
	TextColor string
	TextSize  int
	ClockFont string
	ShowLunar bool
	Now       time.Time

	// CurrentLabel names the device's own position.
	CurrentLabel string
}

// Frame is the per-render state handed to every item renderer.
type Frame struct {
	Location  *weather.Location
	Params    Params
	Fonts     *Faces
	Now       time.Time
	Card      string
	TextColor string
	Scale     float64
}

// FontSize scales a layout size by the user's text size.
func (f *Frame) FontSize(base int) int {
	size := int(float64(base)*f.Scale + 0.5)
	if size < 6 {
		size = 6
	}
	return size
}

type RenderItem interface {
	Render(dc *gg.Context, item *ItemConfig, frame *Frame) error
	GetType() string
}

type RenderManager struct {
	renderers map[string]RenderItem
	fontCache *FontCache
	palette   Palette
}

func NewRenderManager(fontCache *FontCache, palette Palette) *RenderManager {
	rm := &RenderManager{
		renderers: make(map[string]RenderItem),
		fontCache: fontCache,
		palette:   palette,
	}

	rm.RegisterRenderer(NewCardRenderer())
	rm.RegisterRenderer(NewClockRenderer())
	rm.RegisterRenderer(NewDateRenderer())
	rm.RegisterRenderer(NewLunarRenderer())
	rm.RegisterRenderer(NewPlaceRenderer())
	rm.RegisterRenderer(NewWeekRenderer())

	return rm
}

func (rm *RenderManager) RegisterRenderer(renderer RenderItem) {
	rm.renderers[renderer.GetType()] = renderer
}

// Render draws layout for loc at params.Now. Identical inputs give identical
// pixels, and concurrent calls are safe. Item errors are logged and the
// item skipped.
func (rm *RenderManager) Render(ctx context.Context, layout Layout, loc *weather.Location, params Params) (image.Image, error) {
	if layout.Width <= 0 || layout.Height <= 0 {
		return nil, fmt.Errorf("invalid layout size %dx%d", layout.Width, layout.Height)
	}
	if loc == nil {
		return nil, fmt.Errorf("no location to render")
	}

	if params.Now.IsZero() {
		return nil, fmt.Errorf("no render time")
	}
	now := params.Now.In(loc.Zone())

	faces := rm.fontCache.NewFaces()
	defer faces.Close()

	card := rm.palette.CardColor(params.CardStyle, loc.IsDaylight(now))
	frame := &Frame{
		Location:  loc,
		Params:    params,
		Fonts:     faces,
		Now:       now,
		Card:      card,
		TextColor: rm.palette.TextColor(params.TextColor, card),
		Scale:     textScale(params.TextSize),
	}

	dc := gg.NewContext(layout.Width, layout.Height)

	for i := range layout.Items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		item := &layout.Items[i]
		renderer, exists := rm.renderers[item.Type]
		if !exists {
			continue
		}
		if err := renderer.Render(dc, item, frame); err != nil {
			logRenderError(item.Type, err)
			continue
		}
	}

	return dc.Image(), nil
}

func textScale(textSize int) float64 {
	if textSize <= 0 {
		return 1
	}
	return float64(textSize) / 100
}
