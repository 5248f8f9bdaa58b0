package widget

import (
	"context"
	"image"
)

const ClockDayWeekName = "clock_day_week"

// ClockDayWeek is the clock + day/week widget. It offers only the first
// three clock fonts; the analog entry after them has no layout here.
type ClockDayWeek struct {
	base
}

func NewClockDayWeek(deps Deps) (*ClockDayWeek, error) {
	b, err := newBase(ClockDayWeekName, "sp_widget_clock_day_week_setting", deps, clockDayWeekLayout)
	if err != nil {
		return nil, err
	}
	return &ClockDayWeek{base: b}, nil
}

func (w *ClockDayWeek) Initialize(cfg *Configuration) (*Options, error) {
	opts, err := w.initData(cfg)
	if err != nil {
		return nil, err
	}

	// Positional: the resource order decides which three fonts are offered.
	fonts, err := opts.ClockFonts.Truncate(3)
	if err != nil {
		return nil, err
	}
	if err := requireDefaultFont(w.name, fonts); err != nil {
		return nil, err
	}
	opts.ClockFonts = fonts
	cfg.ClockFont = DefaultClockFont

	return opts, nil
}

func (w *ClockDayWeek) SetupView(caps Capabilities) Controls {
	c := HiddenControls()
	c[ControlCardStyle] = true
	c[ControlCardAlpha] = true
	c[ControlTextColor] = true
	c[ControlTextSize] = true
	c[ControlClockFont] = true
	c[ControlHideLunar] = caps.Lunar
	return c
}

func (w *ClockDayWeek) RenderPreview(ctx context.Context, in PreviewInput, cfg Configuration) (image.Image, error) {
	return w.render(ctx, in, cfg)
}
