package widget

import (
	"context"
	"image"
)

const DayWeekName = "day_week"

// DayWeek has no clock, so the font control stays hidden.
type DayWeek struct {
	base
}

func NewDayWeek(deps Deps) (*DayWeek, error) {
	b, err := newBase(DayWeekName, "sp_widget_day_week_setting", deps, dayWeekLayout)
	if err != nil {
		return nil, err
	}
	return &DayWeek{base: b}, nil
}

func (w *DayWeek) Initialize(cfg *Configuration) (*Options, error) {
	opts, err := w.initData(cfg)
	if err != nil {
		return nil, err
	}
	opts.ClockFonts = nil
	return opts, nil
}

func (w *DayWeek) SetupView(caps Capabilities) Controls {
	c := HiddenControls()
	c[ControlCardStyle] = true
	c[ControlCardAlpha] = true
	c[ControlTextColor] = true
	c[ControlTextSize] = true
	c[ControlHideLunar] = caps.Lunar
	return c
}

func (w *DayWeek) RenderPreview(ctx context.Context, in PreviewInput, cfg Configuration) (image.Image, error) {
	return w.render(ctx, in, cfg)
}
