package widget

import (
	"context"
	"image"
)

const ClockDayDetailsName = "clock_day_details"

// ClockDayDetails offers the whole clock font catalog, analog included.
type ClockDayDetails struct {
	base
}

func NewClockDayDetails(deps Deps) (*ClockDayDetails, error) {
	b, err := newBase(ClockDayDetailsName, "sp_widget_clock_day_details_setting", deps, clockDayDetailsLayout)
	if err != nil {
		return nil, err
	}
	return &ClockDayDetails{base: b}, nil
}

func (w *ClockDayDetails) Initialize(cfg *Configuration) (*Options, error) {
	opts, err := w.initData(cfg)
	if err != nil {
		return nil, err
	}
	if err := requireDefaultFont(w.name, opts.ClockFonts); err != nil {
		return nil, err
	}
	return opts, nil
}

func (w *ClockDayDetails) SetupView(caps Capabilities) Controls {
	c := HiddenControls()
	c[ControlCardStyle] = true
	c[ControlCardAlpha] = true
	c[ControlTextColor] = true
	c[ControlTextSize] = true
	c[ControlClockFont] = true
	c[ControlHideLunar] = caps.Lunar
	return c
}

func (w *ClockDayDetails) RenderPreview(ctx context.Context, in PreviewInput, cfg Configuration) (image.Image, error) {
	return w.render(ctx, in, cfg)
}
