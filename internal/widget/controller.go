package widget

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"widgetconfig/internal/capability"
	"widgetconfig/internal/catalog"
	"widgetconfig/internal/errs"
	"widgetconfig/internal/logging"
	"widgetconfig/internal/weather"
)

// Patch carries a partial update; nil fields are left alone.
type Patch struct {
	CardStyle *string `json:"card_style,omitempty"`
	CardAlpha *int    `json:"card_alpha,omitempty"`
	TextColor *string `json:"text_color,omitempty"`
	TextSize  *int    `json:"text_size,omitempty"`
	ClockFont *string `json:"clock_font,omitempty"`
	HideLunar *bool   `json:"hide_lunar,omitempty"`
}

// Controller drives one configuration session for one widget instance.
type Controller struct {
	widget ConfigurableWidget
	store  Store
	lunar  capability.Check
	now    func() time.Time

	mutex    sync.Mutex
	opened   bool
	config   Configuration
	options  *Options
	controls Controls
	caps     Capabilities
}

func NewController(w ConfigurableWidget, store Store, lunar capability.Check) *Controller {
	if lunar == nil {
		lunar = func() bool { return false }
	}
	return &Controller{
		widget: w,
		store:  store,
		lunar:  lunar,
		now:    time.Now,
	}
}

// Open initializes defaults, overlays a previously saved configuration
// when one exists, and resolves control visibility.
func (c *Controller) Open(ctx context.Context, widgetID string) error {
	cfg := Configuration{WidgetID: widgetID}
	opts, err := c.widget.Initialize(&cfg)
	if err != nil {
		return fmt.Errorf("initialize %s: %w", c.widget.Name(), err)
	}
	caps := Capabilities{Lunar: c.lunar()}
	controls := c.widget.SetupView(caps)

	if c.store != nil {
		saved, err := c.store.Load(ctx, c.widget.ConfigStoreKey(), widgetID)
		switch {
		case err == nil:
			cfg = overlay(cfg, *saved, opts, controls)
		case errs.IsNotFound(err):
		default:
			return fmt.Errorf("load %s/%s: %w", c.widget.ConfigStoreKey(), widgetID, err)
		}
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.config = cfg
	c.options = opts
	c.controls = controls
	c.caps = caps
	c.opened = true

	logging.DebugModule("widget", "opened %s/%s", c.widget.Name(), widgetID)
	return nil
}

// overlay takes saved values that are still selectable and keeps the
// defaults for the rest.
func overlay(def, saved Configuration, opts *Options, controls Controls) Configuration {
	out := def
	if controls.Visible(ControlCardStyle) && contains(opts.CardStyles, saved.CardStyle) {
		out.CardStyle = saved.CardStyle
	}
	if controls.Visible(ControlCardAlpha) && saved.CardAlpha >= MinCardAlpha && saved.CardAlpha <= MaxCardAlpha {
		out.CardAlpha = saved.CardAlpha
	}
	if controls.Visible(ControlTextColor) && contains(opts.TextColors, saved.TextColor) {
		out.TextColor = saved.TextColor
	}
	if controls.Visible(ControlTextSize) && saved.TextSize >= MinTextSize && saved.TextSize <= MaxTextSize {
		out.TextSize = saved.TextSize
	}
	if controls.Visible(ControlClockFont) && contains(opts.ClockFonts, saved.ClockFont) {
		out.ClockFont = saved.ClockFont
	}
	if controls.Visible(ControlHideLunar) {
		out.HideLunar = saved.HideLunar
	}
	out.UpdatedAt = saved.UpdatedAt
	return out
}

func contains(c *catalog.OptionCatalog, value string) bool {
	return c != nil && c.Contains(value)
}

func (c *Controller) Widget() ConfigurableWidget {
	return c.widget
}

func (c *Controller) Configuration() Configuration {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.config
}

func (c *Controller) Controls() Controls {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	out := make(Controls, len(c.controls))
	for k, v := range c.controls {
		out[k] = v
	}
	return out
}

func (c *Controller) Options() *Options {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.options
}

// Apply validates every field of p before changing anything.
func (c *Controller) Apply(p Patch) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if !c.opened {
		return errs.NewValidationError("configuration session is not open")
	}

	next := c.config
	if p.CardStyle != nil {
		if err := c.checkChoice(ControlCardStyle, c.options.CardStyles, *p.CardStyle); err != nil {
			return err
		}
		next.CardStyle = *p.CardStyle
	}
	if p.CardAlpha != nil {
		if err := c.checkVisible(ControlCardAlpha); err != nil {
			return err
		}
		next.CardAlpha = *p.CardAlpha
	}
	if p.TextColor != nil {
		if err := c.checkChoice(ControlTextColor, c.options.TextColors, *p.TextColor); err != nil {
			return err
		}
		next.TextColor = *p.TextColor
	}
	if p.TextSize != nil {
		if err := c.checkVisible(ControlTextSize); err != nil {
			return err
		}
		next.TextSize = *p.TextSize
	}
	if p.ClockFont != nil {
		if err := c.checkChoice(ControlClockFont, c.options.ClockFonts, *p.ClockFont); err != nil {
			return err
		}
		next.ClockFont = *p.ClockFont
	}
	if p.HideLunar != nil {
		if err := c.checkVisible(ControlHideLunar); err != nil {
			return err
		}
		next.HideLunar = *p.HideLunar
	}
	if err := next.Validate(); err != nil {
		return err
	}

	c.config = next
	return nil
}

func (c *Controller) checkVisible(ctl Control) error {
	if !c.controls.Visible(ctl) {
		return errs.NewValidationError(fmt.Sprintf("%s is not configurable for %s", ctl, c.widget.Name()))
	}
	return nil
}

func (c *Controller) checkChoice(ctl Control, options *catalog.OptionCatalog, value string) error {
	if err := c.checkVisible(ctl); err != nil {
		return err
	}
	if !contains(options, value) {
		return errs.NewValidationError(fmt.Sprintf("%q is not a valid %s", value, ctl))
	}
	return nil
}

func (c *Controller) SetCardStyle(v string) error { return c.Apply(Patch{CardStyle: &v}) }
func (c *Controller) SetCardAlpha(v int) error    { return c.Apply(Patch{CardAlpha: &v}) }
func (c *Controller) SetTextColor(v string) error { return c.Apply(Patch{TextColor: &v}) }
func (c *Controller) SetTextSize(v int) error     { return c.Apply(Patch{TextSize: &v}) }
func (c *Controller) SetClockFont(v string) error { return c.Apply(Patch{ClockFont: &v}) }
func (c *Controller) SetHideLunar(v bool) error   { return c.Apply(Patch{HideLunar: &v}) }

// Preview renders the current selections for loc at now. Lunar text follows
// the capabilities resolved by Open, the same ones that decide whether the
// hide lunar control is shown.
func (c *Controller) Preview(ctx context.Context, loc *weather.Location, now time.Time) (image.Image, error) {
	c.mutex.Lock()
	opened := c.opened
	cfg := c.config
	caps := c.caps
	c.mutex.Unlock()

	if !opened {
		return nil, errs.NewValidationError("configuration session is not open")
	}
	if now.IsZero() {
		return nil, errs.NewValidationError("preview time is required")
	}
	return c.widget.RenderPreview(ctx, PreviewInput{Location: loc, Now: now, Caps: caps}, cfg)
}

// Save persists the current selections under the variant's store key.
func (c *Controller) Save(ctx context.Context) (Configuration, error) {
	if c.store == nil {
		return Configuration{}, fmt.Errorf("no configuration store")
	}

	c.mutex.Lock()
	if !c.opened {
		c.mutex.Unlock()
		return Configuration{}, errs.NewValidationError("configuration session is not open")
	}
	cfg := c.config
	cfg.Variant = c.widget.Name()
	cfg.UpdatedAt = c.now().UTC()
	c.mutex.Unlock()

	if err := c.store.Save(ctx, c.widget.ConfigStoreKey(), cfg.WidgetID, cfg); err != nil {
		return Configuration{}, fmt.Errorf("save %s/%s: %w", c.widget.ConfigStoreKey(), cfg.WidgetID, err)
	}

	c.mutex.Lock()
	c.config.UpdatedAt = cfg.UpdatedAt
	c.mutex.Unlock()

	logging.InfoModule("widget", "saved %s/%s", c.widget.ConfigStoreKey(), cfg.WidgetID)
	return cfg, nil
}

// Remove drops the persisted entry of this widget instance.
func (c *Controller) Remove(ctx context.Context) error {
	if c.store == nil {
		return fmt.Errorf("no configuration store")
	}
	c.mutex.Lock()
	id := c.config.WidgetID
	c.mutex.Unlock()
	return c.store.Delete(ctx, c.widget.ConfigStoreKey(), id)
}
