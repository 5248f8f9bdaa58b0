package widget

import (
	"fmt"
	"time"

	"widgetconfig/internal/errs"
)

const (
	MinCardAlpha = 0
	MaxCardAlpha = 100
	MinTextSize  = 10
	MaxTextSize  = 300

	DefaultClockFont = "light"
)

// Configuration is the per-instance selection set edited on the screen and
// persisted on save.
type Configuration struct {
	WidgetID  string    `json:"widget_id" firestore:"widgetId"`
	Variant   string    `json:"variant" firestore:"variant"`
	CardStyle string    `json:"card_style" firestore:"cardStyle"`
	CardAlpha int       `json:"card_alpha" firestore:"cardAlpha"`
	TextColor string    `json:"text_color" firestore:"textColor"`
	TextSize  int       `json:"text_size" firestore:"textSize"`
	ClockFont string    `json:"clock_font" firestore:"clockFont"`
	HideLunar bool      `json:"hide_lunar" firestore:"hideLunar"`
	UpdatedAt time.Time `json:"updated_at,omitempty" firestore:"updatedAt"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		CardStyle: "none",
		CardAlpha: 100,
		TextColor: "light",
		TextSize:  100,
		ClockFont: DefaultClockFont,
		HideLunar: false,
	}
}

// Validate checks the numeric ranges. Enum fields are checked against the
// visible catalogs by the controller.
func (c Configuration) Validate() error {
	if c.CardAlpha < MinCardAlpha || c.CardAlpha > MaxCardAlpha {
		return errs.NewValidationError(fmt.Sprintf("card alpha %d out of range [%d,%d]", c.CardAlpha, MinCardAlpha, MaxCardAlpha))
	}
	if c.TextSize < MinTextSize || c.TextSize > MaxTextSize {
		return errs.NewValidationError(fmt.Sprintf("text size %d out of range [%d,%d]", c.TextSize, MinTextSize, MaxTextSize))
	}
	return nil
}
