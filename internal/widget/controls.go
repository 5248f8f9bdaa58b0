package widget

// Control names one option group on the configuration screen.
type Control string

const (
	ControlCardStyle Control = "card_style"
	ControlCardAlpha Control = "card_alpha"
	ControlTextColor Control = "text_color"
	ControlTextSize  Control = "text_size"
	ControlClockFont Control = "clock_font"
	ControlHideLunar Control = "hide_lunar"
)

var AllControls = []Control{
	ControlCardStyle,
	ControlCardAlpha,
	ControlTextColor,
	ControlTextSize,
	ControlClockFont,
	ControlHideLunar,
}

// Controls maps every control to its visibility.
type Controls map[Control]bool

// HiddenControls is the starting point every variant overrides.
func HiddenControls() Controls {
	c := make(Controls, len(AllControls))
	for _, ctl := range AllControls {
		c[ctl] = false
	}
	return c
}

func (c Controls) Visible(ctl Control) bool {
	return c[ctl]
}

// Capabilities describes what the environment supports.
type Capabilities struct {
	Lunar bool `json:"lunar"`
}
