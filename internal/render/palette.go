package render

// Palette holds the hex colors for card and text themes.
type Palette struct {
	CardLight string
	CardDark  string
	TextLight string
	TextDark  string
	Accent    string
}

func DefaultPalette() Palette {
	return Palette{
		CardLight: "#ffffff",
		CardDark:  "#1a1a2e",
		TextLight: "#ffffff",
		TextDark:  "#212121",
		Accent:    "#4fc3f7",
	}
}

// PaletteFromColors overrides the defaults with entries of an app config
// colors map (card_light, card_dark, text_light, text_dark, accent).
func PaletteFromColors(colors map[string]string) Palette {
	p := DefaultPalette()
	for key, dst := range map[string]*string{
		"card_light": &p.CardLight,
		"card_dark":  &p.CardDark,
		"text_light": &p.TextLight,
		"text_dark":  &p.TextDark,
		"accent":     &p.Accent,
	} {
		if c, ok := colors[key]; ok && c != "" {
			*dst = c
		}
	}
	return p
}

// CardColor resolves a card style value. An empty result means no card.
func (p Palette) CardColor(style string, daylight bool) string {
	switch style {
	case "light":
		return p.CardLight
	case "dark":
		return p.CardDark
	case "auto":
		if daylight {
			return p.CardLight
		}
		return p.CardDark
	default:
		return ""
	}
}

// TextColor resolves a text color value against the resolved card. Auto
// text contrasts with the card and is light when there is none.
func (p Palette) TextColor(textColor, card string) string {
	switch textColor {
	case "light":
		return p.TextLight
	case "dark":
		return p.TextDark
	}
	if card != "" && card == p.CardLight {
		return p.TextDark
	}
	return p.TextLight
}
