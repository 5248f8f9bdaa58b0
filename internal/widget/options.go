package widget

import "widgetconfig/internal/catalog"

// Options are the catalogs a user may pick from.
type Options struct {
	CardStyles *catalog.OptionCatalog
	TextColors *catalog.OptionCatalog
	ClockFonts *catalog.OptionCatalog
}

type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// OptionsView is the serializable form of Options.
type OptionsView struct {
	CardStyles []catalog.Option `json:"card_styles"`
	TextColors []catalog.Option `json:"text_colors"`
	ClockFonts []catalog.Option `json:"clock_fonts"`
	CardAlpha  Range            `json:"card_alpha"`
	TextSize   Range            `json:"text_size"`
}

func (o *Options) View() OptionsView {
	v := OptionsView{
		CardAlpha: Range{Min: MinCardAlpha, Max: MaxCardAlpha},
		TextSize:  Range{Min: MinTextSize, Max: MaxTextSize},
	}
	if o.CardStyles != nil {
		v.CardStyles = o.CardStyles.Options()
	}
	if o.TextColors != nil {
		v.TextColors = o.TextColors.Options()
	}
	if o.ClockFonts != nil {
		v.ClockFonts = o.ClockFonts.Options()
	}
	return v
}
