package render

import (
	"image/color"
	"strconv"

	"github.com/fogleman/gg"

	"widgetconfig/internal/logging"
)

// parseColor converts hex color string to color.Color
func parseColor(hexColor string) color.Color {
	return parseColorAlpha(hexColor, 255)
}

func parseColorAlpha(hexColor string, alpha uint8) color.Color {
	if hexColor == "" {
		return color.NRGBA{255, 255, 255, alpha}
	}

	if hexColor[0] == '#' {
		hexColor = hexColor[1:]
	}

	if len(hexColor) != 6 {
		return color.NRGBA{255, 255, 255, alpha}
	}

	r, _ := strconv.ParseUint(hexColor[0:2], 16, 8)
	g, _ := strconv.ParseUint(hexColor[2:4], 16, 8)
	b, _ := strconv.ParseUint(hexColor[4:6], 16, 8)

	return color.NRGBA{uint8(r), uint8(g), uint8(b), alpha}
}

// alphaFromPercent maps 0..100 to 0..255, clamping out-of-range input.
func alphaFromPercent(percent int) uint8 {
	switch {
	case percent <= 0:
		return 0
	case percent >= 100:
		return 255
	default:
		return uint8(percent * 255 / 100)
	}
}

func drawRoundedBackground(dc *gg.Context, x, y, width, height int, radius float64, c color.Color) {
	dc.SetColor(c)
	dc.DrawRoundedRectangle(float64(x), float64(y), float64(width), float64(height), radius)
	dc.Fill()
}

// drawText draws text anchored inside item; ax/ay follow gg's anchor rules.
func drawText(dc *gg.Context, text string, item *ItemConfig, ax, ay float64, fontStyle string, fontSize int, hexColor string, fonts *Faces) error {
	if text == "" {
		return nil
	}

	face, err := fonts.Face(fontStyle, fontSize)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(parseColor(hexColor))

	x := float64(item.X) + ax*float64(item.Width)
	y := float64(item.Y) + ay*float64(item.Height)
	dc.DrawStringAnchored(text, x, y, ax, ay)
	return nil
}

func logRenderError(itemType string, err error) {
	logging.WarnModule("render", "%s item skipped: %v", itemType, err)
}
