package render

import "github.com/fogleman/gg"

type CardRenderer struct{}

func NewCardRenderer() *CardRenderer {
	return &CardRenderer{}
}

func (c *CardRenderer) GetType() string {
	return "card"
}

func (c *CardRenderer) Render(dc *gg.Context, item *ItemConfig, frame *Frame) error {
	if frame.Card == "" {
		return nil
	}
	alpha := alphaFromPercent(frame.Params.CardAlpha)
	if alpha == 0 {
		return nil
	}
	drawRoundedBackground(dc, item.X, item.Y, item.Width, item.Height, 16, parseColorAlpha(frame.Card, alpha))
	return nil
}
