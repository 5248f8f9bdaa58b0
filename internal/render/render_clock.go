package render

import (
	"math"

	"github.com/fogleman/gg"
)

type ClockRenderer struct{}

func NewClockRenderer() *ClockRenderer {
	return &ClockRenderer{}
}

func (c *ClockRenderer) GetType() string {
	return "clock"
}

func (c *ClockRenderer) Render(dc *gg.Context, item *ItemConfig, frame *Frame) error {
	if frame.Params.ClockFont == FontAnalog {
		c.drawAnalog(dc, item, frame)
		return nil
	}

	base := item.FontSize
	if base == 0 {
		base = 56
	}
	text := frame.Now.Format("15:04")
	return drawText(dc, text, item, 0, 0.5, frame.Params.ClockFont, frame.FontSize(base), frame.TextColor, frame.Fonts)
}

func (c *ClockRenderer) drawAnalog(dc *gg.Context, item *ItemConfig, frame *Frame) {
	r := math.Min(float64(item.Width), float64(item.Height)) / 2 * 0.9
	cx := float64(item.X) + r/0.9
	cy := float64(item.Y) + float64(item.Height)/2

	dc.SetColor(parseColor(frame.TextColor))
	dc.SetLineWidth(2)
	dc.DrawCircle(cx, cy, r)
	dc.Stroke()

	for i := 0; i < 12; i++ {
		a := float64(i) * math.Pi / 6
		dc.DrawLine(cx+math.Sin(a)*r*0.85, cy-math.Cos(a)*r*0.85, cx+math.Sin(a)*r, cy-math.Cos(a)*r)
	}
	dc.Stroke()

	h := float64(frame.Now.Hour()%12) + float64(frame.Now.Minute())/60
	m := float64(frame.Now.Minute())
	hourAngle := h * math.Pi / 6
	minuteAngle := m * math.Pi / 30

	dc.SetLineWidth(4)
	dc.DrawLine(cx, cy, cx+math.Sin(hourAngle)*r*0.5, cy-math.Cos(hourAngle)*r*0.5)
	dc.Stroke()
	dc.SetLineWidth(2)
	dc.DrawLine(cx, cy, cx+math.Sin(minuteAngle)*r*0.8, cy-math.Cos(minuteAngle)*r*0.8)
	dc.Stroke()
}
