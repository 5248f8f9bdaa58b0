package render

import (
	"image/color"
	"math"
	"time"

	"github.com/fogleman/gg"

	"widgetconfig/internal/weather"
)

type WeekRenderer struct{}

func NewWeekRenderer() *WeekRenderer {
	return &WeekRenderer{}
}

func (w *WeekRenderer) GetType() string {
	return "week"
}

// Render lays out one column per day: weekday, icon, max/min.
func (w *WeekRenderer) Render(dc *gg.Context, item *ItemConfig, frame *Frame) error {
	count := item.Count
	if count <= 0 {
		count = 5
	}
	days := frame.Location.Week(frame.Now, count)
	if len(days) == 0 {
		return nil
	}

	base := item.FontSize
	if base == 0 {
		base = 14
	}
	size := frame.FontSize(base)
	colWidth := item.Width / count
	rowHeight := item.Height / 3

	for i, day := range days {
		col := &ItemConfig{X: item.X + i*colWidth, Width: colWidth, Height: rowHeight}

		col.Y = item.Y
		if err := drawText(dc, weekdayLabel(day.Date, frame.Now), col, 0.5, 0.5, FontNormal, size, frame.TextColor, frame.Fonts); err != nil {
			return err
		}

		cx := float64(col.X) + float64(colWidth)/2
		cy := float64(item.Y) + float64(rowHeight)*1.5
		r := math.Min(float64(colWidth), float64(rowHeight)) * 0.35
		drawWeatherIcon(dc, day.Code.Category(), cx, cy, r, frame.TextColor)

		col.Y = item.Y + 2*rowHeight
		temps := formatTemp(day.TempMax) + "/" + formatTemp(day.TempMin)
		if err := drawText(dc, temps, col, 0.5, 0.5, FontLight, size, frame.TextColor, frame.Fonts); err != nil {
			return err
		}
	}
	return nil
}

func weekdayLabel(date string, now time.Time) string {
	d, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return date
	}
	if d.Format("2006-01-02") == now.Format("2006-01-02") {
		return "Today"
	}
	return d.Format("Mon")
}

func drawWeatherIcon(dc *gg.Context, category weather.Category, cx, cy, r float64, hexColor string) {
	sun := parseColor("#ffc107")
	fg := parseColor(hexColor)

	switch category {
	case weather.CategorySun:
		dc.SetColor(sun)
		dc.DrawCircle(cx, cy, r*0.6)
		dc.Fill()
		dc.SetLineWidth(2)
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			dc.DrawLine(cx+math.Cos(a)*r*0.75, cy+math.Sin(a)*r*0.75, cx+math.Cos(a)*r, cy+math.Sin(a)*r)
		}
		dc.Stroke()
	case weather.CategoryPartlySun:
		dc.SetColor(sun)
		dc.DrawCircle(cx-r*0.3, cy-r*0.3, r*0.5)
		dc.Fill()
		drawCloud(dc, cx+r*0.1, cy+r*0.15, r*0.8, fg)
	case weather.CategoryCloud:
		drawCloud(dc, cx, cy, r, fg)
	case weather.CategoryRain:
		drawCloud(dc, cx, cy-r*0.25, r*0.8, fg)
		dc.SetColor(parseColor("#4fc3f7"))
		dc.SetLineWidth(2)
		for i := -1; i <= 1; i++ {
			x := cx + float64(i)*r*0.4
			dc.DrawLine(x, cy+r*0.35, x-r*0.15, cy+r*0.8)
		}
		dc.Stroke()
	case weather.CategorySnow:
		drawCloud(dc, cx, cy-r*0.25, r*0.8, fg)
		dc.SetColor(fg)
		for i := -1; i <= 1; i++ {
			dc.DrawCircle(cx+float64(i)*r*0.4, cy+r*0.6, r*0.1)
		}
		dc.Fill()
	case weather.CategoryThunder:
		drawCloud(dc, cx, cy-r*0.25, r*0.8, fg)
		dc.SetColor(sun)
		dc.MoveTo(cx+r*0.1, cy+r*0.2)
		dc.LineTo(cx-r*0.2, cy+r*0.6)
		dc.LineTo(cx+r*0.05, cy+r*0.6)
		dc.LineTo(cx-r*0.15, cy+r)
		dc.SetLineWidth(2)
		dc.Stroke()
	default:
		dc.SetColor(fg)
		dc.SetLineWidth(1)
		dc.DrawCircle(cx, cy, r*0.5)
		dc.Stroke()
	}
}

func drawCloud(dc *gg.Context, cx, cy, r float64, c color.Color) {
	dc.SetColor(c)
	dc.DrawCircle(cx-r*0.4, cy+r*0.1, r*0.35)
	dc.DrawCircle(cx, cy-r*0.1, r*0.45)
	dc.DrawCircle(cx+r*0.4, cy+r*0.1, r*0.35)
	dc.DrawRectangle(cx-r*0.4, cy+r*0.1, r*0.8, r*0.35)
	dc.Fill()
}
