package widget

import "widgetconfig/internal/render"

func scaled(base, h int) int {
	return base * h / 320
}

func clockDayWeekLayout(w, h int) render.Layout {
	pad := scaled(20, h)
	half := w / 2
	return render.Layout{
		Width:  w,
		Height: h,
		Items: []render.ItemConfig{
			{Type: "card", Width: w, Height: h},
			{Type: "clock", X: pad, Y: pad, Width: half - pad, Height: h * 35 / 100, FontSize: scaled(72, h)},
			{Type: "date", X: pad, Y: pad + h*35/100, Width: half - pad, Height: h / 10, FontSize: scaled(18, h)},
			{Type: "lunar", X: pad, Y: pad + h*45/100, Width: half - pad, Height: h / 10, FontSize: scaled(16, h)},
			{Type: "place", X: half, Y: pad, Width: half - pad, Height: h / 8, FontSize: scaled(18, h)},
			{Type: "week", X: pad, Y: h * 62 / 100, Width: w - 2*pad, Height: h*38/100 - pad, FontSize: scaled(16, h), Count: 5},
		},
	}
}

func dayWeekLayout(w, h int) render.Layout {
	pad := scaled(20, h)
	half := w / 2
	return render.Layout{
		Width:  w,
		Height: h,
		Items: []render.ItemConfig{
			{Type: "card", Width: w, Height: h},
			{Type: "date", X: pad, Y: pad, Width: half - pad, Height: h / 8, FontSize: scaled(24, h)},
			{Type: "lunar", X: pad, Y: pad + h/8, Width: half - pad, Height: h / 10, FontSize: scaled(16, h)},
			{Type: "place", X: half, Y: pad, Width: half - pad, Height: h / 8, FontSize: scaled(24, h)},
			{Type: "week", X: pad, Y: h * 40 / 100, Width: w - 2*pad, Height: h*60/100 - pad, FontSize: scaled(18, h), Count: 5},
		},
	}
}

func clockDayDetailsLayout(w, h int) render.Layout {
	pad := scaled(20, h)
	half := w / 2
	return render.Layout{
		Width:  w,
		Height: h,
		Items: []render.ItemConfig{
			{Type: "card", Width: w, Height: h},
			{Type: "clock", X: pad, Y: pad, Width: half - pad, Height: h / 2, FontSize: scaled(88, h)},
			{Type: "date", X: pad, Y: pad + h/2, Width: half - pad, Height: h / 8, FontSize: scaled(20, h)},
			{Type: "lunar", X: pad, Y: pad + h*5/8, Width: half - pad, Height: h / 8, FontSize: scaled(18, h)},
			{Type: "place", X: half, Y: pad, Width: half - pad, Height: h / 8, FontSize: scaled(20, h)},
			{Type: "week", X: half, Y: h * 30 / 100, Width: half - pad, Height: h*70/100 - pad, FontSize: scaled(16, h), Count: 3},
		},
	}
}
