package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/6tail/lunar-go/calendar"
	"github.com/fogleman/gg"
)

type DateRenderer struct{}

func NewDateRenderer() *DateRenderer {
	return &DateRenderer{}
}

func (d *DateRenderer) GetType() string {
	return "date"
}

func (d *DateRenderer) Render(dc *gg.Context, item *ItemConfig, frame *Frame) error {
	base := item.FontSize
	if base == 0 {
		base = 16
	}
	text := frame.Now.Format("Mon, Jan 2")
	return drawText(dc, text, item, 0, 0.5, FontNormal, frame.FontSize(base), frame.TextColor, frame.Fonts)
}

// LunarRenderer draws the Chinese lunar date, e.g. "五月初五 芒种".
type LunarRenderer struct{}

func NewLunarRenderer() *LunarRenderer {
	return &LunarRenderer{}
}

func (l *LunarRenderer) GetType() string {
	return "lunar"
}

func (l *LunarRenderer) Render(dc *gg.Context, item *ItemConfig, frame *Frame) error {
	if !frame.Params.ShowLunar {
		return nil
	}
	base := item.FontSize
	if base == 0 {
		base = 16
	}
	return drawText(dc, LunarText(frame.Now), item, 0, 0.5, fontCJK, frame.FontSize(base), frame.TextColor, frame.Fonts)
}

func LunarText(t time.Time) string {
	lunar := calendar.NewLunarFromDate(t)
	text := lunar.GetMonthInChinese() + "月" + lunar.GetDayInChinese()
	if jq := lunar.GetJieQi(); jq != "" {
		text += " " + jq
	}
	return text
}

type PlaceRenderer struct{}

func NewPlaceRenderer() *PlaceRenderer {
	return &PlaceRenderer{}
}

func (p *PlaceRenderer) GetType() string {
	return "place"
}

func (p *PlaceRenderer) Render(dc *gg.Context, item *ItemConfig, frame *Frame) error {
	base := item.FontSize
	if base == 0 {
		base = 16
	}
	parts := []string{frame.Location.Place(frame.Params.CurrentLabel, false)}
	if w := frame.Location.Weather; w != nil {
		parts = append(parts, formatTemp(w.Current))
	}
	text := strings.TrimSpace(strings.Join(parts, " "))
	return drawText(dc, text, item, 1, 0.5, FontNormal, frame.FontSize(base), frame.TextColor, frame.Fonts)
}

func formatTemp(c float64) string {
	return fmt.Sprintf("%.0f°", c)
}
