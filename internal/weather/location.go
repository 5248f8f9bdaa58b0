// Package weather holds the location and forecast model the preview is
// drawn from. Fetching weather is someone else's job.
package weather

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

type Daily struct {
	Date    string      `json:"date"` // yyyy-MM-dd
	Code    WeatherCode `json:"code"`
	Text    string      `json:"text,omitempty"`
	TempMax float64     `json:"temp_max"`
	TempMin float64     `json:"temp_min"`
	Sunrise string      `json:"sunrise,omitempty"` // HH:mm, location time
	Sunset  string      `json:"sunset,omitempty"`
}

type Weather struct {
	Current     float64     `json:"current"`
	CurrentCode WeatherCode `json:"current_code"`
	Daily       []Daily     `json:"daily"`
}

type Location struct {
	ID                string   `json:"id"`
	City              string   `json:"city"`
	District          string   `json:"district,omitempty"`
	TimeZone          string   `json:"timezone"`
	IsCurrentPosition bool     `json:"current_position,omitempty"`
	Weather           *Weather `json:"weather,omitempty"`
}

func (l *Location) Zone() *time.Location {
	if l.TimeZone != "" {
		if z, err := time.LoadLocation(l.TimeZone); err == nil {
			return z
		}
	}
	return time.Local
}

func (l *Location) CityAndDistrict() string {
	switch {
	case l.City == "":
		return l.District
	case l.District == "" || l.District == l.City:
		return l.City
	default:
		return l.City + ", " + l.District
	}
}

// Place prefers currentLabel for the device's own position when asked to,
// and falls back to it when no name is known.
func (l *Location) Place(currentLabel string, currentFirst bool) string {
	if currentFirst && l.IsCurrentPosition {
		return currentLabel
	}
	name := l.CityAndDistrict()
	if name == "" && l.IsCurrentPosition {
		return currentLabel
	}
	return name
}

// Day returns the forecast entry for the calendar day of t in the
// location's zone.
func (l *Location) Day(t time.Time) (Daily, bool) {
	if l.Weather == nil {
		return Daily{}, false
	}
	key := t.In(l.Zone()).Format("2006-01-02")
	for _, d := range l.Weather.Daily {
		if d.Date == key {
			return d, true
		}
	}
	return Daily{}, false
}

// Week returns up to n entries starting at the day of t.
func (l *Location) Week(t time.Time, n int) []Daily {
	if l.Weather == nil {
		return nil
	}
	key := t.In(l.Zone()).Format("2006-01-02")
	out := make([]Daily, 0, n)
	for _, d := range l.Weather.Daily {
		if d.Date < key {
			continue
		}
		out = append(out, d)
		if len(out) == n {
			break
		}
	}
	return out
}

// IsDaylight compares t against today's and yesterday's sun times; missing
// times count as night.
func (l *Location) IsDaylight(t time.Time) bool {
	zone := l.Zone()
	local := t.In(zone)
	for _, day := range []time.Time{local, local.AddDate(0, 0, -1)} {
		d, ok := l.Day(day)
		if !ok {
			continue
		}
		rise, errRise := sunTime(d.Date, d.Sunrise, zone)
		set, errSet := sunTime(d.Date, d.Sunset, zone)
		if errRise != nil || errSet != nil {
			continue
		}
		if !local.Before(rise) && local.Before(set) {
			return true
		}
	}
	return false
}

func sunTime(date, hm string, zone *time.Location) (time.Time, error) {
	if hm == "" {
		return time.Time{}, fmt.Errorf("no time")
	}
	return time.ParseInLocation("2006-01-02 15:04", date+" "+hm, zone)
}

func LoadLocations(path string) ([]*Location, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locations: %w", err)
	}
	var locations []*Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("failed to parse locations: %w", err)
	}
	for _, l := range locations {
		if l.Weather == nil {
			continue
		}
		for i, d := range l.Weather.Daily {
			if code, ok := ParseWeatherCode(string(d.Code)); ok {
				l.Weather.Daily[i].Code = code
			}
		}
	}
	return locations, nil
}

func Find(locations []*Location, id string) (*Location, bool) {
	for _, l := range locations {
		if strings.EqualFold(l.ID, id) {
			return l, true
		}
	}
	return nil, false
}

// DefaultLocation is a fixed sample used when nothing is configured, so a
// preview can always be drawn.
func DefaultLocation(now time.Time) *Location {
	loc := &Location{
		ID:                "sample",
		City:              "Beijing",
		District:          "Haidian",
		TimeZone:          "Asia/Shanghai",
		IsCurrentPosition: true,
	}
	codes := []WeatherCode{Clear, PartlyCloudy, Cloudy, LightRain, Clear, Snow, Thunderstorm}
	day := now.In(loc.Zone())
	w := &Weather{Current: 21, CurrentCode: Clear}
	for i, c := range codes {
		d := day.AddDate(0, 0, i)
		w.Daily = append(w.Daily, Daily{
			Date:    d.Format("2006-01-02"),
			Code:    c,
			TempMax: float64(24 - i),
			TempMin: float64(14 - i),
			Sunrise: "06:10",
			Sunset:  "18:40",
		})
	}
	loc.Weather = w
	return loc
}
