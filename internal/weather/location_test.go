package weather

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func utcLocation() *Location {
	return &Location{
		ID:       "berlin",
		City:     "Berlin",
		TimeZone: "UTC",
		Weather: &Weather{Daily: []Daily{
			{Date: "2024-06-09", Code: Rain, Sunrise: "04:40", Sunset: "21:25"},
			{Date: "2024-06-10", Code: Clear, Sunrise: "04:45", Sunset: "21:30"},
			{Date: "2024-06-11", Code: Cloudy},
			{Date: "2024-06-12", Code: Snow},
		}},
	}
}

func TestIsDaylight(t *testing.T) {
	loc := utcLocation()
	tests := []struct {
		at   time.Time
		want bool
	}{
		{time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC), true},
		{time.Date(2024, 6, 10, 4, 45, 0, 0, time.UTC), true},
		{time.Date(2024, 6, 10, 21, 30, 0, 0, time.UTC), false},
		{time.Date(2024, 6, 10, 2, 0, 0, 0, time.UTC), false},
		// no sun times for this day
		{time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC), false},
		// no forecast at all
		{time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		if got := loc.IsDaylight(tt.at); got != tt.want {
			t.Errorf("IsDaylight(%s) = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestWeek(t *testing.T) {
	loc := utcLocation()
	week := loc.Week(time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC), 2)
	if len(week) != 2 || week[0].Date != "2024-06-10" || week[1].Date != "2024-06-11" {
		t.Fatalf("unexpected week %+v", week)
	}
	if got := (&Location{}).Week(time.Now(), 5); got != nil {
		t.Fatalf("expected nil week without weather, got %v", got)
	}
}

func TestPlace(t *testing.T) {
	tests := []struct {
		name         string
		loc          Location
		currentFirst bool
		want         string
	}{
		{"city only", Location{City: "Paris"}, false, "Paris"},
		{"city and district", Location{City: "Beijing", District: "Haidian"}, false, "Beijing, Haidian"},
		{"same district", Location{City: "Oslo", District: "Oslo"}, false, "Oslo"},
		{"current first", Location{City: "Rome", IsCurrentPosition: true}, true, "Current location"},
		{"current unnamed", Location{IsCurrentPosition: true}, false, "Current location"},
		{"unnamed", Location{}, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.Place("Current location", tt.currentFirst); got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestLoadLocationsNormalizesCodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.json")
	data := `[{"id":"home","city":"Lyon","timezone":"UTC",
		"weather":{"daily":[{"date":"2024-01-01","code":"PARTLY_CLOUDY","temp_max":5,"temp_min":-1}]}}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	locs, err := LoadLocations(path)
	if err != nil {
		t.Fatalf("LoadLocations: %v", err)
	}
	l, ok := Find(locs, "HOME")
	if !ok {
		t.Fatal("Find did not match case-insensitively")
	}
	if l.Weather.Daily[0].Code != PartlyCloudy {
		t.Fatalf("code = %q", l.Weather.Daily[0].Code)
	}
}

func TestDefaultLocationCoversAWeek(t *testing.T) {
	now := time.Now()
	loc := DefaultLocation(now)
	if got := len(loc.Week(now, 7)); got != 7 {
		t.Fatalf("default location has %d days", got)
	}
	if _, ok := loc.Day(now); !ok {
		t.Fatal("default location has no entry for today")
	}
}

func TestParseWeatherCode(t *testing.T) {
	if c, ok := ParseWeatherCode("Thunderstorm"); !ok || c != Thunderstorm {
		t.Fatalf("got %q %v", c, ok)
	}
	if _, ok := ParseWeatherCode("tornado"); ok {
		t.Fatal("unknown code parsed")
	}
	if Clear.Category() != CategorySun || HeavySnow.Category() != CategorySnow {
		t.Fatal("wrong category")
	}
	if WeatherCode("bogus").Category() != CategoryUnknown {
		t.Fatal("unknown code got a category")
	}
}
