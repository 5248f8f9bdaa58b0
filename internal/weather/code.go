package weather

import "strings"

type WeatherCode string

const (
	Clear        WeatherCode = "clear"
	PartlyCloudy WeatherCode = "partly_cloudy"
	Cloudy       WeatherCode = "cloudy"
	Rain         WeatherCode = "rain"
	ShoweryRain  WeatherCode = "showery_rain"
	LightRain    WeatherCode = "light_rain"
	ModerateRain WeatherCode = "moderate_rain"
	HeavyRain    WeatherCode = "heavy_rain"
	Rainstorm    WeatherCode = "rainstorm"
	Snow         WeatherCode = "snow"
	ShowerySnow  WeatherCode = "showery_snow"
	LightSnow    WeatherCode = "light_snow"
	ModerateSnow WeatherCode = "moderate_snow"
	HeavySnow    WeatherCode = "heavy_snow"
	Snowstorm    WeatherCode = "snowstorm"
	Wind         WeatherCode = "wind"
	Fog          WeatherCode = "fog"
	Haze         WeatherCode = "haze"
	Sleet        WeatherCode = "sleet"
	Hail         WeatherCode = "hail"
	Thunder      WeatherCode = "thunder"
	Thunderstorm WeatherCode = "thunderstorm"
)

var allCodes = []WeatherCode{
	Clear, PartlyCloudy, Cloudy, Rain, ShoweryRain, LightRain, ModerateRain,
	HeavyRain, Rainstorm, Snow, ShowerySnow, LightSnow, ModerateSnow,
	HeavySnow, Snowstorm, Wind, Fog, Haze, Sleet, Hail, Thunder, Thunderstorm,
}

// ParseWeatherCode matches case-insensitively.
func ParseWeatherCode(s string) (WeatherCode, bool) {
	for _, c := range allCodes {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

type Category int

const (
	CategoryUnknown Category = iota
	CategorySun
	CategoryPartlySun
	CategoryCloud
	CategoryRain
	CategorySnow
	CategoryThunder
)

// Category groups codes by the icon drawn for them.
func (c WeatherCode) Category() Category {
	switch c {
	case Clear:
		return CategorySun
	case PartlyCloudy:
		return CategoryPartlySun
	case Cloudy, Fog, Haze, Wind:
		return CategoryCloud
	case Snow, ShowerySnow, LightSnow, ModerateSnow, HeavySnow, Snowstorm, Sleet, Hail:
		return CategorySnow
	case Thunder, Thunderstorm:
		return CategoryThunder
	case Rain, ShoweryRain, LightRain, ModerateRain, HeavyRain, Rainstorm:
		return CategoryRain
	default:
		return CategoryUnknown
	}
}
