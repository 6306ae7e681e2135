package types

// WeatherCode is a WMO weather interpretation code as reported by the
// forecast provider.
type WeatherCode int

// Weather code constants
const (
	ClearSky                     WeatherCode = 0
	MainlyClear                  WeatherCode = 1
	PartlyCloudy                 WeatherCode = 2
	Overcast                     WeatherCode = 3
	Fog                          WeatherCode = 45
	DepositingRimeFog            WeatherCode = 48
	DrizzleLight                 WeatherCode = 51
	DrizzleModerate              WeatherCode = 53
	DrizzleDense                 WeatherCode = 55
	FreezingDrizzleLight         WeatherCode = 56
	FreezingDrizzleDense         WeatherCode = 57
	RainSlight                   WeatherCode = 61
	RainModerate                 WeatherCode = 63
	RainHeavy                    WeatherCode = 65
	FreezingRainLight            WeatherCode = 66
	FreezingRainHeavy            WeatherCode = 67
	SnowFallSlight               WeatherCode = 71
	SnowFallModerate             WeatherCode = 73
	SnowFallHeavy                WeatherCode = 75
	SnowGrains                   WeatherCode = 77
	RainShowersSlight            WeatherCode = 80
	RainShowersModerate          WeatherCode = 81
	RainShowersViolent           WeatherCode = 82
	SnowShowersSlight            WeatherCode = 85
	SnowShowersHeavy             WeatherCode = 86
	ThunderstormSlightOrModerate WeatherCode = 95
	ThunderstormWithSlightHail   WeatherCode = 96
	ThunderstormWithHeavyHail    WeatherCode = 99
)

// Weather pairs a weather code with its presentation attributes.
type Weather struct {
	Code        WeatherCode `json:"code"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
}

// weatherDescriptions maps weather codes to their localized descriptions
var weatherDescriptions = map[WeatherCode]string{
	ClearSky:                     "Ясно",
	MainlyClear:                  "Преим. ясно",
	PartlyCloudy:                 "Переменная облачность",
	Overcast:                     "Пасмурно",
	Fog:                          "Туман",
	DepositingRimeFog:            "Изморозь",
	DrizzleLight:                 "Лёгкая морось",
	DrizzleModerate:              "Морось",
	DrizzleDense:                 "Сильная морось",
	FreezingDrizzleLight:         "Ледяная морось",
	FreezingDrizzleDense:         "Сильная ледяная морось",
	RainSlight:                   "Небольшой дождь",
	RainModerate:                 "Дождь",
	RainHeavy:                    "Сильный дождь",
	FreezingRainLight:            "Ледяной дождь",
	FreezingRainHeavy:            "Сильный ледяной дождь",
	SnowFallSlight:               "Небольшой снег",
	SnowFallModerate:             "Снег",
	SnowFallHeavy:                "Сильный снег",
	SnowGrains:                   "Снежные зёрна",
	RainShowersSlight:            "Ливень",
	RainShowersModerate:          "Умеренный ливень",
	RainShowersViolent:           "Сильный ливень",
	SnowShowersSlight:            "Снегопад",
	SnowShowersHeavy:             "Сильный снегопад",
	ThunderstormSlightOrModerate: "Гроза",
	ThunderstormWithSlightHail:   "Гроза с градом",
	ThunderstormWithHeavyHail:    "Сильная гроза с градом",
}

// weatherIcons maps weather codes to their icon names
var weatherIcons = map[WeatherCode]string{
	ClearSky:                     "clear",
	MainlyClear:                  "mostly-clear",
	PartlyCloudy:                 "partly-cloudy",
	Overcast:                     "overcast",
	Fog:                          "fog",
	DepositingRimeFog:            "fog",
	DrizzleLight:                 "drizzle",
	DrizzleModerate:              "drizzle",
	DrizzleDense:                 "drizzle",
	FreezingDrizzleLight:         "freezing-drizzle",
	FreezingDrizzleDense:         "freezing-drizzle",
	RainSlight:                   "rain-light",
	RainModerate:                 "rain",
	RainHeavy:                    "rain-heavy",
	FreezingRainLight:            "freezing-rain",
	FreezingRainHeavy:            "freezing-rain",
	SnowFallSlight:               "snow-light",
	SnowFallModerate:             "snow",
	SnowFallHeavy:                "snow-heavy",
	SnowGrains:                   "snow-grains",
	RainShowersSlight:            "showers-light",
	RainShowersModerate:          "showers",
	RainShowersViolent:           "showers-heavy",
	SnowShowersSlight:            "snow-showers",
	SnowShowersHeavy:             "snow-showers-heavy",
	ThunderstormSlightOrModerate: "thunderstorm",
	ThunderstormWithSlightHail:   "thunderstorm-hail",
	ThunderstormWithHeavyHail:    "thunderstorm-hail-heavy",
}

// GetWeatherDescription returns the localized description for a weather code
func GetWeatherDescription(code WeatherCode) string {
	if desc, ok := weatherDescriptions[code]; ok {
		return desc
	}
	return "Неизвестно"
}

// GetWeatherIcon returns the icon name for a weather code. Unknown codes map
// to the clear-sky icon, matching the classifier's daytime default.
func GetWeatherIcon(code WeatherCode) string {
	if icon, ok := weatherIcons[code]; ok {
		return icon
	}
	return "clear"
}

// NewWeather creates a Weather instance from a weather code
func NewWeather(code WeatherCode) Weather {
	return Weather{
		Code:        code,
		Description: GetWeatherDescription(code),
		Icon:        GetWeatherIcon(code),
	}
}
