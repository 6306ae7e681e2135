package types

// Category is the coarse visual/semantic bucket a weather code falls into.
type Category string

const (
	CategorySunny  Category = "sunny"
	CategoryCloudy Category = "cloudy"
	CategoryFoggy  Category = "foggy"
	CategoryRainy  Category = "rainy"
	CategorySnowy  Category = "snowy"
	CategoryStormy Category = "stormy"
	CategoryNight  Category = "night"
)

// weatherCategories maps weather codes to their base category. Freezing
// drizzle and freezing rain (56/57, 66/67) are bucketed as snowy: their
// visuals and advisories follow ice, not liquid rain.
var weatherCategories = map[WeatherCode]Category{
	ClearSky:                     CategorySunny,
	MainlyClear:                  CategorySunny,
	PartlyCloudy:                 CategoryCloudy,
	Overcast:                     CategoryCloudy,
	Fog:                          CategoryFoggy,
	DepositingRimeFog:            CategoryFoggy,
	DrizzleLight:                 CategoryRainy,
	DrizzleModerate:              CategoryRainy,
	DrizzleDense:                 CategoryRainy,
	FreezingDrizzleLight:         CategorySnowy,
	FreezingDrizzleDense:         CategorySnowy,
	RainSlight:                   CategoryRainy,
	RainModerate:                 CategoryRainy,
	RainHeavy:                    CategoryRainy,
	FreezingRainLight:            CategorySnowy,
	FreezingRainHeavy:            CategorySnowy,
	SnowFallSlight:               CategorySnowy,
	SnowFallModerate:             CategorySnowy,
	SnowFallHeavy:                CategorySnowy,
	SnowGrains:                   CategorySnowy,
	RainShowersSlight:            CategoryRainy,
	RainShowersModerate:          CategoryRainy,
	RainShowersViolent:           CategoryRainy,
	SnowShowersSlight:            CategorySnowy,
	SnowShowersHeavy:             CategorySnowy,
	ThunderstormSlightOrModerate: CategoryStormy,
	ThunderstormWithSlightHail:   CategoryStormy,
	ThunderstormWithHeavyHail:    CategoryStormy,
}

// Classify returns the category for a weather code and day/night flag.
// Unknown codes default to sunny by day and night after dark. At night the
// benign categories (sunny, cloudy) collapse to night; precipitation and
// storm categories are weather-driven and keep their own bucket.
func Classify(code WeatherCode, isDay bool) Category {
	base, ok := weatherCategories[code]
	if !ok {
		if isDay {
			return CategorySunny
		}
		return CategoryNight
	}

	if !isDay && (base == CategorySunny || base == CategoryCloudy) {
		return CategoryNight
	}

	return base
}
