package main

import (
	"fmt"
	"io"
	"math"

	"loppa/internal/settings"
	"loppa/internal/types"
)

const hourlyRows = 12

func render(w io.Writer, s *types.WeatherSnapshot, units string) {
	unit := "°C"
	if units == settings.UnitsFahrenheit {
		unit = "°F"
	}

	place := s.Location.Name
	if s.Location.Country != "" {
		place += ", " + s.Location.Country
	}

	category := types.Classify(types.WeatherCode(s.Current.WeatherCode), s.Current.IsDay)
	weather := types.NewWeather(types.WeatherCode(s.Current.WeatherCode))

	fmt.Fprintf(w, "%s\n", place)
	fmt.Fprintf(w, "%d%s (feels like %d%s)  %s [%s]\n",
		convert(s.Current.Temperature, units), unit,
		convert(s.Current.FeelsLike, units), unit,
		weather.Description, category)
	fmt.Fprintf(w, "humidity %d%%  wind %.1f km/h  pressure %d hPa  uv %d  visibility %.0f km\n",
		s.Current.Humidity, s.Current.WindSpeed, s.Current.Pressure,
		s.Current.UVIndex, s.Current.Visibility)

	fmt.Fprintln(w, "\nNext hours:")
	rows := len(s.Hourly)
	if rows > hourlyRows {
		rows = hourlyRows
	}
	for _, h := range s.Hourly[:rows] {
		fmt.Fprintf(w, "  %s  %3d%s  %-28s %3d%%\n",
			h.Time.Format("15:04"),
			convert(h.Temperature, units), unit,
			types.GetWeatherDescription(types.WeatherCode(h.WeatherCode)),
			h.PrecipitationProbability)
	}

	fmt.Fprintln(w, "\nDaily:")
	for _, d := range s.Daily {
		fmt.Fprintf(w, "  %s  %3d/%3d%s  %-28s %.1f mm\n",
			d.Date.Format("Mon 02 Jan"),
			convert(d.TempMax, units), convert(d.TempMin, units), unit,
			types.GetWeatherDescription(types.WeatherCode(d.WeatherCode)),
			d.PrecipitationSum)
	}
}

func convert(celsius int, units string) int {
	if units != settings.UnitsFahrenheit {
		return celsius
	}
	return int(math.Round(float64(celsius)*9/5 + 32))
}
