package types

import "testing"

func TestNewWeather(t *testing.T) {
	tests := []struct {
		name            string
		code            WeatherCode
		wantDescription string
		wantIcon        string
	}{
		{
			name:            "clear sky",
			code:            ClearSky,
			wantDescription: "Ясно",
			wantIcon:        "clear",
		},
		{
			name:            "partly cloudy",
			code:            PartlyCloudy,
			wantDescription: "Переменная облачность",
			wantIcon:        "partly-cloudy",
		},
		{
			name:            "moderate rain",
			code:            RainModerate,
			wantDescription: "Дождь",
			wantIcon:        "rain",
		},
		{
			name:            "freezing drizzle",
			code:            FreezingDrizzleLight,
			wantDescription: "Ледяная морось",
			wantIcon:        "freezing-drizzle",
		},
		{
			name:            "heavy thunderstorm with hail",
			code:            ThunderstormWithHeavyHail,
			wantDescription: "Сильная гроза с градом",
			wantIcon:        "thunderstorm-hail-heavy",
		},
		{
			name:            "unknown code falls back",
			code:            WeatherCode(42),
			wantDescription: "Неизвестно",
			wantIcon:        "clear",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewWeather(tt.code)
			if got.Code != tt.code {
				t.Errorf("Code = %d, want %d", got.Code, tt.code)
			}
			if got.Description != tt.wantDescription {
				t.Errorf("Description = %q, want %q", got.Description, tt.wantDescription)
			}
			if got.Icon != tt.wantIcon {
				t.Errorf("Icon = %q, want %q", got.Icon, tt.wantIcon)
			}
		})
	}
}
