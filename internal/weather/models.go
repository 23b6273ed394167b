package weather

// CurrentWeather is the conditions of the first forecast interval plus the
// city's sun times.
type CurrentWeather struct {
	Temperature   float64  `json:"temperature"`
	FeelsLike     float64  `json:"feelsLike"`
	Condition     string   `json:"condition"`
	Icon          string   `json:"icon"`
	Humidity      float64  `json:"humidity"`
	WindSpeed     float64  `json:"windSpeed"`
	WindDirection string   `json:"windDirection"`
	Pressure      float64  `json:"pressure"`
	Sunrise       string   `json:"sunrise"` // RFC3339, UTC
	Sunset        string   `json:"sunset"`  // RFC3339, UTC
	UVIndex       *float64 `json:"uvIndex,omitempty"`
	AQI           *float64 `json:"aqi,omitempty"`
}

// HourlyWeather is one forecast interval.
type HourlyWeather struct {
	Time                string  `json:"time"`
	Temperature         float64 `json:"temperature"`
	FeelsLike           float64 `json:"feelsLike"`
	Condition           string  `json:"condition"`
	Icon                string  `json:"icon"`
	PrecipitationChance int     `json:"precipitationChance"` // percent
	WindSpeed           float64 `json:"windSpeed"`
}

// DailyWeather summarises all intervals that fall on the same calendar date.
type DailyWeather struct {
	Date                string  `json:"date"` // YYYY-MM-DD
	MinTemp             float64 `json:"minTemp"`
	MaxTemp             float64 `json:"maxTemp"`
	Condition           string  `json:"condition"`
	Icon                string  `json:"icon"`
	PrecipitationChance int     `json:"precipitationChance"` // percent
	WindSpeed           float64 `json:"windSpeed"`
}

// WeatherSnapshot is the canonical forecast document cached under weather:<city>.
type WeatherSnapshot struct {
	City    string          `json:"city"`
	Current CurrentWeather  `json:"current"`
	Hourly  []HourlyWeather `json:"hourly"`
	Daily   []DailyWeather  `json:"daily"`
}

// CitySearchResult is one place returned by a city search.
type CitySearchResult struct {
	Name        string   `json:"name"`
	State       string   `json:"state,omitempty"`
	Country     string   `json:"country"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	DisplayName string   `json:"displayName"`
}

// Preferences are the saved cities of one session, in insertion order.
type Preferences struct {
	SessionID string   `json:"sessionId"`
	Cities    []string `json:"cities"`
}

// CityCurrentWeather is one entry of a session's current-weather map.
// Exactly one of Current and Error is set.
type CityCurrentWeather struct {
	City    string          `json:"city"`
	Current *CurrentWeather `json:"current,omitempty"`
	Error   string          `json:"error,omitempty"`
}
