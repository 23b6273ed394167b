package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(dt string, temp, pop float64, desc string, windSpeed, windDeg float64) ForecastInterval {
	return ForecastInterval{
		DtTxt:   dt,
		Main:    IntervalMain{Temp: temp, FeelsLike: temp - 1, Humidity: 60, Pressure: 1012},
		Weather: []IntervalCondition{{Description: desc, Icon: desc + "-icon"}},
		Wind:    IntervalWind{Speed: windSpeed, Deg: windDeg},
		Pop:     pop,
	}
}

func TestWindDirection(t *testing.T) {
	cases := map[float64]string{
		0: "N", 22: "N", 23: "NE", 45: "NE", 90: "E", 135: "SE",
		180: "S", 225: "SW", 270: "W", 315: "NW", 337: "NW", 338: "N", 360: "N",
	}
	for deg, want := range cases {
		assert.Equal(t, want, WindDirection(deg), "deg %v", deg)
	}
	assert.Equal(t, "NW", WindDirection(-45))
}

func TestTransformForecast_Current(t *testing.T) {
	p := ForecastPayload{
		City: ForecastCity{Name: "London", Sunrise: 1755925200, Sunset: 1755975600},
		List: []ForecastInterval{
			interval("2025-08-23 12:00:00", 21.5, 0.2, "light rain", 4.1, 200),
			interval("2025-08-23 15:00:00", 23, 0, "clear sky", 3, 90),
		},
	}

	snap := TransformForecast(p)

	assert.Equal(t, "London", snap.City)
	assert.Equal(t, 21.5, snap.Current.Temperature)
	assert.Equal(t, 20.5, snap.Current.FeelsLike)
	assert.Equal(t, "light rain", snap.Current.Condition)
	assert.Equal(t, "light rain-icon", snap.Current.Icon)
	assert.Equal(t, 4.1, snap.Current.WindSpeed)
	assert.Equal(t, "S", snap.Current.WindDirection)
	assert.Equal(t, 1012.0, snap.Current.Pressure)
	assert.Equal(t, 60.0, snap.Current.Humidity)
	assert.Equal(t, "2025-08-23T05:00:00Z", snap.Current.Sunrise)
	assert.Equal(t, "2025-08-23T19:00:00Z", snap.Current.Sunset)
	assert.Nil(t, snap.Current.UVIndex)
}

func TestTransformForecast_Hourly(t *testing.T) {
	p := ForecastPayload{List: []ForecastInterval{
		interval("2025-08-23 12:00:00", 20, 0.236, "rain", 4, 0),
		interval("2025-08-23 15:00:00", 22, 0, "clouds", 5, 0),
	}}

	snap := TransformForecast(p)

	require.Len(t, snap.Hourly, 2)
	assert.Equal(t, HourlyWeather{
		Time: "2025-08-23 12:00:00", Temperature: 20, FeelsLike: 19,
		Condition: "rain", Icon: "rain-icon", PrecipitationChance: 24, WindSpeed: 4,
	}, snap.Hourly[0])
	assert.Equal(t, 0, snap.Hourly[1].PrecipitationChance)
}

func TestTransformForecast_DailyExtremaAndMiddleRecord(t *testing.T) {
	p := ForecastPayload{List: []ForecastInterval{
		interval("2025-08-23 09:00:00", 20, 0.1, "mist", 1, 0),
		interval("2025-08-23 12:00:00", 22, 0.2, "clouds", 2, 0),
		interval("2025-08-23 15:00:00", 25, 0.6, "sun", 3, 0),
	}}

	snap := TransformForecast(p)

	require.Len(t, snap.Daily, 1)
	day := snap.Daily[0]
	assert.Equal(t, "2025-08-23", day.Date)
	assert.Equal(t, 20.0, day.MinTemp)
	assert.Equal(t, 25.0, day.MaxTemp)
	assert.Equal(t, "clouds", day.Condition, "index floor(3/2)=1")
	assert.Equal(t, "clouds-icon", day.Icon)
	assert.Equal(t, 2.0, day.WindSpeed)
	assert.Equal(t, 30, day.PrecipitationChance)
}

func TestTransformForecast_DailyGroupsByDateInOrder(t *testing.T) {
	p := ForecastPayload{List: []ForecastInterval{
		interval("2025-08-23 18:00:00", 18, 0, "a", 1, 0),
		interval("2025-08-23 21:00:00", 16, 0, "b", 1, 0),
		interval("2025-08-24 00:00:00", 14, 1, "c", 1, 0),
		interval("2025-08-24 03:00:00", 13, 1, "d", 1, 0),
		interval("2025-08-24 06:00:00", 15, 0, "e", 1, 0),
		interval("2025-08-24 09:00:00", 19, 0, "f", 7, 0),
	}}

	snap := TransformForecast(p)

	require.Len(t, snap.Daily, 2)
	assert.Equal(t, "2025-08-23", snap.Daily[0].Date)
	assert.Equal(t, "b", snap.Daily[0].Condition, "even group picks the later middle")
	assert.Equal(t, "2025-08-24", snap.Daily[1].Date)
	assert.Equal(t, "e", snap.Daily[1].Condition, "index floor(4/2)=2")
	assert.Equal(t, 13.0, snap.Daily[1].MinTemp)
	assert.Equal(t, 19.0, snap.Daily[1].MaxTemp)
	assert.Equal(t, 50, snap.Daily[1].PrecipitationChance)
}

func TestTransformForecast_EmptyList(t *testing.T) {
	snap := TransformForecast(ForecastPayload{City: ForecastCity{Name: "Nowhere"}})

	assert.Equal(t, "Nowhere", snap.City)
	assert.NotNil(t, snap.Hourly)
	assert.Empty(t, snap.Hourly)
	assert.NotNil(t, snap.Daily)
	assert.Empty(t, snap.Daily)
}

func TestTransformForecast_MissingConditionIsBlank(t *testing.T) {
	rec := interval("2025-08-23 12:00:00", 20, 0, "x", 1, 0)
	rec.Weather = nil

	snap := TransformForecast(ForecastPayload{List: []ForecastInterval{rec}})

	assert.Equal(t, "", snap.Current.Condition)
	assert.Equal(t, "", snap.Daily[0].Icon)
}

func TestForecastPayload_Validate(t *testing.T) {
	ok := ForecastPayload{List: []ForecastInterval{interval("2025-08-23 12:00:00", 1, 0, "x", 0, 0)}}
	assert.NoError(t, ok.Validate())

	iso := ForecastPayload{List: []ForecastInterval{interval("2025-08-23T12:00:00Z", 1, 0, "x", 0, 0)}}
	assert.NoError(t, iso.Validate())
	assert.Equal(t, "2025-08-23", TransformForecast(iso).Daily[0].Date)

	bad := ForecastPayload{List: []ForecastInterval{interval("", 1, 0, "x", 0, 0)}}
	assert.Equal(t, KindValidation, KindOf(bad.Validate()))
}

func ptr(f float64) *float64 { return &f }

func TestTransformGeoapify(t *testing.T) {
	resp := GeoapifyResponse{Results: []GeoapifyPlace{
		{City: "London", State: "England", Country: "United Kingdom", Lat: ptr(51.5), Lon: ptr(-0.12), Formatted: "London, ENG, United Kingdom"},
		{County: "Greater London", StateDistrict: "Inner London", Country: "United Kingdom", Lat: ptr(51.4), Lon: ptr(-0.1), Formatted: "Greater London"},
		{AddressLine1: "London Road", Country: "United Kingdom", Lat: ptr(52), Formatted: "London Road"},
		{Country: "United Kingdom", Lat: ptr(50), Lon: ptr(0), Formatted: "no name"},
		{City: "Londonderry", Country: "United Kingdom", Formatted: "no coordinates"},
	}}

	got := TransformGeoapify(resp)

	require.Len(t, got, 3)
	assert.Equal(t, CitySearchResult{
		Name: "London", State: "England", Country: "United Kingdom",
		Latitude: ptr(51.5), Longitude: ptr(-0.12), DisplayName: "London, ENG, United Kingdom",
	}, got[0])
	assert.Equal(t, "Greater London", got[1].Name)
	assert.Equal(t, "Inner London", got[1].State)
	assert.Equal(t, "London Road", got[2].Name)
	assert.Nil(t, got[2].Longitude)
}

func TestTransformBBC(t *testing.T) {
	var resp BBCLocatorResponse
	resp.Response.Results.Results = []BBCPlace{
		{Name: "London", Container: "Greater London"},
		{Name: "", Container: "Nowhere"},
		{Name: "London", Container: ""},
	}

	got := TransformBBC(resp)

	require.Len(t, got, 2)
	assert.Equal(t, CitySearchResult{Name: "London", Country: "Greater London", DisplayName: "London, Greater London"}, got[0])
	assert.Equal(t, "London", got[1].DisplayName)
	assert.Nil(t, got[0].Latitude)
}
