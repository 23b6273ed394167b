package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/i474232898/weather-lookup/internal/logging"
	"github.com/i474232898/weather-lookup/internal/store"
	"github.com/i474232898/weather-lookup/internal/weather"
	"github.com/i474232898/weather-lookup/internal/weather/mocks"
)

func forecastFor(city string) weather.WeatherSnapshot {
	return weather.WeatherSnapshot{City: city, Current: weather.CurrentWeather{Temperature: 15, Condition: "mist"}}
}

func TestRunForecast_UnknownSessionIsEmpty(t *testing.T) {
	color.NoColor = true
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockForecastProvider(ctrl)
	prefs := mocks.NewMockPreferenceStore(ctrl)
	prefs.EXPECT().GetUserPreferences(gomock.Any(), "ghost").Return(nil, nil).AnyTimes()

	svc := weather.NewForecastService(provider, store.NewMemoryCache(), prefs, weather.ForecastOptions{}, logging.Discard())

	var buf bytes.Buffer
	err := runForecast(context.Background(), &buf, svc, forecastRequest{SessionID: "ghost", Refresh: true}, logging.Discard())

	require.NoError(t, err)
	assert.Equal(t, "no saved cities for session \"ghost\"\n", buf.String())
}

func TestRunForecast_ArgsAndSession(t *testing.T) {
	color.NoColor = true
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockForecastProvider(ctrl)
	provider.EXPECT().FetchForecast(gomock.Any(), "oslo").Return(forecastFor("Oslo"), nil)
	provider.EXPECT().FetchForecast(gomock.Any(), "lima").Return(forecastFor("Lima"), nil)
	prefs := mocks.NewMockPreferenceStore(ctrl)
	prefs.EXPECT().GetUserPreferences(gomock.Any(), "s1").
		Return(&weather.Preferences{SessionID: "s1", Cities: []string{"lima"}}, nil)

	svc := weather.NewForecastService(provider, store.NewMemoryCache(), prefs, weather.ForecastOptions{}, logging.Discard())

	var buf bytes.Buffer
	err := runForecast(context.Background(), &buf, svc, forecastRequest{Cities: []string{"Oslo"}, SessionID: "s1"}, logging.Discard())

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Oslo")
	assert.Contains(t, out, "Lima")
	assert.NotContains(t, out, "no saved cities")
}

func TestRunForecast_RefreshRefetches(t *testing.T) {
	color.NoColor = true
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockForecastProvider(ctrl)
	provider.EXPECT().FetchForecast(gomock.Any(), "rome").Return(forecastFor("Rome"), nil).Times(2)

	svc := weather.NewForecastService(provider, store.NewMemoryCache(), nil, weather.ForecastOptions{}, logging.Discard())
	req := forecastRequest{Cities: []string{"rome"}}

	var buf bytes.Buffer
	require.NoError(t, runForecast(context.Background(), &buf, svc, req, logging.Discard()))
	require.NoError(t, runForecast(context.Background(), &buf, svc, req, logging.Discard()))
	req.Refresh = true
	require.NoError(t, runForecast(context.Background(), &buf, svc, req, logging.Discard()))
}
