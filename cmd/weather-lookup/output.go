package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/i474232898/weather-lookup/internal/weather"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	okColor    = color.New(color.FgGreen)
)

// renderForecasts prints one row per batch item; failed items show their
// error in red.
func renderForecasts(w io.Writer, results []weather.BatchResult[weather.WeatherSnapshot]) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"City", "Temp °C", "Feels Like", "Condition", "Humidity %", "Wind", "Status"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	data := make([][]string, 0, len(results))
	for _, r := range results {
		if r.Value == nil {
			data = append(data, []string{r.Key, "-", "-", "-", "-", "-", errorColor.Sprint(r.Error)})
			continue
		}
		cur := r.Value.Current
		data = append(data, []string{
			r.Value.City,
			fmt.Sprintf("%.1f", cur.Temperature),
			fmt.Sprintf("%.1f", cur.FeelsLike),
			cur.Condition,
			fmt.Sprintf("%.0f", cur.Humidity),
			fmt.Sprintf("%.1f m/s %s", cur.WindSpeed, cur.WindDirection),
			okColor.Sprint("ok"),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// renderCities prints search matches.
func renderCities(w io.Writer, results []weather.CitySearchResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "no matching cities")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Name", "State", "Country", "Lat", "Lon"})

	data := make([][]string, 0, len(results))
	for _, r := range results {
		data = append(data, []string{r.Name, r.State, r.Country, coord(r.Latitude), coord(r.Longitude)})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func coord(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.4f", *v)
}
