package weather

import (
	"math"
	"strings"
	"time"
)

var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// ForecastPayload is the OpenWeather 5 day / 3 hour forecast document.
type ForecastPayload struct {
	City ForecastCity       `json:"city"`
	List []ForecastInterval `json:"list"`
}

// ForecastCity carries the resolved city name and its sun times (unix seconds).
type ForecastCity struct {
	Name    string `json:"name"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// ForecastInterval is one 3-hour forecast record.
type ForecastInterval struct {
	DtTxt   string              `json:"dt_txt"` // "2006-01-02 15:04:05"
	Main    IntervalMain        `json:"main"`
	Weather []IntervalCondition `json:"weather"`
	Wind    IntervalWind        `json:"wind"`
	Pop     float64             `json:"pop"` // probability of precipitation, 0..1
}

type IntervalMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  float64 `json:"humidity"`
	Pressure  float64 `json:"pressure"`
}

type IntervalCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type IntervalWind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

// Validate rejects records whose timestamp has no date part, since daily
// grouping depends on it.
func (p ForecastPayload) Validate() error {
	for i, rec := range p.List {
		if intervalDate(rec.DtTxt) == "" {
			return Validationf("forecast record %d has no timestamp", i)
		}
	}
	return nil
}

func (rec ForecastInterval) condition() IntervalCondition {
	if len(rec.Weather) == 0 {
		return IntervalCondition{}
	}
	return rec.Weather[0]
}

// WindDirection maps degrees to one of eight compass labels.
func WindDirection(deg float64) string {
	i := int(math.Round(deg/45)) % 8
	if i < 0 {
		i += 8
	}
	return compassPoints[i]
}

// percent converts a 0..1 probability to a rounded percentage.
func percent(p float64) int {
	return int(math.Round(p * 100))
}

func intervalDate(dtTxt string) string {
	date, _, _ := strings.Cut(strings.TrimSpace(dtTxt), " ")
	date, _, _ = strings.Cut(date, "T")
	return date
}

func unixToISO(sec int64) string {
	if sec == 0 {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

// TransformForecast maps an OpenWeather forecast to a WeatherSnapshot.
// current is the first record, hourly is every record, and daily groups
// records by calendar date in order of first appearance.
func TransformForecast(p ForecastPayload) WeatherSnapshot {
	snap := WeatherSnapshot{
		City: p.City.Name,
		Current: CurrentWeather{
			Sunrise: unixToISO(p.City.Sunrise),
			Sunset:  unixToISO(p.City.Sunset),
		},
		Hourly: make([]HourlyWeather, 0, len(p.List)),
		Daily:  []DailyWeather{},
	}
	if len(p.List) == 0 {
		return snap
	}

	first := p.List[0]
	cond := first.condition()
	snap.Current.Temperature = first.Main.Temp
	snap.Current.FeelsLike = first.Main.FeelsLike
	snap.Current.Condition = cond.Description
	snap.Current.Icon = cond.Icon
	snap.Current.Humidity = first.Main.Humidity
	snap.Current.WindSpeed = first.Wind.Speed
	snap.Current.WindDirection = WindDirection(first.Wind.Deg)
	snap.Current.Pressure = first.Main.Pressure

	var (
		dates  []string
		groups = make(map[string][]ForecastInterval)
	)
	for _, rec := range p.List {
		c := rec.condition()
		snap.Hourly = append(snap.Hourly, HourlyWeather{
			Time:                rec.DtTxt,
			Temperature:         rec.Main.Temp,
			FeelsLike:           rec.Main.FeelsLike,
			Condition:           c.Description,
			Icon:                c.Icon,
			PrecipitationChance: percent(rec.Pop),
			WindSpeed:           rec.Wind.Speed,
		})

		d := intervalDate(rec.DtTxt)
		if _, ok := groups[d]; !ok {
			dates = append(dates, d)
		}
		groups[d] = append(groups[d], rec)
	}

	for _, d := range dates {
		snap.Daily = append(snap.Daily, summarizeDay(d, groups[d]))
	}
	return snap
}

// summarizeDay reduces one date's records. The representative record for
// condition, icon and wind is at index len/2, the later middle for even sizes.
func summarizeDay(date string, recs []ForecastInterval) DailyWeather {
	minTemp, maxTemp := recs[0].Main.Temp, recs[0].Main.Temp
	var popSum float64
	for _, r := range recs {
		minTemp = math.Min(minTemp, r.Main.Temp)
		maxTemp = math.Max(maxTemp, r.Main.Temp)
		popSum += r.Pop
	}

	mid := recs[len(recs)/2]
	c := mid.condition()
	return DailyWeather{
		Date:                date,
		MinTemp:             minTemp,
		MaxTemp:             maxTemp,
		Condition:           c.Description,
		Icon:                c.Icon,
		PrecipitationChance: percent(popSum / float64(len(recs))),
		WindSpeed:           mid.Wind.Speed,
	}
}

// GeoapifyResponse is the Geoapify geocoding search document.
type GeoapifyResponse struct {
	Results []GeoapifyPlace `json:"results"`
}

type GeoapifyPlace struct {
	City          string   `json:"city"`
	County        string   `json:"county"`
	AddressLine1  string   `json:"address_line1"`
	State         string   `json:"state"`
	StateDistrict string   `json:"state_district"`
	Country       string   `json:"country"`
	Lat           *float64 `json:"lat"`
	Lon           *float64 `json:"lon"`
	Formatted     string   `json:"formatted"`
}

// TransformGeoapify keeps places that have a usable name and at least one
// coordinate.
func TransformGeoapify(resp GeoapifyResponse) []CitySearchResult {
	out := make([]CitySearchResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		name := firstNonEmpty(r.City, r.County, r.AddressLine1)
		if name == "" {
			continue
		}
		if r.Lat == nil && r.Lon == nil {
			continue
		}
		out = append(out, CitySearchResult{
			Name:        name,
			State:       firstNonEmpty(r.State, r.StateDistrict),
			Country:     r.Country,
			Latitude:    r.Lat,
			Longitude:   r.Lon,
			DisplayName: r.Formatted,
		})
	}
	return out
}

// BBCLocatorResponse is the BBC locations service document.
type BBCLocatorResponse struct {
	Response struct {
		Results struct {
			Results []BBCPlace `json:"results"`
		} `json:"results"`
	} `json:"response"`
}

type BBCPlace struct {
	Name      string `json:"name"`
	Container string `json:"container"`
}

// TransformBBC keeps named places. The locator does not return coordinates.
func TransformBBC(resp BBCLocatorResponse) []CitySearchResult {
	places := resp.Response.Results.Results
	out := make([]CitySearchResult, 0, len(places))
	for _, r := range places {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		display := name
		if r.Container != "" {
			display = name + ", " + r.Container
		}
		out = append(out, CitySearchResult{
			Name:        name,
			Country:     r.Container,
			DisplayName: display,
		})
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
