package weather

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/i474232898/weather-lookup/internal/common"
)

//go:embed gazetteer.json
var gazetteerData []byte

// Gazetteer is a static list of well-known places used when the live city
// search provider is unavailable.
type Gazetteer struct {
	places []CitySearchResult
}

// NewGazetteer returns a gazetteer over places.
func NewGazetteer(places []CitySearchResult) *Gazetteer {
	return &Gazetteer{places: places}
}

// DefaultGazetteer loads the embedded place list.
func DefaultGazetteer() (*Gazetteer, error) {
	var places []CitySearchResult
	if err := json.Unmarshal(gazetteerData, &places); err != nil {
		return nil, fmt.Errorf("decode embedded gazetteer: %w", err)
	}
	return NewGazetteer(places), nil
}

// Search returns places whose name, state or country contains query,
// ignoring case. The result is never nil.
func (g *Gazetteer) Search(query string) []CitySearchResult {
	out := []CitySearchResult{}
	if g == nil {
		return out
	}
	for _, p := range g.places {
		if common.AnyContainsFold(query, p.Name, p.State, p.Country) {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of places.
func (g *Gazetteer) Len() int {
	if g == nil {
		return 0
	}
	return len(g.places)
}
