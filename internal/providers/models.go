package providers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// WeatherReport is the flattened first time-series entry of a forecast.
// Temperature is nil and Summary/Time are empty when the upstream omitted them.
type WeatherReport struct {
	Temperature *float64    `json:"temperature"`
	Summary     string      `json:"summary,omitempty"`
	Time        string      `json:"time,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
}

type GeocodeResult struct {
	Lat         coordinateField `json:"lat"`
	Lon         coordinateField `json:"lon"`
	DisplayName string          `json:"display_name"`
}

// coordinateField keeps the raw text of a lat/lon value. Nominatim sends
// strings, other geocoders send numbers; both are accepted.
type coordinateField struct {
	raw   string
	valid bool
}

func (c *coordinateField) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.raw, c.valid = s, s != ""
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// objects, arrays and booleans are present but never numeric
		c.raw, c.valid = string(data), true
		return nil
	}
	c.raw, c.valid = n.String(), true
	return nil
}

func (c coordinateField) Present() bool {
	return c.valid
}

func (c coordinateField) Float() (float64, error) {
	v, err := strconv.ParseFloat(c.raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("coordinate %q is not a finite number", c.raw)
	}
	return v, nil
}

type ForecastResponse struct {
	Properties *struct {
		Timeseries []TimeseriesEntry `json:"timeseries"`
	} `json:"properties"`
}

type TimeseriesEntry struct {
	Time *string `json:"time"`
	Data struct {
		Instant struct {
			Details struct {
				AirTemperature *float64 `json:"air_temperature"`
			} `json:"details"`
		} `json:"instant"`
		Next1Hours  *periodForecast `json:"next_1_hours"`
		Next6Hours  *periodForecast `json:"next_6_hours"`
		Next12Hours *periodForecast `json:"next_12_hours"`
	} `json:"data"`
}

type periodForecast struct {
	Summary *struct {
		SymbolCode string `json:"symbol_code"`
	} `json:"summary"`
}

func (p *periodForecast) symbolCode() string {
	if p == nil || p.Summary == nil {
		return ""
	}
	return p.Summary.SymbolCode
}

// SymbolCode returns the summary of the shortest forecast window that has one.
func (e TimeseriesEntry) SymbolCode() string {
	for _, window := range []*periodForecast{e.Data.Next1Hours, e.Data.Next6Hours, e.Data.Next12Hours} {
		if code := window.symbolCode(); code != "" {
			return code
		}
	}
	return ""
}
