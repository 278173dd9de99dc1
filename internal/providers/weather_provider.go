package providers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"
)

type Forecaster interface {
	GetForecast(ctx context.Context, coords Coordinates) (WeatherReport, error)
}

type metForecaster struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewForecaster(conf ClientConfig) Forecaster {
	return &metForecaster{
		baseURL:   conf.BaseURL,
		userAgent: conf.UserAgent,
		client:    newHTTPClient(conf.Timeout),
	}
}

// GetForecast fetches the compact forecast for coords and flattens its first
// time-series entry. Every failure is returned as a *LookupError.
func (f *metForecaster) GetForecast(ctx context.Context, coords Coordinates) (WeatherReport, error) {
	params := url.Values{}
	// api.met.no asks for at most four decimals
	params.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', 4, 64))
	params.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', 4, 64))

	resp, err := get(ctx, f.client, f.baseURL, params, f.userAgent)
	if err != nil {
		log.Warn().Err(err).Float64("lat", coords.Latitude).Float64("lon", coords.Longitude).Msg("forecast request failed")
		return WeatherReport{}, forecastTransportError(err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		log.Warn().Int("status", resp.StatusCode).Msg("weather API returned error status")
		return WeatherReport{}, forecastStatusError(resp.StatusCode)
	}

	var apiResp ForecastResponse
	if err := decodeJSON(resp.Body, &apiResp); err != nil {
		log.Warn().Err(err).Msg("weather API returned malformed JSON")
		return WeatherReport{}, newLookupError(KindMalformed, MsgForecastMalformed, err)
	}

	if apiResp.Properties == nil || len(apiResp.Properties.Timeseries) == 0 {
		return WeatherReport{}, newLookupError(KindNotAvailable, MsgWeatherNotAvailable, nil)
	}

	return reportFromEntry(apiResp.Properties.Timeseries[0], coords), nil
}

func reportFromEntry(entry TimeseriesEntry, coords Coordinates) WeatherReport {
	report := WeatherReport{
		Temperature: entry.Data.Instant.Details.AirTemperature,
		Summary:     entry.SymbolCode(),
		Coordinates: coords,
	}
	if entry.Time != nil {
		report.Time = *entry.Time
	}
	return report
}
