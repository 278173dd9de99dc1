package providers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

type Geocoder interface {
	Geocode(ctx context.Context, city string) (Coordinates, error)
}

type nominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewGeocoder(conf ClientConfig) Geocoder {
	return &nominatimGeocoder{
		baseURL:   conf.BaseURL,
		userAgent: conf.UserAgent,
		client:    newHTTPClient(conf.Timeout),
	}
}

// Geocode resolves a free-text city name to the coordinates of the best match.
// Every failure is returned as a *LookupError.
func (g *nominatimGeocoder) Geocode(ctx context.Context, city string) (Coordinates, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("format", "json")
	params.Set("limit", "1")

	resp, err := get(ctx, g.client, g.baseURL, params, g.userAgent)
	if err != nil {
		log.Warn().Err(err).Str("city", city).Msg("geocode request failed")
		return Coordinates{}, geocodeTransportError(err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		log.Warn().Int("status", resp.StatusCode).Str("city", city).Msg("geocode service returned error status")
		return Coordinates{}, geocodeStatusError(resp.StatusCode)
	}

	var results []GeocodeResult
	if err := decodeJSON(resp.Body, &results); err != nil {
		log.Warn().Err(err).Str("city", city).Msg("geocode service returned malformed JSON")
		return Coordinates{}, newLookupError(KindMalformed, MsgGeocodeMalformed, err)
	}

	if len(results) == 0 {
		return Coordinates{}, newLookupError(KindNotFound, MsgNoLocation, nil)
	}

	first := results[0]
	if !first.Lat.Present() || !first.Lon.Present() {
		return Coordinates{}, newLookupError(KindIncomplete, MsgIncompleteCoords, nil)
	}

	lat, err := first.Lat.Float()
	if err != nil {
		return Coordinates{}, newLookupError(KindIncomplete, MsgInvalidCoords, err)
	}
	lon, err := first.Lon.Float()
	if err != nil {
		return Coordinates{}, newLookupError(KindIncomplete, MsgInvalidCoords, err)
	}

	log.Debug().
		Str("city", city).
		Str("match", first.DisplayName).
		Float64("lat", lat).
		Float64("lon", lon).
		Msg("city geocoded")

	return Coordinates{Latitude: lat, Longitude: lon}, nil
}
