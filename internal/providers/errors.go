package providers

import "fmt"

type ErrorKind string

const (
	KindTransport    ErrorKind = "transport"
	KindStatus       ErrorKind = "status"
	KindMalformed    ErrorKind = "malformed"
	KindNotFound     ErrorKind = "not_found"
	KindIncomplete   ErrorKind = "incomplete"
	KindNotAvailable ErrorKind = "not_available"
)

const (
	MsgNoLocation          = "No location found for that city."
	MsgIncompleteCoords    = "Geocoding returned incomplete coordinates."
	MsgInvalidCoords       = "Geocoding returned invalid coordinates."
	MsgGeocodeMalformed    = "Invalid response (non-JSON) received from geocoding service."
	MsgForecastMalformed   = "Invalid response (non-JSON) received from weather API."
	MsgWeatherNotAvailable = "Weather information not available."
)

// LookupError is a failed upstream step. Error returns the message shown to
// the user; Err keeps the underlying cause for logs.
type LookupError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *LookupError) Error() string {
	return e.Message
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

func newLookupError(kind ErrorKind, message string, cause error) *LookupError {
	return &LookupError{Kind: kind, Message: message, Err: cause}
}

func geocodeTransportError(cause error) *LookupError {
	return newLookupError(KindTransport, fmt.Sprintf("Network error contacting geocode service: %v", cause), cause)
}

func geocodeStatusError(code int) *LookupError {
	return newLookupError(KindStatus, fmt.Sprintf("Geocode request failed: HTTP %d", code), nil)
}

func forecastTransportError(cause error) *LookupError {
	return newLookupError(KindTransport, fmt.Sprintf("Weather API request failed: %v", cause), cause)
}

func forecastStatusError(code int) *LookupError {
	return newLookupError(KindStatus, fmt.Sprintf("Weather API returned HTTP %d", code), nil)
}
