package service

import (
	"errors"

	"ulascansenturk/city-weather/internal/providers"
)

// Outcome is the result of one lookup. It is either a Success or a Failure;
// no other implementations exist outside this package.
type Outcome interface {
	isOutcome()
}

type Success struct {
	Report providers.WeatherReport
}

type Failure struct {
	Kind    providers.ErrorKind
	Message string
}

func (Success) isOutcome() {}
func (Failure) isOutcome() {}

func failureFrom(err error) Failure {
	var lookupErr *providers.LookupError
	if errors.As(err, &lookupErr) {
		return Failure{Kind: lookupErr.Kind, Message: lookupErr.Message}
	}
	return Failure{Kind: providers.KindTransport, Message: err.Error()}
}
