package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/city-weather/internal/db/lookuplog"
	"ulascansenturk/city-weather/internal/providers"
)

type LookupService interface {
	Lookup(ctx context.Context, city string) Outcome
}

type lookupService struct {
	geocoder   providers.Geocoder
	forecaster providers.Forecaster
	lookupLog  lookuplog.Repository
}

// NewLookupService wires the geocode -> forecast chain. lookupLog may be nil,
// in which case lookups are not recorded.
func NewLookupService(geocoder providers.Geocoder, forecaster providers.Forecaster, lookupLog lookuplog.Repository) LookupService {
	return &lookupService{
		geocoder:   geocoder,
		forecaster: forecaster,
		lookupLog:  lookupLog,
	}
}

func (s *lookupService) Lookup(ctx context.Context, city string) Outcome {
	lookupID := uuid.NewString()
	logger := log.Ctx(ctx).With().Str("lookup_id", lookupID).Str("city", city).Logger()

	coords, err := s.geocoder.Geocode(ctx, city)
	if err != nil {
		failure := failureFrom(err)
		logger.Info().Str("kind", string(failure.Kind)).Msg("geocode failed")
		s.record(ctx, &logger, lookupID, city, nil, failure)
		return failure
	}

	report, err := s.forecaster.GetForecast(ctx, coords)
	if err != nil {
		failure := failureFrom(err)
		logger.Info().Str("kind", string(failure.Kind)).Msg("forecast failed")
		s.record(ctx, &logger, lookupID, city, &coords, failure)
		return failure
	}

	success := Success{Report: report}
	logger.Info().
		Float64("lat", coords.Latitude).
		Float64("lon", coords.Longitude).
		Str("summary", report.Summary).
		Msg("lookup succeeded")
	s.record(ctx, &logger, lookupID, city, &coords, success)

	return success
}

func (s *lookupService) record(ctx context.Context, logger *zerolog.Logger, lookupID, city string, coords *providers.Coordinates, outcome Outcome) {
	if s.lookupLog == nil {
		return
	}

	entry := &lookuplog.CityLookup{
		LookupID: lookupID,
		City:     city,
	}
	if coords != nil {
		entry.Latitude = &coords.Latitude
		entry.Longitude = &coords.Longitude
	}

	switch o := outcome.(type) {
	case Success:
		entry.Temperature = o.Report.Temperature
		entry.Summary = o.Report.Summary
		entry.ObservedAt = o.Report.Time
	case Failure:
		entry.ErrorKind = string(o.Kind)
		entry.ErrorMessage = o.Message
	}

	// the audit row is written even if the client has already gone away
	if err := s.lookupLog.LogLookup(context.WithoutCancel(ctx), entry); err != nil {
		logger.Warn().Err(err).Msg("failed to record lookup")
	}
}
