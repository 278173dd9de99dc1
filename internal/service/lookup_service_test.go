package service_test

import (
	"context"
	"errors"
	"testing"
	"ulascansenturk/city-weather/internal/db/lookuplog"
	"ulascansenturk/city-weather/internal/mocks"
	"ulascansenturk/city-weather/internal/providers"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/city-weather/internal/service"
)

type LookupServiceTestSuite struct {
	suite.Suite
	mockGeocoder   *mocks.MockGeocoder
	mockForecaster *mocks.MockForecaster
	mockRepo       *mocks.MockRepository
	service        service.LookupService
	ctx            context.Context
}

func (s *LookupServiceTestSuite) SetupTest() {
	s.mockGeocoder = mocks.NewMockGeocoder(s.T())
	s.mockForecaster = mocks.NewMockForecaster(s.T())
	s.mockRepo = mocks.NewMockRepository(s.T())
	s.service = service.NewLookupService(s.mockGeocoder, s.mockForecaster, s.mockRepo)
	s.ctx = context.Background()
}

func temperature(v float64) *float64 {
	return &v
}

func parisReport() providers.WeatherReport {
	return providers.WeatherReport{
		Temperature: temperature(14.2),
		Summary:     "clear_sky_day",
		Time:        "2024-01-01T12:00:00Z",
		Coordinates: providers.Coordinates{Latitude: 48.8566, Longitude: 2.3522},
	}
}

func (s *LookupServiceTestSuite) TestLookupSuccess() {
	coords := providers.Coordinates{Latitude: 48.8566, Longitude: 2.3522}
	report := parisReport()

	s.mockGeocoder.On("Geocode", mock.Anything, "Paris").Return(coords, nil)
	s.mockForecaster.On("GetForecast", mock.Anything, coords).Return(report, nil)
	s.mockRepo.On("LogLookup", mock.Anything, mock.MatchedBy(func(entry *lookuplog.CityLookup) bool {
		return entry.City == "Paris" &&
			entry.LookupID != "" &&
			*entry.Latitude == 48.8566 &&
			*entry.Longitude == 2.3522 &&
			*entry.Temperature == 14.2 &&
			entry.Summary == "clear_sky_day" &&
			entry.ObservedAt == "2024-01-01T12:00:00Z" &&
			entry.ErrorMessage == ""
	})).Return(nil)

	outcome := s.service.Lookup(s.ctx, "Paris")

	success, ok := outcome.(service.Success)
	s.Require().True(ok, "expected Success, got %T", outcome)
	s.Equal(report, success.Report)
}

func (s *LookupServiceTestSuite) TestLookupNoLocationSkipsForecast() {
	s.mockGeocoder.On("Geocode", mock.Anything, "").Return(
		providers.Coordinates{},
		&providers.LookupError{Kind: providers.KindNotFound, Message: providers.MsgNoLocation},
	)
	s.mockRepo.On("LogLookup", mock.Anything, mock.MatchedBy(func(entry *lookuplog.CityLookup) bool {
		return entry.Latitude == nil && entry.ErrorKind == "not_found" && entry.ErrorMessage == providers.MsgNoLocation
	})).Return(nil)

	outcome := s.service.Lookup(s.ctx, "")

	s.Equal(service.Failure{Kind: providers.KindNotFound, Message: "No location found for that city."}, outcome)
	s.mockForecaster.AssertNotCalled(s.T(), "GetForecast")
}

func (s *LookupServiceTestSuite) TestLookupIncompleteCoordinates() {
	s.mockGeocoder.On("Geocode", mock.Anything, "Atlantis").Return(
		providers.Coordinates{},
		&providers.LookupError{Kind: providers.KindIncomplete, Message: providers.MsgIncompleteCoords},
	)
	s.mockRepo.On("LogLookup", mock.Anything, mock.Anything).Return(nil)

	outcome := s.service.Lookup(s.ctx, "Atlantis")

	s.Equal(service.Failure{Kind: providers.KindIncomplete, Message: "Geocoding returned incomplete coordinates."}, outcome)
	s.mockForecaster.AssertNotCalled(s.T(), "GetForecast")
}

func (s *LookupServiceTestSuite) TestLookupGeocodeTimeout() {
	cause := errors.New(`Get "https://nominatim.openstreetmap.org/search": context deadline exceeded (Client.Timeout exceeded while awaiting headers)`)
	s.mockGeocoder.On("Geocode", mock.Anything, "Paris").Return(
		providers.Coordinates{},
		&providers.LookupError{
			Kind:    providers.KindTransport,
			Message: "Network error contacting geocode service: " + cause.Error(),
			Err:     cause,
		},
	)
	s.mockRepo.On("LogLookup", mock.Anything, mock.Anything).Return(nil)

	outcome := s.service.Lookup(s.ctx, "Paris")

	failure, ok := outcome.(service.Failure)
	s.Require().True(ok)
	s.Equal(providers.KindTransport, failure.Kind)
	s.Contains(failure.Message, "Network error contacting geocode service")
	s.Contains(failure.Message, "Client.Timeout exceeded")
	s.mockForecaster.AssertNotCalled(s.T(), "GetForecast")
}

func (s *LookupServiceTestSuite) TestLookupForecastFailureRecordsCoordinates() {
	coords := providers.Coordinates{Latitude: 59.9139, Longitude: 10.7522}

	s.mockGeocoder.On("Geocode", mock.Anything, "Oslo").Return(coords, nil)
	s.mockForecaster.On("GetForecast", mock.Anything, coords).Return(
		providers.WeatherReport{},
		&providers.LookupError{Kind: providers.KindNotAvailable, Message: providers.MsgWeatherNotAvailable},
	)
	s.mockRepo.On("LogLookup", mock.Anything, mock.MatchedBy(func(entry *lookuplog.CityLookup) bool {
		return entry.Latitude != nil && *entry.Latitude == 59.9139 &&
			entry.Temperature == nil &&
			entry.ErrorKind == "not_available"
	})).Return(nil)

	outcome := s.service.Lookup(s.ctx, "Oslo")

	s.Equal(service.Failure{Kind: providers.KindNotAvailable, Message: "Weather information not available."}, outcome)
}

func (s *LookupServiceTestSuite) TestLookupUnclassifiedError() {
	s.mockGeocoder.On("Geocode", mock.Anything, "Rome").Return(providers.Coordinates{}, errors.New("boom"))
	s.mockRepo.On("LogLookup", mock.Anything, mock.Anything).Return(nil)

	outcome := s.service.Lookup(s.ctx, "Rome")

	s.Equal(service.Failure{Kind: providers.KindTransport, Message: "boom"}, outcome)
}

func (s *LookupServiceTestSuite) TestLookupRecordFailureDoesNotChangeOutcome() {
	coords := providers.Coordinates{Latitude: 48.8566, Longitude: 2.3522}
	report := parisReport()

	s.mockGeocoder.On("Geocode", mock.Anything, "Paris").Return(coords, nil)
	s.mockForecaster.On("GetForecast", mock.Anything, coords).Return(report, nil)
	s.mockRepo.On("LogLookup", mock.Anything, mock.Anything).Return(errors.New("database error"))

	outcome := s.service.Lookup(s.ctx, "Paris")

	s.Equal(service.Success{Report: report}, outcome)
}

func (s *LookupServiceTestSuite) TestLookupIsRepeatable() {
	coords := providers.Coordinates{Latitude: 48.8566, Longitude: 2.3522}
	report := parisReport()

	s.mockGeocoder.On("Geocode", mock.Anything, "Paris").Return(coords, nil).Twice()
	s.mockForecaster.On("GetForecast", mock.Anything, coords).Return(report, nil).Twice()
	s.mockRepo.On("LogLookup", mock.Anything, mock.Anything).Return(nil).Twice()

	first := s.service.Lookup(s.ctx, "Paris")
	second := s.service.Lookup(s.ctx, "Paris")

	s.Equal(first, second)
}

func TestLookupServiceSuite(t *testing.T) {
	suite.Run(t, new(LookupServiceTestSuite))
}

func TestLookupWithoutRecorder(t *testing.T) {
	geocoder := mocks.NewMockGeocoder(t)
	forecaster := mocks.NewMockForecaster(t)
	svc := service.NewLookupService(geocoder, forecaster, nil)

	geocoder.On("Geocode", mock.Anything, "Nowhere").Return(
		providers.Coordinates{},
		&providers.LookupError{Kind: providers.KindNotFound, Message: providers.MsgNoLocation},
	)

	outcome := svc.Lookup(context.Background(), "Nowhere")

	if _, ok := outcome.(service.Failure); !ok {
		t.Fatalf("expected Failure, got %T", outcome)
	}
}
