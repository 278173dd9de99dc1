package config_test

import (
	"testing"
	"time"
	"ulascansenturk/city-weather/config"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestDefaults() {
	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	s.Equal("city-weather", conf.ServiceName)
	s.Equal("0.0.0.0:5001", conf.ServerAddress)
	s.Equal(8*time.Second, conf.GeocodeTimeout)
	s.Equal(10*time.Second, conf.ForecastTimeout)
	s.Equal(30*time.Second, conf.HTTPTimeoutDuration())
	s.Contains(conf.GeocodeURL, "nominatim.openstreetmap.org")
	s.Contains(conf.ForecastURL, "locationforecast/2.0/compact")
	s.NotEmpty(conf.UserAgent)
	s.False(conf.LookupLogEnabled)
	s.False(conf.Debug)
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("SERVER_ADDRESS", "127.0.0.1:9000")
	s.T().Setenv("GEOCODE_TIMEOUT", "2s")
	s.T().Setenv("USER_AGENT", "tests/1.0 (tests@example.com)")
	s.T().Setenv("DEBUG", "true")

	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	s.Equal("127.0.0.1:9000", conf.ServerAddress)
	s.Equal(2*time.Second, conf.GeocodeTimeout)
	s.Equal("tests/1.0 (tests@example.com)", conf.UserAgent)
	s.True(conf.Debug)
}

func (s *ConfigTestSuite) TestLookupLogRequiresDatabaseHost() {
	s.T().Setenv("LOOKUP_LOG_ENABLED", "true")
	s.T().Setenv("DATABASE_HOST", "")

	_, err := config.LoadConfig()
	s.Error(err)
	s.Contains(err.Error(), "DATABASE_HOST")
}

func (s *ConfigTestSuite) TestDSN() {
	s.T().Setenv("DATABASE_HOST", "db")
	s.T().Setenv("DATABASE_USER", "weather")
	s.T().Setenv("DATABASE_PASSWORD", "secret")
	s.T().Setenv("DATABASE_NAME", "lookups")

	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	s.Equal("host=db port=5432 user=weather password=secret dbname=lookups sslmode=disable", conf.DSN())
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
