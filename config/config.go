package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	defaultGeocodeURL  = "https://nominatim.openstreetmap.org/search"
	defaultForecastURL = "https://api.met.no/weatherapi/locationforecast/2.0/compact"
	defaultUserAgent   = "city-weather/1.0 (ops@example.com)"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	Env         string
	LogLevel    string
	Debug       bool
	HTTPTimeout int32

	// Nominatim and MET Norway both reject requests without an identifying User-Agent.
	UserAgent       string
	GeocodeURL      string
	GeocodeTimeout  time.Duration
	ForecastURL     string
	ForecastTimeout time.Duration

	LookupLogEnabled bool

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "city-weather")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:5001")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEBUG", false)
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("USER_AGENT", defaultUserAgent)
	v.SetDefault("GEOCODE_URL", defaultGeocodeURL)
	v.SetDefault("GEOCODE_TIMEOUT", 8*time.Second)
	v.SetDefault("FORECAST_URL", defaultForecastURL)
	v.SetDefault("FORECAST_TIMEOUT", 10*time.Second)
	v.SetDefault("LOOKUP_LOG_ENABLED", false)
	v.SetDefault("DATABASE_PORT", "5432")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:      v.GetString("SERVICE_NAME"),
		ServerAddress:    v.GetString("SERVER_ADDRESS"),
		Env:              v.GetString("ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		Debug:            v.GetBool("DEBUG"),
		HTTPTimeout:      v.GetInt32("HTTP_TIMEOUT"),
		UserAgent:        v.GetString("USER_AGENT"),
		GeocodeURL:       v.GetString("GEOCODE_URL"),
		GeocodeTimeout:   v.GetDuration("GEOCODE_TIMEOUT"),
		ForecastURL:      v.GetString("FORECAST_URL"),
		ForecastTimeout:  v.GetDuration("FORECAST_TIMEOUT"),
		LookupLogEnabled: v.GetBool("LOOKUP_LOG_ENABLED"),
		DBName:           v.GetString("DATABASE_NAME"),
		DBPassword:       v.GetString("DATABASE_PASSWORD"),
		DBUser:           v.GetString("DATABASE_USER"),
		DBPort:           v.GetString("DATABASE_PORT"),
		DBHost:           v.GetString("DATABASE_HOST"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.UserAgent == "" {
		return fmt.Errorf("USER_AGENT must not be empty")
	}
	if c.GeocodeTimeout <= 0 || c.ForecastTimeout <= 0 {
		return fmt.Errorf("upstream timeouts must be positive: geocode=%s forecast=%s", c.GeocodeTimeout, c.ForecastTimeout)
	}
	if c.LookupLogEnabled && c.DBHost == "" {
		return fmt.Errorf("LOOKUP_LOG_ENABLED requires DATABASE_HOST")
	}
	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
