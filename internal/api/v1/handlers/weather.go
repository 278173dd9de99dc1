package handlers

import (
	"context"
	_ "embed"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/hlog"
	"ulascansenturk/city-weather/internal/providers"
	"ulascansenturk/city-weather/internal/service"
)

//go:embed templates/index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type WeatherHandler struct {
	lookupService service.LookupService
	timeout       time.Duration
}

func NewWeatherHandler(lookupService service.LookupService, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		lookupService: lookupService,
		timeout:       timeout,
	}
}

// ShowForm renders the empty form: no report, no error.
func (h *WeatherHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, pageData{})
}

// SubmitForm looks up the submitted city and renders either the report or
// the error message.
func (h *WeatherHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	city := r.PostFormValue("city")

	data := pageData{City: city}
	switch outcome := h.lookup(r, city).(type) {
	case service.Success:
		data.Weather = newWeatherView(outcome.Report)
	case service.Failure:
		data.Error = outcome.Message
	}

	renderPage(w, r, data)
}

// GetWeather is the JSON form of SubmitForm. The city comes from the "city"
// query parameter.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	switch outcome := h.lookup(r, city).(type) {
	case service.Success:
		report := outcome.Report
		respondWithJSON(w, http.StatusOK, WeatherResponse{
			City:        city,
			Temperature: report.Temperature,
			Summary:     report.Summary,
			Time:        report.Time,
			Latitude:    report.Coordinates.Latitude,
			Longitude:   report.Coordinates.Longitude,
		})
	case service.Failure:
		respondWithError(w, statusForKind(outcome.Kind), outcome.Message)
	}
}

func (h *WeatherHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *WeatherHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotFound, "not found")
}

func (h *WeatherHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func (h *WeatherHandler) lookup(r *http.Request, city string) service.Outcome {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	hlog.FromRequest(r).Debug().Str("city", city).Msg("looking up city weather")

	return h.lookupService.Lookup(ctx, city)
}

func newWeatherView(report providers.WeatherReport) *weatherView {
	view := &weatherView{
		Summary:   report.Summary,
		Time:      report.Time,
		Latitude:  report.Coordinates.Latitude,
		Longitude: report.Coordinates.Longitude,
	}
	if report.Temperature != nil {
		view.Temperature = strconv.FormatFloat(*report.Temperature, 'f', -1, 64)
	}
	return view
}

func statusForKind(kind providers.ErrorKind) int {
	if kind == providers.KindNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
