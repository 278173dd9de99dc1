package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(h *WeatherHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.ShowForm).Methods(http.MethodGet)
	r.HandleFunc("/", h.SubmitForm).Methods(http.MethodPost)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/weather", h.GetWeather).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(h.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.MethodNotAllowed)

	return r
}
