package handlers

type WeatherResponse struct {
	City        string   `json:"city"`
	Temperature *float64 `json:"temperature"`
	Summary     string   `json:"summary,omitempty"`
	Time        string   `json:"time,omitempty"`
	Latitude    float64  `json:"lat"`
	Longitude   float64  `json:"lon"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}

// pageData feeds templates/index.html. At most one of Weather and Error is set.
type pageData struct {
	City    string
	Weather *weatherView
	Error   string
}

type weatherView struct {
	Temperature string
	Summary     string
	Time        string
	Latitude    float64
	Longitude   float64
}
