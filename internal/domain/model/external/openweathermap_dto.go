package external

// OpenWeatherMapErrorResponse is the error body of the OpenWeatherMap API.
// Successful forecasts decode straight into entity.ForecastPayload.
type OpenWeatherMapErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
