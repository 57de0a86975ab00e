package api

import (
	"context"
	"errors"
	"fmt"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/http"
	"weather-api/pkg/metrics"
)

const forecastPath = "/data/2.5/forecast"

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
}

// NewWeatherGateway creates an OpenWeatherMap gateway. The API key and metric
// units are sent as default query parameters of every call.
func NewWeatherGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	clientOptions.DefaultQueryParams = map[string]string{
		"appid": apiKey,
		"units": "metric",
	}

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// GetForecast gets the forecast of a location query
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, query map[string]string) (*entity.ForecastPayload, error) {
	successResp, errResp, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithPath(forecastPath).
		WithQueryParams(query).
		WithSuccessResp(&entity.ForecastPayload{}).
		WithErrorResp(&external.OpenWeatherMapErrorResponse{}).
		Execute()

	metrics.UpstreamRequestsTotal.WithLabelValues("openweathermap", metrics.Outcome(err)).Inc()

	if err == nil {
		return successResp.(*entity.ForecastPayload), nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.OpenWeatherMapErrorResponse)
		if errorResponse.Message != "" {
			return nil, fmt.Errorf("openweathermap: %s: %w", errorResponse.Message, err)
		}
	}

	return nil, errors.Join(errors.New("openweathermap request failed"), err)
}
