package controller

import (
	"context"
	"net/http"
	"strings"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/record"
	"weather-api/internal/domain/usecase/weather"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type WeatherController struct {
	api            *echo.Group
	weatherUseCase weather.UseCase
	recordUseCase  record.UseCase
}

func NewWeatherController(api *echo.Group, weatherUseCase weather.UseCase, recordUseCase record.UseCase) *WeatherController {
	return &WeatherController{api: api, weatherUseCase: weatherUseCase, recordUseCase: recordUseCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.POST("/weather", controller.Ingest)
	controller.api.POST("/weather/custom", controller.CreateCustom)
	controller.api.GET("/weather", controller.List)
	controller.api.GET("/weather/search", controller.Search)
	controller.api.PUT("/weather/:id/update", controller.UpdateEntry)
	controller.api.DELETE("/weather/:id", controller.Delete)
	controller.api.POST("/weather/groups/delete", controller.DeleteGroup)
	controller.api.POST("/weather/schedule", controller.ScheduleRefresh)
}

// Ingest godoc
// @Summary Fetch and store a forecast
// @Description Fetch the 5 day forecast of a location from OpenWeatherMap and store it as a new document.
// @Description The location may be a city name, a US zip code or "lat,lon" coordinates.
// @Tags weather
// @Accept json
// @Produce json
// @Param body body model.IngestWeatherDTO true "Location to fetch"
// @Success 201 {object} entity.WeatherDocument "Stored document"
// @Failure 400 {object} map[string]string "Missing fields"
// @Failure 500 {object} map[string]string "Failed to fetch weather"
// @Router /weather [post]
func (controller *WeatherController) Ingest(c echo.Context) error {
	var dto model.IngestWeatherDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, msg.GetMessage("app.invalid-body"))
	}

	document, err := controller.weatherUseCase.Ingest(c.Request().Context(), dto.Location)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, document)
}

// CreateCustom godoc
// @Summary Create a custom record
// @Description Store a manually entered single observation. Humidity, pressure and wind speed default to 0.
// @Tags weather
// @Accept json
// @Produce json
// @Param body body model.CreateCustomRecordDTO true "Observation"
// @Success 201 {object} model.RecordResponse "Record created"
// @Failure 400 {object} map[string]string "Missing required fields or invalid timestamp"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather/custom [post]
func (controller *WeatherController) CreateCustom(c echo.Context) error {
	var dto model.CreateCustomRecordDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, msg.GetMessage("app.invalid-body"))
	}
	if err := c.Validate(&dto); err != nil {
		return badRequest(c, msg.GetMessage("weather.error.missing-custom-fields"))
	}

	document, err := controller.recordUseCase.CreateCustom(c.Request().Context(), dto)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, model.RecordResponse{
		Message: msg.GetMessage("weather.success.created"),
		Record:  document,
	})
}

// List godoc
// @Summary List stored documents
// @Description Retrieve every stored weather document, oldest first
// @Tags weather
// @Produce json
// @Success 200 {array} entity.WeatherDocument "Stored documents"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather [get]
func (controller *WeatherController) List(c echo.Context) error {
	documents, err := controller.recordUseCase.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if documents == nil {
		return c.JSON(http.StatusOK, []any{})
	}
	return c.JSON(http.StatusOK, documents)
}

// Search godoc
// @Summary Search merged records
// @Description Merge the documents whose location contains the query into one group per location,
// @Description keeping the deduplicated entries between startDate 00:00 and endDate 23:59:59.
// @Tags weather
// @Produce json
// @Param location query string true "Location substring, case insensitive"
// @Param startDate query string true "First day (YYYY-MM-DD)"
// @Param endDate query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} model.SearchResponse "Merged groups"
// @Failure 400 {object} map[string]string "Missing or invalid criteria"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather/search [get]
func (controller *WeatherController) Search(c echo.Context) error {
	location := strings.TrimSpace(c.QueryParam("location"))
	startDate := strings.TrimSpace(c.QueryParam("startDate"))
	endDate := strings.TrimSpace(c.QueryParam("endDate"))

	if location == "" || startDate == "" || endDate == "" {
		return badRequest(c, msg.GetMessage("weather.error.missing-search-criteria"))
	}

	start, ok := record.ParseDay(startDate)
	if !ok {
		return badRequest(c, msg.GetMessage("weather.error.invalid-date", startDate))
	}
	end, ok := record.ParseDay(endDate)
	if !ok {
		return badRequest(c, msg.GetMessage("weather.error.invalid-date", endDate))
	}
	if start.After(end) {
		return badRequest(c, msg.GetMessage("weather.error.invalid-date-range"))
	}

	groups, err := controller.recordUseCase.Search(c.Request().Context(), model.SearchCriteria{
		Location: location,
		Start:    start,
		End:      end,
	})
	if err != nil {
		return respondError(c, err)
	}
	if groups == nil {
		groups = []entity.MergedRecordGroup{}
	}

	return c.JSON(http.StatusOK, model.SearchResponse{
		Message: msg.GetMessage("weather.success.search", len(groups)),
		Groups:  groups,
	})
}

// UpdateEntry godoc
// @Summary Update a forecast entry
// @Description Overwrite one or more fields (temp, humidity, pressure, wind) of the entry at timestamp in a single write.
// @Description The single field shape {timestamp, updateField, newTemp} is also accepted.
// @Tags weather
// @Accept json
// @Produce json
// @Param id path string true "Document id"
// @Param body body model.UpdateEntryDTO true "Entry changes"
// @Success 200 {object} model.RecordResponse "Fields updated"
// @Failure 400 {object} map[string]string "Invalid value for field"
// @Failure 404 {object} map[string]string "Record or timestamp not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather/{id}/update [put]
func (controller *WeatherController) UpdateEntry(c echo.Context) error {
	var dto model.UpdateEntryDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, msg.GetMessage("app.invalid-body"))
	}

	document, fields, err := controller.recordUseCase.UpdateEntry(c.Request().Context(), c.Param("id"), dto)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.RecordResponse{
		Message: msg.GetMessage("weather.success.updated", strings.Join(fields, ", ")),
		Record:  document,
	})
}

// Delete godoc
// @Summary Delete a document
// @Tags weather
// @Produce json
// @Param id path string true "Document id"
// @Success 200 {object} map[string]string "Record deleted"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather/{id} [delete]
func (controller *WeatherController) Delete(c echo.Context) error {
	if err := controller.recordUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": msg.GetMessage("weather.success.deleted")})
}

// DeleteGroup godoc
// @Summary Delete a merged group
// @Description Delete every document of a merged group concurrently. Deleted documents are not restored when another fails.
// @Tags weather
// @Accept json
// @Produce json
// @Param body body model.DeleteGroupDTO true "Document ids of the group"
// @Success 200 {object} model.DeleteGroupResponse "Records deleted"
// @Failure 400 {object} map[string]string "No record ids given"
// @Failure 500 {object} model.DeleteGroupResponse "Some records could not be deleted"
// @Router /weather/groups/delete [post]
func (controller *WeatherController) DeleteGroup(c echo.Context) error {
	var dto model.DeleteGroupDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, msg.GetMessage("app.invalid-body"))
	}
	if err := c.Validate(&dto); err != nil {
		return badRequest(c, msg.GetMessage("weather.error.missing-ids"))
	}

	result, err := controller.recordUseCase.DeleteGroup(c.Request().Context(), dto.IDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.DeleteGroupResponse{
		Message: msg.GetMessage("weather.success.group-deleted"),
		Deleted: nonNil(result.Deleted),
		Failed:  nonNil(result.Failed),
	})
}

// ScheduleRefresh godoc
// @Summary Refresh tracked locations
// @Description Enqueue every tracked location for ingest. Runs in background.
// @Tags weather
// @Produce json
// @Success 202 {object} map[string]string "Refresh scheduled"
// @Router /weather/schedule [post]
func (controller *WeatherController) ScheduleRefresh(c echo.Context) error {
	requestID := uuid.NewString()
	ctx := context.WithoutCancel(c.Request().Context())

	go func() {
		result, err := controller.weatherUseCase.RefreshTrackedLocations(ctx, requestID)
		if err != nil {
			log.Error(msg.GetMessage("ingest.cron.error", requestID), zap.Error(err))
			return
		}
		log.Info(msg.GetMessage("ingest.cron.end", requestID, result.Enqueued, result.Failed))
	}()

	return c.JSON(http.StatusAccepted, map[string]string{
		"message":   msg.GetMessage("weather.success.schedule"),
		"requestId": requestID,
	})
}
