package controller

import (
	"net/http"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/video"
	"weather-api/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type VideoController struct {
	api     *echo.Group
	useCase video.UseCase
}

func NewVideoController(api *echo.Group, useCase video.UseCase) *VideoController {
	return &VideoController{api: api, useCase: useCase}
}

// InitVideoRoutes initializes video routes
func (controller *VideoController) InitVideoRoutes() {
	controller.api.GET("/youtube", controller.SearchTravelVideos)
}

// SearchTravelVideos godoc
// @Summary Search travel videos
// @Description Search YouTube for travel videos of a location. Results are cached when redis is enabled.
// @Tags video
// @Produce json
// @Param location query string true "Location"
// @Param max query int false "Maximum results (1-10)" default(3)
// @Success 200 {object} model.VideoSearchResponse "Videos"
// @Failure 400 {object} map[string]string "location is required"
// @Failure 500 {object} map[string]string "YouTube fetch failed"
// @Router /youtube [get]
func (controller *VideoController) SearchTravelVideos(c echo.Context) error {
	maxResults := numberutils.ToIntWithDefault(c.QueryParam("max"), 0)

	videos, err := controller.useCase.SearchTravelVideos(c.Request().Context(), c.QueryParam("location"), maxResults)
	if err != nil {
		return respondError(c, err)
	}
	if videos == nil {
		videos = []entity.Video{}
	}
	return c.JSON(http.StatusOK, model.VideoSearchResponse{Videos: videos})
}
