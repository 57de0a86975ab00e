package external

import "weather-api/internal/domain/entity"

// YouTubeSearchResponse is the body of the YouTube Data API v3 search endpoint
type YouTubeSearchResponse struct {
	Kind          string         `json:"kind"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
	RegionCode    string         `json:"regionCode,omitempty"`
	Items         []entity.Video `json:"items"`
}

// YouTubeErrorResponse is the error body of Google APIs
type YouTubeErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
