package model

import "weather-api/internal/domain/entity"

// RecordResponse acknowledges a write and carries the stored document
type RecordResponse struct {
	Message string                  `json:"message"`
	Record  *entity.WeatherDocument `json:"record"`
}

// SearchResponse carries the merged groups of a search
type SearchResponse struct {
	Message string                     `json:"message"`
	Groups  []entity.MergedRecordGroup `json:"groups"`
}

// DeleteGroupResponse reports a group delete, Error is set when any document failed
type DeleteGroupResponse struct {
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Deleted []string `json:"deleted"`
	Failed  []string `json:"failed"`
}

// VideoSearchResponse carries the travel videos of a location
type VideoSearchResponse struct {
	Videos []entity.Video `json:"videos"`
}
