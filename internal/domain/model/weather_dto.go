package model

import "time"

// IngestWeatherDTO requests a forecast lookup for a location
type IngestWeatherDTO struct {
	Location string `json:"location"`
}

// CreateCustomRecordDTO is a manually entered single observation
type CreateCustomRecordDTO struct {
	Location  string   `json:"location" validate:"required"`
	DtTxt     string   `json:"dt_txt" validate:"required"`
	Temp      *float64 `json:"temp" validate:"required"`
	Humidity  *float64 `json:"humidity"`
	Pressure  *float64 `json:"pressure"`
	WindSpeed *float64 `json:"windSpeed"`
}

// UpdateEntryDTO changes one or more fields of the entry at Timestamp.
// UpdateField and NewTemp carry the single field request shape.
type UpdateEntryDTO struct {
	Timestamp   string             `json:"timestamp"`
	Values      map[string]float64 `json:"values,omitempty"`
	UpdateField string             `json:"updateField,omitempty"`
	NewTemp     *float64           `json:"newTemp,omitempty"`
}

// DeleteGroupDTO lists the documents of a merged group
type DeleteGroupDTO struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// DeleteGroupResult reports which documents of a group were deleted
type DeleteGroupResult struct {
	Deleted []string `json:"deleted"`
	Failed  []string `json:"failed"`
}

// SearchCriteria are the explicit inputs of a merged search
type SearchCriteria struct {
	Location string
	Start    time.Time
	End      time.Time
}

// IngestMessage is the body of an ingest queue message
type IngestMessage struct {
	Location  string `json:"location"`
	RequestID string `json:"requestId"`
}

// RefreshResult summarizes an enqueue of the tracked locations
type RefreshResult struct {
	Enqueued int `json:"enqueued"`
	Failed   int `json:"failed"`
}
