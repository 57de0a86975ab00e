package entity

// MergedRecordGroup is the read-time aggregation of every document sharing a
// location key. It is rebuilt on each search and never persisted.
type MergedRecordGroup struct {
	// Key is the lower-cased location
	Key string `json:"key"`
	// Label is the location of the first contributing document
	Label string          `json:"label"`
	IDs   []string        `json:"ids"`
	List  []ForecastEntry `json:"list"`
}
