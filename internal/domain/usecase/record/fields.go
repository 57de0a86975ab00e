package record

import (
	"sort"

	"weather-api/internal/domain/entity"
	"weather-api/pkg/util/numberutils"
)

// Updatable entry fields
const (
	FieldTemp     = "temp"
	FieldHumidity = "humidity"
	FieldPressure = "pressure"
	FieldWind     = "wind"
)

type fieldRule struct {
	rank     int
	min, max float64
	apply    func(entry *entity.ForecastEntry, value float64)
}

var fieldRules = map[string]fieldRule{
	FieldTemp:     {rank: 0, min: -100, max: 100, apply: func(e *entity.ForecastEntry, v float64) { e.Main.Temp = v }},
	FieldHumidity: {rank: 1, min: 0, max: 100, apply: func(e *entity.ForecastEntry, v float64) { e.Main.Humidity = v }},
	FieldPressure: {rank: 2, min: 900, max: 1100, apply: func(e *entity.ForecastEntry, v float64) { e.Main.Pressure = v }},
	FieldWind:     {rank: 3, min: 0, max: 150, apply: func(e *entity.ForecastEntry, v float64) { e.Wind.Speed = v }},
}

// ValidFieldValue reports whether field is updatable and value lies within its range
func ValidFieldValue(field string, value float64) bool {
	rule, ok := fieldRules[field]
	return ok && numberutils.IsFloatInRange(value, rule.min, rule.max)
}

// orderedFields returns the keys of values with known fields first, in their canonical order
func orderedFields(values map[string]float64) []string {
	fields := make([]string, 0, len(values))
	for field := range values {
		fields = append(fields, field)
	}

	sort.Slice(fields, func(i, j int) bool {
		ri, iKnown := fieldRules[fields[i]]
		rj, jKnown := fieldRules[fields[j]]
		switch {
		case iKnown && jKnown:
			return ri.rank < rj.rank
		case iKnown != jKnown:
			return iKnown
		default:
			return fields[i] < fields[j]
		}
	})
	return fields
}

// applyFields overwrites every field of entry in one pass; values must be validated
func applyFields(entry *entity.ForecastEntry, fields []string, values map[string]float64) {
	for _, field := range fields {
		fieldRules[field].apply(entry, values[field])
	}
}
