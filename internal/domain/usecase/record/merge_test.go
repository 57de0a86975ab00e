package record

import (
	"reflect"
	"testing"
	"time"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
)

func entry(timestamp string, temp float64) entity.ForecastEntry {
	return entity.ForecastEntry{
		DtTxt:   timestamp,
		Main:    entity.Main{Temp: temp, Humidity: 50, Pressure: 1000},
		Wind:    entity.Wind{Speed: 3},
		Weather: []entity.Condition{{Description: "clear sky", Icon: "01d"}},
	}
}

func document(id, location string, entries ...entity.ForecastEntry) entity.WeatherDocument {
	return entity.WeatherDocument{
		ID:       id,
		Location: location,
		Data:     entity.ForecastPayload{Cod: "200", List: entries},
	}
}

func day(value string) time.Time {
	t, ok := ParseDay(value)
	if !ok {
		panic("invalid day " + value)
	}
	return t
}

func criteria(location, start, end string) model.SearchCriteria {
	return model.SearchCriteria{Location: location, Start: day(start), End: day(end)}
}

func timestamps(list []entity.ForecastEntry) []string {
	result := make([]string, len(list))
	for i, e := range list {
		result[i] = e.DtTxt
	}
	return result
}

func TestMergeRecordsGroupsDeduplicatesAndSorts(t *testing.T) {
	documents := []entity.WeatherDocument{
		document("a", "Paris",
			entry("2024-05-02 12:00:00", 20),
			entry("2024-05-01 09:00:00", 18),
		),
		document("b", "PARIS",
			entry("2024-05-02 12:00:00", 99),
			entry("2024-05-01 03:00:00", 15),
		),
	}

	groups := MergeRecords(documents, criteria("PAR", "2024-05-01", "2024-05-02"))

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	group := groups[0]
	if group.Key != "paris" || group.Label != "Paris" {
		t.Errorf("key/label = %q/%q, want paris/Paris", group.Key, group.Label)
	}
	if !reflect.DeepEqual(group.IDs, []string{"a", "b"}) {
		t.Errorf("ids = %v, want [a b]", group.IDs)
	}

	want := []string{"2024-05-01 03:00:00", "2024-05-01 09:00:00", "2024-05-02 12:00:00"}
	if got := timestamps(group.List); !reflect.DeepEqual(got, want) {
		t.Errorf("timestamps = %v, want %v", got, want)
	}
	if group.List[2].Main.Temp != 20 {
		t.Errorf("duplicate timestamp kept temp %v, want first occurrence 20", group.List[2].Main.Temp)
	}
}

func TestMergeRecordsWindowIsInclusiveOfWholeDays(t *testing.T) {
	documents := []entity.WeatherDocument{
		document("a", "Berlin",
			entry("2024-04-30 23:59:59", 1),
			entry("2024-05-01 00:00:00", 2),
			entry("2024-05-03 23:59:59", 3),
			entry("2024-05-04 00:00:00", 4),
		),
	}

	groups := MergeRecords(documents, criteria("berlin", "2024-05-01", "2024-05-03"))

	want := []string{"2024-05-01 00:00:00", "2024-05-03 23:59:59"}
	if len(groups) != 1 || !reflect.DeepEqual(timestamps(groups[0].List), want) {
		t.Fatalf("groups = %+v, want one group with %v", groups, want)
	}
}

func TestMergeRecordsSelection(t *testing.T) {
	documents := []entity.WeatherDocument{
		document("old", "Tokyo", entry("2024-01-01 00:00:00", 5)),
		document("bad", "Tokyo", entry("not a date", 5), entry("", 6)),
		document("empty", "Tokyo"),
		document("span", "Tokyo", entry("2024-04-01 00:00:00", 7), entry("2024-06-01 00:00:00", 8)),
		document("hit", "tokyo", entry("2024-05-10 06:00:00", 9), entry("garbage", 10)),
		document("other", "Kyoto", entry("2024-05-10 06:00:00", 11)),
	}

	groups := MergeRecords(documents, criteria("tokyo", "2024-05-01", "2024-05-31"))

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if !reflect.DeepEqual(groups[0].IDs, []string{"span", "hit"}) {
		t.Errorf("ids = %v, want [span hit]", groups[0].IDs)
	}
	if got := timestamps(groups[0].List); !reflect.DeepEqual(got, []string{"2024-05-10 06:00:00"}) {
		t.Errorf("timestamps = %v", got)
	}
	if groups[0].Label != "Tokyo" {
		t.Errorf("label = %q, want label of first contributing document", groups[0].Label)
	}
}

func TestMergeRecordsKeepsGroupWithNoEntriesInWindow(t *testing.T) {
	documents := []entity.WeatherDocument{
		document("a", "Oslo", entry("2024-05-01 00:00:00", 1), entry("2024-05-03 00:00:00", 2)),
	}

	groups := MergeRecords(documents, criteria("oslo", "2024-05-02", "2024-05-02"))

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if !reflect.DeepEqual(groups[0].IDs, []string{"a"}) {
		t.Errorf("ids = %v, want [a]", groups[0].IDs)
	}
	if groups[0].List == nil || len(groups[0].List) != 0 {
		t.Errorf("list = %#v, want empty non-nil", groups[0].List)
	}
}

func TestMergeRecordsDoesNotTrimLocationKey(t *testing.T) {
	documents := []entity.WeatherDocument{
		document("a", "Paris", entry("2024-05-01 00:00:00", 1)),
		document("b", " paris", entry("2024-05-01 00:00:00", 2)),
	}

	groups := MergeRecords(documents, criteria("paris", "2024-05-01", "2024-05-01"))

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %+v", groups)
	}
	if groups[0].Key != " paris" || groups[1].Key != "paris" {
		t.Errorf("keys = %q, %q", groups[0].Key, groups[1].Key)
	}
}

func TestMergeRecordsSubstringMatch(t *testing.T) {
	documents := []entity.WeatherDocument{
		document("a", "Tallahassee", entry("2024-05-01 00:00:00", 1)),
	}

	if groups := MergeRecords(documents, criteria("TALLA", "2024-05-01", "2024-05-01")); len(groups) != 1 {
		t.Errorf("talla: expected 1 group, got %d", len(groups))
	}
	if groups := MergeRecords(documents, criteria("tally", "2024-05-01", "2024-05-01")); len(groups) != 0 {
		t.Errorf("tally: expected no groups, got %+v", groups)
	}
}

func TestMergeRecordsOrdersGroupsByKey(t *testing.T) {
	documents := []entity.WeatherDocument{
		document("1", "Tokyo", entry("2024-05-01 00:00:00", 1)),
		document("2", "London", entry("2024-05-01 00:00:00", 1)),
		document("3", "Boston", entry("2024-05-01 00:00:00", 1)),
	}

	groups := MergeRecords(documents, criteria("o", "2024-05-01", "2024-05-01"))

	var keys []string
	for _, group := range groups {
		keys = append(keys, group.Key)
	}
	if !reflect.DeepEqual(keys, []string{"boston", "london", "tokyo"}) {
		t.Errorf("keys = %v", keys)
	}
}

func TestMergeRecordsKeepsDistinctStringsForSameInstant(t *testing.T) {
	documents := []entity.WeatherDocument{
		document("a", "Rome", entry("2024-05-01 12:00:00", 1), entry("2024-05-01T12:00:00Z", 2)),
	}

	groups := MergeRecords(documents, criteria("rome", "2024-05-01", "2024-05-01"))

	want := []string{"2024-05-01 12:00:00", "2024-05-01T12:00:00Z"}
	if len(groups) != 1 || !reflect.DeepEqual(timestamps(groups[0].List), want) {
		t.Fatalf("groups = %+v, want stable order %v", groups, want)
	}
}

func TestMergeRecordsIsIdempotentAndDoesNotMutate(t *testing.T) {
	documents := []entity.WeatherDocument{
		document("a", "Lima", entry("2024-05-02 00:00:00", 1), entry("2024-05-01 00:00:00", 2)),
		document("b", "Lima", entry("2024-05-01 00:00:00", 3)),
	}
	before := timestamps(documents[0].Data.List)

	first := MergeRecords(documents, criteria("lima", "2024-05-01", "2024-05-02"))
	second := MergeRecords(documents, criteria("lima", "2024-05-01", "2024-05-02"))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("merge is not idempotent: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(timestamps(documents[0].Data.List), before) {
		t.Errorf("documents were mutated")
	}
}

func TestMergeRecordsNoMatches(t *testing.T) {
	groups := MergeRecords(nil, criteria("nowhere", "2024-05-01", "2024-05-02"))
	if groups == nil || len(groups) != 0 {
		t.Errorf("expected empty non-nil result, got %#v", groups)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		value string
		want  time.Time
		ok    bool
	}{
		{"2024-05-01 12:30:00", time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), true},
		{"2024-05-01T12:30:00", time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), true},
		{"2024-05-01T12:30:00Z", time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), true},
		{"2024-05-01T14:30:00+02:00", time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), true},
		{"2024-05-01T12:30:00.250Z", time.Date(2024, 5, 1, 12, 30, 0, 250000000, time.UTC), true},
		{"2024-05-01 12:30", time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), true},
		{"2024-05-01T12:30", time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), true},
		{"2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"01/05/2024", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseTimestamp(tt.value)
		if ok != tt.ok || !got.Equal(tt.want) {
			t.Errorf("ParseTimestamp(%q) = %v, %v; want %v, %v", tt.value, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDayWindow(t *testing.T) {
	start, end := DayWindow(
		time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 3, 1, 0, 0, 0, time.UTC),
	)
	if !start.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 5, 3, 23, 59, 59, 999999999, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}
