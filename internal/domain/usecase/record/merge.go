package record

import (
	"sort"
	"strings"
	"time"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
)

type timedEntry struct {
	entry entity.ForecastEntry
	at    time.Time
}

type groupBuilder struct {
	group   entity.MergedRecordGroup
	entries []timedEntry
}

// LocationKey normalizes a location label into its group key
func LocationKey(location string) string {
	return strings.ToLower(location)
}

// MergeRecords groups the documents matching criteria by location key and
// returns, per group, the entries inside the day window, deduplicated by
// timestamp string (first occurrence wins) and sorted ascending.
//
// A document is selected when its location contains criteria.Location
// (case-insensitive) and the span of its parseable entry timestamps overlaps
// the window. Groups are ordered by key. A selected group keeps its IDs even
// when none of its entries fall inside the window, its List is then empty.
// The function does not mutate documents.
func MergeRecords(documents []entity.WeatherDocument, criteria model.SearchCriteria) []entity.MergedRecordGroup {
	query := LocationKey(criteria.Location)
	windowStart, windowEnd := DayWindow(criteria.Start, criteria.End)

	builders := make(map[string]*groupBuilder)
	var keys []string

	for _, document := range documents {
		key := LocationKey(document.Location)
		if !strings.Contains(key, query) {
			continue
		}

		entries, first, last, ok := parseEntries(document.Data.List)
		if !ok || last.Before(windowStart) || first.After(windowEnd) {
			continue
		}

		builder, exists := builders[key]
		if !exists {
			builder = &groupBuilder{group: entity.MergedRecordGroup{Key: key, Label: document.Location}}
			builders[key] = builder
			keys = append(keys, key)
		}
		builder.group.IDs = append(builder.group.IDs, document.ID)
		builder.entries = append(builder.entries, entries...)
	}

	sort.Strings(keys)

	groups := make([]entity.MergedRecordGroup, 0, len(keys))
	for _, key := range keys {
		builder := builders[key]
		builder.group.List = filterEntries(builder.entries, windowStart, windowEnd)
		groups = append(groups, builder.group)
	}

	return groups
}

// parseEntries keeps entries with a parseable timestamp and returns their time span
func parseEntries(list []entity.ForecastEntry) (entries []timedEntry, first, last time.Time, ok bool) {
	entries = make([]timedEntry, 0, len(list))
	for _, entry := range list {
		at, parsed := ParseTimestamp(entry.DtTxt)
		if !parsed {
			continue
		}
		if !ok || at.Before(first) {
			first = at
		}
		if !ok || at.After(last) {
			last = at
		}
		ok = true
		entries = append(entries, timedEntry{entry: entry, at: at})
	}
	return entries, first, last, ok
}

// filterEntries keeps entries inside [from, to], drops repeated timestamp strings and sorts by time
func filterEntries(entries []timedEntry, from, to time.Time) []entity.ForecastEntry {
	seen := make(map[string]struct{}, len(entries))
	kept := make([]timedEntry, 0, len(entries))

	for _, candidate := range entries {
		if candidate.at.Before(from) || candidate.at.After(to) {
			continue
		}
		if _, duplicate := seen[candidate.entry.DtTxt]; duplicate {
			continue
		}
		seen[candidate.entry.DtTxt] = struct{}{}
		kept = append(kept, candidate)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].at.Before(kept[j].at)
	})

	list := make([]entity.ForecastEntry, len(kept))
	for i, candidate := range kept {
		list[i] = candidate.entry
	}
	return list
}
