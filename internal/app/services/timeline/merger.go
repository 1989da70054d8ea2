package timeline

import (
	"sort"
	"time"

	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/utils"
)

// sortableItem pairs a timeline item with its parsed sort date.
type sortableItem struct {
	item responses.TimelineItem
	date time.Time
}

// Merge combines document and encounter items into one strictly descending
// sequence. Items whose date does not parse are excluded. The sort is stable
// and the input order puts documents before encounters, so on equal dates a
// document always precedes an encounter.
func Merge(documents []responses.TimelineItem, encounterItems []responses.TimelineItem) *responses.Timeline {
	merged := make([]sortableItem, 0, len(documents)+len(encounterItems))
	for _, item := range documents {
		if date, ok := utils.ParseFHIRDate(item.Date); ok {
			merged = append(merged, sortableItem{item: item, date: date})
		}
	}
	for _, item := range encounterItems {
		if date, ok := utils.ParseFHIRDate(item.Date); ok {
			merged = append(merged, sortableItem{item: item, date: date})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].date.After(merged[j].date)
	})

	timeline := &responses.Timeline{Earlier: []responses.TimelineItem{}}
	for i, entry := range merged {
		if i == 0 {
			latest := entry.item
			timeline.Latest = &latest
			continue
		}
		timeline.Earlier = append(timeline.Earlier, entry.item)
	}
	return timeline
}
