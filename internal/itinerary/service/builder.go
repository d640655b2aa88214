package service

import "itinerary_backend/internal/notion/record"

// StatusUpdate builds the property payload that sets an item's status.
func StatusUpdate(status string) record.Properties {
	return record.Properties{
		PropStatus: record.MultiSelect(status),
	}
}

// ItineraryCreate builds the property payload for a new sub-itinerary item.
// Values are passed through unchecked; callers validate non-empty input.
func ItineraryCreate(subcontractorID, taskID, status string) record.Properties {
	return record.Properties{
		PropTask:          record.Relation(taskID),
		PropStatus:        record.MultiSelect(status),
		PropSubcontractor: record.Relation(subcontractorID),
	}
}
