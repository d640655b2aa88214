// Package transport provides DTOs for the itinerary domain.
package transport

// Summary is the minimal shape of a record: its id and title.
type Summary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ItineraryItemSummary is the flattened shape of a sub-itinerary item.
// Optional fields encode as null when the source property is absent.
type ItineraryItemSummary struct {
	ID       string  `json:"id"`
	CodeNum  string  `json:"code_num"`
	Status   *string `json:"status"`
	TaskID   *string `json:"task_id"`
	TaskName *string `json:"task_name"`
	Date     *string `json:"date"`
}

// ListSubcontractorsRequest filters the subcontractor listing.
// Name matches titles case-insensitively; empty returns everything.
type ListSubcontractorsRequest struct {
	Name string `form:"name"`
}

// SubcontractorItemsRequest selects the items linked to one subcontractor.
type SubcontractorItemsRequest struct {
	SubcontractorID string `uri:"id" validate:"required"`
}

// UpdateItemStatusRequest sets the status label of an itinerary item.
type UpdateItemStatusRequest struct {
	ItemID string `uri:"item_id" validate:"required"`
	Status string `uri:"status" validate:"required"`
}

// CreateItineraryItemRequest links a task to a subcontractor with a status.
type CreateItineraryItemRequest struct {
	SubcontractorID string `uri:"subcontractor_id" validate:"required"`
	TaskID          string `uri:"task_id" validate:"required"`
	Status          string `uri:"status" validate:"required"`
}

// ArchiveItemRequest archives an itinerary item.
type ArchiveItemRequest struct {
	ItemID string `uri:"item_id" validate:"required"`
}
