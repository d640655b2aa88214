// Package itinerary provides the subcontractor itinerary bounded context.
// This file defines the public interfaces exposed to other domains.
package itinerary

import (
	"context"

	"itinerary_backend/internal/itinerary/service"
	"itinerary_backend/internal/itinerary/transport"
)

// ItineraryService defines the public interface for itinerary operations.
// Other domains should depend on this interface, not the concrete implementation.
type ItineraryService interface {
	// ListSubcontractors returns subcontractor summaries, optionally filtered by name.
	ListSubcontractors(ctx context.Context, name string) ([]transport.Summary, error)

	// ListItemsBySubcontractor returns the normalized items linked to a subcontractor.
	ListItemsBySubcontractor(ctx context.Context, subcontractorID string) ([]transport.ItineraryItemSummary, error)

	// UpdateItemStatus replaces an item's status label.
	UpdateItemStatus(ctx context.Context, itemID, status string) error

	// CreateItineraryItem adds an item and returns its id.
	CreateItineraryItem(ctx context.Context, subcontractorID, taskID, status string) (string, error)

	// ArchiveItem archives an item.
	ArchiveItem(ctx context.Context, itemID string) error

	// Ping checks that the remote store is reachable.
	Ping(ctx context.Context) error
}

var _ ItineraryService = (*service.Service)(nil)
