// Package service provides the itinerary business logic: reading
// subcontractors and their sub-itinerary items from the remote store and
// writing status changes and new items back.
package service

import (
	"context"
	"fmt"
	"strings"

	"itinerary_backend/internal/itinerary/transport"
	"itinerary_backend/internal/notion/record"
	"itinerary_backend/platform/apperr"
	"itinerary_backend/platform/config"
	"itinerary_backend/platform/logger"
)

// Service handles itinerary use cases. Records are read fresh on every call.
type Service struct {
	store       RecordStore
	normalizer  *Normalizer
	subsDB      string
	itemsDB     string
	tasksDB     string
	concurrency int
	log         *logger.Logger
}

// New creates a new itinerary service.
func New(store RecordStore, cfg config.ItineraryConfig, log *logger.Logger) *Service {
	return &Service{
		store:       store,
		normalizer:  NewNormalizer(NewResolver(store)),
		subsDB:      cfg.GetSubcontractorsDB(),
		itemsDB:     cfg.GetSubItineraryDB(),
		tasksDB:     cfg.GetTaskDB(),
		concurrency: cfg.GetTaskLookupConcurrency(),
		log:         log,
	}
}

// ListSubcontractors returns every subcontractor as a summary. When name is
// set only titles equal to it, ignoring case, are kept.
func (s *Service) ListSubcontractors(ctx context.Context, name string) ([]transport.Summary, error) {
	records, err := s.store.Query(ctx, s.subsDB)
	if err != nil {
		return nil, apperr.Remote("failed to query subcontractors", err).WithOp("itinerary.ListSubcontractors")
	}

	summaries := make([]transport.Summary, 0, len(records))
	for i := range records {
		summary := ToSummary(&records[i])
		if name != "" && !strings.EqualFold(summary.Name, name) {
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// ListItemsBySubcontractor returns the sub-itinerary items linked to a
// subcontractor. The first incomplete item aborts the listing.
func (s *Service) ListItemsBySubcontractor(ctx context.Context, subcontractorID string) ([]transport.ItineraryItemSummary, error) {
	records, err := s.store.Query(ctx, s.itemsDB)
	if err != nil {
		return nil, apperr.Remote("failed to query sub-itinerary items", err).WithOp("itinerary.ListItemsBySubcontractor")
	}

	items := record.FilterByRelationMember(records, PropSubcontractor, subcontractorID)
	s.log.WithContext(ctx).Debug("sub-itinerary items matched", "subcontractor_id", subcontractorID, "matched", len(items), "total", len(records))

	return s.normalizer.ToItinerarySummaries(ctx, items, s.tasksDB, s.concurrency)
}

// UpdateItemStatus replaces the status label of an item.
func (s *Service) UpdateItemStatus(ctx context.Context, itemID, status string) error {
	rec, err := s.store.Update(ctx, itemID, StatusUpdate(status))
	if err != nil {
		return apperr.Remote(fmt.Sprintf("failed to update item %s", itemID), err).WithOp("itinerary.UpdateItemStatus")
	}
	if rec == nil {
		return apperr.Upstream(fmt.Sprintf("failed to update item %s", itemID)).WithOp("itinerary.UpdateItemStatus")
	}

	s.log.WithContext(ctx).Info("item status updated", "item_id", itemID, "status", status)
	return nil
}

// CreateItineraryItem adds a sub-itinerary item and returns its id.
func (s *Service) CreateItineraryItem(ctx context.Context, subcontractorID, taskID, status string) (string, error) {
	rec, err := s.store.Create(ctx, s.itemsDB, ItineraryCreate(subcontractorID, taskID, status))
	if err != nil {
		return "", apperr.Remote("failed to create sub-itinerary item", err).WithOp("itinerary.CreateItineraryItem")
	}
	if rec == nil {
		return "", apperr.Upstream("failed to create sub-itinerary item").WithOp("itinerary.CreateItineraryItem")
	}

	s.log.WithContext(ctx).Info("sub-itinerary item created", "item_id", rec.ID, "subcontractor_id", subcontractorID, "task_id", taskID)
	return rec.ID, nil
}

// ArchiveItem moves an item to the trash.
func (s *Service) ArchiveItem(ctx context.Context, itemID string) error {
	rec, err := s.store.Archive(ctx, itemID)
	if err != nil {
		return apperr.Remote(fmt.Sprintf("failed to archive item %s", itemID), err).WithOp("itinerary.ArchiveItem")
	}
	if rec == nil {
		return apperr.Upstream(fmt.Sprintf("failed to archive item %s", itemID)).WithOp("itinerary.ArchiveItem")
	}

	s.log.WithContext(ctx).Info("item archived", "item_id", itemID)
	return nil
}

// Ping checks that the remote store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return apperr.Unavailable("record store unavailable", err)
	}
	return nil
}
