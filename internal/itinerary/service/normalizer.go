package service

import (
	"context"
	"fmt"

	"itinerary_backend/internal/itinerary/transport"
	"itinerary_backend/internal/notion/record"
	"itinerary_backend/platform/apperr"

	"golang.org/x/sync/errgroup"
)

// ToSummary maps a record to its {id, name} summary.
func ToSummary(rec *record.Record) transport.Summary {
	if rec == nil {
		return transport.Summary{}
	}
	return transport.Summary{ID: rec.ID, Name: record.Title(rec, PropName)}
}

// Normalizer builds itinerary item summaries, resolving task names on the way.
type Normalizer struct {
	resolver *Resolver
}

// NewNormalizer creates a normalizer using resolver for task lookups.
func NewNormalizer(resolver *Resolver) *Normalizer {
	return &Normalizer{resolver: resolver}
}

// ToItinerarySummary flattens one sub-itinerary item. Items without a code,
// status or task are rejected with a KindIncomplete error naming the item.
// The task lookup happens before that check, so a failing lookup is reported
// first.
func (n *Normalizer) ToItinerarySummary(ctx context.Context, rec *record.Record, taskCollectionID string) (transport.ItineraryItemSummary, error) {
	summary := transport.ItineraryItemSummary{ID: rec.ID}

	summary.CodeNum = record.Title(rec, PropCodeNum)

	if status, ok := record.SelectLabel(rec, PropStatus); ok && status != "" {
		summary.Status = &status
	}

	if taskID, ok := RelationTarget(rec, PropTask); ok {
		summary.TaskID = &taskID
		name, err := n.resolver.TaskName(ctx, taskCollectionID, taskID)
		if err != nil {
			return transport.ItineraryItemSummary{}, err
		}
		summary.TaskName = &name
	}

	if date, ok := record.DateStart(rec, PropDate); ok {
		summary.Date = &date
	}

	if missing := missingRequired(summary); len(missing) > 0 {
		return transport.ItineraryItemSummary{}, apperr.
			Incomplete(fmt.Sprintf("empty required property on item %s", rec.ID)).
			WithDetails(map[string]interface{}{"item_id": rec.ID, "missing": missing})
	}

	return summary, nil
}

// ToItinerarySummaries normalizes records in order. With limit > 1 up to
// limit task lookups run at once; the error returned is still the one of the
// earliest failing record.
func (n *Normalizer) ToItinerarySummaries(ctx context.Context, records []record.Record, taskCollectionID string, limit int) ([]transport.ItineraryItemSummary, error) {
	results := make([]transport.ItineraryItemSummary, len(records))

	if limit <= 1 {
		for i := range records {
			summary, err := n.ToItinerarySummary(ctx, &records[i], taskCollectionID)
			if err != nil {
				return nil, err
			}
			results[i] = summary
		}
		return results, nil
	}

	errs := make([]error, len(records))
	var g errgroup.Group
	g.SetLimit(limit)
	for i := range records {
		i := i
		g.Go(func() error {
			results[i], errs[i] = n.ToItinerarySummary(ctx, &records[i], taskCollectionID)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func missingRequired(summary transport.ItineraryItemSummary) []string {
	missing := make([]string, 0, 3)
	if summary.CodeNum == "" {
		missing = append(missing, PropCodeNum)
	}
	if summary.Status == nil {
		missing = append(missing, PropStatus)
	}
	if summary.TaskID == nil {
		missing = append(missing, PropTask)
	}
	return missing
}
