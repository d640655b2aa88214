package service

import (
	"context"
	"fmt"

	"itinerary_backend/internal/notion/record"
	"itinerary_backend/platform/apperr"
)

// RelationTarget returns the id of the first page linked by a relation property.
// An empty id counts as no link.
func RelationTarget(rec *record.Record, name string) (string, bool) {
	ids := record.RelationIDs(rec, name)
	if len(ids) == 0 || ids[0] == "" {
		return "", false
	}
	return ids[0], true
}

// Resolver follows relations into other collections.
type Resolver struct {
	store RecordStore
}

// NewResolver creates a resolver reading through store.
func NewResolver(store RecordStore) *Resolver {
	return &Resolver{store: store}
}

// TaskName looks up a task and returns its title. A failed lookup is an
// error; a task without a title yields "".
func (r *Resolver) TaskName(ctx context.Context, taskCollectionID, taskID string) (string, error) {
	task, err := r.store.Get(ctx, taskCollectionID, taskID)
	if err != nil {
		return "", apperr.Remote(fmt.Sprintf("failed to read task %s", taskID), err).WithOp("itinerary.TaskName")
	}
	return record.Title(task, PropTaskName), nil
}
