package service

import (
	"context"

	"itinerary_backend/internal/notion/record"
)

// RecordStore is the remote record store the itinerary domain reads and writes.
// Implementations return either a record (or list) or an error; a nil record
// with a nil error means the store produced no result.
type RecordStore interface {
	Query(ctx context.Context, collectionID string) ([]record.Record, error)
	Get(ctx context.Context, collectionID, recordID string) (*record.Record, error)
	Create(ctx context.Context, collectionID string, props record.Properties) (*record.Record, error)
	Update(ctx context.Context, recordID string, props record.Properties) (*record.Record, error)
	Archive(ctx context.Context, recordID string) (*record.Record, error)
	Ping(ctx context.Context) error
}

// Property names used by the subcontractor, sub-itinerary and task databases.
const (
	PropName          = "Name"
	PropCodeNum       = "code_num"
	PropStatus        = "status"
	PropTask          = "task"
	PropSubcontractor = "subcontractor"
	PropDate          = "date"
	PropTaskName      = "name"
)
