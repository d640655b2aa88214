package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"itinerary_backend/internal/notion/record"

	"github.com/goccy/go-json"
)

type storeCall struct {
	collectionID string
	recordID     string
	props        record.Properties
}

type fakeStore struct {
	mu          sync.Mutex
	collections map[string][]record.Record
	pages       map[string]*record.Record
	getErrs     map[string]error
	queryErr    error
	writeErr    error
	noResult    bool
	gets        []string
	creates     []storeCall
	updates     []storeCall
	archives    []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		collections: map[string][]record.Record{},
		pages:       map[string]*record.Record{},
		getErrs:     map[string]error{},
	}
}

func (f *fakeStore) Query(_ context.Context, collectionID string) ([]record.Record, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.collections[collectionID], nil
}

func (f *fakeStore) Get(_ context.Context, _ string, recordID string) (*record.Record, error) {
	f.mu.Lock()
	f.gets = append(f.gets, recordID)
	f.mu.Unlock()
	if err := f.getErrs[recordID]; err != nil {
		return nil, err
	}
	return f.pages[recordID], nil
}

func (f *fakeStore) Create(_ context.Context, collectionID string, props record.Properties) (*record.Record, error) {
	f.creates = append(f.creates, storeCall{collectionID: collectionID, props: props})
	return f.writeResult("new-item")
}

func (f *fakeStore) Update(_ context.Context, recordID string, props record.Properties) (*record.Record, error) {
	f.updates = append(f.updates, storeCall{recordID: recordID, props: props})
	return f.writeResult(recordID)
}

func (f *fakeStore) Archive(_ context.Context, recordID string) (*record.Record, error) {
	f.archives = append(f.archives, recordID)
	return f.writeResult(recordID)
}

func (f *fakeStore) Ping(context.Context) error {
	return f.queryErr
}

func (f *fakeStore) writeResult(id string) (*record.Record, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	if f.noResult {
		return nil, nil
	}
	return &record.Record{ID: id}, nil
}

var errRemote = errors.New("notion: service_unavailable (status 503)")

type testItineraryConfig struct {
	concurrency int
}

func (c testItineraryConfig) GetSubcontractorsDB() string   { return "db-subs" }
func (c testItineraryConfig) GetSubItineraryDB() string     { return "db-items" }
func (c testItineraryConfig) GetTaskDB() string             { return "db-tasks" }
func (c testItineraryConfig) GetTaskLookupConcurrency() int { return c.concurrency }

func mustRecord(t *testing.T, data string) record.Record {
	t.Helper()
	var rec record.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	return rec
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}
