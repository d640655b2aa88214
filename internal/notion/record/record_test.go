package record

import (
	"testing"

	"github.com/goccy/go-json"
)

const itemJSON = `{
	"object": "page",
	"id": "r1",
	"archived": false,
	"parent": {"type": "database_id", "database_id": "db-items"},
	"properties": {
		"code_num": {"id": "a1", "type": "title", "title": [{"type": "text", "text": {"content": "C-01"}, "plain_text": "C-01"}]},
		"status": {"id": "a2", "type": "multi_select", "multi_select": [{"id": "o1", "name": "DONE", "color": "green"}]},
		"task": {"id": "a3", "type": "relation", "relation": [{"id": "t1"}], "has_more": false},
		"subcontractor": {"id": "a4", "type": "relation", "relation": [{"id": "s1"}, {"id": "s2"}]},
		"date": {"id": "a5", "type": "date", "date": {"start": "2024-01-01", "end": null, "time_zone": null}},
		"phase": {"id": "a6", "type": "select", "select": {"name": "Foundation"}},
		"owner": {"id": "a7", "type": "people", "people": []}
	}
}`

func decodeRecord(t *testing.T, data string) *Record {
	t.Helper()
	var rec Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	return &rec
}

func TestDecode_TypedProperties(t *testing.T) {
	rec := decodeRecord(t, itemJSON)

	if rec.ID != "r1" {
		t.Fatalf("expected id r1, got %q", rec.ID)
	}
	if rec.Parent == nil || rec.Parent.DatabaseID != "db-items" {
		t.Fatalf("expected parent database db-items, got %+v", rec.Parent)
	}
	if got := Title(rec, "code_num"); got != "C-01" {
		t.Fatalf("expected code_num C-01, got %q", got)
	}
	if got, ok := SelectLabel(rec, "status"); !ok || got != "DONE" {
		t.Fatalf("expected status DONE, got %q (%v)", got, ok)
	}
	if got, ok := SelectLabel(rec, "phase"); !ok || got != "Foundation" {
		t.Fatalf("expected single select Foundation, got %q (%v)", got, ok)
	}
	if got := RelationIDs(rec, "subcontractor"); len(got) != 2 || got[0] != "s1" || got[1] != "s2" {
		t.Fatalf("expected [s1 s2], got %v", got)
	}
	if got, ok := DateStart(rec, "date"); !ok || got != "2024-01-01" {
		t.Fatalf("expected date 2024-01-01, got %q (%v)", got, ok)
	}
	if rec.Properties["owner"].Kind != KindUnknown {
		t.Fatalf("expected unsupported kind to decode as unknown, got %q", rec.Properties["owner"].Kind)
	}
}

func TestDecode_InfersKindWithoutType(t *testing.T) {
	rec := decodeRecord(t, `{"id":"r1","properties":{
		"code_num":{"title":[{"plain_text":"C-01"}]},
		"status":{"multi_select":[{"name":"DONE"}]},
		"task":{"relation":[{"id":"t1"}]},
		"date":{"date":{"start":"2024-01-01"}}
	}}`)

	if Title(rec, "code_num") != "C-01" {
		t.Fatal("expected title to be inferred")
	}
	if label, ok := SelectLabel(rec, "status"); !ok || label != "DONE" {
		t.Fatal("expected multi_select to be inferred")
	}
	if ids := RelationIDs(rec, "task"); len(ids) != 1 || ids[0] != "t1" {
		t.Fatalf("expected relation to be inferred, got %v", ids)
	}
	if start, ok := DateStart(rec, "date"); !ok || start != "2024-01-01" {
		t.Fatal("expected date to be inferred")
	}
}

func TestDecode_MalformedPayloadsDegrade(t *testing.T) {
	rec := decodeRecord(t, `{"id":"r1","properties":{
		"Name":{"type":"title","title":"not-a-list"},
		"status":{"type":"multi_select","multi_select":null},
		"task":{"type":"relation","relation":{"id":"t1"}},
		"date":{"type":"date","date":null},
		"phase":{"type":"select","select":null},
		"broken":null
	}}`)

	if Title(rec, "Name") != "" {
		t.Fatal("expected empty title for mistyped payload")
	}
	if _, ok := SelectLabel(rec, "status"); ok {
		t.Fatal("expected no status label for null multi_select")
	}
	if _, ok := SelectLabel(rec, "phase"); ok {
		t.Fatal("expected no label for null select")
	}
	if ids := RelationIDs(rec, "task"); ids == nil || len(ids) != 0 {
		t.Fatalf("expected empty non-nil relation ids, got %v", ids)
	}
	if _, ok := DateStart(rec, "date"); ok {
		t.Fatal("expected no date for null date")
	}
}

func TestAccessors_ToleranceAtEveryLevel(t *testing.T) {
	cases := map[string]*Record{
		"nil record":      nil,
		"nil properties":  {ID: "r1"},
		"empty container": {ID: "r1", Properties: Properties{"Name": {Kind: KindTitle}}},
		"wrong kind":      {ID: "r1", Properties: Properties{"Name": Relation("x")}},
	}

	for name, rec := range cases {
		t.Run(name, func(t *testing.T) {
			if got := Title(rec, "Name"); got != "" {
				t.Errorf("Title = %q, want empty", got)
			}
			if _, ok := SelectLabel(rec, "Name"); ok {
				t.Error("SelectLabel reported a label")
			}
			if ids := RelationIDs(rec, "absent"); ids == nil || len(ids) != 0 {
				t.Errorf("RelationIDs = %v, want empty", ids)
			}
			if _, ok := DateStart(rec, "Name"); ok {
				t.Error("DateStart reported a date")
			}
		})
	}
}

func TestTitle_FirstSpanOnly(t *testing.T) {
	rec := decodeRecord(t, `{"id":"r1","properties":{"Name":{"title":[{"plain_text":"Acme "},{"plain_text":"Builders"}]}}}`)
	if got := Title(rec, "Name"); got != "Acme " {
		t.Fatalf("expected first span only, got %q", got)
	}
}

func TestFilterByRelationMember(t *testing.T) {
	itemA := Record{ID: "a", Properties: Properties{"subcontractor": Relation("s1")}}
	itemB := Record{ID: "b", Properties: Properties{"subcontractor": Relation("s2")}}
	itemC := Record{ID: "c", Properties: Properties{"subcontractor": Relation("s1", "s1", "s3")}}
	itemD := Record{ID: "d"}

	got := FilterByRelationMember([]Record{itemA, itemB, itemC, itemD}, "subcontractor", "s1")
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("expected order [a c], got [%s %s]", got[0].ID, got[1].ID)
	}

	got = FilterByRelationMember([]Record{itemA, itemB}, "subcontractor", "s1")
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected [a], got %v", got)
	}

	if got := FilterByRelationMember(nil, "subcontractor", "s1"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestMarshal_WriteShapes(t *testing.T) {
	tests := []struct {
		name string
		prop Property
		want string
	}{
		{"multi_select", MultiSelect("IN_PROGRESS"), `{"multi_select":[{"name":"IN_PROGRESS"}]}`},
		{"empty multi_select", MultiSelect(), `{"multi_select":[]}`},
		{"relation", Relation("t1"), `{"relation":[{"id":"t1"}]}`},
		{"title", TitleText("Nuevo"), `{"title":[{"type":"text","text":{"content":"Nuevo"}}]}`},
		{"empty select", Property{Kind: KindSelect}, `{"select":null}`},
		{"unknown", Property{}, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.prop)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
