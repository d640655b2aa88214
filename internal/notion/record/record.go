// Package record models pages returned by the Notion API and the property
// values they carry. Property payloads are decoded into a closed set of kinds;
// anything else is kept as KindUnknown and ignored by the accessors.
package record

import (
	"github.com/goccy/go-json"
)

// Kind is the property type discriminator. Its value doubles as the JSON key
// holding the payload, as in {"type": "relation", "relation": [...]}.
type Kind string

const (
	KindUnknown     Kind = ""
	KindTitle       Kind = "title"
	KindRichText    Kind = "rich_text"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multi_select"
	KindRelation    Kind = "relation"
	KindDate        Kind = "date"
)

// knownKinds is also the order used to infer a kind when "type" is missing.
var knownKinds = []Kind{KindTitle, KindRichText, KindSelect, KindMultiSelect, KindRelation, KindDate}

func (k Kind) known() bool {
	for _, kind := range knownKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Record is a single page in a Notion database.
type Record struct {
	Object     string     `json:"object,omitempty"`
	ID         string     `json:"id"`
	URL        string     `json:"url,omitempty"`
	Archived   bool       `json:"archived,omitempty"`
	Parent     *Parent    `json:"parent,omitempty"`
	Properties Properties `json:"properties"`
}

// Parent identifies the database a page belongs to.
type Parent struct {
	Type       string `json:"type,omitempty"`
	DatabaseID string `json:"database_id,omitempty"`
}

// Properties maps a property name to its value.
type Properties map[string]Property

// Property is one typed property value. Only the payload matching Kind is set:
// Text for title and rich_text, Options for select (zero or one entry) and
// multi_select, Relation for relation, Date for date.
type Property struct {
	ID       string
	Kind     Kind
	Text     []RichText
	Options  []SelectOption
	Relation []RelationRef
	Date     *DateValue
}

// RichText is one span of a title or rich_text property.
type RichText struct {
	Type      string       `json:"type,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
}

// TextContent is the writable part of a text span.
type TextContent struct {
	Content string `json:"content"`
}

// SelectOption is a select or multi_select label.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// RelationRef points at a page in another database.
type RelationRef struct {
	ID string `json:"id"`
}

// DateValue is a date property payload. Start and End are ISO-8601 strings.
type DateValue struct {
	Start    string  `json:"start"`
	End      *string `json:"end,omitempty"`
	TimeZone *string `json:"time_zone,omitempty"`
}

// UnmarshalJSON decodes a property without ever failing: missing, null or
// mistyped payloads leave the property empty. When the "type" discriminator
// is absent the kind is inferred from the first known payload key present.
func (p *Property) UnmarshalJSON(data []byte) error {
	*p = Property{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return nil
	}

	if id, ok := raw["id"]; ok {
		_ = json.Unmarshal(id, &p.ID)
	}

	var kind Kind
	if t, ok := raw["type"]; ok {
		_ = json.Unmarshal(t, &kind)
	}
	if !kind.known() {
		kind = inferKind(raw)
	}
	p.Kind = kind

	payload, ok := raw[string(kind)]
	if !ok || len(payload) == 0 {
		return nil
	}

	switch kind {
	case KindTitle, KindRichText:
		if json.Unmarshal(payload, &p.Text) != nil {
			p.Text = nil
		}
	case KindSelect:
		var opt *SelectOption
		if json.Unmarshal(payload, &opt) == nil && opt != nil {
			p.Options = []SelectOption{*opt}
		}
	case KindMultiSelect:
		if json.Unmarshal(payload, &p.Options) != nil {
			p.Options = nil
		}
	case KindRelation:
		if json.Unmarshal(payload, &p.Relation) != nil {
			p.Relation = nil
		}
	case KindDate:
		if json.Unmarshal(payload, &p.Date) != nil {
			p.Date = nil
		}
	}

	return nil
}

func inferKind(raw map[string]json.RawMessage) Kind {
	for _, kind := range knownKinds {
		if _, ok := raw[string(kind)]; ok {
			return kind
		}
	}
	return KindUnknown
}

// MarshalJSON encodes the property in the shape the pages endpoints accept:
// a single key named after the kind. Empty lists encode as [] so that a
// write clears the property instead of skipping it.
func (p Property) MarshalJSON() ([]byte, error) {
	var payload interface{}

	switch p.Kind {
	case KindTitle, KindRichText:
		payload = nonNil(p.Text)
	case KindSelect:
		if len(p.Options) > 0 {
			payload = p.Options[0]
		}
	case KindMultiSelect:
		payload = nonNil(p.Options)
	case KindRelation:
		payload = nonNil(p.Relation)
	case KindDate:
		payload = p.Date
	default:
		return []byte("{}"), nil
	}

	return json.Marshal(map[string]interface{}{string(p.Kind): payload})
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
