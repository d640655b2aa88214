package record

// The accessors below never fail. A nil record, a missing property, a
// property of another kind and an empty payload all yield the zero value.

func (r *Record) property(name string, kind Kind) (Property, bool) {
	if r == nil || r.Properties == nil {
		return Property{}, false
	}
	prop, ok := r.Properties[name]
	if !ok || prop.Kind != kind {
		return Property{}, false
	}
	return prop, true
}

// Title returns the plain text of the first span of a title property, or ""
// when there is none.
func Title(r *Record, name string) string {
	prop, ok := r.property(name, KindTitle)
	if !ok || len(prop.Text) == 0 {
		return ""
	}
	span := prop.Text[0]
	if span.PlainText == "" && span.Text != nil {
		return span.Text.Content
	}
	return span.PlainText
}

// SelectLabel returns the first label of a multi_select property, falling
// back to a single select property of the same name.
func SelectLabel(r *Record, name string) (string, bool) {
	prop, ok := r.property(name, KindMultiSelect)
	if !ok {
		prop, ok = r.property(name, KindSelect)
	}
	if !ok || len(prop.Options) == 0 {
		return "", false
	}
	return prop.Options[0].Name, true
}

// RelationIDs returns the linked page ids in order. The result is never nil.
func RelationIDs(r *Record, name string) []string {
	prop, ok := r.property(name, KindRelation)
	if !ok {
		return []string{}
	}
	ids := make([]string, 0, len(prop.Relation))
	for _, ref := range prop.Relation {
		ids = append(ids, ref.ID)
	}
	return ids
}

// DateStart returns the start of a date property.
func DateStart(r *Record, name string) (string, bool) {
	prop, ok := r.property(name, KindDate)
	if !ok || prop.Date == nil {
		return "", false
	}
	return prop.Date.Start, true
}

// FilterByRelationMember returns, in input order, the records whose relation
// property name links to targetID. A record is included at most once.
func FilterByRelationMember(records []Record, name, targetID string) []Record {
	matched := make([]Record, 0)
	for i := range records {
		for _, id := range RelationIDs(&records[i], name) {
			if id == targetID {
				matched = append(matched, records[i])
				break
			}
		}
	}
	return matched
}
