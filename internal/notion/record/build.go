package record

// MultiSelect builds a multi_select value with the given labels.
func MultiSelect(labels ...string) Property {
	options := make([]SelectOption, 0, len(labels))
	for _, label := range labels {
		options = append(options, SelectOption{Name: label})
	}
	return Property{Kind: KindMultiSelect, Options: options}
}

// Relation builds a relation value linking the given page ids.
func Relation(ids ...string) Property {
	refs := make([]RelationRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, RelationRef{ID: id})
	}
	return Property{Kind: KindRelation, Relation: refs}
}

// TitleText builds a title value holding a single text span.
func TitleText(content string) Property {
	return Property{
		Kind: KindTitle,
		Text: []RichText{{Type: "text", Text: &TextContent{Content: content}}},
	}
}
