package domain

// FilterType tells the search component how a searchable field should be
// queried.
type FilterType string

const (
	FilterTypeRange    FilterType = "range"
	FilterTypeExact    FilterType = "exact"
	FilterTypeContains FilterType = "contains"
	FilterTypeBoolean  FilterType = "boolean"
	FilterTypeSelect   FilterType = "select"
)

// SearchFilterDescriptor is the derived projection of one searchable field
// definition. It is recomputed on demand and never persisted.
type SearchFilterDescriptor struct {
	FieldName   string
	DisplayName string
	FilterType  FilterType
	Options     OptionSet
}

// FilterTypeForKind maps a field kind onto its search filter shape.
func FilterTypeForKind(kind FieldKind) FilterType {
	switch {
	case kind.Rangeable():
		return FilterTypeRange
	case kind == KindBoolean:
		return FilterTypeBoolean
	case kind.RequiresOptions():
		return FilterTypeSelect
	default:
		return FilterTypeContains
	}
}
