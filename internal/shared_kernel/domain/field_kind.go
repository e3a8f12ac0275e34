package domain

import "strings"

// FieldKind is the canonical primitive kind behind a field type. Values are
// stored as uninterpreted strings; the kind decides how a raw string is
// checked and interpreted at the read/write boundary.
type FieldKind string

const (
	KindText        FieldKind = "text"
	KindNumber      FieldKind = "number"
	KindBoolean     FieldKind = "boolean"
	KindDate        FieldKind = "date"
	KindEmail       FieldKind = "email"
	KindURL         FieldKind = "url"
	KindPhone       FieldKind = "phone"
	KindSelect      FieldKind = "select"
	KindMultiSelect FieldKind = "multi_select"
	KindFile        FieldKind = "file"
	KindTextarea    FieldKind = "textarea"
)

// kindAliases maps historical type names onto their canonical kind.
var kindAliases = map[string]FieldKind{
	"integer":  KindNumber,
	"datetime": KindDate,
}

// KindFromTypeName resolves a field type name to its kind. Unknown names
// degrade to free text so operator-defined types remain usable.
func KindFromTypeName(name string) FieldKind {
	canonical := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := kindAliases[canonical]; ok {
		return alias
	}

	switch kind := FieldKind(canonical); kind {
	case KindText, KindNumber, KindBoolean, KindDate, KindEmail, KindURL,
		KindPhone, KindSelect, KindMultiSelect, KindFile, KindTextarea:
		return kind
	default:
		return KindText
	}
}

func (k FieldKind) String() string {
	return string(k)
}

// RequiresOptions reports whether the kind only accepts values drawn from a
// declared option set.
func (k FieldKind) RequiresOptions() bool {
	return k == KindSelect || k == KindMultiSelect
}

// Rangeable reports whether the kind is exposed to search as a range filter.
func (k FieldKind) Rangeable() bool {
	return k == KindNumber || k == KindDate
}
