package domain

// RuleKey names one generic validation rule a field type may accept.
type RuleKey string

const (
	RuleMinLength RuleKey = "minLength"
	RuleMaxLength RuleKey = "maxLength"
	RuleMin       RuleKey = "min"
	RuleMax       RuleKey = "max"
	RulePattern   RuleKey = "pattern"
)

// RuleSchema declares which rule keys a field type accepts. It is data owned
// by the field type, not behavior.
type RuleSchema []RuleKey

func (s RuleSchema) Allows(key RuleKey) bool {
	for _, k := range s {
		if k == key {
			return true
		}
	}
	return false
}

// RuleSet holds the concrete rule values configured on one field definition.
// Only keys permitted by the owning type's RuleSchema may be set. The zero
// value means "no custom rules".
type RuleSet struct {
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Pattern   *string  `json:"pattern,omitempty"`
}

// Keys lists the rule keys that carry a value in this set.
func (r RuleSet) Keys() []RuleKey {
	var keys []RuleKey
	if r.MinLength != nil {
		keys = append(keys, RuleMinLength)
	}
	if r.MaxLength != nil {
		keys = append(keys, RuleMaxLength)
	}
	if r.Min != nil {
		keys = append(keys, RuleMin)
	}
	if r.Max != nil {
		keys = append(keys, RuleMax)
	}
	if r.Pattern != nil {
		keys = append(keys, RulePattern)
	}
	return keys
}

func (r RuleSet) IsZero() bool {
	return len(r.Keys()) == 0
}
