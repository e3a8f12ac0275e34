package domain

import (
	"strings"
	"time"

	"staybook-server/internal/infra/utils"
)

// FieldType is a primitive kind registered in the catalog. The name is the
// canonical lower-case identifier field definitions reference; the rule
// schema declares which generic rule keys definitions of this type accept.
type FieldType struct {
	ID          ID
	Name        string
	DisplayName string
	RuleSchema  RuleSchema
	IsActive    bool
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// reservedTypeNames are system-owned: they can never be deactivated, renamed
// or deleted because the validation engine dispatches on them.
var reservedTypeNames = map[string]struct{}{
	"text":         {},
	"number":       {},
	"boolean":      {},
	"date":         {},
	"select":       {},
	"multi_select": {},
	"file":         {},
	"textarea":     {},
	"email":        {},
	"url":          {},
}

func IsReservedTypeName(name string) bool {
	_, ok := reservedTypeNames[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func (t *FieldType) Kind() FieldKind {
	return KindFromTypeName(t.Name)
}

func (t *FieldType) IsReserved() bool {
	return IsReservedTypeName(t.Name)
}

func (t *FieldType) IsDeleted() bool {
	return t.DeletedAt != nil
}

func (t *FieldType) Deactivate() {
	t.IsActive = false
	t.UpdatedAt = time.Now()
}

func (t *FieldType) Activate() {
	t.IsActive = true
	t.UpdatedAt = time.Now()
}

func (t *FieldType) SoftDelete() {
	now := time.Now()
	t.DeletedAt = &now
	t.IsActive = false
	t.UpdatedAt = now
}

// ReservedFieldTypes returns fresh instances of the system field types with
// their rule schemas, ready for seeding.
func ReservedFieldTypes() []FieldType {
	specs := []struct {
		name        string
		displayName string
		schema      RuleSchema
	}{
		{"text", "Text", RuleSchema{RuleMinLength, RuleMaxLength, RulePattern}},
		{"textarea", "Text Area", RuleSchema{RuleMinLength, RuleMaxLength, RulePattern}},
		{"number", "Number", RuleSchema{RuleMin, RuleMax}},
		{"boolean", "Yes / No", nil},
		{"date", "Date", nil},
		{"email", "Email Address", RuleSchema{RuleMaxLength, RulePattern}},
		{"url", "Web Address", RuleSchema{RuleMaxLength, RulePattern}},
		{"select", "Single Select", nil},
		{"multi_select", "Multi Select", nil},
		{"file", "File", nil},
	}

	result := make([]FieldType, 0, len(specs))
	for _, spec := range specs {
		fieldType, _ := NewFieldTypeBuilder().
			WithName(spec.name).
			WithDisplayName(spec.displayName).
			WithRuleSchema(spec.schema).
			Build()
		result = append(result, fieldType)
	}
	return result
}

func NewFieldTypeBuilder() *fieldTypeBuilder {
	return &fieldTypeBuilder{}
}

type fieldTypeBuilder struct {
	actions []fieldTypeHandler
}

type fieldTypeHandler func(t *FieldType) error

func (b *fieldTypeBuilder) WithName(name string) *fieldTypeBuilder {
	b.actions = append(b.actions, func(t *FieldType) error {
		t.Name = strings.ToLower(strings.TrimSpace(name))
		return nil
	})
	return b
}

func (b *fieldTypeBuilder) WithDisplayName(displayName string) *fieldTypeBuilder {
	b.actions = append(b.actions, func(t *FieldType) error {
		t.DisplayName = displayName
		return nil
	})
	return b
}

func (b *fieldTypeBuilder) WithRuleSchema(schema RuleSchema) *fieldTypeBuilder {
	b.actions = append(b.actions, func(t *FieldType) error {
		t.RuleSchema = schema
		return nil
	})
	return b
}

func (b *fieldTypeBuilder) Build() (FieldType, error) {
	now := time.Now()
	result := FieldType{
		ID:        ID(utils.GenerateUUID()),
		IsActive:  true,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return FieldType{}, err
		}
	}

	return result, nil
}
