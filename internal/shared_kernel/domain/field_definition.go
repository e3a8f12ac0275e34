package domain

import (
	"strings"
	"time"

	"staybook-server/internal/infra/utils"
)

// FieldDefinition is a named attribute an operator declared on a property or
// unit category. Its Type is resolved at load time so consumers never chase
// the FieldTypeID themselves.
type FieldDefinition struct {
	ID           ID
	CategoryID   ID
	FieldTypeID  ID
	Type         FieldType
	FieldName    string
	DisplayName  string
	Description  string
	Options      OptionSet
	CustomRules  RuleSet
	IsRequired   bool
	IsSearchable bool
	IsPublic     bool
	SortOrder    int
	CategoryTag  string
	UnitScoped   bool
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

func (d *FieldDefinition) Kind() FieldKind {
	return d.Type.Kind()
}

func (d *FieldDefinition) IsDeleted() bool {
	return d.DeletedAt != nil
}

func (d *FieldDefinition) SoftDelete() {
	now := time.Now()
	d.DeletedAt = &now
	d.UpdatedAt = now
}

// SameFieldName compares machine keys the way uniqueness is enforced:
// case-insensitively.
func (d *FieldDefinition) SameFieldName(name string) bool {
	return strings.EqualFold(d.FieldName, strings.TrimSpace(name))
}

func NewFieldDefinitionBuilder() *fieldDefinitionBuilder {
	return &fieldDefinitionBuilder{}
}

type fieldDefinitionBuilder struct {
	actions []fieldDefinitionHandler
}

type fieldDefinitionHandler func(d *FieldDefinition) error

func (b *fieldDefinitionBuilder) WithCategoryID(id ID) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.CategoryID = id
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithType(fieldType FieldType) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.FieldTypeID = fieldType.ID
		d.Type = fieldType
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithFieldName(name string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.FieldName = strings.TrimSpace(name)
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithDisplayName(displayName string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.DisplayName = displayName
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithDescription(description string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.Description = description
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithOptions(options OptionSet) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.Options = options
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithCustomRules(rules RuleSet) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.CustomRules = rules
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithRequired(required bool) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.IsRequired = required
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithSearchable(searchable bool) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.IsSearchable = searchable
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithPublic(public bool) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.IsPublic = public
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithSortOrder(order int) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.SortOrder = order
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithCategoryTag(tag string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.CategoryTag = tag
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithUnitScoped(unitScoped bool) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.UnitScoped = unitScoped
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) Build() (FieldDefinition, error) {
	now := time.Now()
	result := FieldDefinition{
		ID:        ID(utils.GenerateUUID()),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return FieldDefinition{}, err
		}
	}

	return result, nil
}
