package domain

import (
	"time"

	"staybook-server/internal/infra/utils"
)

// FieldGroup is a presentation-only bucket of field definitions within one
// category. Deleting a group never touches the definitions themselves.
type FieldGroup struct {
	ID                  ID
	CategoryID          ID
	GroupName           string
	DisplayName         string
	Description         string
	SortOrder           int
	IsCollapsible       bool
	IsExpandedByDefault bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// FieldGroupMembership links a field definition to its group. A definition
// belongs to at most one group; attaching elsewhere moves it.
type FieldGroupMembership struct {
	FieldDefinitionID ID
	FieldGroupID      ID
	SortOrder         int
}

func NewFieldGroupBuilder() *fieldGroupBuilder {
	return &fieldGroupBuilder{}
}

type fieldGroupBuilder struct {
	actions []fieldGroupHandler
}

type fieldGroupHandler func(g *FieldGroup) error

func (b *fieldGroupBuilder) WithCategoryID(id ID) *fieldGroupBuilder {
	b.actions = append(b.actions, func(g *FieldGroup) error {
		g.CategoryID = id
		return nil
	})
	return b
}

func (b *fieldGroupBuilder) WithGroupName(name string) *fieldGroupBuilder {
	b.actions = append(b.actions, func(g *FieldGroup) error {
		g.GroupName = name
		return nil
	})
	return b
}

func (b *fieldGroupBuilder) WithDisplayName(displayName string) *fieldGroupBuilder {
	b.actions = append(b.actions, func(g *FieldGroup) error {
		g.DisplayName = displayName
		return nil
	})
	return b
}

func (b *fieldGroupBuilder) WithDescription(description string) *fieldGroupBuilder {
	b.actions = append(b.actions, func(g *FieldGroup) error {
		g.Description = description
		return nil
	})
	return b
}

func (b *fieldGroupBuilder) WithSortOrder(order int) *fieldGroupBuilder {
	b.actions = append(b.actions, func(g *FieldGroup) error {
		g.SortOrder = order
		return nil
	})
	return b
}

func (b *fieldGroupBuilder) WithCollapsible(collapsible bool) *fieldGroupBuilder {
	b.actions = append(b.actions, func(g *FieldGroup) error {
		g.IsCollapsible = collapsible
		return nil
	})
	return b
}

func (b *fieldGroupBuilder) WithExpandedByDefault(expanded bool) *fieldGroupBuilder {
	b.actions = append(b.actions, func(g *FieldGroup) error {
		g.IsExpandedByDefault = expanded
		return nil
	})
	return b
}

func (b *fieldGroupBuilder) Build() (FieldGroup, error) {
	now := time.Now()
	result := FieldGroup{
		ID:        ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return FieldGroup{}, err
		}
	}

	return result, nil
}
