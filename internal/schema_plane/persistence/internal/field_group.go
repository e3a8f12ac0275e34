package internal

import (
	"time"

	"staybook-server/internal/shared_kernel/domain"
)

type FieldGroup struct {
	ID                  string    `json:"id" gorm:"primaryKey"`
	CategoryID          string    `json:"category_id" gorm:"index;not null"`
	GroupName           string    `json:"group_name" gorm:"not null"`
	DisplayName         string    `json:"display_name"`
	Description         string    `json:"description"`
	SortOrder           int       `json:"sort_order"`
	IsCollapsible       bool      `json:"is_collapsible"`
	IsExpandedByDefault bool      `json:"is_expanded_by_default"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (FieldGroup) TableName() string {
	return "field_groups"
}

func (g FieldGroup) ToDomain() domain.FieldGroup {
	return domain.FieldGroup{
		ID:                  domain.ID(g.ID),
		CategoryID:          domain.ID(g.CategoryID),
		GroupName:           g.GroupName,
		DisplayName:         g.DisplayName,
		Description:         g.Description,
		SortOrder:           g.SortOrder,
		IsCollapsible:       g.IsCollapsible,
		IsExpandedByDefault: g.IsExpandedByDefault,
		CreatedAt:           g.CreatedAt,
		UpdatedAt:           g.UpdatedAt,
	}
}

func FromFieldGroup(value domain.FieldGroup) FieldGroup {
	return FieldGroup{
		ID:                  value.ID.String(),
		CategoryID:          value.CategoryID.String(),
		GroupName:           value.GroupName,
		DisplayName:         value.DisplayName,
		Description:         value.Description,
		SortOrder:           value.SortOrder,
		IsCollapsible:       value.IsCollapsible,
		IsExpandedByDefault: value.IsExpandedByDefault,
		CreatedAt:           value.CreatedAt,
		UpdatedAt:           value.UpdatedAt,
	}
}

// FieldGroupMembership keys on the field definition: the schema itself
// enforces single-valued membership.
type FieldGroupMembership struct {
	FieldDefinitionID string `json:"field_definition_id" gorm:"primaryKey"`
	FieldGroupID      string `json:"field_group_id" gorm:"index;not null"`
	SortOrder         int    `json:"sort_order"`
}

func (FieldGroupMembership) TableName() string {
	return "field_group_memberships"
}

func (m FieldGroupMembership) ToDomain() domain.FieldGroupMembership {
	return domain.FieldGroupMembership{
		FieldDefinitionID: domain.ID(m.FieldDefinitionID),
		FieldGroupID:      domain.ID(m.FieldGroupID),
		SortOrder:         m.SortOrder,
	}
}

func FromFieldGroupMembership(value domain.FieldGroupMembership) FieldGroupMembership {
	return FieldGroupMembership{
		FieldDefinitionID: value.FieldDefinitionID.String(),
		FieldGroupID:      value.FieldGroupID.String(),
		SortOrder:         value.SortOrder,
	}
}
