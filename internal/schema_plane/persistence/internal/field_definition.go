package internal

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"staybook-server/internal/shared_kernel/domain"
)

type FieldDefinition struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	// Name uniqueness per category is enforced by the service so a
	// soft-deleted row does not block reusing its name.
	CategoryID   string         `json:"category_id" gorm:"index:idx_category_field_name,priority:1;not null"`
	FieldTypeID  string         `json:"field_type_id" gorm:"index;not null"`
	FieldName    string         `json:"field_name" gorm:"index:idx_category_field_name,priority:2;not null"`
	DisplayName  string         `json:"display_name"`
	Description  string         `json:"description"`
	Options      datatypes.JSON `json:"options"`
	CustomRules  datatypes.JSON `json:"custom_rules"`
	IsRequired   bool           `json:"is_required"`
	IsSearchable bool           `json:"is_searchable"`
	IsPublic     bool           `json:"is_public"`
	SortOrder    int            `json:"sort_order"`
	CategoryTag  string         `json:"category_tag"`
	UnitScoped   bool           `json:"unit_scoped"`
	Version      int            `json:"version"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    *time.Time     `json:"deleted_at"`
}

func (FieldDefinition) TableName() string {
	return "field_definitions"
}

// ToDomain parses the JSON option and rule payloads once, at the load
// boundary, so the validation engine never touches raw JSON.
func (d FieldDefinition) ToDomain(fieldType domain.FieldType) (domain.FieldDefinition, error) {
	var options domain.OptionSet
	if len(d.Options) > 0 {
		if err := json.Unmarshal(d.Options, &options); err != nil {
			return domain.FieldDefinition{}, fmt.Errorf("parsing options of field %q: %w", d.FieldName, err)
		}
	}

	var rules domain.RuleSet
	if len(d.CustomRules) > 0 {
		if err := json.Unmarshal(d.CustomRules, &rules); err != nil {
			return domain.FieldDefinition{}, fmt.Errorf("parsing custom rules of field %q: %w", d.FieldName, err)
		}
	}

	return domain.FieldDefinition{
		ID:           domain.ID(d.ID),
		CategoryID:   domain.ID(d.CategoryID),
		FieldTypeID:  domain.ID(d.FieldTypeID),
		Type:         fieldType,
		FieldName:    d.FieldName,
		DisplayName:  d.DisplayName,
		Description:  d.Description,
		Options:      options,
		CustomRules:  rules,
		IsRequired:   d.IsRequired,
		IsSearchable: d.IsSearchable,
		IsPublic:     d.IsPublic,
		SortOrder:    d.SortOrder,
		CategoryTag:  d.CategoryTag,
		UnitScoped:   d.UnitScoped,
		Version:      d.Version,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		DeletedAt:    d.DeletedAt,
	}, nil
}

func FromFieldDefinition(value domain.FieldDefinition) (FieldDefinition, error) {
	var options datatypes.JSON
	if len(value.Options) > 0 {
		data, err := json.Marshal(value.Options)
		if err != nil {
			return FieldDefinition{}, fmt.Errorf("serializing options: %w", err)
		}
		options = datatypes.JSON(data)
	}

	var rules datatypes.JSON
	if !value.CustomRules.IsZero() {
		data, err := json.Marshal(value.CustomRules)
		if err != nil {
			return FieldDefinition{}, fmt.Errorf("serializing custom rules: %w", err)
		}
		rules = datatypes.JSON(data)
	}

	return FieldDefinition{
		ID:           value.ID.String(),
		CategoryID:   value.CategoryID.String(),
		FieldTypeID:  value.FieldTypeID.String(),
		FieldName:    value.FieldName,
		DisplayName:  value.DisplayName,
		Description:  value.Description,
		Options:      options,
		CustomRules:  rules,
		IsRequired:   value.IsRequired,
		IsSearchable: value.IsSearchable,
		IsPublic:     value.IsPublic,
		SortOrder:    value.SortOrder,
		CategoryTag:  value.CategoryTag,
		UnitScoped:   value.UnitScoped,
		Version:      value.Version,
		CreatedAt:    value.CreatedAt,
		UpdatedAt:    value.UpdatedAt,
		DeletedAt:    value.DeletedAt,
	}, nil
}
