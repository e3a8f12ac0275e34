package internal

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"staybook-server/internal/shared_kernel/domain"
)

type FieldType struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"uniqueIndex;not null"`
	DisplayName string         `json:"display_name"`
	RuleSchema  datatypes.JSON `json:"validation_rule_schema"`
	IsActive    bool           `json:"is_active"`
	Version     int            `json:"version"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   *time.Time     `json:"deleted_at"`
}

func (FieldType) TableName() string {
	return "field_types"
}

func (t FieldType) ToDomain() (domain.FieldType, error) {
	var schema domain.RuleSchema
	if len(t.RuleSchema) > 0 {
		if err := json.Unmarshal(t.RuleSchema, &schema); err != nil {
			return domain.FieldType{}, fmt.Errorf("parsing rule schema of field type %q: %w", t.Name, err)
		}
	}

	return domain.FieldType{
		ID:          domain.ID(t.ID),
		Name:        t.Name,
		DisplayName: t.DisplayName,
		RuleSchema:  schema,
		IsActive:    t.IsActive,
		Version:     t.Version,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		DeletedAt:   t.DeletedAt,
	}, nil
}

func FromFieldType(value domain.FieldType) (FieldType, error) {
	var schema datatypes.JSON
	if len(value.RuleSchema) > 0 {
		data, err := json.Marshal(value.RuleSchema)
		if err != nil {
			return FieldType{}, fmt.Errorf("serializing rule schema: %w", err)
		}
		schema = datatypes.JSON(data)
	}

	return FieldType{
		ID:          value.ID.String(),
		Name:        value.Name,
		DisplayName: value.DisplayName,
		RuleSchema:  schema,
		IsActive:    value.IsActive,
		Version:     value.Version,
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
		DeletedAt:   value.DeletedAt,
	}, nil
}
