package internal

import (
	"time"

	"staybook-server/internal/shared_kernel/domain"
)

type StoredValue struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	InstanceID        string    `json:"instance_id" gorm:"index;uniqueIndex:idx_instance_field,priority:1;not null"`
	FieldDefinitionID string    `json:"field_definition_id" gorm:"index;uniqueIndex:idx_instance_field,priority:2;not null"`
	RawValue          string    `json:"raw_value"`
	Orphaned          bool      `json:"orphaned"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (StoredValue) TableName() string {
	return "stored_values"
}

func (v StoredValue) ToDomain() domain.StoredValue {
	return domain.StoredValue{
		ID:                domain.ID(v.ID),
		InstanceID:        domain.ID(v.InstanceID),
		FieldDefinitionID: domain.ID(v.FieldDefinitionID),
		RawValue:          v.RawValue,
		Orphaned:          v.Orphaned,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func FromStoredValue(value domain.StoredValue) StoredValue {
	return StoredValue{
		ID:                value.ID.String(),
		InstanceID:        value.InstanceID.String(),
		FieldDefinitionID: value.FieldDefinitionID.String(),
		RawValue:          value.RawValue,
		Orphaned:          value.Orphaned,
		CreatedAt:         value.CreatedAt,
		UpdatedAt:         value.UpdatedAt,
	}
}
