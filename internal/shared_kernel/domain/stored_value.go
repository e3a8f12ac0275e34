package domain

import (
	"time"

	"staybook-server/internal/infra/utils"
)

// StoredValue is the raw string payload of one field definition for one
// concrete instance (a unit or property). At most one row exists per
// (instance, field definition) pair; writes update in place.
type StoredValue struct {
	ID                ID
	InstanceID        ID
	FieldDefinitionID ID
	RawValue          string
	// Orphaned marks values whose option key was removed by a forced
	// migration. The raw value is kept for review, never deleted.
	Orphaned  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (v *StoredValue) UpdateRawValue(raw string) {
	v.RawValue = raw
	v.Orphaned = false
	v.UpdatedAt = time.Now()
}

func NewStoredValue(instanceID, fieldDefinitionID ID, raw string) StoredValue {
	now := time.Now()
	return StoredValue{
		ID:                ID(utils.GenerateUUID()),
		InstanceID:        instanceID,
		FieldDefinitionID: fieldDefinitionID,
		RawValue:          raw,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
