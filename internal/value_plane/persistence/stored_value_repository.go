package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"staybook-server/internal/infra/sql"
	schemausecases "staybook-server/internal/schema_plane/usecases"
	"staybook-server/internal/shared_kernel/domain"
	"staybook-server/internal/value_plane/persistence/internal"
	"staybook-server/internal/value_plane/usecases"
)

func NewStoredValueRepository(orm sql.ORM) (*SimpleStoredValueRepository, error) {
	err := orm.AutoMigrate(&internal.StoredValue{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleStoredValueRepository{orm: orm}, nil
}

var (
	_ usecases.StoredValueRepository      = (*SimpleStoredValueRepository)(nil)
	_ schemausecases.StoredValueInspector = (*SimpleStoredValueRepository)(nil)
)

type SimpleStoredValueRepository struct {
	orm sql.ORM
}

func (r *SimpleStoredValueRepository) Create(ctx context.Context, value domain.StoredValue) error {
	entity := internal.FromStoredValue(value)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleStoredValueRepository) Update(ctx context.Context, value domain.StoredValue) error {
	entity := internal.FromStoredValue(value)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (r *SimpleStoredValueRepository) GetByInstanceAndField(ctx context.Context, instanceID, fieldDefinitionID domain.ID) (domain.StoredValue, error) {
	var entity internal.StoredValue
	err := r.orm.
		WithContext(ctx).
		Where("instance_id = ? AND field_definition_id = ?",
			instanceID.String(), fieldDefinitionID.String()).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.StoredValue{}, usecases.ErrValueNotFound
	}
	if err != nil {
		return domain.StoredValue{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleStoredValueRepository) FindByInstance(ctx context.Context, instanceID domain.ID) ([]domain.StoredValue, error) {
	var entities []internal.StoredValue

	err := r.orm.
		WithContext(ctx).
		Where("instance_id = ?", instanceID.String()).
		Order("created_at ASC").
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.StoredValue, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleStoredValueRepository) CountByFieldDefinition(ctx context.Context, fieldDefinitionID domain.ID) (int64, error) {
	var count int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.StoredValue{}).
		Where("field_definition_id = ?", fieldDefinitionID.String()).
		Count(&count).
		Error()

	if err != nil {
		return 0, fmt.Errorf("database query: %w", err)
	}

	return count, nil
}

// ExistsWithOptionKey reports whether any stored value of the field still
// holds the given option key. Multi-select payloads are tokenized in Go:
// SQL LIKE cannot express token equality portably across sqlite and
// postgres.
func (r *SimpleStoredValueRepository) ExistsWithOptionKey(ctx context.Context, fieldDefinitionID domain.ID, key string, multiValued bool) (bool, error) {
	if !multiValued {
		var count int64
		err := r.orm.
			WithContext(ctx).
			Model(&internal.StoredValue{}).
			Where("field_definition_id = ? AND raw_value = ?", fieldDefinitionID.String(), key).
			Count(&count).
			Error()

		if err != nil {
			return false, fmt.Errorf("database query: %w", err)
		}
		return count > 0, nil
	}

	entities, err := r.findByField(ctx, fieldDefinitionID)
	if err != nil {
		return false, err
	}

	for _, entity := range entities {
		if containsToken(entity.RawValue, key) {
			return true, nil
		}
	}

	return false, nil
}

// FlagOrphaned marks every value that still references one of the removed
// option keys. Raw values are kept for review, never rewritten.
func (r *SimpleStoredValueRepository) FlagOrphaned(ctx context.Context, fieldDefinitionID domain.ID, removedKeys []string, multiValued bool) (int64, error) {
	entities, err := r.findByField(ctx, fieldDefinitionID)
	if err != nil {
		return 0, err
	}

	var flagged int64
	for _, entity := range entities {
		if entity.Orphaned || !referencesAnyKey(entity.RawValue, removedKeys, multiValued) {
			continue
		}

		entity.Orphaned = true
		if err := r.orm.WithContext(ctx).Save(&entity).Error(); err != nil {
			return flagged, fmt.Errorf("database update: %w", err)
		}
		flagged++
	}

	return flagged, nil
}

func (r *SimpleStoredValueRepository) findByField(ctx context.Context, fieldDefinitionID domain.ID) ([]internal.StoredValue, error) {
	var entities []internal.StoredValue

	err := r.orm.
		WithContext(ctx).
		Where("field_definition_id = ?", fieldDefinitionID.String()).
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return entities, nil
}

func referencesAnyKey(rawValue string, keys []string, multiValued bool) bool {
	for _, key := range keys {
		if multiValued {
			if containsToken(rawValue, key) {
				return true
			}
			continue
		}
		if rawValue == key {
			return true
		}
	}
	return false
}

func containsToken(rawValue, key string) bool {
	for _, token := range strings.Split(rawValue, ",") {
		if strings.TrimSpace(token) == key {
			return true
		}
	}
	return false
}
