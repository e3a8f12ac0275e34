package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"staybook-server/internal/infra/sql"
	"staybook-server/internal/schema_plane/persistence/internal"
	"staybook-server/internal/schema_plane/usecases"
	"staybook-server/internal/shared_kernel/domain"
	valueusecases "staybook-server/internal/value_plane/usecases"
)

func NewFieldDefinitionRepository(orm sql.ORM) (*SimpleFieldDefinitionRepository, error) {
	err := orm.AutoMigrate(&internal.FieldDefinition{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFieldDefinitionRepository{orm: orm}, nil
}

var (
	_ usecases.FieldDefinitionRepository    = (*SimpleFieldDefinitionRepository)(nil)
	_ valueusecases.FieldDefinitionProvider = (*SimpleFieldDefinitionRepository)(nil)
)

type SimpleFieldDefinitionRepository struct {
	orm sql.ORM
}

func (r *SimpleFieldDefinitionRepository) Create(ctx context.Context, def domain.FieldDefinition) error {
	entity, err := internal.FromFieldDefinition(def)
	if err != nil {
		return err
	}

	err = r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleFieldDefinitionRepository) GetByID(ctx context.Context, id domain.ID) (domain.FieldDefinition, error) {
	var entity internal.FieldDefinition
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldDefinition{}, usecases.ErrFieldDefinitionNotFound
	}
	if err != nil {
		return domain.FieldDefinition{}, fmt.Errorf("database query: %w", err)
	}

	return r.toDomain(ctx, entity)
}

func (r *SimpleFieldDefinitionRepository) GetByName(ctx context.Context, categoryID domain.ID, fieldName string) (domain.FieldDefinition, error) {
	var entity internal.FieldDefinition
	err := r.orm.
		WithContext(ctx).
		Where("category_id = ? AND LOWER(field_name) = ? AND deleted_at IS NULL",
			categoryID.String(), strings.ToLower(strings.TrimSpace(fieldName))).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldDefinition{}, usecases.ErrFieldDefinitionNotFound
	}
	if err != nil {
		return domain.FieldDefinition{}, fmt.Errorf("database query: %w", err)
	}

	return r.toDomain(ctx, entity)
}

func (r *SimpleFieldDefinitionRepository) Update(ctx context.Context, def domain.FieldDefinition) error {
	entity, err := internal.FromFieldDefinition(def)
	if err != nil {
		return err
	}

	err = r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (r *SimpleFieldDefinitionRepository) FindByCategory(ctx context.Context, categoryID domain.ID, includeDeleted bool) ([]domain.FieldDefinition, error) {
	var entities []internal.FieldDefinition

	query := r.orm.WithContext(ctx).Where("category_id = ?", categoryID.String())
	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	err := query.Order("sort_order ASC, field_name ASC").Find(&entities).Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.FieldDefinition, 0, len(entities))
	for _, entity := range entities {
		def, err := r.toDomain(ctx, entity)
		if err != nil {
			return nil, err
		}
		result = append(result, def)
	}

	return result, nil
}

func (r *SimpleFieldDefinitionRepository) CountByFieldType(ctx context.Context, fieldTypeID domain.ID) (int64, error) {
	var count int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.FieldDefinition{}).
		Where("field_type_id = ? AND deleted_at IS NULL", fieldTypeID.String()).
		Count(&count).
		Error()

	if err != nil {
		return 0, fmt.Errorf("database query: %w", err)
	}

	return count, nil
}

// toDomain resolves the owning field type and parses the JSON payloads at
// the load boundary. Corrupted rows surface as configuration errors.
func (r *SimpleFieldDefinitionRepository) toDomain(ctx context.Context, entity internal.FieldDefinition) (domain.FieldDefinition, error) {
	var typeEntity internal.FieldType
	err := r.orm.
		WithContext(ctx).
		First(&typeEntity, "id = ?", entity.FieldTypeID).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		slog.Warn("field definition references missing field type",
			slog.String("field_id", entity.ID),
			slog.String("field_type_id", entity.FieldTypeID))
		return domain.FieldDefinition{}, fmt.Errorf("%w: field type %s missing", usecases.ErrInvalidFieldConfiguration, entity.FieldTypeID)
	}
	if err != nil {
		return domain.FieldDefinition{}, fmt.Errorf("database query: %w", err)
	}

	fieldType, err := typeEntity.ToDomain()
	if err == nil {
		var def domain.FieldDefinition
		def, err = entity.ToDomain(fieldType)
		if err == nil {
			return def, nil
		}
	}

	slog.Warn("corrupted field definition record",
		slog.String("id", entity.ID),
		slog.String("error", err.Error()))
	return domain.FieldDefinition{}, fmt.Errorf("%w: %v", usecases.ErrInvalidFieldConfiguration, err)
}
