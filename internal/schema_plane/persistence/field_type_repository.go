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
)

func NewFieldTypeRepository(orm sql.ORM) (*SimpleFieldTypeRepository, error) {
	err := orm.AutoMigrate(&internal.FieldType{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFieldTypeRepository{orm: orm}, nil
}

var _ usecases.FieldTypeRepository = (*SimpleFieldTypeRepository)(nil)

type SimpleFieldTypeRepository struct {
	orm sql.ORM
}

func (r *SimpleFieldTypeRepository) Create(ctx context.Context, fieldType domain.FieldType) error {
	entity, err := internal.FromFieldType(fieldType)
	if err != nil {
		return err
	}

	err = r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleFieldTypeRepository) GetByID(ctx context.Context, id domain.ID) (domain.FieldType, error) {
	var entity internal.FieldType
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldType{}, usecases.ErrFieldTypeNotFound
	}
	if err != nil {
		return domain.FieldType{}, fmt.Errorf("database query: %w", err)
	}

	return r.toDomain(entity)
}

func (r *SimpleFieldTypeRepository) GetByName(ctx context.Context, name string) (domain.FieldType, error) {
	var entity internal.FieldType
	err := r.orm.
		WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldType{}, usecases.ErrFieldTypeNotFound
	}
	if err != nil {
		return domain.FieldType{}, fmt.Errorf("database query: %w", err)
	}

	return r.toDomain(entity)
}

func (r *SimpleFieldTypeRepository) Update(ctx context.Context, fieldType domain.FieldType) error {
	entity, err := internal.FromFieldType(fieldType)
	if err != nil {
		return err
	}

	err = r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (r *SimpleFieldTypeRepository) FindAll(ctx context.Context, includeInactive bool) ([]domain.FieldType, error) {
	var entities []internal.FieldType

	query := r.orm.WithContext(ctx).Where("deleted_at IS NULL")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	err := query.Order("name ASC").Find(&entities).Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.FieldType, 0, len(entities))
	for _, entity := range entities {
		fieldType, err := r.toDomain(entity)
		if err != nil {
			return nil, err
		}
		result = append(result, fieldType)
	}

	return result, nil
}

// toDomain maps parse failures of stored schema data onto the configuration
// error so corrupted legacy rows never surface as value errors.
func (r *SimpleFieldTypeRepository) toDomain(entity internal.FieldType) (domain.FieldType, error) {
	fieldType, err := entity.ToDomain()
	if err != nil {
		slog.Warn("corrupted field type record",
			slog.String("id", entity.ID),
			slog.String("error", err.Error()))
		return domain.FieldType{}, fmt.Errorf("%w: %v", usecases.ErrInvalidFieldConfiguration, err)
	}

	return fieldType, nil
}
