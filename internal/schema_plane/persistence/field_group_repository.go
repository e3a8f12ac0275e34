package persistence

import (
	"context"
	"errors"
	"fmt"

	"staybook-server/internal/infra/sql"
	"staybook-server/internal/schema_plane/persistence/internal"
	"staybook-server/internal/schema_plane/usecases"
	"staybook-server/internal/shared_kernel/domain"
)

func NewFieldGroupRepository(orm sql.ORM) (*SimpleFieldGroupRepository, error) {
	err := orm.AutoMigrate(&internal.FieldGroup{}, &internal.FieldGroupMembership{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFieldGroupRepository{orm: orm}, nil
}

var _ usecases.FieldGroupRepository = (*SimpleFieldGroupRepository)(nil)

type SimpleFieldGroupRepository struct {
	orm sql.ORM
}

func (r *SimpleFieldGroupRepository) Create(ctx context.Context, group domain.FieldGroup) error {
	entity := internal.FromFieldGroup(group)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleFieldGroupRepository) GetByID(ctx context.Context, id domain.ID) (domain.FieldGroup, error) {
	var entity internal.FieldGroup
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldGroup{}, usecases.ErrGroupNotFound
	}
	if err != nil {
		return domain.FieldGroup{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleFieldGroupRepository) GetByName(ctx context.Context, categoryID domain.ID, groupName string) (domain.FieldGroup, error) {
	var entity internal.FieldGroup
	err := r.orm.
		WithContext(ctx).
		Where("category_id = ? AND group_name = ?", categoryID.String(), groupName).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldGroup{}, usecases.ErrGroupNotFound
	}
	if err != nil {
		return domain.FieldGroup{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleFieldGroupRepository) FindByCategory(ctx context.Context, categoryID domain.ID) ([]domain.FieldGroup, error) {
	var entities []internal.FieldGroup

	err := r.orm.
		WithContext(ctx).
		Where("category_id = ?", categoryID.String()).
		Order("sort_order ASC, group_name ASC").
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.FieldGroup, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleFieldGroupRepository) Delete(ctx context.Context, id domain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.FieldGroup{}, "id = ?", id.String()).
		Error()

	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return nil
}

// SaveMembership replaces any existing membership of the field: attachment
// is a move, not an accumulation of join rows.
func (r *SimpleFieldGroupRepository) SaveMembership(ctx context.Context, membership domain.FieldGroupMembership) error {
	entity := internal.FromFieldGroupMembership(membership)

	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		err := tx.
			Delete(&internal.FieldGroupMembership{}, "field_definition_id = ?", entity.FieldDefinitionID).
			Error()
		if err != nil {
			return fmt.Errorf("removing previous membership: %w", err)
		}

		err = tx.Create(&entity).Error()
		if err != nil {
			return fmt.Errorf("database insert: %w", err)
		}

		return nil
	})
}

func (r *SimpleFieldGroupRepository) DeleteMembership(ctx context.Context, fieldDefinitionID domain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.FieldGroupMembership{}, "field_definition_id = ?", fieldDefinitionID.String()).
		Error()

	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return nil
}

func (r *SimpleFieldGroupRepository) DeleteMembershipsByGroup(ctx context.Context, groupID domain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.FieldGroupMembership{}, "field_group_id = ?", groupID.String()).
		Error()

	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return nil
}

func (r *SimpleFieldGroupRepository) GetMembershipByField(ctx context.Context, fieldDefinitionID domain.ID) (domain.FieldGroupMembership, error) {
	var entity internal.FieldGroupMembership
	err := r.orm.
		WithContext(ctx).
		First(&entity, "field_definition_id = ?", fieldDefinitionID.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldGroupMembership{}, usecases.ErrMembershipNotFound
	}
	if err != nil {
		return domain.FieldGroupMembership{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleFieldGroupRepository) FindMembershipsByGroup(ctx context.Context, groupID domain.ID) ([]domain.FieldGroupMembership, error) {
	var entities []internal.FieldGroupMembership

	err := r.orm.
		WithContext(ctx).
		Where("field_group_id = ?", groupID.String()).
		Order("sort_order ASC").
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.FieldGroupMembership, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}
