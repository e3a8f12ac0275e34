package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"staybook-server/internal/shared_kernel/domain"
)

var (
	ErrFieldTypeNotFound = errors.New("field type not found")
	ErrDuplicateTypeName = errors.New("field type name already exists")
	ErrProtectedType     = errors.New("field type is system reserved")
	ErrFieldTypeInUse    = errors.New("field type is referenced by field definitions")
)

type FieldTypeService interface {
	CreateFieldType(ctx context.Context, fieldType domain.FieldType) error
	GetFieldType(ctx context.Context, id domain.ID) (domain.FieldType, error)
	GetFieldTypeByName(ctx context.Context, name string) (domain.FieldType, error)
	ListFieldTypes(ctx context.Context, includeInactive bool) ([]domain.FieldType, error)
	DeactivateFieldType(ctx context.Context, id domain.ID) error
	SeedReservedTypes(ctx context.Context) error
}

type FieldTypeRepository interface {
	Create(ctx context.Context, fieldType domain.FieldType) error
	GetByID(ctx context.Context, id domain.ID) (domain.FieldType, error)
	GetByName(ctx context.Context, name string) (domain.FieldType, error)
	Update(ctx context.Context, fieldType domain.FieldType) error
	FindAll(ctx context.Context, includeInactive bool) ([]domain.FieldType, error)
}

func NewFieldTypeService(repository FieldTypeRepository, definitions FieldDefinitionRepository) *SimpleFieldTypeService {
	return &SimpleFieldTypeService{
		repository:  repository,
		definitions: definitions,
	}
}

var _ FieldTypeService = (*SimpleFieldTypeService)(nil)

type SimpleFieldTypeService struct {
	repository  FieldTypeRepository
	definitions FieldDefinitionRepository
}

func (s *SimpleFieldTypeService) CreateFieldType(ctx context.Context, fieldType domain.FieldType) error {
	existing, err := s.repository.GetByName(ctx, fieldType.Name)
	if err != nil && !errors.Is(err, ErrFieldTypeNotFound) {
		return fmt.Errorf("checking existing field type: %w", err)
	}

	if existing.ID != "" {
		slog.Warn("field type already exists", slog.String("name", fieldType.Name))
		return ErrDuplicateTypeName
	}

	err = s.repository.Create(ctx, fieldType)
	if err != nil {
		slog.Error("creating field type", slog.String("error", err.Error()))
		return fmt.Errorf("creating field type: %w", err)
	}

	slog.Info("field type created",
		slog.String("id", fieldType.ID.String()),
		slog.String("name", fieldType.Name))

	return nil
}

func (s *SimpleFieldTypeService) GetFieldType(ctx context.Context, id domain.ID) (domain.FieldType, error) {
	fieldType, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFieldTypeNotFound) {
			return domain.FieldType{}, ErrFieldTypeNotFound
		}
		return domain.FieldType{}, fmt.Errorf("getting field type: %w", err)
	}

	return fieldType, nil
}

func (s *SimpleFieldTypeService) GetFieldTypeByName(ctx context.Context, name string) (domain.FieldType, error) {
	fieldType, err := s.repository.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrFieldTypeNotFound) {
			return domain.FieldType{}, ErrFieldTypeNotFound
		}
		return domain.FieldType{}, fmt.Errorf("getting field type by name: %w", err)
	}

	return fieldType, nil
}

func (s *SimpleFieldTypeService) ListFieldTypes(ctx context.Context, includeInactive bool) ([]domain.FieldType, error) {
	fieldTypes, err := s.repository.FindAll(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("listing field types: %w", err)
	}

	return fieldTypes, nil
}

func (s *SimpleFieldTypeService) DeactivateFieldType(ctx context.Context, id domain.ID) error {
	fieldType, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFieldTypeNotFound) {
			return ErrFieldTypeNotFound
		}
		return fmt.Errorf("getting field type: %w", err)
	}

	if fieldType.IsReserved() {
		slog.Warn("refusing to deactivate reserved field type", slog.String("name", fieldType.Name))
		return ErrProtectedType
	}

	count, err := s.definitions.CountByFieldType(ctx, id)
	if err != nil {
		return fmt.Errorf("counting referencing definitions: %w", err)
	}
	if count > 0 {
		return ErrFieldTypeInUse
	}

	fieldType.Deactivate()

	err = s.repository.Update(ctx, fieldType)
	if err != nil {
		slog.Error("deactivating field type", slog.String("error", err.Error()))
		return fmt.Errorf("deactivating field type: %w", err)
	}

	slog.Info("field type deactivated", slog.String("id", id.String()))
	return nil
}

// SeedReservedTypes creates any missing system field type. It is idempotent
// and safe to run on every startup.
func (s *SimpleFieldTypeService) SeedReservedTypes(ctx context.Context) error {
	for _, fieldType := range domain.ReservedFieldTypes() {
		_, err := s.repository.GetByName(ctx, fieldType.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrFieldTypeNotFound) {
			return fmt.Errorf("checking reserved type %q: %w", fieldType.Name, err)
		}

		if err := s.repository.Create(ctx, fieldType); err != nil {
			return fmt.Errorf("seeding reserved type %q: %w", fieldType.Name, err)
		}
		slog.Info("reserved field type seeded", slog.String("name", fieldType.Name))
	}

	return nil
}
