package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	schemausecases "staybook-server/internal/schema_plane/usecases"
	"staybook-server/internal/shared_kernel/domain"
	"staybook-server/internal/value_plane/validation"
)

var (
	ErrValueNotFound = errors.New("stored value not found")
)

//go:generate mockgen -source=value_service.go -destination=../../../test/unit/doubles/value_plane/usecases/value_service_mock.go -package=usecases

// FieldDefinitionProvider supplies the definition a write is validated
// against. Implementations must reflect the state inside the caller's
// current transaction so a racing deletion is observed.
type FieldDefinitionProvider interface {
	GetByID(ctx context.Context, id domain.ID) (domain.FieldDefinition, error)
}

type StoredValueRepository interface {
	Create(ctx context.Context, value domain.StoredValue) error
	Update(ctx context.Context, value domain.StoredValue) error
	GetByInstanceAndField(ctx context.Context, instanceID, fieldDefinitionID domain.ID) (domain.StoredValue, error)
	FindByInstance(ctx context.Context, instanceID domain.ID) ([]domain.StoredValue, error)
	CountByFieldDefinition(ctx context.Context, fieldDefinitionID domain.ID) (int64, error)
	ExistsWithOptionKey(ctx context.Context, fieldDefinitionID domain.ID, key string, multiValued bool) (bool, error)
	FlagOrphaned(ctx context.Context, fieldDefinitionID domain.ID, removedKeys []string, multiValued bool) (int64, error)
}

type ValueService interface {
	UpsertValue(ctx context.Context, instanceID, fieldDefinitionID domain.ID, rawValue string) (validation.Result, error)
	GetValue(ctx context.Context, instanceID, fieldDefinitionID domain.ID) (domain.StoredValue, error)
	ListInstanceValues(ctx context.Context, instanceID domain.ID) ([]domain.StoredValue, error)
	RevalidateInstance(ctx context.Context, instanceID domain.ID) (map[domain.ID]validation.Result, error)
}

func NewValueService(repository StoredValueRepository, definitions FieldDefinitionProvider) *SimpleValueService {
	return &SimpleValueService{
		repository:  repository,
		definitions: definitions,
	}
}

var _ ValueService = (*SimpleValueService)(nil)

type SimpleValueService struct {
	repository  StoredValueRepository
	definitions FieldDefinitionProvider
}

// UpsertValue validates and writes one value. A rejected value is a normal
// outcome carried in the result, not an error; nothing is persisted for it.
// A second write for the same (instance, field) pair updates in place.
func (s *SimpleValueService) UpsertValue(ctx context.Context, instanceID, fieldDefinitionID domain.ID, rawValue string) (validation.Result, error) {
	def, err := s.definitions.GetByID(ctx, fieldDefinitionID)
	if err != nil {
		if errors.Is(err, schemausecases.ErrFieldDefinitionNotFound) {
			return validation.Result{}, schemausecases.ErrFieldDefinitionNotFound
		}
		return validation.Result{}, fmt.Errorf("loading field definition: %w", err)
	}
	if def.IsDeleted() {
		return validation.Result{}, schemausecases.ErrFieldDefinitionNotFound
	}

	result := validation.Validate(def, rawValue)

	if result.ConfigurationError() {
		slog.Warn("field definition configuration is invalid",
			slog.String("field_id", def.ID.String()),
			slog.String("field_name", def.FieldName))
		return result, schemausecases.ErrInvalidFieldConfiguration
	}

	if !result.Accepted() {
		slog.Debug("value rejected",
			slog.String("field_id", def.ID.String()),
			slog.Int("violations", len(result.Violations)))
		return result, nil
	}

	existing, err := s.repository.GetByInstanceAndField(ctx, instanceID, fieldDefinitionID)
	switch {
	case errors.Is(err, ErrValueNotFound):
		value := domain.NewStoredValue(instanceID, fieldDefinitionID, result.Normalized)
		if err := s.repository.Create(ctx, value); err != nil {
			return validation.Result{}, fmt.Errorf("creating stored value: %w", err)
		}
	case err != nil:
		return validation.Result{}, fmt.Errorf("loading stored value: %w", err)
	default:
		existing.UpdateRawValue(result.Normalized)
		if err := s.repository.Update(ctx, existing); err != nil {
			return validation.Result{}, fmt.Errorf("updating stored value: %w", err)
		}
	}

	slog.Info("value stored",
		slog.String("instance_id", instanceID.String()),
		slog.String("field_id", fieldDefinitionID.String()))

	return result, nil
}

func (s *SimpleValueService) GetValue(ctx context.Context, instanceID, fieldDefinitionID domain.ID) (domain.StoredValue, error) {
	value, err := s.repository.GetByInstanceAndField(ctx, instanceID, fieldDefinitionID)
	if err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return domain.StoredValue{}, ErrValueNotFound
		}
		return domain.StoredValue{}, fmt.Errorf("getting stored value: %w", err)
	}

	return value, nil
}

func (s *SimpleValueService) ListInstanceValues(ctx context.Context, instanceID domain.ID) ([]domain.StoredValue, error) {
	values, err := s.repository.FindByInstance(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("listing instance values: %w", err)
	}

	return values, nil
}

// RevalidateInstance re-runs the engine over an instance's grandfathered
// values against the current definitions. It mutates nothing; callers decide
// what to do with stale values.
func (s *SimpleValueService) RevalidateInstance(ctx context.Context, instanceID domain.ID) (map[domain.ID]validation.Result, error) {
	values, err := s.repository.FindByInstance(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("listing instance values: %w", err)
	}

	results := make(map[domain.ID]validation.Result, len(values))
	for _, value := range values {
		def, err := s.definitions.GetByID(ctx, value.FieldDefinitionID)
		if err != nil {
			if errors.Is(err, schemausecases.ErrFieldDefinitionNotFound) {
				continue
			}
			return nil, fmt.Errorf("loading field definition: %w", err)
		}
		if def.IsDeleted() {
			continue
		}
		results[value.FieldDefinitionID] = validation.Validate(def, value.RawValue)
	}

	return results, nil
}
