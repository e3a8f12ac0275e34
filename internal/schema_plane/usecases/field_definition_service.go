package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"staybook-server/internal/shared_kernel/domain"
)

var (
	ErrFieldDefinitionNotFound   = errors.New("field definition not found")
	ErrDuplicateFieldName        = errors.New("field name already exists in category")
	ErrFieldTypeInactive         = errors.New("field type is not active")
	ErrOptionsRequired           = errors.New("select fields require at least one option")
	ErrOptionsNotAllowed         = errors.New("field type does not accept options")
	ErrDuplicateOptionKey        = errors.New("option keys must be unique")
	ErrRuleNotAllowed            = errors.New("custom rule is not accepted by the field type")
	ErrFieldTypeImmutable        = errors.New("field type cannot change while stored values exist")
	ErrOptionKeyInUse            = errors.New("option key is referenced by stored values")
	ErrFieldInUse                = errors.New("field definition is referenced by stored values")
	ErrSchemaModificationDenied  = errors.New("caller may not modify this category's schema")
	ErrInvalidFieldConfiguration = errors.New("field definition configuration is corrupted")
)

type FieldDefinitionService interface {
	DefineField(ctx context.Context, def domain.FieldDefinition) error
	GetField(ctx context.Context, id domain.ID) (domain.FieldDefinition, error)
	ListCategoryFields(ctx context.Context, categoryID domain.ID, includeDeleted bool) ([]domain.FieldDefinition, error)
	UpdateField(ctx context.Context, patch FieldDefinitionPatch) error
	DeleteField(ctx context.Context, id domain.ID) error
}

// FieldDefinitionPatch carries the mutable dimensions of an update. Nil
// pointers mean "leave unchanged".
type FieldDefinitionPatch struct {
	ID           domain.ID
	FieldTypeID  *domain.ID
	FieldName    *string
	DisplayName  *string
	Description  *string
	Options      *domain.OptionSet
	CustomRules  *domain.RuleSet
	IsRequired   *bool
	IsSearchable *bool
	IsPublic     *bool
	SortOrder    *int
	CategoryTag  *string
	// ForceMigrate permits narrowing the option set even while stored values
	// reference a removed key; affected values get flagged, not deleted.
	ForceMigrate bool
}

type FieldDefinitionRepository interface {
	Create(ctx context.Context, def domain.FieldDefinition) error
	GetByID(ctx context.Context, id domain.ID) (domain.FieldDefinition, error)
	GetByName(ctx context.Context, categoryID domain.ID, fieldName string) (domain.FieldDefinition, error)
	Update(ctx context.Context, def domain.FieldDefinition) error
	FindByCategory(ctx context.Context, categoryID domain.ID, includeDeleted bool) ([]domain.FieldDefinition, error)
	CountByFieldType(ctx context.Context, fieldTypeID domain.ID) (int64, error)
}

// StoredValueInspector is the schema plane's read-only window into the value
// store, used to protect definitions that live data still depends on.
type StoredValueInspector interface {
	CountByFieldDefinition(ctx context.Context, fieldDefinitionID domain.ID) (int64, error)
	ExistsWithOptionKey(ctx context.Context, fieldDefinitionID domain.ID, key string, multiValued bool) (bool, error)
	FlagOrphaned(ctx context.Context, fieldDefinitionID domain.ID, removedKeys []string, multiValued bool) (int64, error)
}

func NewFieldDefinitionService(
	repository FieldDefinitionRepository,
	fieldTypes FieldTypeRepository,
	values StoredValueInspector,
	authorizer Authorizer,
) *SimpleFieldDefinitionService {
	return &SimpleFieldDefinitionService{
		repository: repository,
		fieldTypes: fieldTypes,
		values:     values,
		authorizer: authorizer,
	}
}

var _ FieldDefinitionService = (*SimpleFieldDefinitionService)(nil)

type SimpleFieldDefinitionService struct {
	repository FieldDefinitionRepository
	fieldTypes FieldTypeRepository
	values     StoredValueInspector
	authorizer Authorizer
}

func (s *SimpleFieldDefinitionService) DefineField(ctx context.Context, def domain.FieldDefinition) error {
	if !s.authorizer.CanModifySchema(ctx, def.CategoryID) {
		return ErrSchemaModificationDenied
	}

	fieldType, err := s.fieldTypes.GetByID(ctx, def.FieldTypeID)
	if err != nil {
		if errors.Is(err, ErrFieldTypeNotFound) {
			return ErrFieldTypeNotFound
		}
		return fmt.Errorf("resolving field type: %w", err)
	}
	if !fieldType.IsActive {
		return ErrFieldTypeInactive
	}
	def.Type = fieldType

	if err := validateConfiguration(fieldType, def.Options, def.CustomRules); err != nil {
		return err
	}

	existing, err := s.repository.GetByName(ctx, def.CategoryID, def.FieldName)
	if err != nil && !errors.Is(err, ErrFieldDefinitionNotFound) {
		return fmt.Errorf("checking field name uniqueness: %w", err)
	}
	if existing.ID != "" && !existing.IsDeleted() {
		slog.Warn("field name already taken",
			slog.String("category_id", def.CategoryID.String()),
			slog.String("field_name", def.FieldName))
		return ErrDuplicateFieldName
	}

	err = s.repository.Create(ctx, def)
	if err != nil {
		slog.Error("creating field definition", slog.String("error", err.Error()))
		return fmt.Errorf("creating field definition: %w", err)
	}

	slog.Info("field definition created",
		slog.String("id", def.ID.String()),
		slog.String("category_id", def.CategoryID.String()),
		slog.String("field_name", def.FieldName),
		slog.String("type", fieldType.Name))

	return nil
}

func (s *SimpleFieldDefinitionService) GetField(ctx context.Context, id domain.ID) (domain.FieldDefinition, error) {
	def, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFieldDefinitionNotFound) {
			return domain.FieldDefinition{}, ErrFieldDefinitionNotFound
		}
		return domain.FieldDefinition{}, fmt.Errorf("getting field definition: %w", err)
	}

	return def, nil
}

func (s *SimpleFieldDefinitionService) ListCategoryFields(ctx context.Context, categoryID domain.ID, includeDeleted bool) ([]domain.FieldDefinition, error) {
	defs, err := s.repository.FindByCategory(ctx, categoryID, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("listing category fields: %w", err)
	}

	return defs, nil
}

func (s *SimpleFieldDefinitionService) UpdateField(ctx context.Context, patch FieldDefinitionPatch) error {
	existing, err := s.repository.GetByID(ctx, patch.ID)
	if err != nil {
		if errors.Is(err, ErrFieldDefinitionNotFound) {
			return ErrFieldDefinitionNotFound
		}
		return fmt.Errorf("getting field definition: %w", err)
	}
	if existing.IsDeleted() {
		return ErrFieldDefinitionNotFound
	}

	if !s.authorizer.CanModifySchema(ctx, existing.CategoryID) {
		return ErrSchemaModificationDenied
	}

	// Type changes are destructive once values exist: stored strings would
	// be silently reinterpreted under the new kind.
	if patch.FieldTypeID != nil && *patch.FieldTypeID != existing.FieldTypeID {
		count, err := s.values.CountByFieldDefinition(ctx, existing.ID)
		if err != nil {
			return fmt.Errorf("counting stored values: %w", err)
		}
		if count > 0 {
			return ErrFieldTypeImmutable
		}

		fieldType, err := s.fieldTypes.GetByID(ctx, *patch.FieldTypeID)
		if err != nil {
			if errors.Is(err, ErrFieldTypeNotFound) {
				return ErrFieldTypeNotFound
			}
			return fmt.Errorf("resolving field type: %w", err)
		}
		if !fieldType.IsActive {
			return ErrFieldTypeInactive
		}
		existing.FieldTypeID = fieldType.ID
		existing.Type = fieldType
	}

	if patch.FieldName != nil && !existing.SameFieldName(*patch.FieldName) {
		newName := strings.TrimSpace(*patch.FieldName)
		conflict, err := s.repository.GetByName(ctx, existing.CategoryID, newName)
		if err != nil && !errors.Is(err, ErrFieldDefinitionNotFound) {
			return fmt.Errorf("checking field name uniqueness: %w", err)
		}
		if conflict.ID != "" && conflict.ID != existing.ID && !conflict.IsDeleted() {
			return ErrDuplicateFieldName
		}
		existing.FieldName = newName
	}

	var removedKeys []string
	if patch.Options != nil {
		removedKeys, err = s.checkOptionNarrowing(ctx, existing, *patch.Options, patch.ForceMigrate)
		if err != nil {
			return err
		}
		existing.Options = *patch.Options
	}

	if patch.CustomRules != nil {
		existing.CustomRules = *patch.CustomRules
	}

	if err := validateConfiguration(existing.Type, existing.Options, existing.CustomRules); err != nil {
		return err
	}

	applyScalarPatch(&existing, patch)
	existing.Version++

	err = s.repository.Update(ctx, existing)
	if err != nil {
		slog.Error("updating field definition", slog.String("error", err.Error()))
		return fmt.Errorf("updating field definition: %w", err)
	}

	if len(removedKeys) > 0 {
		flagged, err := s.values.FlagOrphaned(ctx, existing.ID, removedKeys, existing.Kind() == domain.KindMultiSelect)
		if err != nil {
			return fmt.Errorf("flagging orphaned values: %w", err)
		}
		slog.Warn("stored values orphaned by option migration",
			slog.String("field_id", existing.ID.String()),
			slog.Int64("count", flagged))
	}

	slog.Info("field definition updated",
		slog.String("id", existing.ID.String()),
		slog.Int("version", existing.Version))

	return nil
}

func (s *SimpleFieldDefinitionService) DeleteField(ctx context.Context, id domain.ID) error {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFieldDefinitionNotFound) {
			return ErrFieldDefinitionNotFound
		}
		return fmt.Errorf("getting field definition: %w", err)
	}
	if existing.IsDeleted() {
		return ErrFieldDefinitionNotFound
	}

	if !s.authorizer.CanModifySchema(ctx, existing.CategoryID) {
		return ErrSchemaModificationDenied
	}

	count, err := s.values.CountByFieldDefinition(ctx, id)
	if err != nil {
		return fmt.Errorf("counting stored values: %w", err)
	}
	if count > 0 {
		return ErrFieldInUse
	}

	existing.SoftDelete()

	err = s.repository.Update(ctx, existing)
	if err != nil {
		slog.Error("soft deleting field definition", slog.String("error", err.Error()))
		return fmt.Errorf("soft deleting field definition: %w", err)
	}

	slog.Info("field definition soft deleted", slog.String("id", id.String()))
	return nil
}

// checkOptionNarrowing finds option keys the new set drops and decides
// whether the narrowing is permitted. It returns the removed keys that still
// have live values so the caller can flag them after a forced migration.
func (s *SimpleFieldDefinitionService) checkOptionNarrowing(
	ctx context.Context,
	existing domain.FieldDefinition,
	newOptions domain.OptionSet,
	forceMigrate bool,
) ([]string, error) {
	multiValued := existing.Kind() == domain.KindMultiSelect

	var inUse []string
	for _, key := range existing.Options.Keys() {
		if newOptions.HasKey(key) {
			continue
		}
		exists, err := s.values.ExistsWithOptionKey(ctx, existing.ID, key, multiValued)
		if err != nil {
			return nil, fmt.Errorf("checking option key usage: %w", err)
		}
		if exists {
			inUse = append(inUse, key)
		}
	}

	if len(inUse) > 0 && !forceMigrate {
		return nil, ErrOptionKeyInUse
	}

	return inUse, nil
}

func applyScalarPatch(def *domain.FieldDefinition, patch FieldDefinitionPatch) {
	if patch.DisplayName != nil {
		def.DisplayName = *patch.DisplayName
	}
	if patch.Description != nil {
		def.Description = *patch.Description
	}
	if patch.IsRequired != nil {
		def.IsRequired = *patch.IsRequired
	}
	if patch.IsSearchable != nil {
		def.IsSearchable = *patch.IsSearchable
	}
	if patch.IsPublic != nil {
		def.IsPublic = *patch.IsPublic
	}
	if patch.SortOrder != nil {
		def.SortOrder = *patch.SortOrder
	}
	if patch.CategoryTag != nil {
		def.CategoryTag = *patch.CategoryTag
	}
}

// validateConfiguration enforces the structural invariants between a field
// type and a definition's options and custom rules.
func validateConfiguration(fieldType domain.FieldType, options domain.OptionSet, rules domain.RuleSet) error {
	kind := fieldType.Kind()

	if kind.RequiresOptions() {
		if len(options) == 0 {
			return ErrOptionsRequired
		}
		if key, dup := options.DuplicateKey(); dup {
			return fmt.Errorf("%w: %q", ErrDuplicateOptionKey, key)
		}
	} else if len(options) > 0 {
		return ErrOptionsNotAllowed
	}

	for _, key := range rules.Keys() {
		if !fieldType.RuleSchema.Allows(key) {
			return fmt.Errorf("%w: %q on type %q", ErrRuleNotAllowed, key, fieldType.Name)
		}
	}

	return nil
}
