package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"staybook-server/internal/shared_kernel/domain"
)

var (
	ErrGroupNotFound           = errors.New("field group not found")
	ErrDuplicateGroupName      = errors.New("group name already exists in category")
	ErrCrossCategoryAttachment = errors.New("field and group belong to different categories")
	ErrMembershipNotFound      = errors.New("field is not attached to any group")
)

type FieldGroupService interface {
	CreateGroup(ctx context.Context, group domain.FieldGroup) error
	GetGroup(ctx context.Context, id domain.ID) (domain.FieldGroup, error)
	ListCategoryGroups(ctx context.Context, categoryID domain.ID) ([]domain.FieldGroup, error)
	AttachField(ctx context.Context, groupID, fieldDefinitionID domain.ID, sortOrder int) error
	DetachField(ctx context.Context, fieldDefinitionID domain.ID) error
	ListGroupFields(ctx context.Context, groupID domain.ID) ([]domain.FieldDefinition, error)
	DeleteGroup(ctx context.Context, id domain.ID) error
}

type FieldGroupRepository interface {
	Create(ctx context.Context, group domain.FieldGroup) error
	GetByID(ctx context.Context, id domain.ID) (domain.FieldGroup, error)
	GetByName(ctx context.Context, categoryID domain.ID, groupName string) (domain.FieldGroup, error)
	FindByCategory(ctx context.Context, categoryID domain.ID) ([]domain.FieldGroup, error)
	Delete(ctx context.Context, id domain.ID) error
	SaveMembership(ctx context.Context, membership domain.FieldGroupMembership) error
	DeleteMembership(ctx context.Context, fieldDefinitionID domain.ID) error
	DeleteMembershipsByGroup(ctx context.Context, groupID domain.ID) error
	GetMembershipByField(ctx context.Context, fieldDefinitionID domain.ID) (domain.FieldGroupMembership, error)
	FindMembershipsByGroup(ctx context.Context, groupID domain.ID) ([]domain.FieldGroupMembership, error)
}

func NewFieldGroupService(
	repository FieldGroupRepository,
	definitions FieldDefinitionRepository,
	authorizer Authorizer,
) *SimpleFieldGroupService {
	return &SimpleFieldGroupService{
		repository:  repository,
		definitions: definitions,
		authorizer:  authorizer,
	}
}

var _ FieldGroupService = (*SimpleFieldGroupService)(nil)

type SimpleFieldGroupService struct {
	repository  FieldGroupRepository
	definitions FieldDefinitionRepository
	authorizer  Authorizer
}

func (s *SimpleFieldGroupService) CreateGroup(ctx context.Context, group domain.FieldGroup) error {
	if !s.authorizer.CanModifySchema(ctx, group.CategoryID) {
		return ErrSchemaModificationDenied
	}

	existing, err := s.repository.GetByName(ctx, group.CategoryID, group.GroupName)
	if err != nil && !errors.Is(err, ErrGroupNotFound) {
		return fmt.Errorf("checking group name uniqueness: %w", err)
	}
	if existing.ID != "" {
		return ErrDuplicateGroupName
	}

	err = s.repository.Create(ctx, group)
	if err != nil {
		slog.Error("creating field group", slog.String("error", err.Error()))
		return fmt.Errorf("creating field group: %w", err)
	}

	slog.Info("field group created",
		slog.String("id", group.ID.String()),
		slog.String("group_name", group.GroupName))

	return nil
}

func (s *SimpleFieldGroupService) GetGroup(ctx context.Context, id domain.ID) (domain.FieldGroup, error) {
	group, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			return domain.FieldGroup{}, ErrGroupNotFound
		}
		return domain.FieldGroup{}, fmt.Errorf("getting field group: %w", err)
	}

	return group, nil
}

func (s *SimpleFieldGroupService) ListCategoryGroups(ctx context.Context, categoryID domain.ID) ([]domain.FieldGroup, error) {
	groups, err := s.repository.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("listing field groups: %w", err)
	}

	return groups, nil
}

// AttachField puts a field into a group. Membership is single-valued: a
// field already attached elsewhere is moved, never duplicated.
func (s *SimpleFieldGroupService) AttachField(ctx context.Context, groupID, fieldDefinitionID domain.ID, sortOrder int) error {
	group, err := s.repository.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			return ErrGroupNotFound
		}
		return fmt.Errorf("getting field group: %w", err)
	}

	def, err := s.definitions.GetByID(ctx, fieldDefinitionID)
	if err != nil {
		if errors.Is(err, ErrFieldDefinitionNotFound) {
			return ErrFieldDefinitionNotFound
		}
		return fmt.Errorf("getting field definition: %w", err)
	}
	if def.IsDeleted() {
		return ErrFieldDefinitionNotFound
	}

	if def.CategoryID != group.CategoryID {
		slog.Warn("cross-category attachment rejected",
			slog.String("group_category", group.CategoryID.String()),
			slog.String("field_category", def.CategoryID.String()))
		return ErrCrossCategoryAttachment
	}

	if !s.authorizer.CanModifySchema(ctx, group.CategoryID) {
		return ErrSchemaModificationDenied
	}

	membership := domain.FieldGroupMembership{
		FieldDefinitionID: fieldDefinitionID,
		FieldGroupID:      groupID,
		SortOrder:         sortOrder,
	}

	err = s.repository.SaveMembership(ctx, membership)
	if err != nil {
		slog.Error("attaching field to group", slog.String("error", err.Error()))
		return fmt.Errorf("attaching field to group: %w", err)
	}

	slog.Info("field attached to group",
		slog.String("field_id", fieldDefinitionID.String()),
		slog.String("group_id", groupID.String()))

	return nil
}

func (s *SimpleFieldGroupService) DetachField(ctx context.Context, fieldDefinitionID domain.ID) error {
	membership, err := s.repository.GetMembershipByField(ctx, fieldDefinitionID)
	if err != nil {
		if errors.Is(err, ErrMembershipNotFound) {
			return ErrMembershipNotFound
		}
		return fmt.Errorf("getting membership: %w", err)
	}

	group, err := s.repository.GetByID(ctx, membership.FieldGroupID)
	if err != nil && !errors.Is(err, ErrGroupNotFound) {
		return fmt.Errorf("getting field group: %w", err)
	}
	if err == nil && !s.authorizer.CanModifySchema(ctx, group.CategoryID) {
		return ErrSchemaModificationDenied
	}

	err = s.repository.DeleteMembership(ctx, fieldDefinitionID)
	if err != nil {
		return fmt.Errorf("detaching field: %w", err)
	}

	slog.Info("field detached from group", slog.String("field_id", fieldDefinitionID.String()))
	return nil
}

// ListGroupFields returns the group's live definitions ordered by the
// membership sort order, which is independent of the definitions' own order.
func (s *SimpleFieldGroupService) ListGroupFields(ctx context.Context, groupID domain.ID) ([]domain.FieldDefinition, error) {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}

	memberships, err := s.repository.FindMembershipsByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}

	sort.SliceStable(memberships, func(i, j int) bool {
		return memberships[i].SortOrder < memberships[j].SortOrder
	})

	result := make([]domain.FieldDefinition, 0, len(memberships))
	for _, membership := range memberships {
		def, err := s.definitions.GetByID(ctx, membership.FieldDefinitionID)
		if err != nil {
			if errors.Is(err, ErrFieldDefinitionNotFound) {
				continue
			}
			return nil, fmt.Errorf("loading group field: %w", err)
		}
		if def.IsDeleted() {
			continue
		}
		result = append(result, def)
	}

	return result, nil
}

// DeleteGroup removes the group and its membership rows. The field
// definitions themselves are never touched.
func (s *SimpleFieldGroupService) DeleteGroup(ctx context.Context, id domain.ID) error {
	group, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			return ErrGroupNotFound
		}
		return fmt.Errorf("getting field group: %w", err)
	}

	if !s.authorizer.CanModifySchema(ctx, group.CategoryID) {
		return ErrSchemaModificationDenied
	}

	if err := s.repository.DeleteMembershipsByGroup(ctx, id); err != nil {
		return fmt.Errorf("cascading memberships: %w", err)
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting field group", slog.String("error", err.Error()))
		return fmt.Errorf("deleting field group: %w", err)
	}

	slog.Info("field group deleted", slog.String("id", id.String()))
	return nil
}
