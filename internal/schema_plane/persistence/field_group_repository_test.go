package persistence

import (
	"context"
	"testing"

	"staybook-server/internal/infra/utils"
	"staybook-server/internal/schema_plane/usecases"
	"staybook-server/internal/shared_kernel/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *schemaFixture) newGroup(t *testing.T, categoryID domain.ID, name string) domain.FieldGroup {
	t.Helper()

	group, err := domain.NewFieldGroupBuilder().
		WithCategoryID(categoryID).
		WithGroupName(name).
		WithDisplayName(name).
		Build()
	require.NoError(t, err)
	require.NoError(t, f.groupService.CreateGroup(context.Background(), group))
	return group
}

func (f *schemaFixture) newTextField(t *testing.T, categoryID domain.ID, name string) domain.FieldDefinition {
	t.Helper()

	def, err := domain.NewFieldDefinitionBuilder().
		WithCategoryID(categoryID).
		WithType(f.reservedType(t, "text")).
		WithFieldName(name).
		WithDisplayName(name).
		Build()
	require.NoError(t, err)
	require.NoError(t, f.defService.DefineField(context.Background(), def))
	return def
}

func TestCreateGroup_RejectsDuplicateName(t *testing.T) {
	fixture := newSchemaFixture(t)
	ctx := context.Background()
	categoryID := domain.ID(utils.GenerateUUID())

	fixture.newGroup(t, categoryID, "amenities")

	clash, err := domain.NewFieldGroupBuilder().
		WithCategoryID(categoryID).
		WithGroupName("amenities").
		WithDisplayName("Amenities Again").
		Build()
	require.NoError(t, err)

	err = fixture.groupService.CreateGroup(ctx, clash)
	assert.ErrorIs(t, err, usecases.ErrDuplicateGroupName)
}

func TestAttachField(t *testing.T) {
	fixture := newSchemaFixture(t)
	ctx := context.Background()
	categoryID := domain.ID(utils.GenerateUUID())

	groupA := fixture.newGroup(t, categoryID, "amenities")
	groupB := fixture.newGroup(t, categoryID, "location")
	field := fixture.newTextField(t, categoryID, "wifi_details")

	t.Run("attaching elsewhere moves the field", func(t *testing.T) {
		require.NoError(t, fixture.groupService.AttachField(ctx, groupA.ID, field.ID, 1))
		require.NoError(t, fixture.groupService.AttachField(ctx, groupB.ID, field.ID, 1))

		inA, err := fixture.groupService.ListGroupFields(ctx, groupA.ID)
		require.NoError(t, err)
		assert.Empty(t, inA)

		inB, err := fixture.groupService.ListGroupFields(ctx, groupB.ID)
		require.NoError(t, err)
		require.Len(t, inB, 1)
		assert.Equal(t, field.ID, inB[0].ID)
	})

	t.Run("cross-category attachment is rejected", func(t *testing.T) {
		foreign := fixture.newTextField(t, domain.ID(utils.GenerateUUID()), "checkin_notes")

		err := fixture.groupService.AttachField(ctx, groupA.ID, foreign.ID, 1)
		assert.ErrorIs(t, err, usecases.ErrCrossCategoryAttachment)
	})

	t.Run("unknown group", func(t *testing.T) {
		err := fixture.groupService.AttachField(ctx, domain.ID(utils.GenerateUUID()), field.ID, 1)
		assert.ErrorIs(t, err, usecases.ErrGroupNotFound)
	})
}

func TestListGroupFields_OrderedByMembershipSortOrder(t *testing.T) {
	fixture := newSchemaFixture(t)
	ctx := context.Background()
	categoryID := domain.ID(utils.GenerateUUID())

	group := fixture.newGroup(t, categoryID, "amenities")
	first := fixture.newTextField(t, categoryID, "pool_details")
	second := fixture.newTextField(t, categoryID, "wifi_details")
	third := fixture.newTextField(t, categoryID, "parking_details")

	require.NoError(t, fixture.groupService.AttachField(ctx, group.ID, third.ID, 30))
	require.NoError(t, fixture.groupService.AttachField(ctx, group.ID, first.ID, 10))
	require.NoError(t, fixture.groupService.AttachField(ctx, group.ID, second.ID, 20))

	fields, err := fixture.groupService.ListGroupFields(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, fields, 3)
	assert.Equal(t, first.ID, fields[0].ID)
	assert.Equal(t, second.ID, fields[1].ID)
	assert.Equal(t, third.ID, fields[2].ID)

	t.Run("soft-deleted members are skipped", func(t *testing.T) {
		require.NoError(t, fixture.defService.DeleteField(ctx, second.ID))

		fields, err := fixture.groupService.ListGroupFields(ctx, group.ID)
		require.NoError(t, err)
		require.Len(t, fields, 2)
		assert.Equal(t, first.ID, fields[0].ID)
		assert.Equal(t, third.ID, fields[1].ID)
	})
}

func TestDetachField(t *testing.T) {
	fixture := newSchemaFixture(t)
	ctx := context.Background()
	categoryID := domain.ID(utils.GenerateUUID())

	group := fixture.newGroup(t, categoryID, "amenities")
	field := fixture.newTextField(t, categoryID, "wifi_details")

	require.NoError(t, fixture.groupService.AttachField(ctx, group.ID, field.ID, 1))
	require.NoError(t, fixture.groupService.DetachField(ctx, field.ID))

	err := fixture.groupService.DetachField(ctx, field.ID)
	assert.ErrorIs(t, err, usecases.ErrMembershipNotFound)
}

func TestDeleteGroup_CascadesMembershipsOnly(t *testing.T) {
	fixture := newSchemaFixture(t)
	ctx := context.Background()
	categoryID := domain.ID(utils.GenerateUUID())

	group := fixture.newGroup(t, categoryID, "amenities")
	field := fixture.newTextField(t, categoryID, "wifi_details")
	require.NoError(t, fixture.groupService.AttachField(ctx, group.ID, field.ID, 1))

	require.NoError(t, fixture.groupService.DeleteGroup(ctx, group.ID))

	_, err := fixture.groupService.GetGroup(ctx, group.ID)
	assert.ErrorIs(t, err, usecases.ErrGroupNotFound)

	_, err = fixture.groups.GetMembershipByField(ctx, field.ID)
	assert.ErrorIs(t, err, usecases.ErrMembershipNotFound)

	// The definition itself is untouched.
	def, err := fixture.defService.GetField(ctx, field.ID)
	require.NoError(t, err)
	assert.False(t, def.IsDeleted())
}
