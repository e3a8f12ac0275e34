package persistence

import (
	"context"
	"testing"

	"staybook-server/internal/schema_plane/usecases"
	"staybook-server/internal/shared_kernel/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedReservedTypesIsIdempotent(t *testing.T) {
	fixture := newSchemaFixture(t)
	ctx := context.Background()

	// The fixture already seeded once; a second run must not duplicate.
	err := fixture.typeService.SeedReservedTypes(ctx)
	require.NoError(t, err)

	fieldTypes, err := fixture.typeService.ListFieldTypes(ctx, false)
	require.NoError(t, err)
	assert.Len(t, fieldTypes, len(domain.ReservedFieldTypes()))
}

func TestFieldTypeRepository_GetByNameIsCaseInsensitive(t *testing.T) {
	fixture := newSchemaFixture(t)
	ctx := context.Background()

	fieldType, err := fixture.fieldTypes.GetByName(ctx, "  TEXT ")
	require.NoError(t, err)
	assert.Equal(t, "text", fieldType.Name)
	assert.True(t, fieldType.IsReserved())
}

func TestFieldTypeRepository_RuleSchemaRoundTrip(t *testing.T) {
	fixture := newSchemaFixture(t)

	fieldType := fixture.reservedType(t, "text")
	assert.True(t, fieldType.RuleSchema.Allows(domain.RuleMinLength))
	assert.True(t, fieldType.RuleSchema.Allows(domain.RulePattern))
	assert.False(t, fieldType.RuleSchema.Allows(domain.RuleMin))

	number := fixture.reservedType(t, "number")
	assert.True(t, number.RuleSchema.Allows(domain.RuleMin))
	assert.False(t, number.RuleSchema.Allows(domain.RulePattern))
}

func TestCreateFieldType_RejectsDuplicateName(t *testing.T) {
	fixture := newSchemaFixture(t)
	ctx := context.Background()

	custom, err := domain.NewFieldTypeBuilder().
		WithName("currency").
		WithDisplayName("Currency").
		Build()
	require.NoError(t, err)
	require.NoError(t, fixture.typeService.CreateFieldType(ctx, custom))

	clash, err := domain.NewFieldTypeBuilder().
		WithName("Currency").
		WithDisplayName("Currency Again").
		Build()
	require.NoError(t, err)

	err = fixture.typeService.CreateFieldType(ctx, clash)
	assert.ErrorIs(t, err, usecases.ErrDuplicateTypeName)
}

func TestDeactivateFieldType(t *testing.T) {
	fixture := newSchemaFixture(t)
	ctx := context.Background()

	t.Run("reserved types are protected", func(t *testing.T) {
		reserved := fixture.reservedType(t, "select")

		err := fixture.typeService.DeactivateFieldType(ctx, reserved.ID)
		assert.ErrorIs(t, err, usecases.ErrProtectedType)
	})

	t.Run("unused custom type deactivates", func(t *testing.T) {
		custom, err := domain.NewFieldTypeBuilder().
			WithName("season").
			WithDisplayName("Season").
			Build()
		require.NoError(t, err)
		require.NoError(t, fixture.typeService.CreateFieldType(ctx, custom))

		require.NoError(t, fixture.typeService.DeactivateFieldType(ctx, custom.ID))

		reloaded, err := fixture.typeService.GetFieldType(ctx, custom.ID)
		require.NoError(t, err)
		assert.False(t, reloaded.IsActive)
	})

	t.Run("referenced type cannot be deactivated", func(t *testing.T) {
		custom, err := domain.NewFieldTypeBuilder().
			WithName("distance").
			WithDisplayName("Distance").
			Build()
		require.NoError(t, err)
		require.NoError(t, fixture.typeService.CreateFieldType(ctx, custom))

		def, err := domain.NewFieldDefinitionBuilder().
			WithCategoryID(domain.ID("cat-villas")).
			WithType(custom).
			WithFieldName("distance_to_beach").
			WithDisplayName("Distance to Beach").
			Build()
		require.NoError(t, err)
		require.NoError(t, fixture.defService.DefineField(ctx, def))

		err = fixture.typeService.DeactivateFieldType(ctx, custom.ID)
		assert.ErrorIs(t, err, usecases.ErrFieldTypeInUse)
	})
}
