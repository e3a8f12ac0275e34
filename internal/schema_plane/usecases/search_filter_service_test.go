package usecases_test

import (
	"testing"

	"staybook-server/internal/infra/utils"
	"staybook-server/internal/schema_plane/usecases"
	"staybook-server/internal/shared_kernel/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func searchableField(t *testing.T, typeName, fieldName string, sortOrder int, configure ...func(*domain.FieldDefinition)) domain.FieldDefinition {
	t.Helper()

	fieldType, err := domain.NewFieldTypeBuilder().
		WithName(typeName).
		WithDisplayName(typeName).
		Build()
	require.NoError(t, err)

	def, err := domain.NewFieldDefinitionBuilder().
		WithCategoryID(domain.ID(utils.GenerateUUID())).
		WithType(fieldType).
		WithFieldName(fieldName).
		WithDisplayName(fieldName).
		WithSearchable(true).
		WithSortOrder(sortOrder).
		Build()
	require.NoError(t, err)

	for _, fn := range configure {
		fn(&def)
	}
	return def
}

func TestProjectFilters(t *testing.T) {
	options := domain.OptionSet{
		{Key: "sea", Value: "Sea"},
		{Key: "garden", Value: "Garden"},
	}

	defs := []domain.FieldDefinition{
		searchableField(t, "select", "view_type", 30, func(d *domain.FieldDefinition) {
			d.Options = options
		}),
		searchableField(t, "number", "max_guests", 10),
		searchableField(t, "boolean", "has_pool", 20),
		searchableField(t, "text", "house_rules", 5, func(d *domain.FieldDefinition) {
			d.IsSearchable = false
		}),
		searchableField(t, "date", "available_from", 40),
	}

	got := usecases.ProjectFilters(defs)

	want := []domain.SearchFilterDescriptor{
		{FieldName: "max_guests", DisplayName: "max_guests", FilterType: domain.FilterTypeRange},
		{FieldName: "has_pool", DisplayName: "has_pool", FilterType: domain.FilterTypeBoolean},
		{FieldName: "view_type", DisplayName: "view_type", FilterType: domain.FilterTypeSelect, Options: options},
		{FieldName: "available_from", DisplayName: "available_from", FilterType: domain.FilterTypeRange},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected projection (-want +got):\n%s", diff)
	}
}

func TestProjectFilters_SortOrderTiesBreakOnFieldName(t *testing.T) {
	defs := []domain.FieldDefinition{
		searchableField(t, "text", "zebra", 10),
		searchableField(t, "text", "alpha", 10),
	}

	got := usecases.ProjectFilters(defs)

	require.Len(t, got, 2)
	require.Equal(t, "alpha", got[0].FieldName)
	require.Equal(t, "zebra", got[1].FieldName)
}

func TestProjectFilters_SkipsDeletedDefinitions(t *testing.T) {
	deleted := searchableField(t, "text", "old_field", 1)
	deleted.SoftDelete()

	got := usecases.ProjectFilters([]domain.FieldDefinition{deleted})

	require.Empty(t, got)
}

func TestProjectFilters_TextIsContains(t *testing.T) {
	got := usecases.ProjectFilters([]domain.FieldDefinition{
		searchableField(t, "text", "house_rules", 1),
	})

	require.Len(t, got, 1)
	require.Equal(t, domain.FilterTypeContains, got[0].FilterType)
}
