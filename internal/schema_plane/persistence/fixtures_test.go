package persistence

import (
	"context"
	"testing"

	"staybook-server/internal/infra/sql"
	"staybook-server/internal/schema_plane/usecases"
	"staybook-server/internal/shared_kernel/domain"
	valuepersistence "staybook-server/internal/value_plane/persistence"

	"github.com/stretchr/testify/require"
)

// schemaFixture wires the full schema plane against an in-memory database so
// repository and service behavior can be exercised together.
type schemaFixture struct {
	orm         sql.ORM
	fieldTypes  *SimpleFieldTypeRepository
	definitions *SimpleFieldDefinitionRepository
	groups      *SimpleFieldGroupRepository
	values      *valuepersistence.SimpleStoredValueRepository

	typeService  usecases.FieldTypeService
	defService   usecases.FieldDefinitionService
	groupService usecases.FieldGroupService
}

func newSchemaFixture(t *testing.T) *schemaFixture {
	t.Helper()

	orm, err := sql.NewMemoryORM()
	require.NoError(t, err)

	fieldTypes, err := NewFieldTypeRepository(orm)
	require.NoError(t, err)

	definitions, err := NewFieldDefinitionRepository(orm)
	require.NoError(t, err)

	groups, err := NewFieldGroupRepository(orm)
	require.NoError(t, err)

	values, err := valuepersistence.NewStoredValueRepository(orm)
	require.NoError(t, err)

	typeService := usecases.NewFieldTypeService(fieldTypes, definitions)
	require.NoError(t, typeService.SeedReservedTypes(context.Background()))

	return &schemaFixture{
		orm:          orm,
		fieldTypes:   fieldTypes,
		definitions:  definitions,
		groups:       groups,
		values:       values,
		typeService:  typeService,
		defService:   usecases.NewFieldDefinitionService(definitions, fieldTypes, values, usecases.AllowAllAuthorizer{}),
		groupService: usecases.NewFieldGroupService(groups, definitions, usecases.AllowAllAuthorizer{}),
	}
}

func (f *schemaFixture) reservedType(t *testing.T, name string) domain.FieldType {
	t.Helper()

	fieldType, err := f.typeService.GetFieldTypeByName(context.Background(), name)
	require.NoError(t, err)
	return fieldType
}
