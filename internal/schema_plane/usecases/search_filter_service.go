package usecases

import (
	"context"
	"fmt"
	"sort"

	"staybook-server/internal/shared_kernel/domain"
)

type SearchFilterService interface {
	ProjectSearchFilters(ctx context.Context, categoryID domain.ID) ([]domain.SearchFilterDescriptor, error)
}

func NewSearchFilterService(definitions FieldDefinitionRepository) *SimpleSearchFilterService {
	return &SimpleSearchFilterService{definitions: definitions}
}

var _ SearchFilterService = (*SimpleSearchFilterService)(nil)

type SimpleSearchFilterService struct {
	definitions FieldDefinitionRepository
}

// ProjectSearchFilters recomputes the filter descriptors for a category's
// searchable fields. The projection is derived state: it is never persisted
// independently of the definitions it comes from.
func (s *SimpleSearchFilterService) ProjectSearchFilters(ctx context.Context, categoryID domain.ID) ([]domain.SearchFilterDescriptor, error) {
	defs, err := s.definitions.FindByCategory(ctx, categoryID, false)
	if err != nil {
		return nil, fmt.Errorf("listing category fields: %w", err)
	}

	return ProjectFilters(defs), nil
}

// ProjectFilters is the pure mapping from definitions to filter descriptors.
// Order is stable: definition sort order, then field name.
func ProjectFilters(defs []domain.FieldDefinition) []domain.SearchFilterDescriptor {
	searchable := make([]domain.FieldDefinition, 0, len(defs))
	for _, def := range defs {
		if def.IsSearchable && !def.IsDeleted() {
			searchable = append(searchable, def)
		}
	}

	sort.SliceStable(searchable, func(i, j int) bool {
		if searchable[i].SortOrder != searchable[j].SortOrder {
			return searchable[i].SortOrder < searchable[j].SortOrder
		}
		return searchable[i].FieldName < searchable[j].FieldName
	})

	result := make([]domain.SearchFilterDescriptor, 0, len(searchable))
	for _, def := range searchable {
		descriptor := domain.SearchFilterDescriptor{
			FieldName:   def.FieldName,
			DisplayName: def.DisplayName,
			FilterType:  domain.FilterTypeForKind(def.Kind()),
		}
		if def.Kind().RequiresOptions() {
			descriptor.Options = def.Options
		}
		result = append(result, descriptor)
	}

	return result
}
