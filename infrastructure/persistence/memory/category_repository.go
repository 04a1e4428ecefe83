package memory

import (
	"catalog/domain/category"
	"catalog/domain/shared"
)

// CategoryRepository is the in-memory category.Repository.
// The search filter matches names case-insensitively; sortable fields are
// name and created_at, newest first by default.
type CategoryRepository struct {
	*InMemorySearchableRepository[*category.Category, shared.Uuid, string]
}

func NewCategoryRepository(opts ...Option) *CategoryRepository {
	hooks := SearchHooks[*category.Category, string]{
		Filter: category.NameMatches,
		SortableFields: map[string]SortFunc[*category.Category]{
			"name":       SortBy((*category.Category).Name),
			"created_at": SortByTime((*category.Category).CreatedAt),
		},
		DefaultSort: category.DefaultSortField,
	}
	return &CategoryRepository{
		InMemorySearchableRepository: NewInMemorySearchableRepository[*category.Category, shared.Uuid](hooks, opts...),
	}
}

var _ category.Repository = (*CategoryRepository)(nil)
