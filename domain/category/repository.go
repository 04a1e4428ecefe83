package category

import (
	"context"

	"catalog/domain/shared"
)

// Repository Category repository interface
// Search filter is a name fragment matched case-insensitively; "" means no filter
type Repository interface {
	shared.SearchableRepository[*Category, shared.Uuid, string]

	// FindBySpecification Find categories by specification
	// Allows flexible query composition without repository method explosion
	FindBySpecification(ctx context.Context, spec shared.Specification[*Category]) ([]*Category, error)
}

// SortableFields fields accepted by Search sort
var SortableFields = []string{"name", "created_at"}

// DefaultSortField applied descending when no sort is requested
const DefaultSortField = "created_at"
