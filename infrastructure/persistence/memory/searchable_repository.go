package memory

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"time"

	"catalog/domain/shared"
	"catalog/domain/shared/search"
)

// ErrFilterUnsupported is returned by Search when a filter is requested from a
// repository built without a Filter hook.
var ErrFilterUnsupported = errors.New("repository does not support filtering")

// FilterFunc reports whether item matches a non-zero filter value.
type FilterFunc[E any, F comparable] func(item E, filter F) bool

// SortFunc orders two entities ascending: negative when a < b, zero when equal.
type SortFunc[E any] func(a, b E) int

// SortBy builds a SortFunc from the natural ordering of an extracted field.
func SortBy[E any, V cmp.Ordered](get func(E) V) SortFunc[E] {
	return func(a, b E) int { return cmp.Compare(get(a), get(b)) }
}

// SortByTime builds a SortFunc over a timestamp field.
func SortByTime[E any](get func(E) time.Time) SortFunc[E] {
	return func(a, b E) int { return get(a).Compare(get(b)) }
}

// SearchHooks customise which items match a search and how they are ordered.
type SearchHooks[E any, F comparable] struct {
	// Filter is only invoked for a non-zero filter value. Without it, Search
	// rejects any non-zero filter with ErrFilterUnsupported.
	Filter FilterFunc[E, F]

	// SortableFields maps a sort field name to its comparator.
	SortableFields map[string]SortFunc[E]

	// DefaultSort names the field used when no sort is requested. It is
	// always applied descending.
	DefaultSort string
}

// InMemorySearchableRepository adds filter/sort/paginate search on top of InMemoryRepository.
type InMemorySearchableRepository[E shared.Entity[ID], ID shared.Identifier, F comparable] struct {
	*InMemoryRepository[E, ID]
	hooks SearchHooks[E, F]
}

func NewInMemorySearchableRepository[E shared.Entity[ID], ID shared.Identifier, F comparable](
	hooks SearchHooks[E, F],
	opts ...Option,
) *InMemorySearchableRepository[E, ID, F] {
	return &InMemorySearchableRepository[E, ID, F]{
		InMemoryRepository: NewInMemoryRepository[E, ID](opts...),
		hooks:              hooks,
	}
}

// Search filters, then sorts, then paginates. Total counts the filtered items
// before pagination.
func (r *InMemorySearchableRepository[E, ID, F]) Search(ctx context.Context, params search.Params[F]) (*search.Result[E, F], error) {
	if params.HasFilter() && r.hooks.Filter == nil {
		return nil, ErrFilterUnsupported
	}
	filtered := r.ApplyFilter(r.Items(), params.Filter())
	sorted := r.ApplySort(filtered, params.Sort(), params.SortDir())
	page := paginate(sorted, params.Offset(), params.PerPage())
	return search.NewResult(page, len(filtered), params), nil
}

// ApplyFilter returns items unchanged, without calling the filter hook, when
// filter is the zero value or no hook is configured.
func (r *InMemorySearchableRepository[E, ID, F]) ApplyFilter(items []E, filter F) []E {
	var zero F
	if filter == zero || r.hooks.Filter == nil {
		return items
	}

	result := make([]E, 0, len(items))
	for _, item := range items {
		if r.hooks.Filter(item, filter) {
			result = append(result, item)
		}
	}
	return result
}

// ApplySort returns a newly ordered slice; items itself is not reordered.
// An empty sort uses the default sort field descending. A field that is not
// sortable leaves the order untouched. Ties keep their relative order.
func (r *InMemorySearchableRepository[E, ID, F]) ApplySort(items []E, sort string, dir search.SortDirection) []E {
	if sort == "" {
		return r.sortBy(items, r.hooks.DefaultSort, search.SortDesc)
	}
	return r.sortBy(items, sort, dir)
}

func (r *InMemorySearchableRepository[E, ID, F]) sortBy(items []E, field string, dir search.SortDirection) []E {
	compare, ok := r.hooks.SortableFields[field]
	if !ok {
		return items
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b E) int {
		if dir == search.SortDesc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return sorted
}

func paginate[E any](items []E, offset, limit int) []E {
	if offset < 0 || offset >= len(items) || limit <= 0 {
		return []E{}
	}
	end := offset + min(limit, len(items)-offset)
	return slices.Clone(items[offset:end])
}

var _ shared.SearchableRepository[shared.Entity[shared.Uuid], shared.Uuid, string] = (*InMemorySearchableRepository[shared.Entity[shared.Uuid], shared.Uuid, string])(nil)
