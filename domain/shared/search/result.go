package search

// Result is one page of a search.
// len(Items) <= PerPage and CurrentPage is 1-indexed.
type Result[E any, F comparable] struct {
	Items       []E
	Total       int
	CurrentPage int
	PerPage     int
	LastPage    int
	Sort        string
	SortDir     SortDirection
	Filter      F
}

// NewResult builds a page from already-paginated items and echoes the criteria in params.
func NewResult[E any, F comparable](items []E, total int, params Params[F]) *Result[E, F] {
	return &Result[E, F]{
		Items:       items,
		Total:       total,
		CurrentPage: params.Page(),
		PerPage:     params.PerPage(),
		LastPage:    lastPage(total, params.PerPage()),
		Sort:        params.Sort(),
		SortDir:     params.SortDir(),
		Filter:      params.Filter(),
	}
}

func lastPage(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// ToJSON returns the paging metadata plus items mapped through toItem.
func (r *Result[E, F]) ToJSON(toItem func(E) map[string]any) map[string]any {
	items := make([]map[string]any, len(r.Items))
	for i, item := range r.Items {
		items[i] = toItem(item)
	}
	return map[string]any{
		"items":        items,
		"total":        r.Total,
		"current_page": r.CurrentPage,
		"per_page":     r.PerPage,
		"last_page":    r.LastPage,
	}
}
