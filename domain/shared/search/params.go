// Package search holds the paging, sorting and filtering criteria passed to
// searchable repositories and the page they return.
package search

import (
	"math"
	"strings"
)

// SortDirection represents ordering direction for sortable fields.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 15
)

// ParseSortDirection accepts "asc"/"desc" in any case. Anything else is reported as not ok.
func ParseSortDirection(s string) (SortDirection, bool) {
	switch SortDirection(strings.ToLower(strings.TrimSpace(s))) {
	case SortAsc:
		return SortAsc, true
	case SortDesc:
		return SortDesc, true
	}
	return "", false
}

// Options are the raw, unnormalised search inputs.
type Options[F comparable] struct {
	Page    int
	PerPage int
	Sort    string
	SortDir string
	Filter  F
}

// Params are normalised search criteria. Build them with NewParams.
// A zero Filter means "no filter".
type Params[F comparable] struct {
	page    int
	perPage int
	sort    string
	sortDir SortDirection
	filter  F
}

// NewParams normalises opts:
//   - page < 1 becomes DefaultPage
//   - per_page < 1 becomes DefaultPerPage
//   - an empty sort clears sort_dir
//   - a sort with an unknown sort_dir falls back to asc
func NewParams[F comparable](opts Options[F]) Params[F] {
	p := Params[F]{
		page:    opts.Page,
		perPage: opts.PerPage,
		sort:    strings.TrimSpace(opts.Sort),
		filter:  opts.Filter,
	}
	if p.page < 1 {
		p.page = DefaultPage
	}
	if p.perPage < 1 {
		p.perPage = DefaultPerPage
	}
	if p.sort != "" {
		dir, ok := ParseSortDirection(opts.SortDir)
		if !ok {
			dir = SortAsc
		}
		p.sortDir = dir
	}
	return p
}

func (p Params[F]) Page() int              { return p.page }
func (p Params[F]) PerPage() int           { return p.perPage }
func (p Params[F]) Sort() string           { return p.sort }
func (p Params[F]) SortDir() SortDirection { return p.sortDir }
func (p Params[F]) Filter() F              { return p.filter }

// HasFilter reports whether a non-zero filter was supplied.
func (p Params[F]) HasFilter() bool {
	var zero F
	return p.filter != zero
}

// Offset is the index of the first item on the requested page. It saturates
// at math.MaxInt instead of overflowing for very large pages.
func (p Params[F]) Offset() int {
	if p.page < 1 || p.perPage < 1 {
		return 0
	}
	if p.page-1 > math.MaxInt/p.perPage {
		return math.MaxInt
	}
	return (p.page - 1) * p.perPage
}
