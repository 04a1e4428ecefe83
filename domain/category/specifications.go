package category

import (
	"context"
	"strings"

	"catalog/domain/shared"
)

// NameMatches reports whether the category name contains term, ignoring case
func NameMatches(c *Category, term string) bool {
	return strings.Contains(strings.ToLower(c.Name()), strings.ToLower(term))
}

type NameContainsSpecification struct {
	Term string
}

func (spec NameContainsSpecification) IsSatisfiedBy(ctx context.Context, entity *Category) bool {
	return NameMatches(entity, spec.Term)
}

type ByStatusSpecification struct {
	Active bool
}

func (spec ByStatusSpecification) IsSatisfiedBy(ctx context.Context, entity *Category) bool {
	return entity.IsActive() == spec.Active
}

func NewNameContainsSpecification(term string) shared.Specification[*Category] {
	return NameContainsSpecification{Term: term}
}
func NewByStatusSpecification(active bool) shared.Specification[*Category] {
	return ByStatusSpecification{Active: active}
}
