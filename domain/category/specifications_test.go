package category

import (
	"context"
	"testing"

	"catalog/domain/shared"

	"github.com/stretchr/testify/assert"
)

func TestNameMatches(t *testing.T) {
	c := NewCategory(Props{Name: "Documentary"})

	assert.True(t, NameMatches(c, "docu"))
	assert.True(t, NameMatches(c, "MENT"))
	assert.True(t, NameMatches(c, ""))
	assert.False(t, NameMatches(c, "movie"))
}

func TestCategorySpecifications(t *testing.T) {
	ctx := context.Background()
	active := NewCategory(Props{Name: "Test active"})
	inactive := NewCategory(Props{Name: "test inactive", IsActive: ptr(false)})

	activeTests := shared.And(NewNameContainsSpecification("TEST"), NewByStatusSpecification(true))
	assert.True(t, activeTests.IsSatisfiedBy(ctx, active))
	assert.False(t, activeTests.IsSatisfiedBy(ctx, inactive))

	notActive := shared.Not(NewByStatusSpecification(true))
	assert.True(t, notActive.IsSatisfiedBy(ctx, inactive))
}
