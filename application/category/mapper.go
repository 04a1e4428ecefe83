package category

import (
	"catalog/domain/category"
	"catalog/domain/shared/search"
)

func toCategoryProps(req CreateCategoryRequest) category.Props {
	return category.Props{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}
}

func toCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.CategoryID().String(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}

func toListResponse(result *search.Result[*category.Category, string]) *ListCategoriesResponse {
	items := make([]*CategoryResponse, len(result.Items))
	for i, c := range result.Items {
		items[i] = toCategoryResponse(c)
	}
	return &ListCategoriesResponse{
		Items:       items,
		Total:       result.Total,
		CurrentPage: result.CurrentPage,
		PerPage:     result.PerPage,
		LastPage:    result.LastPage,
	}
}
