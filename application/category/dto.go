package category

import "time"

// CreateCategoryRequest 表示创建分类的入参。
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// ListCategoriesRequest 表示分类搜索入参；零值字段使用默认分页与排序。
type ListCategoriesRequest struct {
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	Sort    string `json:"sort"`
	SortDir string `json:"sort_dir"`
	Filter  string `json:"filter"`
}

// CategoryResponse 表示分类返回模型。
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListCategoriesResponse 表示一页分类。
type ListCategoriesResponse struct {
	Items       []*CategoryResponse `json:"items"`
	Total       int                 `json:"total"`
	CurrentPage int                 `json:"current_page"`
	PerPage     int                 `json:"per_page"`
	LastPage    int                 `json:"last_page"`
}
