package category

import (
	"context"

	"catalog/config"
	"catalog/domain/category"
	"catalog/domain/shared"
	"catalog/domain/shared/search"
	apperrors "catalog/pkg/errors"
	"catalog/pkg/logger"

	"go.uber.org/zap"
)

// ApplicationService Category application service - coordinates category use cases
// Domain errors are logged here and returned as *apperrors.AppError
type ApplicationService struct {
	repo      category.Repository
	searchCfg config.SearchConfig
	log       *zap.Logger
}

// NewApplicationService Create category application service
func NewApplicationService(repo category.Repository, searchCfg config.SearchConfig) *ApplicationService {
	return &ApplicationService{
		repo:      repo,
		searchCfg: searchCfg,
		log:       logger.WithComponent("category-service"),
	}
}

// Create Create a category
func (s *ApplicationService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	c, err := category.Create(toCategoryProps(req))
	if err != nil {
		return nil, s.fail("create", err)
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, s.fail("create", err)
	}

	s.log.Info("category created", zap.String("category_id", c.CategoryID().String()))
	return toCategoryResponse(c), nil
}

// Get Get a category by id
func (s *ApplicationService) Get(ctx context.Context, id string) (*CategoryResponse, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, s.fail("get", err)
	}
	return toCategoryResponse(c), nil
}

// List Search categories
// Paging defaults come from config; per_page is capped at search.max_per_page
func (s *ApplicationService) List(ctx context.Context, req ListCategoriesRequest) (*ListCategoriesResponse, error) {
	perPage := req.PerPage
	if perPage < 1 {
		perPage = s.searchCfg.DefaultPerPage
	}
	if s.searchCfg.MaxPerPage > 0 && perPage > s.searchCfg.MaxPerPage {
		perPage = s.searchCfg.MaxPerPage
	}

	params := search.NewParams(search.Options[string]{
		Page:    req.Page,
		PerPage: perPage,
		Sort:    req.Sort,
		SortDir: req.SortDir,
		Filter:  req.Filter,
	})
	result, err := s.repo.Search(ctx, params)
	if err != nil {
		return nil, s.fail("list", err)
	}
	return toListResponse(result), nil
}

// Rename Change a category's name
func (s *ApplicationService) Rename(ctx context.Context, id, name string) (*CategoryResponse, error) {
	return s.mutate(ctx, "rename", id, func(c *category.Category) error {
		return c.ChangeName(name)
	})
}

// Describe Change or clear (nil) a category's description
func (s *ApplicationService) Describe(ctx context.Context, id string, description *string) (*CategoryResponse, error) {
	return s.mutate(ctx, "describe", id, func(c *category.Category) error {
		return c.ChangeDescription(description)
	})
}

// Activate Activate a category
func (s *ApplicationService) Activate(ctx context.Context, id string) (*CategoryResponse, error) {
	return s.mutate(ctx, "activate", id, (*category.Category).Activate)
}

// Deactivate Deactivate a category
func (s *ApplicationService) Deactivate(ctx context.Context, id string) (*CategoryResponse, error) {
	return s.mutate(ctx, "deactivate", id, (*category.Category).Deactivate)
}

// Delete Remove a category
func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return s.fail("delete", err)
	}
	if err := s.repo.Delete(ctx, uid); err != nil {
		return s.fail("delete", err)
	}
	s.log.Info("category deleted", zap.String("category_id", id))
	return nil
}

func (s *ApplicationService) mutate(ctx context.Context, op, id string, change func(*category.Category) error) (*CategoryResponse, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, s.fail(op, err)
	}
	if err := change(c); err != nil {
		return nil, s.fail(op, err)
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, s.fail(op, err)
	}
	return toCategoryResponse(c), nil
}

func (s *ApplicationService) find(ctx context.Context, id string) (*category.Category, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, shared.NewNotFoundError(s.repo.EntityKind(), id)
	}
	return c, nil
}

// parseID rejects the empty string instead of generating a fresh identifier
func parseID(id string) (shared.Uuid, error) {
	if id == "" {
		return shared.Uuid{}, shared.NewInvalidUuidError(id)
	}
	return shared.NewUuid(id)
}

// fail logs err and maps it to an application error
func (s *ApplicationService) fail(op string, err error) error {
	appErr := apperrors.MapDomainError(err)
	fields := append([]zap.Field{zap.String("op", op), zap.String("code", string(appErr.Code))}, logger.ErrorFields(err)...)
	if apperrors.Is(appErr, apperrors.CodeInternal) {
		s.log.Error("category operation failed", fields...)
	} else {
		s.log.Warn("category operation rejected", fields...)
	}
	return appErr
}
