package service

import (
	"context"

	"github.com/storekeeperhq/pos-platform/internal/errors"
	"github.com/storekeeperhq/pos-platform/internal/models"
	repository "github.com/storekeeperhq/pos-platform/internal/repositories"
	"github.com/storekeeperhq/pos-platform/internal/utils"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {

	name := utils.SanitizeText(req.Name)
	if name == "" {
		return nil, errors.ValidationError("Category name must not be empty")
	}

	if req.ParentID != nil {
		if _, err := s.repo.GetCategoryByID(ctx, *req.ParentID); err != nil {
			return nil, errors.ValidationError("Parent category does not exist").WithError(err)
		}
	}

	category := &models.Category{
		Name:     name,
		ParentID: req.ParentID,
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}

		return nil, errors.DatabaseError("Failed to create category").WithError(err)
	}

	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, req *models.UpdateCategoryRequest) (*models.Category, error) {

	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := utils.SanitizeText(*req.Name)
		if name == "" {
			return nil, errors.ValidationError("Category name must not be empty")
		}

		category.Name = name
	}

	if req.ParentID != nil {
		if _, err := s.repo.GetCategoryByID(ctx, *req.ParentID); err != nil {
			return nil, errors.ValidationError("Parent category does not exist").WithError(err)
		}

		category.ParentID = req.ParentID
	}

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}

		return nil, errors.DatabaseError("Failed to update category").WithError(err)
	}

	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, nil
}
