package service

import (
	"context"

	"github.com/storekeeperhq/pos-platform/internal/errors"
	"github.com/storekeeperhq/pos-platform/internal/models"
	repository "github.com/storekeeperhq/pos-platform/internal/repositories"
	"github.com/storekeeperhq/pos-platform/internal/utils"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, page, size int) ([]models.Product, int, error)
	AdjustStock(ctx context.Context, id, delta int64) (*models.Product, error)
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, supplierRepo repository.SupplierRepository) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	if _, err := s.categoryRepo.GetCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, errors.ValidationError("Category does not exist").WithError(err)
	}

	if _, err := s.supplierRepo.GetSupplierByID(ctx, req.SupplierID); err != nil {
		return nil, errors.ValidationError("Supplier does not exist").WithError(err)
	}

	product := &models.Product{
		Name:       utils.SanitizeText(req.Name),
		CategoryID: req.CategoryID,
		SupplierID: req.SupplierID,
		Price:      req.Price,
		Stock:      req.Stock,
		Barcode:    req.Barcode,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}

		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = utils.SanitizeText(*req.Name)
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, errors.ValidationError("Category does not exist").WithError(err)
		}

		product.CategoryID = *req.CategoryID
	}

	if req.SupplierID != nil {
		if _, err := s.supplierRepo.GetSupplierByID(ctx, *req.SupplierID); err != nil {
			return nil, errors.ValidationError("Supplier does not exist").WithError(err)
		}

		product.SupplierID = *req.SupplierID
	}

	if req.Price != nil {
		product.Price = *req.Price
	}

	if req.Barcode != nil {
		product.Barcode = *req.Barcode
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}

		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *productService) ListProducts(ctx context.Context, page, size int) ([]models.Product, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 20
	}

	products, total, err := s.repo.ListProducts(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}

// AdjustStock applies a signed delta through the atomic stock ledger.
func (s *productService) AdjustStock(ctx context.Context, id, delta int64) (*models.Product, error) {

	if delta == 0 {
		return nil, errors.ValidationError("Stock adjustment must be non-zero")
	}

	product, err := s.repo.AdjustStock(ctx, id, delta)
	if err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}

		return nil, errors.DatabaseError("Failed to adjust stock").WithError(err)
	}

	return product, nil
}
