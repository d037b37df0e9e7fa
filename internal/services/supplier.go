package service

import (
	"context"

	"github.com/storekeeperhq/pos-platform/internal/errors"
	"github.com/storekeeperhq/pos-platform/internal/models"
	repository "github.com/storekeeperhq/pos-platform/internal/repositories"
	"github.com/storekeeperhq/pos-platform/internal/utils"
)

type SupplierService interface {
	CreateSupplier(ctx context.Context, req *models.CreateSupplierRequest) (*models.Supplier, error)
	UpdateSupplier(ctx context.Context, id int64, req *models.UpdateSupplierRequest) (*models.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) CreateSupplier(ctx context.Context, req *models.CreateSupplierRequest) (*models.Supplier, error) {

	name := utils.SanitizeText(req.Name)
	if name == "" {
		return nil, errors.ValidationError("Supplier name must not be empty")
	}

	supplier := &models.Supplier{
		Name:    name,
		Contact: utils.SanitizeText(req.Contact),
	}

	if err := s.repo.CreateSupplier(ctx, supplier); err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}

		return nil, errors.DatabaseError("Failed to create supplier").WithError(err)
	}

	return supplier, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, id int64, req *models.UpdateSupplierRequest) (*models.Supplier, error) {

	supplier, err := s.repo.GetSupplierByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := utils.SanitizeText(*req.Name)
		if name == "" {
			return nil, errors.ValidationError("Supplier name must not be empty")
		}

		supplier.Name = name
	}

	if req.Contact != nil {
		supplier.Contact = utils.SanitizeText(*req.Contact)
	}

	if err := s.repo.UpdateSupplier(ctx, supplier); err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}

		return nil, errors.DatabaseError("Failed to update supplier").WithError(err)
	}

	return supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id int64) error {
	return s.repo.DeleteSupplier(ctx, id)
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {

	suppliers, err := s.repo.ListSuppliers(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch suppliers").WithError(err)
	}

	return suppliers, nil
}
