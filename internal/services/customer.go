package service

import (
	"context"

	"github.com/storekeeperhq/pos-platform/internal/errors"
	"github.com/storekeeperhq/pos-platform/internal/models"
	repository "github.com/storekeeperhq/pos-platform/internal/repositories"
	"github.com/storekeeperhq/pos-platform/internal/utils"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	ListCustomers(ctx context.Context) ([]models.Customer, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {

	customer := &models.Customer{
		Name:  utils.SanitizeText(req.Name),
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}

		return nil, errors.DatabaseError("Failed to create customer").WithError(err)
	}

	return customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	return s.repo.GetCustomerByID(ctx, id)
}

func (s *customerService) UpdateCustomer(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.Customer, error) {

	customer, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = utils.SanitizeText(*req.Name)
	}

	if req.Email != nil {
		customer.Email = req.Email
	}

	if req.Phone != nil {
		customer.Phone = req.Phone
	}

	if err := s.repo.UpdateCustomer(ctx, customer); err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}

		return nil, errors.DatabaseError("Failed to update customer").WithError(err)
	}

	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	return s.repo.DeleteCustomer(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {

	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch customers").WithError(err)
	}

	return customers, nil
}
