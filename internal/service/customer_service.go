package service

import (
	"context"

	"github.com/google/uuid"

	"gstrly/internal/domain"
	"gstrly/internal/port"
)

// CreateCustomerInput is the DTO for creating a customer.
type CreateCustomerInput struct {
	Name         string `json:"name" binding:"required"`
	GSTIN        string `json:"gstin"`
	State        string `json:"state"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	Pincode      string `json:"pincode"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

// UpdateCustomerInput is the DTO for updating a customer.
type UpdateCustomerInput struct {
	Name         *string `json:"name"`
	GSTIN        *string `json:"gstin"`
	State        *string `json:"state"`
	AddressLine1 *string `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         *string `json:"city"`
	Pincode      *string `json:"pincode"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
}

// CustomerService defines the customer management contract.
type CustomerService interface {
	Create(ctx context.Context, businessID uuid.UUID, input CreateCustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, businessID, customerID uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, businessID uuid.UUID) ([]domain.Customer, error)
	Update(ctx context.Context, businessID, customerID uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, businessID, customerID uuid.UUID) error
}

type customerService struct {
	repo port.CustomerRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(repo port.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, businessID uuid.UUID, input CreateCustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		BusinessID:   businessID,
		Name:         input.Name,
		GSTIN:        input.GSTIN,
		State:        input.State,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		City:         input.City,
		Pincode:      input.Pincode,
		Email:        input.Email,
		Phone:        input.Phone,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetByID(ctx context.Context, businessID, customerID uuid.UUID) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, businessID, customerID)
}

func (s *customerService) List(ctx context.Context, businessID uuid.UUID) ([]domain.Customer, error) {
	return s.repo.ListByBusiness(ctx, businessID)
}

func (s *customerService) Update(ctx context.Context, businessID, customerID uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, businessID, customerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.GSTIN != nil {
		customer.GSTIN = *input.GSTIN
	}
	if input.State != nil {
		customer.State = *input.State
	}
	if input.AddressLine1 != nil {
		customer.AddressLine1 = *input.AddressLine1
	}
	if input.AddressLine2 != nil {
		customer.AddressLine2 = *input.AddressLine2
	}
	if input.City != nil {
		customer.City = *input.City
	}
	if input.Pincode != nil {
		customer.Pincode = *input.Pincode
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, businessID, customerID uuid.UUID) error {
	return s.repo.Delete(ctx, businessID, customerID)
}
