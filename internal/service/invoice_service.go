package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gstrly/internal/domain"
	"gstrly/internal/gstr1"
	"gstrly/internal/port"
)

// CreateInvoiceInput is the DTO for creating an invoice. Totals are never
// accepted from the client; they are derived from the line items.
type CreateInvoiceInput struct {
	Number        string               `json:"number" binding:"required"`
	IssueDate     time.Time            `json:"issue_date" binding:"required"`
	CustomerID    *uuid.UUID           `json:"customer_id"`
	CustomerName  string               `json:"customer_name"`
	Items         []domain.LineItem    `json:"items" binding:"required,min=1"`
	TaxRegime     domain.TaxRegime     `json:"tax_regime" binding:"required"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	SupplyType    domain.SupplyType    `json:"supply_type"`
	ReverseCharge bool                 `json:"reverse_charge"`

	PortCode           string `json:"port_code"`
	ShippingBillNumber string `json:"shipping_bill_number"`
	ShippingBillDate   string `json:"shipping_bill_date"`
}

// UpdateInvoiceInput is the DTO for updating an invoice. A non-nil Items
// triggers a recomputation of all totals.
type UpdateInvoiceInput struct {
	Number        *string               `json:"number"`
	IssueDate     *time.Time            `json:"issue_date"`
	CustomerID    *uuid.UUID            `json:"customer_id"`
	CustomerName  *string               `json:"customer_name"`
	Items         *[]domain.LineItem    `json:"items"`
	TaxRegime     *domain.TaxRegime     `json:"tax_regime"`
	PaymentStatus *domain.PaymentStatus `json:"payment_status"`
	SupplyType    *domain.SupplyType    `json:"supply_type"`
	ReverseCharge *bool                 `json:"reverse_charge"`

	PortCode           *string `json:"port_code"`
	ShippingBillNumber *string `json:"shipping_bill_number"`
	ShippingBillDate   *string `json:"shipping_bill_date"`
}

// InvoiceService defines the invoice management contract.
type InvoiceService interface {
	Create(ctx context.Context, businessID uuid.UUID, input CreateInvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	Update(ctx context.Context, businessID, invoiceID uuid.UUID, input UpdateInvoiceInput) (*domain.Invoice, error)
	Delete(ctx context.Context, businessID, invoiceID uuid.UUID) error
}

type invoiceService struct {
	repo port.InvoiceRepository
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(repo port.InvoiceRepository) InvoiceService {
	return &invoiceService{repo: repo}
}

func (s *invoiceService) Create(ctx context.Context, businessID uuid.UUID, input CreateInvoiceInput) (*domain.Invoice, error) {
	if input.SupplyType != "" && !domain.ValidSupplyTypes[input.SupplyType] {
		return nil, domain.ErrInvalidSupplyType
	}

	status := input.PaymentStatus
	if status == "" {
		status = domain.PaymentUnpaid
	}

	taxable, cgst, sgst, igst, total := gstr1.ComputeTotals(input.Items, input.TaxRegime)

	invoice := &domain.Invoice{
		BusinessID:         businessID,
		Number:             input.Number,
		IssueDate:          input.IssueDate,
		CustomerID:         input.CustomerID,
		CustomerName:       input.CustomerName,
		Items:              input.Items,
		TaxRegime:          input.TaxRegime,
		TotalBeforeTax:     taxable,
		CGST:               cgst,
		SGST:               sgst,
		IGST:               igst,
		TotalAmount:        total,
		PaymentStatus:      status,
		SupplyType:         input.SupplyType,
		ReverseCharge:      input.ReverseCharge,
		PortCode:           input.PortCode,
		ShippingBillNumber: input.ShippingBillNumber,
		ShippingBillDate:   input.ShippingBillDate,
	}

	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) GetByID(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	return s.repo.GetByID(ctx, businessID, invoiceID)
}

func (s *invoiceService) List(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	return s.repo.ListByBusiness(ctx, businessID, offset, limit)
}

func (s *invoiceService) Update(ctx context.Context, businessID, invoiceID uuid.UUID, input UpdateInvoiceInput) (*domain.Invoice, error) {
	invoice, err := s.repo.GetByID(ctx, businessID, invoiceID)
	if err != nil {
		return nil, err
	}

	if input.Number != nil {
		invoice.Number = *input.Number
	}
	if input.IssueDate != nil {
		invoice.IssueDate = *input.IssueDate
	}
	if input.CustomerID != nil {
		invoice.CustomerID = input.CustomerID
	}
	if input.CustomerName != nil {
		invoice.CustomerName = *input.CustomerName
	}
	if input.Items != nil {
		invoice.Items = *input.Items
	}
	if input.TaxRegime != nil {
		invoice.TaxRegime = *input.TaxRegime
	}
	if input.PaymentStatus != nil {
		invoice.PaymentStatus = *input.PaymentStatus
	}
	if input.SupplyType != nil {
		if *input.SupplyType != "" && !domain.ValidSupplyTypes[*input.SupplyType] {
			return nil, domain.ErrInvalidSupplyType
		}
		invoice.SupplyType = *input.SupplyType
	}
	if input.ReverseCharge != nil {
		invoice.ReverseCharge = *input.ReverseCharge
	}
	if input.PortCode != nil {
		invoice.PortCode = *input.PortCode
	}
	if input.ShippingBillNumber != nil {
		invoice.ShippingBillNumber = *input.ShippingBillNumber
	}
	if input.ShippingBillDate != nil {
		invoice.ShippingBillDate = *input.ShippingBillDate
	}

	// Items or regime changes invalidate the stored totals.
	if input.Items != nil || input.TaxRegime != nil {
		taxable, cgst, sgst, igst, total := gstr1.ComputeTotals(invoice.Items, invoice.TaxRegime)
		invoice.TotalBeforeTax = taxable
		invoice.CGST = cgst
		invoice.SGST = sgst
		invoice.IGST = igst
		invoice.TotalAmount = total
	}

	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) Delete(ctx context.Context, businessID, invoiceID uuid.UUID) error {
	return s.repo.Delete(ctx, businessID, invoiceID)
}
