package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstrly/internal/domain"
	"gstrly/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) error {
	invoice.ID = uuid.New()
	now := time.Now().UTC()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	query := `INSERT INTO invoices (id, business_id, number, issue_date, customer_id, customer_name,
		items, tax_regime, total_before_tax, cgst, sgst, igst, total_amount, payment_status,
		supply_type, reverse_charge, port_code, shipping_bill_number, shipping_bill_date,
		created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

	_, err := r.db.ExecContext(ctx, query,
		invoice.ID, invoice.BusinessID, invoice.Number, invoice.IssueDate, invoice.CustomerID,
		invoice.CustomerName, invoice.Items, invoice.TaxRegime, invoice.TotalBeforeTax,
		invoice.CGST, invoice.SGST, invoice.IGST, invoice.TotalAmount, invoice.PaymentStatus,
		invoice.SupplyType, invoice.ReverseCharge, invoice.PortCode, invoice.ShippingBillNumber,
		invoice.ShippingBillDate, invoice.CreatedAt, invoice.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateNumber
		}
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.GetContext(ctx, &invoice,
		"SELECT * FROM invoices WHERE id = $1 AND business_id = $2", invoiceID, businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &invoice, nil
}

func (r *invoiceRepo) ListByBusiness(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM invoices WHERE business_id = $1", businessID)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.ListByBusiness count: %w", err)
	}

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices WHERE business_id = $1 ORDER BY issue_date DESC, number DESC LIMIT $2 OFFSET $3",
		businessID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.ListByBusiness: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) ListByDateRange(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices WHERE business_id = $1 AND issue_date >= $2 AND issue_date < $3 ORDER BY number",
		businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByDateRange: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) Update(ctx context.Context, invoice *domain.Invoice) error {
	invoice.UpdatedAt = time.Now().UTC()
	query := `UPDATE invoices SET number = $1, issue_date = $2, customer_id = $3, customer_name = $4,
		items = $5, tax_regime = $6, total_before_tax = $7, cgst = $8, sgst = $9, igst = $10,
		total_amount = $11, payment_status = $12, supply_type = $13, reverse_charge = $14,
		port_code = $15, shipping_bill_number = $16, shipping_bill_date = $17, updated_at = $18
		WHERE id = $19 AND business_id = $20`
	result, err := r.db.ExecContext(ctx, query,
		invoice.Number, invoice.IssueDate, invoice.CustomerID, invoice.CustomerName,
		invoice.Items, invoice.TaxRegime, invoice.TotalBeforeTax, invoice.CGST, invoice.SGST,
		invoice.IGST, invoice.TotalAmount, invoice.PaymentStatus, invoice.SupplyType,
		invoice.ReverseCharge, invoice.PortCode, invoice.ShippingBillNumber,
		invoice.ShippingBillDate, invoice.UpdatedAt, invoice.ID, invoice.BusinessID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateNumber
		}
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invoiceRepo) Delete(ctx context.Context, businessID, invoiceID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM invoices WHERE id = $1 AND business_id = $2", invoiceID, businessID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
