package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gstrly/internal/domain"
	"gstrly/internal/gstr1"
	"gstrly/internal/port"
)

// CreateNoteInput is the DTO for creating a credit or debit note. Values are
// entered positive regardless of kind; the return generator applies the sign.
type CreateNoteInput struct {
	Kind          domain.NoteKind   `json:"kind" binding:"required"`
	Number        string            `json:"number" binding:"required"`
	NoteDate      time.Time         `json:"note_date" binding:"required"`
	InvoiceNumber string            `json:"invoice_number" binding:"required"`
	Reason        string            `json:"reason"`
	CustomerID    *uuid.UUID        `json:"customer_id"`
	CustomerName  string            `json:"customer_name"`
	Items         []domain.LineItem `json:"items" binding:"required,min=1"`
	TaxRegime     domain.TaxRegime  `json:"tax_regime" binding:"required"`
}

// NoteService defines the credit/debit note management contract. Notes are
// immutable once issued; corrections are made by issuing another note.
type NoteService interface {
	Create(ctx context.Context, businessID uuid.UUID, input CreateNoteInput) (*domain.Note, error)
	GetByID(ctx context.Context, businessID, noteID uuid.UUID) (*domain.Note, error)
	List(ctx context.Context, businessID uuid.UUID, kind domain.NoteKind, offset, limit int) ([]domain.Note, int, error)
	Delete(ctx context.Context, businessID, noteID uuid.UUID) error
}

type noteService struct {
	repo port.NoteRepository
}

// NewNoteService creates a new NoteService implementation.
func NewNoteService(repo port.NoteRepository) NoteService {
	return &noteService{repo: repo}
}

func (s *noteService) Create(ctx context.Context, businessID uuid.UUID, input CreateNoteInput) (*domain.Note, error) {
	taxable, cgst, sgst, igst, total := gstr1.ComputeTotals(input.Items, input.TaxRegime)

	note := &domain.Note{
		BusinessID:     businessID,
		Kind:           input.Kind,
		Number:         input.Number,
		NoteDate:       input.NoteDate,
		InvoiceNumber:  input.InvoiceNumber,
		Reason:         input.Reason,
		CustomerID:     input.CustomerID,
		CustomerName:   input.CustomerName,
		Items:          input.Items,
		TaxRegime:      input.TaxRegime,
		TotalBeforeTax: taxable,
		CGST:           cgst,
		SGST:           sgst,
		IGST:           igst,
		TotalAmount:    total,
	}

	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) GetByID(ctx context.Context, businessID, noteID uuid.UUID) (*domain.Note, error) {
	return s.repo.GetByID(ctx, businessID, noteID)
}

func (s *noteService) List(ctx context.Context, businessID uuid.UUID, kind domain.NoteKind, offset, limit int) ([]domain.Note, int, error) {
	return s.repo.ListByBusiness(ctx, businessID, kind, offset, limit)
}

func (s *noteService) Delete(ctx context.Context, businessID, noteID uuid.UUID) error {
	return s.repo.Delete(ctx, businessID, noteID)
}
