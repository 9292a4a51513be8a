package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gstrly/internal/domain"
)

// ProfileRepository provides business-profile persistence.
type ProfileRepository interface {
	GetByID(ctx context.Context, businessID uuid.UUID) (*domain.BusinessProfile, error)
	Update(ctx context.Context, profile *domain.BusinessProfile) error
}

// CustomerRepository provides customer persistence scoped to a business.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, businessID, customerID uuid.UUID) (*domain.Customer, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, businessID, customerID uuid.UUID) error
}

// InvoiceRepository provides invoice persistence scoped to a business.
// ListByDateRange is the period pre-filter the return generator relies on:
// the range is [from, to).
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.Invoice, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	ListByDateRange(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]domain.Invoice, error)
	Update(ctx context.Context, invoice *domain.Invoice) error
	Delete(ctx context.Context, businessID, invoiceID uuid.UUID) error
}

// NoteRepository provides credit/debit note persistence scoped to a business.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	GetByID(ctx context.Context, businessID, noteID uuid.UUID) (*domain.Note, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID, kind domain.NoteKind, offset, limit int) ([]domain.Note, int, error)
	ListByDateRange(ctx context.Context, businessID uuid.UUID, kind domain.NoteKind, from, to time.Time) ([]domain.Note, error)
	Delete(ctx context.Context, businessID, noteID uuid.UUID) error
}

// UserRepository provides user persistence for authentication.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
