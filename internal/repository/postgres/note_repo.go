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

type noteRepo struct {
	db *sqlx.DB
}

// NewNoteRepo creates a new PostgreSQL-backed NoteRepository.
func NewNoteRepo(db *sqlx.DB) port.NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, note *domain.Note) error {
	note.ID = uuid.New()
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	query := `INSERT INTO notes (id, business_id, kind, number, note_date, invoice_number, reason,
		customer_id, customer_name, items, tax_regime, total_before_tax, cgst, sgst, igst,
		total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.db.ExecContext(ctx, query,
		note.ID, note.BusinessID, note.Kind, note.Number, note.NoteDate, note.InvoiceNumber,
		note.Reason, note.CustomerID, note.CustomerName, note.Items, note.TaxRegime,
		note.TotalBeforeTax, note.CGST, note.SGST, note.IGST, note.TotalAmount,
		note.CreatedAt, note.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateNumber
		}
		return fmt.Errorf("noteRepo.Create: %w", err)
	}
	return nil
}

func (r *noteRepo) GetByID(ctx context.Context, businessID, noteID uuid.UUID) (*domain.Note, error) {
	var note domain.Note
	err := r.db.GetContext(ctx, &note,
		"SELECT * FROM notes WHERE id = $1 AND business_id = $2", noteID, businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("noteRepo.GetByID: %w", err)
	}
	return &note, nil
}

func (r *noteRepo) ListByBusiness(ctx context.Context, businessID uuid.UUID, kind domain.NoteKind, offset, limit int) ([]domain.Note, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM notes WHERE business_id = $1 AND kind = $2", businessID, kind)
	if err != nil {
		return nil, 0, fmt.Errorf("noteRepo.ListByBusiness count: %w", err)
	}

	var notes []domain.Note
	err = r.db.SelectContext(ctx, &notes,
		"SELECT * FROM notes WHERE business_id = $1 AND kind = $2 ORDER BY note_date DESC, number DESC LIMIT $3 OFFSET $4",
		businessID, kind, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("noteRepo.ListByBusiness: %w", err)
	}
	return notes, total, nil
}

func (r *noteRepo) ListByDateRange(ctx context.Context, businessID uuid.UUID, kind domain.NoteKind, from, to time.Time) ([]domain.Note, error) {
	var notes []domain.Note
	err := r.db.SelectContext(ctx, &notes,
		"SELECT * FROM notes WHERE business_id = $1 AND kind = $2 AND note_date >= $3 AND note_date < $4 ORDER BY number",
		businessID, kind, from, to)
	if err != nil {
		return nil, fmt.Errorf("noteRepo.ListByDateRange: %w", err)
	}
	return notes, nil
}

func (r *noteRepo) Delete(ctx context.Context, businessID, noteID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM notes WHERE id = $1 AND business_id = $2", noteID, businessID)
	if err != nil {
		return fmt.Errorf("noteRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
