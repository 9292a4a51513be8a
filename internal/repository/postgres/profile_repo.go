package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstrly/internal/domain"
	"gstrly/internal/port"
)

type profileRepo struct {
	db *sqlx.DB
}

// NewProfileRepo creates a new PostgreSQL-backed ProfileRepository.
func NewProfileRepo(db *sqlx.DB) port.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByID(ctx context.Context, businessID uuid.UUID) (*domain.BusinessProfile, error) {
	var profile domain.BusinessProfile
	err := r.db.GetContext(ctx, &profile,
		"SELECT * FROM business_profiles WHERE id = $1", businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("profileRepo.GetByID: %w", err)
	}
	return &profile, nil
}

func (r *profileRepo) Update(ctx context.Context, profile *domain.BusinessProfile) error {
	profile.UpdatedAt = time.Now().UTC()
	query := `UPDATE business_profiles SET legal_name = $1, trade_name = $2, gstin = $3, state = $4,
		address_line1 = $5, address_line2 = $6, city = $7, pincode = $8, turnover_band = $9,
		bank_name = $10, bank_account = $11, bank_ifsc = $12, updated_at = $13
		WHERE id = $14`
	result, err := r.db.ExecContext(ctx, query,
		profile.LegalName, profile.TradeName, profile.GSTIN, profile.State,
		profile.AddressLine1, profile.AddressLine2, profile.City, profile.Pincode,
		profile.TurnoverBand, profile.BankName, profile.BankAccount, profile.BankIFSC,
		profile.UpdatedAt, profile.ID)
	if err != nil {
		return fmt.Errorf("profileRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
