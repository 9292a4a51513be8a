package service

import (
	"context"

	"github.com/google/uuid"

	"gstrly/internal/domain"
	"gstrly/internal/port"
)

// UpdateProfileInput is the DTO for updating the business profile.
type UpdateProfileInput struct {
	LegalName    *string              `json:"legal_name"`
	TradeName    *string              `json:"trade_name"`
	GSTIN        *string              `json:"gstin"`
	State        *string              `json:"state"`
	AddressLine1 *string              `json:"address_line1"`
	AddressLine2 *string              `json:"address_line2"`
	City         *string              `json:"city"`
	Pincode      *string              `json:"pincode"`
	TurnoverBand *domain.TurnoverBand `json:"turnover_band"`
	BankName     *string              `json:"bank_name"`
	BankAccount  *string              `json:"bank_account"`
	BankIFSC     *string              `json:"bank_ifsc"`
}

// ProfileService defines the business profile contract.
type ProfileService interface {
	Get(ctx context.Context, businessID uuid.UUID) (*domain.BusinessProfile, error)
	Update(ctx context.Context, businessID uuid.UUID, input UpdateProfileInput) (*domain.BusinessProfile, error)
}

type profileService struct {
	repo port.ProfileRepository
}

// NewProfileService creates a new ProfileService implementation.
func NewProfileService(repo port.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Get(ctx context.Context, businessID uuid.UUID) (*domain.BusinessProfile, error) {
	return s.repo.GetByID(ctx, businessID)
}

func (s *profileService) Update(ctx context.Context, businessID uuid.UUID, input UpdateProfileInput) (*domain.BusinessProfile, error) {
	profile, err := s.repo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if input.LegalName != nil {
		profile.LegalName = *input.LegalName
	}
	if input.TradeName != nil {
		profile.TradeName = *input.TradeName
	}
	if input.GSTIN != nil {
		profile.GSTIN = *input.GSTIN
	}
	if input.State != nil {
		profile.State = *input.State
	}
	if input.AddressLine1 != nil {
		profile.AddressLine1 = *input.AddressLine1
	}
	if input.AddressLine2 != nil {
		profile.AddressLine2 = *input.AddressLine2
	}
	if input.City != nil {
		profile.City = *input.City
	}
	if input.Pincode != nil {
		profile.Pincode = *input.Pincode
	}
	if input.TurnoverBand != nil {
		profile.TurnoverBand = *input.TurnoverBand
	}
	if input.BankName != nil {
		profile.BankName = *input.BankName
	}
	if input.BankAccount != nil {
		profile.BankAccount = *input.BankAccount
	}
	if input.BankIFSC != nil {
		profile.BankIFSC = *input.BankIFSC
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
