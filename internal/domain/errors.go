package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already exists for this business")
	ErrDuplicateNumber    = errors.New("document number already exists for this business")
	ErrInvalidPeriod      = errors.New("filing period must be a 6-character MMYYYY token")
	ErrInvalidSupplyType  = errors.New("invalid supply type override")
	ErrProfileIncomplete  = errors.New("business profile is missing GSTIN or state")
	ErrArchiveFailed      = errors.New("return archive upload failed")
)
