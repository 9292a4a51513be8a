package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"gstrly/internal/domain"
	"gstrly/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{domain.ErrUserInactive, http.StatusForbidden, "USER_INACTIVE"},
		{domain.ErrDuplicateEmail, http.StatusConflict, "DUPLICATE_EMAIL"},
		{domain.ErrDuplicateNumber, http.StatusConflict, "DUPLICATE_NUMBER"},
		{domain.ErrInvalidPeriod, http.StatusBadRequest, "INVALID_PERIOD"},
		{domain.ErrInvalidSupplyType, http.StatusBadRequest, "INVALID_SUPPLY_TYPE"},
		{domain.ErrProfileIncomplete, http.StatusUnprocessableEntity, "PROFILE_INCOMPLETE"},
		{domain.ErrArchiveFailed, http.StatusInternalServerError, "ARCHIVE_FAILED"},
		{assert.AnError, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestMapDomainError_Wrapped(t *testing.T) {
	// Services wrap sentinels with context; the mapping must see through it.
	err := fmt.Errorf("returnService.buildSnapshot profile: %w", domain.ErrProfileIncomplete)
	status, code, _ := handler.MapDomainError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "PROFILE_INCOMPLETE", code)
}
