package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"gstrly/internal/domain"
	"gstrly/internal/middleware"
	"gstrly/internal/service"
)

type stubAuthService struct {
	claims *service.Claims
}

func (s *stubAuthService) Login(ctx context.Context, input service.LoginInput) (*service.TokenPair, error) {
	return nil, domain.ErrInvalidCredentials
}

func (s *stubAuthService) RefreshToken(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	return nil, domain.ErrUnauthorized
}

func (s *stubAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	if s.claims == nil || tokenString != "valid-token" {
		return nil, domain.ErrUnauthorized
	}
	return s.claims, nil
}

func authRouter(claims *service.Claims, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{middleware.AuthMiddleware(&stubAuthService{claims: claims})}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		businessID, err := middleware.GetBusinessID(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"business_id": businessID.String()})
	})
	r.GET("/protected", handlers...)
	return r
}

func ownerClaims() *service.Claims {
	return &service.Claims{
		BusinessID: uuid.New(),
		UserID:     uuid.New(),
		Email:      "owner@kaveri.in",
		Role:       domain.RoleOwner,
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	claims := ownerClaims()
	r := authRouter(claims)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), claims.BusinessID.String())
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := authRouter(ownerClaims())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	r := authRouter(ownerClaims())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	claims := ownerClaims()
	claims.Role = domain.RoleProfessional
	r := authRouter(claims, middleware.RequireRole(domain.RoleOwner))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")

	// The owner role passes the same gate.
	claims.Role = domain.RoleOwner
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
