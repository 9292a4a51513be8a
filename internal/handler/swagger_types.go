package handler

import (
	"time"

	"github.com/google/uuid"

	"gstrly/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"owner@sharmatraders.in"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// UpdateProfileRequest represents the update business profile request body.
type UpdateProfileRequest struct {
	LegalName    *string              `json:"legal_name" example:"Sharma Traders Private Limited"`
	TradeName    *string              `json:"trade_name" example:"Sharma Traders"`
	GSTIN        *string              `json:"gstin" example:"29AABCU9603R1ZM"`
	State        *string              `json:"state" example:"Karnataka"`
	AddressLine1 *string              `json:"address_line1" example:"14 MG Road"`
	AddressLine2 *string              `json:"address_line2" example:"Shivajinagar"`
	City         *string              `json:"city" example:"Bengaluru"`
	Pincode      *string              `json:"pincode" example:"560001"`
	TurnoverBand *domain.TurnoverBand `json:"turnover_band" example:"below5cr"`
	BankName     *string              `json:"bank_name" example:"HDFC Bank"`
	BankAccount  *string              `json:"bank_account" example:"50100123456789"`
	BankIFSC     *string              `json:"bank_ifsc" example:"HDFC0001234"`
}

// CreateCustomerRequest represents the create customer request body.
type CreateCustomerRequest struct {
	Name         string `json:"name" binding:"required" example:"Mehta Distributors"`
	GSTIN        string `json:"gstin" example:"27AADCM1234F1Z5"`
	State        string `json:"state" example:"Maharashtra"`
	AddressLine1 string `json:"address_line1" example:"21 Linking Road"`
	AddressLine2 string `json:"address_line2" example:"Bandra West"`
	City         string `json:"city" example:"Mumbai"`
	Pincode      string `json:"pincode" example:"400050"`
	Email        string `json:"email" example:"accounts@mehtadist.in"`
	Phone        string `json:"phone" example:"+919820012345"`
}

// UpdateCustomerRequest represents the update customer request body.
type UpdateCustomerRequest struct {
	Name         *string `json:"name" example:"Mehta Distributors LLP"`
	GSTIN        *string `json:"gstin" example:"27AADCM1234F1Z5"`
	State        *string `json:"state" example:"Maharashtra"`
	AddressLine1 *string `json:"address_line1" example:"21 Linking Road"`
	AddressLine2 *string `json:"address_line2" example:"Bandra West"`
	City         *string `json:"city" example:"Mumbai"`
	Pincode      *string `json:"pincode" example:"400050"`
	Email        *string `json:"email" example:"accounts@mehtadist.in"`
	Phone        *string `json:"phone" example:"+919820012345"`
}

// LineItemRequest represents a single invoice or note line item.
type LineItemRequest struct {
	Description string  `json:"description" example:"Cotton fabric"`
	HSNCode     string  `json:"hsn_code" example:"520811"`
	Quantity    float64 `json:"quantity" example:"100"`
	Rate        float64 `json:"rate" example:"250.00"`
	GSTRate     float64 `json:"gst_rate" example:"5"`
}

// CreateInvoiceRequest represents the create invoice request body.
type CreateInvoiceRequest struct {
	Number        string               `json:"number" binding:"required" example:"INV-2025-0042"`
	IssueDate     time.Time            `json:"issue_date" binding:"required" example:"2025-04-12T00:00:00Z"`
	CustomerID    *uuid.UUID           `json:"customer_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	CustomerName  string               `json:"customer_name" example:"Walk-in customer"`
	Items         []LineItemRequest    `json:"items" binding:"required"`
	TaxRegime     domain.TaxRegime     `json:"tax_regime" binding:"required" example:"split"`
	PaymentStatus domain.PaymentStatus `json:"payment_status" example:"unpaid"`
	SupplyType    domain.SupplyType    `json:"supply_type" example:"sezwp"`
	ReverseCharge bool                 `json:"reverse_charge" example:"false"`

	PortCode           string `json:"port_code" example:"INMAA1"`
	ShippingBillNumber string `json:"shipping_bill_number" example:"7831245"`
	ShippingBillDate   string `json:"shipping_bill_date" example:"15-04-2025"`
}

// UpdateInvoiceRequest represents the update invoice request body.
type UpdateInvoiceRequest struct {
	Number        *string               `json:"number" example:"INV-2025-0042"`
	IssueDate     *time.Time            `json:"issue_date" example:"2025-04-12T00:00:00Z"`
	CustomerID    *uuid.UUID            `json:"customer_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	CustomerName  *string               `json:"customer_name" example:"Walk-in customer"`
	Items         *[]LineItemRequest    `json:"items"`
	TaxRegime     *domain.TaxRegime     `json:"tax_regime" example:"integrated"`
	PaymentStatus *domain.PaymentStatus `json:"payment_status" example:"paid"`
	SupplyType    *domain.SupplyType    `json:"supply_type" example:"b2b"`
	ReverseCharge *bool                 `json:"reverse_charge" example:"false"`

	PortCode           *string `json:"port_code" example:"INMAA1"`
	ShippingBillNumber *string `json:"shipping_bill_number" example:"7831245"`
	ShippingBillDate   *string `json:"shipping_bill_date" example:"15-04-2025"`
}

// CreateNoteRequest represents the create note request body.
type CreateNoteRequest struct {
	Kind          domain.NoteKind   `json:"kind" binding:"required" example:"credit"`
	Number        string            `json:"number" binding:"required" example:"CN-2025-0007"`
	NoteDate      time.Time         `json:"note_date" binding:"required" example:"2025-04-20T00:00:00Z"`
	InvoiceNumber string            `json:"invoice_number" binding:"required" example:"INV-2025-0042"`
	Reason        string            `json:"reason" example:"goods returned"`
	CustomerID    *uuid.UUID        `json:"customer_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	CustomerName  string            `json:"customer_name" example:"Mehta Distributors"`
	Items         []LineItemRequest `json:"items" binding:"required"`
	TaxRegime     domain.TaxRegime  `json:"tax_regime" binding:"required" example:"integrated"`
}

// SendReturnRequest represents the send-return request body.
type SendReturnRequest struct {
	Email string `json:"email" binding:"required,email" example:"ca.agarwal@taxfirm.in"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2025-04-15T10:30:00Z"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
