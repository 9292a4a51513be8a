package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BusinessProfile holds the filer's own registration details. The state acts
// as the default place of supply when a customer record lacks one.
type BusinessProfile struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	LegalName    string       `db:"legal_name" json:"legal_name"`
	TradeName    string       `db:"trade_name" json:"trade_name"`
	GSTIN        string       `db:"gstin" json:"gstin"`
	State        string       `db:"state" json:"state"`
	AddressLine1 string       `db:"address_line1" json:"address_line1"`
	AddressLine2 string       `db:"address_line2" json:"address_line2"`
	City         string       `db:"city" json:"city"`
	Pincode      string       `db:"pincode" json:"pincode"`
	TurnoverBand TurnoverBand `db:"turnover_band" json:"turnover_band"`
	BankName     string       `db:"bank_name" json:"bank_name"`
	BankAccount  string       `db:"bank_account" json:"bank_account"`
	BankIFSC     string       `db:"bank_ifsc" json:"bank_ifsc"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
}

// User represents an owner or invited professional on a business account.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	BusinessID   uuid.UUID `db:"business_id" json:"business_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Customer is a party the business sells to. The presence of a GSTIN is the
// primary signal separating registered-business (B2B) from consumer (B2C)
// traffic.
type Customer struct {
	ID           uuid.UUID `db:"id" json:"id"`
	BusinessID   uuid.UUID `db:"business_id" json:"business_id"`
	Name         string    `db:"name" json:"name"`
	GSTIN        string    `db:"gstin" json:"gstin"`
	State        string    `db:"state" json:"state"`
	AddressLine1 string    `db:"address_line1" json:"address_line1"`
	AddressLine2 string    `db:"address_line2" json:"address_line2"`
	City         string    `db:"city" json:"city"`
	Pincode      string    `db:"pincode" json:"pincode"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// LineItem is a single line on an invoice or note.
type LineItem struct {
	Description string  `json:"description"`
	HSNCode     string  `json:"hsn_code"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	GSTRate     float64 `json:"gst_rate"`
}

// LineItems is a JSONB-backed list of line items.
type LineItems []LineItem

// Value implements driver.Valuer for JSONB storage.
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		l = LineItems{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB storage.
func (l *LineItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = LineItems{}
		return nil
	default:
		return fmt.Errorf("LineItems.Scan: unsupported type %T", src)
	}
}

// Invoice is an outward supply document. Exactly one of {CGST+SGST} or {IGST}
// is expected to be nonzero, per the tax regime.
type Invoice struct {
	ID             uuid.UUID     `db:"id" json:"id"`
	BusinessID     uuid.UUID     `db:"business_id" json:"business_id"`
	Number         string        `db:"number" json:"number"`
	IssueDate      time.Time     `db:"issue_date" json:"issue_date"`
	CustomerID     *uuid.UUID    `db:"customer_id" json:"customer_id"`
	CustomerName   string        `db:"customer_name" json:"customer_name"`
	Items          LineItems     `db:"items" json:"items"`
	TaxRegime      TaxRegime     `db:"tax_regime" json:"tax_regime"`
	TotalBeforeTax float64       `db:"total_before_tax" json:"total_before_tax"`
	CGST           float64       `db:"cgst" json:"cgst"`
	SGST           float64       `db:"sgst" json:"sgst"`
	IGST           float64       `db:"igst" json:"igst"`
	TotalAmount    float64       `db:"total_amount" json:"total_amount"`
	PaymentStatus  PaymentStatus `db:"payment_status" json:"payment_status"`
	SupplyType     SupplyType    `db:"supply_type" json:"supply_type"` // empty = auto-classify
	ReverseCharge  bool          `db:"reverse_charge" json:"reverse_charge"`

	// Export metadata, only meaningful for export supply types.
	PortCode           string `db:"port_code" json:"port_code"`
	ShippingBillNumber string `db:"shipping_bill_number" json:"shipping_bill_number"`
	ShippingBillDate   string `db:"shipping_bill_date" json:"shipping_bill_date"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Note is a credit or debit note. A credit note reverses taxable value and
// tax for aggregation purposes; a debit note adds, like an invoice.
type Note struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	BusinessID     uuid.UUID  `db:"business_id" json:"business_id"`
	Kind           NoteKind   `db:"kind" json:"kind"`
	Number         string     `db:"number" json:"number"`
	NoteDate       time.Time  `db:"note_date" json:"note_date"`
	InvoiceNumber  string     `db:"invoice_number" json:"invoice_number"`
	Reason         string     `db:"reason" json:"reason"`
	CustomerID     *uuid.UUID `db:"customer_id" json:"customer_id"`
	CustomerName   string     `db:"customer_name" json:"customer_name"`
	Items          LineItems  `db:"items" json:"items"`
	TaxRegime      TaxRegime  `db:"tax_regime" json:"tax_regime"`
	TotalBeforeTax float64    `db:"total_before_tax" json:"total_before_tax"`
	CGST           float64    `db:"cgst" json:"cgst"`
	SGST           float64    `db:"sgst" json:"sgst"`
	IGST           float64    `db:"igst" json:"igst"`
	TotalAmount    float64    `db:"total_amount" json:"total_amount"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}
