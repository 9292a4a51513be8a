package gstr1

import (
	"time"

	"gstrly/internal/domain"
)

// Snapshot is the immutable input bundle for one generation call. The caller
// pre-filters invoices and notes to the filing period; the generator performs
// no date filtering and no cross-collection consistency checks.
type Snapshot struct {
	Profile     domain.BusinessProfile
	Customers   []domain.Customer
	Invoices    []domain.Invoice
	CreditNotes []domain.Note
	DebitNotes  []domain.Note
	Period      string // opaque 6-character MMYYYY token
}

// RateLine is one line item's rounded tax contribution.
type RateLine struct {
	Rate    float64
	Taxable float64
	IGST    float64
	CGST    float64
	SGST    float64
}

// InvoiceEntry is one invoice inside a grouped bucket. Category carries the
// supply type so renderers can distinguish SEZ with/without payment and
// deemed exports inside their shared B2B-like shape.
type InvoiceEntry struct {
	Number        string
	Date          time.Time
	Value         float64
	POSCode       string // 2-digit jurisdiction code, or raw state if unresolved
	POSName       string
	ReverseCharge bool
	Category      domain.SupplyType
	Lines         []RateLine
}

// PartyGroup holds a registered customer's invoices, keyed by GSTIN. Used by
// the B2B, SEZ, and deemed-export buckets.
type PartyGroup struct {
	GSTIN    string
	Name     string
	Invoices []InvoiceEntry
}

// B2CLGroup holds large inter-state consumer invoices grouped by place of
// supply. Consumer identity is not collected, so there is no customer level.
type B2CLGroup struct {
	POSCode  string
	POSName  string
	Invoices []InvoiceEntry
}

// B2CSRow is one collapsed small-consumer summary row, keyed by
// (place of supply, intra/inter flag, tax rate).
type B2CSRow struct {
	POSCode    string
	POSName    string
	SupplyKind string // "INTRA" or "INTER"
	Rate       float64
	Taxable    float64
	IGST       float64
	CGST       float64
	SGST       float64
}

// NoteEntry is one credit or debit note inside a note bucket.
type NoteEntry struct {
	Number        string
	Date          time.Time
	Kind          domain.NoteKind
	InvoiceNumber string
	Value         float64
	POSCode       string
	POSName       string
	Lines         []RateLine
}

// NoteGroup holds a registered customer's notes, keyed by GSTIN (CDNR).
type NoteGroup struct {
	GSTIN string
	Name  string
	Notes []NoteEntry
}

// CDNURRow is one note to an unregistered customer, tagged with an
// inter/intra-state marker.
type CDNURRow struct {
	SupplyKind string // "INTER" or "INTRA"
	NoteEntry
}

// ExportEntry is one export invoice with its customs metadata. Missing
// metadata is carried as empty strings, never dropped.
type ExportEntry struct {
	Number             string
	Date               time.Time
	Value              float64
	PortCode           string
	ShippingBillNumber string
	ShippingBillDate   string
	Lines              []RateLine
}

// ExportGroup holds export invoices for one payment type.
type ExportGroup struct {
	Type     string // "WPAY" or "WOPAY"
	Invoices []ExportEntry
}

// NilRow is one category of the nil-rated/exempt/non-GST summary. Exempt and
// non-GST are structural placeholders: the data model has no field that
// distinguishes them from nil-rated, so they are always zero.
type NilRow struct {
	Description string
	NilRated    float64
	Exempt      float64
	NonGST      float64
}

// HSNRow accumulates signed per-commodity totals across invoices and notes.
type HSNRow struct {
	Code        string
	Description string
	UQC         string
	Quantity    float64
	Value       float64
	Taxable     float64
	IGST        float64
	CGST        float64
	SGST        float64
}

// DocRange reports the issued document-number range for one document nature.
// The range bounds use lexicographic string order.
type DocRange struct {
	Nature    string
	From      string
	To        string
	Total     int
	Cancelled int
}

// Diagnostic codes for records the regulatory outputs silently exclude or
// mis-tag. The generation itself never fails on these.
const (
	DiagHSNDigits       = "hsn_below_min_digits"
	DiagUnknownState    = "unknown_state"
	DiagMissingCustomer = "missing_customer"
)

// Diagnostic is a non-fatal note about a record the outputs dropped or could
// not fully resolve.
type Diagnostic struct {
	Code     string `json:"code"`
	Document string `json:"document"`
	Detail   string `json:"detail"`
}

// Return is the canonical aggregated model. Both renderers consume it
// read-only, which is what keeps the workbook and the JSON payload in
// numeric agreement.
type Return struct {
	GSTIN         string
	Period        string
	GrossTurnover float64

	B2B     []PartyGroup
	SEZ     []PartyGroup
	DE      []PartyGroup
	B2CL    []B2CLGroup
	B2CS    []B2CSRow
	CDNR    []NoteGroup
	CDNUR   []CDNURRow
	Exports []ExportGroup
	Nil     []NilRow
	HSN     []HSNRow
	Docs    []DocRange

	Diagnostics []Diagnostic
}
