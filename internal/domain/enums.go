package domain

// TaxRegime distinguishes intra-state split tax (CGST+SGST) from
// inter-state integrated tax (IGST).
type TaxRegime string

const (
	TaxRegimeSplit      TaxRegime = "split"
	TaxRegimeIntegrated TaxRegime = "integrated"
)

// SupplyType is the GSTR-1 regulatory bucket an outward supply falls into.
// An empty value on an invoice means "classify automatically"; SEZ, deemed
// export, and export types only ever arise from an explicit override.
type SupplyType string

const (
	SupplyB2B    SupplyType = "b2b"
	SupplyB2CL   SupplyType = "b2cl"
	SupplyB2CS   SupplyType = "b2cs"
	SupplySEZWP  SupplyType = "sezwp"  // SEZ supply with payment of tax
	SupplySEZWOP SupplyType = "sezwop" // SEZ supply without payment of tax
	SupplyDE     SupplyType = "de"     // deemed export
	SupplyEXPWP  SupplyType = "expwp"  // export with payment of tax
	SupplyEXPWOP SupplyType = "expwop" // export without payment of tax
)

// ValidSupplyTypes lists the accepted supply-type override values.
var ValidSupplyTypes = map[SupplyType]bool{
	SupplyB2B:    true,
	SupplyB2CL:   true,
	SupplyB2CS:   true,
	SupplySEZWP:  true,
	SupplySEZWOP: true,
	SupplyDE:     true,
	SupplyEXPWP:  true,
	SupplyEXPWOP: true,
}

// NoteKind distinguishes credit notes from debit notes.
type NoteKind string

const (
	NoteCredit NoteKind = "credit"
	NoteDebit  NoteKind = "debit"
)

// PaymentStatus represents the settlement state of an invoice.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
)

// TurnoverBand is the annual aggregate turnover band of a business. It sets
// the minimum HSN digit count reportable in the GSTR-1 HSN summary.
type TurnoverBand string

const (
	TurnoverBelow5Cr TurnoverBand = "below5cr"
	TurnoverAbove5Cr TurnoverBand = "above5cr"
)

// HSNMinDigits returns the minimum number of HSN digits a line item must
// carry to be reportable in the HSN summary for this band.
func (b TurnoverBand) HSNMinDigits() int {
	if b == TurnoverAbove5Cr {
		return 6
	}
	return 4
}

// UserRole defines the roles within a business account. A professional is an
// invited accountant with read and filing access.
type UserRole string

const (
	RoleOwner        UserRole = "owner"
	RoleProfessional UserRole = "professional"
)
