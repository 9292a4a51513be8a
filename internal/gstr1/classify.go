package gstr1

import "gstrly/internal/domain"

// B2CLargeThreshold is the invoice total above which an inter-state consumer
// sale must be reported invoice-wise (B2C-large) instead of summarized.
const B2CLargeThreshold = 250000.0

// Classify returns the regulatory bucket for an invoice. Precedence is
// evaluated top to bottom, first match wins:
//
//  1. an explicit supply-type override on the invoice is returned unchanged;
//  2. no resolvable customer defaults to B2C-small;
//  3. a customer with a GSTIN is B2B;
//  4. an inter-state sale above B2CLargeThreshold is B2C-large;
//  5. everything else is B2C-small.
//
// The GSTIN check must run before the inter-state/threshold test: a large
// inter-state sale to a registered business is B2B, never B2C-large. SEZ,
// deemed-export, and export buckets are never inferred; the source data has
// no reliable signal for them, so they only arise from the override.
func Classify(inv *domain.Invoice, cust *domain.Customer, ownState string) domain.SupplyType {
	if inv.SupplyType != "" {
		return inv.SupplyType
	}
	if cust == nil {
		return domain.SupplyB2CS
	}
	if cust.GSTIN != "" {
		return domain.SupplyB2B
	}
	if cust.State != "" && cust.State != ownState && inv.TotalAmount > B2CLargeThreshold {
		return domain.SupplyB2CL
	}
	return domain.SupplyB2CS
}
