package gstr1

import (
	"math"

	"gstrly/internal/domain"
)

// Round2 rounds a monetary value to 2 decimal places. Every derived figure is
// rounded at the point of computation; totals are built from already-rounded
// values so rounding error never compounds.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// lineTaxable returns the rounded taxable value of a line item.
func lineTaxable(it *domain.LineItem) float64 {
	return Round2(it.Quantity * it.Rate)
}

// lineTax returns the rounded total tax of a line item, computed from the
// already-rounded taxable value.
func lineTax(it *domain.LineItem) float64 {
	return Round2(lineTaxable(it) * it.GSTRate / 100)
}

// splitTax halves a combined tax amount into one CGST/SGST component. The
// halving introduces fresh fractional digits, so it is rounded immediately.
func splitTax(tax float64) float64 {
	return Round2(tax / 2)
}

// ComputeTotals derives invoice-level totals from line items under the given
// tax regime. Used by the invoice and note write paths so stored totals obey
// the same rounding discipline as the return generator.
func ComputeTotals(items []domain.LineItem, regime domain.TaxRegime) (taxable, cgst, sgst, igst, total float64) {
	for i := range items {
		it := &items[i]
		taxable += lineTaxable(it)
		tax := lineTax(it)
		if regime == domain.TaxRegimeSplit {
			cgst += splitTax(tax)
			sgst += splitTax(tax)
		} else {
			igst += tax
		}
	}
	taxable = Round2(taxable)
	cgst = Round2(cgst)
	sgst = Round2(sgst)
	igst = Round2(igst)
	total = Round2(taxable + cgst + sgst + igst)
	return taxable, cgst, sgst, igst, total
}
