package gstr1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstrly/internal/domain"
	"gstrly/internal/gstr1"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, gstr1.Round2(10.555))
	assert.Equal(t, 10.55, gstr1.Round2(10.554))
	assert.Equal(t, 0.0, gstr1.Round2(0))
	assert.Equal(t, -10.56, gstr1.Round2(-10.555))
	assert.Equal(t, 100.0, gstr1.Round2(100.000001))
}

func TestComputeTotals_Split(t *testing.T) {
	items := []domain.LineItem{
		{Description: "widgets", HSNCode: "847130", Quantity: 2, Rate: 500, GSTRate: 12},
	}
	taxable, cgst, sgst, igst, total := gstr1.ComputeTotals(items, domain.TaxRegimeSplit)
	assert.Equal(t, 1000.0, taxable)
	assert.Equal(t, 60.0, cgst)
	assert.Equal(t, 60.0, sgst)
	assert.Equal(t, 0.0, igst)
	assert.Equal(t, 1120.0, total)
}

func TestComputeTotals_Integrated(t *testing.T) {
	items := []domain.LineItem{
		{Description: "widgets", HSNCode: "847130", Quantity: 2, Rate: 500, GSTRate: 12},
	}
	taxable, cgst, sgst, igst, total := gstr1.ComputeTotals(items, domain.TaxRegimeIntegrated)
	assert.Equal(t, 1000.0, taxable)
	assert.Equal(t, 0.0, cgst)
	assert.Equal(t, 0.0, sgst)
	assert.Equal(t, 120.0, igst)
	assert.Equal(t, 1120.0, total)
}

func TestComputeTotals_HalfSplitRounding(t *testing.T) {
	// 18% of 150 is 27; each half is 13.50, rounded independently.
	// Totals are sums of rounded values, never re-derived.
	items := []domain.LineItem{
		{Description: "odd amount", HSNCode: "482010", Quantity: 1, Rate: 150, GSTRate: 18},
	}
	taxable, cgst, sgst, _, total := gstr1.ComputeTotals(items, domain.TaxRegimeSplit)
	assert.Equal(t, 150.0, taxable)
	assert.Equal(t, 13.5, cgst)
	assert.Equal(t, 13.5, sgst)
	assert.Equal(t, 177.0, total)
}

func TestComputeTotals_MultiLineAccumulation(t *testing.T) {
	items := []domain.LineItem{
		{HSNCode: "520811", Quantity: 3, Rate: 33.33, GSTRate: 5},
		{HSNCode: "520812", Quantity: 7, Rate: 14.29, GSTRate: 5},
	}
	taxable, _, _, igst, total := gstr1.ComputeTotals(items, domain.TaxRegimeIntegrated)
	// 99.99 + 100.03, each rounded at the line
	assert.Equal(t, 200.02, taxable)
	// 5.00 + 5.00
	assert.Equal(t, 10.0, igst)
	assert.Equal(t, 210.02, total)
}
