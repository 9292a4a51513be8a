package gstr1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstrly/internal/domain"
	"gstrly/internal/gstr1"
)

func renderedSnapshot() *gstr1.Snapshot {
	snap := testSnapshot()
	snap.Invoices = []domain.Invoice{
		invoiceFor("INV-001", 1, &testRegistered, domain.TaxRegimeSplit, item("520811", 10, 500, 5)),
		invoiceFor("INV-002", 2, nil, domain.TaxRegimeSplit, item("610910", 1, 900, 12)),
	}
	snap.CreditNotes = []domain.Note{
		noteFor(domain.NoteCredit, "CN-001", 15, &testRegistered, domain.TaxRegimeSplit, item("520811", 1, 500, 5)),
	}
	return snap
}

func TestRenderWorkbook_SheetList(t *testing.T) {
	ret := gstr1.Aggregate(renderedSnapshot())
	f, err := gstr1.RenderWorkbook(ret)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, gstr1.SheetOrder, f.GetSheetList())
}

func TestRenderWorkbook_HeaderBlock(t *testing.T) {
	ret := gstr1.Aggregate(renderedSnapshot())
	f, err := gstr1.RenderWorkbook(ret)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("b2b", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Summary For B2B(4)", title)

	title, err = f.GetCellValue("hsn", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Summary For HSN(12)", title)

	label, err := f.GetCellValue("b2b", "E2")
	require.NoError(t, err)
	assert.Equal(t, "Total Invoice Value", label)

	// Row 3 carries live formulas over the data range so manual edits
	// before upload still summarize correctly.
	formula, err := f.GetCellFormula("b2b", "E3")
	require.NoError(t, err)
	assert.Equal(t, "SUM(E5:E100000)", formula)

	header, err := f.GetCellValue("b2b", "A4")
	require.NoError(t, err)
	assert.Equal(t, "GSTIN/UIN of Recipient", header)
}

func TestRenderWorkbook_DataRows(t *testing.T) {
	ret := gstr1.Aggregate(renderedSnapshot())
	f, err := gstr1.RenderWorkbook(ret)
	require.NoError(t, err)
	defer f.Close()

	cell := func(sheet, ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	// b2b data starts at row 5, one row per line item.
	assert.Equal(t, "29AABCU9603R1ZM", cell("b2b", "A5"))
	assert.Equal(t, "Sharma Traders", cell("b2b", "B5"))
	assert.Equal(t, "INV-001", cell("b2b", "C5"))
	assert.Equal(t, "01-04-2025", cell("b2b", "D5"))
	assert.Equal(t, "5250", cell("b2b", "E5"))
	assert.Equal(t, "29-Karnataka", cell("b2b", "F5"))
	assert.Equal(t, "N", cell("b2b", "G5"))
	assert.Equal(t, "Regular", cell("b2b", "H5"))
	assert.Equal(t, "5000", cell("b2b", "J5"))
	assert.Equal(t, "125", cell("b2b", "L5"))

	assert.Equal(t, "INTRA", cell("b2cs", "A5"))
	assert.Equal(t, "29-Karnataka", cell("b2cs", "B5"))

	assert.Equal(t, "CN-001", cell("cdnr", "C5"))
	assert.Equal(t, "C", cell("cdnr", "E5"))

	assert.Equal(t, "Invoices for outward supply", cell("docs", "A5"))
	assert.Equal(t, "INV-001", cell("docs", "B5"))
	assert.Equal(t, "INV-002", cell("docs", "C5"))

	// The advance sheets exist with headers but carry no data rows.
	assert.Equal(t, "Place Of Supply", cell("at", "A4"))
	assert.Empty(t, cell("at", "A5"))
	assert.Empty(t, cell("atadj", "A5"))
}

func TestRenderWorkbook_InvoiceTypeLabels(t *testing.T) {
	snap := testSnapshot()
	sez := invoiceFor("SEZ-001", 5, &testInterRegistered, domain.TaxRegimeIntegrated, item("520811", 1, 1000, 18))
	sez.SupplyType = domain.SupplySEZWP
	de := invoiceFor("DE-001", 6, &testRegistered, domain.TaxRegimeSplit, item("520811", 1, 2000, 18))
	de.SupplyType = domain.SupplyDE
	snap.Invoices = []domain.Invoice{sez, de}

	ret := gstr1.Aggregate(snap)
	f, err := gstr1.RenderWorkbook(ret)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("sez", "H5")
	require.NoError(t, err)
	assert.Equal(t, "SEZ supplies with payment", v)

	v, err = f.GetCellValue("de", "H5")
	require.NoError(t, err)
	assert.Equal(t, "Deemed Exp", v)
}

func TestWorkbookFilename(t *testing.T) {
	assert.Equal(t, "GSTR1_29AACCK7865F1Z5_042025.xlsx", gstr1.WorkbookFilename("29AACCK7865F1Z5", "042025"))
	assert.Equal(t, "GSTR1_29AACCK7865F1Z5_042025.json", gstr1.PayloadFilename("29AACCK7865F1Z5", "042025"))
}
