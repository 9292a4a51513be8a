package gstr1_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstrly/internal/domain"
	"gstrly/internal/gstr1"
)

func TestBuildPayload_EmptySnapshotHasNoNullArrays(t *testing.T) {
	ret := gstr1.Aggregate(testSnapshot())
	p := gstr1.BuildPayload(ret)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	// The filing API rejects null where it expects an array, so every
	// bucket must serialize as [] even with nothing to report.
	assert.NotContains(t, string(raw), "null")
	for _, tag := range []string{`"b2b":[]`, `"sez":[]`, `"de":[]`, `"b2cl":[]`, `"b2cs":[]`,
		`"cdnr":[]`, `"cdnur":[]`, `"exp":[]`, `"at":[]`, `"txpd":[]`} {
		assert.Contains(t, string(raw), tag)
	}
}

func TestBuildPayload_Envelope(t *testing.T) {
	ret := gstr1.Aggregate(renderedSnapshot())
	p := gstr1.BuildPayload(ret)

	assert.Equal(t, "29AACCK7865F1Z5", p.GSTIN)
	assert.Equal(t, "042025", p.Period)
	assert.Equal(t, ret.GrossTurnover, p.GrossTurnover)
	assert.Equal(t, ret.GrossTurnover, p.CurGrossTurnover)

	// Advances are structurally present but never populated.
	assert.Empty(t, p.Advances)
	assert.Empty(t, p.AdvanceAdjusted)
}

func TestBuildPayload_B2BInvoices(t *testing.T) {
	ret := gstr1.Aggregate(renderedSnapshot())
	p := gstr1.BuildPayload(ret)

	require.Len(t, p.B2B, 1)
	assert.Equal(t, "29AABCU9603R1ZM", p.B2B[0].CTIN)
	require.Len(t, p.B2B[0].Invoices, 1)

	inv := p.B2B[0].Invoices[0]
	assert.Equal(t, "INV-001", inv.Number)
	assert.Equal(t, "01-04-2025", inv.Date)
	assert.Equal(t, 5250.0, inv.Value)
	assert.Equal(t, "29", inv.POS)
	assert.Equal(t, "N", inv.ReverseCharge)
	assert.Equal(t, "R", inv.InvoiceType)

	require.Len(t, inv.Items, 1)
	assert.Equal(t, 1, inv.Items[0].Num)
	assert.Equal(t, 5000.0, inv.Items[0].Detail.Taxable)
	assert.Equal(t, 125.0, inv.Items[0].Detail.CGST)
	assert.Equal(t, 125.0, inv.Items[0].Detail.SGST)
}

func TestBuildPayload_InvoiceTypeCodes(t *testing.T) {
	snap := testSnapshot()
	mk := func(num string, st domain.SupplyType) domain.Invoice {
		inv := invoiceFor(num, 5, &testInterRegistered, domain.TaxRegimeIntegrated, item("520811", 1, 1000, 18))
		inv.SupplyType = st
		return inv
	}
	snap.Invoices = []domain.Invoice{
		mk("SEZ-001", domain.SupplySEZWP),
		mk("SEZ-002", domain.SupplySEZWOP),
		mk("DE-001", domain.SupplyDE),
	}

	p := gstr1.BuildPayload(gstr1.Aggregate(snap))

	require.Len(t, p.SEZ, 1)
	require.Len(t, p.SEZ[0].Invoices, 2)
	assert.Equal(t, "SEWP", p.SEZ[0].Invoices[0].InvoiceType)
	assert.Equal(t, "SEWOP", p.SEZ[0].Invoices[1].InvoiceType)

	require.Len(t, p.DE, 1)
	require.Len(t, p.DE[0].Invoices, 1)
	assert.Equal(t, "DE", p.DE[0].Invoices[0].InvoiceType)
}

func TestBuildPayload_Notes(t *testing.T) {
	snap := testSnapshot()
	snap.CreditNotes = []domain.Note{
		noteFor(domain.NoteCredit, "CN-001", 15, &testRegistered, domain.TaxRegimeSplit, item("520811", 1, 500, 5)),
	}
	snap.DebitNotes = []domain.Note{
		noteFor(domain.NoteDebit, "DN-001", 16, &testInterConsumer, domain.TaxRegimeIntegrated, item("520811", 1, 300, 5)),
	}

	p := gstr1.BuildPayload(gstr1.Aggregate(snap))

	require.Len(t, p.CDNR, 1)
	require.Len(t, p.CDNR[0].Notes, 1)
	cn := p.CDNR[0].Notes[0]
	assert.Equal(t, "C", cn.Type)
	assert.Equal(t, "INV-001", cn.InvoiceNumber)
	assert.Equal(t, "15-04-2025", cn.Date)

	require.Len(t, p.CDNUR, 1)
	assert.Equal(t, "D", p.CDNUR[0].Type)
	assert.Equal(t, "INTER", p.CDNUR[0].SupplyKind)
	assert.Equal(t, "27", p.CDNUR[0].POS)
}

func TestBuildPayload_NilSupplyCodes(t *testing.T) {
	p := gstr1.BuildPayload(gstr1.Aggregate(testSnapshot()))

	require.Len(t, p.Nil.Supplies, 4)
	assert.Equal(t, "INTRB2B", p.Nil.Supplies[0].SupplyType)
	assert.Equal(t, "INTRAB2B", p.Nil.Supplies[1].SupplyType)
	assert.Equal(t, "INTRB2C", p.Nil.Supplies[2].SupplyType)
	assert.Equal(t, "INTRAB2C", p.Nil.Supplies[3].SupplyType)
}

func TestBuildPayload_DocIssueNetting(t *testing.T) {
	p := gstr1.BuildPayload(gstr1.Aggregate(renderedSnapshot()))

	require.Len(t, p.DocIssue.Details, 2)
	det := p.DocIssue.Details[0]
	assert.Equal(t, 1, det.Num)
	require.Len(t, det.Docs, 1)
	assert.Equal(t, "INV-001", det.Docs[0].From)
	assert.Equal(t, "INV-002", det.Docs[0].To)
	assert.Equal(t, 2, det.Docs[0].Total)
	assert.Equal(t, 2, det.Docs[0].NetIssued)
}

// Both renderers read the same canonical model, so the workbook cell and the
// payload field for the same aggregate must agree exactly.
func TestBuildPayload_AgreesWithWorkbook(t *testing.T) {
	ret := gstr1.Aggregate(renderedSnapshot())
	p := gstr1.BuildPayload(ret)
	f, err := gstr1.RenderWorkbook(ret)
	require.NoError(t, err)
	defer f.Close()

	cell, err := f.GetCellValue("b2b", "J5")
	require.NoError(t, err)
	assert.Equal(t, "5000", cell)
	assert.Equal(t, 5000.0, p.B2B[0].Invoices[0].Items[0].Detail.Taxable)

	cell, err = f.GetCellValue("hsn", "F5")
	require.NoError(t, err)
	require.NotEmpty(t, p.HSN.Data)
	assert.Equal(t, "4500", cell)
	assert.Equal(t, 4500.0, p.HSN.Data[0].Taxable)
}
