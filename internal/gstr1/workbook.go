package gstr1

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"gstrly/internal/domain"
)

// Sheet layout constants. Data always starts at row 5; the summary formulas
// on row 3 reference the range down to formulaLastRow so the sheet stays
// correct if a human appends rows before upload.
const (
	dataStartRow   = 5
	formulaLastRow = 100000
	dateFormat     = "02-01-2006"
)

// SheetOrder is the fixed sheet order of the GSTR-1 workbook.
var SheetOrder = []string{
	"b2b", "sez", "de", "b2cl", "b2cs", "cdnr", "cdnur",
	"exp", "at", "atadj", "exemp", "hsn", "docs",
}

// summaryCol declares one live aggregate cell of the 4-row header block.
type summaryCol struct {
	label   string
	formula string // without leading "="
}

// sheetDef is the declarative layout of one sheet: title, summary cells
// keyed by zero-based column index, and the column-header row.
type sheetDef struct {
	title     string
	summaries map[int]summaryCol
	headers   []string
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func sumFormula(col int) string {
	c := colName(col)
	return fmt.Sprintf("SUM(%s%d:%s%d)", c, dataStartRow, c, formulaLastRow)
}

func countFormula(col int) string {
	c := colName(col)
	return fmt.Sprintf("COUNTA(%s%d:%s%d)", c, dataStartRow, c, formulaLastRow)
}

// distinctFormula counts distinct non-blank values, the way the government
// offline tool computes "No. of Recipients" style summaries.
func distinctFormula(col int) string {
	c := colName(col)
	rng := fmt.Sprintf("%s%d:%s%d", c, dataStartRow, c, formulaLastRow)
	return fmt.Sprintf(`SUMPRODUCT((%s<>"")/COUNTIF(%s,%s&""))`, rng, rng, rng)
}

func sheetDefs() map[string]sheetDef {
	b2bLike := func(title string) sheetDef {
		return sheetDef{
			title: title,
			summaries: map[int]summaryCol{
				0: {"No. of Recipients", distinctFormula(0)},
				2: {"No. of Invoices", distinctFormula(2)},
				4: {"Total Invoice Value", sumFormula(4)},
				9: {"Total Taxable Value", sumFormula(9)},
			},
			headers: []string{
				"GSTIN/UIN of Recipient", "Receiver Name", "Invoice Number",
				"Invoice Date", "Invoice Value", "Place Of Supply",
				"Reverse Charge", "Invoice Type", "Rate", "Taxable Value",
				"Integrated Tax", "Central Tax", "State/UT Tax",
			},
		}
	}
	return map[string]sheetDef{
		"b2b": b2bLike("Summary For B2B(4)"),
		"sez": b2bLike("Summary For SEZ(6B)"),
		"de":  b2bLike("Summary For Deemed Export(6C)"),
		"b2cl": {
			title: "Summary For B2CL(5)",
			summaries: map[int]summaryCol{
				0: {"No. of Invoices", distinctFormula(0)},
				2: {"Total Invoice Value", sumFormula(2)},
				5: {"Total Taxable Value", sumFormula(5)},
			},
			headers: []string{
				"Invoice Number", "Invoice Date", "Invoice Value",
				"Place Of Supply", "Rate", "Taxable Value", "Integrated Tax",
			},
		},
		"b2cs": {
			title: "Summary For B2CS(7)",
			summaries: map[int]summaryCol{
				3: {"Total Taxable Value", sumFormula(3)},
				4: {"Total Integrated Tax", sumFormula(4)},
				5: {"Total Central Tax", sumFormula(5)},
				6: {"Total State/UT Tax", sumFormula(6)},
			},
			headers: []string{
				"Type", "Place Of Supply", "Rate", "Taxable Value",
				"Integrated Tax", "Central Tax", "State/UT Tax",
			},
		},
		"cdnr": {
			title: "Summary For CDNR(9B)",
			summaries: map[int]summaryCol{
				0: {"No. of Recipients", distinctFormula(0)},
				2: {"No. of Notes", distinctFormula(2)},
				7: {"Total Note Value", sumFormula(7)},
				9: {"Total Taxable Value", sumFormula(9)},
			},
			headers: []string{
				"GSTIN/UIN of Recipient", "Receiver Name", "Note Number",
				"Note Date", "Note Type", "Original Invoice Number",
				"Place Of Supply", "Note Value", "Rate", "Taxable Value",
				"Integrated Tax", "Central Tax", "State/UT Tax",
			},
		},
		"cdnur": {
			title: "Summary For CDNUR(9B)",
			summaries: map[int]summaryCol{
				1: {"No. of Notes", distinctFormula(1)},
				5: {"Total Note Value", sumFormula(5)},
				7: {"Total Taxable Value", sumFormula(7)},
			},
			headers: []string{
				"UR Type", "Note Number", "Note Date", "Note Type",
				"Place Of Supply", "Note Value", "Rate", "Taxable Value",
				"Integrated Tax", "Central Tax", "State/UT Tax",
			},
		},
		"exp": {
			title: "Summary For EXP(6)",
			summaries: map[int]summaryCol{
				1: {"No. of Invoices", distinctFormula(1)},
				3: {"Total Invoice Value", sumFormula(3)},
				5: {"No. of Shipping Bills", distinctFormula(5)},
				8: {"Total Taxable Value", sumFormula(8)},
			},
			headers: []string{
				"Export Type", "Invoice Number", "Invoice Date", "Invoice Value",
				"Port Code", "Shipping Bill Number", "Shipping Bill Date",
				"Rate", "Taxable Value", "Integrated Tax",
			},
		},
		"at": {
			title: "Summary For Advance Received (11B)",
			summaries: map[int]summaryCol{
				2: {"Total Advance Received", sumFormula(2)},
			},
			headers: []string{"Place Of Supply", "Rate", "Gross Advance Received", "Cess Amount"},
		},
		"atadj": {
			title: "Summary For Advance Adjusted (11B)",
			summaries: map[int]summaryCol{
				2: {"Total Advance Adjusted", sumFormula(2)},
			},
			headers: []string{"Place Of Supply", "Rate", "Gross Advance Adjusted", "Cess Amount"},
		},
		"exemp": {
			title: "Summary For Nil rated, exempted and non GST outward supplies (8)",
			summaries: map[int]summaryCol{
				1: {"Total Nil Rated Supplies", sumFormula(1)},
				2: {"Total Exempted Supplies", sumFormula(2)},
				3: {"Total Non-GST Supplies", sumFormula(3)},
			},
			headers: []string{
				"Description", "Nil Rated Supplies", "Exempted (other than nil rated/non GST supply)", "Non-GST Supplies",
			},
		},
		"hsn": {
			title: "Summary For HSN(12)",
			summaries: map[int]summaryCol{
				0: {"No. of HSN", distinctFormula(0)},
				4: {"Total Value", sumFormula(4)},
				5: {"Total Taxable Value", sumFormula(5)},
				6: {"Total Integrated Tax", sumFormula(6)},
				7: {"Total Central Tax", sumFormula(7)},
				8: {"Total State/UT Tax", sumFormula(8)},
			},
			headers: []string{
				"HSN", "Description", "UQC", "Total Quantity", "Total Value",
				"Taxable Value", "Integrated Tax Amount", "Central Tax Amount",
				"State/UT Tax Amount",
			},
		},
		"docs": {
			title: "Summary of documents issued during the tax period (13)",
			summaries: map[int]summaryCol{
				3: {"Total Number", sumFormula(3)},
				4: {"Total Cancelled", sumFormula(4)},
			},
			headers: []string{
				"Nature of Document", "Sr. No. From", "Sr. No. To",
				"Total Number", "Cancelled",
			},
		},
	}
}

// RenderWorkbook turns the canonical return into the 13-sheet workbook. Each
// sheet carries the fixed 4-row header block (title, summary labels, live
// summary formulas, column headers) followed by one row per aggregated
// record.
func RenderWorkbook(ret *Return) (*excelize.File, error) {
	f := excelize.NewFile()
	defs := sheetDefs()
	rows := sheetRows(ret)

	for i, name := range SheetOrder {
		if i == 0 {
			// excelize starts with a default sheet; rename it.
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return nil, fmt.Errorf("rename sheet %s: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
		if err := writeSheet(f, name, defs[name], rows[name]); err != nil {
			return nil, fmt.Errorf("write sheet %s: %w", name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, name string, def sheetDef, rows [][]interface{}) error {
	if err := f.SetCellValue(name, "A1", def.title); err != nil {
		return err
	}
	for col, s := range def.summaries {
		labelCell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, labelCell, s.label); err != nil {
			return err
		}
		valueCell, err := excelize.CoordinatesToCellName(col+1, 3)
		if err != nil {
			return err
		}
		if err := f.SetCellFormula(name, valueCell, s.formula); err != nil {
			return err
		}
	}
	header := make([]interface{}, len(def.headers))
	for i, h := range def.headers {
		header[i] = h
	}
	if err := f.SetSheetRow(name, "A4", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, dataStartRow+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// sheetRows flattens the canonical model into per-sheet data rows: grouped
// buckets become one row per line item, summary buckets one row per record.
func sheetRows(ret *Return) map[string][][]interface{} {
	rows := make(map[string][][]interface{}, len(SheetOrder))
	for _, name := range SheetOrder {
		rows[name] = nil
	}

	flattenParties := func(groups []PartyGroup) [][]interface{} {
		var out [][]interface{}
		for _, g := range groups {
			for _, inv := range g.Invoices {
				for _, l := range inv.Lines {
					out = append(out, []interface{}{
						g.GSTIN, g.Name, inv.Number, formatDate(inv.Date),
						inv.Value, posCell(inv.POSCode, inv.POSName),
						yesNo(inv.ReverseCharge), invoiceTypeLabel(inv.Category),
						l.Rate, l.Taxable, l.IGST, l.CGST, l.SGST,
					})
				}
			}
		}
		return out
	}
	rows["b2b"] = flattenParties(ret.B2B)
	rows["sez"] = flattenParties(ret.SEZ)
	rows["de"] = flattenParties(ret.DE)

	for _, g := range ret.B2CL {
		for _, inv := range g.Invoices {
			for _, l := range inv.Lines {
				rows["b2cl"] = append(rows["b2cl"], []interface{}{
					inv.Number, formatDate(inv.Date), inv.Value,
					posCell(g.POSCode, g.POSName), l.Rate, l.Taxable, l.IGST,
				})
			}
		}
	}

	for _, r := range ret.B2CS {
		rows["b2cs"] = append(rows["b2cs"], []interface{}{
			r.SupplyKind, posCell(r.POSCode, r.POSName), r.Rate,
			r.Taxable, r.IGST, r.CGST, r.SGST,
		})
	}

	for _, g := range ret.CDNR {
		for _, n := range g.Notes {
			for _, l := range n.Lines {
				rows["cdnr"] = append(rows["cdnr"], []interface{}{
					g.GSTIN, g.Name, n.Number, formatDate(n.Date),
					noteTypeLabel(n.Kind), n.InvoiceNumber,
					posCell(n.POSCode, n.POSName), n.Value,
					l.Rate, l.Taxable, l.IGST, l.CGST, l.SGST,
				})
			}
		}
	}

	for _, r := range ret.CDNUR {
		for _, l := range r.Lines {
			rows["cdnur"] = append(rows["cdnur"], []interface{}{
				r.SupplyKind, r.Number, formatDate(r.Date),
				noteTypeLabel(r.Kind), posCell(r.POSCode, r.POSName),
				r.Value, l.Rate, l.Taxable, l.IGST, l.CGST, l.SGST,
			})
		}
	}

	for _, g := range ret.Exports {
		for _, inv := range g.Invoices {
			for _, l := range inv.Lines {
				rows["exp"] = append(rows["exp"], []interface{}{
					g.Type, inv.Number, formatDate(inv.Date), inv.Value,
					inv.PortCode, inv.ShippingBillNumber, inv.ShippingBillDate,
					l.Rate, l.Taxable, l.IGST,
				})
			}
		}
	}

	for _, r := range ret.Nil {
		rows["exemp"] = append(rows["exemp"], []interface{}{
			r.Description, r.NilRated, r.Exempt, r.NonGST,
		})
	}

	for _, r := range ret.HSN {
		rows["hsn"] = append(rows["hsn"], []interface{}{
			r.Code, r.Description, r.UQC, r.Quantity, r.Value,
			r.Taxable, r.IGST, r.CGST, r.SGST,
		})
	}

	for _, r := range ret.Docs {
		rows["docs"] = append(rows["docs"], []interface{}{
			r.Nature, r.From, r.To, r.Total, r.Cancelled,
		})
	}

	return rows
}

func formatDate(t time.Time) string {
	return t.Format(dateFormat)
}

func posCell(code, name string) string {
	if code == name || name == "" {
		return code
	}
	return code + "-" + name
}

func yesNo(v bool) string {
	if v {
		return "Y"
	}
	return "N"
}

func invoiceTypeLabel(t domain.SupplyType) string {
	switch t {
	case domain.SupplySEZWP:
		return "SEZ supplies with payment"
	case domain.SupplySEZWOP:
		return "SEZ supplies without payment"
	case domain.SupplyDE:
		return "Deemed Exp"
	default:
		return "Regular"
	}
}

func noteTypeLabel(k domain.NoteKind) string {
	if k == domain.NoteCredit {
		return "C"
	}
	return "D"
}
