// Package gstr1 generates GSTR-1 return artifacts from an in-memory snapshot
// of a business's invoices, credit notes, and debit notes.
//
// The generation is a pure, synchronous, single-pass computation: classify
// each supply into its regulatory bucket, aggregate once into a canonical
// model, then render that model twice — as the government offline-tool
// workbook and as the filing API's JSON body. It performs no I/O and trusts
// the caller to pass a period-consistent snapshot.
package gstr1

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Output bundles the two artifacts of one generation call plus the canonical
// model (including diagnostics) they were rendered from. Lifetime of all
// three is the caller's to manage.
type Output struct {
	Return   *Return
	Workbook *excelize.File
	Payload  *Payload

	WorkbookName string
	PayloadName  string
}

// Generate produces both return artifacts from the snapshot. Imperfect
// bookkeeping data never fails a generation: unknown states pass through,
// missing customers default to B2C-small, and short HSN codes are excluded
// from the HSN summary only — all surfaced in Return.Diagnostics.
func Generate(snap *Snapshot) (*Output, error) {
	ret := Aggregate(snap)

	wb, err := RenderWorkbook(ret)
	if err != nil {
		return nil, fmt.Errorf("gstr1.Generate: render workbook: %w", err)
	}

	return &Output{
		Return:       ret,
		Workbook:     wb,
		Payload:      BuildPayload(ret),
		WorkbookName: WorkbookFilename(snap.Profile.GSTIN, snap.Period),
		PayloadName:  PayloadFilename(snap.Profile.GSTIN, snap.Period),
	}, nil
}

// WorkbookFilename returns the spreadsheet artifact name for a filing.
func WorkbookFilename(gstin, period string) string {
	return fmt.Sprintf("GSTR1_%s_%s.xlsx", gstin, period)
}

// PayloadFilename returns the JSON artifact name for a filing.
func PayloadFilename(gstin, period string) string {
	return fmt.Sprintf("GSTR1_%s_%s.json", gstin, period)
}
