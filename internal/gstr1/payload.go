package gstr1

import "gstrly/internal/domain"

// Payload is the machine-readable GSTR-1 filing body. Field tags follow the
// tax authority's API schema; bucket arrays are always present, never null.
type Payload struct {
	GSTIN            string           `json:"gstin"`
	Period           string           `json:"fp"`
	GrossTurnover    float64          `json:"gt"`
	CurGrossTurnover float64          `json:"cur_gt"`
	B2B              []PartyPayload   `json:"b2b"`
	SEZ              []PartyPayload   `json:"sez"`
	DE               []PartyPayload   `json:"de"`
	B2CL             []B2CLPayload    `json:"b2cl"`
	B2CS             []B2CSPayload    `json:"b2cs"`
	CDNR             []CDNRPayload    `json:"cdnr"`
	CDNUR            []CDNURPayload   `json:"cdnur"`
	Exports          []ExportPayload  `json:"exp"`
	Advances         []AdvancePayload `json:"at"`
	AdvanceAdjusted  []AdvancePayload `json:"txpd"`
	Nil              NilPayload       `json:"nil"`
	HSN              HSNPayload       `json:"hsn"`
	DocIssue         DocIssuePayload  `json:"doc_issue"`
}

// PartyPayload groups invoices under one recipient GSTIN.
type PartyPayload struct {
	CTIN     string           `json:"ctin"`
	Invoices []InvoicePayload `json:"inv"`
}

// InvoicePayload is one invoice in the filing body.
type InvoicePayload struct {
	Number        string        `json:"inum"`
	Date          string        `json:"idt"`
	Value         float64       `json:"val"`
	POS           string        `json:"pos"`
	ReverseCharge string        `json:"rchrg"`
	InvoiceType   string        `json:"inv_typ"`
	Items         []ItemPayload `json:"itms"`
}

// ItemPayload wraps one line item with its serial number.
type ItemPayload struct {
	Num    int        `json:"num"`
	Detail ItemDetail `json:"itm_det"`
}

// ItemDetail carries the rounded per-line amounts.
type ItemDetail struct {
	Rate    float64 `json:"rt"`
	Taxable float64 `json:"txval"`
	IGST    float64 `json:"iamt"`
	CGST    float64 `json:"camt"`
	SGST    float64 `json:"samt"`
}

// B2CLPayload groups large consumer invoices by place of supply.
type B2CLPayload struct {
	POS      string           `json:"pos"`
	Invoices []InvoicePayload `json:"inv"`
}

// B2CSPayload is one collapsed small-consumer summary record.
type B2CSPayload struct {
	SupplyKind string  `json:"sply_ty"`
	POS        string  `json:"pos"`
	Type       string  `json:"typ"`
	Rate       float64 `json:"rt"`
	Taxable    float64 `json:"txval"`
	IGST       float64 `json:"iamt"`
	CGST       float64 `json:"camt"`
	SGST       float64 `json:"samt"`
}

// CDNRPayload groups notes under one recipient GSTIN.
type CDNRPayload struct {
	CTIN  string        `json:"ctin"`
	Notes []NotePayload `json:"nt"`
}

// NotePayload is one credit or debit note.
type NotePayload struct {
	Number        string        `json:"nt_num"`
	Date          string        `json:"nt_dt"`
	Type          string        `json:"ntty"`
	InvoiceNumber string        `json:"inum"`
	POS           string        `json:"pos"`
	Value         float64       `json:"val"`
	Items         []ItemPayload `json:"itms"`
}

// CDNURPayload is one note to an unregistered customer.
type CDNURPayload struct {
	SupplyKind string `json:"typ"`
	NotePayload
}

// ExportPayload holds export invoices for one payment type.
type ExportPayload struct {
	Type     string                 `json:"exp_typ"`
	Invoices []ExportInvoicePayload `json:"inv"`
}

// ExportInvoicePayload is one export invoice with customs metadata. Missing
// metadata renders as empty strings.
type ExportInvoicePayload struct {
	Number             string        `json:"inum"`
	Date               string        `json:"idt"`
	Value              float64       `json:"val"`
	PortCode           string        `json:"sbpcode"`
	ShippingBillNumber string        `json:"sbnum"`
	ShippingBillDate   string        `json:"sbdt"`
	Items              []ItemPayload `json:"itms"`
}

// AdvancePayload is the advances bucket shape. The data model carries no
// advance receipts, so these arrays are always empty.
type AdvancePayload struct {
	POS     string  `json:"pos"`
	Rate    float64 `json:"rt"`
	Advance float64 `json:"ad_amt"`
}

// NilPayload is the nil-rated/exempt/non-GST summary.
type NilPayload struct {
	Supplies []NilDetailPayload `json:"inv"`
}

// NilDetailPayload is one of the four supply categories.
type NilDetailPayload struct {
	SupplyType string  `json:"sply_ty"`
	NilRated   float64 `json:"nil_amt"`
	Exempt     float64 `json:"expt_amt"`
	NonGST     float64 `json:"ngsup_amt"`
}

// HSNPayload wraps the HSN data rows.
type HSNPayload struct {
	Data []HSNDetailPayload `json:"data"`
}

// HSNDetailPayload is one commodity-code summary record.
type HSNDetailPayload struct {
	Num         int     `json:"num"`
	Code        string  `json:"hsn_sc"`
	Description string  `json:"desc"`
	UQC         string  `json:"uqc"`
	Quantity    float64 `json:"qty"`
	Value       float64 `json:"val"`
	Taxable     float64 `json:"txval"`
	IGST        float64 `json:"iamt"`
	CGST        float64 `json:"camt"`
	SGST        float64 `json:"samt"`
}

// DocIssuePayload wraps the document-range records.
type DocIssuePayload struct {
	Details []DocDetailPayload `json:"doc_det"`
}

// DocDetailPayload is one document nature with its ranges.
type DocDetailPayload struct {
	Num  int               `json:"doc_num"`
	Docs []DocRangePayload `json:"docs"`
}

// DocRangePayload is one issued number range.
type DocRangePayload struct {
	Num       int    `json:"num"`
	From      string `json:"from"`
	To        string `json:"to"`
	Total     int    `json:"totnum"`
	Cancelled int    `json:"cancel"`
	NetIssued int    `json:"net_issue"`
}

// nilSupplyCodes maps the canonical nil-row descriptions to schema codes.
var nilSupplyCodes = map[string]string{
	"Inter-State supplies to registered persons":   "INTRB2B",
	"Intra-State supplies to registered persons":   "INTRAB2B",
	"Inter-State supplies to unregistered persons": "INTRB2C",
	"Intra-State supplies to unregistered persons": "INTRAB2C",
}

// BuildPayload renders the canonical return as the filing body. It reads the
// same aggregated values as the workbook renderer, so the two outputs agree
// on every numeric total by construction.
func BuildPayload(ret *Return) *Payload {
	p := &Payload{
		GSTIN:            ret.GSTIN,
		Period:           ret.Period,
		GrossTurnover:    ret.GrossTurnover,
		CurGrossTurnover: ret.GrossTurnover,
		B2B:              []PartyPayload{},
		SEZ:              []PartyPayload{},
		DE:               []PartyPayload{},
		B2CL:             []B2CLPayload{},
		B2CS:             []B2CSPayload{},
		CDNR:             []CDNRPayload{},
		CDNUR:            []CDNURPayload{},
		Exports:          []ExportPayload{},
		Advances:         []AdvancePayload{},
		AdvanceAdjusted:  []AdvancePayload{},
		Nil:              NilPayload{Supplies: []NilDetailPayload{}},
		HSN:              HSNPayload{Data: []HSNDetailPayload{}},
		DocIssue:         DocIssuePayload{Details: []DocDetailPayload{}},
	}

	p.B2B = partyPayloads(ret.B2B)
	p.SEZ = partyPayloads(ret.SEZ)
	p.DE = partyPayloads(ret.DE)

	for _, g := range ret.B2CL {
		p.B2CL = append(p.B2CL, B2CLPayload{
			POS:      g.POSCode,
			Invoices: invoicePayloads(g.Invoices),
		})
	}

	for _, r := range ret.B2CS {
		p.B2CS = append(p.B2CS, B2CSPayload{
			SupplyKind: r.SupplyKind,
			POS:        r.POSCode,
			Type:       "OE",
			Rate:       r.Rate,
			Taxable:    r.Taxable,
			IGST:       r.IGST,
			CGST:       r.CGST,
			SGST:       r.SGST,
		})
	}

	for _, g := range ret.CDNR {
		cp := CDNRPayload{CTIN: g.GSTIN, Notes: []NotePayload{}}
		for _, n := range g.Notes {
			cp.Notes = append(cp.Notes, notePayload(n))
		}
		p.CDNR = append(p.CDNR, cp)
	}

	for _, r := range ret.CDNUR {
		p.CDNUR = append(p.CDNUR, CDNURPayload{
			SupplyKind:  r.SupplyKind,
			NotePayload: notePayload(r.NoteEntry),
		})
	}

	for _, g := range ret.Exports {
		ep := ExportPayload{Type: g.Type, Invoices: []ExportInvoicePayload{}}
		for _, inv := range g.Invoices {
			ep.Invoices = append(ep.Invoices, ExportInvoicePayload{
				Number:             inv.Number,
				Date:               formatDate(inv.Date),
				Value:              inv.Value,
				PortCode:           inv.PortCode,
				ShippingBillNumber: inv.ShippingBillNumber,
				ShippingBillDate:   inv.ShippingBillDate,
				Items:              itemPayloads(inv.Lines),
			})
		}
		p.Exports = append(p.Exports, ep)
	}

	for _, r := range ret.Nil {
		p.Nil.Supplies = append(p.Nil.Supplies, NilDetailPayload{
			SupplyType: nilSupplyCodes[r.Description],
			NilRated:   r.NilRated,
			Exempt:     r.Exempt,
			NonGST:     r.NonGST,
		})
	}

	for i, r := range ret.HSN {
		p.HSN.Data = append(p.HSN.Data, HSNDetailPayload{
			Num:         i + 1,
			Code:        r.Code,
			Description: r.Description,
			UQC:         r.UQC,
			Quantity:    r.Quantity,
			Value:       r.Value,
			Taxable:     r.Taxable,
			IGST:        r.IGST,
			CGST:        r.CGST,
			SGST:        r.SGST,
		})
	}

	for i, r := range ret.Docs {
		p.DocIssue.Details = append(p.DocIssue.Details, DocDetailPayload{
			Num: i + 1,
			Docs: []DocRangePayload{{
				Num:       1,
				From:      r.From,
				To:        r.To,
				Total:     r.Total,
				Cancelled: r.Cancelled,
				NetIssued: r.Total - r.Cancelled,
			}},
		})
	}

	return p
}

func partyPayloads(groups []PartyGroup) []PartyPayload {
	out := []PartyPayload{}
	for _, g := range groups {
		out = append(out, PartyPayload{
			CTIN:     g.GSTIN,
			Invoices: invoicePayloads(g.Invoices),
		})
	}
	return out
}

func invoicePayloads(entries []InvoiceEntry) []InvoicePayload {
	out := []InvoicePayload{}
	for _, inv := range entries {
		out = append(out, InvoicePayload{
			Number:        inv.Number,
			Date:          formatDate(inv.Date),
			Value:         inv.Value,
			POS:           inv.POSCode,
			ReverseCharge: yesNo(inv.ReverseCharge),
			InvoiceType:   invoiceTypeCode(inv.Category),
			Items:         itemPayloads(inv.Lines),
		})
	}
	return out
}

func itemPayloads(lines []RateLine) []ItemPayload {
	out := []ItemPayload{}
	for i, l := range lines {
		out = append(out, ItemPayload{
			Num: i + 1,
			Detail: ItemDetail{
				Rate:    l.Rate,
				Taxable: l.Taxable,
				IGST:    l.IGST,
				CGST:    l.CGST,
				SGST:    l.SGST,
			},
		})
	}
	return out
}

func notePayload(n NoteEntry) NotePayload {
	ntty := "D"
	if n.Kind == domain.NoteCredit {
		ntty = "C"
	}
	return NotePayload{
		Number:        n.Number,
		Date:          formatDate(n.Date),
		Type:          ntty,
		InvoiceNumber: n.InvoiceNumber,
		POS:           n.POSCode,
		Value:         n.Value,
		Items:         itemPayloads(n.Lines),
	}
}

func invoiceTypeCode(t domain.SupplyType) string {
	switch t {
	case domain.SupplySEZWP:
		return "SEWP"
	case domain.SupplySEZWOP:
		return "SEWOP"
	case domain.SupplyDE:
		return "DE"
	default:
		return "R"
	}
}
