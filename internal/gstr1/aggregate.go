package gstr1

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"gstrly/internal/domain"
)

// classified pairs an invoice with its resolved customer and bucket.
type classified struct {
	inv        *domain.Invoice
	cust       *domain.Customer
	supplyType domain.SupplyType
	posState   string
}

// aggregator carries shared state across the per-bucket passes.
type aggregator struct {
	snap   *Snapshot
	byID   map[string]*domain.Customer
	inv    []classified
	minHSN int
	diags  []Diagnostic
}

// Aggregate runs every bucket pass over the snapshot and returns the
// canonical model both renderers consume.
func Aggregate(snap *Snapshot) *Return {
	a := &aggregator{
		snap:   snap,
		byID:   make(map[string]*domain.Customer, len(snap.Customers)),
		minHSN: snap.Profile.TurnoverBand.HSNMinDigits(),
	}
	for i := range snap.Customers {
		c := &snap.Customers[i]
		a.byID[c.ID.String()] = c
	}
	a.classifyAll()

	ret := &Return{
		GSTIN:  snap.Profile.GSTIN,
		Period: snap.Period,
	}
	ret.B2B = a.partyGroups(domain.SupplyB2B)
	ret.SEZ = a.partyGroups(domain.SupplySEZWP, domain.SupplySEZWOP)
	ret.DE = a.partyGroups(domain.SupplyDE)
	ret.B2CL = a.b2clGroups()
	ret.B2CS = a.b2csRows()
	ret.CDNR, ret.CDNUR = a.noteBuckets()
	ret.Exports = a.exportGroups()
	ret.Nil = a.nilSummary()
	ret.HSN = a.hsnSummary()
	ret.Docs = a.docRanges()
	ret.GrossTurnover = a.grossTurnover()
	ret.Diagnostics = a.diags
	return ret
}

func (a *aggregator) classifyAll() {
	own := a.snap.Profile.State
	a.inv = make([]classified, 0, len(a.snap.Invoices))
	for i := range a.snap.Invoices {
		inv := &a.snap.Invoices[i]
		cust := a.resolve(inv.CustomerID, "invoice "+inv.Number)
		pos := own
		if cust != nil && cust.State != "" {
			pos = cust.State
		}
		a.checkState(pos, "invoice "+inv.Number)
		a.inv = append(a.inv, classified{
			inv:        inv,
			cust:       cust,
			supplyType: Classify(inv, cust, own),
			posState:   pos,
		})
	}
}

// resolve looks up a referenced customer. A broken reference is surfaced as
// a diagnostic and treated the same as no customer at all.
func (a *aggregator) resolve(id *uuid.UUID, doc string) *domain.Customer {
	if id == nil {
		return nil
	}
	c, ok := a.byID[id.String()]
	if !ok {
		a.diag(DiagMissingCustomer, doc, fmt.Sprintf("customer %s not found; defaulting to B2C-small", id))
		return nil
	}
	return c
}

func (a *aggregator) checkState(state, doc string) {
	if state == "" {
		return
	}
	if _, ok := stateCodes[state]; !ok {
		a.diag(DiagUnknownState, doc, fmt.Sprintf("state %q has no jurisdiction code; passed through unresolved", state))
	}
}

func (a *aggregator) diag(code, doc, detail string) {
	a.diags = append(a.diags, Diagnostic{Code: code, Document: doc, Detail: detail})
}

// makeLines converts line items into rounded rate lines. When withTax is
// false (export without payment) the tax components are zero.
func makeLines(items []domain.LineItem, regime domain.TaxRegime, withTax bool) []RateLine {
	lines := make([]RateLine, 0, len(items))
	for i := range items {
		it := &items[i]
		l := RateLine{Rate: it.GSTRate, Taxable: lineTaxable(it)}
		if withTax {
			tax := lineTax(it)
			if regime == domain.TaxRegimeSplit {
				l.CGST = splitTax(tax)
				l.SGST = splitTax(tax)
			} else {
				l.IGST = tax
			}
		}
		lines = append(lines, l)
	}
	return lines
}

func (a *aggregator) invoiceEntry(c *classified) InvoiceEntry {
	return InvoiceEntry{
		Number:        c.inv.Number,
		Date:          c.inv.IssueDate,
		Value:         c.inv.TotalAmount,
		POSCode:       StateCode(c.posState),
		POSName:       c.posState,
		ReverseCharge: c.inv.ReverseCharge,
		Category:      c.supplyType,
		Lines:         makeLines(c.inv.Items, c.inv.TaxRegime, true),
	}
}

// partyGroups builds the B2B-shaped buckets: one group per customer GSTIN,
// invoices nested under their customer.
func (a *aggregator) partyGroups(types ...domain.SupplyType) []PartyGroup {
	want := make(map[domain.SupplyType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	groups := make(map[string]*PartyGroup)
	for i := range a.inv {
		c := &a.inv[i]
		if !want[c.supplyType] {
			continue
		}
		gstin, name := "", c.inv.CustomerName
		if c.cust != nil {
			gstin = c.cust.GSTIN
			name = c.cust.Name
		}
		g, ok := groups[gstin]
		if !ok {
			g = &PartyGroup{GSTIN: gstin, Name: name}
			groups[gstin] = g
		}
		g.Invoices = append(g.Invoices, a.invoiceEntry(c))
	}
	out := make([]PartyGroup, 0, len(groups))
	for _, g := range groups {
		sortInvoiceEntries(g.Invoices)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GSTIN < out[j].GSTIN })
	return out
}

func (a *aggregator) b2clGroups() []B2CLGroup {
	groups := make(map[string]*B2CLGroup)
	for i := range a.inv {
		c := &a.inv[i]
		if c.supplyType != domain.SupplyB2CL {
			continue
		}
		code := StateCode(c.posState)
		g, ok := groups[code]
		if !ok {
			g = &B2CLGroup{POSCode: code, POSName: c.posState}
			groups[code] = g
		}
		g.Invoices = append(g.Invoices, a.invoiceEntry(c))
	}
	out := make([]B2CLGroup, 0, len(groups))
	for _, g := range groups {
		sortInvoiceEntries(g.Invoices)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].POSCode < out[j].POSCode })
	return out
}

// b2csRows collapses small-consumer supplies into summary rows keyed by
// (place of supply, intra/inter flag, rate). The portal does not accept
// consumer-level detail here, so the collapsing is mandatory.
func (a *aggregator) b2csRows() []B2CSRow {
	type key struct {
		pos  string
		kind string
		rate float64
	}
	rows := make(map[key]*B2CSRow)
	for i := range a.inv {
		c := &a.inv[i]
		if c.supplyType != domain.SupplyB2CS {
			continue
		}
		kind := supplyKind(c.inv.TaxRegime)
		for _, l := range makeLines(c.inv.Items, c.inv.TaxRegime, true) {
			k := key{pos: StateCode(c.posState), kind: kind, rate: l.Rate}
			r, ok := rows[k]
			if !ok {
				r = &B2CSRow{POSCode: k.pos, POSName: c.posState, SupplyKind: kind, Rate: l.Rate}
				rows[k] = r
			}
			r.Taxable += l.Taxable
			r.IGST += l.IGST
			r.CGST += l.CGST
			r.SGST += l.SGST
		}
	}
	out := make([]B2CSRow, 0, len(rows))
	for _, r := range rows {
		r.Taxable = Round2(r.Taxable)
		r.IGST = Round2(r.IGST)
		r.CGST = Round2(r.CGST)
		r.SGST = Round2(r.SGST)
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].POSCode != out[j].POSCode {
			return out[i].POSCode < out[j].POSCode
		}
		if out[i].SupplyKind != out[j].SupplyKind {
			return out[i].SupplyKind < out[j].SupplyKind
		}
		return out[i].Rate < out[j].Rate
	})
	return out
}

// noteBuckets splits credit and debit notes into the registered (CDNR,
// grouped by GSTIN) and unregistered (CDNUR, flat) buckets.
func (a *aggregator) noteBuckets() ([]NoteGroup, []CDNURRow) {
	groups := make(map[string]*NoteGroup)
	var flat []CDNURRow

	add := func(n *domain.Note) {
		cust := a.resolve(n.CustomerID, noteLabel(n))
		pos := a.snap.Profile.State
		if cust != nil && cust.State != "" {
			pos = cust.State
		}
		a.checkState(pos, noteLabel(n))
		entry := NoteEntry{
			Number:        n.Number,
			Date:          n.NoteDate,
			Kind:          n.Kind,
			InvoiceNumber: n.InvoiceNumber,
			Value:         n.TotalAmount,
			POSCode:       StateCode(pos),
			POSName:       pos,
			Lines:         makeLines(n.Items, n.TaxRegime, true),
		}
		if cust != nil && cust.GSTIN != "" {
			g, ok := groups[cust.GSTIN]
			if !ok {
				g = &NoteGroup{GSTIN: cust.GSTIN, Name: cust.Name}
				groups[cust.GSTIN] = g
			}
			g.Notes = append(g.Notes, entry)
			return
		}
		flat = append(flat, CDNURRow{SupplyKind: supplyKind(n.TaxRegime), NoteEntry: entry})
	}

	for i := range a.snap.CreditNotes {
		add(&a.snap.CreditNotes[i])
	}
	for i := range a.snap.DebitNotes {
		add(&a.snap.DebitNotes[i])
	}

	out := make([]NoteGroup, 0, len(groups))
	for _, g := range groups {
		sort.Slice(g.Notes, func(i, j int) bool { return g.Notes[i].Number < g.Notes[j].Number })
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GSTIN < out[j].GSTIN })
	sort.Slice(flat, func(i, j int) bool { return flat[i].Number < flat[j].Number })
	return out, flat
}

// exportGroups builds one entry per with/without-payment type. IGST is
// computed only for the with-payment variant.
func (a *aggregator) exportGroups() []ExportGroup {
	byType := map[domain.SupplyType]*ExportGroup{
		domain.SupplyEXPWP:  {Type: "WPAY"},
		domain.SupplyEXPWOP: {Type: "WOPAY"},
	}
	for i := range a.inv {
		c := &a.inv[i]
		g, ok := byType[c.supplyType]
		if !ok {
			continue
		}
		g.Invoices = append(g.Invoices, ExportEntry{
			Number:             c.inv.Number,
			Date:               c.inv.IssueDate,
			Value:              c.inv.TotalAmount,
			PortCode:           c.inv.PortCode,
			ShippingBillNumber: c.inv.ShippingBillNumber,
			ShippingBillDate:   c.inv.ShippingBillDate,
			Lines:              makeLines(c.inv.Items, c.inv.TaxRegime, c.supplyType == domain.SupplyEXPWP),
		})
	}
	var out []ExportGroup
	for _, t := range []domain.SupplyType{domain.SupplyEXPWP, domain.SupplyEXPWOP} {
		g := byType[t]
		if len(g.Invoices) == 0 {
			continue
		}
		sort.Slice(g.Invoices, func(i, j int) bool { return g.Invoices[i].Number < g.Invoices[j].Number })
		out = append(out, *g)
	}
	return out
}

// nilSummary is the four-way split of zero-rate taxable value. Exempt and
// non-GST stay zero: the upstream model cannot distinguish them from
// nil-rated.
func (a *aggregator) nilSummary() []NilRow {
	rows := []NilRow{
		{Description: "Inter-State supplies to registered persons"},
		{Description: "Intra-State supplies to registered persons"},
		{Description: "Inter-State supplies to unregistered persons"},
		{Description: "Intra-State supplies to unregistered persons"},
	}
	for i := range a.inv {
		c := &a.inv[i]
		registered := c.cust != nil && c.cust.GSTIN != ""
		inter := c.inv.TaxRegime == domain.TaxRegimeIntegrated
		idx := 0
		switch {
		case inter && registered:
			idx = 0
		case !inter && registered:
			idx = 1
		case inter && !registered:
			idx = 2
		default:
			idx = 3
		}
		for j := range c.inv.Items {
			it := &c.inv.Items[j]
			if it.GSTRate != 0 {
				continue
			}
			rows[idx].NilRated += lineTaxable(it)
		}
	}
	for i := range rows {
		rows[i].NilRated = Round2(rows[i].NilRated)
	}
	return rows
}

// hsnSummary accumulates signed per-commodity totals. Line items whose HSN
// code is shorter than the profile's minimum digit count are excluded from
// this summary entirely; each exclusion is surfaced as a diagnostic.
func (a *aggregator) hsnSummary() []HSNRow {
	rows := make(map[string]*HSNRow)

	accumulate := func(items []domain.LineItem, regime domain.TaxRegime, sign float64, doc string) {
		for i := range items {
			it := &items[i]
			if len(it.HSNCode) < a.minHSN {
				a.diag(DiagHSNDigits, doc, fmt.Sprintf(
					"line %q: HSN code %q shorter than %d digits; excluded from HSN summary",
					it.Description, it.HSNCode, a.minHSN))
				continue
			}
			r, ok := rows[it.HSNCode]
			if !ok {
				r = &HSNRow{Code: it.HSNCode, Description: it.Description, UQC: "OTH"}
				rows[it.HSNCode] = r
			}
			taxable := lineTaxable(it)
			tax := lineTax(it)
			r.Quantity += sign * it.Quantity
			r.Value += sign * Round2(taxable+tax)
			r.Taxable += sign * taxable
			if regime == domain.TaxRegimeSplit {
				r.CGST += sign * splitTax(tax)
				r.SGST += sign * splitTax(tax)
			} else {
				r.IGST += sign * tax
			}
		}
	}

	for i := range a.snap.Invoices {
		inv := &a.snap.Invoices[i]
		accumulate(inv.Items, inv.TaxRegime, 1, "invoice "+inv.Number)
	}
	for i := range a.snap.DebitNotes {
		n := &a.snap.DebitNotes[i]
		accumulate(n.Items, n.TaxRegime, 1, noteLabel(n))
	}
	for i := range a.snap.CreditNotes {
		n := &a.snap.CreditNotes[i]
		accumulate(n.Items, n.TaxRegime, -1, noteLabel(n))
	}

	out := make([]HSNRow, 0, len(rows))
	for _, r := range rows {
		r.Value = Round2(r.Value)
		r.Taxable = Round2(r.Taxable)
		r.IGST = Round2(r.IGST)
		r.CGST = Round2(r.CGST)
		r.SGST = Round2(r.SGST)
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// docRanges reports the first and last document number issued per nature.
// Numbers sort as strings, not numerically, mirroring the filing tool this
// feeds ("INV-9" sorts after "INV-10"; see DESIGN.md).
func (a *aggregator) docRanges() []DocRange {
	collect := func(nature string, nums []string) *DocRange {
		if len(nums) == 0 {
			return nil
		}
		sorted := append([]string(nil), nums...)
		sort.Strings(sorted)
		return &DocRange{
			Nature: nature,
			From:   sorted[0],
			To:     sorted[len(sorted)-1],
			Total:  len(sorted),
		}
	}

	var invNums, crNums, drNums []string
	for i := range a.snap.Invoices {
		invNums = append(invNums, a.snap.Invoices[i].Number)
	}
	for i := range a.snap.CreditNotes {
		crNums = append(crNums, a.snap.CreditNotes[i].Number)
	}
	for i := range a.snap.DebitNotes {
		drNums = append(drNums, a.snap.DebitNotes[i].Number)
	}

	var out []DocRange
	for _, r := range []*DocRange{
		collect("Invoices for outward supply", invNums),
		collect("Credit Note", crNums),
		collect("Debit Note", drNums),
	} {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// grossTurnover nets invoice totals with signed note totals.
func (a *aggregator) grossTurnover() float64 {
	var total float64
	for i := range a.snap.Invoices {
		total += a.snap.Invoices[i].TotalAmount
	}
	for i := range a.snap.DebitNotes {
		total += a.snap.DebitNotes[i].TotalAmount
	}
	for i := range a.snap.CreditNotes {
		total -= a.snap.CreditNotes[i].TotalAmount
	}
	return Round2(total)
}

func supplyKind(regime domain.TaxRegime) string {
	if regime == domain.TaxRegimeIntegrated {
		return "INTER"
	}
	return "INTRA"
}

func noteLabel(n *domain.Note) string {
	if n.Kind == domain.NoteCredit {
		return "credit note " + n.Number
	}
	return "debit note " + n.Number
}

func sortInvoiceEntries(entries []InvoiceEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return strings.Compare(entries[i].Number, entries[j].Number) < 0
	})
}
