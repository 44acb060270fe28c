package entities

// ProjectedQuotation is a display-ready row: the deduplicated representative
// of a fingerprint plus its derived replacement state.
type ProjectedQuotation struct {
	Quotation
	Replaced     bool
	ReplacedByID int64
}

// ProjectQuotations derives the filtered, deduplicated, display-ordered view
// of the raw log. The two passes must run in this order: dedup by fingerprint
// first, so a pending duplicate of an already-confirmed item cannot resurrect
// it as a separate visible row, then filter Pending rows out.
//
// Dedup precedence: traversing newest-first, the first entity seen wins for
// its fingerprint unless a later-seen (older) entity is Confirmed while the
// held one is not. Confirmation outranks recency.
func ProjectQuotations(quotations []Quotation) []Quotation {
	bestFor := make(map[string]int, len(quotations))
	picked := make([]int, 0, len(quotations))

	for i := len(quotations) - 1; i >= 0; i-- {
		q := quotations[i]
		held, seen := bestFor[q.Fingerprint]
		if !seen {
			bestFor[q.Fingerprint] = i
			picked = append(picked, i)
			continue
		}
		if q.Status == QuotationStatusConfirmed && quotations[held].Status != QuotationStatusConfirmed {
			bestFor[q.Fingerprint] = i
		}
	}

	// picked holds one slot per fingerprint in reverse discovery order;
	// re-resolve through bestFor so confirmed overrides land, then restore
	// chronological order.
	out := make([]Quotation, 0, len(picked))
	for i := len(picked) - 1; i >= 0; i-- {
		q := quotations[bestFor[quotations[picked[i]].Fingerprint]]
		if q.Status == QuotationStatusConfirmed || q.Status == QuotationStatusDisputed {
			out = append(out, q)
		}
	}
	return out
}

// ResolveReplacements pairs each Disputed entity with its designated
// replacement: the most recent Confirmed entity created strictly after it.
// Pairing is by id recency only, never by fingerprint; it is recomputed on
// every read because a later dispute of the replacement itself re-opens the
// question.
func ResolveReplacements(quotations []Quotation) map[int64]int64 {
	out := make(map[int64]int64)
	for _, d := range quotations {
		if d.Status != QuotationStatusDisputed {
			continue
		}
		for _, r := range quotations {
			if r.Status == QuotationStatusConfirmed && r.ID > d.ID && r.ID > out[d.ID] {
				out[d.ID] = r.ID
			}
		}
	}
	return out
}

// ProjectWithReplacements combines the deduplicated view with the derived
// replacement state, producing the rows the quotation panel renders.
func ProjectWithReplacements(quotations []Quotation) []ProjectedQuotation {
	replacements := ResolveReplacements(quotations)
	view := ProjectQuotations(quotations)

	out := make([]ProjectedQuotation, 0, len(view))
	for _, q := range view {
		row := ProjectedQuotation{Quotation: q}
		if rid, ok := replacements[q.ID]; ok {
			row.Replaced = true
			row.ReplacedByID = rid
		}
		out = append(out, row)
	}
	return out
}
