package entities

import "time"

// QuotationDocument is the finalized, render-ready snapshot handed to the
// document renderer: confirmed-and-undisputed quotations, deduplicated by
// fingerprint, in chronological order, plus the customer block.
type QuotationDocument struct {
	Number      string
	GeneratedAt time.Time
	Customer    CustomerInfo
	Lines       []QuotationLine
}

// TotalAmount sums the line totals for the document summary.
func (d QuotationDocument) TotalAmount() float64 {
	var total float64
	for _, l := range d.Lines {
		total += l.Total
	}
	return total
}
