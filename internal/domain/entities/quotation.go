package entities

import "time"

// QuotationStatus represents the lifecycle of a quotation surfaced in a chat session.
//
// Domain notes:
//   - A quotation is created Pending when the chat backend emits a quotation payload.
//   - Confirmation is the strongest signal and overwrites any prior state;
//     only a Confirmed quotation can be disputed.
//   - "Replaced" is not a stored status: it is derived from the log (see projection.go).

type QuotationStatus string

const (
	QuotationStatusPending   QuotationStatus = "pending"
	QuotationStatusConfirmed QuotationStatus = "confirmed"
	QuotationStatusDisputed  QuotationStatus = "disputed"
)

// Quotation is one proposed service line item recorded in a session's
// append-only quotation log.
//
// Identity model:
//   - ID is a per-session monotonically increasing counter assigned at append
//     time; it doubles as the total order used for recency comparisons.
//   - Fingerprint is derived from Text at append time (see fingerprint.go) and
//     drives view-layer deduplication, never storage-layer suppression.
type Quotation struct {
	ID          int64           `json:"id"`
	Text        string          `json:"text"`
	Status      QuotationStatus `json:"status"`
	Fingerprint string          `json:"fingerprint"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LatestPending resolves "confirm the most recent quotation": it scans the log
// in reverse insertion order and returns the first Pending entity. The second
// return is false when nothing is pending, which callers treat as a no-op
// rather than an error (the user may be confirming something unrelated).
func LatestPending(quotations []Quotation) (Quotation, bool) {
	for i := len(quotations) - 1; i >= 0; i-- {
		if quotations[i].Status == QuotationStatusPending {
			return quotations[i], true
		}
	}
	return Quotation{}, false
}
