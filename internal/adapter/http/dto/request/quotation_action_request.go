package request

import "strings"

// QuotationActionRequest targets one quotation in one session. Both confirm
// and dispute resolve by id: textual confirmation is translated at the chat
// edge, never here.
type QuotationActionRequest struct {
	SessionID   string `json:"session_id" binding:"required"`
	QuotationID int64  `json:"quotation_id" binding:"required"`
}

func (r QuotationActionRequest) ResolveSessionID() string {
	return strings.TrimSpace(r.SessionID)
}
