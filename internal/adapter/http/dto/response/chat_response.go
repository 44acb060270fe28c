package response

import "quotechat/internal/usecase"

// ChatResponse mirrors the shape the conversational UI consumes: the reply
// text plus the optional quotation payload and confirmation state.
type ChatResponse struct {
	Response           string `json:"response"`
	Quotation          string `json:"quotation,omitempty"`
	QuotationID        int64  `json:"quotation_id,omitempty"`
	QuotationConfirmed bool   `json:"quotation_confirmed"`
	ShowQuickReplies   bool   `json:"show_quick_replies"`
}

func FromChatResult(r usecase.ChatResult) ChatResponse {
	return ChatResponse{
		Response:           r.ResponseText,
		Quotation:          r.QuotationText,
		QuotationID:        r.QuotationID,
		QuotationConfirmed: r.QuotationConfirmed,
		ShowQuickReplies:   r.ShowQuickReplies,
	}
}

// ResetResponse acknowledges a session reset and hands the client its new
// session identity.
type ResetResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}
