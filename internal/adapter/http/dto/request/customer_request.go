package request

import "strings"

// CustomerInfoRequest carries the contact block saved for a session. Field
// validation (required name/email, email grammar) belongs to the export use
// case; binding only guards the transport shape.
type CustomerInfoRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (r CustomerInfoRequest) ResolveSessionID() string {
	return strings.TrimSpace(r.SessionID)
}
