package request

import "strings"

const defaultSessionID = "default"

// ChatRequest is one user chat turn.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

// ResolveSessionID falls back to the shared default session when the client
// has not generated one yet, matching the behavior of the chat backend.
func (r ChatRequest) ResolveSessionID() string {
	if v := strings.TrimSpace(r.SessionID); v != "" {
		return v
	}
	return defaultSessionID
}

// ResetRequest asks for a session to be cleared and reissued.
type ResetRequest struct {
	SessionID string `json:"session_id"`
}

func (r ResetRequest) ResolveSessionID() string {
	if v := strings.TrimSpace(r.SessionID); v != "" {
		return v
	}
	return defaultSessionID
}
