package interfaces

import "context"

// ChatReply is the backend's answer to one chat message: free-form response
// text, optionally annotated with a quotation payload.
type ChatReply struct {
	ResponseText  string
	QuotationText string
}

// IChatGateway abstracts the remote chat backend that performs the actual
// natural-language reasoning.
//
// SendMessage failures must leave the caller free to retry: the quotation log
// is never mutated for a failed call. ResetSession is best-effort; a local
// reset never blocks on its success.
type IChatGateway interface {
	SendMessage(ctx context.Context, message, sessionID string) (ChatReply, error)
	ResetSession(ctx context.Context, sessionID string) error
}
