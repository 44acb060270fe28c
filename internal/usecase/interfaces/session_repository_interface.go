package interfaces

import (
	"context"

	"quotechat/internal/domain/entities"
)

// ISessionRepository abstracts the per-session quotation log.
//
// The log is append-only: entities are never deleted individually, only the
// whole session is cleared on reset. Lookup misses return the zero-value
// Quotation (ID == 0) rather than an error; the use case decides whether that
// is a no-op or a NotFound condition.

type ISessionRepository interface {
	AppendQuotation(ctx context.Context, sessionID, text string) (entities.Quotation, error)
	ListQuotations(ctx context.Context, sessionID string) ([]entities.Quotation, error)
	GetQuotation(ctx context.Context, sessionID string, id int64) (entities.Quotation, error)
	UpdateQuotationStatus(ctx context.Context, sessionID string, id int64, status entities.QuotationStatus) (entities.Quotation, error)
	ClearSession(ctx context.Context, sessionID string) error
}
