package repository

import (
	"context"
	"sync"
	"time"

	"quotechat/internal/domain/entities"
	"quotechat/internal/usecase/interfaces"
)

// SessionMemoryRepository holds each session's append-only quotation log in
// process memory. Quotations live only for the lifetime of a session: reset
// drops the whole log, nothing is ever persisted.
//
// Identity model:
//   - ids are a per-session counter starting at 1, so insertion order and id
//     order always agree.
//   - misses return the zero-value Quotation, matching the repository
//     contract.

type sessionRecord struct {
	seq        int64
	quotations []entities.Quotation
}

type SessionMemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]*sessionRecord
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{sessions: make(map[string]*sessionRecord)}
}

func (r *SessionMemoryRepository) AppendQuotation(_ context.Context, sessionID, text string) (entities.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.sessions[sessionID]
	if rec == nil {
		rec = &sessionRecord{}
		r.sessions[sessionID] = rec
	}

	rec.seq++
	q := entities.Quotation{
		ID:          rec.seq,
		Text:        text,
		Status:      entities.QuotationStatusPending,
		Fingerprint: entities.Fingerprint(text),
		CreatedAt:   time.Now().UTC(),
	}
	rec.quotations = append(rec.quotations, q)
	return q, nil
}

func (r *SessionMemoryRepository) ListQuotations(_ context.Context, sessionID string) ([]entities.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.sessions[sessionID]
	if rec == nil {
		return nil, nil
	}
	out := make([]entities.Quotation, len(rec.quotations))
	copy(out, rec.quotations)
	return out, nil
}

func (r *SessionMemoryRepository) GetQuotation(_ context.Context, sessionID string, id int64) (entities.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.sessions[sessionID]
	if rec == nil {
		return entities.Quotation{}, nil
	}
	for _, q := range rec.quotations {
		if q.ID == id {
			return q, nil
		}
	}
	return entities.Quotation{}, nil
}

func (r *SessionMemoryRepository) UpdateQuotationStatus(_ context.Context, sessionID string, id int64, status entities.QuotationStatus) (entities.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.sessions[sessionID]
	if rec == nil {
		return entities.Quotation{}, nil
	}
	for i := range rec.quotations {
		if rec.quotations[i].ID == id {
			rec.quotations[i].Status = status
			return rec.quotations[i], nil
		}
	}
	return entities.Quotation{}, nil
}

func (r *SessionMemoryRepository) ClearSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}
