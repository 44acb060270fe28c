package usecase

import (
	"context"
	"errors"
	"strings"

	"quotechat/internal/domain/entities"
	"quotechat/internal/usecase/interfaces"
)

var (
	ErrInvalidSessionID   = errors.New("invalid session id")
	ErrInvalidQuotationID = errors.New("invalid quotation id")
	ErrEmptyQuotationText = errors.New("empty quotation text")
	ErrQuotationNotFound  = errors.New("quotation not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// IQuotationUseCase exposes the quotation lifecycle operations.
//
// Transition rules:
//   - Append always creates a fresh Pending entity; duplicate suppression is
//     a view concern, never an append concern, so disputed/confirmed history
//     is never lost.
//   - Confirm moves an entity to Confirmed, clearing a stale Disputed state
//     if one is present.
//   - Dispute is only legal on a Confirmed entity.

type IQuotationUseCase interface {
	Append(ctx context.Context, sessionID, text string) (entities.Quotation, error)
	Confirm(ctx context.Context, sessionID string, id int64) (entities.Quotation, error)
	ConfirmLatestPending(ctx context.Context, sessionID string) (entities.Quotation, bool, error)
	Dispute(ctx context.Context, sessionID string, id int64) (entities.Quotation, error)
	ListProjected(ctx context.Context, sessionID string) ([]entities.ProjectedQuotation, error)
	Reset(ctx context.Context, sessionID string) error
}

type QuotationUseCase struct {
	repo interfaces.ISessionRepository
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.ISessionRepository) *QuotationUseCase {
	return &QuotationUseCase{repo: repo}
}

func (u *QuotationUseCase) Append(ctx context.Context, sessionID, text string) (entities.Quotation, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Quotation{}, ErrInvalidSessionID
	}
	if strings.TrimSpace(text) == "" {
		return entities.Quotation{}, ErrEmptyQuotationText
	}
	return u.repo.AppendQuotation(ctx, sessionID, text)
}

func (u *QuotationUseCase) Confirm(ctx context.Context, sessionID string, id int64) (entities.Quotation, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Quotation{}, ErrInvalidSessionID
	}
	if id <= 0 {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetQuotation(ctx, sessionID, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == 0 {
		return entities.Quotation{}, ErrQuotationNotFound
	}

	// Confirming an already-disputed entity should not normally happen, but
	// confirmation is the stronger signal: overwrite whatever state is there.
	updated, err := u.repo.UpdateQuotationStatus(ctx, sessionID, id, entities.QuotationStatusConfirmed)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == 0 {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return updated, nil
}

// ConfirmLatestPending resolves a positional confirmation signal ("yes",
// "confirm") against the log: the most recent Pending entity is the target.
// When nothing is Pending the signal is a no-op, reported via the bool.
func (u *QuotationUseCase) ConfirmLatestPending(ctx context.Context, sessionID string) (entities.Quotation, bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Quotation{}, false, ErrInvalidSessionID
	}

	quotations, err := u.repo.ListQuotations(ctx, sessionID)
	if err != nil {
		return entities.Quotation{}, false, err
	}
	target, ok := entities.LatestPending(quotations)
	if !ok {
		return entities.Quotation{}, false, nil
	}

	updated, err := u.repo.UpdateQuotationStatus(ctx, sessionID, target.ID, entities.QuotationStatusConfirmed)
	if err != nil {
		return entities.Quotation{}, false, err
	}
	if updated.ID == 0 {
		return entities.Quotation{}, false, ErrQuotationNotFound
	}
	return updated, true, nil
}

func (u *QuotationUseCase) Dispute(ctx context.Context, sessionID string, id int64) (entities.Quotation, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Quotation{}, ErrInvalidSessionID
	}
	if id <= 0 {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetQuotation(ctx, sessionID, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == 0 {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	if q.Status != entities.QuotationStatusConfirmed {
		return entities.Quotation{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateQuotationStatus(ctx, sessionID, id, entities.QuotationStatusDisputed)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == 0 {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return updated, nil
}

func (u *QuotationUseCase) ListProjected(ctx context.Context, sessionID string) ([]entities.ProjectedQuotation, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	quotations, err := u.repo.ListQuotations(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return entities.ProjectWithReplacements(quotations), nil
}

func (u *QuotationUseCase) Reset(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	return u.repo.ClearSession(ctx, sessionID)
}
