package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"quotechat/internal/domain/entities"
	"quotechat/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyMessage       = errors.New("empty message")
	ErrBackendUnavailable = errors.New("chat backend unavailable")
)

const defaultConfirmCooldown = 10 * time.Second

const confirmationResponse = "Thank you for confirming your quotation. Your service request has been recorded.\n\n" +
	"Would you like to get a quotation for any other service? Or type 'quit' to finish and download your quotations."

// ChatResult is the outcome of processing one user message.
type ChatResult struct {
	ResponseText       string
	QuotationText      string
	QuotationID        int64
	QuotationConfirmed bool
	ShowQuickReplies   bool
}

// IChatUseCase orchestrates one chat turn: route confirmation signals to the
// quotation log, proxy everything else to the chat backend, and record any
// quotation payload the backend emits.

type IChatUseCase interface {
	ProcessMessage(ctx context.Context, sessionID, message string) (ChatResult, error)
	ResetSession(ctx context.Context, sessionID string) (string, error)
}

type ChatUseCase struct {
	repo    interfaces.ISessionRepository
	gateway interfaces.IChatGateway

	cooldown time.Duration
	mu       sync.Mutex
	quietFor map[string]time.Time // session id -> quick replies suppressed until
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(repo interfaces.ISessionRepository, gateway interfaces.IChatGateway) *ChatUseCase {
	return &ChatUseCase{
		repo:     repo,
		gateway:  gateway,
		cooldown: confirmCooldownFromEnv(),
		quietFor: make(map[string]time.Time),
	}
}

// IsConfirmationMessage classifies a user message as a confirmation signal.
// The match is literal and case-insensitive: the text contains "confirm", or
// equals "yes" exactly ("yes" as a substring produces too many false
// positives on longer sentences).
func IsConfirmationMessage(message string) bool {
	m := strings.ToLower(strings.TrimSpace(message))
	return m == "yes" || strings.Contains(m, "confirm")
}

func (u *ChatUseCase) ProcessMessage(ctx context.Context, sessionID, message string) (ChatResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ChatResult{}, ErrInvalidSessionID
	}
	if strings.TrimSpace(message) == "" {
		return ChatResult{}, ErrEmptyMessage
	}

	// Confirmation signals are settled locally: the router decides that a
	// confirmation happened, the log decides what it confirms. No backend
	// round trip is needed for an already-issued quotation.
	if IsConfirmationMessage(message) {
		confirmed, ok, err := u.confirmLatestPending(ctx, sessionID)
		if err != nil {
			return ChatResult{}, err
		}
		if ok {
			u.startCooldown(sessionID)
			log.Printf("[chat][usecase] quotation confirmed session_id=%s quotation_id=%d", sessionID, confirmed.ID)
			return ChatResult{
				ResponseText:       confirmationResponse,
				QuotationText:      confirmed.Text,
				QuotationID:        confirmed.ID,
				QuotationConfirmed: true,
			}, nil
		}
		// Nothing pending: the user is confirming something unrelated
		// (e.g. a service selection). Fall through to the backend.
	}

	reply, err := u.gateway.SendMessage(ctx, message, sessionID)
	if err != nil {
		log.Printf("[chat][usecase] backend send failed session_id=%s err=%v", sessionID, err)
		return ChatResult{}, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	result := ChatResult{
		ResponseText:     reply.ResponseText,
		ShowQuickReplies: u.quickRepliesAllowed(sessionID),
	}

	if strings.TrimSpace(reply.QuotationText) != "" {
		q, err := u.recordQuotation(ctx, sessionID, reply.QuotationText)
		if err != nil {
			return ChatResult{}, err
		}
		result.QuotationText = q.Text
		result.QuotationID = q.ID
	}

	return result, nil
}

// recordQuotation appends the backend's quotation payload to the session log.
// A payload whose fingerprint matches the most recent, still-pending entity
// is a re-emission of the same line item wrapped in different prose; it
// collapses onto the existing entity instead of creating a new one.
func (u *ChatUseCase) recordQuotation(ctx context.Context, sessionID, text string) (entities.Quotation, error) {
	quotations, err := u.repo.ListQuotations(ctx, sessionID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if n := len(quotations); n > 0 {
		last := quotations[n-1]
		if last.Status == entities.QuotationStatusPending && last.Fingerprint == entities.Fingerprint(text) {
			log.Printf("[chat][usecase] quotation re-emission collapsed session_id=%s quotation_id=%d", sessionID, last.ID)
			return last, nil
		}
	}

	q, err := u.repo.AppendQuotation(ctx, sessionID, text)
	if err != nil {
		return entities.Quotation{}, err
	}
	log.Printf("[chat][usecase] quotation recorded session_id=%s quotation_id=%d", sessionID, q.ID)
	return q, nil
}

func (u *ChatUseCase) confirmLatestPending(ctx context.Context, sessionID string) (entities.Quotation, bool, error) {
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
		return entities.Quotation{}, false, nil
	}
	return updated, true, nil
}

// ResetSession clears the local quotation log and issues a fresh session
// identity so in-flight replies for the old session can be discarded by
// identity. The backend reset is best-effort and never blocks the local one.
func (u *ChatUseCase) ResetSession(ctx context.Context, sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", ErrInvalidSessionID
	}

	if err := u.repo.ClearSession(ctx, sessionID); err != nil {
		return "", err
	}

	u.mu.Lock()
	delete(u.quietFor, sessionID)
	u.mu.Unlock()

	if err := u.gateway.ResetSession(ctx, sessionID); err != nil {
		log.Printf("[chat][usecase] backend reset failed session_id=%s err=%v", sessionID, err)
	}

	newID := uuid.NewString()
	log.Printf("[chat][usecase] session reset old_session_id=%s new_session_id=%s", sessionID, newID)
	return newID, nil
}

// startCooldown suppresses quick-reply prompting for the session so residual
// UI state cannot re-confirm an already-settled line item.
func (u *ChatUseCase) startCooldown(sessionID string) {
	u.mu.Lock()
	u.quietFor[sessionID] = time.Now().Add(u.cooldown)
	u.mu.Unlock()
}

func (u *ChatUseCase) quickRepliesAllowed(sessionID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return time.Now().After(u.quietFor[sessionID])
}

func confirmCooldownFromEnv() time.Duration {
	if v := os.Getenv("CONFIRM_COOLDOWN_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultConfirmCooldown
}
