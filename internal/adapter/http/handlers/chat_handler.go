package handlers

import (
	"errors"
	"net/http"

	request "quotechat/internal/adapter/http/dto/request"
	response "quotechat/internal/adapter/http/dto/response"
	"quotechat/internal/usecase"
	"quotechat/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidChatPayload = pkg.NewDomainErrorSimple("INVALID_CHAT_INPUT", "Invalid chat payload", http.StatusBadRequest)

// ChatHandler handles the conversational endpoints: one chat turn and the
// session reset.

type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

// Chat processes one user message. Confirmation messages are settled against
// the local quotation log; everything else is proxied to the chat backend.
func (h *ChatHandler) Chat(c *gin.Context) {
	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.ProcessMessage(c.Request.Context(), payload.ResolveSessionID(), payload.Message)
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChatResult(result))
}

// Reset clears the session's quotation log and returns a fresh session id.
// The backend-side reset is best-effort and never fails the request.
func (h *ChatHandler) Reset(c *gin.Context) {
	var payload request.ResetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	newID, err := h.usecase.ResetSession(c.Request.Context(), payload.ResolveSessionID())
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ResetResponse{
		Success:   true,
		Message:   "Chat session reset",
		SessionID: newID,
	})
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrEmptyMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBackendUnavailable):
		return pkg.NewDomainError("BACKEND_UNAVAILABLE",
			"Sorry, I'm having trouble reaching the assistant right now. Please try again.",
			err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
