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

var errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)

// QuotationHandler exposes the quotation lifecycle: listing the deduplicated
// view and moving individual quotations between statuses.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// List returns the session's quotations after deduplication, newest last.
// Replaced disputed quotations carry the id of the confirmed successor.
func (h *QuotationHandler) List(c *gin.Context) {
	sessionID := c.DefaultQuery("session_id", "default")

	projected, err := h.usecase.ListProjected(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjectedQuotations(projected))
}

// Confirm marks a quotation as confirmed, whatever its current status.
func (h *QuotationHandler) Confirm(c *gin.Context) {
	var payload request.QuotationActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.Confirm(c.Request.Context(), payload.ResolveSessionID(), payload.QuotationID)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

// Dispute marks a confirmed quotation as disputed. Quotations that were
// never confirmed cannot be disputed.
func (h *QuotationHandler) Dispute(c *gin.Context) {
	var payload request.QuotationActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.Dispute(c.Request.Context(), payload.ResolveSessionID(), payload.QuotationID)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidQuotationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Only confirmed quotations can be disputed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
