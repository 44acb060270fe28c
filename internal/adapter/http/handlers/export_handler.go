package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "quotechat/internal/adapter/http/dto/request"
	response "quotechat/internal/adapter/http/dto/response"
	"quotechat/internal/domain/entities"
	"quotechat/internal/usecase"
	"quotechat/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)

// ExportHandler serves quotation document downloads and the customer
// contact block used on them.

type ExportHandler struct {
	usecase usecase.IExportUseCase
}

func NewExportHandler(uc usecase.IExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

// Download renders the confirmed quotations as a PDF or TXT document.
// Customer details may come from query parameters or from the stored block.
func (h *ExportHandler) Download(c *gin.Context) {
	sessionID := c.DefaultQuery("session_id", "default")
	format := c.DefaultQuery("format", usecase.ExportFormatPDF)
	customer := entities.CustomerInfo{
		Name:  c.Query("customer_name"),
		Email: c.Query("customer_email"),
		Phone: c.Query("customer_phone"),
	}

	artifact, err := h.usecase.Export(c.Request.Context(), sessionID, format, customer)
	if err != nil {
		appErr := mapExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// GetCustomer returns the stored contact block for a session.
func (h *ExportHandler) GetCustomer(c *gin.Context) {
	sessionID := c.DefaultQuery("session_id", "default")

	customer, err := h.usecase.GetCustomerInfo(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomerInfo(customer))
}

// SaveCustomer stores the contact block for later downloads.
func (h *ExportHandler) SaveCustomer(c *gin.Context) {
	var payload request.CustomerInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer := entities.CustomerInfo{
		Name:  payload.Name,
		Email: payload.Email,
		Phone: payload.Phone,
	}
	if err := h.usecase.SaveCustomerInfo(c.Request.Context(), payload.ResolveSessionID(), customer); err != nil {
		appErr := mapExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomerInfo(customer))
}

func mapExportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FORMAT", "Supported formats are pdf and txt", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomerPayload):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerInfoNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer information not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingCustomerInfo):
		return pkg.NewDomainError("MISSING_CUSTOMER_INFO",
			"Customer name and a valid email are required before downloading", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNoConfirmedQuotations):
		return pkg.NewDomainErrorSimple("NO_CONFIRMED_QUOTATIONS", "No confirmed quotations to export", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
