package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"quotechat/internal/domain/entities"
	"quotechat/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingCustomerInfo    = errors.New("missing or invalid customer info")
	ErrNoConfirmedQuotations  = errors.New("no confirmed quotations for session")
	ErrUnsupportedFormat      = errors.New("unsupported export format")
	ErrCustomerInfoNotFound   = errors.New("customer info not found")
	ErrInvalidCustomerPayload = errors.New("invalid customer info payload")
)

// ExportFormat values accepted by Export.
const (
	ExportFormatPDF = "pdf"
	ExportFormatTXT = "txt"
)

// ExportArtifact is the downloadable result of an export.
type ExportArtifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// IExportUseCase assembles and renders the confirmed subset of a session's
// quotations, and owns the customer contact block the document requires.
//
// Preconditions are checked locally, before any rendering work: customer name
// and email are mandatory and the email must parse as a standard address.

type IExportUseCase interface {
	Export(ctx context.Context, sessionID, format string, customer entities.CustomerInfo) (ExportArtifact, error)
	GetCustomerInfo(ctx context.Context, sessionID string) (entities.CustomerInfo, error)
	SaveCustomerInfo(ctx context.Context, sessionID string, info entities.CustomerInfo) error
}

type ExportUseCase struct {
	sessions  interfaces.ISessionRepository
	customers interfaces.ICustomerInfoRepository
	renderer  interfaces.IDocumentRenderer
	validate  *validator.Validate
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(sessions interfaces.ISessionRepository, customers interfaces.ICustomerInfoRepository, renderer interfaces.IDocumentRenderer) *ExportUseCase {
	return &ExportUseCase{
		sessions:  sessions,
		customers: customers,
		renderer:  renderer,
		validate:  validator.New(),
	}
}

func (u *ExportUseCase) Export(ctx context.Context, sessionID, format string, customer entities.CustomerInfo) (ExportArtifact, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ExportArtifact{}, ErrInvalidSessionID
	}

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatPDF
	}
	if format != ExportFormatPDF && format != ExportFormatTXT {
		return ExportArtifact{}, ErrUnsupportedFormat
	}

	// No contact details on the request: fall back to the stored block.
	if customer.IsEmpty() {
		stored, err := u.customers.Load(ctx, sessionID)
		if err != nil {
			log.Printf("[export][usecase] customer info load failed session_id=%s err=%v", sessionID, err)
		} else {
			customer = stored
		}
	}
	if err := u.validate.Struct(customer); err != nil {
		return ExportArtifact{}, fmt.Errorf("%w: %v", ErrMissingCustomerInfo, err)
	}

	doc, err := u.buildDocument(ctx, sessionID, customer)
	if err != nil {
		return ExportArtifact{}, err
	}

	if format == ExportFormatTXT {
		return ExportArtifact{
			Filename:    fmt.Sprintf("quotation_%s.txt", sessionID),
			ContentType: "text/plain",
			Data:        []byte(renderText(doc)),
		}, nil
	}

	data, err := u.renderer.RenderPDF(doc)
	if err != nil {
		return ExportArtifact{}, err
	}
	log.Printf("[export][usecase] pdf rendered session_id=%s lines=%d bytes=%d", sessionID, len(doc.Lines), len(data))
	return ExportArtifact{
		Filename:    fmt.Sprintf("quotation_%s.pdf", sessionID),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// buildDocument snapshots the confirmed-and-undisputed quotations,
// deduplicated by fingerprint via the projection, in chronological order.
func (u *ExportUseCase) buildDocument(ctx context.Context, sessionID string, customer entities.CustomerInfo) (entities.QuotationDocument, error) {
	quotations, err := u.sessions.ListQuotations(ctx, sessionID)
	if err != nil {
		return entities.QuotationDocument{}, err
	}

	var lines []entities.QuotationLine
	for _, q := range entities.ProjectQuotations(quotations) {
		if q.Status != entities.QuotationStatusConfirmed {
			continue
		}
		lines = append(lines, entities.ParseQuotationText(q.Text))
	}
	if len(lines) == 0 {
		return entities.QuotationDocument{}, ErrNoConfirmedQuotations
	}

	return entities.QuotationDocument{
		Number:      quotationNumber(sessionID),
		GeneratedAt: time.Now().UTC(),
		Customer:    customer,
		Lines:       lines,
	}, nil
}

func (u *ExportUseCase) GetCustomerInfo(ctx context.Context, sessionID string) (entities.CustomerInfo, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.CustomerInfo{}, ErrInvalidSessionID
	}

	info, err := u.customers.Load(ctx, sessionID)
	if err != nil {
		return entities.CustomerInfo{}, err
	}
	if info.IsEmpty() {
		return entities.CustomerInfo{}, ErrCustomerInfoNotFound
	}
	return info, nil
}

func (u *ExportUseCase) SaveCustomerInfo(ctx context.Context, sessionID string, info entities.CustomerInfo) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	if err := u.validate.Struct(info); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCustomerPayload, err)
	}
	return u.customers.Save(ctx, sessionID, info)
}

// renderText produces the plain-text export, one quotation block per line
// item with a dashed separator between blocks.
func renderText(doc entities.QuotationDocument) string {
	var b strings.Builder
	for i, l := range doc.Lines {
		if i > 0 {
			b.WriteString("\n\n" + strings.Repeat("-", 50) + "\n\n")
		}
		b.WriteString("SERVICE QUOTATION\n")
		b.WriteString("------------------------------------------\n")
		fmt.Fprintf(&b, "Service Description: %s\n", l.Description)
		fmt.Fprintf(&b, "Quantity: %d\n", l.Quantity)
		fmt.Fprintf(&b, "Unit Price (RM): %.2f\n", l.UnitPrice)
		fmt.Fprintf(&b, "Subtotal: %.2f\n", l.Subtotal)
		fmt.Fprintf(&b, "Tax (8%%): %.2f\n", l.Tax)
		fmt.Fprintf(&b, "Total: %.2f\n", l.Total)
	}
	return b.String()
}

// quotationNumber derives a short human-readable document number from the
// session identity, matching the numbering printed on the PDF.
func quotationNumber(sessionID string) string {
	suffix := sessionID
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return "QT-" + suffix
}
