package response

import (
	"time"

	"quotechat/internal/domain/entities"
)

// QuotationResponse is one row of the quotation panel.
type QuotationResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	Status     string    `json:"status"`
	Replaced   bool      `json:"replaced"`
	ReplacedBy int64     `json:"replaced_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromProjectedQuotation(q entities.ProjectedQuotation) QuotationResponse {
	return QuotationResponse{
		ID:         q.ID,
		Text:       q.Text,
		Status:     string(q.Status),
		Replaced:   q.Replaced,
		ReplacedBy: q.ReplacedByID,
		CreatedAt:  q.CreatedAt,
	}
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:        q.ID,
		Text:      q.Text,
		Status:    string(q.Status),
		CreatedAt: q.CreatedAt,
	}
}

func FromProjectedQuotations(quotations []entities.ProjectedQuotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		out = append(out, FromProjectedQuotation(q))
	}
	return out
}

// CustomerInfoResponse echoes the stored contact block.
type CustomerInfoResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

func FromCustomerInfo(c entities.CustomerInfo) CustomerInfoResponse {
	return CustomerInfoResponse{Name: c.Name, Email: c.Email, Phone: c.Phone}
}
