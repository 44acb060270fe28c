package interfaces

import "quotechat/internal/domain/entities"

// IDocumentRenderer turns a finalized quotation document into a paginated
// binary artifact. It is a pure formatting function over already-finalized
// records: no store access, no mutation.
type IDocumentRenderer interface {
	RenderPDF(doc entities.QuotationDocument) ([]byte, error)
}
