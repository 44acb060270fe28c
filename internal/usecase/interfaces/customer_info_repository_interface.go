package interfaces

import (
	"context"

	"quotechat/internal/domain/entities"
)

// ICustomerInfoRepository abstracts persistence of the customer contact block
// keyed by session. A missing record is the zero-value CustomerInfo, not an
// error.
type ICustomerInfoRepository interface {
	Load(ctx context.Context, sessionID string) (entities.CustomerInfo, error)
	Save(ctx context.Context, sessionID string, info entities.CustomerInfo) error
}
