package interfaces

import (
	"context"

	"ridgeline_roofing/internal/domain/entities"
)

// IEmailGateway abstracts the transactional email provider.
//
// Delivery failure after a submission is accepted is soft: the use case
// reports a warning upward instead of rejecting the submission.
type IEmailGateway interface {
	Send(ctx context.Context, msg entities.EmailMessage) (messageID string, err error)
}
