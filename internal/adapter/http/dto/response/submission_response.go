package response

import (
	"time"

	"ridgeline_roofing/internal/domain/entities"
)

// SubmissionResponse acknowledges an accepted form submission.
type SubmissionResponse struct {
	ID              string    `json:"id"`
	Form            string    `json:"form"`
	AcceptedAt      time.Time `json:"accepted_at"`
	Message         string    `json:"message"`
	DeliveryWarning string    `json:"delivery_warning,omitempty"`
}

const acceptedMessage = "Thanks! We received your submission and will be in touch shortly."

func FromSubmission(res entities.SubmissionResult) SubmissionResponse {
	return SubmissionResponse{
		ID:              res.ID,
		Form:            string(res.Form),
		AcceptedAt:      res.AcceptedAt,
		Message:         acceptedMessage,
		DeliveryWarning: res.DeliveryWarning,
	}
}
