package entities

import "time"

// FormKind identifies which lead-generation form a submission came from.
// Each kind has its own pipeline configuration (rate limit, required fields,
// destination inbox).
type FormKind string

const (
	FormQuote        FormKind = "quote"
	FormQuoteArizona FormKind = "quote-arizona"
	FormContact      FormKind = "contact"
	FormNewsletter   FormKind = "newsletter"
	FormLeadMagnet   FormKind = "lead-magnet"
)

// ServiceType is the closed set of services a visitor can request.
type ServiceType string

const (
	ServiceRoofReplacement ServiceType = "roof-replacement"
	ServiceRoofRepair      ServiceType = "roof-repair"
	ServiceStormDamage     ServiceType = "storm-damage"
	ServiceGutters         ServiceType = "gutters"
	ServiceInspection      ServiceType = "inspection"
	ServiceCommercial      ServiceType = "commercial"
)

// ParseServiceType resolves a client-supplied service label. Unknown labels
// are a validation error, not a fallback.
func ParseServiceType(label string) (ServiceType, bool) {
	switch s := ServiceType(label); s {
	case ServiceRoofReplacement, ServiceRoofRepair, ServiceStormDamage,
		ServiceGutters, ServiceInspection, ServiceCommercial:
		return s, true
	}
	return "", false
}

// Reserved control fields carried by every form payload. They never reach the
// validated output.
const (
	// FieldHoneypot is hidden from real users; bots fill it in.
	FieldHoneypot = "_website"
	// FieldTimestamp is the epoch-millis instant the form mounted client-side.
	FieldTimestamp = "_timestamp"
)

// ValidatedFields is the cleaned, accepted form content handed to the email
// collaborator.
type ValidatedFields struct {
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone,omitempty"`
	Address string      `json:"address,omitempty"`
	Service ServiceType `json:"service,omitempty"`
	Message string      `json:"message,omitempty"`
}

// SubmissionResult is the outcome of an accepted submission.
//
// DeliveryWarning is set when the email collaborator failed after acceptance;
// the submission still counts, the caller is told to retry delivery through
// the fallback phone channel.
type SubmissionResult struct {
	ID              string          `json:"id"`
	Form            FormKind        `json:"form"`
	Fields          ValidatedFields `json:"fields"`
	AcceptedAt      time.Time       `json:"accepted_at"`
	DeliveryWarning string          `json:"delivery_warning,omitempty"`
}
