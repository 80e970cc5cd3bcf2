package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"sort"
	"strings"
	"time"

	"ridgeline_roofing/internal/domain/entities"
	"ridgeline_roofing/internal/domain/screening"
	"ridgeline_roofing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUnknownForm       = errors.New("unknown form")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)

// deliveryWarning is shown when a submission was accepted but the email
// collaborator failed. Pointing at the phone line is a business decision:
// the lead matters more than the delivery mechanism.
const deliveryWarning = "Your request was received, but our confirmation email could not be sent. If you don't hear from us within one business day, please call (505) 555-7663."

// SpamError is a spam-heuristics rejection surfaced to the caller.
type SpamError struct {
	Rejection screening.SpamRejection
}

func (e *SpamError) Error() string {
	return fmt.Sprintf("spam detected (%s): %s", e.Rejection.Kind, e.Rejection.Pattern)
}

// ValidationError carries every failed field so the client can display them
// all at once.
type ValidationError struct {
	Fields screening.FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// ISubmissionUseCase runs the lead-submission pipeline:
// rate limit -> spam heuristics -> validation -> accept -> email handoff.

type ISubmissionUseCase interface {
	Submit(ctx context.Context, form entities.FormKind, identity string, fields map[string]string) (entities.SubmissionResult, error)
}

type SubmissionUseCase struct {
	store      interfaces.IRateLimitStore
	gateway    interfaces.IEmailGateway
	configs    map[entities.FormKind]FormConfig
	leadsInbox string
	now        func() time.Time
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(store interfaces.IRateLimitStore, gateway interfaces.IEmailGateway, configs map[entities.FormKind]FormConfig, leadsInbox string) *SubmissionUseCase {
	return &SubmissionUseCase{
		store:      store,
		gateway:    gateway,
		configs:    configs,
		leadsInbox: leadsInbox,
		now:        time.Now,
	}
}

// Submit runs one submission through the pipeline. Stages are evaluated in
// order and fail closed; every rejection maps to a typed error the adapter
// can translate. Email delivery failure after acceptance is the one soft
// spot: the result carries a warning instead.
func (u *SubmissionUseCase) Submit(ctx context.Context, form entities.FormKind, identity string, fields map[string]string) (entities.SubmissionResult, error) {
	cfg, ok := u.configs[form]
	if !ok {
		return entities.SubmissionResult{}, ErrUnknownForm
	}
	if identity == "" {
		identity = "unknown"
	}

	allowed, err := u.store.Allow(ctx, string(form), identity, cfg.Limit)
	if err != nil {
		// The limiter is a soft anti-abuse bound, not a security control.
		// A store outage should not cost us leads.
		log.Printf("[submission][usecase] rate limit store error form=%s identity=%s err=%v (failing open)", form, identity, err)
		allowed = true
	}
	if !allowed {
		log.Printf("[submission][usecase] rate limit exceeded form=%s identity=%s", form, identity)
		return entities.SubmissionResult{}, ErrRateLimitExceeded
	}

	if rej := screening.EvaluateSpam(fields, u.now()); rej != nil {
		log.Printf("[submission][usecase] spam rejected form=%s identity=%s kind=%s pattern=%q", form, identity, rej.Kind, rej.Pattern)
		return entities.SubmissionResult{}, &SpamError{Rejection: *rej}
	}

	validated, fieldErrs := screening.Validate(fields, cfg.Schema)
	if fieldErrs != nil {
		log.Printf("[submission][usecase] validation failed form=%s identity=%s fields=%v", form, identity, fieldErrs)
		return entities.SubmissionResult{}, &ValidationError{Fields: fieldErrs}
	}

	res := entities.SubmissionResult{
		ID:         uuid.NewString(),
		Form:       form,
		Fields:     validated,
		AcceptedAt: u.now().UTC(),
	}
	log.Printf("[submission][usecase] accepted form=%s identity=%s submission_id=%s", form, identity, res.ID)

	if warn := u.deliver(ctx, cfg, res); warn != "" {
		res.DeliveryWarning = warn
	}
	return res, nil
}

// deliver hands the accepted submission to the email collaborator. Returns a
// warning message on failure; the submission stays accepted either way.
func (u *SubmissionUseCase) deliver(ctx context.Context, cfg FormConfig, res entities.SubmissionResult) string {
	if u.gateway == nil {
		log.Printf("[submission][usecase] email gateway not configured submission_id=%s", res.ID)
		return deliveryWarning
	}

	msg := entities.EmailMessage{
		To:       u.leadsInbox,
		ReplyTo:  res.Fields.Email,
		Subject:  fmt.Sprintf("%s from %s", cfg.Subject, displayName(res.Fields)),
		HTMLBody: leadEmailBody(res),
	}
	msgID, err := u.gateway.Send(ctx, msg)
	if err != nil {
		log.Printf("[submission][usecase] delivery failed submission_id=%s err=%v", res.ID, err)
		return deliveryWarning
	}
	log.Printf("[submission][usecase] delivered submission_id=%s message_id=%s", res.ID, msgID)
	return ""
}

func displayName(f entities.ValidatedFields) string {
	if f.Name != "" {
		return f.Name
	}
	return f.Email
}

func leadEmailBody(res entities.SubmissionResult) string {
	f := res.Fields
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<h2>%s submission</h2>", res.Form))
	rows := []struct{ label, value string }{
		{"Name", f.Name},
		{"Email", f.Email},
		{"Phone", f.Phone},
		{"Address", f.Address},
		{"Service", string(f.Service)},
		{"Message", f.Message},
	}
	sb.WriteString("<table>")
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("<tr><td><strong>%s</strong></td><td>%s</td></tr>", r.label, html.EscapeString(r.value)))
	}
	sb.WriteString("</table>")
	sb.WriteString(fmt.Sprintf("<p>Received %s (submission %s)</p>", res.AcceptedAt.Format(time.RFC1123), res.ID))
	return sb.String()
}
