package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"ridgeline_roofing/internal/domain/entities"
	"ridgeline_roofing/internal/domain/geometry"
	"ridgeline_roofing/internal/domain/pricing"
	"ridgeline_roofing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidRecipient = errors.New("invalid recipient email")
)

// BuildEstimateCommand carries everything needed to compute one estimate:
// the drawn outline, the roof characteristics, the selected package, and the
// fee flags.
type BuildEstimateCommand struct {
	Points          []entities.PolygonPoint
	Pitch           string
	WasteFactor     float64
	PackageID       string
	IncludeDisposal bool
	IncludePermits  bool
	Address         entities.Address
}

// IEstimateUseCase exposes the estimate operations.
//
// Estimates are ephemeral: computed on demand, never stored. Recomputing
// from the same command reproduces the same totals.

type IEstimateUseCase interface {
	BuildEstimate(ctx context.Context, cmd BuildEstimateCommand) (entities.Estimate, error)
	EmailEstimate(ctx context.Context, cmd BuildEstimateCommand, recipient string) (entities.Estimate, string, error)
	Packages() []entities.RoofingPackage
}

type EstimateUseCase struct {
	gateway  interfaces.IEmailGateway
	renderer interfaces.IEstimateRenderer
	now      func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(gateway interfaces.IEmailGateway, renderer interfaces.IEstimateRenderer) *EstimateUseCase {
	return &EstimateUseCase{gateway: gateway, renderer: renderer, now: time.Now}
}

// BuildEstimate runs geometry then pricing and assembles the estimate.
//
// An outline with fewer than 3 points measures as 0 square feet and prices
// accordingly; the drawing tool prevents that in practice, so it is not an
// error here. An unknown package id is.
func (u *EstimateUseCase) BuildEstimate(_ context.Context, cmd BuildEstimateCommand) (entities.Estimate, error) {
	m := geometry.Measure(cmd.Points, entities.Pitch(cmd.Pitch), cmd.WasteFactor)

	b, err := pricing.PriceEstimate(m.TotalSquares, cmd.PackageID, cmd.IncludeDisposal, cmd.IncludePermits)
	if err != nil {
		log.Printf("[estimate][usecase] pricing failed package_id=%q err=%v", cmd.PackageID, err)
		return entities.Estimate{}, err
	}
	pkg, _ := pricing.PackageByID(cmd.PackageID)

	now := u.now().UTC()
	e := entities.Estimate{
		ID:          uuid.NewString(),
		Address:     cmd.Address,
		Measurement: m,
		Package:     pkg,
		LineItems:   pricing.LineItems(b, pkg),
		Subtotal:    b.Subtotal,
		Total:       b.Total,
		Timeline:    pricing.Timeline(m.TotalSquares),
		CreatedAt:   now,
		ExpiresAt:   entities.ExpiryFrom(now),
	}
	log.Printf("[estimate][usecase] built estimate id=%s squares=%.1f package=%s total=%.0f",
		e.ID, m.TotalSquares, pkg.ID, e.Total)
	return e, nil
}

// EmailEstimate builds the estimate and sends it to the visitor with a PDF
// attachment. Delivery problems are soft: the estimate is still returned and
// the second result carries a warning for the caller to display.
func (u *EstimateUseCase) EmailEstimate(ctx context.Context, cmd BuildEstimateCommand, recipient string) (entities.Estimate, string, error) {
	recipient = strings.TrimSpace(strings.ToLower(recipient))
	if recipient == "" || !strings.Contains(recipient, "@") {
		return entities.Estimate{}, "", ErrInvalidRecipient
	}

	e, err := u.BuildEstimate(ctx, cmd)
	if err != nil {
		return entities.Estimate{}, "", err
	}

	msg := entities.EmailMessage{
		To:       recipient,
		Subject:  fmt.Sprintf("Your roof estimate (%s package)", e.Package.Name),
		HTMLBody: estimateEmailBody(e),
	}

	if u.renderer != nil {
		pdf, rErr := u.renderer.RenderPDF(e)
		if rErr != nil {
			// Send without the attachment rather than not at all.
			log.Printf("[estimate][usecase] pdf render failed estimate_id=%s err=%v", e.ID, rErr)
		} else {
			msg.Attachments = []entities.Attachment{{
				Filename:    "roof-estimate.pdf",
				ContentType: "application/pdf",
				Data:        pdf,
			}}
		}
	}

	if u.gateway == nil {
		log.Printf("[estimate][usecase] email gateway not configured estimate_id=%s", e.ID)
		return e, deliveryWarning, nil
	}
	msgID, err := u.gateway.Send(ctx, msg)
	if err != nil {
		log.Printf("[estimate][usecase] delivery failed estimate_id=%s recipient=%s err=%v", e.ID, recipient, err)
		return e, deliveryWarning, nil
	}
	log.Printf("[estimate][usecase] estimate emailed estimate_id=%s message_id=%s", e.ID, msgID)
	return e, "", nil
}

func (u *EstimateUseCase) Packages() []entities.RoofingPackage {
	return pricing.Packages()
}

func estimateEmailBody(e entities.Estimate) string {
	var sb strings.Builder
	sb.WriteString("<h1>Your Roof Estimate</h1>")
	sb.WriteString(fmt.Sprintf("<p>%s package &mdash; %.1f squares (%d sq ft adjusted)</p>",
		e.Package.Name, e.Measurement.TotalSquares, e.Measurement.AdjustedSquareFeet))
	sb.WriteString("<ul>")
	for _, li := range e.LineItems {
		sb.WriteString(fmt.Sprintf("<li>%s: $%.0f</li>", li.Label, li.Amount))
	}
	sb.WriteString("</ul>")
	sb.WriteString(fmt.Sprintf("<p><strong>Total: $%.0f</strong></p>", e.Total))
	sb.WriteString(fmt.Sprintf("<p>Estimated timeline: %s. Valid through %s.</p>",
		e.Timeline, e.ExpiresAt.Format("January 2, 2006")))
	return sb.String()
}
