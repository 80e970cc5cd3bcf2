package usecase

import (
	"time"

	"ridgeline_roofing/internal/domain/entities"
	"ridgeline_roofing/internal/domain/screening"
	"ridgeline_roofing/internal/usecase/interfaces"
)

// FormConfig parameterizes the submission pipeline for one form endpoint.
// One pipeline, five configurations, instead of five near-duplicate
// pipelines.
type FormConfig struct {
	Kind    entities.FormKind
	Limit   interfaces.Limit
	Schema  screening.Schema
	Subject string
}

// Canonical per-form limits. Quote and contact forms are the abuse magnets
// and stay at 3 per hour; the low-friction signups get a little more room.
var (
	quoteLimit  = interfaces.Limit{Max: 3, Window: time.Hour}
	signupLimit = interfaces.Limit{Max: 5, Window: time.Hour}
)

// DefaultFormConfigs returns the pipeline configuration for every form the
// site hosts.
func DefaultFormConfigs() map[entities.FormKind]FormConfig {
	return map[entities.FormKind]FormConfig{
		entities.FormQuote: {
			Kind:    entities.FormQuote,
			Limit:   quoteLimit,
			Schema:  screening.Schema{RequireName: true, RequireService: true},
			Subject: "New quote request",
		},
		entities.FormQuoteArizona: {
			Kind:    entities.FormQuoteArizona,
			Limit:   quoteLimit,
			Schema:  screening.Schema{RequireName: true, RequireService: true},
			Subject: "New Arizona quote request",
		},
		entities.FormContact: {
			Kind:    entities.FormContact,
			Limit:   quoteLimit,
			Schema:  screening.Schema{RequireName: true, RequireMessage: true},
			Subject: "New contact message",
		},
		entities.FormNewsletter: {
			Kind:    entities.FormNewsletter,
			Limit:   signupLimit,
			Schema:  screening.Schema{},
			Subject: "New newsletter signup",
		},
		entities.FormLeadMagnet: {
			Kind:    entities.FormLeadMagnet,
			Limit:   signupLimit,
			Schema:  screening.Schema{RequireName: true},
			Subject: "New roofing guide download",
		},
	}
}
