// Package screening decides whether a form submission is worth accepting:
// spam heuristics first, then field validation.
package screening

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"ridgeline_roofing/internal/domain/entities"
)

// SpamKind tags which heuristic rejected a submission.
type SpamKind string

const (
	SpamHoneypot SpamKind = "honeypot"
	SpamTiming   SpamKind = "timing"
	SpamContent  SpamKind = "content"
)

// SpamRejection reports the first heuristic that fired.
//
// Pattern identifies the triggering rule for anti-abuse tuning logs;
// Message is what the visitor sees.
type SpamRejection struct {
	Kind    SpamKind
	Pattern string
	Message string
}

// Timing window for the client-side mount timestamp. Anything faster than a
// human could fill the form, or older than a browser tab anyone would keep
// open, is rejected.
const (
	MinFillTime = 2000 * time.Millisecond
	MaxFormAge  = 3600000 * time.Millisecond
)

// spamKeywords are product terms that never appear in a genuine roofing
// inquiry. Matched case-insensitively against the free-text fields.
var spamKeywords = []string{
	"viagra", "cialis", "casino", "crypto", "bitcoin", "forex",
	"payday loan", "seo service", "backlink", "web traffic",
	"escort", "weight loss",
}

var urlPattern = regexp.MustCompile(`(?i)https?://|www\.`)

// freeTextFields are the submission fields scanned for spam content.
var freeTextFields = []string{"name", "message", "address"}

// EvaluateSpam runs the heuristics in fixed precedence: honeypot, timing,
// content. The first match wins. A nil result means the submission passes to
// structural validation. The fields map is never mutated.
func EvaluateSpam(fields map[string]string, now time.Time) *SpamRejection {
	if v := fields[entities.FieldHoneypot]; v != "" {
		return &SpamRejection{
			Kind:    SpamHoneypot,
			Pattern: "honeypot field populated",
			Message: "Your submission could not be processed.",
		}
	}

	if r := evaluateTiming(fields[entities.FieldTimestamp], now); r != nil {
		return r
	}

	return evaluateContent(fields)
}

func evaluateTiming(raw string, now time.Time) *SpamRejection {
	tooFast := &SpamRejection{
		Kind:    SpamTiming,
		Pattern: "submitted under minimum fill time",
		Message: "That was quick! Please take a moment to review your details and try again.",
	}
	stale := &SpamRejection{
		Kind:    SpamTiming,
		Pattern: "mount timestamp stale or forged",
		Message: "This form session has expired. Please refresh the page and try again.",
	}

	ms, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return stale
	}

	elapsed := now.Sub(time.UnixMilli(ms))
	if elapsed < 0 || elapsed > MaxFormAge {
		return stale
	}
	if elapsed < MinFillTime {
		return tooFast
	}
	return nil
}

func evaluateContent(fields map[string]string) *SpamRejection {
	var sb strings.Builder
	for _, f := range freeTextFields {
		sb.WriteString(fields[f])
		sb.WriteString(" ")
	}
	text := sb.String()
	lower := strings.ToLower(text)

	for _, kw := range spamKeywords {
		if strings.Contains(lower, kw) {
			return contentRejection(fmt.Sprintf("keyword %q", kw))
		}
	}
	if urlPattern.MatchString(text) {
		return contentRejection("embedded url")
	}
	if hasRepeatedRun(text, 11) {
		return contentRejection("11+ repeated characters")
	}
	for _, r := range text {
		if r > 127 {
			return contentRejection("non-ascii content")
		}
	}
	return nil
}

func contentRejection(pattern string) *SpamRejection {
	return &SpamRejection{
		Kind:    SpamContent,
		Pattern: pattern,
		Message: "Your message contains content we can't accept. Please remove links or unusual text and try again.",
	}
}
