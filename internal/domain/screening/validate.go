package screening

import (
	"regexp"
	"strings"
	"unicode"

	"ridgeline_roofing/internal/domain/entities"
)

// Schema declares which domain fields a form requires. Email is always
// required; the rest vary per form kind.
type Schema struct {
	RequireName    bool
	RequireService bool
	RequireMessage bool
}

// FieldErrors maps field name to a user-facing message. Validation
// accumulates every problem before returning so the client can surface them
// all at once.
type FieldErrors map[string]string

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z\s'\-.]*$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

	upperRunPattern   = regexp.MustCompile(`[A-Z]{10,}`)
	letterRunPattern  = regexp.MustCompile(`^[A-Za-z]{15,}$`)
	allLettersPattern = regexp.MustCompile(`^[A-Za-z]{20,}$`)
)

// disposableDomains are throwaway mail providers. Matched as domain suffixes.
var disposableDomains = []string{
	"mailinator.com", "guerrillamail.com", "10minutemail.com",
	"tempmail.com", "throwawaymail.com", "yopmail.com",
	"sharklasers.com", "getnada.com", "trashmail.com",
}

// suspiciousEmailSubstrings flag obviously fake inboxes.
var suspiciousEmailSubstrings = []string{
	"test", "spam", "fake", "temporary", "disposable",
}

// Validate enforces structural and semantic correctness of the domain fields.
// Returns the cleaned fields, or every field error found.
func Validate(fields map[string]string, schema Schema) (entities.ValidatedFields, FieldErrors) {
	errs := FieldErrors{}
	out := entities.ValidatedFields{}

	out.Name = validateName(fields["name"], schema.RequireName, errs)
	out.Email = validateEmail(fields["email"], errs)
	out.Phone = validatePhone(fields["phone"], errs)
	out.Address = validateAddress(fields["address"], errs)
	out.Service = validateService(fields["service"], schema.RequireService, errs)
	out.Message = validateMessage(fields["message"], schema.RequireMessage, errs)

	if len(errs) > 0 {
		return entities.ValidatedFields{}, errs
	}
	return out, nil
}

func validateName(raw string, required bool, errs FieldErrors) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		if required {
			errs["name"] = "Please enter your name."
		}
		return ""
	}
	if len(name) < 2 || len(name) > 100 {
		errs["name"] = "Name must be between 2 and 100 characters."
		return ""
	}
	if !namePattern.MatchString(name) {
		errs["name"] = "Name may only contain letters, spaces, hyphens, apostrophes, and periods."
		return ""
	}
	if upperRunPattern.MatchString(name) || hasAlternatingCaseRun(name, 4) || hasRepeatedRun(name, 5) {
		errs["name"] = "Please enter a valid name."
		return ""
	}
	return name
}

func validateEmail(raw string, errs FieldErrors) string {
	email := strings.TrimSpace(strings.ToLower(raw))
	if email == "" {
		errs["email"] = "Please enter your email address."
		return ""
	}
	if !emailPattern.MatchString(email) {
		errs["email"] = "Please enter a valid email address."
		return ""
	}

	at := strings.Index(email, "@")
	local, domain := email[:at], email[at+1:]
	if allLettersPattern.MatchString(local) {
		errs["email"] = "Please enter a valid email address."
		return ""
	}
	for _, d := range disposableDomains {
		if domain == d || strings.HasSuffix(domain, "."+d) {
			errs["email"] = "Please use a permanent email address."
			return ""
		}
	}
	for _, s := range suspiciousEmailSubstrings {
		if strings.Contains(email, s) {
			errs["email"] = "Please use a permanent email address."
			return ""
		}
	}
	return email
}

func validatePhone(raw string, errs FieldErrors) string {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		// Optional field.
		return ""
	}
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 10 || digits > 15 {
		errs["phone"] = "Please enter a valid phone number."
		return ""
	}
	return phone
}

func validateAddress(raw string, errs FieldErrors) string {
	addr := strings.TrimSpace(raw)
	if addr == "" {
		// Optional field.
		return ""
	}
	hasDigit, hasLetter := false, false
	for _, r := range addr {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
		}
	}
	if !hasDigit || !hasLetter || letterRunPattern.MatchString(addr) {
		errs["address"] = "Please enter a valid street address."
		return ""
	}
	return addr
}

func validateService(raw string, required bool, errs FieldErrors) entities.ServiceType {
	label := strings.TrimSpace(raw)
	if label == "" {
		if required {
			errs["service"] = "Please select a service."
		}
		return ""
	}
	svc, ok := entities.ParseServiceType(label)
	if !ok {
		errs["service"] = "Please select a valid service."
		return ""
	}
	return svc
}

func validateMessage(raw string, required bool, errs FieldErrors) string {
	msg := strings.TrimSpace(raw)
	if required && msg == "" {
		errs["message"] = "Please enter a message."
	}
	return msg
}

// hasRepeatedRun reports whether s contains n or more consecutive copies of
// the same rune ("aaaaa"). RE2 has no backreferences, so this is scanned
// directly rather than with a pattern.
func hasRepeatedRun(s string, n int) bool {
	run := 0
	var prev rune
	for _, r := range s {
		if run > 0 && r == prev {
			run++
		} else {
			run = 1
			prev = r
		}
		if run >= n {
			return true
		}
	}
	return false
}

// hasAlternatingCaseRun reports whether s contains n or more consecutive
// letters whose case flips at every step ("aBcD"), a shape bot-generated
// names share and human names do not.
func hasAlternatingCaseRun(s string, n int) bool {
	run := 0
	prevUpper := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			run = 0
			continue
		}
		upper := unicode.IsUpper(r)
		if run == 0 || upper == prevUpper {
			run = 1
		} else {
			run++
			if run >= n {
				return true
			}
		}
		prevUpper = upper
	}
	return false
}
