package screening

import (
	"strconv"
	"testing"
	"time"
)

func msAgo(now time.Time, d time.Duration) string {
	return strconv.FormatInt(now.Add(-d).UnixMilli(), 10)
}

func cleanFields(now time.Time) map[string]string {
	return map[string]string{
		"name":       "Maria Gonzalez",
		"email":      "maria@example.com",
		"message":    "Hail damage on the north slope, please call.",
		"_timestamp": msAgo(now, 5*time.Second),
	}
}

func TestEvaluateSpam_CleanSubmissionPasses(t *testing.T) {
	now := time.Now()
	if r := EvaluateSpam(cleanFields(now), now); r != nil {
		t.Fatalf("expected pass, got %+v", r)
	}
}

func TestEvaluateSpam_HoneypotWinsRegardlessOfOtherFields(t *testing.T) {
	now := time.Now()
	fields := cleanFields(now)
	fields["_website"] = "http://spam.biz"
	// Non-empty honeypot must fire before the timing check even sees a bad
	// timestamp.
	fields["_timestamp"] = "not-a-number"

	r := EvaluateSpam(fields, now)
	if r == nil || r.Kind != SpamHoneypot {
		t.Fatalf("expected honeypot rejection, got %+v", r)
	}
}

func TestEvaluateSpam_TimingWindow(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name   string
		stamp  string
		reject bool
	}{
		{"zero elapsed", strconv.FormatInt(now.UnixMilli(), 10), true},
		{"just under minimum", msAgo(now, 1999*time.Millisecond), true},
		{"five seconds", msAgo(now, 5*time.Second), false},
		{"negative delta", msAgo(now, -10*time.Second), true},
		{"older than an hour", msAgo(now, 61*time.Minute), true},
		{"garbage timestamp", "not-a-number", true},
		{"missing timestamp", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := cleanFields(now)
			fields["_timestamp"] = tc.stamp
			r := EvaluateSpam(fields, now)
			if tc.reject {
				if r == nil || r.Kind != SpamTiming {
					t.Fatalf("expected timing rejection, got %+v", r)
				}
			} else if r != nil {
				t.Fatalf("expected pass, got %+v", r)
			}
		})
	}
}

func TestEvaluateSpam_ContentPatterns(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name    string
		field   string
		value   string
		rejects bool
	}{
		{"spam keyword", "message", "Best CASINO bonuses for you", true},
		{"http url", "message", "check http://spam.biz now", true},
		{"www url", "message", "visit www.spam.biz today", true},
		{"repeated run", "message", "aaaaaaaaaaa", true},
		{"non-ascii", "message", "Счастливого пути", true},
		{"ten repeats is fine", "message", "aaaaaaaaaa fine", false},
		{"plain inquiry", "message", "Need a quote for shingle repair.", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := cleanFields(now)
			fields[tc.field] = tc.value
			r := EvaluateSpam(fields, now)
			if tc.rejects {
				if r == nil || r.Kind != SpamContent {
					t.Fatalf("expected content rejection, got %+v", r)
				}
			} else if r != nil {
				t.Fatalf("expected pass, got %+v", r)
			}
		})
	}
}

func TestEvaluateSpam_DoesNotMutateFields(t *testing.T) {
	now := time.Now()
	fields := cleanFields(now)
	before := make(map[string]string, len(fields))
	for k, v := range fields {
		before[k] = v
	}

	EvaluateSpam(fields, now)

	if len(fields) != len(before) {
		t.Fatal("field map length changed")
	}
	for k, v := range before {
		if fields[k] != v {
			t.Fatalf("field %q changed", k)
		}
	}
}
