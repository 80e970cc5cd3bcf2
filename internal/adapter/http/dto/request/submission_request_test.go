package request

import (
	"encoding/json"
	"testing"
)

func TestSubmissionRequest_UnmarshalStringifiesScalars(t *testing.T) {
	payload := `{"name":"Maria","email":"maria@example.com","_timestamp":1717243200123,"_website":"","subscribed":true,"phone":null}`

	var r SubmissionRequest
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"name":       "Maria",
		"email":      "maria@example.com",
		"_timestamp": "1717243200123",
		"_website":   "",
		"subscribed": "true",
		"phone":      "",
	}
	for k, v := range want {
		if r.Fields[k] != v {
			t.Fatalf("field %q: expected %q, got %q", k, v, r.Fields[k])
		}
	}
}

func TestSubmissionRequest_RejectsNestedValues(t *testing.T) {
	var r SubmissionRequest
	if err := json.Unmarshal([]byte(`{"name":{"first":"Maria"}}`), &r); err == nil {
		t.Fatal("expected error for nested value")
	}
	if err := json.Unmarshal([]byte(`{"tags":["a","b"]}`), &r); err == nil {
		t.Fatal("expected error for array value")
	}
}

func TestSubmissionRequest_LargeTimestampKeepsPrecision(t *testing.T) {
	var r SubmissionRequest
	if err := json.Unmarshal([]byte(`{"_timestamp":1717243200123}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Fields["_timestamp"] != "1717243200123" {
		t.Fatalf("timestamp lost precision: %q", r.Fields["_timestamp"])
	}
}
