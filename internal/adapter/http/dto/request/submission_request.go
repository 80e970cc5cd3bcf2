package request

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SubmissionRequest is the flat field map a form endpoint receives: domain
// fields (name, email, phone, address, service, message) plus the reserved
// control fields `_website` (honeypot) and `_timestamp` (form mount time).
//
// Clients send `_timestamp` as a JSON number; everything downstream works on
// strings, so scalar values are stringified on decode. Nested values are a
// malformed payload.
type SubmissionRequest struct {
	Fields map[string]string
}

func (r *SubmissionRequest) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			fields[k] = val
		case json.Number:
			fields[k] = val.String()
		case bool:
			fields[k] = fmt.Sprintf("%t", val)
		case nil:
			fields[k] = ""
		default:
			return fmt.Errorf("field %q has unsupported type", k)
		}
	}
	r.Fields = fields
	return nil
}
