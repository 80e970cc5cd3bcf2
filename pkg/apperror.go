package pkg

// AppError is the application-level error carried between use cases and the
// HTTP adapter. It pairs a machine-readable code with a user-facing message
// and the HTTP status the adapter should answer with.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body returned for a failed request.
type HTTPError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError converts the error into its response body.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

// ToHTTPErrorWithFields attaches per-field messages, used for validation
// rejections where the client should display every problem at once.
func (e *AppError) ToHTTPErrorWithFields(fields map[string]string) HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Fields: fields}
}

// NewDomainError wraps an underlying error with a domain code and HTTP status.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple builds a domain error without an underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
