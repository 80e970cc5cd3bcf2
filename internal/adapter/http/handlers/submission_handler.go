package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "ridgeline_roofing/internal/adapter/http/dto/request"
	response "ridgeline_roofing/internal/adapter/http/dto/response"
	"ridgeline_roofing/internal/domain/entities"
	"ridgeline_roofing/internal/usecase"
	"ridgeline_roofing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSubmissionPayload = pkg.NewDomainErrorSimple("INVALID_SUBMISSION_INPUT", "Invalid submission payload", http.StatusBadRequest)
	errUnknownFormKind          = pkg.NewDomainErrorSimple("UNKNOWN_FORM", "Unknown form", http.StatusNotFound)
	errTooManySubmissions       = pkg.NewDomainErrorSimple("RATE_LIMIT_EXCEEDED", "Too many submissions. Please try again later.", http.StatusTooManyRequests)
)

// SubmissionHandler handles the public lead-capture forms. Each route is
// bound to a fixed form kind at registration time.

type SubmissionHandler struct {
	usecase usecase.ISubmissionUseCase
}

func NewSubmissionHandler(uc usecase.ISubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{usecase: uc}
}

// Submit returns the gin handler for one form kind.
func (h *SubmissionHandler) Submit(form entities.FormKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload request.SubmissionRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
			return
		}

		result, err := h.usecase.Submit(c.Request.Context(), form, clientIdentity(c), payload.Fields)
		if err != nil {
			status, body := mapSubmissionError(err)
			c.JSON(status, body)
			return
		}

		c.JSON(http.StatusOK, response.FromSubmission(result))
	}
}

// clientIdentity extracts the submitter identity for rate limiting. Proxy
// headers take precedence over the socket address so limits follow the real
// client behind a load balancer.
func clientIdentity(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}
	if real := strings.TrimSpace(c.GetHeader("X-Real-IP")); real != "" {
		return real
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

func mapSubmissionError(err error) (int, pkg.HTTPError) {
	var spamErr *usecase.SpamError
	var validationErr *usecase.ValidationError

	switch {
	case errors.Is(err, usecase.ErrRateLimitExceeded):
		return errTooManySubmissions.HTTPStatus, errTooManySubmissions.ToHTTPError()
	case errors.Is(err, usecase.ErrUnknownForm):
		return errUnknownFormKind.HTTPStatus, errUnknownFormKind.ToHTTPError()
	case errors.As(err, &spamErr):
		appErr := pkg.NewDomainErrorSimple("SPAM_DETECTED", spamErr.Rejection.Message, http.StatusBadRequest)
		return appErr.HTTPStatus, appErr.ToHTTPError()
	case errors.As(err, &validationErr):
		appErr := pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Some fields need attention", http.StatusBadRequest)
		return appErr.HTTPStatus, appErr.ToHTTPErrorWithFields(validationErr.Fields)
	default:
		appErr := pkg.NewDomainError("UNEXPECTED_FAILURE", "An internal error occurred", err, http.StatusInternalServerError)
		return appErr.HTTPStatus, appErr.ToHTTPError()
	}
}
