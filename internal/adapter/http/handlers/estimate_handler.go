package handlers

import (
	"errors"
	"net/http"

	request "ridgeline_roofing/internal/adapter/http/dto/request"
	response "ridgeline_roofing/internal/adapter/http/dto/response"
	"ridgeline_roofing/internal/domain/pricing"
	"ridgeline_roofing/internal/usecase"
	"ridgeline_roofing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for the interactive roof estimator.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate computes an estimate from the drawn outline and selected
// package and returns it without persisting anything.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.BuildEstimate(c.Request.Context(), toCommand(payload))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// EmailEstimate computes the estimate and emails it to the visitor with the
// PDF attachment. A delivery failure still returns the estimate, with a
// warning for the client to surface.
func (h *EstimateHandler) EmailEstimate(c *gin.Context) {
	var payload request.EmailEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, warning, err := h.usecase.EmailEstimate(c.Request.Context(), toCommand(payload.EstimateRequest), payload.Recipient)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.EmailEstimateResponse{
		Estimate:        response.FromEstimate(estimate),
		DeliveryWarning: warning,
	})
}

// ListPackages returns the static package catalog for the package picker.
func (h *EstimateHandler) ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPackages(h.usecase.Packages()))
}

func toCommand(r request.EstimateRequest) usecase.BuildEstimateCommand {
	return usecase.BuildEstimateCommand{
		Points:          r.ResolvePoints(),
		Pitch:           r.Pitch,
		WasteFactor:     r.ResolveWasteFactor(),
		PackageID:       r.PackageID,
		IncludeDisposal: r.IncludeDisposal,
		IncludePermits:  r.IncludePermits,
		Address:         r.ResolveAddress(),
	}
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, pricing.ErrInvalidPackage):
		return pkg.NewDomainErrorSimple("INVALID_PACKAGE_SELECTED", "The selected roofing package does not exist", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRecipient):
		return pkg.NewDomainErrorSimple("INVALID_RECIPIENT", "Please provide a valid email address", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("UNEXPECTED_FAILURE", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
