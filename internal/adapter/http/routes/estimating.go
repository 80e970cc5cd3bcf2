package routes

import (
	"ridgeline_roofing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathPackages  = "/packages"
)

func addEstimatingRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.POST("/email", estimateHandler.EmailEstimate)
	}

	rg.GET(PathPackages, estimateHandler.ListPackages)
}
