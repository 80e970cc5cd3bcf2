package routes

import (
	"ridgeline_roofing/internal/adapter/http/handlers"
	"ridgeline_roofing/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const PathForms = "/forms"

func addFormRoutes(rg *gin.RouterGroup, submissionHandler *handlers.SubmissionHandler) {
	forms := rg.Group(PathForms)
	{
		forms.POST("/quote", submissionHandler.Submit(entities.FormQuote))
		forms.POST("/quote/arizona", submissionHandler.Submit(entities.FormQuoteArizona))
		forms.POST("/contact", submissionHandler.Submit(entities.FormContact))
		forms.POST("/newsletter", submissionHandler.Submit(entities.FormNewsletter))
		forms.POST("/lead-magnet", submissionHandler.Submit(entities.FormLeadMagnet))
	}
}
