package handlers

import (
	"net/http"

	"autoservice-backend/internal/gemini"
	"autoservice-backend/internal/models"
	"autoservice-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DiagnosisHandler struct {
	requests *services.RequestService
}

func NewDiagnosisHandler(requests *services.RequestService) *DiagnosisHandler {
	return &DiagnosisHandler{
		requests: requests,
	}
}

// Diagnose godoc
// @Summary     AI pre-diagnosis
// @Description Asks the model for a likely issue, cost range and urgency. diagnosis is null when the model is unavailable or fails.
// @Tags        diagnosis
// @Accept      json
// @Produce     json
// @Param       request body models.DiagnoseRequest true "Symptoms"
// @Success     200 {object} models.DiagnoseResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /diagnose [post]
func (h *DiagnosisHandler) Diagnose(c *gin.Context) {
	var req models.DiagnoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	diagnosis := h.requests.Diagnose(c.Request.Context(), gemini.DiagnosisInput{
		Description: req.Description,
		CarBrand:    req.CarBrand,
		ServiceType: req.ServiceType,
		ImageURL:    req.ImageURL,
	})

	c.JSON(http.StatusOK, models.DiagnoseResponse{Diagnosis: diagnosis})
}
