package handlers

import (
	"net/http"
	"strings"

	"autoservice-backend/internal/models"
	"autoservice-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type RequestsHandler struct {
	requests *services.RequestService
}

func NewRequestsHandler(requests *services.RequestService) *RequestsHandler {
	return &RequestsHandler{
		requests: requests,
	}
}

// CreateRequest godoc
// @Summary     Submit a repair request
// @Description Creates a PENDING ticket. The spreadsheet append happens in the background; its failure is never reported to the caller. Set diagnose=true to run the AI diagnosis when no diagnosis is supplied.
// @Tags        requests
// @Accept      json
// @Produce     json
// @Param       request body models.CreateRepairRequest true "Intake form"
// @Success     201 {object} models.RepairRequest
// @Failure     400 {object} models.ErrorResponse
// @Router      /requests [post]
func (h *RequestsHandler) CreateRequest(c *gin.Context) {
	var req models.CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	request, err := h.requests.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListRequests godoc
// @Summary     List repair requests
// @Description Staff dashboard list, newest first. status may be repeated or comma separated.
// @Tags        requests
// @Produce     json
// @Security    Bearer
// @Param       status query string false "Status filter (PENDING, IN_PROGRESS, COMPLETED, CANCELLED)"
// @Success     200 {object} models.RequestListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /requests [get]
func (h *RequestsHandler) ListRequests(c *gin.Context) {
	var statuses []models.RepairStatus
	for _, value := range c.QueryArray("status") {
		for _, raw := range strings.Split(value, ",") {
			if strings.TrimSpace(raw) == "" {
				continue
			}
			status, ok := models.ParseStatus(raw)
			if !ok {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status", Message: raw})
				return
			}
			statuses = append(statuses, status)
		}
	}

	c.JSON(http.StatusOK, models.RequestListResponse{
		Requests:  h.requests.List(statuses...),
		Connected: h.requests.State().Connected,
	})
}

// GetRequest godoc
// @Summary     Get a repair request
// @Tags        requests
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Ticket id"
// @Success     200 {object} models.RepairRequest
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /requests/{id} [get]
func (h *RequestsHandler) GetRequest(c *gin.Context) {
	request, err := h.requests.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// UpdateStatus godoc
// @Summary     Change a ticket's status
// @Description Any status may follow any other. The change is applied locally at once and written to the spreadsheet in the background.
// @Tags        requests
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Ticket id"
// @Param       request body models.UpdateStatusRequest true "New status"
// @Success     200 {object} models.RepairRequest
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /requests/{id}/status [patch]
func (h *RequestsHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	request, err := h.requests.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// Track godoc
// @Summary     Find a ticket
// @Description Customer lookup by name, phone, plate or model, or ticket id. Whitespace and case are ignored; phone numbers match on digits. An empty query returns every ticket.
// @Tags        tracking
// @Produce     json
// @Param       q query string false "Search text"
// @Success     200 {object} models.RequestListResponse
// @Router      /track [get]
func (h *RequestsHandler) Track(c *gin.Context) {
	c.JSON(http.StatusOK, models.RequestListResponse{
		Requests:  h.requests.Search(c.Query("q")),
		Connected: h.requests.State().Connected,
	})
}
