package handlers

import (
	"net/http"

	"autoservice-backend/internal/models"
	"autoservice-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	requests *services.RequestService
	script   string
}

// NewSyncHandler serves connection state and the Apps Script source the shop
// deploys behind SHEETS_SCRIPT_URL.
func NewSyncHandler(requests *services.RequestService, script string) *SyncHandler {
	return &SyncHandler{
		requests: requests,
		script:   script,
	}
}

// GetStatus godoc
// @Summary     Spreadsheet connection state
// @Description connected is null before the first sync and false while the console is working from the local snapshot.
// @Tags        sync
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SyncStatusResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /sync [get]
func (h *SyncHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, syncResponse(h.requests.State()))
}

// Reload godoc
// @Summary     Reconnect to the spreadsheet
// @Description Reloads every ticket from the spreadsheet, falling back to the snapshot when it is unreachable.
// @Tags        sync
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SyncStatusResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /sync [post]
func (h *SyncHandler) Reload(c *gin.Context) {
	c.JSON(http.StatusOK, syncResponse(h.requests.Load(c.Request.Context())))
}

// GetScript godoc
// @Summary     Apps Script source
// @Tags        sync
// @Produce     plain
// @Security    Bearer
// @Success     200 {string} string
// @Failure     401 {object} models.ErrorResponse
// @Router      /sync/script [get]
func (h *SyncHandler) GetScript(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(h.script))
}

func syncResponse(state services.SyncState) models.SyncStatusResponse {
	return models.SyncStatusResponse{
		Connected:  state.Connected,
		Configured: state.Configured,
		LastSyncAt: state.LastSyncAt,
		LastError:  state.LastError,
		Count:      state.Count,
	}
}
