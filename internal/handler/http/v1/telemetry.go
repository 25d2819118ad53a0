package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// @Summary Push ambulance positions
// @Description Queue a batch of position updates; they are applied asynchronously. Requires API key.
// @Tags Telemetry
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param updates body TelemetryRequest true "Position updates"
// @Success 202 {object} TelemetryResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /telemetry/positions [post]
func (h *Handler) pushPositions(c *gin.Context) {
	var input TelemetryRequest
	log := h.logger.WithField("method", "pushPositions")
	if !h.bindJSON(c, log, &input) {
		return
	}

	updates, err := DTOToPositionUpdates(input.Updates, time.Now().UTC())
	if err != nil {
		respondError(c, log, err)
		return
	}
	if err := h.publisher.Publish(c.Request.Context(), updates...); err != nil {
		respondError(c, log, err)
		return
	}
	log.WithField("count", len(updates)).Debug("Position updates queued")
	c.JSON(http.StatusAccepted, TelemetryResponse{Queued: len(updates)})
}
