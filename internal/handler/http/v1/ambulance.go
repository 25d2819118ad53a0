package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// @Summary Register an ambulance
// @Description Create an ambulance owned by the caller; status defaults to available. Requires API key and X-Owner-ID.
// @Tags Ambulances
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Owner-ID header string true "Owner ID"
// @Param ambulance body CreateAmbulanceRequest true "Ambulance creation request"
// @Success 201 {object} AmbulanceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ambulances [post]
func (h *Handler) createAmbulance(c *gin.Context) {
	var input CreateAmbulanceRequest
	log := h.logger.WithField("method", "createAmbulance")
	if !h.bindJSON(c, log, &input) {
		return
	}

	model, err := DTOToAmbulanceModel(input)
	if err != nil {
		respondError(c, log, err)
		return
	}
	model.OwnerID = ownerID(c)
	if err := h.fleetService.CreateAmbulance(c.Request.Context(), model); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAmbulanceResponse(model))
}

// @Summary Get a list of ambulances
// @Tags Ambulances
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} AmbulanceResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ambulances [get]
func (h *Handler) listAmbulances(c *gin.Context) {
	log := h.logger.WithField("method", "listAmbulances")
	page, pageSize := pagination(c)

	ambulances, err := h.fleetService.ListAmbulances(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAmbulanceResponses(ambulances))
}

// @Summary Get ambulance by ID
// @Tags Ambulances
// @Produce json
// @Param id path string true "Ambulance ID"
// @Success 200 {object} AmbulanceResponse
// @Failure 400 {object} map[string]string "Invalid ambulance ID"
// @Failure 404 {object} map[string]string "Ambulance not found"
// @Router /ambulances/{id} [get]
func (h *Handler) getAmbulance(c *gin.Context) {
	id, ok := parseID(c, "ambulance")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getAmbulance").WithField("id", id)

	ambulance, err := h.fleetService.GetAmbulance(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAmbulanceResponse(ambulance))
}

// @Summary Move an ambulance
// @Description Update the position of an ambulance. Requires API key and X-Owner-ID of the owner.
// @Tags Ambulances
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Owner-ID header string true "Owner ID"
// @Param id path string true "Ambulance ID"
// @Param location body UpdateLocationRequest true "New position"
// @Success 200 {object} AmbulanceResponse
// @Failure 400 {object} map[string]string "Invalid ambulance ID or request body"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Ambulance not found"
// @Router /ambulances/{id}/location [patch]
func (h *Handler) updateAmbulanceLocation(c *gin.Context) {
	id, ok := parseID(c, "ambulance")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateAmbulanceLocation").WithField("id", id)

	var input UpdateLocationRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	point, err := DTOToPoint(input.Location)
	if err != nil {
		respondError(c, log, err)
		return
	}

	ambulance, err := h.fleetService.UpdateAmbulanceLocation(c.Request.Context(), ownerID(c), id, point)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAmbulanceResponse(ambulance))
}

// @Summary Change ambulance status
// @Description Set status and assigned hospital. Requires API key and X-Owner-ID of the owner.
// @Tags Ambulances
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Owner-ID header string true "Owner ID"
// @Param id path string true "Ambulance ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} AmbulanceResponse
// @Failure 400 {object} map[string]string "Invalid ambulance ID or request body"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Ambulance not found"
// @Router /ambulances/{id}/status [patch]
func (h *Handler) updateAmbulanceStatus(c *gin.Context) {
	id, ok := parseID(c, "ambulance")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateAmbulanceStatus").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	ambulance, err := h.fleetService.UpdateAmbulanceStatus(
		c.Request.Context(), ownerID(c), id, models.AmbulanceStatus(input.Status), input.AssignedHospitalID,
	)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAmbulanceResponse(ambulance))
}

// @Summary Delete an ambulance
// @Description Requires API key and X-Owner-ID of the owner.
// @Tags Ambulances
// @Security ApiKeyAuth
// @Param X-Owner-ID header string true "Owner ID"
// @Param id path string true "Ambulance ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ambulance ID"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Ambulance not found"
// @Router /ambulances/{id} [delete]
func (h *Handler) deleteAmbulance(c *gin.Context) {
	id, ok := parseID(c, "ambulance")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteAmbulance").WithField("id", id)

	if err := h.fleetService.DeleteAmbulance(c.Request.Context(), ownerID(c), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
