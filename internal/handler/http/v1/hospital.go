package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Register a hospital
// @Description Create a hospital owned by the caller. Requires API key and X-Owner-ID.
// @Tags Hospitals
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Owner-ID header string true "Owner ID"
// @Param hospital body CreateHospitalRequest true "Hospital creation request"
// @Success 201 {object} HospitalResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals [post]
func (h *Handler) createHospital(c *gin.Context) {
	var input CreateHospitalRequest
	log := h.logger.WithField("method", "createHospital")
	if !h.bindJSON(c, log, &input) {
		return
	}

	model, err := DTOToHospitalModel(input)
	if err != nil {
		respondError(c, log, err)
		return
	}
	model.OwnerID = ownerID(c)
	if err := h.fleetService.CreateHospital(c.Request.Context(), model); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToHospitalResponse(model))
}

// @Summary Get a list of hospitals
// @Description Get a paginated list of hospitals
// @Tags Hospitals
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} HospitalResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals [get]
func (h *Handler) listHospitals(c *gin.Context) {
	log := h.logger.WithField("method", "listHospitals")
	page, pageSize := pagination(c)

	hospitals, err := h.fleetService.ListHospitals(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToHospitalResponses(hospitals))
}

// @Summary Get hospital by ID
// @Tags Hospitals
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} HospitalResponse
// @Failure 400 {object} map[string]string "Invalid hospital ID"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Router /hospitals/{id} [get]
func (h *Handler) getHospital(c *gin.Context) {
	id, ok := parseID(c, "hospital")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getHospital").WithField("id", id)

	hospital, err := h.fleetService.GetHospital(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToHospitalResponse(hospital))
}

// @Summary Replace a hospital
// @Description Replace the mutable fields of a hospital. Requires API key and X-Owner-ID of the owner.
// @Tags Hospitals
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Owner-ID header string true "Owner ID"
// @Param id path string true "Hospital ID"
// @Param hospital body CreateHospitalRequest true "Hospital update request"
// @Success 200 {object} HospitalResponse
// @Failure 400 {object} map[string]string "Invalid hospital ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals/{id} [put]
func (h *Handler) updateHospital(c *gin.Context) {
	id, ok := parseID(c, "hospital")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateHospital").WithField("id", id)

	var input CreateHospitalRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	model, err := DTOToHospitalModel(input)
	if err != nil {
		respondError(c, log, err)
		return
	}
	model.ID = id

	if err := h.fleetService.UpdateHospital(c.Request.Context(), ownerID(c), model); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToHospitalResponse(model))
}

// @Summary Update available beds
// @Description Record admissions or discharges. Requires API key and X-Owner-ID of the owner.
// @Tags Hospitals
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Owner-ID header string true "Owner ID"
// @Param id path string true "Hospital ID"
// @Param beds body UpdateBedsRequest true "New available bed count"
// @Success 200 {object} HospitalResponse
// @Failure 400 {object} map[string]string "Invalid hospital ID or request body"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Router /hospitals/{id}/beds [patch]
func (h *Handler) updateBeds(c *gin.Context) {
	id, ok := parseID(c, "hospital")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateBeds").WithField("id", id)

	var input UpdateBedsRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	hospital, err := h.fleetService.UpdateBeds(c.Request.Context(), ownerID(c), id, *input.AvailableBeds)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToHospitalResponse(hospital))
}

// @Summary Delete a hospital
// @Description Delete a hospital; ambulances assigned to it become unassigned. Requires API key and X-Owner-ID of the owner.
// @Tags Hospitals
// @Security ApiKeyAuth
// @Param X-Owner-ID header string true "Owner ID"
// @Param id path string true "Hospital ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid hospital ID"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Router /hospitals/{id} [delete]
func (h *Handler) deleteHospital(c *gin.Context) {
	id, ok := parseID(c, "hospital")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteHospital").WithField("id", id)

	if err := h.fleetService.DeleteHospital(c.Request.Context(), ownerID(c), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
