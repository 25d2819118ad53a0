package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

// @Summary Assess emergency severity
// @Description Rule-based severity tier from symptoms and vital signs
// @Tags Predictions
// @Accept json
// @Produce json
// @Param request body SeverityRequest true "Symptoms and vital signs"
// @Success 200 {object} SeverityResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /predictions/severity [post]
func (h *Handler) assessSeverity(c *gin.Context) {
	var input SeverityRequest
	log := h.logger.WithField("method", "assessSeverity")
	if !h.bindJSON(c, log, &input) {
		return
	}

	assessment, err := h.dispatchService.AssessSeverity(c.Request.Context(), DTOToSeverityInput(input.Symptoms, input.VitalSigns))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, AssessmentToResponse(assessment))
}

// @Summary Project hospital capacity
// @Description Projected available beds in 1 and 3 hours for an indexed hospital
// @Tags Predictions
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} CapacityResponse
// @Failure 400 {object} map[string]string "Invalid hospital ID"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Router /predictions/capacity/{id} [get]
func (h *Handler) projectCapacity(c *gin.Context) {
	id, ok := parseID(c, "hospital")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "projectCapacity").WithField("id", id)

	report, err := h.dispatchService.ProjectCapacity(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CapacityResponse{
		HospitalID:    report.Hospital.ID,
		AvailableBeds: report.Hospital.AvailableBeds,
		Predictions:   ProjectionToDTO(report.Projection),
	})
}

// @Summary Estimate arrival time
// @Description Travel time between two points adjusted for congestion, closures and accidents
// @Tags Predictions
// @Accept json
// @Produce json
// @Param request body ArrivalRequest true "Route endpoints and traffic"
// @Success 200 {object} ArrivalResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /predictions/arrival [post]
func (h *Handler) estimateArrival(c *gin.Context) {
	var input ArrivalRequest
	log := h.logger.WithField("method", "estimateArrival")
	if !h.bindJSON(c, log, &input) {
		return
	}

	from, err := DTOToPoint(input.From)
	if err != nil {
		respondError(c, log, err)
		return
	}
	to, err := DTOToPoint(input.To)
	if err != nil {
		respondError(c, log, err)
		return
	}
	estimate, err := h.dispatchService.EstimateArrival(c.Request.Context(), from, to, DTOToTraffic(input.Traffic))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, EstimateToResponse(estimate))
}

// @Summary Triage an emergency
// @Description Assess severity, then return nearest available ambulances and hospitals ranked by projected capacity
// @Tags Dispatch
// @Accept json
// @Produce json
// @Param request body TriageRequest true "Incident location and patient state"
// @Success 200 {object} TriageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dispatch/triage [post]
func (h *Handler) triage(c *gin.Context) {
	var input TriageRequest
	log := h.logger.WithField("method", "triage")
	if !h.bindJSON(c, log, &input) {
		return
	}

	point, err := DTOToPoint(input.Location)
	if err != nil {
		respondError(c, log, err)
		return
	}
	result, err := h.dispatchService.Triage(c.Request.Context(), service.TriageRequest{
		Location:          point,
		MaxDistanceMeters: metersOrDefault(input.MaxDistance),
		Severity:          DTOToSeverityInput(input.Symptoms, input.VitalSigns),
	})
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, TriageResponse{
		Severity:     AssessmentToResponse(result.Assessment),
		HorizonHours: result.HorizonHours,
		Ambulances:   AmbulanceMatchesToResponses(result.Ambulances),
		Hospitals:    RankedHospitalsToResponses(result.Hospitals),
	})
}
