package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

// @Summary Find nearest hospitals
// @Description Hospitals within maxDistance meters (default 5000), nearest first. Optional minBeds filters by available beds.
// @Tags Map
// @Accept json
// @Produce json
// @Param request body NearestHospitalsRequest true "Search point and filters"
// @Success 200 {array} HospitalMatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /map/nearest-hospitals [post]
func (h *Handler) nearestHospitals(c *gin.Context) {
	var input NearestHospitalsRequest
	log := h.logger.WithField("method", "nearestHospitals")
	if !h.bindJSON(c, log, &input) {
		return
	}

	point, err := DTOToPoint(input.Location)
	if err != nil {
		respondError(c, log, err)
		return
	}
	matches, err := h.dispatchService.NearestHospitals(c.Request.Context(), service.HospitalQuery{
		Location:          point,
		MaxDistanceMeters: metersOrDefault(input.MaxDistance),
		MinAvailableBeds:  input.MinBeds,
	})
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, HospitalMatchesToResponses(matches))
}

// @Summary Find nearest available ambulances
// @Description Ambulances with status available within maxDistance meters (default 5000), nearest first
// @Tags Map
// @Accept json
// @Produce json
// @Param request body NearestAmbulancesRequest true "Search point"
// @Success 200 {array} AmbulanceMatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /map/nearest-ambulances [post]
func (h *Handler) nearestAmbulances(c *gin.Context) {
	var input NearestAmbulancesRequest
	log := h.logger.WithField("method", "nearestAmbulances")
	if !h.bindJSON(c, log, &input) {
		return
	}

	point, err := DTOToPoint(input.Location)
	if err != nil {
		respondError(c, log, err)
		return
	}
	matches, err := h.dispatchService.NearestAvailableAmbulances(c.Request.Context(), service.AmbulanceQuery{
		Location:          point,
		MaxDistanceMeters: metersOrDefault(input.MaxDistance),
	})
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, AmbulanceMatchesToResponses(matches))
}

// @Summary Find hospitals with available beds
// @Description Hospitals with at least minBeds (default 1) available beds within maxDistance meters
// @Tags Map
// @Accept json
// @Produce json
// @Param request body NearestHospitalsRequest true "Search point and filters"
// @Success 200 {array} HospitalMatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /map/hospitals-with-beds [post]
func (h *Handler) hospitalsWithBeds(c *gin.Context) {
	var input NearestHospitalsRequest
	log := h.logger.WithField("method", "hospitalsWithBeds")
	if !h.bindJSON(c, log, &input) {
		return
	}

	point, err := DTOToPoint(input.Location)
	if err != nil {
		respondError(c, log, err)
		return
	}
	matches, err := h.dispatchService.HospitalsWithBeds(c.Request.Context(), service.HospitalQuery{
		Location:          point,
		MaxDistanceMeters: metersOrDefault(input.MaxDistance),
		MinAvailableBeds:  input.MinBeds,
	})
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, HospitalMatchesToResponses(matches))
}

// @Summary Rank hospitals by projected capacity
// @Description Hospitals in range ordered by projected available beds at horizon 1 or 3 hours; ties by distance
// @Tags Map
// @Accept json
// @Produce json
// @Param request body RankedHospitalsRequest true "Search point, filters and horizon"
// @Success 200 {array} RankedHospitalResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /map/ranked-hospitals [post]
func (h *Handler) rankedHospitals(c *gin.Context) {
	var input RankedHospitalsRequest
	log := h.logger.WithField("method", "rankedHospitals")
	if !h.bindJSON(c, log, &input) {
		return
	}

	point, err := DTOToPoint(input.Location)
	if err != nil {
		respondError(c, log, err)
		return
	}
	ranked, err := h.dispatchService.RankedHospitals(c.Request.Context(), service.HospitalQuery{
		Location:          point,
		MaxDistanceMeters: metersOrDefault(input.MaxDistance),
		MinAvailableBeds:  input.MinBeds,
	}, input.HorizonHours)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RankedHospitalsToResponses(ranked))
}
