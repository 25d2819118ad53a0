package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	apiKey := APIKeyAuthMiddleware(h.cfg, h.logger)
	owner := OwnerIDMiddleware(h.logger)

	// Геозапросы
	mapGroup := api.Group("/map")
	{
		mapGroup.POST("/nearest-hospitals", h.nearestHospitals)
		mapGroup.POST("/nearest-ambulances", h.nearestAmbulances)
		mapGroup.POST("/hospitals-with-beds", h.hospitalsWithBeds)
		mapGroup.POST("/ranked-hospitals", h.rankedHospitals)
	}

	// Прогнозы
	predictions := api.Group("/predictions")
	{
		predictions.POST("/severity", h.assessSeverity)
		predictions.GET("/capacity/:id", h.projectCapacity)
		predictions.POST("/arrival", h.estimateArrival)
	}

	api.POST("/dispatch/triage", h.triage)

	// Больницы: чтение открыто, изменения - по API-ключу от имени владельца
	hospitals := api.Group("/hospitals")
	{
		hospitals.GET("", h.listHospitals)
		hospitals.GET("/:id", h.getHospital)
		hospitals.POST("", apiKey, owner, h.createHospital)
		hospitals.PUT("/:id", apiKey, owner, h.updateHospital)
		hospitals.PATCH("/:id/beds", apiKey, owner, h.updateBeds)
		hospitals.DELETE("/:id", apiKey, owner, h.deleteHospital)
	}

	ambulances := api.Group("/ambulances")
	{
		ambulances.GET("", h.listAmbulances)
		ambulances.GET("/:id", h.getAmbulance)
		ambulances.POST("", apiKey, owner, h.createAmbulance)
		ambulances.PATCH("/:id/location", apiKey, owner, h.updateAmbulanceLocation)
		ambulances.PATCH("/:id/status", apiKey, owner, h.updateAmbulanceStatus)
		ambulances.DELETE("/:id", apiKey, owner, h.deleteAmbulance)
	}

	api.POST("/telemetry/positions", apiKey, h.pushPositions)

	api.GET("/stats", h.getStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
