package handlers

import (
	"autoservice-backend/internal/config"
	"autoservice-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Routes struct {
	Requests  *RequestsHandler
	Diagnosis *DiagnosisHandler
	Catalog   *CatalogHandler
	Auth      *AuthHandler
	Sync      *SyncHandler
}

// Register mounts the public routes and the staff routes behind
// AuthMiddleware under /api/v1.
func (r Routes) Register(router *gin.Engine, cfg *config.Config) {
	// Health check (no auth)
	router.GET("/health", HealthHandler)

	api := router.Group("/api/v1")

	// Customer facing
	api.GET("/shop", r.Catalog.GetShop)
	api.GET("/catalog", r.Catalog.ListServices)
	api.POST("/diagnose", r.Diagnosis.Diagnose)
	api.POST("/requests", r.Requests.CreateRequest)
	api.GET("/track", r.Requests.Track)
	api.POST("/auth/login", r.Auth.Login)

	staff := api.Group("")
	staff.Use(middleware.AuthMiddleware(cfg))

	staff.GET("/requests", r.Requests.ListRequests)
	staff.GET("/requests/:id", r.Requests.GetRequest)
	staff.PATCH("/requests/:id/status", r.Requests.UpdateStatus)

	staff.GET("/sync", r.Sync.GetStatus)
	staff.POST("/sync", r.Sync.Reload)
	staff.GET("/sync/script", r.Sync.GetScript)

	staff.PUT("/shop", r.Catalog.UpdateShop)
	staff.POST("/catalog", r.Catalog.CreateService)
	staff.PUT("/catalog", r.Catalog.ReplaceServices)
	staff.PUT("/catalog/:id", r.Catalog.UpdateService)
	staff.DELETE("/catalog/:id", r.Catalog.DeleteService)
}
