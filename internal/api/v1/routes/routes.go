package routes

import (
	"github.com/gin-gonic/gin"

	"lecture-whisper/internal/api/v1/handlers"
	"lecture-whisper/internal/api/v1/services"
)

// ServiceContainer holds the services the v1 routes consume.
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
}

// RegisterRoutes registers all v1 API routes.
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)

	transcriptions := router.Group("/transcriptions")
	{
		transcriptions.POST("", transcriptionHandler.Submit)
		transcriptions.GET("/:username", transcriptionHandler.History)
	}
}

// RegisterLegacyRoutes registers the original endpoint paths on the root
// router. Existing callers depend on these exact paths and payload shapes.
func RegisterLegacyRoutes(router *gin.Engine, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)

	router.POST("/transcribe_and_translate/", transcriptionHandler.SubmitLegacy)
	router.GET("/get_transcriptions/", transcriptionHandler.HistoryLegacy)
}
