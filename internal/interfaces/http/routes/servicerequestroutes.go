package routes

import (
	"github.com/gin-gonic/gin"

	srhandlers "servicedesk/internal/interfaces/http/handlers/servicerequest"
)

type ServiceRequestRouteConfig struct {
	ServiceRequestHandler *srhandlers.ServiceRequestHandler
}

func SetupServiceRequestRoutes(engine *gin.Engine, config *ServiceRequestRouteConfig) {
	requests := engine.Group("/service-requests")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		requests.POST("",
			config.ServiceRequestHandler.CreateRequest)
		requests.GET("",
			config.ServiceRequestHandler.ListRequests)

		// Fixed sub-collections (must come BEFORE /:id to avoid conflicts)
		requests.GET("/active",
			config.ServiceRequestHandler.ListActiveRequests)
		requests.GET("/completed",
			config.ServiceRequestHandler.ListCompletedRequests)
		requests.GET("/search",
			config.ServiceRequestHandler.SearchRequests)

		// Per-record sub-resources
		requests.GET("/:id/comments",
			config.ServiceRequestHandler.ListComments)
		requests.POST("/:id/comments",
			config.ServiceRequestHandler.AddComment)
		requests.POST("/:id/attachments",
			config.ServiceRequestHandler.AppendAttachments)

		// Generic parameterized routes (must come LAST)
		requests.GET("/:id",
			config.ServiceRequestHandler.GetRequest)
		requests.PATCH("/:id",
			config.ServiceRequestHandler.UpdateRequest)
		requests.DELETE("/:id",
			config.ServiceRequestHandler.DeleteRequest)
	}

	engine.GET("/metrics", config.ServiceRequestHandler.GetMetrics)
}
