package routes

import (
	"github.com/gin-gonic/gin"

	objecthandlers "servicedesk/internal/interfaces/http/handlers/objects"
)

type ObjectRouteConfig struct {
	ObjectsHandler *objecthandlers.ObjectsHandler
}

func SetupObjectRoutes(engine *gin.Engine, config *ObjectRouteConfig) {
	objects := engine.Group("/objects")
	{
		objects.POST("/upload", config.ObjectsHandler.IssueUploadTarget)
		objects.PUT("/upload/:key", config.ObjectsHandler.ReceiveUpload)
		objects.GET("/:key", config.ObjectsHandler.ServeObject)
	}

	engine.POST("/normalize-path", config.ObjectsHandler.NormalizePath)
}
