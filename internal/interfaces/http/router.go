package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"servicedesk/internal/application/servicerequest/usecases"
	"servicedesk/internal/domain/servicerequest"
	"servicedesk/internal/infrastructure/config"
	"servicedesk/internal/infrastructure/objectstore"
	objecthandlers "servicedesk/internal/interfaces/http/handlers/objects"
	srhandlers "servicedesk/internal/interfaces/http/handlers/servicerequest"
	"servicedesk/internal/interfaces/http/middleware"
	"servicedesk/internal/interfaces/http/routes"
	"servicedesk/internal/shared/logger"
	"servicedesk/internal/shared/services/markdown"
	"servicedesk/internal/shared/utils"

	_ "servicedesk/docs"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine                *gin.Engine
	serviceRequestHandler *srhandlers.ServiceRequestHandler
	objectsHandler        *objecthandlers.ObjectsHandler
	cfg                   *config.Config
	logger                logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies. The repository
// and object store are injected so the storage driver stays a process-start
// decision.
func NewRouter(
	repo servicerequest.Repository,
	store objectstore.Store,
	notifier usecases.StatusNotifier,
	cfg *config.Config,
	log logger.Interface,
) *Router {
	engine := gin.New()

	markdownService := markdown.NewService()

	createUC := usecases.NewCreateRequestUseCase(repo, log)
	getUC := usecases.NewGetRequestUseCase(repo, log)
	listUC := usecases.NewListRequestsUseCase(repo, log)
	searchUC := usecases.NewSearchRequestsUseCase(repo, log)
	updateUC := usecases.NewUpdateRequestUseCase(repo, notifier, log)
	deleteUC := usecases.NewDeleteRequestUseCase(repo, log)
	addCommentUC := usecases.NewAddCommentUseCase(repo, markdownService, log)
	listCommentsUC := usecases.NewListCommentsUseCase(repo, markdownService, log)
	appendAttachmentsUC := usecases.NewAppendAttachmentsUseCase(repo, log)
	metricsUC := usecases.NewGetMetricsUseCase(repo, log)

	serviceRequestHandler := srhandlers.NewServiceRequestHandler(
		createUC, getUC, listUC, searchUC, updateUC,
		deleteUC, addCommentUC, listCommentsUC, appendAttachmentsUC, metricsUC,
	)
	objectsHandler := objecthandlers.NewObjectsHandler(store)

	return &Router{
		engine:                engine,
		serviceRequestHandler: serviceRequestHandler,
		objectsHandler:        objectsHandler,
		cfg:                   cfg,
		logger:                log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, gin.H{"status": "ok"})
	})

	routes.SetupServiceRequestRoutes(r.engine, &routes.ServiceRequestRouteConfig{
		ServiceRequestHandler: r.serviceRequestHandler,
	})
	routes.SetupObjectRoutes(r.engine, &routes.ObjectRouteConfig{
		ObjectsHandler: r.objectsHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
