package servicerequest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicedesk/internal/application/servicerequest/usecases"
	"servicedesk/internal/shared/logger"
	"servicedesk/internal/shared/utils"
)

type ServiceRequestHandler struct {
	createRequestUC     usecases.CreateRequestExecutor
	getRequestUC        usecases.GetRequestExecutor
	listRequestsUC      usecases.ListRequestsExecutor
	searchRequestsUC    usecases.SearchRequestsExecutor
	updateRequestUC     usecases.UpdateRequestExecutor
	deleteRequestUC     usecases.DeleteRequestExecutor
	addCommentUC        usecases.AddCommentExecutor
	listCommentsUC      usecases.ListCommentsExecutor
	appendAttachmentsUC usecases.AppendAttachmentsExecutor
	getMetricsUC        usecases.GetMetricsExecutor
	logger              logger.Interface
}

func NewServiceRequestHandler(
	createRequestUC usecases.CreateRequestExecutor,
	getRequestUC usecases.GetRequestExecutor,
	listRequestsUC usecases.ListRequestsExecutor,
	searchRequestsUC usecases.SearchRequestsExecutor,
	updateRequestUC usecases.UpdateRequestExecutor,
	deleteRequestUC usecases.DeleteRequestExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	appendAttachmentsUC usecases.AppendAttachmentsExecutor,
	getMetricsUC usecases.GetMetricsExecutor,
) *ServiceRequestHandler {
	return &ServiceRequestHandler{
		createRequestUC:     createRequestUC,
		getRequestUC:        getRequestUC,
		listRequestsUC:      listRequestsUC,
		searchRequestsUC:    searchRequestsUC,
		updateRequestUC:     updateRequestUC,
		deleteRequestUC:     deleteRequestUC,
		addCommentUC:        addCommentUC,
		listCommentsUC:      listCommentsUC,
		appendAttachmentsUC: appendAttachmentsUC,
		getMetricsUC:        getMetricsUC,
		logger:              logger.NewLogger(),
	}
}

// CreateRequest handles POST /service-requests
//
//	@Summary	Create a service request
//	@Tags		service-requests
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateServiceRequestRequest	true	"service request"
//	@Success	201		{object}	dto.ServiceRequestDTO
//	@Failure	400		{object}	utils.ErrorBody
//	@Router		/service-requests [post]
func (h *ServiceRequestHandler) CreateRequest(c *gin.Context) {
	var req CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create service request", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.createRequestUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// GetRequest handles GET /service-requests/:id
//
//	@Summary	Get one service request
//	@Tags		service-requests
//	@Produce	json
//	@Param		id	path		string	true	"service request id"
//	@Success	200	{object}	dto.ServiceRequestDTO
//	@Failure	404	{object}	utils.ErrorBody
//	@Router		/service-requests/{id} [get]
func (h *ServiceRequestHandler) GetRequest(c *gin.Context) {
	result, err := h.getRequestUC.Execute(c.Request.Context(), usecases.GetRequestQuery{
		SID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListRequests handles GET /service-requests
//
//	@Summary	List all service requests, newest first
//	@Tags		service-requests
//	@Produce	json
//	@Success	200	{array}	dto.ServiceRequestDTO
//	@Router		/service-requests [get]
func (h *ServiceRequestHandler) ListRequests(c *gin.Context) {
	h.list(c, usecases.ScopeAll)
}

// ListActiveRequests handles GET /service-requests/active
//
//	@Summary	List active (not completed) service requests
//	@Tags		service-requests
//	@Produce	json
//	@Success	200	{array}	dto.ServiceRequestDTO
//	@Router		/service-requests/active [get]
func (h *ServiceRequestHandler) ListActiveRequests(c *gin.Context) {
	h.list(c, usecases.ScopeActive)
}

// ListCompletedRequests handles GET /service-requests/completed
//
//	@Summary	List completed service requests
//	@Tags		service-requests
//	@Produce	json
//	@Success	200	{array}	dto.ServiceRequestDTO
//	@Router		/service-requests/completed [get]
func (h *ServiceRequestHandler) ListCompletedRequests(c *gin.Context) {
	h.list(c, usecases.ScopeCompleted)
}

func (h *ServiceRequestHandler) list(c *gin.Context, scope usecases.ListScope) {
	result, err := h.listRequestsUC.Execute(c.Request.Context(), usecases.ListRequestsQuery{
		Scope: scope,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// SearchRequests handles GET /service-requests/search?q=
//
//	@Summary	Search service requests
//	@Tags		service-requests
//	@Produce	json
//	@Param		q	query	string	true	"search term"
//	@Success	200	{array}	dto.ServiceRequestDTO
//	@Failure	400	{object}	utils.ErrorBody
//	@Router		/service-requests/search [get]
func (h *ServiceRequestHandler) SearchRequests(c *gin.Context) {
	result, err := h.searchRequestsUC.Execute(c.Request.Context(), usecases.SearchRequestsQuery{
		Query: c.Query("q"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// UpdateRequest handles PATCH /service-requests/:id
//
//	@Summary	Partially update a service request
//	@Tags		service-requests
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"service request id"
//	@Param		request	body		UpdateServiceRequestRequest	true	"fields to update"
//	@Success	200		{object}	dto.ServiceRequestDTO
//	@Failure	404		{object}	utils.ErrorBody
//	@Router		/service-requests/{id} [patch]
func (h *ServiceRequestHandler) UpdateRequest(c *gin.Context) {
	var req UpdateServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update service request", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.updateRequestUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeleteRequest handles DELETE /service-requests/:id
//
//	@Summary	Delete a service request and its comments
//	@Tags		service-requests
//	@Param		id	path	string	true	"service request id"
//	@Success	204
//	@Failure	404	{object}	utils.ErrorBody
//	@Router		/service-requests/{id} [delete]
func (h *ServiceRequestHandler) DeleteRequest(c *gin.Context) {
	if err := h.deleteRequestUC.Execute(c.Request.Context(), usecases.DeleteRequestCommand{
		SID: c.Param("id"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListComments handles GET /service-requests/:id/comments
//
//	@Summary	List comments of a service request, oldest first
//	@Tags		service-requests
//	@Produce	json
//	@Param		id	path	string	true	"service request id"
//	@Success	200	{array}	dto.CommentDTO
//	@Router		/service-requests/{id}/comments [get]
func (h *ServiceRequestHandler) ListComments(c *gin.Context) {
	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		RequestSID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// AddComment handles POST /service-requests/:id/comments
//
//	@Summary	Add a comment to a service request
//	@Tags		service-requests
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"service request id"
//	@Param		request	body		AddCommentRequest	true	"comment"
//	@Success	201		{object}	dto.CommentDTO
//	@Failure	400		{object}	utils.ErrorBody
//	@Router		/service-requests/{id}/comments [post]
func (h *ServiceRequestHandler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		RequestSID:  c.Param("id"),
		Text:        req.Text,
		Attachments: req.Attachments,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// AppendAttachments handles POST /service-requests/:id/attachments
//
//	@Summary	Append attachment references to a service request
//	@Tags		service-requests
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"service request id"
//	@Param		request	body		AppendAttachmentsRequest	true	"attachment references"
//	@Success	200		{object}	dto.ServiceRequestDTO
//	@Failure	400		{object}	utils.ErrorBody
//	@Failure	404		{object}	utils.ErrorBody
//	@Router		/service-requests/{id}/attachments [post]
func (h *ServiceRequestHandler) AppendAttachments(c *gin.Context) {
	var req AppendAttachmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for append attachments", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.appendAttachmentsUC.Execute(c.Request.Context(), usecases.AppendAttachmentsCommand{
		SID:         c.Param("id"),
		Attachments: req.Attachments,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// GetMetrics handles GET /metrics
//
//	@Summary	Derived counters over the active workload
//	@Tags		metrics
//	@Produce	json
//	@Success	200	{object}	dto.MetricsDTO
//	@Router		/metrics [get]
func (h *ServiceRequestHandler) GetMetrics(c *gin.Context) {
	result, err := h.getMetricsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
