package objects

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"servicedesk/internal/infrastructure/objectstore"
	"servicedesk/internal/shared/logger"
	"servicedesk/internal/shared/utils"
)

// NormalizePathRequest is the payload for POST /normalize-path.
type NormalizePathRequest struct {
	Path string `json:"path" binding:"required"`
}

// ObjectsHandler exposes the upload flow: issue a target, receive the PUT,
// serve the bytes back, and normalize references.
type ObjectsHandler struct {
	store  objectstore.Store
	logger logger.Interface
}

func NewObjectsHandler(store objectstore.Store) *ObjectsHandler {
	return &ObjectsHandler{
		store:  store,
		logger: logger.NewLogger(),
	}
}

// IssueUploadTarget handles POST /objects/upload
//
//	@Summary	Issue an upload target for a new object
//	@Tags		objects
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	objectstore.UploadTarget
//	@Router		/objects/upload [post]
func (h *ObjectsHandler) IssueUploadTarget(c *gin.Context) {
	var req struct {
		Filename string `json:"filename"`
	}
	// Body is optional; a bare POST gets an extensionless key.
	_ = c.ShouldBindJSON(&req)

	target, err := h.store.IssueUploadTarget(req.Filename)
	if err != nil {
		h.logger.Errorw("failed to issue upload target", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, target)
}

// ReceiveUpload handles PUT /objects/upload/:key
//
//	@Summary	Receive the object bytes for a previously issued target
//	@Tags		objects
//	@Success	200	{object}	map[string]interface{}
//	@Router		/objects/upload/{key} [put]
func (h *ObjectsHandler) ReceiveUpload(c *gin.Context) {
	key := c.Param("key")

	size, err := h.store.WriteObject(key, c.Request.Body)
	if err != nil {
		h.logger.Errorw("failed to store uploaded object", "object_key", key, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{
		"objectKey": key,
		"size":      size,
	})
}

// ServeObject handles GET /objects/:key
//
//	@Summary	Serve stored object bytes
//	@Tags		objects
//	@Param		key	path	string	true	"object key"
//	@Success	200
//	@Failure	404	{object}	utils.ErrorBody
//	@Router		/objects/{key} [get]
func (h *ObjectsHandler) ServeObject(c *gin.Context) {
	key := c.Param("key")

	rc, err := h.store.OpenForReading(key)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, rc); err != nil {
		h.logger.Warnw("failed to stream object", "object_key", key, "error", err)
	}
}

// NormalizePath handles POST /normalize-path
//
//	@Summary	Normalize an attachment reference into its servable path
//	@Tags		objects
//	@Accept		json
//	@Produce	json
//	@Param		request	body		NormalizePathRequest	true	"reference to normalize"
//	@Success	200		{object}	map[string]string
//	@Router		/normalize-path [post]
func (h *ObjectsHandler) NormalizePath(c *gin.Context) {
	var req NormalizePathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	normalized, err := h.store.ResolveToServablePath(req.Path)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{
		"normalizedPath": normalized,
	})
}
