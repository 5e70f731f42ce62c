package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kenji-One/tikd-api/internal/uploads"
	"github.com/Kenji-One/tikd-api/pkg/response"
)

// UploadHandler handles direct-upload signing requests
type UploadHandler struct {
	signer *uploads.Signer
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(signer *uploads.Signer) *UploadHandler {
	return &UploadHandler{signer: signer}
}

// Sign handles signing a Cloudinary direct upload
// GET /api/v1/uploads/sign
func (h *UploadHandler) Sign(c *gin.Context) {
	params := map[string]string{
		"public_id": c.Query("public_id"),
		"overwrite": c.Query("overwrite"),
		"folder":    c.Query("folder"),
	}

	c.JSON(http.StatusOK, response.Success(h.signer.Sign(params)))
}
