package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-onboarding-api/internal/dto"
	apierrors "github.com/yukikurage/hr-onboarding-api/internal/errors"
	"github.com/yukikurage/hr-onboarding-api/internal/middleware"
	"github.com/yukikurage/hr-onboarding-api/internal/services"
	"github.com/yukikurage/hr-onboarding-api/internal/utils"
)

// DocumentHandler coordinates document upload and verification handlers.
type DocumentHandler struct {
	docService *services.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(docService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
	}
}

// List returns documents visible to the caller: HR sees everything,
// employees see only their own.
func (h *DocumentHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)

	docs, total, err := h.docService.List(c.Request.Context(), principal, params.Offset, params.PageSize)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentListResponse(docs, params.Page, params.PageSize, total))
}

// Upload receives a multipart file plus a document_type form field and
// records the document in pending verification status.
func (h *DocumentHandler) Upload(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "File is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apierrors.BadRequest(c, "File is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	var taskID *string
	if v := c.PostForm("task_id"); v != "" {
		taskID = &v
	}

	doc, err := h.docService.Upload(c.Request.Context(), services.UploadInput{
		EmployeeID:   principal.ID,
		DocumentType: c.PostForm("document_type"),
		Filename:     fileHeader.Filename,
		Content:      content,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		TaskID:       taskID,
	})
	if err != nil {
		respondDocumentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.DocumentUploadResponse{
		Message:    "Document uploaded successfully",
		DocumentID: doc.ID,
	})
}

// Verify transitions a pending document to approved or rejected. HR only.
func (h *DocumentHandler) Verify(c *gin.Context) {
	type VerifyRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	doc, err := h.docService.Verify(c.Request.Context(), c.Param("document_id"), req.Status)
	if err != nil {
		respondDocumentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentDTO(*doc))
}

func respondDocumentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDocumentType),
		errors.Is(err, services.ErrInvalidVerdict),
		errors.Is(err, services.ErrFilenameRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDocumentNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyVerified):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrStorageFailure):
		apierrors.InternalError(c, services.ErrStorageFailure.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
