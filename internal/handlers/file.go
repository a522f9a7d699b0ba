// internal/handlers/file.go
package handlers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studyshelf/studyshelf-backend/internal/config"
	"github.com/studyshelf/studyshelf-backend/internal/i18n"
	"github.com/studyshelf/studyshelf-backend/internal/models"
	"github.com/studyshelf/studyshelf-backend/internal/services"
	"github.com/studyshelf/studyshelf-backend/internal/utils"
)

type FileHandler struct {
	fileService *services.FileService
	cfg         *config.Config
}

func NewFileHandler(fileService *services.FileService, cfg *config.Config) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		cfg:         cfg,
	}
}

// POST /files/upload
//
// Multipart form: file, type (cover_image|book), owner_kind, owner_id. The
// upload lands in a temp file first and the temp copy is removed whether or
// not the remote upload succeeds.
func (h *FileHandler) Upload(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileMissing), nil)
		return
	}

	assetType := models.AssetType(c.PostForm("type"))
	if !assetType.Valid() {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileInvalidType), nil)
		return
	}

	ownerKind := models.OwnerKind(c.PostForm("owner_kind"))
	if !ownerKind.Valid() {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "owner_kind"), nil)
		return
	}

	ownerID, err := uuid.Parse(c.PostForm("owner_id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "owner_id"), nil)
		return
	}

	if err := os.MkdirAll(h.cfg.Upload.TempDir, 0o755); err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed))
		return
	}

	tempPath := filepath.Join(h.cfg.Upload.TempDir, fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename)))
	if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed))
		return
	}
	defer os.Remove(tempPath)

	file, err := h.fileService.Upload(c.Request.Context(), &services.UploadFileRequest{
		LocalPath:    tempPath,
		OriginalName: fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Type:         assetType,
		OwnerKind:    ownerKind,
		OwnerID:      ownerID,
		UploadedByID: userID,
	})
	if err != nil {
		if strings.Contains(err.Error(), "not allowed") || strings.Contains(err.Error(), "exceeds maximum") {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed))
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
		"file":    file,
	})
}

// GET /files/download/:fileId
func (h *FileHandler) Download(c *gin.Context) {
	fileID := c.Param("fileId")
	if fileID == "" {
		utils.BadRequestResponse(c, "Invalid file ID", nil)
		return
	}

	body, name, mimeType, err := h.fileService.Download(c.Request.Context(), fileID)
	if err != nil {
		utils.NotFoundResponse(c, "file")
		return
	}
	defer body.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Content-Type", mimeType)
	if _, err := io.Copy(c.Writer, body); err != nil {
		// Headers are already out; nothing left to report
		return
	}
}

// DELETE /files/:id
//
// The path carries the remote file id, not the record id, so clients can
// delete straight from a stored book reference.
func (h *FileHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	fileID := c.Param("id")
	if fileID == "" {
		utils.BadRequestResponse(c, "Invalid file ID", nil)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	if err := h.fileService.Delete(c.Request.Context(), fileID, userID, isAdminRequest(c)); err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			utils.NotFoundResponse(c, "file")
		case strings.Contains(err.Error(), "access denied"):
			utils.ForbiddenResponse(c, "")
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFileDeleted),
	})
}

// GET /files
//
// Non-admins only see their own uploads.
func (h *FileHandler) ListFiles(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	params := utils.GetPaginationParams(c, utils.DefaultCatalogPageSize)

	ownerKind := models.OwnerKind(c.Query("owner_kind"))
	var ownerID *uuid.UUID
	if idStr := c.Query("owner_id"); idStr != "" {
		if id, err := uuid.Parse(idStr); err == nil {
			ownerID = &id
		}
	}

	var uploadedBy *uuid.UUID
	if !isAdminRequest(c) {
		uploadedBy = &userID
	}

	result, err := h.fileService.ListFiles(params, ownerKind, ownerID, uploadedBy)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, *result)
}

// GET /files/:id
func (h *FileHandler) GetFile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid file ID", nil)
		return
	}

	file, err := h.fileService.GetFile(id)
	if err != nil {
		utils.NotFoundResponse(c, "file")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}
	if file.UploadedByID != userID && !isAdminRequest(c) {
		utils.ForbiddenResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{"file": file})
}

// PUT /files/:id
func (h *FileHandler) UpdateFile(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid file ID", nil)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.UpdateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	file, err := h.fileService.UpdateFile(id, &req, userID, isAdminRequest(c))
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			utils.NotFoundResponse(c, "file")
		case strings.Contains(err.Error(), "access denied"):
			utils.ForbiddenResponse(c, "")
		case strings.Contains(err.Error(), "invalid"):
			utils.BadRequestResponse(c, err.Error(), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{"file": file})
}
