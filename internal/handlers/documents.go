// documents.go
//
// Handlers for the DBO and ABS document route groups: upload, metadata
// reads, payload download, owner listings, and deletion.

package handlers

import (
	"errors"
	"io"
	"mime"

	"github.com/contractdocs/docservice/internal/database"
	"github.com/contractdocs/docservice/internal/middleware"
	"github.com/contractdocs/docservice/internal/services"
	"github.com/contractdocs/docservice/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DocumentHandler handles the DBO and ABS document route groups.
type DocumentHandler struct {
	DB *gorm.DB
}

// Upload handles POST /api/v1/DBO/upload/
// @Summary Upload a document
// @Description Store a multipart file as a document owned by the caller
// @Tags DBO
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /api/v1/DBO/upload/ [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	db := database.Session(c.UserContext(), h.DB)

	owner, err := services.FindUserByUsername(db, middleware.Username(c))
	if err != nil {
		return utils.UnauthenticatedResponse(c, "User not found in token")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, "Missing file upload", fiber.StatusBadRequest, "documents.upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, "Unreadable file upload", fiber.StatusBadRequest, "documents.upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return utils.ErrorResponse(c, "Unreadable file upload", fiber.StatusBadRequest, "documents.upload")
	}

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}

	doc, err := services.CreateDocument(db, owner.ID, fileHeader.Filename, contentType, data)
	if err != nil {
		return utils.ErrorResponse(c, "Upload failed", fiber.StatusInternalServerError, "documents.upload")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"doc_id":      doc.DocID,
		"file_name":   doc.FileName,
		"file_type":   doc.FileType,
		"upload_date": doc.UploadDate,
	})
}

// GetDocument handles GET /api/v1/DBO/documents/:doc_id
// @Summary Get document metadata
// @Tags DBO
// @Produce json
// @Param doc_id path int true "Document ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/v1/DBO/documents/{doc_id} [get]
func (h *DocumentHandler) GetDocument(c *fiber.Ctx) error {
	docID, err := paramID(c, "doc_id")
	if err != nil {
		return utils.NotFoundResponse(c, "Document not found")
	}

	db := database.Session(c.UserContext(), h.DB)
	meta, err := services.GetDocumentMeta(db, docID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Document not found")
		}
		return utils.ErrorResponse(c, "Lookup failed", fiber.StatusInternalServerError, "documents.get")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"doc_id":      meta.DocID,
		"file_name":   meta.FileName,
		"file_type":   meta.FileType,
		"upload_date": meta.UploadDate,
	})
}

// AllDocuments handles GET /api/v1/ABS/all_documents
// @Summary List all documents
// @Description List metadata for every document; payload bytes are never included
// @Tags ABS
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/ABS/all_documents [get]
func (h *DocumentHandler) AllDocuments(c *fiber.Ctx) error {
	db := database.Session(c.UserContext(), h.DB)
	metas, err := services.ListDocumentMetas(db)
	if err != nil {
		return utils.ErrorResponse(c, "Listing failed", fiber.StatusInternalServerError, "documents.list")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"document_list": metas})
}

// GetDocumentDetail handles GET /api/v1/ABS/documents/:doc_id
// @Summary Get document metadata including owner
// @Tags ABS
// @Produce json
// @Param doc_id path int true "Document ID"
// @Success 200 {object} models.DocumentMeta
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/v1/ABS/documents/{doc_id} [get]
func (h *DocumentHandler) GetDocumentDetail(c *fiber.Ctx) error {
	docID, err := paramID(c, "doc_id")
	if err != nil {
		return utils.NotFoundResponse(c, "Document not found")
	}

	db := database.Session(c.UserContext(), h.DB)
	meta, err := services.GetDocumentMeta(db, docID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Document not found")
		}
		return utils.ErrorResponse(c, "Lookup failed", fiber.StatusInternalServerError, "documents.get")
	}

	return c.Status(fiber.StatusOK).JSON(meta)
}

// DownloadDocument handles GET /api/v1/ABS/documents/:doc_id/download
// @Summary Download document bytes
// @Tags ABS
// @Produce octet-stream
// @Param doc_id path int true "Document ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/v1/ABS/documents/{doc_id}/download [get]
func (h *DocumentHandler) DownloadDocument(c *fiber.Ctx) error {
	docID, err := paramID(c, "doc_id")
	if err != nil {
		return utils.NotFoundResponse(c, "Document not found")
	}

	db := database.Session(c.UserContext(), h.DB)
	doc, err := services.GetDocumentData(db, docID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Document not found")
		}
		return utils.ErrorResponse(c, "Lookup failed", fiber.StatusInternalServerError, "documents.download")
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName})
	if disposition == "" {
		disposition = `attachment; filename="document"`
	}
	c.Set(fiber.HeaderContentType, doc.FileType)
	c.Set(fiber.HeaderContentDisposition, disposition)
	return c.Status(fiber.StatusOK).Send(doc.FileData)
}

// ClientDocuments handles GET /api/v1/ABS/client_documents/
// @Summary List the caller's documents
// @Tags ABS
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /api/v1/ABS/client_documents/ [get]
func (h *DocumentHandler) ClientDocuments(c *fiber.Ctx) error {
	db := database.Session(c.UserContext(), h.DB)

	owner, err := services.FindUserByUsername(db, middleware.Username(c))
	if err != nil {
		return utils.UnauthenticatedResponse(c, "User not found in token")
	}

	metas, err := services.ListUserDocumentMetas(db, owner.ID)
	if err != nil {
		return utils.ErrorResponse(c, "Listing failed", fiber.StatusInternalServerError, "documents.list")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"document_list": metas})
}

// DeleteDocument handles DELETE /api/v1/ABS/documents/:doc_id
// @Summary Delete a document
// @Description Remove a document and any contract links referencing it
// @Tags ABS
// @Produce json
// @Param doc_id path int true "Document ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/v1/ABS/documents/{doc_id} [delete]
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	docID, err := paramID(c, "doc_id")
	if err != nil {
		return utils.NotFoundResponse(c, "Document not found")
	}

	db := database.Session(c.UserContext(), h.DB)
	if err := services.DeleteDocument(db, docID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Document not found")
		}
		return utils.ErrorResponse(c, "Delete failed", fiber.StatusInternalServerError, "documents.delete")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"detail": "Document deleted successfully"})
}
