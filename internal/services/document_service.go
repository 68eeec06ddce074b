// document_service.go
//
// Document persistence: creation with owner validation, payload-free
// metadata reads, and transactional deletion with link cleanup.

package services

import (
	"errors"
	"time"

	"github.com/contractdocs/docservice/internal/models"
	"gorm.io/gorm"
)

// CreateDocument stores an uploaded document for the given owner. The owner
// must exist; a dangling user_id is rejected with ErrBadReference.
func CreateDocument(db *gorm.DB, userID uint, fileName, fileType string, fileData []byte) (*models.Document, error) {
	var exists int64
	if err := db.Model(&models.User{}).Where("id = ?", userID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrBadReference
	}

	doc := models.Document{
		FileName:   fileName,
		FileType:   fileType,
		UploadDate: time.Now().UTC(),
		UserID:     userID,
		FileData:   fileData,
	}
	if err := db.Create(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetDocumentMeta returns document metadata without the payload, or
// ErrNotFound. Smart-select against the DocumentMeta view keeps file_data
// out of the query.
func GetDocumentMeta(db *gorm.DB, docID uint) (*models.DocumentMeta, error) {
	var meta models.DocumentMeta
	err := db.Model(&models.Document{}).Where("doc_id = ?", docID).First(&meta).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meta, nil
}

// GetDocumentData returns the full document row including the payload.
func GetDocumentData(db *gorm.DB, docID uint) (*models.Document, error) {
	var doc models.Document
	err := db.Where("doc_id = ?", docID).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// ListDocumentMetas returns metadata for all documents, payloads excluded.
func ListDocumentMetas(db *gorm.DB) ([]models.DocumentMeta, error) {
	var metas []models.DocumentMeta
	if err := db.Model(&models.Document{}).Order("doc_id").Find(&metas).Error; err != nil {
		return nil, err
	}
	return metas, nil
}

// ListUserDocumentMetas returns metadata for the documents owned by userID.
func ListUserDocumentMetas(db *gorm.DB, userID uint) ([]models.DocumentMeta, error) {
	var metas []models.DocumentMeta
	err := db.Model(&models.Document{}).Where("user_id = ?", userID).Order("doc_id").Find(&metas).Error
	if err != nil {
		return nil, err
	}
	return metas, nil
}

// DeleteDocument removes a document and, in the same transaction, any
// contract links referencing it so no dangling contract_document rows
// survive. Missing id yields ErrNotFound.
func DeleteDocument(db *gorm.DB, docID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("doc_id = ?", docID).Delete(&models.Document{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("document_id = ?", docID).Delete(&models.ContractDocument{}).Error
	})
}
