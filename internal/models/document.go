package models

import (
	"time"
)

// Document represents an uploaded binary document owned by a user.
// FileData is immutable after creation.
type Document struct {
	DocID      uint      `gorm:"column:doc_id;primaryKey;autoIncrement"`
	FileName   string    `gorm:"size:255;not null"`
	FileType   string    `gorm:"size:255;not null"`
	UploadDate time.Time `gorm:"not null"`
	UserID     uint      `gorm:"not null;index"`
	User       User      `gorm:"foreignKey:UserID;references:ID"`
	FileData   []byte    `gorm:"not null"`
}

// TableName overrides the table name for Document
func (Document) TableName() string {
	return "documents"
}

// DocumentMeta is the partial view of Document used by list and metadata
// reads. It deliberately omits FileData so GORM smart-select never fetches
// the payload column on those paths.
type DocumentMeta struct {
	DocID      uint      `json:"doc_id" gorm:"column:doc_id"`
	FileName   string    `json:"file_name"`
	FileType   string    `json:"file_type"`
	UploadDate time.Time `json:"upload_date"`
	UserID     uint      `json:"user_id"`
}

// TableName maps the view onto the documents table
func (DocumentMeta) TableName() string {
	return "documents"
}
