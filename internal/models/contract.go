package models

import (
	"time"
)

// Contract represents a contract record.
type Contract struct {
	ConID       uint      `gorm:"column:con_id;primaryKey;autoIncrement" json:"con_id"`
	ConName     string    `gorm:"size:255;not null" json:"con_name"`
	Description string    `gorm:"size:255;not null" json:"description"`
	CreateDate  time.Time `gorm:"not null" json:"create_date"`
}

// TableName overrides the table name for Contract
func (Contract) TableName() string {
	return "contract"
}

// ContractDocument links a contract to a document (many-to-many).
// Duplicate (contract_id, document_id) pairs are allowed.
type ContractDocument struct {
	ConDocID   uint      `gorm:"column:con_doc_id;primaryKey;autoIncrement" json:"con_doc_id"`
	ContractID uint      `gorm:"not null;index" json:"contract_id"`
	DocumentID uint      `gorm:"not null;index" json:"document_id"`
	Contract   Contract  `gorm:"foreignKey:ContractID;references:ConID;constraint:OnDelete:CASCADE" json:"-"`
	Document   Document  `gorm:"foreignKey:DocumentID;references:DocID;constraint:OnDelete:CASCADE" json:"-"`
	DateBind   time.Time `gorm:"not null" json:"date_bind"`
}

// TableName overrides the table name for ContractDocument
func (ContractDocument) TableName() string {
	return "contract_document"
}
