package services

import (
	"errors"
	"time"

	"github.com/contractdocs/docservice/internal/models"
	"gorm.io/gorm"
)

// ContractLink is the joined view of a contract-document link returned by
// GetContractLink.
type ContractLink struct {
	ConDocID uint                `json:"con_doc_id"`
	DateBind time.Time           `json:"date_bind"`
	Contract models.Contract     `json:"contract"`
	Document models.DocumentMeta `json:"document"`
}

// CreateContract inserts a new contract with the creation date set.
func CreateContract(db *gorm.DB, name, description string) (*models.Contract, error) {
	contract := models.Contract{
		ConName:     name,
		Description: description,
		CreateDate:  time.Now().UTC(),
	}
	if err := db.Create(&contract).Error; err != nil {
		return nil, err
	}
	return &contract, nil
}

// GetContract returns the contract or ErrNotFound.
func GetContract(db *gorm.DB, conID uint) (*models.Contract, error) {
	var contract models.Contract
	if err := db.Where("con_id = ?", conID).First(&contract).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &contract, nil
}

// ListContracts returns all contracts.
func ListContracts(db *gorm.DB) ([]models.Contract, error) {
	var contracts []models.Contract
	if err := db.Order("con_id").Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

// DeleteContract removes a contract and its document links in one
// transaction. Missing id yields ErrNotFound.
func DeleteContract(db *gorm.DB, conID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("con_id = ?", conID).Delete(&models.Contract{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("contract_id = ?", conID).Delete(&models.ContractDocument{}).Error
	})
}

// LinkContractDocument binds a document to a contract. Both sides must
// exist; duplicate bindings of the same pair are allowed. The existence
// checks and the insert run in one transaction, and the store's foreign
// keys back them up if either side vanishes concurrently.
func LinkContractDocument(db *gorm.DB, conID, docID uint) (*models.ContractDocument, error) {
	link := models.ContractDocument{
		ContractID: conID,
		DocumentID: docID,
		DateBind:   time.Now().UTC(),
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Contract{}).Where("con_id = ?", conID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrBadReference
		}
		if err := tx.Model(&models.Document{}).Where("doc_id = ?", docID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrBadReference
		}
		if err := tx.Create(&link).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return ErrBadReference
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetContractLink reads a link row and joins in the metadata of both sides.
func GetContractLink(db *gorm.DB, conDocID uint) (*ContractLink, error) {
	var link models.ContractDocument
	if err := db.Where("con_doc_id = ?", conDocID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	contract, err := GetContract(db, link.ContractID)
	if err != nil {
		return nil, err
	}
	document, err := GetDocumentMeta(db, link.DocumentID)
	if err != nil {
		return nil, err
	}

	return &ContractLink{
		ConDocID: link.ConDocID,
		DateBind: link.DateBind,
		Contract: *contract,
		Document: *document,
	}, nil
}
