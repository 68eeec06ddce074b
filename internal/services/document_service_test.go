package services_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/contractdocs/docservice/internal/models"
	"github.com/contractdocs/docservice/internal/services"
)

func TestCreateAndGetDocument(t *testing.T) {
	db := setupTestDB(t)
	user, _ := services.RegisterUser(db, "alice", "alice@example.com", "digest")

	doc, err := services.CreateDocument(db, user.ID, "report.pdf", "application/pdf", []byte("pdf bytes"))
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}
	if doc.DocID == 0 {
		t.Fatal("Expected a persisted doc id")
	}
	if doc.UploadDate.IsZero() {
		t.Error("Expected upload date to be set at creation")
	}

	meta, err := services.GetDocumentMeta(db, doc.DocID)
	if err != nil {
		t.Fatalf("GetDocumentMeta failed: %v", err)
	}
	if meta.FileName != "report.pdf" || meta.FileType != "application/pdf" {
		t.Errorf("Metadata mismatch: %+v", meta)
	}
	if meta.UserID != user.ID {
		t.Errorf("Expected owner %d, got %d", user.ID, meta.UserID)
	}
}

func TestCreateDocumentUnknownOwner(t *testing.T) {
	db := setupTestDB(t)

	if _, err := services.CreateDocument(db, 42, "report.pdf", "application/pdf", []byte("x")); !errors.Is(err, services.ErrBadReference) {
		t.Errorf("Expected ErrBadReference for unknown owner, got %v", err)
	}
}

func TestGetDocumentData(t *testing.T) {
	db := setupTestDB(t)
	user, _ := services.RegisterUser(db, "alice", "alice@example.com", "digest")

	payload := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0x01}
	doc, err := services.CreateDocument(db, user.ID, "blob.bin", "application/octet-stream", payload)
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}

	stored, err := services.GetDocumentData(db, doc.DocID)
	if err != nil {
		t.Fatalf("GetDocumentData failed: %v", err)
	}
	if !bytes.Equal(stored.FileData, payload) {
		t.Error("Stored payload does not match the uploaded bytes")
	}
}

func TestListDocumentMetas(t *testing.T) {
	db := setupTestDB(t)
	alice, _ := services.RegisterUser(db, "alice", "alice@example.com", "digest")
	bob, _ := services.RegisterUser(db, "bob", "bob@example.com", "digest")

	if _, err := services.CreateDocument(db, alice.ID, "a.txt", "text/plain", []byte("a")); err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}
	if _, err := services.CreateDocument(db, bob.ID, "b.txt", "text/plain", []byte("b")); err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}

	all, err := services.ListDocumentMetas(db)
	if err != nil {
		t.Fatalf("ListDocumentMetas failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 documents, got %d", len(all))
	}

	mine, err := services.ListUserDocumentMetas(db, alice.ID)
	if err != nil {
		t.Fatalf("ListUserDocumentMetas failed: %v", err)
	}
	if len(mine) != 1 || mine[0].FileName != "a.txt" {
		t.Errorf("Expected only alice's document, got %+v", mine)
	}
}

func TestDeleteDocumentTwice(t *testing.T) {
	db := setupTestDB(t)
	user, _ := services.RegisterUser(db, "alice", "alice@example.com", "digest")
	doc, _ := services.CreateDocument(db, user.ID, "a.txt", "text/plain", []byte("a"))

	if err := services.DeleteDocument(db, doc.DocID); err != nil {
		t.Fatalf("First delete failed: %v", err)
	}
	if err := services.DeleteDocument(db, doc.DocID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDeleteDocumentRemovesLinks(t *testing.T) {
	db := setupTestDB(t)
	user, _ := services.RegisterUser(db, "alice", "alice@example.com", "digest")
	doc, _ := services.CreateDocument(db, user.ID, "a.txt", "text/plain", []byte("a"))
	contract, _ := services.CreateContract(db, "lease", "office lease")

	if _, err := services.LinkContractDocument(db, contract.ConID, doc.DocID); err != nil {
		t.Fatalf("LinkContractDocument failed: %v", err)
	}

	if err := services.DeleteDocument(db, doc.DocID); err != nil {
		t.Fatalf("DeleteDocument failed: %v", err)
	}

	var remaining int64
	if err := db.Model(&models.ContractDocument{}).Where("document_id = ?", doc.DocID).Count(&remaining).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if remaining != 0 {
		t.Errorf("Expected no dangling links, found %d", remaining)
	}
}
