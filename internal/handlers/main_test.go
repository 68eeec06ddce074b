// main_test.go
//
// Shared test fixtures for the handler tests: app construction over an
// in-memory database plus request helpers.

package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/contractdocs/docservice/internal/auth"
	"github.com/contractdocs/docservice/internal/handlers"
	"github.com/contractdocs/docservice/internal/middleware"
	"github.com/contractdocs/docservice/internal/models"
	"github.com/contractdocs/docservice/internal/utils"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "handlers-test-secret"

// testEnv bundles the app under test with its database and token service.
type testEnv struct {
	app    *fiber.App
	db     *gorm.DB
	tokens *auth.TokenService
}

// setupTestApp builds a Fiber app with the full route table over an
// in-memory SQLite database.
func setupTestApp(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// In-memory SQLite is per-connection; keep the pool at one
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Document{},
		&models.Contract{},
		&models.ContractDocument{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	hasher := auth.NewPasswordHasher(4)
	tokens := auth.NewTokenService(testSecret, 30*time.Minute)

	authHandler := handlers.NewAuthHandler(db, hasher, tokens)
	docHandler := &handlers.DocumentHandler{DB: db}
	contractHandler := &handlers.ContractHandler{DB: db}
	requireBearer := middleware.RequireBearer(tokens)

	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler})
	app.Post("/register/", authHandler.Register)
	app.Post("/token", authHandler.Token)
	app.Get("/protected/", requireBearer, authHandler.Protected)

	api := app.Group("/api/v1")
	dbo := api.Group("/DBO")
	dbo.Post("/upload/", requireBearer, docHandler.Upload)
	dbo.Get("/documents/:doc_id", docHandler.GetDocument)

	abs := api.Group("/ABS")
	abs.Get("/all_documents", docHandler.AllDocuments)
	abs.Get("/documents/:doc_id", docHandler.GetDocumentDetail)
	abs.Get("/documents/:doc_id/download", docHandler.DownloadDocument)
	abs.Get("/client_documents/", requireBearer, docHandler.ClientDocuments)
	abs.Delete("/documents/:doc_id", docHandler.DeleteDocument)

	sm := api.Group("/SM")
	sm.Post("/create_contract", contractHandler.CreateContract)
	sm.Get("/get_contract/:con_id", contractHandler.GetContract)
	sm.Get("/get_all_contract", contractHandler.GetAllContracts)
	sm.Delete("/delete_contract", contractHandler.DeleteContract)
	sm.Post("/connect_contract_document", contractHandler.ConnectContractDocument)
	sm.Get("/read_contract_document", contractHandler.ReadContractDocument)

	return &testEnv{app: app, db: db, tokens: tokens}
}

// postForm sends a form-encoded POST request to the app.
func postForm(t *testing.T, env *testEnv, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return resp
}

// registerTestUser registers a user through the API and returns a valid
// bearer token for it.
func registerTestUser(t *testing.T, env *testEnv, username string) string {
	t.Helper()
	resp := postForm(t, env, "/register/", url.Values{
		"username": {username},
		"email":    {username + "@example.com"},
		"password": {"password123"},
	})
	if resp.StatusCode != 200 {
		t.Fatalf("Registration of %q failed with status %d", username, resp.StatusCode)
	}

	token, err := env.tokens.Issue(username)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return token
}

// decodeJSON decodes a response body into a generic map.
func decodeJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return result
}

// readBody reads a response body as a string.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	return string(body)
}
