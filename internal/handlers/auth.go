package handlers

import (
	"errors"

	"github.com/contractdocs/docservice/internal/auth"
	"github.com/contractdocs/docservice/internal/database"
	"github.com/contractdocs/docservice/internal/middleware"
	"github.com/contractdocs/docservice/internal/services"
	"github.com/contractdocs/docservice/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthHandler handles registration, login, and the protected probe route.
type AuthHandler struct {
	DB       *gorm.DB
	Hasher   *auth.PasswordHasher
	Tokens   *auth.TokenService
	validate *validator.Validate
}

// NewAuthHandler wires the auth routes' dependencies.
func NewAuthHandler(db *gorm.DB, hasher *auth.PasswordHasher, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		DB:       db,
		Hasher:   hasher,
		Tokens:   tokens,
		validate: validator.New(),
	}
}

type registerInput struct {
	Username string `validate:"required,max=255"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
}

// param reads a request parameter from the form body, falling back to the
// query string.
func param(c *fiber.Ctx, name string) string {
	if v := c.FormValue(name); v != "" {
		return v
	}
	return c.Query(name)
}

// Register handles POST /register/
// @Summary Register a new user
// @Description Create a user account with a unique username
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /register/ [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	input := registerInput{
		Username: param(c, "username"),
		Email:    param(c, "email"),
		Password: param(c, "password"),
	}
	if err := h.validate.Struct(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid registration input", fiber.StatusBadRequest, "auth.register")
	}

	hashed, err := h.Hasher.Hash(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, "Registration failed", fiber.StatusInternalServerError, "auth.register")
	}

	db := database.Session(c.UserContext(), h.DB)
	if _, err := services.RegisterUser(db, input.Username, input.Email, hashed); err != nil {
		if errors.Is(err, services.ErrConflict) {
			return utils.ErrorResponse(c, "Existing", fiber.StatusBadRequest, "auth.register")
		}
		return utils.ErrorResponse(c, "Registration failed", fiber.StatusInternalServerError, "auth.register")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "Success"})
}

// Token handles POST /token
// @Summary Issue an access token
// @Description Exchange username/password credentials for a bearer token
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	username := param(c, "username")
	password := param(c, "password")

	db := database.Session(c.UserContext(), h.DB)
	user, err := services.AuthenticateUser(db, h.Hasher, username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.UnauthenticatedResponse(c, "Incorrect username or password")
		}
		return utils.ErrorResponse(c, "Login failed", fiber.StatusInternalServerError, "auth.token")
	}

	token, err := h.Tokens.Issue(user.Username)
	if err != nil {
		return utils.ErrorResponse(c, "Login failed", fiber.StatusInternalServerError, "auth.token")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Protected handles GET /protected/
// @Summary Probe bearer authentication
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /protected/ [get]
func (h *AuthHandler) Protected(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg": "Welcome, " + middleware.Username(c) + "!",
	})
}
