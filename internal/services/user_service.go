package services

import (
	"errors"

	"github.com/contractdocs/docservice/internal/auth"
	"github.com/contractdocs/docservice/internal/models"
	"gorm.io/gorm"
)

// RegisterUser creates a new user with a pre-hashed password. The unique
// index on username makes the insert the conflict check: a duplicate fails
// atomically instead of racing a read-then-write.
func RegisterUser(db *gorm.DB, username, email, passwordHashed string) (*models.User, error) {
	user := models.User{
		Username:       username,
		Email:          email,
		PasswordHashed: passwordHashed,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByUsername returns the user record or ErrNotFound.
func FindUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser verifies credentials and returns the user on success.
// Unknown usernames and wrong passwords both map to
// auth.ErrInvalidCredentials so callers cannot distinguish them.
func AuthenticateUser(db *gorm.DB, hasher *auth.PasswordHasher, username, password string) (*models.User, error) {
	user, err := FindUserByUsername(db, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := hasher.Verify(password, user.PasswordHashed); err != nil {
		return nil, auth.ErrInvalidCredentials
	}
	return user, nil
}
