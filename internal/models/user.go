package models

// User represents a registered account able to authenticate and own documents.
type User struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	Username       string `gorm:"size:255;not null;uniqueIndex"`
	Email          string `gorm:"size:255;not null"`
	PasswordHashed string `gorm:"column:password_hashed;size:255"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
