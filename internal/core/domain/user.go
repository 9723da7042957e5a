package domain

// User represents a registered user of the application in the domain.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	AuditFields
}

// MaxUsernameLength mirrors the username column width.
const MaxUsernameLength = 150
