package domain

// Customer is an entry in a user's address book that ledger entries are recorded against.
type Customer struct {
	CustomerID string  `json:"customerID"` // Primary Key (UUID)
	UserID     string  `json:"userID"`     // Owner, FK -> users.user_id
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Address    *string `json:"address"` // Nullable
	AuditFields
}

const (
	MaxCustomerNameLength  = 100
	MaxCustomerPhoneLength = 20
)
