package dto

import "github.com/SscSPs/customer_ledger_app/internal/core/domain"

// RegisterRequest defines the data needed to register a new user.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=150"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user. The password is never returned.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.UserID,
		Username: user.Username,
	}
}
