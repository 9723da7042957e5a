package dto

// TokenObtainRequest carries the credentials exchanged for a token pair.
type TokenObtainRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenPairResponse represents the response for a successful login.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenRefreshRequest carries a refresh token to exchange for a new access token.
type TokenRefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// AccessTokenResponse represents the response for a successful token refresh.
type AccessTokenResponse struct {
	Access string `json:"access"`
}
