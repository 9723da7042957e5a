package services

import (
	"context"
)

// TokenSvcFacade issues and refreshes bearer tokens.
type TokenSvcFacade interface {
	// ObtainTokenPair authenticates the credentials and issues an access and a refresh token.
	ObtainTokenPair(ctx context.Context, username, password string) (access string, refresh string, err error)

	// RefreshAccessToken validates a refresh token and issues a new access token for its subject.
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
}
