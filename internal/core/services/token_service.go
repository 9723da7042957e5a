package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/customer_ledger_app/internal/apperrors"
	portssvc "github.com/SscSPs/customer_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_app/internal/platform/config"
	"github.com/SscSPs/customer_ledger_app/internal/utils"
)

// tokenService issues access/refresh JWT pairs. Refresh tokens are signed with their own secret.
type tokenService struct {
	BaseService
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userService: userService,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) ObtainTokenPair(ctx context.Context, username, password string) (string, string, error) {
	user, err := s.userService.AuthenticateUser(ctx, username, password)
	if err != nil {
		return "", "", err
	}

	access, err := s.generateAccessToken(user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", "", err
	}

	refresh, err := utils.GenerateJWT(user.UserID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer, utils.RefreshTokenType)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate refresh token", slog.String("user_id", user.UserID))
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	s.LogInfo(ctx, "Token pair issued", slog.String("user_id", user.UserID))
	return access, refresh, nil
}

func (s *tokenService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(refreshToken, s.cfg.RefreshTokenSecret, utils.RefreshTokenType)
	if err != nil {
		s.LogDebug(ctx, "Rejected refresh token", slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: refresh token is invalid or expired", apperrors.ErrUnauthorized)
	}

	// The subject may have been deleted since the refresh token was issued.
	if _, err := s.userService.GetUserByID(ctx, claims.Subject); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: user no longer exists", apperrors.ErrUnauthorized)
		}
		return "", err
	}

	access, err := s.generateAccessToken(claims.Subject)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", claims.Subject))
		return "", err
	}
	return access, nil
}

func (s *tokenService) generateAccessToken(userID string) (string, error) {
	token, err := utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, utils.AccessTokenType)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, nil
}
