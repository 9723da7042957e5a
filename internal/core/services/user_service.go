package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/customer_ledger_app/internal/apperrors"
	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customer_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_app/internal/dto"
	"github.com/SscSPs/customer_ledger_app/internal/utils"
	"github.com/google/uuid"
)

const duplicateUsernameMessage = "A user with that username already exists."

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	now      func() time.Time
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, now: time.Now}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	username := req.Username
	if strings.TrimSpace(username) == "" {
		return nil, apperrors.NewFieldError("username", "This field is required.")
	}
	if utf8.RuneCountInString(username) > domain.MaxUsernameLength {
		return nil, apperrors.NewFieldError("username",
			fmt.Sprintf("Ensure this field has no more than %d characters.", domain.MaxUsernameLength))
	}
	if req.Password == "" {
		return nil, apperrors.NewFieldError("password", "This field is required.")
	}
	if len(req.Password) > utils.MaxPasswordBytes {
		return nil, apperrors.NewFieldError("password",
			fmt.Sprintf("Ensure this field has no more than %d bytes.", utils.MaxPasswordBytes))
	}

	existing, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check username availability", slog.String("username", username))
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if existing != nil {
		s.LogInfo(ctx, "Registration rejected, username taken", slog.String("username", username))
		return nil, apperrors.NewFieldError("username", duplicateUsernameMessage)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a race with a concurrent registration of the same name.
			return nil, apperrors.NewFieldError("username", duplicateUsernameMessage)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if !isUUID(userID) {
		return nil, apperrors.ErrNotFound
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// AuthenticateUser reports apperrors.ErrUnauthorized for both unknown users and wrong passwords.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Login attempt for unknown user", slog.String("username", username))
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for login", slog.String("username", username))
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Login attempt with wrong password", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
