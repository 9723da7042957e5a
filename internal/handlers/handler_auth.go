package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/customer_ledger_app/internal/apperrors"
	portssvc "github.com/SscSPs/customer_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_app/internal/dto"
	"github.com/SscSPs/customer_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration and token issuance.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{
		userService:  us,
		tokenService: ts,
	}
}

// registerAuthRoutes sets up the public token and registration routes.
// Token issuance is rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer, tokenLimit gin.HandlerFunc) {
	h := newAuthHandler(services.User, services.Token)

	token := r.Group("/api/token")
	{
		token.POST("/", tokenLimit, h.obtainToken)
		token.POST("/refresh/", tokenLimit, h.refreshToken)
	}

	r.POST("/app/register/", h.register)
}

// obtainToken godoc
// @Summary Obtain a token pair
// @Description Exchanges a username and password for an access and a refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.TokenObtainRequest true "Login Credentials"
// @Success 200 {object} dto.TokenPairResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/token/ [post]
func (h *authHandler) obtainToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TokenObtainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	access, refresh, err := h.tokenService.ObtainTokenPair(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Token request with invalid credentials", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No active account found with the given credentials"})
			return
		}
		respondServiceError(c, logger, err, "issue token")
		return
	}

	c.JSON(http.StatusOK, dto.TokenPairResponse{Access: access, Refresh: refresh})
}

// refreshToken godoc
// @Summary Refresh an access token
// @Description Exchanges a valid refresh token for a new access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.TokenRefreshRequest true "Refresh token"
// @Success 200 {object} dto.AccessTokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/token/refresh/ [post]
func (h *authHandler) refreshToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TokenRefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	access, err := h.tokenService.RefreshAccessToken(c.Request.Context(), req.Refresh)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Refresh rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Token is invalid or expired"})
			return
		}
		respondServiceError(c, logger, err, "refresh token")
		return
	}

	c.JSON(http.StatusOK, dto.AccessTokenResponse{Access: access})
}

// register godoc
// @Summary Register new user
// @Description Creates a new user account. The new user is not logged in.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /app/register/ [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "register user")
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}
