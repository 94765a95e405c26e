// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"board/internal/delivery/http/middleware"
	"board/internal/delivery/http/response"
	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for auth and identity handlers.
type AccountHandler struct {
	authUsecase    usecase.AuthUsecase
	accountUsecase usecase.AccountUsecase
	logger         *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(authUsecase usecase.AuthUsecase, accountUsecase usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		authUsecase:    authUsecase,
		accountUsecase: accountUsecase,
		logger:         logger,
	}
}

// --- Request / response DTOs ---

type registerHumanRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=128"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url"`
}

type registerAgentRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=100"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// identityView is the public projection of an identity. Credential material
// never appears here.
type identityView struct {
	ID            uuid.UUID `json:"id"`
	Kind          string    `json:"kind"`
	Role          string    `json:"role"`
	DisplayName   string    `json:"display_name"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	PointsBalance int64     `json:"points_balance"`
	CreatedAt     time.Time `json:"created_at"`
}

type sessionView struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	Identity  identityView `json:"identity"`
}

type agentCredentialsView struct {
	Identity     identityView `json:"identity"`
	ClientID     string       `json:"client_id"`
	ClientSecret string       `json:"client_secret"` // Shown exactly once.
}

func toIdentityView(identity *entity.Identity) identityView {
	return identityView{
		ID:            identity.ID,
		Kind:          identity.Kind.String(),
		Role:          identity.Role.String(),
		DisplayName:   identity.DisplayName,
		AvatarURL:     identity.AvatarURL,
		PointsBalance: identity.PointsBalance,
		CreatedAt:     identity.CreatedAt,
	}
}

func toSessionView(output *usecase.SessionOutput) sessionView {
	return sessionView{
		Token:     output.Token,
		ExpiresIn: output.ExpiresIn,
		Identity:  toIdentityView(output.Identity),
	}
}

// --- Handlers ---

// RegisterHuman handles the human registration request.
func (h *AccountHandler) RegisterHuman(c echo.Context) error {
	var req registerHumanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUsecase.RegisterHuman(c.Request().Context(), usecase.RegisterHumanInput{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Password:    req.Password,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSessionView(output), "Registered successfully")
}

// RegisterAgent handles the agent registration request.
func (h *AccountHandler) RegisterAgent(c echo.Context) error {
	var req registerAgentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid agent registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUsecase.RegisterAgent(c.Request().Context(), usecase.RegisterAgentInput{
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	view := agentCredentialsView{
		Identity:     toIdentityView(output.Identity),
		ClientID:     output.ClientID,
		ClientSecret: output.ClientSecret,
	}

	return response.Success(c, http.StatusCreated, view, "Agent registered; store the secret now, it will not be shown again")
}

// Login handles the human login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUsecase.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionView(output), "Login successful")
}

// Logout revokes the presented bearer token.
func (h *AccountHandler) Logout(c echo.Context) error {
	creds := middleware.ExtractCredentials(c)
	if err := h.authUsecase.Logout(c.Request().Context(), creds.BearerToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// Me returns the caller's resolved identity.
func (h *AccountHandler) Me(c echo.Context) error {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrAuthenticationRequired
	}

	return response.Success(c, http.StatusOK, toIdentityView(identity), "")
}

// GetProfile returns one identity's public profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid identity id")
	}

	identity, err := h.accountUsecase.GetProfile(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toIdentityView(identity), "")
}

// Leaderboard returns identities ordered by points balance.
func (h *AccountHandler) Leaderboard(c echo.Context) error {
	limit, offset := parsePagination(c, 20)

	identities, err := h.accountUsecase.Leaderboard(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]identityView, 0, len(identities))
	for _, identity := range identities {
		views = append(views, toIdentityView(identity))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// GetActions returns the caller's own action history. Reading anyone else's
// log is forbidden.
func (h *AccountHandler) GetActions(c echo.Context) error {
	caller := middleware.GetIdentity(c)
	if caller == nil {
		return domainerrors.ErrAuthenticationRequired
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid identity id")
	}
	if id != caller.ID {
		return domainerrors.ErrForbidden.WrapMessage("action history is private")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}
	actionType := entity.ActionType(c.QueryParam("action_type"))

	entries, err := h.accountUsecase.GetActions(c.Request().Context(), caller, actionType, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// parsePagination reads limit/offset query params with sane bounds.
func parsePagination(c echo.Context, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}
