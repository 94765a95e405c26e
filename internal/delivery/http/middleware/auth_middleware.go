// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"board/internal/domain/entity"
	"board/internal/domain/service"
	"board/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// contextKeyIdentity is where the resolved identity lives on echo.Context.
const contextKeyIdentity = "identity"

// AuthMiddleware resolves the caller's identity from either supported
// credential scheme and makes it available to handlers.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// ExtractCredentials pulls the raw credential material off the request.
// A malformed Authorization header yields an empty bearer token; resolution
// then falls through to whatever else was presented.
func ExtractCredentials(c echo.Context) usecase.Credentials {
	creds := usecase.Credentials{
		ClientID:     c.Request().Header.Get("X-Client-ID"),
		ClientSecret: c.Request().Header.Get("X-Client-Secret"),
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != authHeader {
			creds.BearerToken = strings.TrimSpace(token)
		}
	}

	return creds
}

// Authenticate requires a valid identity and stores it on the context.
// Failures propagate to the error handler, which advertises both credential
// schemes when none was presented.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := m.authUsecase.Resolve(c.Request().Context(), ExtractCredentials(c))
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(contextKeyIdentity, identity)

		return next(c)
	}
}

// OptionalAuthenticate resolves the identity when credentials are present
// and valid, and proceeds anonymously otherwise. It never fails the request.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, _ := m.authUsecase.ResolveOptional(c.Request().Context(), ExtractCredentials(c))
		if identity != nil {
			c.Set(contextKeyIdentity, identity)
		}

		return next(c)
	}
}

// RequireRoles is a middleware factory gating a route on a role policy.
// It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRoles(policy entity.Roles) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := service.RequireRole(GetIdentity(c), policy); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// GetIdentity returns the resolved identity from the context, nil when the
// request is anonymous.
func GetIdentity(c echo.Context) *entity.Identity {
	identity, _ := c.Get(contextKeyIdentity).(*entity.Identity)

	return identity
}
