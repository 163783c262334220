package http

import (
	"strings"

	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	identityKey = "parcelhub.identity"
	accountKey  = "parcelhub.account"
)

// authenticate requires "Authorization: Bearer <token>". A missing or
// malformed header is 401; a token the identity gateway rejects is 403.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return errs.NewUnauthorizedError("authorization header is required")
		}

		scheme, token, found := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return errs.NewUnauthorizedError("authorization header must be a bearer token")
		}

		identity, err := s.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			s.log.Debug("token rejected", zap.Error(err))
			return errs.NewForbiddenErrorWithCause("use this token", err)
		}

		c.Set(identityKey, identity)
		return next(c)
	}
}

// requireRole lets the request through when the caller's stored role is one
// of roles. With no roles any existing account passes.
func (s *Server) requireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, err := s.authority.RequireRole(c.Request().Context(), identityOf(c), roles...)
			if err != nil {
				return err
			}
			c.Set(accountKey, account)
			return next(c)
		}
	}
}

func identityOf(c echo.Context) user.Identity {
	identity, _ := c.Get(identityKey).(user.Identity)
	return identity
}

func accountOf(c echo.Context) *user.User {
	account, _ := c.Get(accountKey).(*user.User)
	return account
}
