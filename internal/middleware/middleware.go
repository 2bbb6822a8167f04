package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"tutor-match/internal/model"
	"tutor-match/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	ContextClaimsKey = "session_claims"
	ContextUserKey   = "session_user"
)

type TokenVerifier interface {
	Verify(token string) (*service.SessionClaims, error)
}

type SessionLoader interface {
	Current(ctx context.Context, sessionID string) (*model.User, error)
}

func extractClaims(c echo.Context, tokens TokenVerifier) (*service.SessionClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := tokens.Verify(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// RequireSession 驗證 bearer token 並載入 session 使用者
// 登出後 token 仍可解析，但 session 已不存在，因此一樣回 401
func RequireSession(tokens TokenVerifier, sessions SessionLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, tokens)
			if err != nil {
				return err
			}
			user, err := sessions.Current(c.Request().Context(), claims.SessionID)
			if errors.Is(err, service.ErrNoSession) {
				return echo.NewHTTPError(http.StatusUnauthorized, service.ErrNoSession.Error())
			}
			if err != nil {
				log.Error().Err(err).Str("session_id", claims.SessionID).Msg("load session failed")
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session storage unavailable")
			}
			c.Set(ContextClaimsKey, claims)
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// Session 取出 RequireSession 放入 context 的 claims 與使用者
func Session(c echo.Context) (*service.SessionClaims, *model.User) {
	claims, _ := c.Get(ContextClaimsKey).(*service.SessionClaims)
	user, _ := c.Get(ContextUserKey).(*model.User)
	return claims, user
}
