// File: internal/handler/auth/auth.go
package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tutor-match/internal/api"
	"tutor-match/internal/handler"
	"tutor-match/internal/middleware"
	"tutor-match/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type sessionStore interface {
	Login(ctx context.Context, email, password string) (*service.Session, error)
	Register(ctx context.Context, in service.RegisterInput) (*service.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type tokenIssuer interface {
	Issue(sess *service.Session) (string, time.Time, error)
}

// LoginHandler 以固定示範身分建立 session，不驗證密碼
// @Summary     登入
// @Description 模擬網路延遲後建立 session 並回傳 token；任何 Email/密碼都會登入同一個示範帳號
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email    formData string true "Email"
// @Param       password formData string true "密碼（不驗證）"
// @Success     200      {object} api.SessionResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     503      {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(sessions sessionStore, tokens tokenIssuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, fmt.Sprintf("無效的表單資料: %v", err))
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		sess, err := sessions.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return issue(c, sessions, tokens, sess, http.StatusOK)
	}
}

// RegisterHandler 註冊新使用者並直接登入
// @Summary     註冊
// @Description 依序檢查：密碼需與確認密碼相同、密碼至少 8 個字元、Email 網域必須屬於已登記的大學
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name             formData string true  "姓名"
// @Param       email            formData string true  "大學 Email"
// @Param       password         formData string true  "密碼"
// @Param       confirm_password formData string true  "確認密碼"
// @Param       career           formData string false "主修"
// @Param       semester         formData int    false "學期"
// @Success     201      {object} api.SessionResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     503      {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(sessions sessionStore, tokens tokenIssuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, fmt.Sprintf("無效的表單資料: %v", err))
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		sess, err := sessions.Register(c.Request().Context(), service.RegisterInput{
			Name:            req.Name,
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			Career:          req.Career,
			Semester:        req.Semester,
		})
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return issue(c, sessions, tokens, sess, http.StatusCreated)
	}
}

// issue 發行 token；失敗時撤銷剛建立的 session
func issue(c echo.Context, sessions sessionStore, tokens tokenIssuer, sess *service.Session, status int) error {
	token, exp, err := tokens.Issue(sess)
	if err != nil {
		if lerr := sessions.Logout(c.Request().Context(), sess.ID); lerr != nil {
			log.Warn().Err(lerr).Str("session_id", sess.ID).Msg("revoke session failed")
		}
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: fmt.Sprintf("failed to issue token: %v", err)})
	}
	return c.JSON(status, api.SessionResponse{AccessToken: token, ExpiresAt: exp, User: sess.User})
}

// LogoutHandler 刪除目前的 session
// @Summary     登出
// @Tags        auth
// @Success     204 "No Content"
// @Failure     401 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/logout [post]
func LogoutHandler(sessions sessionStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, _ := middleware.Session(c)
		if claims == nil {
			return handler.ServiceError(c, service.ErrNoSession)
		}
		if err := sessions.Logout(c.Request().Context(), claims.SessionID); err != nil {
			return handler.ServiceError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
