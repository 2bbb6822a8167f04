package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tutor-match/internal/middleware"
	"tutor-match/internal/model"
	"tutor-match/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	LoginFn    func(ctx context.Context, email, password string) (*service.Session, error)
	RegisterFn func(ctx context.Context, in service.RegisterInput) (*service.Session, error)
	LogoutFn   func(ctx context.Context, sessionID string) error
}

func (f *fakeSessions) Login(ctx context.Context, email, password string) (*service.Session, error) {
	return f.LoginFn(ctx, email, password)
}

func (f *fakeSessions) Register(ctx context.Context, in service.RegisterInput) (*service.Session, error) {
	return f.RegisterFn(ctx, in)
}

func (f *fakeSessions) Logout(ctx context.Context, sessionID string) error {
	return f.LogoutFn(ctx, sessionID)
}

type fakeTokens struct{ err error }

func (f fakeTokens) Issue(sess *service.Session) (string, time.Time, error) {
	if f.err != nil {
		return "", time.Time{}, f.err
	}
	return "tok-" + sess.ID, time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), nil
}

type structValidator struct{ v *validator.Validate }

func (s structValidator) Validate(i any) error { return s.v.Struct(i) }

type errBinder struct{}

func (errBinder) Bind(any, echo.Context) error { return errors.New("bind") }

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = structValidator{v: validator.New()}
	return e
}

func newFormCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginHandler(t *testing.T) {
	sessions := &fakeSessions{LoginFn: func(_ context.Context, email, _ string) (*service.Session, error) {
		return &service.Session{ID: "s1", User: service.MockUser()}, nil
	}}

	t.Run("bind error", func(t *testing.T) {
		e := newEcho()
		e.Binder = errBinder{}
		ctx, rec := newFormCtx(e, "")
		require.NoError(t, LoginHandler(sessions, fakeTokens{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		ctx, rec := newFormCtx(newEcho(), "email=nope&password=x")
		require.NoError(t, LoginHandler(sessions, fakeTokens{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		ctx, rec := newFormCtx(newEcho(), "email=a@pucp.edu.pe&password=whatever")
		require.NoError(t, LoginHandler(sessions, fakeTokens{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"access_token":"tok-s1"`)
		require.Contains(t, rec.Body.String(), "María García")
	})

	t.Run("cancelled", func(t *testing.T) {
		failing := &fakeSessions{LoginFn: func(context.Context, string, string) (*service.Session, error) {
			return nil, context.Canceled
		}}
		ctx, rec := newFormCtx(newEcho(), "email=a@pucp.edu.pe&password=x")
		require.NoError(t, LoginHandler(failing, fakeTokens{})(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("token failure revokes session", func(t *testing.T) {
		revoked := ""
		s := &fakeSessions{
			LoginFn:  sessions.LoginFn,
			LogoutFn: func(_ context.Context, sid string) error { revoked = sid; return nil },
		}
		ctx, rec := newFormCtx(newEcho(), "email=a@pucp.edu.pe&password=x")
		require.NoError(t, LoginHandler(s, fakeTokens{err: errors.New("no secret")})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "s1", revoked)
	})
}

func TestRegisterHandler(t *testing.T) {
	var got service.RegisterInput
	sessions := &fakeSessions{RegisterFn: func(_ context.Context, in service.RegisterInput) (*service.Session, error) {
		got = in
		if _, err := service.ValidateRegistration(in); err != nil {
			return nil, err
		}
		return &service.Session{ID: "s2", User: model.User{ID: "user-1", Level: model.LevelBronze}}, nil
	}}

	t.Run("created", func(t *testing.T) {
		ctx, rec := newFormCtx(newEcho(), "name=Lucia&email=a@pucp.edu.pe&password=password1&confirm_password=password1&semester=2")
		require.NoError(t, RegisterHandler(sessions, fakeTokens{})(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "password1", got.ConfirmPassword)
		require.Equal(t, 2, got.Semester)
		require.Contains(t, rec.Body.String(), `"level":"Bronze"`)
	})

	t.Run("unknown university", func(t *testing.T) {
		ctx, rec := newFormCtx(newEcho(), "name=X&email=a@gmail.com&password=password1&confirm_password=password1")
		require.NoError(t, RegisterHandler(sessions, fakeTokens{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "email domain does not belong to a registered university")
	})

	t.Run("mismatch", func(t *testing.T) {
		ctx, rec := newFormCtx(newEcho(), "name=X&email=a@pucp.edu.pe&password=password1&confirm_password=password2")
		require.NoError(t, RegisterHandler(sessions, fakeTokens{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "passwords do not match")
	})

	t.Run("missing name", func(t *testing.T) {
		ctx, rec := newFormCtx(newEcho(), "email=a@pucp.edu.pe&password=password1&confirm_password=password1")
		require.NoError(t, RegisterHandler(sessions, fakeTokens{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	e := newEcho()

	t.Run("no session", func(t *testing.T) {
		ctx, rec := newFormCtx(e, "")
		require.NoError(t, LogoutHandler(&fakeSessions{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		deleted := ""
		s := &fakeSessions{LogoutFn: func(_ context.Context, sid string) error { deleted = sid; return nil }}
		ctx, rec := newFormCtx(e, "")
		ctx.Set(middleware.ContextClaimsKey, &service.SessionClaims{SessionID: "s9"})
		require.NoError(t, LogoutHandler(s)(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "s9", deleted)
	})

	t.Run("storage down", func(t *testing.T) {
		s := &fakeSessions{LogoutFn: func(context.Context, string) error { return errors.New("redis") }}
		ctx, rec := newFormCtx(e, "")
		ctx.Set(middleware.ContextClaimsKey, &service.SessionClaims{SessionID: "s9"})
		require.NoError(t, LogoutHandler(s)(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
