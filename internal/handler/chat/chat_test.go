package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tutor-match/internal/api"
	"tutor-match/internal/cache"
	"tutor-match/internal/middleware"
	"tutor-match/internal/model"
	"tutor-match/internal/service"
	"tutor-match/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func stores() (*service.Conversations, *service.Notifications) {
	kv, _ := cache.NewMemoryCache()
	notices := service.NewNotifications(kv)
	return service.NewConversations(kv, service.NewNotifier(notices, worker.Inline{})), notices
}

func newCtx(method, target, body string, user *model.User, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(params) == 2 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}
	if user != nil {
		c.Set(middleware.ContextUserKey, user)
	}
	return c, rec
}

func TestMatchesAndMessages(t *testing.T) {
	conversations, _ := stores()
	me := service.MockUser()

	c, rec := newCtx(http.MethodGet, "/api/matches", "", &me)
	require.NoError(t, ListMatchesHandler(conversations)(c))
	var matches api.MatchListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Len(t, matches.Items, 2)

	c, rec = newCtx(http.MethodGet, "/api/matches?q=f%C3%8DSICA", "", &me)
	require.NoError(t, ListMatchesHandler(conversations)(c))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Len(t, matches.Items, 1)
	require.Equal(t, "match-2", matches.Items[0].ID)

	c, rec = newCtx(http.MethodGet, "/", "", &me, "match_id", "match-1")
	require.NoError(t, ListMessagesHandler(conversations)(c))
	var msgs api.MessageListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msgs))
	require.Len(t, msgs.Items, 2)

	c, rec = newCtx(http.MethodGet, "/", "", &me, "match_id", "match-9")
	require.NoError(t, ListMessagesHandler(conversations)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendMessageHandler(t *testing.T) {
	conversations, notices := stores()
	me := service.MockUser()

	c, rec := newCtx(http.MethodPost, "/", "content=%20%20%20", &me, "match_id", "match-1")
	require.NoError(t, SendMessageHandler(conversations)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newCtx(http.MethodPost, "/", "content=hola", &me, "match_id", "match-7")
	require.NoError(t, SendMessageHandler(conversations)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newCtx(http.MethodPost, "/", "content=%C2%BFLunes%3F", &me, "match_id", "match-1")
	require.NoError(t, SendMessageHandler(conversations)(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "¿Lunes?")

	msgs, err := conversations.Messages(context.Background(), me, "match-1")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	require.Equal(t, me.ID, msgs[2].SenderID)

	require.Len(t, notices.List(context.Background(), me.ID), 1)
}

func TestNotificationHandlers(t *testing.T) {
	_, notices := stores()
	me := &model.User{ID: "u1"}
	ctx := context.Background()
	require.NoError(t, notices.Push(ctx, me.ID, model.Notification{Kind: model.NotificationMessage, Title: "Message sent"}))

	c, rec := newCtx(http.MethodGet, "/", "", me)
	require.NoError(t, ListNotificationsHandler(notices)(c))
	var list api.NotificationListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)
	require.Equal(t, 1, list.Unread)

	c, rec = newCtx(http.MethodPost, "/", "", me)
	require.NoError(t, MarkNotificationsReadHandler(notices)(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Zero(t, notices.UnreadCount(ctx, me.ID))

	c, rec = newCtx(http.MethodDelete, "/", "", me)
	require.NoError(t, ClearNotificationsHandler(notices)(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, notices.List(ctx, me.ID))
}

func TestChatHandlersRequireSession(t *testing.T) {
	conversations, notices := stores()
	handlers := []echo.HandlerFunc{
		ListMatchesHandler(conversations),
		ListMessagesHandler(conversations),
		SendMessageHandler(conversations),
		ListNotificationsHandler(notices),
		MarkNotificationsReadHandler(notices),
		ClearNotificationsHandler(notices),
	}
	for _, h := range handlers {
		c, rec := newCtx(http.MethodGet, "/", "", nil)
		require.NoError(t, h(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}
