// File: internal/handler/chat/chat.go
package chat

import (
	"context"
	"net/http"

	"tutor-match/internal/api"
	"tutor-match/internal/handler"
	"tutor-match/internal/middleware"
	"tutor-match/internal/model"
	"tutor-match/internal/service"

	"github.com/labstack/echo/v4"
)

type conversationStore interface {
	SearchMatches(ctx context.Context, owner model.User, query string) []model.Match
	Messages(ctx context.Context, owner model.User, matchID string) ([]model.Message, error)
	Send(ctx context.Context, owner model.User, matchID, content string) (*model.Message, error)
}

type notificationStore interface {
	List(ctx context.Context, ownerID string) []model.Notification
	UnreadCount(ctx context.Context, ownerID string) int
	MarkAllRead(ctx context.Context, ownerID string) error
	Clear(ctx context.Context, ownerID string) error
}

func owner(c echo.Context) *model.User {
	_, user := middleware.Session(c)
	return user
}

// @Summary     List matches
// @Description 第一次讀取時建立示範配對；q 以不分大小寫比對對方姓名或科目
// @Tags        chat
// @Produce     json
// @Param       q query string false "搜尋字串"
// @Success     200 {object} api.MatchListResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /matches [get]
func ListMatchesHandler(conversations conversationStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := owner(c)
		if user == nil {
			return handler.ServiceError(c, service.ErrNoSession)
		}
		items := conversations.SearchMatches(c.Request().Context(), *user, c.QueryParam("q"))
		return c.JSON(http.StatusOK, api.MatchListResponse{Items: items})
	}
}

// @Summary     List messages of a match
// @Description 依時間由舊到新
// @Tags        chat
// @Produce     json
// @Param       match_id path string true "配對 ID"
// @Success     200 {object} api.MessageListResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /matches/{match_id}/messages [get]
func ListMessagesHandler(conversations conversationStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := owner(c)
		if user == nil {
			return handler.ServiceError(c, service.ErrNoSession)
		}
		items, err := conversations.Messages(c.Request().Context(), *user, c.Param("match_id"))
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageListResponse{Items: items})
	}
}

// @Summary     Send a message
// @Description 空白內容會被拒絕且不會新增訊息
// @Tags        chat
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       match_id path     string true "配對 ID"
// @Param       content  formData string true "訊息內容"
// @Success     201 {object} model.Message
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /matches/{match_id}/messages [post]
func SendMessageHandler(conversations conversationStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := owner(c)
		if user == nil {
			return handler.ServiceError(c, service.ErrNoSession)
		}
		var req api.SendMessageRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "invalid form data")
		}
		msg, err := conversations.Send(c.Request().Context(), *user, c.Param("match_id"), req.Content)
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusCreated, msg)
	}
}

// @Summary     List notifications
// @Tags        notifications
// @Produce     json
// @Success     200 {object} api.NotificationListResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /notifications [get]
func ListNotificationsHandler(notifications notificationStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := owner(c)
		if user == nil {
			return handler.ServiceError(c, service.ErrNoSession)
		}
		ctx := c.Request().Context()
		return c.JSON(http.StatusOK, api.NotificationListResponse{
			Items:  notifications.List(ctx, user.ID),
			Unread: notifications.UnreadCount(ctx, user.ID),
		})
	}
}

// @Summary     Mark all notifications as read
// @Tags        notifications
// @Success     204 "No Content"
// @Failure     401 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /notifications/read [post]
func MarkNotificationsReadHandler(notifications notificationStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := owner(c)
		if user == nil {
			return handler.ServiceError(c, service.ErrNoSession)
		}
		if err := notifications.MarkAllRead(c.Request().Context(), user.ID); err != nil {
			return handler.ServiceError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Clear notifications
// @Tags        notifications
// @Success     204 "No Content"
// @Failure     401 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /notifications [delete]
func ClearNotificationsHandler(notifications notificationStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := owner(c)
		if user == nil {
			return handler.ServiceError(c, service.ErrNoSession)
		}
		if err := notifications.Clear(c.Request().Context(), user.ID); err != nil {
			return handler.ServiceError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
