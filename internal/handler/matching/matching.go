// File: internal/handler/matching/matching.go
package matching

import (
	"context"
	"net/http"
	"strconv"

	"tutor-match/internal/api"
	"tutor-match/internal/database"
	"tutor-match/internal/handler"
	"tutor-match/internal/middleware"
	"tutor-match/internal/model"
	"tutor-match/internal/service"
	"tutor-match/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listTutors   = store.ListTutors
	getTutorByID = store.GetTutorByID
)

type interestedStore interface {
	List(ctx context.Context, ownerID string) []model.InterestedTutor
	Contains(ctx context.Context, ownerID, tutorID string) bool
	Add(ctx context.Context, ownerID string, tutor model.User) (bool, error)
	Remove(ctx context.Context, ownerID, tutorID string) error
	Clear(ctx context.Context, ownerID string) error
}

func owner(c echo.Context) *model.User {
	_, user := middleware.Session(c)
	return user
}

// @Summary     Matching feed
// @Description 回傳導師清單中第 index 位（排除自己）；超過結尾時 done 為 true；interested 表示已加入感興趣清單
// @Tags        matching
// @Produce     json
// @Param       index query int false "位置（預設 0）"
// @Success     200 {object} api.FeedResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /feed [get]
func FeedHandler(db database.DB, interested interestedStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := owner(c)
		if user == nil {
			return handler.ServiceError(c, service.ErrNoSession)
		}
		index := 0
		if v := c.QueryParam("index"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return handler.BadRequest(c, "invalid index")
			}
			index = n
		}

		ctx := c.Request().Context()
		tutors, err := listTutors(ctx, db, user.ID)
		if err != nil {
			return handler.CatalogError(c, err, "tutor not found")
		}
		page, err := service.PageFeed(tutors, index)
		if err != nil {
			return handler.ServiceError(c, err)
		}
		resp := api.FeedResponse{
			Tutor:   page.Tutor,
			Index:   page.Index,
			Total:   page.Total,
			HasPrev: page.HasPrev,
			HasNext: page.HasNext,
			Done:    page.Done,
		}
		if page.Tutor != nil {
			resp.Interested = interested.Contains(ctx, user.ID, page.Tutor.ID)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Swipe right
// @Description 將導師加入感興趣清單；已存在時 added 為 false
// @Tags        matching
// @Produce     json
// @Param       tutor_id path string true "導師 ID"
// @Success     200 {object} api.InterestResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /feed/{tutor_id}/interest [post]
func InterestHandler(db database.DB, interested interestedStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := owner(c)
		if user == nil {
			return handler.ServiceError(c, service.ErrNoSession)
		}
		ctx := c.Request().Context()
		tutor, err := getTutorByID(ctx, db, c.Param("tutor_id"))
		if err != nil {
			return handler.CatalogError(c, err, "tutor not found")
		}
		added, err := interested.Add(ctx, user.ID, *tutor)
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusOK, api.InterestResponse{Added: added, Tutor: *tutor})
	}
}

// @Summary     List interested tutors
// @Description 最新加入的在前
// @Tags        matching
// @Produce     json
// @Success     200 {object} api.InterestedListResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /interested [get]
func ListInterestedHandler(interested interestedStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := owner(c)
		if user == nil {
			return handler.ServiceError(c, service.ErrNoSession)
		}
		items := interested.List(c.Request().Context(), user.ID)
		return c.JSON(http.StatusOK, api.InterestedListResponse{Items: items, Count: len(items)})
	}
}

// @Summary     Remove an interested tutor
// @Description 移除不存在的導師不會回傳錯誤
// @Tags        matching
// @Param       tutor_id path string true "導師 ID"
// @Success     204 "No Content"
// @Failure     401 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /interested/{tutor_id} [delete]
func RemoveInterestedHandler(interested interestedStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := owner(c)
		if user == nil {
			return handler.ServiceError(c, service.ErrNoSession)
		}
		if err := interested.Remove(c.Request().Context(), user.ID, c.Param("tutor_id")); err != nil {
			return handler.ServiceError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Clear interested tutors
// @Tags        matching
// @Success     204 "No Content"
// @Failure     401 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /interested [delete]
func ClearInterestedHandler(interested interestedStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := owner(c)
		if user == nil {
			return handler.ServiceError(c, service.ErrNoSession)
		}
		if err := interested.Clear(c.Request().Context(), user.ID); err != nil {
			return handler.ServiceError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
