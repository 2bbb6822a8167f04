// File: internal/handler/catalog/catalog.go
package catalog

import (
	"net/http"
	"strconv"

	"tutor-match/internal/api"
	"tutor-match/internal/database"
	"tutor-match/internal/handler"
	"tutor-match/internal/service"
	"tutor-match/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	defaultReviewLimit = 20
	maxReviewLimit     = 100
)

var (
	getTutorByID       = store.GetTutorByID
	listReviewsByTutor = store.ListReviewsByTutor
	listRecentReviews  = store.ListRecentReviews
	listTutorLocations = store.ListTutorLocations
)

// @Summary     Get a tutor
// @Description 從 catalog 回傳導師公開資料
// @Tags        catalog
// @Produce     json
// @Param       tutor_id path string true "導師 ID"
// @Success     200 {object} model.User
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tutors/{tutor_id} [get]
func GetTutorHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		tutor, err := getTutorByID(c.Request().Context(), db, c.Param("tutor_id"))
		if err != nil {
			return handler.CatalogError(c, err, "tutor not found")
		}
		return c.JSON(http.StatusOK, tutor)
	}
}

// @Summary     List reviews of a tutor
// @Description 最新的評論在前
// @Tags        catalog
// @Produce     json
// @Param       tutor_id path string true "導師 ID"
// @Success     200 {object} api.ReviewListResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tutors/{tutor_id}/reviews [get]
func TutorReviewsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id := c.Param("tutor_id")
		if _, err := getTutorByID(ctx, db, id); err != nil {
			return handler.CatalogError(c, err, "tutor not found")
		}
		reviews, err := listReviewsByTutor(ctx, db, id)
		if err != nil {
			return handler.CatalogError(c, err, "tutor not found")
		}
		return c.JSON(http.StatusOK, api.ReviewListResponse{Items: reviews})
	}
}

// @Summary     List recent reviews
// @Tags        catalog
// @Produce     json
// @Param       limit query int false "筆數（預設 20，最多 100）"
// @Success     200 {object} api.ReviewListResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /reviews [get]
func RecentReviewsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := defaultReviewLimit
		if v := c.QueryParam("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return handler.BadRequest(c, "invalid limit")
			}
			limit = min(n, maxReviewLimit)
		}
		reviews, err := listRecentReviews(c.Request().Context(), db, limit)
		if err != nil {
			return handler.CatalogError(c, err, "reviews not found")
		}
		return c.JSON(http.StatusOK, api.ReviewListResponse{Items: reviews})
	}
}

// @Summary     Tutor map
// @Description 以 lat/lng 為中心；座標缺少或無效時使用預設座標並附上提示訊息
// @Tags        catalog
// @Produce     json
// @Param       lat query number false "緯度"
// @Param       lng query number false "經度"
// @Success     200 {object} api.MapResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /map [get]
func MapHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		center, msg := service.ResolveCenter(c.QueryParam("lat"), c.QueryParam("lng"))
		markers, err := listTutorLocations(c.Request().Context(), db)
		if err != nil {
			return handler.CatalogError(c, err, "locations not found")
		}
		return c.JSON(http.StatusOK, api.MapResponse{
			Center:  api.Coordinate{Lat: center.Lat, Lng: center.Lng},
			Message: msg,
			Markers: markers,
		})
	}
}
