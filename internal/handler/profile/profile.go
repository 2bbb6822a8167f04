package profile

import (
	"context"
	"errors"
	"net/http"

	"tutor-match/internal/api"
	"tutor-match/internal/handler"
	"tutor-match/internal/middleware"
	"tutor-match/internal/model"
	"tutor-match/internal/service"

	"github.com/labstack/echo/v4"
)

type profileStore interface {
	UpdateProfile(ctx context.Context, sessionID string, in service.ProfileUpdate) (*model.User, error)
	AddSubject(ctx context.Context, sessionID string, in service.SubjectInput) (*model.Subject, error)
	UpdateSubject(ctx context.Context, sessionID, subjectID string, in service.SubjectInput) (*model.Subject, error)
	SetSubjectActive(ctx context.Context, sessionID, subjectID string, active bool) (*model.Subject, error)
	RemoveSubject(ctx context.Context, sessionID, subjectID string) error
}

func sessionID(c echo.Context) string {
	claims, _ := middleware.Session(c)
	if claims == nil {
		return ""
	}
	return claims.SessionID
}

// bindValid 綁定並驗證表單，回傳的錯誤訊息可直接給使用者
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.New("invalid form data")
	}
	return c.Validate(req)
}

func subjectInput(req api.SubjectRequest) service.SubjectInput {
	return service.SubjectInput{
		Name:        req.Name,
		Category:    req.Category,
		HourlyRate:  req.HourlyRate,
		Experience:  req.Experience,
		Description: req.Description,
	}
}

// @Summary     Get my profile
// @Description 回傳目前 session 的使用者
// @Tags        profile
// @Produce     json
// @Success     200 {object} model.User
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /me [get]
func GetMeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		_, user := middleware.Session(c)
		if user == nil {
			return handler.ServiceError(c, service.ErrNoSession)
		}
		return c.JSON(http.StatusOK, user)
	}
}

// @Summary     Update my profile
// @Tags        profile
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name       formData string true  "姓名"
// @Param       career     formData string false "主修"
// @Param       semester   formData int    false "學期"
// @Param       bio        formData string false "自我介紹"
// @Param       avatar_url formData string false "頭像網址"
// @Success     200 {object} model.User
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /me [put]
func UpdateMeHandler(store profileStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateProfileRequest
		if err := bindValid(c, &req); err != nil {
			return handler.BadRequest(c, err.Error())
		}
		user, err := store.UpdateProfile(c.Request().Context(), sessionID(c), service.ProfileUpdate{
			Name:      req.Name,
			Career:    req.Career,
			Semester:  req.Semester,
			Bio:       req.Bio,
			AvatarURL: req.AvatarURL,
		})
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusOK, user)
	}
}

// @Summary     Add a subject
// @Description 新增一門可教授的科目，預設為啟用
// @Tags        profile
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name        formData string true  "科目名稱"
// @Param       category    formData string true  "分類"
// @Param       hourly_rate formData number false "每小時費用"
// @Param       experience  formData string false "經驗"
// @Param       description formData string false "說明"
// @Success     201 {object} model.Subject
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /me/subjects [post]
func AddSubjectHandler(store profileStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SubjectRequest
		if err := bindValid(c, &req); err != nil {
			return handler.BadRequest(c, err.Error())
		}
		subject, err := store.AddSubject(c.Request().Context(), sessionID(c), subjectInput(req))
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusCreated, subject)
	}
}

// @Summary     Update a subject
// @Tags        profile
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       subject_id  path     string true  "科目 ID"
// @Param       name        formData string true  "科目名稱"
// @Param       category    formData string true  "分類"
// @Param       hourly_rate formData number false "每小時費用"
// @Param       experience  formData string false "經驗"
// @Param       description formData string false "說明"
// @Success     200 {object} model.Subject
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /me/subjects/{subject_id} [put]
func UpdateSubjectHandler(store profileStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SubjectRequest
		if err := bindValid(c, &req); err != nil {
			return handler.BadRequest(c, err.Error())
		}
		subject, err := store.UpdateSubject(c.Request().Context(), sessionID(c), c.Param("subject_id"), subjectInput(req))
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusOK, subject)
	}
}

// @Summary     Toggle a subject
// @Description 啟用或停用一門科目
// @Tags        profile
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       subject_id path     string  true "科目 ID"
// @Param       active     formData boolean true "是否啟用"
// @Success     200 {object} model.Subject
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /me/subjects/{subject_id}/active [patch]
func SetSubjectActiveHandler(store profileStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SubjectActiveRequest
		if err := bindValid(c, &req); err != nil {
			return handler.BadRequest(c, err.Error())
		}
		subject, err := store.SetSubjectActive(c.Request().Context(), sessionID(c), c.Param("subject_id"), req.Active == "true")
		if err != nil {
			return handler.ServiceError(c, err)
		}
		return c.JSON(http.StatusOK, subject)
	}
}

// @Summary     Remove a subject
// @Tags        profile
// @Param       subject_id path string true "科目 ID"
// @Success     204 "No Content"
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /me/subjects/{subject_id} [delete]
func RemoveSubjectHandler(store profileStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := store.RemoveSubject(c.Request().Context(), sessionID(c), c.Param("subject_id")); err != nil {
			return handler.ServiceError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
