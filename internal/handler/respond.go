package handler

import (
	"context"
	"errors"
	"net/http"

	"tutor-match/internal/api"
	"tutor-match/internal/service"
	"tutor-match/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ServiceStatus 將 service 錯誤對應到 HTTP 狀態碼
// 未知錯誤一律視為 key-value store 無法使用
func ServiceStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrInvalidIndex),
		errors.Is(err, service.ErrUnknownUniversity),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrPasswordTooShort):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrMatchNotFound),
		errors.Is(err, service.ErrSubjectNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusServiceUnavailable
	}
}

// ServiceError 以 api.ErrorResponse 回傳 service 錯誤
func ServiceError(c echo.Context, err error) error {
	status := ServiceStatus(err)
	msg := err.Error()
	if status == http.StatusServiceUnavailable {
		if !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Str("path", c.Path()).Msg("storage failure")
		}
		msg = "storage unavailable"
	}
	return c.JSON(status, api.ErrorResponse{Message: msg})
}

// CatalogError 以 api.ErrorResponse 回傳 catalog 查詢錯誤
func CatalogError(c echo.Context, err error, notFound string) error {
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: notFound})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("catalog query failed")
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "catalog unavailable"})
}

// BadRequest 回傳 400 與訊息
func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msg})
}
