package api

import (
	"time"

	"tutor-match/internal/model"
)

// swagger:model api.SessionResponse
type SessionResponse struct {
	AccessToken string     `json:"access_token" example:"eyJhbGciOi..."`
	ExpiresAt   time.Time  `json:"expires_at" example:"2025-05-09T15:04:05Z"`
	User        model.User `json:"user"`
}
