package api

import "tutor-match/internal/model"

// swagger:model api.InterestedListResponse
type InterestedListResponse struct {
	Items []model.InterestedTutor `json:"items"`
	Count int                     `json:"count" example:"2"`
}

// swagger:model api.InterestResponse
type InterestResponse struct {
	// added 為 false 表示該導師已在清單中
	Added bool       `json:"added" example:"true"`
	Tutor model.User `json:"tutor"`
}

// swagger:model api.MatchListResponse
type MatchListResponse struct {
	Items []model.Match `json:"items"`
}

// swagger:model api.MessageListResponse
type MessageListResponse struct {
	Items []model.Message `json:"items"`
}

// swagger:model api.NotificationListResponse
type NotificationListResponse struct {
	Items  []model.Notification `json:"items"`
	Unread int                  `json:"unread" example:"1"`
}

// swagger:model api.ReviewListResponse
type ReviewListResponse struct {
	Items []model.Review `json:"items"`
}
