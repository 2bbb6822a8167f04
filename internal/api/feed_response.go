package api

import "tutor-match/internal/model"

// swagger:model api.FeedResponse
type FeedResponse struct {
	Tutor   *model.User `json:"tutor"`
	Index   int         `json:"index" example:"0"`
	Total   int         `json:"total" example:"6"`
	HasPrev bool        `json:"has_prev" example:"false"`
	HasNext bool        `json:"has_next" example:"true"`
	// done 表示已看完所有導師
	Done bool `json:"done" example:"false"`
	// interested 表示 tutor 已在目前使用者的感興趣清單中
	Interested bool `json:"interested" example:"false"`
}
