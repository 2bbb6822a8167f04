package service

import "tutor-match/internal/model"

// FeedPage 是配對 feed 中的單一位置
type FeedPage struct {
	Tutor   *model.User `json:"tutor"`
	Index   int         `json:"index"`
	Total   int         `json:"total"`
	HasPrev bool        `json:"has_prev"`
	HasNext bool        `json:"has_next"`
	Done    bool        `json:"done"`
}

// PageFeed 在固定清單上手動翻頁，超過結尾時 Done 為 true
func PageFeed(tutors []model.User, index int) (FeedPage, error) {
	if index < 0 {
		return FeedPage{}, ErrInvalidIndex
	}
	page := FeedPage{Index: index, Total: len(tutors), HasPrev: index > 0 && len(tutors) > 0}
	if index >= len(tutors) {
		page.Done = true
		return page, nil
	}
	t := tutors[index]
	page.Tutor = &t
	page.HasNext = index+1 < len(tutors)
	return page, nil
}
