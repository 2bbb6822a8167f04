// File: internal/service/interested.go
package service

import (
	"context"
	"fmt"
	"sort"

	"tutor-match/internal/cache"
	"tutor-match/internal/model"

	"github.com/rs/zerolog/log"
)

// notifier 非同步推送通知
type notifier interface {
	Notify(ownerID string, n model.Notification)
}

// InterestedTutors 保存使用者在配對中標記為有興趣的導師，依 tutor id 去重
type InterestedTutors struct {
	cache    cache.Cache
	notifier notifier
}

func NewInterestedTutors(c cache.Cache, n notifier) *InterestedTutors {
	return &InterestedTutors{cache: c, notifier: n}
}

// load 讀取失敗時記錄並回傳空清單
func (s *InterestedTutors) load(ctx context.Context, ownerID string) []model.InterestedTutor {
	var items []model.InterestedTutor
	if _, err := loadJSON(ctx, s.cache, interestedKey(ownerID), &items); err != nil {
		log.Warn().Err(err).Str("user_id", ownerID).Msg("read interested tutors failed")
		return []model.InterestedTutor{}
	}
	if items == nil {
		items = []model.InterestedTutor{}
	}
	return items
}

func (s *InterestedTutors) save(ctx context.Context, ownerID string, items []model.InterestedTutor) error {
	if err := saveJSON(ctx, s.cache, interestedKey(ownerID), items, 0); err != nil {
		log.Error().Err(err).Str("user_id", ownerID).Msg("write interested tutors failed")
		return err
	}
	return nil
}

// List 回傳所有感興趣的導師，最新的在前
func (s *InterestedTutors) List(ctx context.Context, ownerID string) []model.InterestedTutor {
	items := s.load(ctx, ownerID)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SavedAt.After(items[j].SavedAt)
	})
	return items
}

// Add 加入導師快照；已存在相同 id 時不變動並回傳 false
func (s *InterestedTutors) Add(ctx context.Context, ownerID string, tutor model.User) (bool, error) {
	items := s.load(ctx, ownerID)
	for _, it := range items {
		if it.Tutor.ID == tutor.ID {
			return false, nil
		}
	}
	items = append(items, model.InterestedTutor{Tutor: tutor, SavedAt: timeNow().UTC()})
	if err := s.save(ctx, ownerID, items); err != nil {
		return false, err
	}

	if s.notifier != nil {
		s.notifier.Notify(ownerID, model.Notification{
			Kind:  model.NotificationInterest,
			Title: "Tutor saved",
			Body:  fmt.Sprintf("%s was added to your interested tutors", tutor.Name),
		})
	}
	return true, nil
}

// Contains 回報導師是否已在清單中；讀取失敗時視為不在
func (s *InterestedTutors) Contains(ctx context.Context, ownerID, tutorID string) bool {
	for _, it := range s.load(ctx, ownerID) {
		if it.Tutor.ID == tutorID {
			return true
		}
	}
	return false
}

// Remove 移除指定導師；不存在時為 no-op
func (s *InterestedTutors) Remove(ctx context.Context, ownerID, tutorID string) error {
	items := s.load(ctx, ownerID)
	kept := items[:0]
	for _, it := range items {
		if it.Tutor.ID != tutorID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return s.save(ctx, ownerID, kept)
}

func (s *InterestedTutors) Clear(ctx context.Context, ownerID string) error {
	if err := deleteKey(ctx, s.cache, interestedKey(ownerID)); err != nil {
		log.Error().Err(err).Str("user_id", ownerID).Msg("clear interested tutors failed")
		return err
	}
	return nil
}
