// File: internal/service/notification.go
package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"tutor-match/internal/cache"
	"tutor-match/internal/model"
	"tutor-match/internal/worker"

	"github.com/rs/zerolog/log"
)

// maxNotifications 每位使用者保留的通知上限，超過時丟棄最舊的
const maxNotifications = 100

// Notifications 是每位使用者的通知清單
// mu 只序列化同一個行程內的 read-modify-write
type Notifications struct {
	cache cache.Cache
	mu    sync.Mutex
}

func NewNotifications(c cache.Cache) *Notifications {
	return &Notifications{cache: c}
}

func (s *Notifications) load(ctx context.Context, ownerID string) []model.Notification {
	var items []model.Notification
	if _, err := loadJSON(ctx, s.cache, notificationsKey(ownerID), &items); err != nil {
		log.Warn().Err(err).Str("user_id", ownerID).Msg("read notifications failed")
		return []model.Notification{}
	}
	if items == nil {
		items = []model.Notification{}
	}
	return items
}

func (s *Notifications) save(ctx context.Context, ownerID string, items []model.Notification) error {
	if err := saveJSON(ctx, s.cache, notificationsKey(ownerID), items, 0); err != nil {
		log.Error().Err(err).Str("user_id", ownerID).Msg("write notifications failed")
		return err
	}
	return nil
}

// Push 新增通知，補上 id 與建立時間
func (s *Notifications) Push(ctx context.Context, ownerID string, n model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.ID == "" {
		n.ID = "ntf-" + newID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = timeNow().UTC()
	}
	items := append(s.load(ctx, ownerID), n)
	if len(items) > maxNotifications {
		items = items[len(items)-maxNotifications:]
	}
	return s.save(ctx, ownerID, items)
}

// List 回傳通知，最新的在前
func (s *Notifications) List(ctx context.Context, ownerID string) []model.Notification {
	items := s.load(ctx, ownerID)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}

func (s *Notifications) UnreadCount(ctx context.Context, ownerID string) int {
	n := 0
	for _, it := range s.load(ctx, ownerID) {
		if !it.Read {
			n++
		}
	}
	return n
}

func (s *Notifications) MarkAllRead(ctx context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx, ownerID)
	changed := false
	for i := range items {
		if !items[i].Read {
			items[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.save(ctx, ownerID, items)
}

func (s *Notifications) Clear(ctx context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := deleteKey(ctx, s.cache, notificationsKey(ownerID)); err != nil {
		log.Error().Err(err).Str("user_id", ownerID).Msg("clear notifications failed")
		return err
	}
	return nil
}

// Notifier 在 worker pool 上寫入通知，呼叫端不等待儲存完成
type Notifier struct {
	store   *Notifications
	pool    worker.Pool
	timeout time.Duration
}

func NewNotifier(store *Notifications, pool worker.Pool) *Notifier {
	return &Notifier{store: store, pool: pool, timeout: 5 * time.Second}
}

func (n *Notifier) Notify(ownerID string, ntf model.Notification) {
	if ntf.CreatedAt.IsZero() {
		ntf.CreatedAt = timeNow().UTC()
	}
	n.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()
		if err := n.store.Push(ctx, ownerID, ntf); err != nil {
			log.Warn().Err(err).Str("user_id", ownerID).Str("kind", string(ntf.Kind)).Msg("notification dropped")
		}
	})
}
