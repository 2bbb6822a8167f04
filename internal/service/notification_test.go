package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tutor-match/internal/cache"
	"tutor-match/internal/model"
	"tutor-match/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestNotifications(t *testing.T) {
	now := setup(t)
	c, _ := cache.NewMemoryCache()
	s := NewNotifications(c)
	ctx := context.Background()

	require.Empty(t, s.List(ctx, "u1"))
	require.Zero(t, s.UnreadCount(ctx, "u1"))

	require.NoError(t, s.Push(ctx, "u1", model.Notification{Kind: model.NotificationInterest, Title: "first"}))
	*now = now.Add(time.Second)
	require.NoError(t, s.Push(ctx, "u1", model.Notification{Kind: model.NotificationMessage, Title: "second"}))

	list := s.List(ctx, "u1")
	require.Len(t, list, 2)
	require.Equal(t, "second", list[0].Title)
	require.NotEmpty(t, list[0].ID)
	require.Equal(t, 2, s.UnreadCount(ctx, "u1"))

	require.NoError(t, s.MarkAllRead(ctx, "u1"))
	require.Zero(t, s.UnreadCount(ctx, "u1"))
	require.NoError(t, s.MarkAllRead(ctx, "u1"))

	require.NoError(t, s.Clear(ctx, "u1"))
	require.Empty(t, s.List(ctx, "u1"))
}

func TestNotificationsCap(t *testing.T) {
	setup(t)
	c, _ := cache.NewMemoryCache()
	s := NewNotifications(c)
	ctx := context.Background()
	for i := 0; i < maxNotifications+5; i++ {
		require.NoError(t, s.Push(ctx, "u1", model.Notification{Title: fmt.Sprint(i)}))
	}
	list := s.List(ctx, "u1")
	require.Len(t, list, maxNotifications)
	for _, n := range list {
		require.NotEqual(t, "0", n.Title)
	}
}

func TestNotificationsStorageDown(t *testing.T) {
	setup(t)
	s := NewNotifications(brokenCache())
	ctx := context.Background()
	require.Empty(t, s.List(ctx, "u1"))
	require.Error(t, s.Push(ctx, "u1", model.Notification{}))
	require.Error(t, s.Clear(ctx, "u1"))
	require.NoError(t, s.MarkAllRead(ctx, "u1"))
}

func TestNotifier(t *testing.T) {
	setup(t)
	c, _ := cache.NewMemoryCache()
	store := NewNotifications(c)
	pool := worker.NewPool(2)
	n := NewNotifier(store, pool)

	n.Notify("u1", model.Notification{Kind: model.NotificationMessage, Title: "a"})
	n.Notify("u1", model.Notification{Kind: model.NotificationMessage, Title: "b"})
	pool.Stop()

	require.Len(t, store.List(context.Background(), "u1"), 2)
}

func TestNotifierDropsOnFailure(t *testing.T) {
	setup(t)
	n := NewNotifier(NewNotifications(brokenCache()), worker.Inline{})
	require.NotPanics(t, func() { n.Notify("u1", model.Notification{Title: "x"}) })
}

func TestNotifierDoesNotWaitForSlowStorage(t *testing.T) {
	setup(t)
	c, _ := cache.NewMemoryCache()
	set := c.SetFn
	release := make(chan struct{})
	c.SetFn = func(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
		<-release
		return set(ctx, key, value, ttl)
	}
	store := NewNotifications(c)
	pool := worker.NewPool(1)
	n := NewNotifier(store, pool)

	done := make(chan struct{})
	go func() {
		n.Notify("u1", model.Notification{Kind: model.NotificationMessage, Title: "a"})
		n.Notify("u1", model.Notification{Kind: model.NotificationMessage, Title: "b"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify waited for the storage write")
	}

	close(release)
	pool.Stop()
	require.Len(t, store.List(context.Background(), "u1"), 2)
}
