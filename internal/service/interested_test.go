package service

import (
	"context"
	"testing"
	"time"

	"tutor-match/internal/cache"
	"tutor-match/internal/model"

	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	owners []string
	sent   []model.Notification
}

func (r *recordingNotifier) Notify(ownerID string, n model.Notification) {
	r.owners = append(r.owners, ownerID)
	r.sent = append(r.sent, n)
}

func TestInterestedTutors(t *testing.T) {
	now := setup(t)
	c, _ := cache.NewMemoryCache()
	rec := &recordingNotifier{}
	s := NewInterestedTutors(c, rec)
	ctx := context.Background()

	require.Empty(t, s.List(ctx, "u1"))

	carlos := model.User{ID: "tutor-001", Name: "Carlos"}
	ana := model.User{ID: "tutor-002", Name: "Ana"}

	added, err := s.Add(ctx, "u1", carlos)
	require.NoError(t, err)
	require.True(t, added)

	*now = now.Add(time.Minute)
	added, err = s.Add(ctx, "u1", ana)
	require.NoError(t, err)
	require.True(t, added)

	t.Run("duplicate id leaves length unchanged", func(t *testing.T) {
		added, err := s.Add(ctx, "u1", model.User{ID: "tutor-001", Name: "Carlos again"})
		require.NoError(t, err)
		require.False(t, added)
		require.Len(t, s.List(ctx, "u1"), 2)
	})

	t.Run("newest first", func(t *testing.T) {
		list := s.List(ctx, "u1")
		require.Equal(t, "tutor-002", list[0].Tutor.ID)
		require.Equal(t, "tutor-001", list[1].Tutor.ID)
		require.True(t, list[0].SavedAt.After(list[1].SavedAt))
	})

	t.Run("contains", func(t *testing.T) {
		require.True(t, s.Contains(ctx, "u1", "tutor-001"))
		require.False(t, s.Contains(ctx, "u1", "tutor-999"))
		require.False(t, s.Contains(ctx, "u2", "tutor-001"))
	})

	t.Run("owners are isolated", func(t *testing.T) {
		require.Empty(t, s.List(ctx, "u2"))
	})

	t.Run("remove missing is a no-op", func(t *testing.T) {
		require.NoError(t, s.Remove(ctx, "u1", "tutor-999"))
		require.Len(t, s.List(ctx, "u1"), 2)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, s.Remove(ctx, "u1", "tutor-001"))
		list := s.List(ctx, "u1")
		require.Len(t, list, 1)
		require.Equal(t, "tutor-002", list[0].Tutor.ID)
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, s.Clear(ctx, "u1"))
		require.Empty(t, s.List(ctx, "u1"))
	})

	require.Len(t, rec.sent, 2)
	require.Equal(t, []string{"u1", "u1"}, rec.owners)
	require.Equal(t, model.NotificationInterest, rec.sent[0].Kind)
	require.Contains(t, rec.sent[0].Body, "Carlos")
}

func TestInterestedTutorsStorageFailures(t *testing.T) {
	setup(t)
	ctx := context.Background()

	t.Run("corrupt data reads as empty", func(t *testing.T) {
		c, mem := cache.NewMemoryCache()
		mem.Put(interestedKey("u1"), "[{oops")
		s := NewInterestedTutors(c, nil)
		list := s.List(ctx, "u1")
		require.NotNil(t, list)
		require.Empty(t, list)
	})

	t.Run("storage down", func(t *testing.T) {
		s := NewInterestedTutors(brokenCache(), nil)
		require.False(t, s.Contains(ctx, "u1", "tutor-001"))
		require.Empty(t, s.List(ctx, "u1"))
		added, err := s.Add(ctx, "u1", model.User{ID: "t"})
		require.Error(t, err)
		require.False(t, added)
		require.Error(t, s.Clear(ctx, "u1"))
		// 清單讀不到時沒有東西可移除
		require.NoError(t, s.Remove(ctx, "u1", "t"))
	})
}
