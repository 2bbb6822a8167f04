package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tutor-match/internal/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tutormatch"

func sessionKey(sessionID string) string { return keyPrefix + ":session:" + sessionID }

func userKey(userID, name string) string { return keyPrefix + ":user:" + userID + ":" + name }

func interestedKey(userID string) string    { return userKey(userID, "interested") }
func matchesKey(userID string) string       { return userKey(userID, "matches") }
func messagesKey(userID string) string      { return userKey(userID, "messages") }
func notificationsKey(userID string) string { return userKey(userID, "notifications") }

// 測試可覆寫
var (
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
	timeNow       = time.Now
	newID         = uuid.NewString
)

// loadJSON 讀取 key 並解析到 dst；key 不存在時回傳 false 且無錯誤
func loadJSON(ctx context.Context, c cache.Cache, key string, dst any) (bool, error) {
	raw, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := jsonUnmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", errCorrupt, key, err)
	}
	return true, nil
}

func saveJSON(ctx context.Context, c cache.Cache, key string, v any, ttl time.Duration) error {
	raw, err := jsonMarshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func deleteKey(ctx context.Context, c cache.Cache, key string) error {
	if err := c.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// sleep 模擬網路延遲，可被 context 取消
var sleep = func(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
