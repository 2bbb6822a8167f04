package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"tutor-match/internal/cache"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var origSleep = sleep

func restoreGlobals() {
	jsonMarshal = json.Marshal
	jsonUnmarshal = json.Unmarshal
	timeNow = time.Now
	newID = uuid.NewString
	sleep = origSleep
	parseWithClaims = jwt.ParseWithClaims
}

// setup 固定時鐘、可預期的 id，並關閉模擬延遲
func setup(t *testing.T) *time.Time {
	t.Helper()
	t.Cleanup(restoreGlobals)
	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }
	n := 0
	newID = func() string { n++; return fmt.Sprintf("id-%d", n) }
	sleep = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
	return &now
}

// brokenCache 所有操作都回傳錯誤
func brokenCache() *cache.FakeCache {
	boom := errors.New("redis down")
	return &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("", boom) },
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", boom)
		},
		DelFn: func(context.Context, ...string) *redis.IntCmd { return redis.NewIntResult(0, boom) },
	}
}
