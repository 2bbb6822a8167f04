package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 定義 key-value 儲存操作介面
// 所有使用者狀態（session、配對、訊息、感興趣的導師、通知）
// 都以 JSON 字串存放在單一 key 下
// ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

type FakeCache struct {
	GetFn   func(ctx context.Context, key string) *redis.StringCmd
	SetFn   func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	DelFn   func(ctx context.Context, keys ...string) *redis.IntCmd
	CloseFn func() error
}

// Get 執行 Fake 設定或 panic
func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

// Set 執行 Fake 設定或 panic
func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

// Del 執行 Fake 設定或 panic
func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn != nil {
		return f.DelFn(ctx, keys...)
	}
	panic("unexpected Del")
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

// MemoryStore 是以 map 實作的 FakeCache 資料來源，供其他套件的測試使用
type MemoryStore struct {
	mu   sync.Mutex
	Data map[string]string
	TTLs map[string]time.Duration
}

// NewMemoryCache 回傳一個行為接近 Redis 的 FakeCache 與其底層資料
func NewMemoryCache() (*FakeCache, *MemoryStore) {
	s := &MemoryStore{Data: map[string]string{}, TTLs: map[string]time.Duration{}}
	return &FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			s.mu.Lock()
			defer s.mu.Unlock()
			v, ok := s.Data[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(v, nil)
		},
		SetFn: func(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
			s.mu.Lock()
			defer s.mu.Unlock()
			switch v := value.(type) {
			case []byte:
				s.Data[key] = string(v)
			case string:
				s.Data[key] = v
			default:
				panic("MemoryStore: unsupported value type")
			}
			s.TTLs[key] = ttl
			return redis.NewStatusResult("OK", nil)
		},
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			s.mu.Lock()
			defer s.mu.Unlock()
			var n int64
			for _, k := range keys {
				if _, ok := s.Data[k]; ok {
					delete(s.Data, k)
					delete(s.TTLs, k)
					n++
				}
			}
			return redis.NewIntResult(n, nil)
		},
	}, s
}

// Has 回報 key 是否存在
func (s *MemoryStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.Data[key]
	return ok
}

// Put 直接寫入原始字串，用於模擬損壞的資料
func (s *MemoryStore) Put(key, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Data[key] = raw
}
