package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DB 是導師 catalog 的唯讀查詢介面，*pgxpool.Pool 直接實作
// catalog 只由 migration 寫入，執行期間只會查詢，所以這裡不提供 Exec
// Ping 給 /api/ping 健康檢查使用；Close 在 service 結束時釋放連線池
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(context.Context) error
	Close()
}

// FakeDB 讓 store 與 handler 測試不需要 Postgres
// 沒有設定的查詢會 panic，測試可以立刻發現多出來的 SQL
type FakeDB struct {
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	PingFn     func(ctx context.Context) error
	CloseFn    func()
}

// Query 用於導師清單、評論與地圖位置
func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, sql, args...)
	}
	panic("unexpected Query")
}

// QueryRow 用於依 id 取得單一導師
func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn != nil {
		return f.QueryRowFn(ctx, sql, args...)
	}
	panic("unexpected QueryRow")
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
