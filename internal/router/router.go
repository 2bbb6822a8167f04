// File: internal/router/router.go
package router

import (
	"time"

	"tutor-match/internal/cache"
	"tutor-match/internal/database"
	"tutor-match/internal/handler"
	"tutor-match/internal/handler/auth"
	"tutor-match/internal/handler/catalog"
	"tutor-match/internal/handler/chat"
	"tutor-match/internal/handler/matching"
	"tutor-match/internal/handler/profile"
	"tutor-match/internal/middleware"
	"tutor-match/internal/service"
	"tutor-match/internal/worker"

	"github.com/labstack/echo/v4"
)

// Options 是 session 相關的設定
type Options struct {
	JWTSecret        string
	SessionTTL       time.Duration
	SimulatedLatency time.Duration
}

// Setup 建立 stores 並註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, kv cache.Cache, pool worker.Pool, opts Options) {
	tokens := service.NewTokens(opts.JWTSecret, opts.SessionTTL)
	sessions := service.NewSessions(kv, opts.SimulatedLatency, opts.SessionTTL)
	notifications := service.NewNotifications(kv)
	notifier := service.NewNotifier(notifications, pool)
	interested := service.NewInterestedTutors(kv, notifier)
	conversations := service.NewConversations(kv, notifier)

	requireSession := middleware.RequireSession(tokens, sessions)

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, kv))

	// 登入、註冊、登出
	api.POST("/auth/login", auth.LoginHandler(sessions, tokens))
	api.POST("/auth/register", auth.RegisterHandler(sessions, tokens))
	api.POST("/auth/logout", auth.LogoutHandler(sessions), requireSession)

	// 目前使用者的個人資料與科目
	me := api.Group("/me", requireSession)
	me.GET("", profile.GetMeHandler())
	me.PUT("", profile.UpdateMeHandler(sessions))
	me.POST("/subjects", profile.AddSubjectHandler(sessions))
	me.PUT("/subjects/:subject_id", profile.UpdateSubjectHandler(sessions))
	me.PATCH("/subjects/:subject_id/active", profile.SetSubjectActiveHandler(sessions))
	me.DELETE("/subjects/:subject_id", profile.RemoveSubjectHandler(sessions))

	// 配對 feed 與感興趣清單
	api.GET("/feed", matching.FeedHandler(db, interested), requireSession)
	api.POST("/feed/:tutor_id/interest", matching.InterestHandler(db, interested), requireSession)
	interestedGroup := api.Group("/interested", requireSession)
	interestedGroup.GET("", matching.ListInterestedHandler(interested))
	interestedGroup.DELETE("", matching.ClearInterestedHandler(interested))
	interestedGroup.DELETE("/:tutor_id", matching.RemoveInterestedHandler(interested))

	// 配對與訊息
	matches := api.Group("/matches", requireSession)
	matches.GET("", chat.ListMatchesHandler(conversations))
	matches.GET("/:match_id/messages", chat.ListMessagesHandler(conversations))
	matches.POST("/:match_id/messages", chat.SendMessageHandler(conversations))

	// 通知
	notices := api.Group("/notifications", requireSession)
	notices.GET("", chat.ListNotificationsHandler(notifications))
	notices.POST("/read", chat.MarkNotificationsReadHandler(notifications))
	notices.DELETE("", chat.ClearNotificationsHandler(notifications))

	// 公開的 catalog
	api.GET("/tutors/:tutor_id", catalog.GetTutorHandler(db))
	api.GET("/tutors/:tutor_id/reviews", catalog.TutorReviewsHandler(db))
	api.GET("/reviews", catalog.RecentReviewsHandler(db))
	api.GET("/map", catalog.MapHandler(db))
}
