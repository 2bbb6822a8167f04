// File: internal/service/session.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"tutor-match/internal/cache"
	"tutor-match/internal/model"

	"github.com/rs/zerolog/log"
)

const minPasswordLength = 8

// Session 是目前登入的使用者，以 session id 存放在 key-value store
type Session struct {
	ID   string     `json:"id"`
	User model.User `json:"user"`
}

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Career          string
	Semester        int
}

// Sessions 管理 session 使用者的生命週期：登入或註冊時建立，登出時刪除
type Sessions struct {
	cache   cache.Cache
	latency time.Duration
	ttl     time.Duration
}

func NewSessions(c cache.Cache, latency, ttl time.Duration) *Sessions {
	return &Sessions{cache: c, latency: latency, ttl: ttl}
}

// MockUser 是登入時固定回傳的示範身分
func MockUser() model.User {
	return model.User{
		ID:         "user-demo-001",
		Name:       "María García",
		Email:      "maria.garcia@pucp.edu.pe",
		University: "PUCP",
		Career:     "Ingeniería Informática",
		Semester:   7,
		Bio:        "Me apasiona enseñar programación y matemática discreta.",
		AvatarURL:  "https://i.pravatar.cc/300?img=5",
		Subjects: []model.Subject{
			{
				ID:          "subj-demo-001",
				Name:        "Programación Orientada a Objetos",
				Category:    "Computación",
				HourlyRate:  35,
				Experience:  "2 años",
				Description: "Clases, herencia y patrones de diseño en Java.",
				IsActive:    true,
			},
			{
				ID:          "subj-demo-002",
				Name:        "Matemática Discreta",
				Category:    "Matemáticas",
				HourlyRate:  30,
				Experience:  "1 año",
				Description: "Lógica, conjuntos y grafos.",
				IsActive:    true,
			},
		},
		Rating:      4.7,
		ReviewCount: 23,
		Level:       model.LevelGold,
		Badges: []model.Badge{
			{ID: "badge-top", Name: "Top Tutor", Icon: "star", Description: "Entre los tutores mejor calificados"},
			{ID: "badge-verified", Name: "Verificada", Icon: "check", Description: "Identidad universitaria verificada"},
		},
		Verified:  true,
		CreatedAt: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Login 模擬網路延遲後以固定身分建立 session，不驗證密碼
// 有填 email 時沿用使用者輸入的 email，其餘欄位不變
func (s *Sessions) Login(ctx context.Context, email, password string) (*Session, error) {
	if err := sleep(ctx, s.latency); err != nil {
		return nil, err
	}
	user := MockUser()
	if e := strings.ToLower(strings.TrimSpace(email)); e != "" {
		user.Email = e
	}
	return s.create(ctx, user)
}

// ValidateRegistration 檢查註冊表單，不觸及任何儲存
// 依序檢查：確認密碼、密碼長度、email 網域
func ValidateRegistration(in RegisterInput) (model.University, error) {
	if in.Password != in.ConfirmPassword {
		return model.University{}, ErrPasswordMismatch
	}
	if len(in.Password) < minPasswordLength {
		return model.University{}, ErrPasswordTooShort
	}
	uni, ok := model.UniversityByEmail(in.Email)
	if !ok {
		return model.University{}, ErrUnknownUniversity
	}
	return uni, nil
}

// Register 驗證表單、模擬延遲，接著建立空白的 Bronze 使用者
func (s *Sessions) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	uni, err := ValidateRegistration(in)
	if err != nil {
		return nil, err
	}
	if err := sleep(ctx, s.latency); err != nil {
		return nil, err
	}

	semester := in.Semester
	if semester <= 0 {
		semester = 1
	}
	user := model.User{
		ID:         "user-" + newID(),
		Name:       strings.TrimSpace(in.Name),
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		University: uni.ShortName,
		Career:     strings.TrimSpace(in.Career),
		Semester:   semester,
		Subjects:   []model.Subject{},
		Level:      model.LevelBronze,
		Badges:     []model.Badge{},
		CreatedAt:  timeNow().UTC(),
	}
	return s.create(ctx, user)
}

func (s *Sessions) create(ctx context.Context, user model.User) (*Session, error) {
	sess := &Session{ID: newID(), User: user}
	if err := saveJSON(ctx, s.cache, sessionKey(sess.ID), sess.User, s.ttl); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("persist session failed")
		return nil, err
	}
	return sess, nil
}

// Current 取得 session 使用者；不存在或資料損壞時回傳 ErrNoSession
func (s *Sessions) Current(ctx context.Context, sessionID string) (*model.User, error) {
	var user model.User
	found, err := loadJSON(ctx, s.cache, sessionKey(sessionID), &user)
	if errors.Is(err, errCorrupt) {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("discarding unreadable session")
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoSession
	}
	return &user, nil
}

// Logout 刪除 session；重複登出不視為錯誤
func (s *Sessions) Logout(ctx context.Context, sessionID string) error {
	return deleteKey(ctx, s.cache, sessionKey(sessionID))
}

// update 對 session 使用者做一次 read-modify-write
func (s *Sessions) update(ctx context.Context, sessionID string, fn func(*model.User) error) (*model.User, error) {
	user, err := s.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(user); err != nil {
		return nil, err
	}
	if err := saveJSON(ctx, s.cache, sessionKey(sessionID), user, s.ttl); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("persist session failed")
		return nil, err
	}
	return user, nil
}
