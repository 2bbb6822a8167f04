// File: internal/service/conversation.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tutor-match/internal/cache"
	"tutor-match/internal/model"

	"github.com/rs/zerolog/log"
)

// Conversations 保存使用者的配對與訊息；第一次讀取時以預設資料初始化
type Conversations struct {
	cache    cache.Cache
	notifier notifier
}

func NewConversations(c cache.Cache, n notifier) *Conversations {
	return &Conversations{cache: c, notifier: n}
}

// seedConversations 為 owner 產生兩個配對與三則訊息
func seedConversations(owner model.User, now time.Time) ([]model.Match, []model.Message) {
	me := owner.Participant()
	carlos := model.Participant{ID: "tutor-001", Name: "Carlos Mendoza", AvatarURL: "https://i.pravatar.cc/300?img=12"}
	ana := model.Participant{ID: "tutor-002", Name: "Ana Torres", AvatarURL: "https://i.pravatar.cc/300?img=47"}

	matches := []model.Match{
		{ID: "match-1", User1: me, User2: carlos, Subject: "Cálculo I", Status: model.MatchAccepted, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: "match-2", User1: me, User2: ana, Subject: "Física General", Status: model.MatchPending, CreatedAt: now.Add(-24 * time.Hour)},
	}
	messages := []model.Message{
		{ID: "msg-1", MatchID: "match-1", SenderID: carlos.ID, Content: "¡Hola! Vi que necesitas ayuda con Cálculo I.", Timestamp: now.Add(-47 * time.Hour)},
		{ID: "msg-2", MatchID: "match-1", SenderID: me.ID, Content: "Sí, tengo el parcial la próxima semana.", Timestamp: now.Add(-46 * time.Hour)},
		{ID: "msg-3", MatchID: "match-2", SenderID: ana.ID, Content: "Hola, puedo ayudarte con Física General.", Timestamp: now.Add(-23 * time.Hour)},
	}
	return matches, messages
}

// load 讀取配對與訊息；沒有資料時寫入預設資料
// 配對損壞時改用預設配對但不覆寫，訊息仍照常讀取，已送出的訊息不會被預設資料蓋掉
func (s *Conversations) load(ctx context.Context, owner model.User) ([]model.Match, []model.Message) {
	seedMatches, seedMessages := seedConversations(owner, timeNow().UTC())

	var matches []model.Match
	seeded := false
	foundMatches, err := loadJSON(ctx, s.cache, matchesKey(owner.ID), &matches)
	switch {
	case err != nil:
		logLoadFailure(err, owner.ID, "matches")
		matches, seeded = seedMatches, true
	case !foundMatches || len(matches) == 0:
		if err := saveJSON(ctx, s.cache, matchesKey(owner.ID), seedMatches, 0); err != nil {
			log.Warn().Err(err).Str("user_id", owner.ID).Msg("persist seed matches failed")
		}
		if err := saveJSON(ctx, s.cache, messagesKey(owner.ID), seedMessages, 0); err != nil {
			log.Warn().Err(err).Str("user_id", owner.ID).Msg("persist seed messages failed")
		}
		return seedMatches, seedMessages
	}

	var messages []model.Message
	foundMessages, err := loadJSON(ctx, s.cache, messagesKey(owner.ID), &messages)
	if err != nil {
		logLoadFailure(err, owner.ID, "messages")
		return matches, seedMessages
	}
	if !foundMessages && seeded {
		return matches, seedMessages
	}
	if messages == nil {
		messages = []model.Message{}
	}
	return matches, messages
}

func logLoadFailure(err error, userID, what string) {
	if errors.Is(err, errCorrupt) {
		log.Debug().Err(err).Str("user_id", userID).Msgf("falling back to seed %s", what)
		return
	}
	log.Warn().Err(err).Str("user_id", userID).Msgf("read %s failed", what)
}

func (s *Conversations) Matches(ctx context.Context, owner model.User) []model.Match {
	matches, _ := s.load(ctx, owner)
	return matches
}

// SearchMatches 以對方姓名或科目做不分大小寫的子字串比對
func (s *Conversations) SearchMatches(ctx context.Context, owner model.User, query string) []model.Match {
	matches := s.Matches(ctx, owner)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return matches
	}
	found := []model.Match{}
	for _, m := range matches {
		partner := strings.ToLower(m.Partner(owner.ID).Name)
		subject := strings.ToLower(m.Subject)
		if strings.Contains(partner, q) || strings.Contains(subject, q) {
			found = append(found, m)
		}
	}
	return found
}

// Messages 回傳配對內的訊息，依時間先後
func (s *Conversations) Messages(ctx context.Context, owner model.User, matchID string) ([]model.Message, error) {
	matches, messages := s.load(ctx, owner)
	if findMatch(matches, matchID) == nil {
		return nil, ErrMatchNotFound
	}
	out := []model.Message{}
	for _, m := range messages {
		if m.MatchID == matchID {
			out = append(out, m)
		}
	}
	return out, nil
}

// Send 附加一則訊息並寫回完整訊息清單；空白內容不會寫入
func (s *Conversations) Send(ctx context.Context, owner model.User, matchID, content string) (*model.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	matches, messages := s.load(ctx, owner)
	match := findMatch(matches, matchID)
	if match == nil {
		return nil, ErrMatchNotFound
	}

	now := timeNow().UTC()
	msg := model.Message{
		ID:        messageID(messages, now),
		MatchID:   matchID,
		SenderID:  owner.ID,
		Content:   content,
		Timestamp: now,
	}
	messages = append(messages, msg)
	if err := saveJSON(ctx, s.cache, messagesKey(owner.ID), messages, 0); err != nil {
		log.Error().Err(err).Str("user_id", owner.ID).Msg("write messages failed")
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Notify(owner.ID, model.Notification{
			Kind:  model.NotificationMessage,
			Title: "Message sent",
			Body:  fmt.Sprintf("Your message to %s was delivered", match.Partner(owner.ID).Name),
		})
	}
	return &msg, nil
}

func findMatch(matches []model.Match, id string) *model.Match {
	for i := range matches {
		if matches[i].ID == id {
			return &matches[i]
		}
	}
	return nil
}

// messageID 以時間戳產生 id，同一奈秒內重複時往後遞增
func messageID(existing []model.Message, now time.Time) string {
	taken := make(map[string]struct{}, len(existing))
	for _, m := range existing {
		taken[m.ID] = struct{}{}
	}
	n := now.UnixNano()
	for {
		id := fmt.Sprintf("msg-%d", n)
		if _, ok := taken[id]; !ok {
			return id
		}
		n++
	}
}
