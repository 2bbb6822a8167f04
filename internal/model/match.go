// File: internal/model/match.go
package model

import "time"

type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
)

type Participant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type Match struct {
	ID        string      `json:"id"`
	User1     Participant `json:"user1"`
	User2     Participant `json:"user2"`
	Subject   string      `json:"subject"`
	Status    MatchStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// Partner 回傳相對於 userID 的另一方
func (m Match) Partner(userID string) Participant {
	if m.User1.ID == userID {
		return m.User2
	}
	return m.User1
}

type Message struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"match_id"`
	SenderID  string    `json:"sender_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
