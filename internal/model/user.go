// File: internal/model/user.go
package model

import "time"

// TutorLevel 顯示用的導師等級，不會自動晉升
type TutorLevel string

const (
	LevelBronze   TutorLevel = "Bronze"
	LevelSilver   TutorLevel = "Silver"
	LevelGold     TutorLevel = "Gold"
	LevelPlatinum TutorLevel = "Platinum"
)

type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type User struct {
	ID          string     `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Email       string     `db:"email" json:"email"`
	University  string     `db:"university" json:"university"`
	Career      string     `db:"career" json:"career"`
	Semester    int        `db:"semester" json:"semester"`
	Bio         string     `db:"bio" json:"bio"`
	AvatarURL   string     `db:"avatar_url" json:"avatar_url"`
	Subjects    []Subject  `db:"subjects" json:"subjects"`
	Rating      float64    `db:"rating" json:"rating"`
	ReviewCount int        `db:"review_count" json:"review_count"`
	Level       TutorLevel `db:"level" json:"level"`
	Badges      []Badge    `db:"badges" json:"badges"`
	Verified    bool       `db:"verified" json:"verified"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// Participant 是配對中對使用者的精簡參照
func (u User) Participant() Participant {
	return Participant{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}
}
