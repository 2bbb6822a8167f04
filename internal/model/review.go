// File: internal/model/review.go
package model

import "time"

type Review struct {
	ID           int       `db:"id" json:"id"`
	TutorID      string    `db:"tutor_id" json:"tutor_id"`
	ReviewerName string    `db:"reviewer_name" json:"reviewer_name"`
	Rating       int       `db:"rating" json:"rating"`
	Comment      string    `db:"comment" json:"comment"`
	Subject      string    `db:"subject" json:"subject"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Location struct {
	TutorID string  `db:"tutor_id" json:"tutor_id"`
	Name    string  `db:"name" json:"name"`
	Subject string  `db:"subject" json:"subject"`
	Lat     float64 `db:"lat" json:"lat"`
	Lng     float64 `db:"lng" json:"lng"`
}
