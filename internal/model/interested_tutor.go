// File: internal/model/interested_tutor.go
package model

import "time"

type InterestedTutor struct {
	Tutor   User      `json:"tutor"`
	SavedAt time.Time `json:"saved_at"`
}
