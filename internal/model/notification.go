// File: internal/model/notification.go
package model

import "time"

type NotificationKind string

const (
	NotificationInterest NotificationKind = "interest"
	NotificationMessage  NotificationKind = "message"
)

type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	CreatedAt time.Time        `json:"created_at"`
	Read      bool             `json:"read"`
}
