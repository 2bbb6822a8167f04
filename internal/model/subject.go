// File: internal/model/subject.go
package model

type Subject struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	HourlyRate  float64 `json:"hourly_rate"`
	Experience  string  `json:"experience"`
	Description string  `json:"description"`
	IsActive    bool    `json:"is_active"`
}
