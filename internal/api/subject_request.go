package api

// swagger:model api.SubjectRequest
type SubjectRequest struct {
	Name        string  `form:"name" json:"name" validate:"required" example:"Cálculo I"`
	Category    string  `form:"category" json:"category" validate:"required" example:"Matemática"`
	HourlyRate  float64 `form:"hourly_rate" json:"hourly_rate" validate:"gte=0" example:"30"`
	Experience  string  `form:"experience" json:"experience" example:"2 años"`
	Description string  `form:"description" json:"description" example:"Límites, derivadas e integrales."`
}

// swagger:model api.SubjectActiveRequest
type SubjectActiveRequest struct {
	Active string `form:"active" json:"active" validate:"required,oneof=true false" example:"false"`
}
