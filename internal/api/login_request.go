package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email" example:"maria.garcia@pucp.edu.pe"`
	Password string `form:"password" json:"password" validate:"required" example:"secret1"`
}
