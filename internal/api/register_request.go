package api

// 密碼長度與大學網域由 service 檢查，以回傳固定的錯誤訊息
// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name            string `form:"name" json:"name" validate:"required" example:"Lucía Ramos"`
	Email           string `form:"email" json:"email" validate:"required,email" example:"lucia.ramos@pucp.edu.pe"`
	Password        string `form:"password" json:"password" validate:"required" example:"password1"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" validate:"required" example:"password1"`
	Career          string `form:"career" json:"career" example:"Ingeniería Civil"`
	Semester        int    `form:"semester" json:"semester" validate:"omitempty,min=1,max=20" example:"3"`
}
