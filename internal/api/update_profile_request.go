package api

// swagger:model api.UpdateProfileRequest
type UpdateProfileRequest struct {
	Name      string `form:"name" json:"name" validate:"required" example:"María García"`
	Career    string `form:"career" json:"career" example:"Ingeniería Informática"`
	Semester  int    `form:"semester" json:"semester" validate:"omitempty,min=1,max=20" example:"7"`
	Bio       string `form:"bio" json:"bio" validate:"max=500" example:"Me gusta enseñar."`
	AvatarURL string `form:"avatar_url" json:"avatar_url" validate:"omitempty,url" example:"https://i.pravatar.cc/300?img=5"`
}
