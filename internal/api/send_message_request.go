package api

// 內容為空白時由 service 拒絕
// swagger:model api.SendMessageRequest
type SendMessageRequest struct {
	Content string `form:"content" json:"content" example:"Hola, ¿tienes disponibilidad el lunes?"`
}
