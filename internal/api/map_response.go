package api

import "tutor-match/internal/model"

type Coordinate struct {
	Lat float64 `json:"lat" example:"-12.0464"`
	Lng float64 `json:"lng" example:"-77.0428"`
}

// swagger:model api.MapResponse
type MapResponse struct {
	Center Coordinate `json:"center"`
	// message 只在使用預設座標時出現
	Message string           `json:"message,omitempty" example:"location unavailable, showing default location"`
	Markers []model.Location `json:"markers"`
}
