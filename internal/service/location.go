package service

import (
	"math"
	"strconv"
	"strings"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DefaultCenter 無法取得位置時使用的座標（Lima）
var DefaultCenter = Coordinate{Lat: -12.0464, Lng: -77.0428}

const LocationFallbackMessage = "location unavailable, showing default location"

// ResolveCenter 解析使用者提供的座標；缺少或無效時回傳預設座標與提示訊息
func ResolveCenter(lat, lng string) (Coordinate, string) {
	la, errLat := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	ln, errLng := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if errLat != nil || errLng != nil || !validCoordinate(la, ln) {
		return DefaultCenter, LocationFallbackMessage
	}
	return Coordinate{Lat: la, Lng: ln}, ""
}

func validCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
