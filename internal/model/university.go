// File: internal/model/university.go
package model

import "strings"

type University struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Domain    string `json:"domain"`
}

// Universities 已登錄的大學，以 email 網域辨識
var Universities = []University{
	{Name: "Pontificia Universidad Católica del Perú", ShortName: "PUCP", Domain: "pucp.edu.pe"},
	{Name: "Universidad Nacional de Ingeniería", ShortName: "UNI", Domain: "uni.edu.pe"},
	{Name: "Universidad Nacional Mayor de San Marcos", ShortName: "UNMSM", Domain: "unmsm.edu.pe"},
	{Name: "Universidad Peruana de Ciencias Aplicadas", ShortName: "UPC", Domain: "upc.edu.pe"},
	{Name: "Universidad del Pacífico", ShortName: "UP", Domain: "up.edu.pe"},
}

// UniversityByEmail 依 email 網域查找大學（不分大小寫）
func UniversityByEmail(email string) (University, bool) {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return University{}, false
	}
	domain := strings.ToLower(strings.TrimSpace(email[at+1:]))
	for _, u := range Universities {
		if u.Domain == domain {
			return u, true
		}
	}
	return University{}, false
}
