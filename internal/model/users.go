package model

import "strings"

type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleCarrier   Role = "Fletera"
	RoleManager   Role = "Manager"
	RoleLogistics Role = "Logistics"
)

var roleAliases = map[string]Role{
	"admin":         RoleAdmin,
	"administrador": RoleAdmin,
	"fletera":       RoleCarrier,
	"carrier":       RoleCarrier,
	"manager":       RoleManager,
	"gerente":       RoleManager,
	"logistics":     RoleLogistics,
	"logistica":     RoleLogistics,
}

// ParseRole - приводит роль к каноническому виду, неизвестная роль возвращается как есть
func ParseRole(raw string) Role {
	if role, ok := roleAliases[normalizeLabel(raw)]; ok {
		return role
	}
	return Role(strings.TrimSpace(raw))
}

// Unrestricted - роль видит все станции
func (r Role) Unrestricted() bool {
	return r == RoleAdmin || r == RoleLogistics
}

type User struct {
	Email    string `json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Stations string `json:"stations"`
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserInfo struct {
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Stations []string `json:"stations"`
}

// SplitScope - разбивает список станций через запятую, пустые элементы отбрасываются
func SplitScope(scope string) []string {
	parts := strings.Split(scope, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			result = append(result, t)
		}
	}
	return result
}
