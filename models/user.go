package models

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleClient   Role = "cliente"
	RoleProvider Role = "prestador_servicio"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleClient, RoleProvider:
		return true
	}
	return false
}

// HomePath is where a freshly logged-in user of this role lands.
func (r Role) HomePath() string {
	switch r {
	case RoleAdmin:
		return "/admin/inicio"
	case RoleProvider:
		return "/prestador/inicio"
	default:
		return "/"
	}
}

func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrador"
	case RoleClient:
		return "Cliente"
	case RoleProvider:
		return "Prestador de servicio"
	}
	return string(r)
}

type User struct {
	ID            int64      `json:"id" validate:"required"`
	Email         string     `json:"email" validate:"required,email"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Phone         string     `json:"phone,omitempty"`
	Role          Role       `json:"role" validate:"required,oneof=admin cliente prestador_servicio"`
	Specialty     *string    `json:"specialty"`
	IsActive      bool       `json:"isActive"`
	EmailVerified bool       `json:"emailVerified"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

func (u User) Is(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

type CreateUserRequest struct {
	Email     string  `json:"email" form:"email" validate:"required,email"`
	Password  string  `json:"password" form:"password" validate:"required,min=8"`
	FirstName string  `json:"firstName" form:"firstName" validate:"required"`
	LastName  string  `json:"lastName" form:"lastName" validate:"required"`
	Phone     string  `json:"phone,omitempty" form:"phone"`
	Role      Role    `json:"role" form:"role" validate:"required,oneof=admin cliente prestador_servicio"`
	Specialty *string `json:"specialty,omitempty" form:"specialty"`
}

// UpdateUserRequest only sends the fields that are set.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Role      *Role   `json:"role,omitempty" validate:"omitempty,oneof=admin cliente prestador_servicio"`
	Specialty *string `json:"specialty,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}
