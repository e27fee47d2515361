package models

import "time"

type Service struct {
	ID          int64      `json:"id" validate:"required"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price" validate:"gte=0"`
	Duration    int        `json:"duration" validate:"gte=0"` // in minutes
	IsActive    bool       `json:"isActive"`
	ProviderID  int64      `json:"providerId,omitempty"`
	Provider    *User      `json:"provider,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// OwnerID returns the provider that owns the service, 0 when the payload carries none.
func (s Service) OwnerID() int64 {
	if s.ProviderID != 0 {
		return s.ProviderID
	}
	if s.Provider != nil {
		return s.Provider.ID
	}
	return 0
}

type CreateServiceRequest struct {
	Name        string  `json:"name" form:"name" validate:"required"`
	Description string  `json:"description,omitempty" form:"description"`
	Price       float64 `json:"price" form:"price" validate:"gte=0"`
	Duration    int     `json:"duration" form:"duration" validate:"gt=0"`
	ProviderID  int64   `json:"providerId,omitempty" form:"providerId"`
}

// UpdateServiceRequest defines a partial update; nil fields are left untouched.
type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Duration    *int     `json:"duration,omitempty" validate:"omitempty,gt=0"`
	IsActive    *bool    `json:"isActive,omitempty"`
}
