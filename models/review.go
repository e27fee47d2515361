package models

import "time"

type Review struct {
	ID            int64      `json:"id" validate:"required"`
	ServiceID     int64      `json:"serviceId"`
	ClientID      int64      `json:"clientId"`
	Client        *User      `json:"client,omitempty"`
	AppointmentID *int64     `json:"appointmentId,omitempty"`
	Rating        int        `json:"rating" validate:"min=1,max=5"`
	Comment       string     `json:"comment,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

type ReviewStats struct {
	ServiceID     int64       `json:"serviceId"`
	AverageRating float64     `json:"averageRating"`
	TotalReviews  int         `json:"totalReviews"`
	Distribution  map[int]int `json:"distribution,omitempty"`
}

type CreateReviewRequest struct {
	ServiceID     int64  `json:"serviceId" form:"serviceId" validate:"required"`
	AppointmentID *int64 `json:"appointmentId,omitempty" form:"appointmentId"`
	Rating        int    `json:"rating" form:"rating" validate:"min=1,max=5"`
	Comment       string `json:"comment,omitempty" form:"comment" validate:"max=1000"`
}
