package models

import "time"

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pendiente"
	StatusConfirmed AppointmentStatus = "confirmada"
	StatusCompleted AppointmentStatus = "completada"
	StatusCancelled AppointmentStatus = "cancelada"
	StatusNoShow    AppointmentStatus = "no_asistio"
)

var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusNoShow},
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// NextStatuses returns the forward transitions staff may request from s.
func (s AppointmentStatus) NextStatuses() []AppointmentStatus {
	next := appointmentTransitions[s]
	out := make([]AppointmentStatus, len(next))
	copy(out, next)
	return out
}

func (s AppointmentStatus) CanTransition(to AppointmentStatus) bool {
	for _, n := range appointmentTransitions[s] {
		if n == to {
			return true
		}
	}
	return false
}

// ClientCancellable reports whether the client may still cancel the appointment.
func (s AppointmentStatus) ClientCancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Billable statuses count towards revenue and popularity.
func (s AppointmentStatus) Billable() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

func (s AppointmentStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pendiente"
	case StatusConfirmed:
		return "Confirmada"
	case StatusCompleted:
		return "Completada"
	case StatusCancelled:
		return "Cancelada"
	case StatusNoShow:
		return "No asistió"
	}
	return string(s)
}

type Appointment struct {
	ID                 int64             `json:"id" validate:"required"`
	ClientID           int64             `json:"clientId,omitempty"`
	StaffID            int64             `json:"staffId,omitempty"`
	ServiceID          int64             `json:"serviceId,omitempty"`
	Client             *User             `json:"client,omitempty"`
	Staff              *User             `json:"staff,omitempty"`
	Service            *Service          `json:"service,omitempty"`
	Date               string            `json:"date" validate:"required"`
	StartTime          string            `json:"startTime" validate:"required"`
	EndTime            string            `json:"endTime,omitempty"`
	Status             AppointmentStatus `json:"status" validate:"required"`
	Notes              string            `json:"notes,omitempty"`
	CancellationReason string            `json:"cancellationReason,omitempty"`
	CreatedAt          *time.Time        `json:"createdAt,omitempty"`
	UpdatedAt          *time.Time        `json:"updatedAt,omitempty"`
}

func (a Appointment) ServiceRef() int64 {
	if a.ServiceID != 0 {
		return a.ServiceID
	}
	if a.Service != nil {
		return a.Service.ID
	}
	return 0
}

type CreateAppointmentRequest struct {
	ServiceID int64  `json:"serviceId" validate:"required"`
	StaffID   int64  `json:"staffId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required"`
	Notes     string `json:"notes,omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status" validate:"required"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type AppointmentStatistics struct {
	Total      int                       `json:"total"`
	ByStatus   map[AppointmentStatus]int `json:"byStatus,omitempty"`
	Today      int                       `json:"today,omitempty"`
	ThisWeek   int                       `json:"thisWeek,omitempty"`
	ThisMonth  int                       `json:"thisMonth,omitempty"`
	TotalUsers int                       `json:"totalUsers,omitempty"`
}
