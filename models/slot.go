package models

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotReserved  SlotStatus = "reserved"
	SlotBlocked   SlotStatus = "blocked"
	SlotCompleted SlotStatus = "completed"
	SlotCancelled SlotStatus = "cancelled"
)

var staffEditableSlots = []SlotStatus{SlotAvailable, SlotBlocked, SlotCancelled}

func (s SlotStatus) Valid() bool {
	switch s {
	case SlotAvailable, SlotReserved, SlotBlocked, SlotCompleted, SlotCancelled:
		return true
	}
	return false
}

func (s SlotStatus) Label() string {
	switch s {
	case SlotAvailable:
		return "Disponible"
	case SlotReserved:
		return "Reservado"
	case SlotBlocked:
		return "Bloqueado"
	case SlotCompleted:
		return "Completado"
	case SlotCancelled:
		return "Cancelado"
	}
	return string(s)
}

// StaffEditable reports whether staff may move a slot in or out of this status.
// Reserved and completed slots follow the appointment lifecycle.
func (s SlotStatus) StaffEditable() bool {
	for _, e := range staffEditableSlots {
		if s == e {
			return true
		}
	}
	return false
}

// StaffOptions lists the statuses staff can move a slot to from s.
func (s SlotStatus) StaffOptions() []SlotStatus {
	if !s.StaffEditable() {
		return nil
	}
	out := make([]SlotStatus, 0, len(staffEditableSlots)-1)
	for _, e := range staffEditableSlots {
		if e != s {
			out = append(out, e)
		}
	}
	return out
}

type ServiceSlot struct {
	ID        int64      `json:"id" validate:"required"`
	ServiceID int64      `json:"serviceId,omitempty"`
	Service   *Service   `json:"service,omitempty"`
	Date      string     `json:"date" validate:"required"`
	StartTime string     `json:"startTime" validate:"required"`
	EndTime   string     `json:"endTime" validate:"required"`
	Status    SlotStatus `json:"status" validate:"required"`
	ClientID  *int64     `json:"clientId,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// ParentServiceID returns the slot's service reference from either shape the API sends.
func (s ServiceSlot) ParentServiceID() int64 {
	if s.ServiceID != 0 {
		return s.ServiceID
	}
	if s.Service != nil {
		return s.Service.ID
	}
	return 0
}

type GenerateSlotsRequest struct {
	ProviderID      int64  `json:"providerId" validate:"required"`
	ServiceID       int64  `json:"serviceId" form:"serviceId" validate:"required"`
	Date            string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string `json:"startTime" form:"startTime" validate:"required,datetime=15:04"`
	EndTime         string `json:"endTime" form:"endTime" validate:"required,datetime=15:04"`
	DurationMinutes *int   `json:"durationMinutes,omitempty" form:"durationMinutes" validate:"omitempty,gt=0"`
}

type UpdateSlotStatusRequest struct {
	Status   SlotStatus `json:"status" validate:"required"`
	Notes    string     `json:"notes,omitempty"`
	ClientID *int64     `json:"clientId,omitempty"`
}
