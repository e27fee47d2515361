package models

type ReportQuery struct {
	Period string `form:"period" validate:"omitempty,oneof=week month quarter year"`
	Year   int    `form:"year" validate:"omitempty,gte=2000,lte=2100"`
}

type MonthlyReport struct {
	Period            string                    `json:"period,omitempty"`
	Year              int                       `json:"year,omitempty"`
	TotalAppointments int                       `json:"totalAppointments"`
	TotalRevenue      float64                   `json:"totalRevenue"`
	ByStatus          map[AppointmentStatus]int `json:"byStatus,omitempty"`
	Months            []MonthBucket             `json:"months,omitempty"`
}

type MonthBucket struct {
	Month        int     `json:"month"`
	Appointments int     `json:"appointments"`
	Revenue      float64 `json:"revenue"`
}

type AppointmentReport struct {
	Total    int                       `json:"total"`
	ByStatus map[AppointmentStatus]int `json:"byStatus,omitempty"`
	ByStaff  []StaffBucket             `json:"byStaff,omitempty"`
}

type StaffBucket struct {
	StaffID      int64  `json:"staffId"`
	StaffName    string `json:"staffName"`
	Appointments int    `json:"appointments"`
}

type ServiceReport struct {
	Services []ServiceBucket `json:"services"`
}

type ServiceBucket struct {
	ServiceID    int64   `json:"serviceId"`
	Name         string  `json:"name"`
	Appointments int     `json:"appointments"`
	Revenue      float64 `json:"revenue"`
}
