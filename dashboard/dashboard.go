// Package dashboard derives the admin and provider dashboard figures from
// plain appointment and service lists. Everything is recomputed per call.
package dashboard

import (
	"sort"
	"time"

	"salonpro-web/models"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// Upcoming returns pending and confirmed appointments starting at or after now,
// soonest first. limit <= 0 means no limit.
func Upcoming(appts []models.Appointment, now time.Time, limit int) []models.Appointment {
	type dated struct {
		at time.Time
		a  models.Appointment
	}
	var out []dated
	for _, a := range appts {
		if a.Status != models.StatusPending && a.Status != models.StatusConfirmed {
			continue
		}
		at, err := startsAt(a, now.Location())
		if err != nil || at.Before(now) {
			continue
		}
		out = append(out, dated{at: at, a: a})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].at.Before(out[j].at) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	res := make([]models.Appointment, len(out))
	for i, d := range out {
		res[i] = d.a
	}
	return res
}

func startsAt(a models.Appointment, loc *time.Location) (time.Time, error) {
	clock := a.StartTime
	if len(clock) > 5 {
		clock = clock[:5]
	}
	return time.ParseInLocation(dateTimeLayout, day(a.Date)+" "+clock, loc)
}

// day trims a timestamp such as 2025-06-01T00:00:00Z to its calendar day.
func day(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}

func within(date, from, to string) bool {
	d := day(date)
	return (from == "" || d >= from) && (to == "" || d <= to)
}

type ServiceCount struct {
	ServiceID int64   `json:"serviceId"`
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Revenue   float64 `json:"revenue"`
}

// TopServices ranks services by confirmed and completed appointments.
// Ties are broken by name.
func TopServices(appts []models.Appointment, catalog []models.Service, n int) []ServiceCount {
	byID := index(catalog)
	counts := map[int64]*ServiceCount{}
	for _, a := range appts {
		if !a.Status.Billable() {
			continue
		}
		id := a.ServiceRef()
		c, ok := counts[id]
		if !ok {
			c = &ServiceCount{ServiceID: id, Name: serviceName(a, byID)}
			counts[id] = c
		}
		c.Count++
		c.Revenue += price(a, byID)
	}
	out := make([]ServiceCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// EstimatedRevenue sums the service price of confirmed and completed appointments.
func EstimatedRevenue(appts []models.Appointment, catalog []models.Service) float64 {
	byID := index(catalog)
	total := 0.0
	for _, a := range appts {
		if a.Status.Billable() {
			total += price(a, byID)
		}
	}
	return total
}

type RateSet struct {
	Total        int     `json:"total"`
	Success      float64 `json:"success"`
	Cancellation float64 `json:"cancellation"`
	NoShow       float64 `json:"noShow"`
}

// Rates computes outcome ratios for appointments dated within [from, to].
// Empty bounds are open. No appointments in range yields zero rates.
func Rates(appts []models.Appointment, from, to string) RateSet {
	var rs RateSet
	var success, cancelled, noShow int
	for _, a := range appts {
		if !within(a.Date, from, to) {
			continue
		}
		rs.Total++
		switch {
		case a.Status.Billable():
			success++
		case a.Status == models.StatusCancelled:
			cancelled++
		case a.Status == models.StatusNoShow:
			noShow++
		}
	}
	if rs.Total == 0 {
		return rs
	}
	total := float64(rs.Total)
	rs.Success = float64(success) / total
	rs.Cancellation = float64(cancelled) / total
	rs.NoShow = float64(noShow) / total
	return rs
}

// Summary is what both dashboards render.
type Summary struct {
	From        string                           `json:"from"`
	To          string                           `json:"to"`
	Upcoming    []models.Appointment             `json:"upcoming"`
	TopServices []ServiceCount                   `json:"topServices"`
	Revenue     float64                          `json:"estimatedRevenue"`
	Rates       RateSet                          `json:"rates"`
	ByStatus    map[models.AppointmentStatus]int `json:"byStatus"`
	Stats       *models.AppointmentStatistics    `json:"statistics,omitempty"`
	Services    int                              `json:"services"`
	ActiveUsers int                              `json:"activeUsers,omitempty"`
}

// Input gathers the lists a dashboard is derived from.
type Input struct {
	Appointments []models.Appointment
	Services     []models.Service
	Users        []models.User
	Stats        *models.AppointmentStatistics
	From, To     string
	Now          time.Time
}

const (
	upcomingLimit = 5
	topLimit      = 5
)

// Build derives a Summary. Revenue, popularity and status counts are restricted
// to the selected range like the rates.
func Build(in Input) Summary {
	if in.Now.IsZero() {
		in.Now = time.Now()
	}
	inRange := make([]models.Appointment, 0, len(in.Appointments))
	byStatus := map[models.AppointmentStatus]int{}
	for _, a := range in.Appointments {
		if !within(a.Date, in.From, in.To) {
			continue
		}
		inRange = append(inRange, a)
		byStatus[a.Status]++
	}
	s := Summary{
		From:        in.From,
		To:          in.To,
		Upcoming:    Upcoming(in.Appointments, in.Now, upcomingLimit),
		TopServices: TopServices(inRange, in.Services, topLimit),
		Revenue:     EstimatedRevenue(inRange, in.Services),
		Rates:       Rates(in.Appointments, in.From, in.To),
		ByStatus:    byStatus,
		Stats:       in.Stats,
		Services:    len(in.Services),
	}
	for _, u := range in.Users {
		if u.IsActive {
			s.ActiveUsers++
		}
	}
	return s
}

// DefaultRange is the current month up to today.
func DefaultRange(now time.Time) (from, to string) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first.Format(dateLayout), now.Format(dateLayout)
}

// NormalizeRange validates user supplied bounds, falling back to DefaultRange
// for missing or malformed values and swapping reversed ones.
func NormalizeRange(from, to string, now time.Time) (string, string) {
	defFrom, defTo := DefaultRange(now)
	if _, err := time.Parse(dateLayout, from); err != nil {
		from = defFrom
	}
	if _, err := time.Parse(dateLayout, to); err != nil {
		to = defTo
	}
	if from > to {
		from, to = to, from
	}
	return from, to
}

func index(catalog []models.Service) map[int64]models.Service {
	m := make(map[int64]models.Service, len(catalog))
	for _, s := range catalog {
		m[s.ID] = s
	}
	return m
}

func price(a models.Appointment, byID map[int64]models.Service) float64 {
	if s, ok := byID[a.ServiceRef()]; ok {
		return s.Price
	}
	if a.Service != nil {
		return a.Service.Price
	}
	return 0
}

func serviceName(a models.Appointment, byID map[int64]models.Service) string {
	if s, ok := byID[a.ServiceRef()]; ok {
		return s.Name
	}
	if a.Service != nil {
		return a.Service.Name
	}
	return ""
}
