package fakeapi

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"salonpro-web/models"
)

func (s *Server) createAppointment(c *gin.Context) {
	var in models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.currentUser(c)
	if !ok {
		return
	}
	if _, found := s.services[in.ServiceID]; !found {
		notFound(c, "Servicio", in.ServiceID)
		return
	}
	var slot *models.ServiceSlot
	for _, sl := range s.slots {
		if sl.ServiceID == in.ServiceID && sl.Date == in.Date && sl.StartTime == in.StartTime && sl.Status == models.SlotAvailable {
			slot = sl
			break
		}
	}
	if slot == nil {
		fail(c, http.StatusConflict, "El horario seleccionado ya no está disponible")
		return
	}
	clientID := u.ID
	slot.Status = models.SlotReserved
	slot.ClientID = &clientID
	now := time.Now().UTC()
	a := &models.Appointment{
		ID: s.id(), ClientID: u.ID, StaffID: in.StaffID, ServiceID: in.ServiceID,
		Date: in.Date, StartTime: in.StartTime, EndTime: slot.EndTime,
		Status: models.StatusPending, Notes: in.Notes, CreatedAt: &now, UpdatedAt: &now,
	}
	s.appointments[a.ID] = a
	c.JSON(http.StatusCreated, s.expand(*a))
}

// expand embeds the related client, staff and service like the real API does.
func (s *Server) expand(a models.Appointment) models.Appointment {
	if u, ok := s.users[a.ClientID]; ok {
		cp := *u
		a.Client = &cp
	}
	if u, ok := s.users[a.StaffID]; ok {
		cp := *u
		a.Staff = &cp
	}
	if svc, ok := s.services[a.ServiceID]; ok {
		cp := *svc
		a.Service = &cp
	}
	return a
}

func (s *Server) collect(keep func(*models.Appointment) bool) []models.Appointment {
	out := []models.Appointment{}
	for _, a := range s.appointments {
		if keep(a) {
			out = append(out, s.expand(*a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Server) listAppointments(keep func(*models.User, *models.Appointment) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		u, ok := s.currentUser(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, s.collect(func(a *models.Appointment) bool { return keep(u, a) }))
	}
}

func (s *Server) byStaff(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currentUser(c); !ok {
		return
	}
	c.JSON(http.StatusOK, s.collect(func(a *models.Appointment) bool {
		if a.StaffID == id {
			return true
		}
		svc, found := s.services[a.ServiceID]
		return found && svc.ProviderID == id
	}))
}

func (s *Server) byDateRange(c *gin.Context) {
	from, to := c.Query("startDate"), c.Query("endDate")
	if from == "" || to == "" {
		fail(c, http.StatusBadRequest, "startDate y endDate son obligatorios")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currentUser(c); !ok {
		return
	}
	c.JSON(http.StatusOK, s.collect(func(a *models.Appointment) bool {
		return a.Date >= from && a.Date <= to
	}))
}

func (s *Server) statistics(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currentUser(c); !ok {
		return
	}
	stats := models.AppointmentStatistics{
		ByStatus:   map[models.AppointmentStatus]int{},
		TotalUsers: len(s.users),
	}
	today := time.Now().Format("2006-01-02")
	for _, a := range s.appointments {
		stats.Total++
		stats.ByStatus[a.Status]++
		if a.Date == today {
			stats.Today++
		}
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) updateAppointmentStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in models.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currentUser(c); !ok {
		return
	}
	a, found := s.appointments[id]
	if !found {
		notFound(c, "Cita", id)
		return
	}
	if !a.Status.CanTransition(in.Status) {
		fail(c, http.StatusBadRequest, "Transición de estado no permitida")
		return
	}
	a.Status = in.Status
	s.syncSlot(a)
	c.JSON(http.StatusOK, s.expand(*a))
}

func (s *Server) cancelAppointment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in models.CancelAppointmentRequest
	if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.Reason) == "" {
		fail(c, http.StatusBadRequest, []string{"reason should not be empty"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.currentUser(c)
	if !ok {
		return
	}
	a, found := s.appointments[id]
	if !found {
		notFound(c, "Cita", id)
		return
	}
	if u.Role == models.RoleClient && a.ClientID != u.ID {
		fail(c, http.StatusForbidden, "No puedes cancelar citas de otros clientes")
		return
	}
	if !a.Status.ClientCancellable() {
		fail(c, http.StatusBadRequest, "La cita ya no se puede cancelar")
		return
	}
	a.Status = models.StatusCancelled
	a.CancellationReason = in.Reason
	s.syncSlot(a)
	c.JSON(http.StatusOK, s.expand(*a))
}

// syncSlot mirrors the appointment outcome onto the reserved slot.
func (s *Server) syncSlot(a *models.Appointment) {
	for _, sl := range s.slots {
		if sl.ServiceID != a.ServiceID || sl.Date != a.Date || sl.StartTime != a.StartTime || sl.Status != models.SlotReserved {
			continue
		}
		switch a.Status {
		case models.StatusCancelled:
			sl.Status = models.SlotAvailable
			sl.ClientID = nil
		case models.StatusCompleted:
			sl.Status = models.SlotCompleted
		}
		return
	}
}
