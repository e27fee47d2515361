package fakeapi

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"salonpro-web/models"
)

func (s *Server) createReview(c *gin.Context) {
	var in models.CreateReviewRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if in.Rating < 1 || in.Rating > 5 {
		fail(c, http.StatusBadRequest, []string{"rating must not be less than 1", "rating must not be greater than 5"})
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
	for _, r := range s.reviews {
		if r.ClientID == u.ID && r.ServiceID == in.ServiceID {
			fail(c, http.StatusConflict, "Ya publicaste una reseña para este servicio")
			return
		}
	}
	now := time.Now().UTC()
	r := &models.Review{
		ID: s.id(), ServiceID: in.ServiceID, ClientID: u.ID, AppointmentID: in.AppointmentID,
		Rating: in.Rating, Comment: in.Comment, CreatedAt: &now,
	}
	s.reviews[r.ID] = r
	c.JSON(http.StatusCreated, r)
}

func (s *Server) reviewList(keep func(*models.Review) bool) []models.Review {
	out := []models.Review{}
	for _, r := range s.reviews {
		if keep(r) {
			cp := *r
			if u, ok := s.users[r.ClientID]; ok {
				client := *u
				cp.Client = &client
			}
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) listReviews(keep func(*models.User, *models.Review) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		u, ok := s.currentUser(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, s.reviewList(func(r *models.Review) bool { return keep(u, r) }))
	}
}

func (s *Server) reviewsByService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.reviewList(func(r *models.Review) bool { return r.ServiceID == id }))
}

func (s *Server) reviewStats(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := models.ReviewStats{ServiceID: id, Distribution: map[int]int{}}
	sum := 0
	for _, r := range s.reviews {
		if r.ServiceID != id {
			continue
		}
		stats.TotalReviews++
		stats.Distribution[r.Rating]++
		sum += r.Rating
	}
	if stats.TotalReviews > 0 {
		stats.AverageRating = float64(sum) / float64(stats.TotalReviews)
	}
	c.JSON(http.StatusOK, stats)
}

// ---------- reports ----------

func (s *Server) monthlyReport(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currentUser(c); !ok {
		return
	}
	rep := models.MonthlyReport{Period: c.DefaultQuery("period", "month"), ByStatus: map[models.AppointmentStatus]int{}}
	months := map[int]*models.MonthBucket{}
	for _, a := range s.appointments {
		rep.TotalAppointments++
		rep.ByStatus[a.Status]++
		d, err := time.Parse("2006-01-02", a.Date)
		if err != nil {
			continue
		}
		b, ok := months[int(d.Month())]
		if !ok {
			b = &models.MonthBucket{Month: int(d.Month())}
			months[b.Month] = b
		}
		b.Appointments++
		if a.Status.Billable() {
			price := s.price(a.ServiceID)
			b.Revenue += price
			rep.TotalRevenue += price
		}
	}
	for _, b := range months {
		rep.Months = append(rep.Months, *b)
	}
	sort.Slice(rep.Months, func(i, j int) bool { return rep.Months[i].Month < rep.Months[j].Month })
	c.JSON(http.StatusOK, rep)
}

func (s *Server) price(serviceID int64) float64 {
	if svc, ok := s.services[serviceID]; ok {
		return svc.Price
	}
	return 0
}

func (s *Server) appointmentReport(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currentUser(c); !ok {
		return
	}
	rep := models.AppointmentReport{ByStatus: map[models.AppointmentStatus]int{}}
	staff := map[int64]*models.StaffBucket{}
	for _, a := range s.appointments {
		rep.Total++
		rep.ByStatus[a.Status]++
		b, ok := staff[a.StaffID]
		if !ok {
			b = &models.StaffBucket{StaffID: a.StaffID}
			if u, found := s.users[a.StaffID]; found {
				b.StaffName = u.FullName()
			}
			staff[a.StaffID] = b
		}
		b.Appointments++
	}
	for _, b := range staff {
		rep.ByStaff = append(rep.ByStaff, *b)
	}
	sort.Slice(rep.ByStaff, func(i, j int) bool { return rep.ByStaff[i].StaffID < rep.ByStaff[j].StaffID })
	c.JSON(http.StatusOK, rep)
}

func (s *Server) serviceReport(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currentUser(c); !ok {
		return
	}
	buckets := map[int64]*models.ServiceBucket{}
	for _, a := range s.appointments {
		b, ok := buckets[a.ServiceID]
		if !ok {
			b = &models.ServiceBucket{ServiceID: a.ServiceID}
			if svc, found := s.services[a.ServiceID]; found {
				b.Name = svc.Name
			}
			buckets[a.ServiceID] = b
		}
		b.Appointments++
		if a.Status.Billable() {
			b.Revenue += s.price(a.ServiceID)
		}
	}
	rep := models.ServiceReport{Services: []models.ServiceBucket{}}
	for _, b := range buckets {
		rep.Services = append(rep.Services, *b)
	}
	sort.Slice(rep.Services, func(i, j int) bool { return rep.Services[i].ServiceID < rep.Services[j].ServiceID })
	c.JSON(http.StatusOK, rep)
}

func (s *Server) exportReport(c *gin.Context) {
	s.mu.Lock()
	_, ok := s.currentUser(c)
	s.mu.Unlock()
	if !ok {
		return
	}
	period := c.DefaultQuery("period", "month")
	switch c.Param("format") {
	case "pdf":
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="reporte-%s.pdf"`, period))
		c.Data(http.StatusOK, "application/pdf", []byte("%PDF-1.4 fake report"))
	case "excel":
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="reporte-%s.xlsx"`, period))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", []byte("PK fake workbook"))
	default:
		fail(c, http.StatusBadRequest, "Formato no soportado")
	}
}
