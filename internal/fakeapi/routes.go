package fakeapi

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"salonpro-web/models"
)

func (s *Server) routes() {
	r := s.engine

	auth := r.Group("/auth")
	{
		auth.POST("/login", s.login)
		auth.POST("/register", s.register)
		auth.GET("/profile", s.profile)
		auth.POST("/forgot-password", s.ack("Si el correo existe, recibirás instrucciones"))
		auth.POST("/reset-password", s.ack("Contraseña actualizada"))
		auth.POST("/resend-verification", s.ack("Correo de verificación reenviado"))
		auth.GET("/verify-email", s.verifyEmail)
	}

	users := r.Group("/users")
	{
		users.GET("", s.listUsers)
		users.POST("", s.createUser)
		users.GET("/:id", s.getUser)
		users.PATCH("/:id", s.updateUser)
	}

	services := r.Group("/services")
	{
		services.POST("", s.createService)
		services.GET("", s.listServices(false))
		services.GET("/active", s.listServices(true))
		services.PATCH("/:id", s.updateService)
	}

	slots := r.Group("/service-slots")
	{
		slots.POST("/generate", s.generateSlots)
		slots.GET("/mine", s.mySlots)
		slots.GET("/available", s.availableSlots)
		slots.PATCH("/:id/status", s.updateSlotStatus)
		slots.DELETE("/:id", s.deleteSlot)
	}

	appts := r.Group("/appointments")
	{
		appts.POST("", s.createAppointment)
		appts.GET("", s.listAppointments(func(*models.User, *models.Appointment) bool { return true }))
		appts.GET("/my-appointments", s.listAppointments(func(u *models.User, a *models.Appointment) bool { return a.ClientID == u.ID }))
		appts.GET("/by-staff/:id", s.byStaff)
		appts.GET("/by-date-range", s.byDateRange)
		appts.GET("/statistics", s.statistics)
		appts.PATCH("/:id/status", s.updateAppointmentStatus)
		appts.POST("/:id/cancel", s.cancelAppointment)
	}

	reviews := r.Group("/reviews")
	{
		reviews.POST("", s.createReview)
		reviews.GET("", s.listReviews(func(*models.User, *models.Review) bool { return true }))
		reviews.GET("/my-reviews", s.listReviews(func(u *models.User, rv *models.Review) bool { return rv.ClientID == u.ID }))
		reviews.GET("/by-service/:id", s.reviewsByService)
		reviews.GET("/service-stats/:id", s.reviewStats)
	}

	reports := r.Group("/reports")
	{
		reports.GET("/monthly", s.monthlyReport)
		reports.GET("/appointments", s.appointmentReport)
		reports.GET("/services", s.serviceReport)
		reports.GET("/export/:format", s.exportReport)
	}
}

// ---------- auth ----------

func (s *Server) login(c *gin.Context) {
	var in models.LoginRequest
	if err := c.ShouldBindJSON(&in); err != nil || in.Email == "" || in.Password == "" {
		fail(c, http.StatusBadRequest, []string{"email must be an email", "password should not be empty"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range s.users {
		if !strings.EqualFold(u.Email, in.Email) {
			continue
		}
		if s.passwords[id] != in.Password {
			break
		}
		if !u.EmailVerified {
			fail(c, http.StatusForbidden, "Debes verificar tu correo antes de iniciar sesión")
			return
		}
		c.JSON(http.StatusOK, s.authResponse(u))
		return
	}
	fail(c, http.StatusUnauthorized, "Credenciales inválidas")
}

func (s *Server) authResponse(u *models.User) models.AuthResponse {
	return models.AuthResponse{
		AccessToken: s.mint(u.ID, time.Hour),
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		User:        *u,
	}
}

func (s *Server) register(c *gin.Context) {
	var in models.RegisterRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emailTaken(in.Email) {
		fail(c, http.StatusConflict, "El correo ya está registrado")
		return
	}
	u := &models.User{
		ID: s.id(), Email: in.Email, FirstName: in.FirstName, LastName: in.LastName,
		Phone: in.Phone, Role: models.RoleClient, IsActive: true,
	}
	s.users[u.ID] = u
	s.passwords[u.ID] = in.Password
	c.JSON(http.StatusCreated, s.authResponse(u))
}

func (s *Server) emailTaken(email string) bool {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (s *Server) profile(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) ack(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			fail(c, http.StatusBadRequest, "Invalid payload")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}

func (s *Server) verifyEmail(c *gin.Context) {
	token := c.Query("token")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if "verify-"+u.Email == token {
			u.EmailVerified = true
			c.JSON(http.StatusOK, gin.H{"message": "Correo verificado"})
			return
		}
	}
	fail(c, http.StatusBadRequest, "Token de verificación inválido o expirado")
}

// ---------- users ----------

func (s *Server) listUsers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currentUser(c); !ok {
		return
	}
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) createUser(c *gin.Context) {
	var in models.CreateUserRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currentUser(c); !ok {
		return
	}
	if s.emailTaken(in.Email) {
		fail(c, http.StatusConflict, "El correo ya está registrado")
		return
	}
	u := &models.User{
		ID: s.id(), Email: in.Email, FirstName: in.FirstName, LastName: in.LastName,
		Phone: in.Phone, Role: in.Role, Specialty: in.Specialty, IsActive: true, EmailVerified: true,
	}
	s.users[u.ID] = u
	s.passwords[u.ID] = in.Password
	c.JSON(http.StatusCreated, u)
}

func (s *Server) getUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currentUser(c); !ok {
		return
	}
	u, found := s.users[id]
	if !found {
		notFound(c, "Usuario", id)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in models.UpdateUserRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currentUser(c); !ok {
		return
	}
	u, found := s.users[id]
	if !found {
		notFound(c, "Usuario", id)
		return
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Specialty != nil {
		u.Specialty = in.Specialty
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	c.JSON(http.StatusOK, u)
}

// ---------- services ----------

func (s *Server) createService(c *gin.Context) {
	var in models.CreateServiceRequest
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
	for _, svc := range s.services {
		if strings.EqualFold(svc.Name, in.Name) {
			fail(c, http.StatusConflict, "Ya existe un servicio con ese nombre")
			return
		}
	}
	providerID := in.ProviderID
	if providerID == 0 {
		providerID = u.ID
	}
	svc := &models.Service{
		ID: s.id(), Name: in.Name, Description: in.Description, Price: in.Price,
		Duration: in.Duration, IsActive: true, ProviderID: providerID,
	}
	s.services[svc.ID] = svc
	c.JSON(http.StatusCreated, svc)
}

func (s *Server) listServices(activeOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		out := []models.Service{}
		for _, svc := range s.services {
			if activeOnly && !svc.IsActive {
				continue
			}
			out = append(out, *svc)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
		c.JSON(http.StatusOK, out)
	}
}

func (s *Server) updateService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currentUser(c); !ok {
		return
	}
	svc, found := s.services[id]
	if !found {
		notFound(c, "Servicio", id)
		return
	}
	if in.Name != nil {
		svc.Name = *in.Name
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.Price != nil {
		svc.Price = *in.Price
	}
	if in.Duration != nil {
		svc.Duration = *in.Duration
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}
	c.JSON(http.StatusOK, svc)
}

// ---------- slots ----------

func (s *Server) generateSlots(c *gin.Context) {
	var in models.GenerateSlotsRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currentUser(c); !ok {
		return
	}
	svc, found := s.services[in.ServiceID]
	if !found {
		notFound(c, "Servicio", in.ServiceID)
		return
	}
	minutes := svc.Duration
	if in.DurationMinutes != nil {
		minutes = *in.DurationMinutes
	}
	start, err1 := time.Parse("15:04", in.StartTime)
	end, err2 := time.Parse("15:04", in.EndTime)
	if err1 != nil || err2 != nil || !end.After(start) || minutes <= 0 {
		fail(c, http.StatusBadRequest, "Rango horario inválido")
		return
	}
	step := time.Duration(minutes) * time.Minute
	out := []models.ServiceSlot{}
	for t := start; !t.Add(step).After(end); t = t.Add(step) {
		slot := &models.ServiceSlot{
			ID: s.id(), ServiceID: svc.ID, Date: in.Date,
			StartTime: t.Format("15:04"), EndTime: t.Add(step).Format("15:04"),
			Status: models.SlotAvailable,
		}
		s.slots[slot.ID] = slot
		out = append(out, *slot)
	}
	c.JSON(http.StatusCreated, out)
}

func (s *Server) withService(slot models.ServiceSlot) models.ServiceSlot {
	if svc, ok := s.services[slot.ServiceID]; ok {
		cp := *svc
		slot.Service = &cp
	}
	return slot
}

func (s *Server) mySlots(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.currentUser(c)
	if !ok {
		return
	}
	date := c.Query("date")
	out := []models.ServiceSlot{}
	for _, slot := range s.slots {
		svc, found := s.services[slot.ServiceID]
		if !found || svc.ProviderID != u.ID || (date != "" && slot.Date != date) {
			continue
		}
		out = append(out, s.withService(*slot))
	}
	sortSlots(out)
	c.JSON(http.StatusOK, out)
}

func (s *Server) availableSlots(c *gin.Context) {
	serviceID, _ := strconv.ParseInt(c.Query("serviceId"), 10, 64)
	date := c.Query("date")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.ServiceSlot{}
	for _, slot := range s.slots {
		if slot.ServiceID == serviceID && slot.Date == date && slot.Status == models.SlotAvailable {
			out = append(out, s.withService(*slot))
		}
	}
	sortSlots(out)
	c.JSON(http.StatusOK, out)
}

func sortSlots(slots []models.ServiceSlot) {
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].StartTime < slots[j].StartTime
	})
}

func (s *Server) updateSlotStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in models.UpdateSlotStatusRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currentUser(c); !ok {
		return
	}
	slot, found := s.slots[id]
	if !found {
		notFound(c, "Horario", id)
		return
	}
	if !slot.Status.StaffEditable() || !in.Status.StaffEditable() {
		fail(c, http.StatusBadRequest, "Transición de estado no permitida")
		return
	}
	slot.Status = in.Status
	slot.Notes = in.Notes
	slot.ClientID = in.ClientID
	c.JSON(http.StatusOK, s.withService(*slot))
}

func (s *Server) deleteSlot(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currentUser(c); !ok {
		return
	}
	if _, found := s.slots[id]; !found {
		notFound(c, "Horario", id)
		return
	}
	delete(s.slots, id)
	c.JSON(http.StatusOK, gin.H{"message": "Horario eliminado"})
}
