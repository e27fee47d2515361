package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salonpro-web/models"
	"salonpro-web/utils"
)

type bookingForm struct {
	SlotID int64  `json:"slotId" form:"slotId"`
	Notes  string `json:"notes" form:"notes"`
}

// BookingPage shows the wizard. ?serviceId= and ?date= change the selection.
func (ctl *Controller) BookingPage(c *gin.Context) {
	w := ctl.Workspaces.Get(utils.SessionID(c)).Wizard
	p := ctl.page(c, "Reservar cita")
	p.Form = bookingForm{}
	ctx := utils.APIContext(c)

	if err := ctl.Booker.LoadServices(ctx, w); err != nil {
		p.Data = w.View()
		ctl.loadFailed(c, err, "booking", p)
		return
	}
	if v := c.Query("serviceId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Servicio inválido")
			return
		}
		w.SelectService(id)
	}
	if d := c.Query("date"); d != "" {
		if !utils.ValidDate(d) {
			utils.RespondWithError(c, http.StatusBadRequest, "Fecha inválida, usa AAAA-MM-DD")
			return
		}
		w.SelectDate(d)
	}
	if err := ctl.Booker.Reload(ctx, w); err != nil {
		p.Data = w.View()
		ctl.loadFailed(c, err, "booking", p)
		return
	}
	p.Data = w.View()
	utils.Render(c, http.StatusOK, "booking", p)
}

func (ctl *Controller) SelectSlot(c *gin.Context) {
	w := ctl.Workspaces.Get(utils.SessionID(c)).Wizard
	var input bookingForm
	_ = c.ShouldBind(&input)

	// slotId=0 drops the current choice
	if input.SlotID == 0 {
		w.ClearSlot()
		ctl.done(c, http.StatusOK, "", "/reservar", w.View())
		return
	}
	if err := w.SelectSlot(input.SlotID); err != nil {
		p := ctl.page(c, "Reservar cita")
		p.Form = input
		p.Data = w.View()
		ctl.formFailed(c, err, "booking", p)
		return
	}
	ctl.done(c, http.StatusOK, "", "/reservar", w.View())
}

func (ctl *Controller) Book(c *gin.Context) {
	w := ctl.Workspaces.Get(utils.SessionID(c)).Wizard
	var input bookingForm
	_ = c.ShouldBind(&input)
	if input.SlotID != 0 {
		if err := w.SelectSlot(input.SlotID); err != nil {
			p := ctl.page(c, "Reservar cita")
			p.Form = input
			p.Data = w.View()
			ctl.formFailed(c, err, "booking", p)
			return
		}
	}

	appt, err := ctl.Booker.Submit(utils.APIContext(c), w, input.Notes)
	if err != nil {
		p := ctl.page(c, "Reservar cita")
		p.Form = input
		p.Data = w.View()
		ctl.formFailed(c, err, "booking", p)
		return
	}
	notice := fmt.Sprintf("Cita reservada para el %s a las %s", appt.Date, appt.StartTime)
	ctl.done(c, http.StatusCreated, notice, "/reservar", appt)
}

func (ctl *Controller) MyAppointments(c *gin.Context) {
	p := ctl.page(c, "Mis citas")
	list, err := ctl.Appointments.Mine(utils.APIContext(c))
	if err != nil {
		ctl.loadFailed(c, err, "my_appointments", p)
		return
	}
	p.Data = list
	p.Form = models.CreateReviewRequest{}
	utils.Render(c, http.StatusOK, "my_appointments", p)
}

type cancelForm struct {
	Reason string `json:"reason" form:"reason"`
}

func (ctl *Controller) CancelAppointment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input cancelForm
	_ = c.ShouldBind(&input)
	_, err := ctl.Appointments.Cancel(utils.APIContext(c), id, input.Reason)
	ctl.mutated(c, err, "La cita fue cancelada", "/mis-citas")
}

func (ctl *Controller) CreateReview(c *gin.Context) {
	var input models.CreateReviewRequest
	_ = c.ShouldBind(&input)
	ctx := utils.APIContext(c)

	if _, err := ctl.Reviews.Create(ctx, input); err != nil {
		p := ctl.page(c, "Mis citas")
		p.Form = input
		list, lerr := ctl.Appointments.Mine(ctx)
		if lerr != nil {
			ctl.Logger.Warn().Err(lerr).Msg("reload appointments for review form")
		}
		p.Data = list
		ctl.formFailed(c, err, "my_appointments", p)
		return
	}
	ctl.done(c, http.StatusCreated, "¡Gracias por tu reseña!", "/mis-resenas", gin.H{"message": "ok"})
}

func (ctl *Controller) MyReviews(c *gin.Context) {
	p := ctl.page(c, "Mis reseñas")
	list, err := ctl.Reviews.Mine(utils.APIContext(c))
	if err != nil {
		ctl.loadFailed(c, err, "my_reviews", p)
		return
	}
	p.Data = list
	utils.Render(c, http.StatusOK, "my_reviews", p)
}
