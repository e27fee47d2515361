package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"salonpro-web/booking"
	"salonpro-web/models"
	"salonpro-web/utils"
)

type generateForm struct {
	ServiceID       int64  `json:"serviceId" form:"serviceId"`
	Date            string `json:"date" form:"date"`
	StartTime       string `json:"startTime" form:"startTime"`
	EndTime         string `json:"endTime" form:"endTime"`
	DurationMinutes string `json:"durationMinutes" form:"durationMinutes"`
}

type slotsPage struct {
	Date     string             `json:"date"`
	Slots    []booking.SlotItem `json:"slots"`
	Services []models.Service   `json:"services"`
}

func (ctl *Controller) slotDate(c *gin.Context) (string, bool) {
	date := c.DefaultQuery("date", c.PostForm("date"))
	if date == "" {
		return ctl.today(), true
	}
	if !utils.ValidDate(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Fecha inválida, usa AAAA-MM-DD")
		return "", false
	}
	return date, true
}

func slotsURL(date string) string {
	return "/prestador/horarios?date=" + url.QueryEscape(date)
}

// ProviderSlots shows the provider's board for one date.
func (ctl *Controller) ProviderSlots(c *gin.Context) {
	date, ok := ctl.slotDate(c)
	if !ok {
		return
	}
	board := ctl.Workspaces.Get(utils.SessionID(c)).Board
	p := ctl.page(c, "Mis horarios")
	p.Form = generateForm{Date: date, StartTime: "09:00", EndTime: "18:00"}

	mine, err := ctl.myServices(c)
	if err != nil {
		ctl.loadFailed(c, err, "provider_slots", p)
		return
	}
	// A failed load leaves the board stale so the next visit retries.
	if err := ctl.Planner.Refresh(utils.APIContext(c), board, date); err != nil {
		p.Data = slotsPage{Date: date, Services: mine}
		ctl.loadFailed(c, err, "provider_slots", p)
		return
	}
	p.Data = slotsPage{Date: date, Slots: board.Items(), Services: mine}
	utils.Render(c, http.StatusOK, "provider_slots", p)
}

func (ctl *Controller) GenerateSlots(c *gin.Context) {
	var form generateForm
	_ = c.ShouldBind(&form)
	me := utils.CurrentUser(c)
	board := ctl.Workspaces.Get(utils.SessionID(c)).Board

	fail := func(err error) {
		p := ctl.page(c, "Mis horarios")
		p.Form = form
		mine, _ := ctl.myServices(c)
		p.Data = slotsPage{Date: form.Date, Slots: board.Items(), Services: mine}
		ctl.formFailed(c, err, "provider_slots", p)
	}

	minutes, err := optionalInt(form.DurationMinutes)
	if err != nil {
		fail(fmt.Errorf("duración: %w", err))
		return
	}
	mine, err := ctl.myServices(c)
	if err != nil {
		fail(err)
		return
	}
	var svc *models.Service
	for i := range mine {
		if mine[i].ID == form.ServiceID {
			svc = &mine[i]
			break
		}
	}
	if svc == nil {
		fail(errors.New("selecciona uno de tus servicios"))
		return
	}

	in := models.GenerateSlotsRequest{
		ProviderID:      me.ID,
		ServiceID:       svc.ID,
		Date:            form.Date,
		StartTime:       form.StartTime,
		EndTime:         form.EndTime,
		DurationMinutes: minutes,
	}
	created, err := ctl.Planner.Generate(utils.APIContext(c), board, in, svc.Duration)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidWindow) {
			err = errors.New("el horario de fin debe ser posterior al de inicio y admitir al menos un turno")
		}
		fail(err)
		return
	}
	ctl.done(c, http.StatusCreated, fmt.Sprintf("Se generaron %d horarios", len(created)), slotsURL(form.Date), created)
}

type slotStatusForm struct {
	Status models.SlotStatus `json:"status" form:"status"`
}

// SetSlotStatus moves one row through the two-phase update.
func (ctl *Controller) SetSlotStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	date, ok := ctl.slotDate(c)
	if !ok {
		return
	}
	var input slotStatusForm
	_ = c.ShouldBind(&input)
	board := ctl.Workspaces.Get(utils.SessionID(c)).Board
	ctx := utils.APIContext(c)

	err := ctl.Planner.Refresh(ctx, board, date)
	if err == nil {
		err = ctl.Planner.SetStatus(ctx, board, id, input.Status)
	}
	switch {
	case errors.Is(err, booking.ErrSlotUnknown):
		err = errors.New("el horario ya no existe")
	case errors.Is(err, booking.ErrSlotBusy):
		err = errors.New("el horario tiene un cambio en curso")
	}
	ctl.mutated(c, err, "Horario marcado como "+input.Status.Label(), slotsURL(date))
}

func (ctl *Controller) DeleteSlot(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	date, ok := ctl.slotDate(c)
	if !ok {
		return
	}
	board := ctl.Workspaces.Get(utils.SessionID(c)).Board
	err := ctl.Planner.Delete(utils.APIContext(c), board, id)
	ctl.mutated(c, err, "Horario eliminado", slotsURL(date))
}
