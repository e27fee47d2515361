package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonpro-web/models"
	"salonpro-web/utils"
)

type appointmentsPage struct {
	From         string               `json:"from,omitempty"`
	To           string               `json:"to,omitempty"`
	Appointments []models.Appointment `json:"appointments"`
}

// ProviderAppointments lists the appointments assigned to the provider.
func (ctl *Controller) ProviderAppointments(c *gin.Context) {
	p := ctl.page(c, "Mis citas asignadas")
	list, err := ctl.Appointments.ByStaff(utils.APIContext(c), utils.CurrentUser(c).ID)
	if err != nil {
		ctl.loadFailed(c, err, "provider_appointments", p)
		return
	}
	p.Data = appointmentsPage{Appointments: list}
	utils.Render(c, http.StatusOK, "provider_appointments", p)
}

// AdminAppointments lists every appointment, optionally within ?from=&to=.
func (ctl *Controller) AdminAppointments(c *gin.Context) {
	p := ctl.page(c, "Citas")
	from, to := c.Query("from"), c.Query("to")
	ctx := utils.APIContext(c)

	var (
		list []models.Appointment
		err  error
	)
	if from != "" || to != "" {
		if !utils.ValidDate(from) || !utils.ValidDate(to) {
			utils.RespondWithError(c, http.StatusBadRequest, "Indica ambas fechas con formato AAAA-MM-DD")
			return
		}
		list, err = ctl.Appointments.ByDateRange(ctx, from, to)
	} else {
		list, err = ctl.Appointments.List(ctx)
	}
	if err != nil {
		ctl.loadFailed(c, err, "admin_appointments", p)
		return
	}
	p.Data = appointmentsPage{From: from, To: to, Appointments: list}
	utils.Render(c, http.StatusOK, "admin_appointments", p)
}

type appointmentStatusForm struct {
	Current models.AppointmentStatus `json:"current" form:"current"`
	Status  models.AppointmentStatus `json:"status" form:"status"`
}

// SetAppointmentStatus returns a handler that moves an appointment forward
// and sends the browser back to the given list.
func (ctl *Controller) SetAppointmentStatus(back string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var input appointmentStatusForm
		_ = c.ShouldBind(&input)
		_, err := ctl.Appointments.UpdateStatus(utils.APIContext(c), id, input.Current, input.Status)
		ctl.mutated(c, err, "Cita marcada como "+input.Status.Label(), back)
	}
}
