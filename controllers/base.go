package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"salonpro-web/apiclient"
	"salonpro-web/booking"
	"salonpro-web/services"
	"salonpro-web/utils"
)

// Deps is everything the page handlers need. Built once in main.
type Deps struct {
	Sessions     *services.SessionManager
	Auth         *services.AuthService
	Catalog      *services.CatalogService
	Slots        *services.SlotService
	Appointments *services.AppointmentService
	Users        *services.UserService
	Reviews      *services.ReviewService
	Reports      *services.ReportService
	Toasts       *services.Toasts
	Workspaces   *booking.Registry
	Booker       *booking.Booker
	Planner      *booking.Planner
	Logger       zerolog.Logger
	Now          func() time.Time
}

type Controller struct {
	Deps
}

func New(d Deps) *Controller {
	if d.Now == nil {
		d.Now = time.Now
	}
	return &Controller{Deps: d}
}

// page starts the template data of a request. Pending toasts are drained only
// for HTML callers.
func (ctl *Controller) page(c *gin.Context, title string) utils.Page {
	p := utils.Page{
		Title: title,
		Path:  c.Request.URL.Path,
		User:  utils.CurrentUser(c),
	}
	if !utils.WantsJSON(c) {
		p.Toasts = ctl.Toasts.Drain(utils.SessionID(c))
	}
	return p
}

func (ctl *Controller) today() string {
	return ctl.Now().Format(utils.DateLayout)
}

// expired tears the session down after the API answered 401.
func (ctl *Controller) expired(c *gin.Context) {
	sid := utils.SessionID(c)
	ctl.Sessions.Expire(c.Request.Context(), sid)
	ctl.Workspaces.Drop(sid)
	utils.ClearSession(c)
	ctl.Toasts.Push(sid, services.ToastInfo, "Tu sesión expiró, inicia sesión de nuevo")
	if utils.WantsJSON(c) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sesión expirada"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}

// loadFailed renders name with an error banner and a retry link.
func (ctl *Controller) loadFailed(c *gin.Context, err error, name string, p utils.Page) {
	if apiclient.IsKind(err, apiclient.KindAuth) {
		ctl.expired(c)
		return
	}
	ctl.Logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("page load failed")
	p.Error = apiclient.MessageOf(err, "No se pudo cargar la información")
	p.RetryURL = c.Request.URL.RequestURI()
	utils.Render(c, utils.HTTPStatus(err), name, p)
}

// formFailed re-renders the form page with an inline error. p.Form must
// already hold the submitted values.
func (ctl *Controller) formFailed(c *gin.Context, err error, name string, p utils.Page) {
	if apiclient.IsKind(err, apiclient.KindAuth) {
		ctl.expired(c)
		return
	}
	p.Error = message(err)
	utils.Render(c, statusFor(err), name, p)
}

// mutated reports a row action through a toast and sends the browser back.
func (ctl *Controller) mutated(c *gin.Context, err error, success, back string) {
	if apiclient.IsKind(err, apiclient.KindAuth) {
		ctl.expired(c)
		return
	}
	if utils.WantsJSON(c) {
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": message(err)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": success})
		return
	}
	sid := utils.SessionID(c)
	if err != nil {
		ctl.Toasts.Push(sid, services.ToastError, message(err))
	} else {
		ctl.Toasts.Push(sid, services.ToastSuccess, success)
	}
	c.Redirect(http.StatusSeeOther, back)
}

// done finishes a successful form submit.
func (ctl *Controller) done(c *gin.Context, status int, notice, next string, body any) {
	if utils.WantsJSON(c) {
		c.JSON(status, body)
		return
	}
	if notice != "" {
		ctl.Toasts.Push(utils.SessionID(c), services.ToastSuccess, notice)
	}
	c.Redirect(http.StatusSeeOther, next)
}

func message(err error) string {
	return apiclient.MessageOf(err, err.Error())
}

// statusFor answers API failures with their own status and local
// validation failures with 400.
func statusFor(err error) int {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		return utils.HTTPStatus(err)
	}
	return http.StatusBadRequest
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador inválido")
		return 0, false
	}
	return id, true
}

// optionalInt parses an optional positive integer form value.
func optionalInt(v string) (*int, error) {
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return nil, errors.New("debe ser un número mayor que cero")
	}
	return &n, nil
}
