// controllers/service.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"salonpro-web/models"
	"salonpro-web/utils"
)

// serviceForm is the edit form; empty fields are left untouched.
type serviceForm struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price"`
	Duration    string `json:"duration" form:"duration"`
}

func (f serviceForm) update() (models.UpdateServiceRequest, error) {
	var in models.UpdateServiceRequest
	if name := strings.TrimSpace(f.Name); name != "" {
		in.Name = &name
	}
	if f.Description != "" {
		d := f.Description
		in.Description = &d
	}
	if f.Price != "" {
		price, err := strconv.ParseFloat(f.Price, 64)
		if err != nil {
			return in, errors.New("el precio no es válido")
		}
		in.Price = &price
	}
	if f.Duration != "" {
		d, err := strconv.Atoi(f.Duration)
		if err != nil {
			return in, errors.New("la duración no es válida")
		}
		in.Duration = &d
	}
	return in, nil
}

type servicesPage struct {
	Services []models.Service `json:"services"`
	EditID   int64            `json:"-"`
}

func (ctl *Controller) myServices(c *gin.Context) ([]models.Service, error) {
	list, err := ctl.Catalog.List(utils.APIContext(c))
	if err != nil {
		return nil, err
	}
	return ownedBy(list, utils.CurrentUser(c).ID), nil
}

// ProviderServices lists the services the provider offers.
func (ctl *Controller) ProviderServices(c *gin.Context) {
	p := ctl.page(c, "Mis servicios")
	p.Form = models.CreateServiceRequest{Duration: 30}
	list, err := ctl.myServices(c)
	if err != nil {
		ctl.loadFailed(c, err, "provider_services", p)
		return
	}
	p.Data = servicesPage{Services: list}
	utils.Render(c, http.StatusOK, "provider_services", p)
}

func (ctl *Controller) serviceFormFailed(c *gin.Context, err error, form any, editID int64) {
	p := ctl.page(c, "Mis servicios")
	p.Form = form
	list, lerr := ctl.myServices(c)
	if lerr != nil {
		ctl.Logger.Warn().Err(lerr).Msg("reload services for form")
	}
	p.Data = servicesPage{Services: list, EditID: editID}
	ctl.formFailed(c, err, "provider_services", p)
}

func (ctl *Controller) CreateService(c *gin.Context) {
	var input models.CreateServiceRequest
	if err := c.ShouldBind(&input); err != nil {
		ctl.serviceFormFailed(c, errors.New("revisa el precio y la duración"), input, 0)
		return
	}
	input.Name = strings.TrimSpace(input.Name)
	input.ProviderID = utils.CurrentUser(c).ID

	svc, err := ctl.Catalog.Create(utils.APIContext(c), input)
	if err != nil {
		ctl.serviceFormFailed(c, err, input, 0)
		return
	}
	ctl.done(c, http.StatusCreated, "Servicio "+svc.Name+" creado", "/prestador/servicios", svc)
}

func (ctl *Controller) UpdateService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var form serviceForm
	_ = c.ShouldBind(&form)
	in, err := form.update()
	if err != nil {
		ctl.serviceFormFailed(c, err, form, id)
		return
	}
	svc, err := ctl.Catalog.Update(utils.APIContext(c), id, in)
	if err != nil {
		ctl.serviceFormFailed(c, err, form, id)
		return
	}
	ctl.done(c, http.StatusOK, "Servicio actualizado", "/prestador/servicios", svc)
}

type toggleForm struct {
	Active bool `json:"active" form:"active"`
}

// ToggleService flips the active flag from the value the page showed.
func (ctl *Controller) ToggleService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input toggleForm
	_ = c.ShouldBind(&input)
	svc, err := ctl.Catalog.ToggleActive(utils.APIContext(c), id, input.Active)
	msg := ""
	if err == nil {
		msg = "Servicio desactivado"
		if svc.IsActive {
			msg = "Servicio activado"
		}
	}
	ctl.mutated(c, err, msg, "/prestador/servicios")
}

// AdminServices lists every service with its provider.
func (ctl *Controller) AdminServices(c *gin.Context) {
	p := ctl.page(c, "Servicios")
	list, err := ctl.Catalog.List(utils.APIContext(c))
	if err != nil {
		ctl.loadFailed(c, err, "admin_services", p)
		return
	}
	p.Data = servicesPage{Services: list}
	utils.Render(c, http.StatusOK, "admin_services", p)
}
