package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"salonpro-web/models"
	"salonpro-web/utils"
)

type usersPage struct {
	Users []models.User `json:"users"`
	Roles []models.Role `json:"-"`
}

var assignableRoles = []models.Role{models.RoleClient, models.RoleProvider, models.RoleAdmin}

func (ctl *Controller) renderUsers(c *gin.Context, p utils.Page, err error) {
	list, lerr := ctl.Users.List(utils.APIContext(c))
	if lerr != nil && err == nil {
		ctl.loadFailed(c, lerr, "admin_users", p)
		return
	}
	p.Data = usersPage{Users: list, Roles: assignableRoles}
	if err != nil {
		ctl.formFailed(c, err, "admin_users", p)
		return
	}
	utils.Render(c, http.StatusOK, "admin_users", p)
}

// AdminUsers GET /admin/usuarios
func (ctl *Controller) AdminUsers(c *gin.Context) {
	p := ctl.page(c, "Usuarios")
	p.Form = models.CreateUserRequest{Role: models.RoleProvider}
	ctl.renderUsers(c, p, nil)
}

func (ctl *Controller) CreateUser(c *gin.Context) {
	var input models.CreateUserRequest
	_ = c.ShouldBind(&input)
	input.Email = strings.TrimSpace(input.Email)
	if input.Specialty != nil && strings.TrimSpace(*input.Specialty) == "" {
		input.Specialty = nil
	}

	var err error
	if input.Phone != "" {
		if !utils.ValidatePhone(input.Phone) {
			err = errors.New("el teléfono no es válido")
		}
		input.Phone = utils.NormalizePhone(input.Phone)
	}
	var user *models.User
	if err == nil {
		user, err = ctl.Users.Create(utils.APIContext(c), input)
	}
	if err != nil {
		input.Password = ""
		p := ctl.page(c, "Usuarios")
		p.Form = input
		ctl.renderUsers(c, p, err)
		return
	}
	ctl.done(c, http.StatusCreated, "Usuario "+user.FullName()+" creado", "/admin/usuarios", user)
}

type activeForm struct {
	Active bool `json:"active" form:"active"`
}

// SetUserActive POST /admin/usuarios/:id/activo with the desired state.
func (ctl *Controller) SetUserActive(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input activeForm
	_ = c.ShouldBind(&input)
	user, err := ctl.Users.SetActive(utils.APIContext(c), id, input.Active)
	msg := ""
	if err == nil {
		msg = "Usuario " + user.FullName() + " desactivado"
		if user.IsActive {
			msg = "Usuario " + user.FullName() + " activado"
		}
	}
	ctl.mutated(c, err, msg, "/admin/usuarios")
}
