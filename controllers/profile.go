package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonpro-web/utils"
)

// GetProfile re-reads the logged-in user from the API. When the API cannot be
// reached the cached profile is shown instead.
func (ctl *Controller) GetProfile(c *gin.Context) {
	sid := utils.SessionID(c)
	p := ctl.page(c, "Mi perfil")

	user, err := ctl.Sessions.RefreshProfile(c.Request.Context(), sid)
	if err != nil {
		ctl.loadFailed(c, err, "profile", p)
		return
	}
	if user == nil {
		if !ctl.Sessions.Active(c.Request.Context(), sid) {
			ctl.expired(c)
			return
		}
		user = utils.CurrentUser(c)
		p.Notice = "No se pudo actualizar tu perfil, mostrando los datos guardados"
	}
	p.User = user
	p.Data = user
	utils.Render(c, http.StatusOK, "profile", p)
}
