package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonpro-web/dashboard"
	"salonpro-web/models"
	"salonpro-web/utils"
)

// ProviderDashboard summarises the provider's own appointments and services.
func (ctl *Controller) ProviderDashboard(c *gin.Context) {
	me := utils.CurrentUser(c)
	ctx := utils.APIContext(c)
	p := ctl.page(c, "Mi panel")

	appts, err := ctl.Appointments.ByStaff(ctx, me.ID)
	if err != nil {
		ctl.loadFailed(c, err, "provider_dashboard", p)
		return
	}
	catalog, err := ctl.Catalog.List(ctx)
	if err != nil {
		ctl.loadFailed(c, err, "provider_dashboard", p)
		return
	}

	from, to := dashboard.NormalizeRange(c.Query("from"), c.Query("to"), ctl.Now())
	p.Data = dashboard.Build(dashboard.Input{
		Appointments: appts,
		Services:     ownedBy(catalog, me.ID),
		From:         from,
		To:           to,
		Now:          ctl.Now(),
	})
	utils.Render(c, http.StatusOK, "provider_dashboard", p)
}

// AdminDashboard adds the statistics endpoint and user counts to the derived figures.
func (ctl *Controller) AdminDashboard(c *gin.Context) {
	ctx := utils.APIContext(c)
	p := ctl.page(c, "Panel de administración")

	appts, err := ctl.Appointments.List(ctx)
	if err != nil {
		ctl.loadFailed(c, err, "admin_dashboard", p)
		return
	}
	catalog, err := ctl.Catalog.List(ctx)
	if err != nil {
		ctl.loadFailed(c, err, "admin_dashboard", p)
		return
	}
	users, err := ctl.Users.List(ctx)
	if err != nil {
		ctl.loadFailed(c, err, "admin_dashboard", p)
		return
	}
	stats, err := ctl.Appointments.Statistics(ctx)
	if err != nil {
		ctl.loadFailed(c, err, "admin_dashboard", p)
		return
	}

	from, to := dashboard.NormalizeRange(c.Query("from"), c.Query("to"), ctl.Now())
	p.Data = dashboard.Build(dashboard.Input{
		Appointments: appts,
		Services:     catalog,
		Users:        users,
		Stats:        stats,
		From:         from,
		To:           to,
		Now:          ctl.Now(),
	})
	utils.Render(c, http.StatusOK, "admin_dashboard", p)
}

func ownedBy(catalog []models.Service, providerID int64) []models.Service {
	var out []models.Service
	for _, s := range catalog {
		if s.OwnerID() == providerID {
			out = append(out, s)
		}
	}
	return out
}
