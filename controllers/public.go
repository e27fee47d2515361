package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonpro-web/models"
	"salonpro-web/utils"
)

func (ctl *Controller) Home(c *gin.Context) {
	p := ctl.page(c, "SalonPro")
	list, err := ctl.Catalog.Active(utils.APIContext(c))
	if err != nil {
		ctl.loadFailed(c, err, "home", p)
		return
	}
	p.Data = list
	utils.Render(c, http.StatusOK, "home", p)
}

type serviceDetail struct {
	Service *models.Service     `json:"service"`
	Reviews []models.Review     `json:"reviews"`
	Stats   *models.ReviewStats `json:"stats"`
}

func (ctl *Controller) ServiceDetail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	ctx := utils.APIContext(c)
	p := ctl.page(c, "Servicio")

	list, err := ctl.Catalog.Active(ctx)
	if err != nil {
		ctl.loadFailed(c, err, "service", p)
		return
	}
	var detail serviceDetail
	for i := range list {
		if list[i].ID == id {
			detail.Service = &list[i]
			break
		}
	}
	if detail.Service == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Servicio no encontrado")
		return
	}
	if detail.Reviews, err = ctl.Reviews.ByService(ctx, id); err != nil {
		ctl.loadFailed(c, err, "service", p)
		return
	}
	if detail.Stats, err = ctl.Reviews.ServiceStats(ctx, id); err != nil {
		ctl.loadFailed(c, err, "service", p)
		return
	}
	p.Title = detail.Service.Name
	p.Data = detail
	utils.Render(c, http.StatusOK, "service", p)
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
