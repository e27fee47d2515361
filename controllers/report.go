// controllers/report.go
package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"salonpro-web/models"
	"salonpro-web/services"
	"salonpro-web/utils"
)

// reportsPage bundles the three reports the admin sees side by side.
type reportsPage struct {
	Query        models.ReportQuery        `json:"query"`
	Monthly      *models.MonthlyReport     `json:"monthly"`
	Appointments *models.AppointmentReport `json:"appointments"`
	Services     *models.ServiceReport     `json:"services"`
}

func (ctl *Controller) reportQuery(c *gin.Context) (models.ReportQuery, bool) {
	q := models.ReportQuery{Period: c.DefaultQuery("period", "month"), Year: ctl.Now().Year()}
	if v := c.Query("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Año inválido")
			return q, false
		}
		q.Year = year
	}
	if err := models.Validate(q); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Periodo o año inválido")
		return q, false
	}
	return q, true
}

func reportsURL(q models.ReportQuery) string {
	v := url.Values{}
	v.Set("period", q.Period)
	v.Set("year", strconv.Itoa(q.Year))
	return "/admin/reportes?" + v.Encode()
}

// AdminReports GET /admin/reportes?period=&year=
func (ctl *Controller) AdminReports(c *gin.Context) {
	q, ok := ctl.reportQuery(c)
	if !ok {
		return
	}
	ctx := utils.APIContext(c)
	p := ctl.page(c, "Reportes")
	data := reportsPage{Query: q}
	p.Data = data

	var err error
	if data.Monthly, err = ctl.Reports.Monthly(ctx, q); err != nil {
		ctl.loadFailed(c, err, "admin_reports", p)
		return
	}
	if data.Appointments, err = ctl.Reports.Appointments(ctx, q); err != nil {
		ctl.loadFailed(c, err, "admin_reports", p)
		return
	}
	if data.Services, err = ctl.Reports.Services(ctx, q); err != nil {
		ctl.loadFailed(c, err, "admin_reports", p)
		return
	}
	p.Data = data
	utils.Render(c, http.StatusOK, "admin_reports", p)
}

// ExportReport streams the pdf or excel export back as an attachment.
// A failed download is reported with a toast on the reports page.
func (ctl *Controller) ExportReport(c *gin.Context) {
	q, ok := ctl.reportQuery(c)
	if !ok {
		return
	}
	format := services.ExportFormat(c.Param("format"))
	blob, err := ctl.Reports.Export(utils.APIContext(c), format, q)
	if err != nil {
		ctl.mutated(c, err, "", reportsURL(q))
		return
	}

	name := blob.Filename
	if name == "" {
		ext := "pdf"
		if format == services.ExportExcel {
			ext = "xlsx"
		}
		name = fmt.Sprintf("reporte-%s-%d.%s", q.Period, q.Year, ext)
	}
	contentType := blob.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentType, blob.Body)
}
