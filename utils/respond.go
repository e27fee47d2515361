package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonpro-web/apiclient"
	"salonpro-web/models"
	"salonpro-web/services"
)

// Page is the data every HTML template receives.
type Page struct {
	Title    string
	Path     string
	User     *models.User
	Toasts   []services.Toast
	Error    string
	RetryURL string
	Notice   string
	Form     any
	Data     any
}

// WantsJSON reports whether the caller asked for JSON rather than HTML.
func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

// Render writes page as HTML, or page.Data as JSON for JSON callers.
func Render(c *gin.Context, status int, name string, page Page) {
	if WantsJSON(c) {
		if page.Error != "" {
			c.JSON(status, gin.H{"error": page.Error, "data": page.Data})
			return
		}
		c.JSON(status, page.Data)
		return
	}
	c.HTML(status, name, page)
}

func RespondWithError(c *gin.Context, status int, message string) {
	if WantsJSON(c) {
		c.AbortWithStatusJSON(status, gin.H{"error": message})
		return
	}
	c.HTML(status, "error", Page{
		Title: http.StatusText(status),
		Path:  c.Request.URL.Path,
		User:  CurrentUser(c),
		Error: message,
	})
	c.Abort()
}

// HTTPStatus picks the status a page answers with for an API failure.
func HTTPStatus(err error) int {
	if s := apiclient.StatusOf(err); s >= 400 {
		return s
	}
	switch apiclient.Classify(err) {
	case apiclient.KindValidation:
		return http.StatusBadRequest
	case apiclient.KindAuth:
		return http.StatusUnauthorized
	case apiclient.KindForbidden:
		return http.StatusForbidden
	case apiclient.KindNotFound:
		return http.StatusNotFound
	case apiclient.KindConflict:
		return http.StatusConflict
	case apiclient.KindNetwork:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
