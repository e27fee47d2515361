package routes

import (
	"html/template"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"salonpro-web/config"
	"salonpro-web/controllers"
	"salonpro-web/models"
	"salonpro-web/utils"
)

func SetupRouter(ctl *controllers.Controller, cfg *config.Config, logger zerolog.Logger, tmpl *template.Template) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Accept", "Content-Type"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
		}))
	}

	r.Use(config.PerformanceLogger(logger))
	r.SetHTMLTemplate(tmpl)

	r.GET("/healthz", controllers.Health)

	r.Use(utils.SessionMiddleware(ctl.Sessions, utils.CookieConfig{
		Name:   cfg.SessionCookie,
		Secure: cfg.CookieSecure,
		MaxAge: int(cfg.SessionTTL.Seconds()),
	}))

	// Public pages
	r.GET("/", ctl.Home)
	r.GET("/servicios/:id", ctl.ServiceDetail)
	r.GET("/login", ctl.LoginPage)
	r.POST("/login", ctl.Login)
	r.POST("/logout", ctl.Logout)
	r.GET("/registro", ctl.RegisterPage)
	r.POST("/registro", ctl.Register)
	r.GET("/recuperar", ctl.ForgotPage)
	r.POST("/recuperar", ctl.Forgot)
	r.GET("/restablecer", ctl.ResetPage)
	r.POST("/restablecer", ctl.Reset)
	r.GET("/verificar-email", ctl.VerifyEmail)
	r.POST("/reenviar-verificacion", ctl.ResendVerification)

	authed := r.Group("", utils.RequireSession())
	authed.GET("/perfil", ctl.GetProfile)

	client := authed.Group("", utils.RequireRole(models.RoleClient))
	{
		client.GET("/reservar", ctl.BookingPage)
		client.POST("/reservar/slot", ctl.SelectSlot)
		client.POST("/reservar", ctl.Book)
		client.GET("/mis-citas", ctl.MyAppointments)
		client.POST("/mis-citas/:id/cancelar", ctl.CancelAppointment)
		client.POST("/resenas", ctl.CreateReview)
		client.GET("/mis-resenas", ctl.MyReviews)
	}

	provider := authed.Group("/prestador", utils.RequireRole(models.RoleProvider))
	{
		provider.GET("/inicio", ctl.ProviderDashboard)

		services := provider.Group("/servicios")
		{
			services.GET("", ctl.ProviderServices)
			services.POST("", ctl.CreateService)
			services.POST("/:id", ctl.UpdateService)
			services.POST("/:id/toggle", ctl.ToggleService)
		}

		slots := provider.Group("/horarios")
		{
			slots.GET("", ctl.ProviderSlots)
			slots.POST("/generar", ctl.GenerateSlots)
			slots.POST("/:id/estado", ctl.SetSlotStatus)
			slots.POST("/:id/eliminar", ctl.DeleteSlot)
		}

		provider.GET("/citas", ctl.ProviderAppointments)
		provider.POST("/citas/:id/estado", ctl.SetAppointmentStatus("/prestador/citas"))
	}

	admin := authed.Group("/admin", utils.RequireRole(models.RoleAdmin))
	{
		admin.GET("/inicio", ctl.AdminDashboard)
		admin.GET("/citas", ctl.AdminAppointments)
		admin.POST("/citas/:id/estado", ctl.SetAppointmentStatus("/admin/citas"))
		admin.GET("/usuarios", ctl.AdminUsers)
		admin.POST("/usuarios", ctl.CreateUser)
		admin.POST("/usuarios/:id/activo", ctl.SetUserActive)
		admin.GET("/servicios", ctl.AdminServices)
		admin.GET("/reportes", ctl.AdminReports)
		admin.GET("/reportes/export/:format", ctl.ExportReport)
	}

	return r
}
