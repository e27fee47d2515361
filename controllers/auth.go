package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"salonpro-web/models"
	"salonpro-web/services"
	"salonpro-web/utils"
)

func (ctl *Controller) LoginPage(c *gin.Context) {
	if u := utils.CurrentUser(c); u != nil {
		c.Redirect(http.StatusSeeOther, u.Role.HomePath())
		return
	}
	p := ctl.page(c, "Iniciar sesión")
	p.Form = models.LoginRequest{}
	utils.Render(c, http.StatusOK, "login", p)
}

func (ctl *Controller) Login(c *gin.Context) {
	var input models.LoginRequest
	_ = c.ShouldBind(&input)
	input.Email = strings.TrimSpace(input.Email)

	sess, err := ctl.Sessions.Login(c.Request.Context(), ctl.Sessions.NewID(), input)
	if err != nil {
		p := ctl.page(c, "Iniciar sesión")
		p.Form = models.LoginRequest{Email: input.Email}
		p.Error = message(err)
		status := statusFor(err)
		switch {
		case errors.Is(err, services.ErrUnverifiedAccount):
			p.Data = gin.H{"unverified": true}
		case errors.Is(err, services.ErrInvalidCredentials):
			status = http.StatusUnauthorized
		}
		utils.Render(c, status, "login", p)
		return
	}

	ctl.rotate(c, sess)
	home := sess.User.Role.HomePath()
	ctl.Logger.Info().Int64("user", sess.User.ID).Str("role", string(sess.User.Role)).Msg("login")
	ctl.done(c, http.StatusOK, "", home, gin.H{"redirect": home, "user": sess.User})
}

// rotate retires the pre-login session id once sess has been saved under a
// fresh one. Pending toasts follow the caller, the old workspace does not.
func (ctl *Controller) rotate(c *gin.Context, sess *models.Session) {
	old := utils.SessionID(c)
	if err := ctl.Sessions.Logout(c.Request.Context(), old); err != nil {
		ctl.Logger.Warn().Err(err).Msg("retire pre-login session")
	}
	ctl.Workspaces.Drop(old)
	ctl.Toasts.Move(old, sess.ID)
	utils.RotateSession(c, sess)
}

func (ctl *Controller) Logout(c *gin.Context) {
	sid := utils.SessionID(c)
	if err := ctl.Sessions.Logout(c.Request.Context(), sid); err != nil {
		ctl.Logger.Error().Err(err).Msg("logout")
	}
	ctl.Workspaces.Drop(sid)
	utils.ClearSession(c)
	ctl.done(c, http.StatusOK, "Sesión cerrada", "/login", gin.H{"redirect": "/login"})
}

type registerForm struct {
	models.RegisterRequest
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

func (ctl *Controller) RegisterPage(c *gin.Context) {
	p := ctl.page(c, "Crear cuenta")
	p.Form = registerForm{}
	utils.Render(c, http.StatusOK, "register", p)
}

func (ctl *Controller) Register(c *gin.Context) {
	var input registerForm
	_ = c.ShouldBind(&input)
	input.Email = strings.TrimSpace(input.Email)

	p := ctl.page(c, "Crear cuenta")
	kept := input
	kept.Password, kept.ConfirmPassword = "", ""
	p.Form = kept

	if input.ConfirmPassword != "" && input.ConfirmPassword != input.Password {
		ctl.formFailed(c, errors.New("las contraseñas no coinciden"), "register", p)
		return
	}
	if input.Phone != "" {
		if !utils.ValidatePhone(input.Phone) {
			ctl.formFailed(c, errors.New("el teléfono no es válido"), "register", p)
			return
		}
		input.Phone = utils.NormalizePhone(input.Phone)
	}

	resp, err := ctl.Auth.Register(c.Request.Context(), input.RegisterRequest)
	if err != nil {
		ctl.formFailed(c, err, "register", p)
		return
	}
	sess, err := ctl.Sessions.Adopt(c.Request.Context(), ctl.Sessions.NewID(), resp)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo iniciar la sesión")
		return
	}
	ctl.rotate(c, sess)
	home := sess.User.Role.HomePath()
	ctl.done(c, http.StatusCreated, "¡Bienvenido! Tu cuenta fue creada", home, gin.H{"redirect": home, "user": sess.User})
}

func (ctl *Controller) ForgotPage(c *gin.Context) {
	p := ctl.page(c, "Recuperar contraseña")
	p.Form = models.ForgotPasswordRequest{}
	utils.Render(c, http.StatusOK, "forgot", p)
}

func (ctl *Controller) Forgot(c *gin.Context) {
	var input models.ForgotPasswordRequest
	_ = c.ShouldBind(&input)
	p := ctl.page(c, "Recuperar contraseña")
	p.Form = input
	msg, err := ctl.Auth.ForgotPassword(c.Request.Context(), input)
	if err != nil {
		ctl.formFailed(c, err, "forgot", p)
		return
	}
	p.Notice = orDefault(msg, "Si el correo está registrado recibirás un enlace para restablecer tu contraseña")
	p.Form = models.ForgotPasswordRequest{}
	utils.Render(c, http.StatusOK, "forgot", p)
}

func (ctl *Controller) ResetPage(c *gin.Context) {
	p := ctl.page(c, "Restablecer contraseña")
	p.Form = models.ResetPasswordRequest{Token: c.Query("token")}
	utils.Render(c, http.StatusOK, "reset", p)
}

func (ctl *Controller) Reset(c *gin.Context) {
	var input models.ResetPasswordRequest
	_ = c.ShouldBind(&input)
	p := ctl.page(c, "Restablecer contraseña")
	p.Form = models.ResetPasswordRequest{Token: input.Token}
	msg, err := ctl.Auth.ResetPassword(c.Request.Context(), input)
	if err != nil {
		ctl.formFailed(c, err, "reset", p)
		return
	}
	ctl.done(c, http.StatusOK, orDefault(msg, "Contraseña actualizada, ya puedes iniciar sesión"), "/login", gin.H{"message": msg})
}

func (ctl *Controller) VerifyEmail(c *gin.Context) {
	p := ctl.page(c, "Verificar correo")
	p.Form = models.ResendVerificationRequest{}
	msg, err := ctl.Auth.VerifyEmail(c.Request.Context(), c.Query("token"))
	if err != nil {
		p.Error = message(err)
		utils.Render(c, statusFor(err), "verify", p)
		return
	}
	p.Notice = orDefault(msg, "Tu correo fue verificado")
	p.Data = gin.H{"verified": true}
	utils.Render(c, http.StatusOK, "verify", p)
}

func (ctl *Controller) ResendVerification(c *gin.Context) {
	var input models.ResendVerificationRequest
	_ = c.ShouldBind(&input)
	p := ctl.page(c, "Verificar correo")
	p.Form = input
	msg, err := ctl.Auth.ResendVerification(c.Request.Context(), input)
	if err != nil {
		ctl.formFailed(c, err, "verify", p)
		return
	}
	p.Notice = orDefault(msg, "Te enviamos un nuevo correo de verificación")
	utils.Render(c, http.StatusOK, "verify", p)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
