package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"salonpro-web/apiclient"
	"salonpro-web/models"
)

var (
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnverifiedAccount  = errors.New("la cuenta no ha sido verificada, revisa tu correo")
	ErrInvalidPayload     = errors.New("datos de acceso inválidos")
)

// LoginError carries the classified login failure and the server message.
type LoginError struct {
	Reason error
	Cause  error
}

func (e *LoginError) Error() string {
	return apiclient.MessageOf(e.Cause, e.Reason.Error())
}

func (e *LoginError) Is(target error) bool { return target == e.Reason }

func (e *LoginError) Unwrap() error { return e.Cause }

type AuthService struct {
	api *apiclient.Client
}

func NewAuthService(api *apiclient.Client) *AuthService {
	return &AuthService{api: api}
}

func (s *AuthService) Login(ctx context.Context, in models.LoginRequest) (*models.AuthResponse, error) {
	if err := models.Validate(in); err != nil {
		return nil, &LoginError{Reason: ErrInvalidPayload, Cause: err}
	}
	var out models.AuthResponse
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodPost,
		Path:     "/auth/login",
		Body:     in,
		Fallback: "No se pudo iniciar sesión",
	}, &out)
	if err != nil {
		switch apiclient.StatusOf(err) {
		case http.StatusUnauthorized:
			return nil, &LoginError{Reason: ErrInvalidCredentials, Cause: err}
		case http.StatusForbidden:
			return nil, &LoginError{Reason: ErrUnverifiedAccount, Cause: err}
		case http.StatusBadRequest:
			return nil, &LoginError{Reason: ErrInvalidPayload, Cause: err}
		}
		return nil, err
	}
	if err := models.Validate(out); err != nil {
		return nil, &apiclient.Error{Kind: apiclient.KindUnknown, Message: "Respuesta de inicio de sesión inválida", Err: err}
	}
	return &out, nil
}

func (s *AuthService) Register(ctx context.Context, in models.RegisterRequest) (*models.AuthResponse, error) {
	if err := models.Validate(in); err != nil {
		return nil, validationError(err)
	}
	var out models.AuthResponse
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodPost,
		Path:     "/auth/register",
		Body:     in,
		Fallback: "No se pudo completar el registro",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the user behind the token carried by ctx.
func (s *AuthService) Profile(ctx context.Context) (*models.User, error) {
	var out models.User
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodGet,
		Path:     "/auth/profile",
		Fallback: "No se pudo cargar el perfil",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, in models.ForgotPasswordRequest) (string, error) {
	return s.acknowledge(ctx, "/auth/forgot-password", in, "No se pudo enviar el correo de recuperación")
}

func (s *AuthService) ResetPassword(ctx context.Context, in models.ResetPasswordRequest) (string, error) {
	return s.acknowledge(ctx, "/auth/reset-password", in, "No se pudo restablecer la contraseña")
}

func (s *AuthService) ResendVerification(ctx context.Context, in models.ResendVerificationRequest) (string, error) {
	return s.acknowledge(ctx, "/auth/resend-verification", in, "No se pudo reenviar la verificación")
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", validationError(errors.New("token: es obligatorio"))
	}
	var out models.MessageResponse
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodGet,
		Path:     "/auth/verify-email",
		Query:    url.Values{"token": {token}},
		Fallback: "No se pudo verificar el correo",
	}, &out)
	return out.Message, err
}

func (s *AuthService) acknowledge(ctx context.Context, path string, in any, fallback string) (string, error) {
	if err := models.Validate(in); err != nil {
		return "", validationError(err)
	}
	var out models.MessageResponse
	err := s.api.Do(ctx, apiclient.Request{Method: http.MethodPost, Path: path, Body: in, Fallback: fallback}, &out)
	return out.Message, err
}

// validationError turns a local schema failure into the same error shape the
// server's 400 produces.
func validationError(err error) error {
	return &apiclient.Error{Kind: apiclient.KindValidation, Status: http.StatusBadRequest, Message: err.Error(), Err: err}
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}
