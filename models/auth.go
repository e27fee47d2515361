package models

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password" form:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" form:"firstName" validate:"required"`
	LastName  string `json:"lastName" form:"lastName" validate:"required"`
	Phone     string `json:"phone,omitempty" form:"phone"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken" validate:"required"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"` // seconds
	User        User   `json:"user"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" form:"token" validate:"required"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

// MessageResponse is the acknowledgement body of the auth side-effect endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
