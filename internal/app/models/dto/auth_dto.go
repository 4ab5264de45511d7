package dto

// RegisterRequest represents a new account registration.
// FullName must contain exactly two whitespace-separated tokens
// (given name and family name); this is enforced by the service.
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RegisterResponse returns the identifier of the newly created account
type RegisterResponse struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information.
// ProfileComplete drives the client's post-login routing: superusers and
// accounts with a student profile go home, others to the complete-profile flow.
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
	ProfileComplete       bool   `json:"profileComplete"`
	IsSuperuser           bool   `json:"isSuperuser"`
}

// RefreshTokenRequest represents a refresh token exchange request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes the presented refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ForgotPasswordRequest starts the password recovery flow
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPasswordResponse carries the reset credentials. Delivery of these to
// the user (e.g. by email) is outside the scope of this service.
type ForgotPasswordResponse struct {
	UID   string `json:"uid"`
	Token string `json:"token"`
}

// ResetPasswordRequest completes the password recovery flow.
// UID is the base64url-encoded user id issued by forgot-password.
type ResetPasswordRequest struct {
	UID             string `json:"uid" binding:"required"`
	Token           string `json:"token" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// ChangePasswordRequest changes the password of the authenticated user
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
