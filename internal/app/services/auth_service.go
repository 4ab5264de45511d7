package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/oguzk/studenthub/internal/app/models"
	"github.com/oguzk/studenthub/internal/app/models/dto"
	"github.com/oguzk/studenthub/internal/app/repositories"
	"github.com/oguzk/studenthub/internal/pkg/apperrors"
	"github.com/oguzk/studenthub/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	ForgotPassword(ctx context.Context, email string) (*dto.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo       *repositories.UserRepository
	studentRepo    *repositories.StudentRepository
	resetTokenRepo *repositories.PasswordResetTokenRepository
	refreshRepo    *repositories.RefreshTokenRepository
	jwtService     *auth.JWTService
	resetTokenExp  time.Duration
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	resetTokenRepo *repositories.PasswordResetTokenRepository,
	refreshRepo *repositories.RefreshTokenRepository,
	jwtService *auth.JWTService,
	resetTokenExp time.Duration,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:       userRepo,
		studentRepo:    studentRepo,
		resetTokenRepo: resetTokenRepo,
		refreshRepo:    refreshRepo,
		jwtService:     jwtService,
		resetTokenExp:  resetTokenExp,
		logger:         logger,
	}
}

// SplitFullName splits a submitted full name into exactly two
// whitespace-separated tokens: given name and family name. Any other token
// count is a validation error.
func SplitFullName(fullName string) (firstName, lastName string, err error) {
	tokens := strings.Fields(fullName)
	if len(tokens) != 2 {
		return "", "", fmt.Errorf("%w: full name must consist of a first and a last name", apperrors.ErrValidationFailed)
	}
	return tokens[0], tokens[1], nil
}

// validatePassword checks if a password meets the minimum requirements
func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", apperrors.ErrInvalidPassword)
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}

	if !hasLetter {
		return fmt.Errorf("%w: password must contain at least one letter", apperrors.ErrInvalidPassword)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain at least one digit", apperrors.ErrInvalidPassword)
	}

	return nil
}

// Register creates a new active, non-superuser account. The email becomes the
// login handle; a duplicate email is rejected by the unique constraint.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	firstName, lastName, err := SplitFullName(req.FullName)
	if err != nil {
		return nil, err
	}

	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     req.Email,
		Password:  hashedPassword,
		IsActive:  true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("Account registered")

	return &dto.RegisterResponse{
		UserID: user.ID,
		Email:  user.Email,
	}, nil
}

// Login authenticates the credentials and issues a token pair. The response's
// ProfileComplete flag tells the client whether to route to home (superusers
// and accounts with a student profile) or to the complete-profile flow.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken exchanges a valid, unrevoked refresh token for a new pair.
// The presented token is revoked so each refresh token is single-use.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, expiryDate, revoked, err := s.refreshRepo.GetTokenInfo(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if revoked {
		return nil, apperrors.ErrTokenRevoked
	}

	if time.Now().After(expiryDate) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.refreshRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token. Access tokens expire on their own.
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	err := s.refreshRepo.RevokeToken(ctx, refreshToken)
	if err != nil && err != apperrors.ErrTokenNotFound {
		return err
	}
	// An unknown token still counts as logged out.
	return nil
}

// ForgotPassword issues a single-use, time-bound reset token keyed to the
// account id. Token delivery to the user is outside this service.
func (s *authServiceImpl) ForgotPassword(ctx context.Context, email string) (*dto.ForgotPasswordResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// A new request supersedes any earlier unused tokens.
	if err := s.resetTokenRepo.DeleteTokensByUserID(ctx, user.ID); err != nil {
		return nil, err
	}

	token := uuid.New().String()
	expiry := time.Now().Add(s.resetTokenExp)

	if err := s.resetTokenRepo.CreateToken(ctx, user.ID, token, expiry); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Msg("Password reset token issued")

	return &dto.ForgotPasswordResponse{
		UID:   EncodeUserID(user.ID),
		Token: token,
	}, nil
}

// ResetPassword completes the recovery flow. The two password fields must
// match and the token must be unused, unexpired and belong to the decoded
// account id; otherwise nothing is mutated.
func (s *authServiceImpl) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}

	userID, err := DecodeUserID(req.UID)
	if err != nil {
		return apperrors.ErrInvalidPasswordResetToken
	}

	tokenUserID, expiryDate, used, err := s.resetTokenRepo.GetTokenInfo(ctx, req.Token)
	if err != nil {
		if err == apperrors.ErrTokenNotFound {
			return apperrors.ErrInvalidPasswordResetToken
		}
		return err
	}

	if used {
		return apperrors.ErrPasswordResetTokenUsed
	}

	if tokenUserID != userID || time.Now().After(expiryDate) {
		return apperrors.ErrInvalidPasswordResetToken
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return err
	}

	if err := s.resetTokenRepo.MarkTokenAsUsed(ctx, req.Token); err != nil {
		return err
	}

	// Existing sessions must not survive a password reset.
	if err := s.refreshRepo.RevokeTokensByUserID(ctx, userID); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Msg("Password reset completed")

	return nil
}

// ChangePassword verifies the old password before storing the new hash
func (s *authServiceImpl) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, req.OldPassword) {
		return apperrors.ErrInvalidCredentials
	}

	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return err
	}

	return s.refreshRepo.RevokeTokensByUserID(ctx, userID)
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	if err := s.refreshRepo.CreateToken(ctx, user.ID, refreshToken, s.jwtService.RefreshTokenExpiry()); err != nil {
		return nil, err
	}

	profileComplete := user.IsSuperuser
	if !profileComplete {
		exists, err := s.studentRepo.ExistsByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		profileComplete = exists
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             expiresIn,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
		ProfileComplete:       profileComplete,
		IsSuperuser:           user.IsSuperuser,
	}, nil
}

// EncodeUserID encodes a user id for use in password reset links
func EncodeUserID(userID int64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatInt(userID, 10)))
}

// DecodeUserID decodes a user id produced by EncodeUserID
func DecodeUserID(encoded string) (int64, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return 0, fmt.Errorf("invalid encoded user id: %w", err)
	}

	userID, err := strconv.ParseInt(string(decoded), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid encoded user id: %w", err)
	}

	return userID, nil
}
