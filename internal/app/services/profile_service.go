package services

import (
	"context"
	"fmt"

	"github.com/oguzk/studenthub/internal/app/models"
	"github.com/oguzk/studenthub/internal/app/models/dto"
	"github.com/oguzk/studenthub/internal/app/repositories"
	"github.com/oguzk/studenthub/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// ProfileService defines the interface for student-facing profile operations
type ProfileService interface {
	CompleteProfile(ctx context.Context, userID int64, req *dto.CompleteProfileRequest) (*dto.StudentResponse, error)
	GetOwnProfile(ctx context.Context, userID int64) (*dto.StudentResponse, error)
	UpdateOwnProfile(ctx context.Context, userID int64, req *dto.UpdateOwnProfileRequest) error
	GetOwnCourses(ctx context.Context, userID int64, statusFilter string) ([]dto.EnrollmentResponse, error)
}

// profileServiceImpl implements the ProfileService interface
type profileServiceImpl struct {
	userRepo       *repositories.UserRepository
	studentRepo    *repositories.StudentRepository
	enrollmentRepo *repositories.EnrollmentRepository
	logger         zerolog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	logger zerolog.Logger,
) ProfileService {
	return &profileServiceImpl{
		userRepo:       userRepo,
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// CompleteProfile creates exactly one student profile for the account and
// auto-enrolls it into every course matching the profile's branch, year and
// semester. This is the only enrollment pathway; there is no manual enroll.
func (s *profileServiceImpl) CompleteProfile(ctx context.Context, userID int64, req *dto.CompleteProfileRequest) (*dto.StudentResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.IsSuperuser {
		return nil, fmt.Errorf("%w: superusers do not have student profiles", apperrors.ErrPermissionDenied)
	}

	profile := &models.StudentProfile{
		UserID:      userID,
		FatherName:  req.FatherName,
		MotherName:  req.MotherName,
		Contact:     req.Contact,
		DateOfBirth: req.DateOfBirth,
		Branch:      req.Branch,
		YearOfStudy: req.YearOfStudy,
		Semester:    req.Semester,
		Address:     req.Address,
	}

	enrolled, err := s.studentRepo.CreateWithAutoEnrollment(ctx, profile)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("userID", userID).
		Int64("studentID", profile.ID).
		Int("enrolledCourses", enrolled).
		Msg("Student profile completed")

	profile.User = user
	resp := dto.FromStudentProfile(profile)
	return &resp, nil
}

// GetOwnProfile returns the caller's profile joined with account data.
// Superusers have no student profile and get the account fields only.
func (s *profileServiceImpl) GetOwnProfile(ctx context.Context, userID int64) (*dto.StudentResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.IsSuperuser {
		return &dto.StudentResponse{
			UserID:    user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Active:    user.IsActive,
		}, nil
	}

	profile, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.User = user
	resp := dto.FromStudentProfile(profile)
	return &resp, nil
}

// UpdateOwnProfile applies the self-service edit. Branch, year of study,
// semester and date of birth stay untouched.
func (s *profileServiceImpl) UpdateOwnProfile(ctx context.Context, userID int64, req *dto.UpdateOwnProfileRequest) error {
	profile, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdateContactInfo(ctx, userID, req.FirstName, req.LastName, req.Email); err != nil {
		return err
	}

	return s.studentRepo.UpdateContactFields(ctx, profile.ID, req.FatherName, req.MotherName, req.Contact, req.Address)
}

// GetOwnCourses lists the caller's enrollments, optionally filtered by status
func (s *profileServiceImpl) GetOwnCourses(ctx context.Context, userID int64, statusFilter string) ([]dto.EnrollmentResponse, error) {
	profile, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var status models.EnrollmentStatus
	if statusFilter != "" {
		parsed, ok := models.ParseEnrollmentStatus(statusFilter)
		if !ok {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, statusFilter)
		}
		status = parsed
	}

	enrollments, err := s.enrollmentRepo.GetByStudentID(ctx, profile.ID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		responses = append(responses, dto.FromEnrollment(enrollment))
	}

	return responses, nil
}
