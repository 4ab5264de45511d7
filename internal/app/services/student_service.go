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

// StudentService defines the interface for admin operations over students
// and their enrollments
type StudentService interface {
	ListStudents(ctx context.Context) (*dto.StudentListResponse, error)
	UpdateStudent(ctx context.Context, studentID int64, req *dto.AdminUpdateStudentRequest) error
	DeleteStudent(ctx context.Context, studentID int64) error
	GetStudentEnrollments(ctx context.Context, studentID int64) (*dto.EnrollmentListResponse, error)
	UpdateEnrollmentStatuses(ctx context.Context, studentID int64, req *dto.UpdateEnrollmentStatusRequest) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	userRepo       *repositories.UserRepository
	studentRepo    *repositories.StudentRepository
	enrollmentRepo *repositories.EnrollmentRepository
	logger         zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		userRepo:       userRepo,
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// ListStudents returns every student profile joined with its account
func (s *studentServiceImpl) ListStudents(ctx context.Context) (*dto.StudentListResponse, error) {
	profiles, err := s.studentRepo.GetAllWithUsers(ctx)
	if err != nil {
		return nil, err
	}

	students := make([]dto.StudentResponse, 0, len(profiles))
	for _, profile := range profiles {
		students = append(students, dto.FromStudentProfile(profile))
	}

	return &dto.StudentListResponse{
		Students: students,
		Count:    len(students),
	}, nil
}

// UpdateStudent overwrites every allow-listed field of the student's profile
// and account.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, studentID int64, req *dto.AdminUpdateStudentRequest) error {
	profile, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdateAccount(ctx, profile.UserID, req.FirstName, req.LastName, req.Email, *req.Active); err != nil {
		return err
	}

	profile.FatherName = req.FatherName
	profile.MotherName = req.MotherName
	profile.Contact = req.Contact
	profile.DateOfBirth = req.DateOfBirth
	profile.Branch = req.Branch
	profile.YearOfStudy = req.YearOfStudy
	profile.Semester = req.Semester
	profile.Address = req.Address

	return s.studentRepo.UpdateAllFields(ctx, profile)
}

// DeleteStudent removes the student's account, cascading the profile and its
// enrollment rows.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, studentID int64) error {
	if err := s.studentRepo.DeleteWithAccount(ctx, studentID); err != nil {
		return err
	}

	s.logger.Info().Int64("studentID", studentID).Msg("Student deleted")
	return nil
}

// GetStudentEnrollments lists the student's enrollments with course data
func (s *studentServiceImpl) GetStudentEnrollments(ctx context.Context, studentID int64) (*dto.EnrollmentListResponse, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.GetByStudentID(ctx, studentID, "")
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		responses = append(responses, dto.FromEnrollment(enrollment))
	}

	return &dto.EnrollmentListResponse{Enrollments: responses, Count: len(responses)}, nil
}

// UpdateEnrollmentStatuses applies a batch of status changes for one student.
// Every submitted value is validated before anything is written; the whole
// batch then runs in a single transaction, so one invalid value rejects all
// changes and a crash cannot leave the counters half-updated.
func (s *studentServiceImpl) UpdateEnrollmentStatuses(ctx context.Context, studentID int64, req *dto.UpdateEnrollmentStatusRequest) error {
	changes := make([]repositories.StatusChange, 0, len(req.Changes))
	for _, change := range req.Changes {
		status, ok := models.ParseEnrollmentStatus(change.Status)
		if !ok {
			return apperrors.NewCustomError(
				apperrors.ErrInvalidStatus,
				fmt.Sprintf("invalid enrollment status %q", change.Status),
			).WithDetails(map[string]interface{}{
				"courseId": change.CourseID,
				"status":   change.Status,
			})
		}
		changes = append(changes, repositories.StatusChange{
			CourseID: change.CourseID,
			Status:   status,
		})
	}

	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return err
	}

	if err := s.enrollmentRepo.ApplyStatusChanges(ctx, studentID, changes); err != nil {
		return err
	}

	s.logger.Info().
		Int64("studentID", studentID).
		Int("changes", len(changes)).
		Msg("Enrollment statuses updated")

	return nil
}
