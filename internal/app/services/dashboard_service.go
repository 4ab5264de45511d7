package services

import (
	"context"

	"github.com/oguzk/studenthub/internal/app/models"
	"github.com/oguzk/studenthub/internal/app/models/dto"
	"github.com/oguzk/studenthub/internal/app/repositories"
)

// DashboardService defines the interface for the home-view statistics
type DashboardService interface {
	GetAdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error)
	GetStudentDashboard(ctx context.Context, userID int64) (*dto.StudentDashboardResponse, error)
}

// dashboardServiceImpl implements the DashboardService interface
type dashboardServiceImpl struct {
	studentRepo    *repositories.StudentRepository
	courseRepo     *repositories.CourseRepository
	enrollmentRepo *repositories.EnrollmentRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	studentRepo *repositories.StudentRepository,
	courseRepo *repositories.CourseRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
) DashboardService {
	return &dashboardServiceImpl{
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// GetAdminDashboard returns catalog-wide counts for the superuser home view
func (s *dashboardServiceImpl) GetAdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	courseCount, err := s.courseRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	studentCount, err := s.studentRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	hodCount, err := s.courseRepo.CountDistinctHODs(ctx)
	if err != nil {
		return nil, err
	}

	departmentCount, err := s.courseRepo.CountDistinctDepartments(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminDashboardResponse{
		CourseCount:     courseCount,
		StudentCount:    studentCount,
		HODCount:        hodCount,
		DepartmentCount: departmentCount,
	}, nil
}

// GetStudentDashboard returns the caller's enrollment-status counts
func (s *dashboardServiceImpl) GetStudentDashboard(ctx context.Context, userID int64) (*dto.StudentDashboardResponse, error) {
	profile, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	activeCount, err := s.enrollmentRepo.CountByStatus(ctx, profile.ID, models.StatusOngoing)
	if err != nil {
		return nil, err
	}

	passCount, err := s.enrollmentRepo.CountByStatus(ctx, profile.ID, models.StatusPass)
	if err != nil {
		return nil, err
	}

	failCount, err := s.enrollmentRepo.CountByStatus(ctx, profile.ID, models.StatusFail)
	if err != nil {
		return nil, err
	}

	return &dto.StudentDashboardResponse{
		Branch:      profile.Branch,
		YearOfStudy: profile.YearOfStudy,
		Semester:    profile.Semester,
		ActiveCount: activeCount,
		PassCount:   passCount,
		FailCount:   failCount,
	}, nil
}
