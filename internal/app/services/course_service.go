package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/oguzk/studenthub/internal/app/models"
	"github.com/oguzk/studenthub/internal/app/models/dto"
	"github.com/oguzk/studenthub/internal/app/repositories"
	"github.com/oguzk/studenthub/internal/pkg/apperrors"
	"github.com/oguzk/studenthub/internal/pkg/helpers"
)

// CourseService defines the interface for catalog operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error)
	SearchCourses(ctx context.Context, search string, page int) (*dto.CourseListResponse, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) error
	DeleteCourse(ctx context.Context, id int64) error
}

// CoursePageSize is the fixed page size of the course listing
const CoursePageSize = 10

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

func validateCourseFields(name, department, hod string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(department) == "" {
		return fmt.Errorf("%w: department cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(hod) == "" {
		return fmt.Errorf("%w: head of department cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateCourse adds a new course to the catalog
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if err := validateCourseFields(req.Name, req.Department, req.HeadOfDepartment); err != nil {
		return nil, err
	}

	course := &models.Course{
		Name:             req.Name,
		Department:       req.Department,
		HeadOfDepartment: req.HeadOfDepartment,
		Year:             req.Year,
		Semester:         req.Semester,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	resp := dto.FromCourse(course)
	return &resp, nil
}

// GetCourseByID retrieves a single course
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromCourse(course)
	return &resp, nil
}

// SearchCourses lists courses with the fixed page size, optionally matched
// case-insensitively against name, head of department or department.
func (s *courseServiceImpl) SearchCourses(ctx context.Context, search string, page int) (*dto.CourseListResponse, error) {
	if page < 1 {
		page = 1
	}

	courses, total, err := s.courseRepo.Search(ctx, search, page, CoursePageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		responses = append(responses, dto.FromCourse(&courses[i]))
	}

	return &dto.CourseListResponse{
		Courses:    responses,
		Pagination: helpers.NewPaginationInfo(total, page, CoursePageSize),
	}, nil
}

// UpdateCourse overwrites every course field, including the enrolled-students
// counter.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) error {
	if err := validateCourseFields(req.Name, req.Department, req.HeadOfDepartment); err != nil {
		return err
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	course.Name = req.Name
	course.Department = req.Department
	course.HeadOfDepartment = req.HeadOfDepartment
	course.Year = req.Year
	course.Semester = req.Semester
	course.EnrolledStudents = *req.EnrolledStudents

	return s.courseRepo.Update(ctx, course)
}

// DeleteCourse removes a course and, via cascade, its enrollments
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}
