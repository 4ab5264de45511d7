package dto

import (
	"time"

	"github.com/oguzk/studenthub/internal/app/models"
)

// StatusChange is one (course, status) pair of a batch status update
type StatusChange struct {
	CourseID int64  `json:"courseId" binding:"required,min=1"`
	Status   string `json:"status" binding:"required"`
}

// UpdateEnrollmentStatusRequest is the admin batch status update for one
// student. The whole batch is validated up front and applied in a single
// transaction; one invalid status rejects every change.
type UpdateEnrollmentStatusRequest struct {
	Changes []StatusChange `json:"changes" binding:"required,min=1,dive"`
}

// EnrollmentResponse is one enrollment joined with its course
type EnrollmentResponse struct {
	ID               int64     `json:"id"`
	CourseID         int64     `json:"courseId"`
	CourseName       string    `json:"courseName"`
	Department       string    `json:"department"`
	HeadOfDepartment string    `json:"headOfDepartment"`
	EnrollmentDate   time.Time `json:"enrollmentDate"`
	Status           string    `json:"status"`
}

// FromEnrollment converts an enrollment (with its Course relation populated)
// into an EnrollmentResponse.
func FromEnrollment(enrollment *models.Enrollment) EnrollmentResponse {
	if enrollment == nil {
		return EnrollmentResponse{}
	}

	resp := EnrollmentResponse{
		ID:             enrollment.ID,
		CourseID:       enrollment.CourseID,
		EnrollmentDate: enrollment.EnrollmentDate,
		Status:         string(enrollment.Status),
	}

	if enrollment.Course != nil {
		resp.CourseName = enrollment.Course.Name
		resp.Department = enrollment.Course.Department
		resp.HeadOfDepartment = enrollment.Course.HeadOfDepartment
	}

	return resp
}

// EnrollmentListResponse lists a student's enrollments
type EnrollmentListResponse struct {
	Enrollments []EnrollmentResponse `json:"enrollments"`
	Count       int                  `json:"count"`
}
