package dto

import "github.com/oguzk/studenthub/internal/app/models"

// CreateCourseRequest creates a new catalog course
type CreateCourseRequest struct {
	Name             string `json:"name" binding:"required"`
	Department       string `json:"department" binding:"required"`
	HeadOfDepartment string `json:"headOfDepartment" binding:"required"`
	Year             int    `json:"year" binding:"required,min=1"`
	Semester         int    `json:"semester" binding:"required,min=1"`
}

// UpdateCourseRequest is the allow-listed admin edit of a course.
// EnrolledStudents is directly editable, which can desynchronize the counter
// from the actual ongoing-enrollment count.
type UpdateCourseRequest struct {
	Name             string `json:"name" binding:"required"`
	Department       string `json:"department" binding:"required"`
	HeadOfDepartment string `json:"headOfDepartment" binding:"required"`
	Year             int    `json:"year" binding:"required,min=1"`
	Semester         int    `json:"semester" binding:"required,min=1"`
	EnrolledStudents *int   `json:"enrolledStudents" binding:"required,min=0"`
}

// CourseResponse is a single course projection
type CourseResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Department       string `json:"department"`
	HeadOfDepartment string `json:"headOfDepartment"`
	Year             int    `json:"year"`
	Semester         int    `json:"semester"`
	EnrolledStudents int    `json:"enrolledStudents"`
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(course *models.Course) CourseResponse {
	if course == nil {
		return CourseResponse{}
	}
	return CourseResponse{
		ID:               course.ID,
		Name:             course.Name,
		Department:       course.Department,
		HeadOfDepartment: course.HeadOfDepartment,
		Year:             course.Year,
		Semester:         course.Semester,
		EnrolledStudents: course.EnrolledStudents,
	}
}

// CourseListResponse is the paginated course listing
type CourseListResponse struct {
	Courses    []CourseResponse `json:"courses"`
	Pagination PaginationInfo   `json:"pagination"`
}
