package models

import (
	"strings"
	"time"
)

// EnrollmentStatus is the participation state of a student in a course.
type EnrollmentStatus string

const (
	StatusOngoing EnrollmentStatus = "ongoing"
	StatusPass    EnrollmentStatus = "pass"
	StatusFail    EnrollmentStatus = "fail"
)

// ParseEnrollmentStatus normalizes a submitted status value
// (case-insensitive, whitespace-trimmed) and reports whether it is valid.
func ParseEnrollmentStatus(value string) (EnrollmentStatus, bool) {
	switch EnrollmentStatus(strings.ToLower(strings.TrimSpace(value))) {
	case StatusOngoing:
		return StatusOngoing, true
	case StatusPass:
		return StatusPass, true
	case StatusFail:
		return StatusFail, true
	default:
		return "", false
	}
}

// CounterDelta returns the change to apply to the course's enrolled-students
// counter when an enrollment moves from to next. Only 'ongoing' enrollments
// count: leaving it decrements, entering it increments, same status is a no-op.
func CounterDelta(from, to EnrollmentStatus) int {
	if from == to {
		return 0
	}
	switch {
	case from == StatusOngoing:
		return -1
	case to == StatusOngoing:
		return 1
	default:
		return 0
	}
}

// Enrollment is the join record between a student profile and a course.
// EnrollmentDate is set once at creation and never updated.
type Enrollment struct {
	ID             int64            `json:"id" db:"id"`
	StudentID      int64            `json:"studentId" db:"student_id"`
	CourseID       int64            `json:"courseId" db:"course_id"`
	EnrollmentDate time.Time        `json:"enrollmentDate" db:"enrollment_date"`
	Status         EnrollmentStatus `json:"status" db:"status"`

	// Relation (populated when needed)
	Course *Course `json:"course,omitempty"`
}
