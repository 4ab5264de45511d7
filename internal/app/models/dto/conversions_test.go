package dto

import (
	"testing"
	"time"

	"github.com/oguzk/studenthub/internal/app/models"
)

func TestFromStudentProfile(t *testing.T) {
	profile := &models.StudentProfile{
		ID:          3,
		UserID:      9,
		FatherName:  "Richard",
		MotherName:  "Helen",
		Contact:     "555-0101",
		DateOfBirth: "1999-04-12",
		Branch:      "Computer Science",
		YearOfStudy: 2,
		Semester:    4,
		Address:     "12 Main St",
		User: &models.User{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			IsActive:  true,
		},
	}

	resp := FromStudentProfile(profile)

	if resp.ID != 3 || resp.UserID != 9 {
		t.Errorf("IDs = (%d, %d), want (3, 9)", resp.ID, resp.UserID)
	}
	if resp.FirstName != "Jane" || resp.LastName != "Doe" {
		t.Errorf("name = (%q, %q), want (Jane, Doe)", resp.FirstName, resp.LastName)
	}
	if resp.Email != "jane@example.com" || !resp.Active {
		t.Errorf("account fields = (%q, %v)", resp.Email, resp.Active)
	}
	if resp.Branch != "Computer Science" || resp.YearOfStudy != 2 || resp.Semester != 4 {
		t.Errorf("placement = (%q, %d, %d)", resp.Branch, resp.YearOfStudy, resp.Semester)
	}
}

func TestFromStudentProfileWithoutUser(t *testing.T) {
	resp := FromStudentProfile(&models.StudentProfile{ID: 1, UserID: 2})
	if resp.FirstName != "" || resp.Email != "" || resp.Active {
		t.Errorf("expected empty account fields, got %+v", resp)
	}
}

func TestFromStudentProfileNil(t *testing.T) {
	if resp := FromStudentProfile(nil); resp != (StudentResponse{}) {
		t.Errorf("FromStudentProfile(nil) = %+v, want zero value", resp)
	}
}

func TestFromCourse(t *testing.T) {
	course := &models.Course{
		ID:               5,
		Name:             "Algorithms",
		Department:       "Computer Science",
		HeadOfDepartment: "Prof. Knuth",
		Year:             2,
		Semester:         4,
		EnrolledStudents: 31,
	}

	resp := FromCourse(course)
	if resp.ID != 5 || resp.Name != "Algorithms" || resp.EnrolledStudents != 31 {
		t.Errorf("FromCourse() = %+v", resp)
	}

	if zero := FromCourse(nil); zero != (CourseResponse{}) {
		t.Errorf("FromCourse(nil) = %+v, want zero value", zero)
	}
}

func TestFromEnrollment(t *testing.T) {
	date := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	enrollment := &models.Enrollment{
		ID:             11,
		StudentID:      3,
		CourseID:       5,
		EnrollmentDate: date,
		Status:         models.StatusOngoing,
		Course: &models.Course{
			Name:             "Algorithms",
			Department:       "Computer Science",
			HeadOfDepartment: "Prof. Knuth",
		},
	}

	resp := FromEnrollment(enrollment)
	if resp.ID != 11 || resp.CourseID != 5 {
		t.Errorf("IDs = (%d, %d), want (11, 5)", resp.ID, resp.CourseID)
	}
	if resp.CourseName != "Algorithms" || resp.Department != "Computer Science" {
		t.Errorf("course fields = (%q, %q)", resp.CourseName, resp.Department)
	}
	if resp.Status != "ongoing" {
		t.Errorf("Status = %q, want %q", resp.Status, "ongoing")
	}
	if !resp.EnrollmentDate.Equal(date) {
		t.Errorf("EnrollmentDate = %v, want %v", resp.EnrollmentDate, date)
	}
}

func TestFromEnrollmentWithoutCourse(t *testing.T) {
	resp := FromEnrollment(&models.Enrollment{ID: 1, CourseID: 2, Status: models.StatusPass})
	if resp.CourseName != "" || resp.Department != "" {
		t.Errorf("expected empty course fields, got %+v", resp)
	}
	if resp.Status != "pass" {
		t.Errorf("Status = %q, want %q", resp.Status, "pass")
	}
}
