package dto

import "github.com/oguzk/studenthub/internal/app/models"

// CompleteProfileRequest creates the student profile for the authenticated
// account. Branch, year and semester decide the automatic course enrollments.
type CompleteProfileRequest struct {
	FatherName  string `json:"fatherName" binding:"required"`
	MotherName  string `json:"motherName" binding:"required"`
	Contact     string `json:"contact" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
	Branch      string `json:"branch" binding:"required"`
	YearOfStudy int    `json:"yearOfStudy" binding:"required,min=1"`
	Semester    int    `json:"semester" binding:"required,min=1"`
	Address     string `json:"address" binding:"required"`
}

// UpdateOwnProfileRequest is the self-service profile edit. Branch, year of
// study, semester and date of birth are immutable through this path.
type UpdateOwnProfileRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	FatherName string `json:"fatherName" binding:"required"`
	MotherName string `json:"motherName" binding:"required"`
	Contact    string `json:"contact" binding:"required"`
	Address    string `json:"address" binding:"required"`
}

// AdminUpdateStudentRequest is the allow-listed admin edit of a student.
// Every bound field overwrites the stored value.
type AdminUpdateStudentRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Active      *bool  `json:"active" binding:"required"`
	FatherName  string `json:"fatherName" binding:"required"`
	MotherName  string `json:"motherName" binding:"required"`
	Contact     string `json:"contact" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
	Branch      string `json:"branch" binding:"required"`
	YearOfStudy int    `json:"yearOfStudy" binding:"required,min=1"`
	Semester    int    `json:"semester" binding:"required,min=1"`
	Address     string `json:"address" binding:"required"`
}

// StudentResponse is a student profile joined with its account
type StudentResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Active      bool   `json:"active"`
	FatherName  string `json:"fatherName"`
	MotherName  string `json:"motherName"`
	Contact     string `json:"contact"`
	DateOfBirth string `json:"dateOfBirth"`
	Branch      string `json:"branch"`
	YearOfStudy int    `json:"yearOfStudy"`
	Semester    int    `json:"semester"`
	Address     string `json:"address"`
}

// FromStudentProfile converts a profile (with its User relation populated)
// into a StudentResponse.
func FromStudentProfile(profile *models.StudentProfile) StudentResponse {
	if profile == nil {
		return StudentResponse{}
	}

	resp := StudentResponse{
		ID:          profile.ID,
		UserID:      profile.UserID,
		FatherName:  profile.FatherName,
		MotherName:  profile.MotherName,
		Contact:     profile.Contact,
		DateOfBirth: profile.DateOfBirth,
		Branch:      profile.Branch,
		YearOfStudy: profile.YearOfStudy,
		Semester:    profile.Semester,
		Address:     profile.Address,
	}

	if profile.User != nil {
		resp.FirstName = profile.User.FirstName
		resp.LastName = profile.User.LastName
		resp.Email = profile.User.Email
		resp.Active = profile.User.IsActive
	}

	return resp
}

// StudentListResponse is the admin student listing
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
	Count    int               `json:"count"`
}
