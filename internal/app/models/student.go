package models

// StudentProfile defines the academic-record extension of a user account,
// based on the 'student_profiles' table. One profile per non-superuser account.
type StudentProfile struct {
	ID          int64  `json:"id" db:"id"`
	UserID      int64  `json:"userId" db:"user_id"`
	FatherName  string `json:"fatherName" db:"father_name"`
	MotherName  string `json:"motherName" db:"mother_name"`
	Contact     string `json:"contact" db:"contact"`
	DateOfBirth string `json:"dateOfBirth" db:"dob"` // Stored as text, not validated as a date
	Branch      string `json:"branch" db:"branch"`
	YearOfStudy int    `json:"yearOfStudy" db:"year_of_study"`
	Semester    int    `json:"semester" db:"semester"`
	Address     string `json:"address" db:"address"`

	// Relation (populated when needed)
	User *User `json:"user,omitempty"`
}
