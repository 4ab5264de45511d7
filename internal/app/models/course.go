package models

// Course represents a catalog offering tied to a department, year and semester.
// EnrolledStudents is denormalized: it must equal the count of this course's
// enrollments with status 'ongoing', and every status write updates it in the
// same transaction.
type Course struct {
	ID               int64  `json:"id" db:"id"`
	Name             string `json:"name" db:"name"`
	Department       string `json:"department" db:"department"`
	HeadOfDepartment string `json:"headOfDepartment" db:"head_of_department"`
	Year             int    `json:"year" db:"year"`
	Semester         int    `json:"semester" db:"semester"`
	EnrolledStudents int    `json:"enrolledStudents" db:"enrolled_students"`
}
