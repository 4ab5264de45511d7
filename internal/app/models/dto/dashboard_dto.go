package dto

// AdminDashboardResponse is the superuser home view
type AdminDashboardResponse struct {
	CourseCount     int64 `json:"courseCount"`
	StudentCount    int64 `json:"studentCount"`
	HODCount        int64 `json:"hodCount"`
	DepartmentCount int64 `json:"departmentCount"`
}

// StudentDashboardResponse is the student home view
type StudentDashboardResponse struct {
	Branch      string `json:"branch"`
	YearOfStudy int    `json:"yearOfStudy"`
	Semester    int    `json:"semester"`
	ActiveCount int64  `json:"activeCount"`
	PassCount   int64  `json:"passCount"`
	FailCount   int64  `json:"failCount"`
}
