package models

// Course represents a course offered by a department. The course ID is
// supplied by the caller on creation.
type Course struct {
	CourseID     int64  `json:"course_id"`
	CourseName   string `json:"course_name"`
	Credits      int    `json:"credits"`
	DepartmentID int64  `json:"department_id"`
	Semester     string `json:"semester"`
}
