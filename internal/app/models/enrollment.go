package models

// Enrollment links a student to a course. The enrollment ID is supplied
// by the caller on creation.
type Enrollment struct {
	EnrollmentID   int64  `json:"enrollment_id"`
	StudentID      int64  `json:"student_id"`
	CourseID       int64  `json:"course_id"`
	EnrollmentDate string `json:"enrollment_date"`
	Grade          string `json:"grade"`
}
