package models

// Attendance records a student's presence in a course on a given date.
// The attendance ID is generated by the store; (student_id, course_id,
// attendance_date) is unique.
type Attendance struct {
	AttendanceID   int64  `json:"attendance_id"`
	StudentID      int64  `json:"student_id"`
	CourseID       int64  `json:"course_id"`
	AttendanceDate string `json:"attendance_date"`
	Status         string `json:"status"`
}
