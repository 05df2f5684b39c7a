package models

// Student represents an enrolled student. The student ID is supplied by
// the caller on creation and immutable afterwards.
type Student struct {
	StudentID     int64  `json:"student_id"`
	Name          string `json:"name"`
	DateOfBirth   string `json:"date_of_birth"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	AdmissionYear int    `json:"admission_year"`
	DepartmentID  int64  `json:"department_id"`
}
