package models

// Instructor represents a teaching staff member. The instructor ID is
// generated by the store.
type Instructor struct {
	InstructorID int64  `json:"instructor_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	HireDate     string `json:"hire_date"`
	DepartmentID int64  `json:"department_id"`
}
