package models

// Alumnus represents a graduated student's record. The alumni ID is
// generated by the store.
type Alumnus struct {
	AlumniID        int64  `json:"alumni_id"`
	StudentID       int64  `json:"student_id"`
	GraduationYear  int    `json:"graduation_year"`
	CurrentJobTitle string `json:"current_job_title"`
	Company         string `json:"company"`
}
