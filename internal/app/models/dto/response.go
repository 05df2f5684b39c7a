package dto

// MessageResponse is the confirmation payload for updates and deletes.
type MessageResponse struct {
	Message string `json:"message" example:"Student updated successfully"`
}

// StudentCreatedResponse confirms a student insert and echoes the
// caller-supplied key.
type StudentCreatedResponse struct {
	Message   string `json:"message" example:"Student added successfully"`
	StudentID int64  `json:"studentId" example:"20230001"`
}

// CourseCreatedResponse confirms a course insert.
type CourseCreatedResponse struct {
	Message  string `json:"message" example:"Course created"`
	CourseID int64  `json:"courseId" example:"101"`
}

// EnrollmentCreatedResponse confirms an enrollment insert.
type EnrollmentCreatedResponse struct {
	Message      string `json:"message" example:"Enrollment added successfully"`
	EnrollmentID int64  `json:"enrollmentId" example:"1"`
}

// ClassroomCreatedResponse confirms a classroom insert.
type ClassroomCreatedResponse struct {
	Message     string `json:"message" example:"Classroom created"`
	ClassroomID int64  `json:"classroomId" example:"12"`
}

// InstructorCreatedResponse confirms an instructor insert and returns
// the store-generated key.
type InstructorCreatedResponse struct {
	Message      string `json:"message" example:"Instructor added"`
	InstructorID int64  `json:"instructorId" example:"7"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
