package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusregistry/internal/app/controllers"
	"campusregistry/internal/app/models/dto"
)

// SetupRouter mounts all entity route groups under /api.
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	departmentController *controllers.DepartmentController,
	enrollmentController *controllers.EnrollmentController,
	classroomController *controllers.ClassroomController,
	alumnusController *controllers.AlumnusController,
	instructorController *controllers.InstructorController,
	attendanceController *controllers.AttendanceController,
) {
	api := router.Group("/api")

	students := api.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	departments := api.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
		departments.POST("", departmentController.CreateDepartment)
		departments.PUT("/:id", departmentController.UpdateDepartment)
		departments.DELETE("/:id", departmentController.DeleteDepartment)
	}

	enrollments := api.Group("/enrollments")
	{
		enrollments.GET("", enrollmentController.GetAllEnrollments)
		enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.PUT("/:id", enrollmentController.UpdateEnrollment)
		enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)
	}

	classrooms := api.Group("/classrooms")
	{
		classrooms.GET("", classroomController.GetAllClassrooms)
		classrooms.GET("/:id", classroomController.GetClassroomByID)
		classrooms.POST("", classroomController.CreateClassroom)
		classrooms.PUT("/:id", classroomController.UpdateClassroom)
		classrooms.DELETE("/:id", classroomController.DeleteClassroom)
	}

	alumni := api.Group("/alumni")
	{
		alumni.GET("", alumnusController.GetAllAlumni)
		alumni.GET("/:id", alumnusController.GetAlumnusByID)
		alumni.POST("", alumnusController.CreateAlumnus)
		alumni.PUT("/:id", alumnusController.UpdateAlumnus)
		alumni.DELETE("/:id", alumnusController.DeleteAlumnus)
	}

	instructors := api.Group("/instructors")
	{
		instructors.GET("", instructorController.GetAllInstructors)
		instructors.GET("/:id", instructorController.GetInstructorByID)
		instructors.POST("", instructorController.CreateInstructor)
		instructors.PUT("/:id", instructorController.UpdateInstructor)
		instructors.DELETE("/:id", instructorController.DeleteInstructor)
	}

	attendance := api.Group("/attendance")
	{
		attendance.GET("", attendanceController.GetAllAttendance)
		attendance.GET("/:id", attendanceController.GetAttendanceByID)
		attendance.POST("", attendanceController.CreateAttendance)
		attendance.PUT("/:id", attendanceController.UpdateAttendance)
		attendance.DELETE("/:id", attendanceController.DeleteAttendance)
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})
}
