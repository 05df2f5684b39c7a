package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campusregistry/internal/app/models"
	"campusregistry/internal/app/models/dto"
	"campusregistry/internal/app/services"
	"campusregistry/internal/middleware"
)

// AttendanceController handles attendance-related operations
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// GetAllAttendance retrieves all attendance records
// @Summary Get all attendance records
// @Description Retrieves a list of all attendance records ordered by attendance ID
// @Tags attendance
// @Accept json
// @Produce json
// @Success 200 {array} models.Attendance "Attendance records retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [get]
func (c *AttendanceController) GetAllAttendance(ctx *gin.Context) {
	records, err := c.attendanceService.GetAllAttendance(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// GetAttendanceByID retrieves an attendance record by ID
// @Summary Get attendance record by ID
// @Description Retrieves a specific attendance record by its ID
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path int true "Attendance ID"
// @Success 200 {object} models.Attendance "Attendance record retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid attendance ID"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{id} [get]
func (c *AttendanceController) GetAttendanceByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid attendance ID").
			WithDetails("Attendance ID must be a valid number"))
		return
	}

	record, err := c.attendanceService.GetAttendanceByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// CreateAttendance handles attendance record creation
// @Summary Create a new attendance record
// @Description Records a student's attendance in a course on a given date and returns the created record
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body models.Attendance true "Attendance information"
// @Success 201 {object} models.Attendance "Attendance record created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Duplicate attendance entry"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [post]
func (c *AttendanceController) CreateAttendance(ctx *gin.Context) {
	var record models.Attendance
	if err := ctx.ShouldBindJSON(&record); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid attendance data").
			WithDetails(err.Error()))
		return
	}

	if err := c.attendanceService.CreateAttendance(ctx, &record); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// UpdateAttendance updates an existing attendance record
// @Summary Update an attendance record
// @Description Updates an existing attendance record with the provided information
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path int true "Attendance ID"
// @Param request body models.Attendance true "Updated attendance information"
// @Success 200 {object} dto.MessageResponse "Attendance record updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{id} [put]
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid attendance ID").
			WithDetails("Attendance ID must be a valid number"))
		return
	}

	var record models.Attendance
	if err := ctx.ShouldBindJSON(&record); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid attendance data").
			WithDetails(err.Error()))
		return
	}

	record.AttendanceID = id

	if err := c.attendanceService.UpdateAttendance(ctx, &record); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Attendance record updated successfully"})
}

// DeleteAttendance deletes an attendance record
// @Summary Delete an attendance record
// @Description Deletes an existing attendance record by its ID
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path int true "Attendance ID"
// @Success 200 {object} dto.MessageResponse "Attendance record deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid attendance ID"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{id} [delete]
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid attendance ID").
			WithDetails("Attendance ID must be a valid number"))
		return
	}

	if err := c.attendanceService.DeleteAttendance(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Attendance record deleted successfully"})
}
