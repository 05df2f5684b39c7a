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

// EnrollmentController handles enrollment-related operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// GetAllEnrollments retrieves all enrollments
// @Summary Get all enrollments
// @Description Retrieves a list of all enrollments ordered by enrollment ID
// @Tags enrollments
// @Accept json
// @Produce json
// @Success 200 {array} models.Enrollment "Enrollments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetAllEnrollments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrollments)
}

// GetEnrollmentByID retrieves an enrollment by ID
// @Summary Get enrollment by ID
// @Description Retrieves a specific enrollment by its ID
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} models.Enrollment "Enrollment retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment ID"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid enrollment ID").
			WithDetails("Enrollment ID must be a valid number"))
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrollment)
}

// CreateEnrollment handles enrollment creation
// @Summary Create a new enrollment
// @Description Enrolls a student in a course with the caller-supplied enrollment ID
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body models.Enrollment true "Enrollment information"
// @Success 201 {object} dto.EnrollmentCreatedResponse "Enrollment added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Enrollment ID already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var enrollment models.Enrollment
	if err := ctx.ShouldBindJSON(&enrollment); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid enrollment data").
			WithDetails(err.Error()))
		return
	}

	if err := c.enrollmentService.CreateEnrollment(ctx, &enrollment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.EnrollmentCreatedResponse{
		Message:      "Enrollment added successfully",
		EnrollmentID: enrollment.EnrollmentID,
	})
}

// UpdateEnrollment updates an existing enrollment
// @Summary Update an enrollment
// @Description Updates an existing enrollment and returns the stored row
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param request body models.Enrollment true "Updated enrollment information"
// @Success 200 {object} models.Enrollment "Enrollment updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id} [put]
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid enrollment ID").
			WithDetails("Enrollment ID must be a valid number"))
		return
	}

	var enrollment models.Enrollment
	if err := ctx.ShouldBindJSON(&enrollment); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid enrollment data").
			WithDetails(err.Error()))
		return
	}

	enrollment.EnrollmentID = id

	updated, err := c.enrollmentService.UpdateEnrollment(ctx, &enrollment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeleteEnrollment deletes an enrollment
// @Summary Delete an enrollment
// @Description Deletes an existing enrollment by its ID
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.MessageResponse "Enrollment deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment ID"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid enrollment ID").
			WithDetails("Enrollment ID must be a valid number"))
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Enrollment deleted successfully"})
}
