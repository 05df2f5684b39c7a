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

// InstructorController handles instructor-related operations
type InstructorController struct {
	instructorService services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// GetAllInstructors retrieves all instructors
// @Summary Get all instructors
// @Description Retrieves a list of all instructors ordered by instructor ID
// @Tags instructors
// @Accept json
// @Produce json
// @Success 200 {array} models.Instructor "Instructors retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors [get]
func (c *InstructorController) GetAllInstructors(ctx *gin.Context) {
	instructors, err := c.instructorService.GetAllInstructors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, instructors)
}

// GetInstructorByID retrieves an instructor by ID
// @Summary Get instructor by ID
// @Description Retrieves a specific instructor by its ID
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} models.Instructor "Instructor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id} [get]
func (c *InstructorController) GetInstructorByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid instructor ID").
			WithDetails("Instructor ID must be a valid number"))
		return
	}

	instructor, err := c.instructorService.GetInstructorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, instructor)
}

// CreateInstructor handles instructor creation
// @Summary Create a new instructor
// @Description Creates a new instructor and returns the generated instructor ID
// @Tags instructors
// @Accept json
// @Produce json
// @Param request body models.Instructor true "Instructor information"
// @Success 201 {object} dto.InstructorCreatedResponse "Instructor added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors [post]
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var instructor models.Instructor
	if err := ctx.ShouldBindJSON(&instructor); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid instructor data").
			WithDetails(err.Error()))
		return
	}

	if err := c.instructorService.CreateInstructor(ctx, &instructor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.InstructorCreatedResponse{
		Message:      "Instructor added",
		InstructorID: instructor.InstructorID,
	})
}

// UpdateInstructor updates an existing instructor
// @Summary Update an instructor
// @Description Updates an existing instructor with the provided information
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID"
// @Param request body models.Instructor true "Updated instructor information"
// @Success 200 {object} dto.MessageResponse "Instructor updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id} [put]
func (c *InstructorController) UpdateInstructor(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid instructor ID").
			WithDetails("Instructor ID must be a valid number"))
		return
	}

	var instructor models.Instructor
	if err := ctx.ShouldBindJSON(&instructor); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid instructor data").
			WithDetails(err.Error()))
		return
	}

	instructor.InstructorID = id

	if err := c.instructorService.UpdateInstructor(ctx, &instructor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Instructor updated"})
}

// DeleteInstructor deletes an instructor
// @Summary Delete an instructor
// @Description Deletes an existing instructor by its ID
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.MessageResponse "Instructor deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id} [delete]
func (c *InstructorController) DeleteInstructor(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid instructor ID").
			WithDetails("Instructor ID must be a valid number"))
		return
	}

	if err := c.instructorService.DeleteInstructor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Instructor deleted"})
}
