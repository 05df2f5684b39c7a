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

// ClassroomController handles classroom-related operations
type ClassroomController struct {
	classroomService services.ClassroomService
}

// NewClassroomController creates a new ClassroomController
func NewClassroomController(classroomService services.ClassroomService) *ClassroomController {
	return &ClassroomController{
		classroomService: classroomService,
	}
}

// GetAllClassrooms retrieves all classrooms
// @Summary Get all classrooms
// @Description Retrieves a list of all classrooms ordered by classroom ID
// @Tags classrooms
// @Accept json
// @Produce json
// @Success 200 {array} models.Classroom "Classrooms retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms [get]
func (c *ClassroomController) GetAllClassrooms(ctx *gin.Context) {
	classrooms, err := c.classroomService.GetAllClassrooms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, classrooms)
}

// GetClassroomByID retrieves a classroom by ID
// @Summary Get classroom by ID
// @Description Retrieves a specific classroom by its ID
// @Tags classrooms
// @Accept json
// @Produce json
// @Param id path int true "Classroom ID"
// @Success 200 {object} models.Classroom "Classroom retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid classroom ID"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms/{id} [get]
func (c *ClassroomController) GetClassroomByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid classroom ID").
			WithDetails("Classroom ID must be a valid number"))
		return
	}

	classroom, err := c.classroomService.GetClassroomByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, classroom)
}

// CreateClassroom handles classroom creation
// @Summary Create a new classroom
// @Description Creates a new classroom with the caller-supplied classroom ID
// @Tags classrooms
// @Accept json
// @Produce json
// @Param request body models.Classroom true "Classroom information"
// @Success 201 {object} dto.ClassroomCreatedResponse "Classroom created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Classroom ID already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms [post]
func (c *ClassroomController) CreateClassroom(ctx *gin.Context) {
	var classroom models.Classroom
	if err := ctx.ShouldBindJSON(&classroom); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid classroom data").
			WithDetails(err.Error()))
		return
	}

	if err := c.classroomService.CreateClassroom(ctx, &classroom); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ClassroomCreatedResponse{
		Message:     "Classroom created",
		ClassroomID: classroom.ClassroomID,
	})
}

// UpdateClassroom updates an existing classroom
// @Summary Update a classroom
// @Description Updates an existing classroom with the provided information
// @Tags classrooms
// @Accept json
// @Produce json
// @Param id path int true "Classroom ID"
// @Param request body models.Classroom true "Updated classroom information"
// @Success 200 {object} dto.MessageResponse "Classroom updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms/{id} [put]
func (c *ClassroomController) UpdateClassroom(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid classroom ID").
			WithDetails("Classroom ID must be a valid number"))
		return
	}

	var classroom models.Classroom
	if err := ctx.ShouldBindJSON(&classroom); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid classroom data").
			WithDetails(err.Error()))
		return
	}

	classroom.ClassroomID = id

	if err := c.classroomService.UpdateClassroom(ctx, &classroom); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Classroom updated"})
}

// DeleteClassroom deletes a classroom
// @Summary Delete a classroom
// @Description Deletes an existing classroom by its ID
// @Tags classrooms
// @Accept json
// @Produce json
// @Param id path int true "Classroom ID"
// @Success 200 {object} dto.MessageResponse "Classroom deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid classroom ID"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms/{id} [delete]
func (c *ClassroomController) DeleteClassroom(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid classroom ID").
			WithDetails("Classroom ID must be a valid number"))
		return
	}

	if err := c.classroomService.DeleteClassroom(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Classroom deleted"})
}
