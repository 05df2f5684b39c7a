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

// AlumnusController handles alumni-related operations
type AlumnusController struct {
	alumnusService services.AlumnusService
}

// NewAlumnusController creates a new AlumnusController
func NewAlumnusController(alumnusService services.AlumnusService) *AlumnusController {
	return &AlumnusController{
		alumnusService: alumnusService,
	}
}

// GetAllAlumni retrieves all alumni
// @Summary Get all alumni
// @Description Retrieves a list of all alumni records ordered by alumni ID
// @Tags alumni
// @Accept json
// @Produce json
// @Success 200 {array} models.Alumnus "Alumni retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumni [get]
func (c *AlumnusController) GetAllAlumni(ctx *gin.Context) {
	alumni, err := c.alumnusService.GetAllAlumni(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, alumni)
}

// GetAlumnusByID retrieves an alumnus by ID
// @Summary Get alumnus by ID
// @Description Retrieves a specific alumnus record by its ID
// @Tags alumni
// @Accept json
// @Produce json
// @Param id path int true "Alumni ID"
// @Success 200 {object} models.Alumnus "Alumnus retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid alumni ID"
// @Failure 404 {object} dto.ErrorResponse "Alumnus not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumni/{id} [get]
func (c *AlumnusController) GetAlumnusByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid alumni ID").
			WithDetails("Alumni ID must be a valid number"))
		return
	}

	alumnus, err := c.alumnusService.GetAlumnusByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, alumnus)
}

// CreateAlumnus handles alumnus creation
// @Summary Create a new alumnus
// @Description Creates a new alumnus record and returns the created record
// @Tags alumni
// @Accept json
// @Produce json
// @Param request body models.Alumnus true "Alumnus information"
// @Success 201 {object} models.Alumnus "Alumnus created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumni [post]
func (c *AlumnusController) CreateAlumnus(ctx *gin.Context) {
	var alumnus models.Alumnus
	if err := ctx.ShouldBindJSON(&alumnus); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid alumnus data").
			WithDetails(err.Error()))
		return
	}

	if err := c.alumnusService.CreateAlumnus(ctx, &alumnus); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, alumnus)
}

// UpdateAlumnus updates an existing alumnus
// @Summary Update an alumnus
// @Description Updates an existing alumnus record with the provided information
// @Tags alumni
// @Accept json
// @Produce json
// @Param id path int true "Alumni ID"
// @Param request body models.Alumnus true "Updated alumnus information"
// @Success 200 {object} dto.MessageResponse "Alumnus updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Alumnus not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumni/{id} [put]
func (c *AlumnusController) UpdateAlumnus(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid alumni ID").
			WithDetails("Alumni ID must be a valid number"))
		return
	}

	var alumnus models.Alumnus
	if err := ctx.ShouldBindJSON(&alumnus); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid alumnus data").
			WithDetails(err.Error()))
		return
	}

	alumnus.AlumniID = id

	if err := c.alumnusService.UpdateAlumnus(ctx, &alumnus); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Alumnus updated successfully"})
}

// DeleteAlumnus deletes an alumnus
// @Summary Delete an alumnus
// @Description Deletes an existing alumnus record by its ID
// @Tags alumni
// @Accept json
// @Produce json
// @Param id path int true "Alumni ID"
// @Success 200 {object} dto.MessageResponse "Alumnus deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid alumni ID"
// @Failure 404 {object} dto.ErrorResponse "Alumnus not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumni/{id} [delete]
func (c *AlumnusController) DeleteAlumnus(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid alumni ID").
			WithDetails("Alumni ID must be a valid number"))
		return
	}

	if err := c.alumnusService.DeleteAlumnus(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Alumnus deleted successfully"})
}
