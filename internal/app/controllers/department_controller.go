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

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// GetAllDepartments retrieves all departments
// @Summary Get all departments
// @Description Retrieves a list of all departments ordered by department ID
// @Tags departments
// @Accept json
// @Produce json
// @Success 200 {array} models.Department "Departments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetAllDepartments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, departments)
}

// GetDepartmentByID retrieves a department by ID
// @Summary Get department by ID
// @Description Retrieves a specific department by its ID
// @Tags departments
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} models.Department "Department retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid department ID"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments/{id} [get]
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid department ID").
			WithDetails("Department ID must be a valid number"))
		return
	}

	department, err := c.departmentService.GetDepartmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, department)
}

// CreateDepartment handles department creation
// @Summary Create a new department
// @Description Creates a new department and returns the created record
// @Tags departments
// @Accept json
// @Produce json
// @Param request body models.Department true "Department information"
// @Success 201 {object} models.Department "Department created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var department models.Department
	if err := ctx.ShouldBindJSON(&department); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid department data").
			WithDetails(err.Error()))
		return
	}

	if err := c.departmentService.CreateDepartment(ctx, &department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// The store-generated key is filled in on the way back
	ctx.JSON(http.StatusCreated, department)
}

// UpdateDepartment updates an existing department
// @Summary Update a department
// @Description Updates an existing department with the provided information
// @Tags departments
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param request body models.Department true "Updated department information"
// @Success 200 {object} dto.MessageResponse "Department updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments/{id} [put]
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid department ID").
			WithDetails("Department ID must be a valid number"))
		return
	}

	var department models.Department
	if err := ctx.ShouldBindJSON(&department); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid department data").
			WithDetails(err.Error()))
		return
	}

	department.DepartmentID = id

	if err := c.departmentService.UpdateDepartment(ctx, &department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Department updated successfully"})
}

// DeleteDepartment deletes a department
// @Summary Delete a department
// @Description Deletes a department that is not referenced by students, courses, or instructors
// @Tags departments
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.MessageResponse "Department deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid department ID"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 409 {object} dto.ErrorResponse "Department is still referenced"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid department ID").
			WithDetails("Department ID must be a valid number"))
		return
	}

	if err := c.departmentService.DeleteDepartment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Department deleted successfully"})
}
