package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"employee-records/internal/dto"
	"employee-records/internal/response"
	"employee-records/internal/service"
)

// EmployeeHandler handles employee HTTP requests
type EmployeeHandler struct {
	employeeService service.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// List handles GET /emp/employees with optional exact-match filters
func (h *EmployeeHandler) List(c *gin.Context) {
	var query dto.ListEmployeeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	employees, err := h.employeeService.List(c.Request.Context(), &query)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, employees)
}

// Search handles GET /emp/search - case-insensitive exact match on
// department and/or position. No matches is still a 200.
func (h *EmployeeHandler) Search(c *gin.Context) {
	var query dto.SearchEmployeeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	employees, err := h.employeeService.Search(c.Request.Context(), &query)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, employees)
}

// Create handles POST /emp/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if valid, msg := req.Validate(); !valid {
		response.ValidationError(c, msg)
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeEmailTaken) {
			response.Conflict(c, "Employee with this email already exists")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, employee)
}

// GetByID handles GET /emp/employees/:eid
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	employee, err := h.employeeService.GetByID(c.Request.Context(), c.Param("eid"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmployeeID) {
			response.BadRequest(c, "Invalid Employee ID format")
			return
		}
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, "Employee not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, employee)
}

// Update handles PUT /emp/employees/:eid
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if valid, msg := req.Validate(); !valid {
		response.ValidationError(c, msg)
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), c.Param("eid"), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmployeeID) {
			response.BadRequest(c, "Invalid Employee ID format")
			return
		}
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, "Employee not found")
			return
		}
		if errors.Is(err, service.ErrEmployeeEmailTaken) {
			response.Conflict(c, "Employee with this email already exists")
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{
		"message":  "Employee details updated successfully!",
		"employee": employee,
	})
}

// Delete handles DELETE /emp/employees/:eid
func (h *EmployeeHandler) Delete(c *gin.Context) {
	err := h.employeeService.Delete(c.Request.Context(), c.Param("eid"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmployeeID) {
			response.BadRequest(c, "Invalid Employee ID format")
			return
		}
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, "Employee not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, dto.MessageResponse{Message: "Employee details deleted successfully!"})
}
