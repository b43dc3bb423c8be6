package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	employeeRepo "noxshift/database/repository/employee"
	"noxshift/models"
)

// EmployeeHandler serves the employee roster.
type EmployeeHandler struct {
	Employees employeeRepo.EmployeeRepository
}

// NewEmployeeHandler constructs an EmployeeHandler.
func NewEmployeeHandler(employees employeeRepo.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{Employees: employees}
}

// ListEmployees returns the full roster.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.Employees.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load employees", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

// CreateEmployee adds an employee to the roster.
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var input struct {
		Name string  `json:"name" binding:"required"`
		Rate float64 `json:"rate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if existing, err := h.Employees.GetByName(c.Request.Context(), input.Name); err == nil && existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "an employee with this name already exists"})
		return
	}

	created, err := h.Employees.Create(c.Request.Context(), models.Employee{
		Name: input.Name,
		Rate: input.Rate,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create employee", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}
