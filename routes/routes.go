package routes

import (
	"net/http"
	"time"

	"noxshift/handlers"
	"noxshift/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers route registration needs.
type HandlerBundle struct {
	Shifts      *handlers.ShiftHandler
	Schedule    *handlers.ScheduleHandler
	Progression *handlers.ProgressionHandler
	Employees   *handlers.EmployeeHandler
}

// RegisterShiftRoutes registers shift CRUD and completion endpoints.
func RegisterShiftRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/shifts")
	{
		api.POST("", hb.Shifts.CreateShift)
		api.GET("", hb.Shifts.ListShifts)
		api.PATCH("/:id", hb.Shifts.UpdateShift)
		api.DELETE("/:id", hb.Shifts.DeleteShift)
		api.POST("/:id/complete", hb.Shifts.CompleteShift)
	}
}

// RegisterScheduleRoutes registers coverage and the recommend/assign flow.
func RegisterScheduleRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.GET("/coverage", hb.Schedule.Coverage)
		api.POST("/recommend", hb.Schedule.Recommend)
		api.POST("/assign", hb.Schedule.Assign)
	}
}

// RegisterProgressionRoutes registers the XP ledger and reward shop.
func RegisterProgressionRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/progression")
	{
		api.GET("/:employeeId", hb.Progression.GetProgression)
		api.POST("/:employeeId/award", hb.Progression.AwardXP)
		api.GET("/:employeeId/redemptions", hb.Progression.Redemptions)
	}
	rewards := r.Group("/api/rewards")
	{
		rewards.GET("", hb.Progression.Catalog)
		rewards.POST("/redeem", hb.Progression.Redeem)
	}
}

// RegisterEmployeeRoutes registers the roster endpoints.
func RegisterEmployeeRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/employees")
	{
		api.GET("", hb.Employees.ListEmployees)
		api.POST("", hb.Employees.CreateEmployee)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm NoxShift",
			"deps":    utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterShiftRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterProgressionRoutes(r, hb)
	RegisterEmployeeRoutes(r, hb)
	RegisterHealthRoute(r)
}
