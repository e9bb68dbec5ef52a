package routes

import (
	"github.com/nanaboakye-dev/tasty-bites/handlers"
	"github.com/nanaboakye-dev/tasty-bites/middleware"
	"github.com/nanaboakye-dev/tasty-bites/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)
		public.GET("/menu", handlers.GetMenu)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── User routes ────────────────────────────────────────────────
	user := r.Group("/api/orders")
	user.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleUser, models.RoleAdmin))
	{
		user.GET("/my", handlers.GetMyOrders)
	}

	// ── Admin order routes ─────────────────────────────────────────
	adminOrders := r.Group("/api/orders")
	adminOrders.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		adminOrders.GET("", handlers.GetAllOrders)
		adminOrders.GET("/stats", handlers.GetSalesStats)
		adminOrders.PATCH("/:id/status", handlers.UpdateOrderStatus)
		adminOrders.PATCH("/:id/assign", handlers.AssignOrderWorker)
	}

	// ── Admin worker & schedule routes ─────────────────────────────
	workers := r.Group("/api/workers")
	workers.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		workers.GET("", handlers.GetWorkers)
		workers.POST("", handlers.CreateWorker)
		workers.GET("/schedules", handlers.GetAllSchedules)
		workers.DELETE("/schedules/:id", handlers.DeleteSchedule)
		workers.POST("/:id/schedules", handlers.CreateWorkerSchedule)
		workers.DELETE("/:id", handlers.DeleteWorker)
	}
}
