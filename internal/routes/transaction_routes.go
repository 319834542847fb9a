package routes

import (
	"github.com/gin-gonic/gin"

	"dues_tracker/internal/controllers"
	"dues_tracker/internal/middleware"
)

func TransactionRoutes(r *gin.Engine, ctl *controllers.TransactionController) {
	transactions := r.Group("/transactions")
	transactions.Use(middleware.RequireAuth())
	{
		transactions.POST("", ctl.Create)
		transactions.GET("", ctl.List)
	}
}
