package routes

import (
	"github.com/gin-gonic/gin"

	"dues_tracker/internal/controllers"
	"dues_tracker/internal/middleware"
)

func AuthRoutes(r *gin.Engine, ctl *controllers.AuthController) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", ctl.Signup)
		auth.POST("/login", ctl.Login)
		auth.POST("/logout", ctl.Logout)
		auth.GET("/me", middleware.RequireAuth(), ctl.Me)
	}
}
