package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"dues_tracker/internal/controllers"
	"dues_tracker/internal/middleware"
)

// Controllers bundles every handler group the router needs.
type Controllers struct {
	Auth          *controllers.AuthController
	Members       *controllers.MemberController
	Fees          *controllers.FeeController
	Transactions  *controllers.TransactionController
	Organizations *controllers.OrganizationController
	Dashboard     *controllers.DashboardController
	Feed          *controllers.FeedController

	// UploadDir is served at /uploads so receipt URLs resolve.
	UploadDir string
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())
	r.Use(middleware.CORS())

	if ctl.UploadDir != "" {
		r.Static("/uploads", ctl.UploadDir)
	}

	AuthRoutes(r, ctl.Auth)
	MemberRoutes(r, ctl.Members)
	FeeRoutes(r, ctl.Fees)
	TransactionRoutes(r, ctl.Transactions)
	OrganizationRoutes(r, ctl.Organizations)
	DashboardRoutes(r, ctl.Dashboard)
	WebSocketRoutes(r, ctl.Feed)

	return r
}
