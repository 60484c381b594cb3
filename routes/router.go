package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/gigflow/gigflow-go/docs"
	"github.com/gigflow/gigflow-go/handlers"
	"github.com/gigflow/gigflow-go/middleware"
	"github.com/gigflow/gigflow-go/repositories"
	"github.com/gigflow/gigflow-go/services"
	"github.com/gigflow/gigflow-go/websocket"
)

func RegisterRoutes(r *gin.Engine, hub *websocket.Hub) {

	// init
	repos := repositories.New()
	svc := services.New(repos, hub)
	h := handlers.New(svc)

	// setup
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "GigFlow API is running", "status": "OK"})
	})
	r.GET("/ws/notifications", websocket.ServeWS(hub))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", middleware.JWTAuthMiddleware(), h.Auth.GetMe)
	}

	gigs := api.Group("/gigs")
	{
		gigs.GET("", h.Gig.GetGigs)
		gigs.GET("/my-gigs", middleware.JWTAuthMiddleware(), h.Gig.GetMyGigs)
		gigs.GET("/:id", h.Gig.GetGigByID)
		gigs.POST("", middleware.JWTAuthMiddleware(), h.Gig.CreateGig)
		gigs.PUT("/:id", middleware.JWTAuthMiddleware(), h.Gig.UpdateGig)
		gigs.DELETE("/:id", middleware.JWTAuthMiddleware(), h.Gig.DeleteGig)
	}

	bids := api.Group("/bids")
	bids.Use(middleware.JWTAuthMiddleware())
	{
		bids.POST("", h.Bid.CreateBid)
		bids.GET("/my-bids", h.Bid.GetMyBids)
		bids.GET("/:gigId", h.Bid.GetBidsByGig)
		bids.PATCH("/:bidId/hire", h.Bid.HireBid)
	}

	audit := api.Group("/audit")
	audit.Use(middleware.JWTAuthMiddleware())
	{
		audit.GET("/logs", h.Audit.GetAuditLogs)
	}
}
