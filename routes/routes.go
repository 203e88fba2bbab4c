package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"reservas/handlers"
	"reservas/middleware"
	"reservas/utils"
)

// RegisterChatRoutes sets up the chatbot endpoints. They are rate limited per
// IP because each turn may fan out to the NLU provider.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.RateLimitMiddleware())
		api.POST("", hb.ChatHandler)
		api.DELETE("/context", hb.ChatResetHandler)
	}
}

// RegisterSpaceRoutes sets up space lookup and occupancy endpoints. Reads are
// public; creating spaces is admin-only.
func RegisterSpaceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/spaces")
	{
		api.GET("", hb.ListSpacesHandler)
		api.GET("/by-floor", hb.SpacesByFloorHandler)
		api.GET("/:id", hb.GetSpaceHandler)
		api.GET("/:id/occupancy", hb.SpaceOccupancyHandler)

		admin := api.Group("")
		admin.Use(middleware.IdentityMiddleware(), middleware.RequireAdmin())
		admin.POST("", hb.CreateSpaceHandler)
	}
}

// RegisterReservationRoutes sets up the reservation lifecycle endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.IdentityMiddleware())
		api.POST("", hb.CreateReservationHandler)
		api.GET("/mine", hb.MyReservationsHandler)
		api.GET("/:id", hb.GetReservationHandler)
		api.PUT("/:id", hb.UpdateReservationHandler)
		api.DELETE("/:id", hb.CancelReservationHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		admin.GET("", hb.AllReservationsHandler)
		admin.GET("/pending", hb.PendingReservationsHandler)
		admin.PUT("/:id/approve", hb.ApproveReservationHandler)
		admin.PUT("/:id/reject", hb.RejectReservationHandler)
		admin.DELETE("/:id/admin", hb.DeleteReservationHandler)
		admin.POST("/reminders", hb.RunRemindersHandler)
	}
}

// RegisterScheduleRoutes sets up the class-schedule grid endpoints. The grid
// is readable by anyone; edits are admin-only.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedules")
	{
		api.GET("", hb.ListSchedulesHandler)

		admin := api.Group("")
		admin.Use(middleware.IdentityMiddleware(), middleware.RequireAdmin())
		admin.POST("", hb.CreateScheduleHandler)
		admin.PUT("/:id", hb.UpdateScheduleHandler)
		admin.DELETE("/:id", hb.DeleteScheduleHandler)
	}
}

func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.IdentityMiddleware())
		api.GET("", hb.MyNotificationsHandler)
		api.PUT("/:id/read", hb.MarkNotificationReadHandler)
	}
}

func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "stores": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Session-ID", "X-User-ID", "X-User-Role"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterSpaceRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}
