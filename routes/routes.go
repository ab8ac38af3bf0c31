package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tablescout/handlers"
	"tablescout/middleware"
	userSvc "tablescout/services/user"
	"tablescout/utils"
)

// HandlerBundle groups the handlers and the session store the auth
// middleware checks tokens against.
type HandlerBundle struct {
	Auth       *handlers.AuthHandler
	Restaurant *handlers.RestaurantHandler
	Booking    *handlers.BookingHandler
	Sessions   userSvc.SessionStore
}

// RegisterAuthRoutes registers mock sign-in/sign-up/sign-out endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/signup", hb.Auth.SignupHandler)

		// Sign-out needs a live session to drop.
		api.POST("/logout", middleware.JWTAuthUserMiddleware(hb.Sessions), hb.Auth.LogoutHandler)
	}
}

// RegisterRestaurantRoutes registers catalog browse, detail, review and
// availability endpoints. Browsing is public; availability too, so the
// booking form can render before sign-in.
func RegisterRestaurantRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/restaurants")
	{
		api.GET("", hb.Restaurant.ListRestaurantsHandler)
		api.GET("/:id", hb.Restaurant.GetRestaurantHandler)
		api.GET("/:id/reviews", hb.Restaurant.ListReviewsHandler)
		api.GET("/:id/slots", hb.Booking.GetSlotsHandler)
	}
}

// RegisterReservationRoutes registers reservation CRUD. All of it requires a
// signed-in diner.
func RegisterReservationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.Sessions))
		api.POST("", hb.Booking.CreateReservationHandler)
		api.GET("", hb.Booking.ListReservationsHandler)
		api.PATCH("/:id", hb.Booking.UpdateReservationHandler)
		api.DELETE("/:id", hb.Booking.CancelReservationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterRestaurantRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterHealthRoute(r)
}
