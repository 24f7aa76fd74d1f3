package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListCourts(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetMyBookings(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListSessions(c *ginext.Context)
	GetRoster(c *ginext.Context)
	CreateSignUp(c *ginext.Context)
	CancelSignUp(c *ginext.Context)
	Stream(c *ginext.Context)
}

// InitRouter builds the route table. auth guards everything under /api;
// mw runs on all routes.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	api.Use(auth)
	{
		// Courts and availability
		api.GET("/courts", h.ListCourts)
		api.GET("/courts/:id/availability", h.GetAvailability)

		// Bookings
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/my", h.GetMyBookings)
		api.POST("/bookings", h.CreateBooking)
		api.PATCH("/bookings/:id", h.UpdateBooking)
		api.DELETE("/bookings/:id", h.CancelBooking)

		// Class sessions
		api.GET("/classes", h.ListSessions)
		api.GET("/classes/:key/roster", h.GetRoster)
		api.POST("/classes/:key/signups", h.CreateSignUp)
		api.DELETE("/signups/:id", h.CancelSignUp)

		// Live updates
		api.GET("/stream", h.Stream)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
