// Package server maps the core services onto JSON over HTTP.
package server

import (
	"basecamp/auth"
	"basecamp/services"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Trips     services.ITripService
	Messages  services.IMessageService
	Favorites services.IFavoriteService
	Listings  services.IListingService
}

type Handler struct {
	services Services
	log      *slog.Logger
}

// NewRouter wires every route behind the auth middleware, except the health check.
func NewRouter(log *slog.Logger, authenticator auth.Authenticator, svc Services, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(log), RequestLogger(log))
	r.Use(cors.New(corsConfig(allowedOrigins)))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := &Handler{services: svc, log: log}
	api := r.Group("/api")
	api.Use(RequireAuth(authenticator))
	{
		api.GET("/trips", h.ListTrips)
		api.POST("/trips", h.CreateTrip)
		api.GET("/trips/:tripId", h.GetTrip)
		api.POST("/trips/:tripId/requests", h.RequestToJoin)
		api.POST("/trips/:tripId/requests/:requestId/approve", h.ApproveRequest)
		api.POST("/trips/:tripId/messages", h.SendTripMessage)

		api.GET("/messages", h.ListThreads)
		api.POST("/messages", h.CreateThread)
		api.GET("/messages/:threadId", h.GetThread)
		api.POST("/messages/:threadId", h.SendMessage)

		api.GET("/favorites", h.ListFavorites)
		api.POST("/favorites/:listingId", h.AddFavorite)
		api.DELETE("/favorites/:listingId", h.RemoveFavorite)

		api.GET("/listings", h.ListListings)
		api.POST("/listings", h.PublishListing)
		api.GET("/listings/:listingId", h.GetListing)
	}
	return r
}

func corsConfig(allowedOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = allowedOrigins
	config.AllowCredentials = true
	return config
}
