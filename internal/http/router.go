// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/http/handlers"
	"yatra/internal/http/middleware"
	"yatra/internal/planner"
)

func NewRouter(plannerSvc *planner.Service, cache *planner.Store) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	plannerHandler := handlers.NewPlannerHandler(plannerSvc, cache)
	r.GET("/api/recommendations", plannerHandler.Recommendations)
	r.POST("/api/itineraries", plannerHandler.GenerateItinerary)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
