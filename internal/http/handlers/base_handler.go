// README: Shared handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/ai"
	"yatra/internal/planner"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePlannerError maps engine errors to HTTP statuses. Generation failures
// carry a classified kind: upstream auth and transport problems are the
// gateway's fault from the caller's point of view, quota exhaustion maps to
// 429 so clients can back off.
func writePlannerError(c *gin.Context, err error) {
	if errors.Is(err, planner.ErrBadRequest) {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	var genErr *ai.GenerationError
	if errors.As(err, &genErr) {
		switch genErr.Kind {
		case ai.FailureAuth:
			writeError(c, http.StatusBadGateway, "generation failed: upstream authentication error")
		case ai.FailureQuota:
			writeError(c, http.StatusTooManyRequests, "generation failed: upstream quota exceeded")
		case ai.FailureTransport:
			writeError(c, http.StatusBadGateway, "generation failed: upstream unavailable")
		default:
			writeError(c, http.StatusInternalServerError, "generation failed")
		}
		return
	}

	writeError(c, http.StatusInternalServerError, "internal error")
}
