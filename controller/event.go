package controller

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"nilk-backend/dao"
	"nilk-backend/economy"
	"nilk-backend/logic"

	"github.com/gin-gonic/gin"
)

// EventController handles HTTP requests on the economic event endpoint
type EventController struct {
	eventLogic *logic.EventLogic
}

func NewEventController(logic *logic.EventLogic) *EventController {
	return &EventController{eventLogic: logic}
}

// Track handles POST /events
func (c *EventController) Track(ctx *gin.Context) {
	wallet, err := extractWalletAddress(ctx)
	if err != nil {
		return
	}

	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	ev, err := economy.ParseEvent(body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	profile, outcome, err := c.eventLogic.Track(wallet, ev)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": outcome.Description,
		"profile": profile,
	})
}

// List handles GET /events
func (c *EventController) List(ctx *gin.Context) {
	wallet, err := extractWalletAddress(ctx)
	if err != nil {
		return
	}

	limit := 50
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 1 and 500"})
			return
		}
		limit = n
	}

	events, err := c.eventLogic.ListEvents(wallet, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// respondError maps the error taxonomy to status codes: validation failures
// are 400 with field issues, business-rule failures are 422, everything else
// is a 500 with no partial effects.
func respondError(ctx *gin.Context, err error) {
	var vErr *economy.ValidationError
	switch {
	case errors.As(err, &vErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid event payload", "issues": vErr.Issues})
	case errors.Is(err, economy.ErrInsufficientResource),
		errors.Is(err, economy.ErrInvalidTier),
		errors.Is(err, economy.ErrFlaskNotOwned),
		errors.Is(err, economy.ErrFlaskAlreadyActive):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, dao.ErrProfileNotFound):
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "profile not found"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
