package server

import (
	"basecamp/domain"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

func (h *Handler) ListTrips(c *gin.Context) {
	trips, err := h.services.Trips.ListTrips()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(trips, func(v domain.TripView, _ int) tripResponse { return toTripResponse(v) }))
}

func (h *Handler) CreateTrip(c *gin.Context) {
	var req createTripRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.services.Trips.CreateTrip(currentUser(c), req.toCommand())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTripResponse(view))
}

func (h *Handler) GetTrip(c *gin.Context) {
	tripID, ok := pathID(c, "tripId", "trip")
	if !ok {
		return
	}
	view, err := h.services.Trips.GetTrip(tripID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toTripResponse(view))
}

// RequestToJoin accepts an empty body as a request without a note.
func (h *Handler) RequestToJoin(c *gin.Context) {
	tripID, ok := pathID(c, "tripId", "trip")
	if !ok {
		return
	}
	var req joinTripRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	view, err := h.services.Trips.RequestToJoin(currentUser(c), tripID, domain.JoinTripCommand{Message: req.Message})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTripResponse(view))
}

func (h *Handler) ApproveRequest(c *gin.Context) {
	tripID, ok := pathID(c, "tripId", "trip")
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId", "request")
	if !ok {
		return
	}
	view, err := h.services.Trips.ApproveRequest(currentUser(c), tripID, requestID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toTripResponse(view))
}

func (h *Handler) SendTripMessage(c *gin.Context) {
	tripID, ok := pathID(c, "tripId", "trip")
	if !ok {
		return
	}
	var req sendMessageRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.services.Trips.SendTripMessage(currentUser(c), tripID, domain.SendMessageCommand{Content: req.Content})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTripResponse(view))
}
