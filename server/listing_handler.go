package server

import (
	"basecamp/domain"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

func (h *Handler) ListListings(c *gin.Context) {
	listings, err := h.services.Listings.ListListings(currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(listings, func(v domain.ListingView, _ int) listingResponse { return toListingResponse(v) }))
}

func (h *Handler) PublishListing(c *gin.Context) {
	var req publishListingRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.services.Listings.Publish(currentUser(c), req.toCommand())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toListingResponse(view))
}

func (h *Handler) GetListing(c *gin.Context) {
	listingID, ok := pathID(c, "listingId", "listing")
	if !ok {
		return
	}
	view, err := h.services.Listings.GetListing(currentUser(c), listingID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toListingResponse(view))
}
