package server

import (
	"basecamp/domain"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

func (h *Handler) ListFavorites(c *gin.Context) {
	favorites, err := h.services.Favorites.List(currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(favorites, func(v domain.FavoriteView, _ int) favoriteResponse { return toFavoriteResponse(v) }))
}

func (h *Handler) AddFavorite(c *gin.Context) {
	listingID, ok := pathID(c, "listingId", "listing")
	if !ok {
		return
	}
	view, err := h.services.Favorites.Add(currentUser(c), listingID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toFavoriteResponse(view))
}

func (h *Handler) RemoveFavorite(c *gin.Context) {
	listingID, ok := pathID(c, "listingId", "listing")
	if !ok {
		return
	}
	if err := h.services.Favorites.Remove(currentUser(c), listingID); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
