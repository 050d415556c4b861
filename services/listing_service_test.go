package services

import (
	"basecamp/domain"
	"basecamp/errors"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestListingService(t *testing.T) {
	t.Run("should publish a normalized listing", func(t *testing.T) {
		req := require.New(t)
		s := newServices(t)
		seller := uuid.New()

		view, err := s.listings.Publish(seller, domain.PublishListingCommand{
			Title:       "  Ice screws  ",
			Description: "Set of 4",
			Condition:   "GOOD",
			Price:       120,
			Location:    "Bern",
			TradeOption: "Face_To_Face",
		})

		req.NoError(err)
		req.Equal("Ice screws", view.Title)
		req.Equal(domain.ConditionGood, view.Condition)
		req.Equal(domain.TradeFaceToFace, view.TradeOption)
		req.Equal(seller, view.SellerID)
		req.False(view.Favorite)
	})

	t.Run("should reject an unknown condition", func(t *testing.T) {
		req := require.New(t)
		s := newServices(t)

		_, err := s.listings.Publish(uuid.New(), domain.PublishListingCommand{
			Title:       "Boots",
			Description: "Leather",
			Condition:   "destroyed",
			Price:       10,
			Location:    "Bern",
			TradeOption: "courier",
		})
		req.ErrorIs(err, errors.ErrInvalidStatus)
	})

	t.Run("should list newest first with the viewer's favorites", func(t *testing.T) {
		req := require.New(t)
		s := newServices(t)
		viewer := uuid.New()
		older := publish(t, s, uuid.New(), "Older")
		newer := publish(t, s, uuid.New(), "Newer")
		_, err := s.favorites.Add(viewer, older.ID)
		req.NoError(err)

		listings, err := s.listings.ListListings(viewer)
		req.NoError(err)
		req.Equal([]uuid.UUID{newer.ID, older.ID}, lo.Map(listings, func(v domain.ListingView, _ int) uuid.UUID { return v.ID }))
		req.False(listings[0].Favorite)
		req.True(listings[1].Favorite)

		_, err = s.listings.GetListing(viewer, uuid.New())
		req.ErrorIs(err, errors.ErrNotFound)
	})
}
