//go:generate go run go.uber.org/mock/mockgen -source=listing_service.go -destination=../mocks/mock_listing_service.go -package=mocks
package services

import (
	"basecamp/domain"
	"basecamp/repositories"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

type IListingService interface {
	Publish(seller uuid.UUID, cmd domain.PublishListingCommand) (domain.ListingView, error)
	ListListings(viewer uuid.UUID) ([]domain.ListingView, error)
	GetListing(viewer, listingID uuid.UUID) (domain.ListingView, error)
}

type ListingService struct {
	store repositories.IStore
	log   *slog.Logger
	now   func() time.Time
}

func NewListingService(store repositories.IStore, log *slog.Logger) *ListingService {
	return &ListingService{store: store, log: log, now: utcNow}
}

func (s *ListingService) Publish(seller uuid.UUID, cmd domain.PublishListingCommand) (domain.ListingView, error) {
	if err := cmd.Validate(); err != nil {
		return domain.ListingView{}, err
	}
	condition, err := domain.ParseListingCondition(cmd.Condition)
	if err != nil {
		return domain.ListingView{}, err
	}
	tradeOption, err := domain.ParseTradeOption(cmd.TradeOption)
	if err != nil {
		return domain.ListingView{}, err
	}

	listing := domain.Listing{
		Entity:      domain.NewEntity(s.now()),
		Title:       strings.TrimSpace(cmd.Title),
		Description: strings.TrimSpace(cmd.Description),
		Condition:   condition,
		Price:       cmd.Price,
		Location:    strings.TrimSpace(cmd.Location),
		TradeOption: tradeOption,
		ImageURL:    strings.TrimSpace(cmd.ImageURL),
		SellerID:    seller,
	}
	err = s.store.Update(func(tx *repositories.Tx) error {
		return tx.SaveListing(listing)
	})
	if err != nil {
		return domain.ListingView{}, err
	}
	s.log.Info("Listing published", "listing_id", listing.ID, "seller_id", seller)
	return domain.ListingView{Listing: listing}, nil
}

// ListListings returns every listing newest first, flagged with the viewer's favorites.
func (s *ListingService) ListListings(viewer uuid.UUID) ([]domain.ListingView, error) {
	var views []domain.ListingView
	err := s.store.View(func(tx *repositories.Tx) error {
		listings, err := tx.ListListings()
		if err != nil {
			return err
		}
		views = make([]domain.ListingView, 0, len(listings))
		for _, listing := range listings {
			view, err := buildListingView(tx, listing, viewer)
			if err != nil {
				return err
			}
			views = append(views, view)
		}
		return nil
	})
	return views, err
}

func (s *ListingService) GetListing(viewer, listingID uuid.UUID) (domain.ListingView, error) {
	var view domain.ListingView
	err := s.store.View(func(tx *repositories.Tx) error {
		listing, err := tx.GetListing(listingID)
		if err != nil {
			return err
		}
		view, err = buildListingView(tx, listing, viewer)
		return err
	})
	return view, err
}

func buildListingView(tx *repositories.Tx, listing domain.Listing, viewer uuid.UUID) (domain.ListingView, error) {
	favorite, err := tx.FindFavorite(viewer, listing.ID)
	if err != nil {
		return domain.ListingView{}, err
	}
	return domain.ListingView{
		Listing:  listing,
		Favorite: favorite != nil && !favorite.Archived,
	}, nil
}
