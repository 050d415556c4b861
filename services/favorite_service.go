//go:generate go run go.uber.org/mock/mockgen -source=favorite_service.go -destination=../mocks/mock_favorite_service.go -package=mocks
package services

import (
	"basecamp/domain"
	"basecamp/repositories"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type IFavoriteService interface {
	List(user uuid.UUID) ([]domain.FavoriteView, error)
	Add(user, listingID uuid.UUID) (domain.FavoriteView, error)
	Remove(user, listingID uuid.UUID) error
}

// FavoriteService toggles user bookmarks on listings.
// Add revives an archived row, Remove deletes the row outright.
type FavoriteService struct {
	store repositories.IStore
	log   *slog.Logger
	now   func() time.Time
}

func NewFavoriteService(store repositories.IStore, log *slog.Logger) *FavoriteService {
	return &FavoriteService{store: store, log: log, now: utcNow}
}

func (s *FavoriteService) List(user uuid.UUID) ([]domain.FavoriteView, error) {
	var views []domain.FavoriteView
	err := s.store.View(func(tx *repositories.Tx) error {
		favorites, err := tx.ListActiveFavorites(user)
		if err != nil {
			return err
		}
		views = make([]domain.FavoriteView, 0, len(favorites))
		for _, favorite := range favorites {
			listing, err := tx.GetListing(favorite.ListingID)
			if err != nil {
				return err
			}
			views = append(views, domain.FavoriteView{Favorite: favorite, Listing: listing})
		}
		return nil
	})
	return views, err
}

func (s *FavoriteService) Add(user, listingID uuid.UUID) (domain.FavoriteView, error) {
	var view domain.FavoriteView
	err := s.store.Update(func(tx *repositories.Tx) error {
		listing, err := tx.GetListing(listingID)
		if err != nil {
			return err
		}
		now := s.now()
		favorite, err := tx.FindFavorite(user, listing.ID)
		if err != nil {
			return err
		}
		switch {
		case favorite == nil:
			favorite = &domain.Favorite{
				Entity:    domain.NewEntity(now),
				UserID:    user,
				ListingID: listing.ID,
			}
			err = tx.CreateFavorite(*favorite)
		case favorite.Archived:
			favorite.Archived = false
			favorite.Touch(now)
			err = tx.SaveFavorite(*favorite)
		}
		if err != nil {
			return err
		}
		view = domain.FavoriteView{Favorite: *favorite, Listing: listing}
		return nil
	})
	if err != nil {
		return domain.FavoriteView{}, err
	}
	s.log.Debug("Favorite added", "user_id", user, "listing_id", listingID)
	return view, nil
}

func (s *FavoriteService) Remove(user, listingID uuid.UUID) error {
	err := s.store.Update(func(tx *repositories.Tx) error {
		listing, err := tx.GetListing(listingID)
		if err != nil {
			return err
		}
		favorite, err := tx.FindFavorite(user, listing.ID)
		if err != nil || favorite == nil {
			return err
		}
		return tx.DeleteFavorite(user, listing.ID)
	})
	if err != nil {
		return err
	}
	s.log.Debug("Favorite removed", "user_id", user, "listing_id", listingID)
	return nil
}
