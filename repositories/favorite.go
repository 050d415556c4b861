package repositories

import (
	"basecamp/domain"
	"basecamp/errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// FindFavorite returns the favorite row of user on listing, archived or not, nil when absent.
func (tx *Tx) FindFavorite(userID, listingID uuid.UUID) (*domain.Favorite, error) {
	var favorite domain.Favorite
	found, err := tx.load(favoriteKey(userID, listingID), &favorite)
	if err != nil || !found {
		return nil, err
	}
	return &favorite, nil
}

// CreateFavorite inserts a favorite. The (user, listing) key is unique.
func (tx *Tx) CreateFavorite(favorite domain.Favorite) error {
	key := favoriteKey(favorite.UserID, favorite.ListingID)
	exists, err := tx.exists(key)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: user %s on listing %s", errors.ErrDuplicateFavorite, favorite.UserID, favorite.ListingID)
	}
	return tx.store(key, favorite)
}

func (tx *Tx) SaveFavorite(favorite domain.Favorite) error {
	return tx.store(favoriteKey(favorite.UserID, favorite.ListingID), favorite)
}

// DeleteFavorite removes the row outright. Deleting a missing row is a no-op.
func (tx *Tx) DeleteFavorite(userID, listingID uuid.UUID) error {
	return tx.txn.Delete([]byte(favoriteKey(userID, listingID)))
}

// ListActiveFavorites returns the non-archived favorites of user, newest first.
func (tx *Tx) ListActiveFavorites(userID uuid.UUID) ([]domain.Favorite, error) {
	values, err := tx.scan(favoritePrefix(userID))
	if err != nil {
		return nil, err
	}
	favorites, err := decodeAll[domain.Favorite](values)
	if err != nil {
		return nil, err
	}
	favorites = lo.Filter(favorites, func(f domain.Favorite, _ int) bool {
		return !f.Archived
	})
	sort.SliceStable(favorites, func(i, j int) bool {
		return favorites[i].CreatedAt.After(favorites[j].CreatedAt)
	})
	return favorites, nil
}
