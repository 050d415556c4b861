package repositories

import (
	"basecamp/domain"
	"basecamp/errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

func (tx *Tx) GetListing(id uuid.UUID) (domain.Listing, error) {
	var listing domain.Listing
	found, err := tx.load(listingKey(id), &listing)
	if err != nil {
		return domain.Listing{}, err
	}
	if !found {
		return domain.Listing{}, fmt.Errorf("%w: listing %s", errors.ErrNotFound, id)
	}
	return listing, nil
}

func (tx *Tx) SaveListing(listing domain.Listing) error {
	return tx.store(listingKey(listing.ID), listing)
}

// ListListings returns every listing, most recently published first.
func (tx *Tx) ListListings() ([]domain.Listing, error) {
	values, err := tx.scan(PrefixListing)
	if err != nil {
		return nil, err
	}
	listings, err := decodeAll[domain.Listing](values)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
	return listings, nil
}
