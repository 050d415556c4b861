package domain

import "github.com/google/uuid"

type Listing struct {
	Entity
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Condition   ListingCondition `json:"condition"`
	Price       float64          `json:"price"`
	Location    string           `json:"location"`
	TradeOption TradeOption      `json:"trade_option"`
	ImageURL    string           `json:"image_url,omitempty"`
	SellerID    uuid.UUID        `json:"seller_id"`
}

// Favorite bookmarks a listing for a user. Archived marks a logically removed row.
type Favorite struct {
	Entity
	UserID    uuid.UUID `json:"user_id"`
	ListingID uuid.UUID `json:"listing_id"`
	Archived  bool      `json:"archived"`
}
