package domain

import (
	"time"

	"github.com/google/uuid"
)

// MessageThread is a buyer-seller conversation about one listing.
// There is at most one thread per (listing, buyer); the seller derives from the listing.
type MessageThread struct {
	Entity
	ListingID uuid.UUID `json:"listing_id"`
	SellerID  uuid.UUID `json:"seller_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	Subject   string    `json:"subject"`
	Archived  bool      `json:"archived"`
}

// Message is an immutable entry of a thread.
type Message struct {
	Entity
	ThreadID uuid.UUID `json:"thread_id"`
	SenderID uuid.UUID `json:"sender_id"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sent_at"`
}
