package domain

import "github.com/google/uuid"

// Member is a user as shown on a trip, with the role resolved for display.
type Member struct {
	UserID uuid.UUID
	Role   Role
}

type TripMessageView struct {
	TripMessage
	SenderRole Role
}

// TripView is the trip aggregate returned by every trip operation.
type TripView struct {
	Trip
	Organizer Member
	// Participants holds every roster row in join order, organizer first.
	Participants    []Member
	PendingRequests []JoinRequest
	Messages        []TripMessageView
}

// HasParticipant reports whether user appears on the roster.
func (v TripView) HasParticipant(user uuid.UUID) bool {
	for _, m := range v.Participants {
		if m.UserID == user {
			return true
		}
	}
	return false
}

type ListingView struct {
	Listing
	Favorite bool
}

// ThreadView is a thread with its full message history in append order.
type ThreadView struct {
	MessageThread
	Listing  ListingView
	Messages []Message
}

type FavoriteView struct {
	Favorite
	Listing Listing
}
