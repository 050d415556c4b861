package repositories

import (
	"fmt"

	"github.com/google/uuid"
)

// Key layout. Unique keys double as storage-level uniqueness constraints:
//
//	trip:{trip}                          Trip
//	participant:{trip}:{user}            Participant (one per trip and user)
//	request:{request}                    JoinRequest
//	request_idx:{trip}:{applicant}       request id (one per trip and applicant)
//	trip_request:{trip}:{request}        empty, lists a trip's requests
//	trip_msg:{trip}:{seq}                TripMessage, seq zero padded to 20 digits
//	listing:{listing}                    Listing
//	thread:{thread}                      MessageThread
//	thread_idx:{listing}:{buyer}         thread id (one per listing and buyer)
//	thread_user:{user}:{thread}          empty, lists threads of a buyer or seller
//	thread_msg:{thread}:{seq}            Message
//	favorite:{user}:{listing}            Favorite (one per user and listing)
const (
	PrefixTrip          = "trip:"
	PrefixParticipant   = "participant:"
	PrefixRequest       = "request:"
	PrefixRequestIndex  = "request_idx:"
	PrefixTripRequest   = "trip_request:"
	PrefixTripMessage   = "trip_msg:"
	PrefixListing       = "listing:"
	PrefixThread        = "thread:"
	PrefixThreadIndex   = "thread_idx:"
	PrefixThreadUser    = "thread_user:"
	PrefixThreadMessage = "thread_msg:"
	PrefixFavorite      = "favorite:"
)

// Prefixes lists every namespace written by the store, in display order.
var Prefixes = []string{
	PrefixTrip, PrefixParticipant, PrefixRequest, PrefixRequestIndex, PrefixTripRequest,
	PrefixTripMessage, PrefixListing, PrefixThread, PrefixThreadIndex, PrefixThreadUser,
	PrefixThreadMessage, PrefixFavorite,
}

func tripKey(id uuid.UUID) string {
	return PrefixTrip + id.String()
}

func participantPrefix(tripID uuid.UUID) string {
	return PrefixParticipant + tripID.String() + ":"
}

func participantKey(tripID, userID uuid.UUID) string {
	return participantPrefix(tripID) + userID.String()
}

func requestKey(id uuid.UUID) string {
	return PrefixRequest + id.String()
}

func requestIndexKey(tripID, applicantID uuid.UUID) string {
	return PrefixRequestIndex + tripID.String() + ":" + applicantID.String()
}

func tripRequestPrefix(tripID uuid.UUID) string {
	return PrefixTripRequest + tripID.String() + ":"
}

func tripMessagePrefix(tripID uuid.UUID) string {
	return PrefixTripMessage + tripID.String() + ":"
}

func tripMessageKey(tripID uuid.UUID, seq uint64) string {
	return fmt.Sprintf("%s%020d", tripMessagePrefix(tripID), seq)
}

func listingKey(id uuid.UUID) string {
	return PrefixListing + id.String()
}

func threadKey(id uuid.UUID) string {
	return PrefixThread + id.String()
}

func threadIndexKey(listingID, buyerID uuid.UUID) string {
	return PrefixThreadIndex + listingID.String() + ":" + buyerID.String()
}

func threadUserPrefix(userID uuid.UUID) string {
	return PrefixThreadUser + userID.String() + ":"
}

func threadMessagePrefix(threadID uuid.UUID) string {
	return PrefixThreadMessage + threadID.String() + ":"
}

func threadMessageKey(threadID uuid.UUID, seq uint64) string {
	return fmt.Sprintf("%s%020d", threadMessagePrefix(threadID), seq)
}

func favoritePrefix(userID uuid.UUID) string {
	return PrefixFavorite + userID.String() + ":"
}

func favoriteKey(userID, listingID uuid.UUID) string {
	return favoritePrefix(userID) + listingID.String()
}
