package domain

import "github.com/google/uuid"

// IsOrganizer reports whether user organizes the trip.
func IsOrganizer(trip Trip, user uuid.UUID) bool {
	return trip.OrganizerID == user
}

// IsTripMember reports whether user may act inside the trip: either as its
// organizer or through an existing participant row. participant is the row
// found for (trip, user), nil when there is none.
func IsTripMember(trip Trip, participant *Participant, user uuid.UUID) bool {
	if IsOrganizer(trip, user) {
		return true
	}
	return participant != nil && participant.TripID == trip.ID && participant.UserID == user
}

// IsThreadParty reports whether user is the buyer or the seller of the thread.
func IsThreadParty(thread MessageThread, user uuid.UUID) bool {
	return thread.BuyerID == user || thread.SellerID == user
}

// ResolveRole returns the role displayed next to user on the trip.
// It is never used to authorize anything.
func ResolveRole(trip Trip, participant *Participant, user uuid.UUID) Role {
	if IsOrganizer(trip, user) {
		return RoleOrganizer
	}
	if participant != nil && participant.UserID == user && participant.Role != "" {
		return participant.Role
	}
	return RoleMember
}
