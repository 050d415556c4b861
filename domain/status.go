package domain

import (
	"basecamp/errors"
	"fmt"
	"strings"
)

type TripStatus string

const (
	TripPlanned   TripStatus = "planned"
	TripUpcoming  TripStatus = "upcoming"
	TripActive    TripStatus = "active"
	TripCompleted TripStatus = "completed"
)

// ParseTripStatus accepts the canonical tokens plus the aliases older mobile
// clients still send. A blank value returns ok=false so the caller can pick
// the default.
func ParseTripStatus(raw string) (status TripStatus, ok bool, err error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch normalized {
	case "":
		return "", false, nil
	case "planned", "planning":
		return TripPlanned, true, nil
	case "upcoming":
		return TripUpcoming, true, nil
	case "active", "ongoing":
		return TripActive, true, nil
	case "completed", "complete":
		return TripCompleted, true, nil
	}
	return "", false, fmt.Errorf("%w: unsupported trip status %q", errors.ErrInvalidStatus, raw)
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// ParseRequestStatus is for callers that receive a request status from outside, such as a
// status filter. Services never parse one; they only write the constants above.
func ParseRequestStatus(raw string) (RequestStatus, error) {
	switch s := RequestStatus(raw); s {
	case RequestPending, RequestApproved, RequestRejected:
		return s, nil
	}
	return "", fmt.Errorf("%w: unsupported request status %q", errors.ErrInvalidStatus, raw)
}

// Role is the closed set of positions a user can hold on a trip.
type Role string

const (
	RoleOrganizer Role = "organizer"
	RoleMember    Role = "member"
)

// ParseRole is for callers that receive a role from outside, such as a roster filter.
// Roles in views come from ResolveRole, never from parsing.
func ParseRole(raw string) (Role, error) {
	switch r := Role(raw); r {
	case RoleOrganizer, RoleMember:
		return r, nil
	}
	return "", fmt.Errorf("%w: unsupported role %q", errors.ErrInvalidStatus, raw)
}

type ListingCondition string

const (
	ConditionNew     ListingCondition = "new"
	ConditionLikeNew ListingCondition = "like_new"
	ConditionGood    ListingCondition = "good"
	ConditionWorn    ListingCondition = "worn"
)

func ParseListingCondition(raw string) (ListingCondition, error) {
	switch c := ListingCondition(strings.ToLower(strings.TrimSpace(raw))); c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionWorn:
		return c, nil
	}
	return "", fmt.Errorf("%w: unsupported condition %q", errors.ErrInvalidStatus, raw)
}

type TradeOption string

const (
	TradeFaceToFace TradeOption = "face_to_face"
	TradeCourier    TradeOption = "courier"
	TradeHybrid     TradeOption = "hybrid"
)

func ParseTradeOption(raw string) (TradeOption, error) {
	switch o := TradeOption(strings.ToLower(strings.TrimSpace(raw))); o {
	case TradeFaceToFace, TradeCourier, TradeHybrid:
		return o, nil
	}
	return "", fmt.Errorf("%w: unsupported trade option %q", errors.ErrInvalidStatus, raw)
}
