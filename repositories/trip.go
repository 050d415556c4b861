package repositories

import (
	"basecamp/domain"
	"basecamp/errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

func (tx *Tx) GetTrip(id uuid.UUID) (domain.Trip, error) {
	var trip domain.Trip
	found, err := tx.load(tripKey(id), &trip)
	if err != nil {
		return domain.Trip{}, err
	}
	if !found {
		return domain.Trip{}, fmt.Errorf("%w: trip %s", errors.ErrNotFound, id)
	}
	return trip, nil
}

func (tx *Tx) SaveTrip(trip domain.Trip) error {
	return tx.store(tripKey(trip.ID), trip)
}

// ListTrips returns every trip ordered by start time, earliest first.
func (tx *Tx) ListTrips() ([]domain.Trip, error) {
	values, err := tx.scan(PrefixTrip)
	if err != nil {
		return nil, err
	}
	trips, err := decodeAll[domain.Trip](values)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].StartAt.Before(trips[j].StartAt)
	})
	return trips, nil
}

// GetParticipant returns the roster row of user on the trip, nil when there is none.
func (tx *Tx) GetParticipant(tripID, userID uuid.UUID) (*domain.Participant, error) {
	var participant domain.Participant
	found, err := tx.load(participantKey(tripID, userID), &participant)
	if err != nil || !found {
		return nil, err
	}
	return &participant, nil
}

// CreateParticipant inserts a roster row. The (trip, user) key is unique.
func (tx *Tx) CreateParticipant(participant domain.Participant) error {
	key := participantKey(participant.TripID, participant.UserID)
	exists, err := tx.exists(key)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: user %s on trip %s", errors.ErrDuplicateMember, participant.UserID, participant.TripID)
	}
	return tx.store(key, participant)
}

// ListParticipants returns the roster with the organizer first, then by join time.
func (tx *Tx) ListParticipants(tripID uuid.UUID) ([]domain.Participant, error) {
	values, err := tx.scan(participantPrefix(tripID))
	if err != nil {
		return nil, err
	}
	participants, err := decodeAll[domain.Participant](values)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(participants, func(i, j int) bool {
		a, b := participants[i], participants[j]
		if (a.Role == domain.RoleOrganizer) != (b.Role == domain.RoleOrganizer) {
			return a.Role == domain.RoleOrganizer
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return participants, nil
}

func (tx *Tx) GetJoinRequest(id uuid.UUID) (domain.JoinRequest, error) {
	var request domain.JoinRequest
	found, err := tx.load(requestKey(id), &request)
	if err != nil {
		return domain.JoinRequest{}, err
	}
	if !found {
		return domain.JoinRequest{}, fmt.Errorf("%w: join request %s", errors.ErrNotFound, id)
	}
	return request, nil
}

// FindJoinRequest returns the request of applicant for the trip, whatever its status.
func (tx *Tx) FindJoinRequest(tripID, applicantID uuid.UUID) (*domain.JoinRequest, error) {
	var requestID uuid.UUID
	found, err := tx.load(requestIndexKey(tripID, applicantID), &requestID)
	if err != nil || !found {
		return nil, err
	}
	request, err := tx.GetJoinRequest(requestID)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// CreateJoinRequest inserts a request. The (trip, applicant) key is unique.
func (tx *Tx) CreateJoinRequest(request domain.JoinRequest) error {
	indexKey := requestIndexKey(request.TripID, request.ApplicantID)
	exists, err := tx.exists(indexKey)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: applicant %s on trip %s", errors.ErrDuplicateRequest, request.ApplicantID, request.TripID)
	}
	if err = tx.store(indexKey, request.ID); err != nil {
		return err
	}
	if err = tx.txn.Set([]byte(tripRequestPrefix(request.TripID)+request.ID.String()), nil); err != nil {
		return err
	}
	return tx.store(requestKey(request.ID), request)
}

// UpdateJoinRequest overwrites an existing request.
func (tx *Tx) UpdateJoinRequest(request domain.JoinRequest) error {
	exists, err := tx.exists(requestKey(request.ID))
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: join request %s", errors.ErrNotFound, request.ID)
	}
	return tx.store(requestKey(request.ID), request)
}

// ListJoinRequests returns every request of the trip ordered by submission time.
func (tx *Tx) ListJoinRequests(tripID uuid.UUID) ([]domain.JoinRequest, error) {
	ids, err := tx.scanKeys(tripRequestPrefix(tripID))
	if err != nil {
		return nil, err
	}
	requests := make([]domain.JoinRequest, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("corrupted request index %q: %w", raw, err)
		}
		request, err := tx.GetJoinRequest(id)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.Before(requests[j].CreatedAt)
	})
	return requests, nil
}

// AppendTripMessage stores a chat message after every message already stored for the trip.
func (tx *Tx) AppendTripMessage(message domain.TripMessage) error {
	seq, err := tx.nextSequence()
	if err != nil {
		return fmt.Errorf("append trip message: %w", err)
	}
	return tx.store(tripMessageKey(message.TripID, seq), message)
}

// ListTripMessages returns the trip chat in append order.
func (tx *Tx) ListTripMessages(tripID uuid.UUID) ([]domain.TripMessage, error) {
	values, err := tx.scan(tripMessagePrefix(tripID))
	if err != nil {
		return nil, err
	}
	return decodeAll[domain.TripMessage](values)
}
