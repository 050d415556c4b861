//go:generate go run go.uber.org/mock/mockgen -source=trip_service.go -destination=../mocks/mock_trip_service.go -package=mocks
package services

import (
	"basecamp/domain"
	"basecamp/errors"
	"basecamp/repositories"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ITripService interface {
	CreateTrip(organizer uuid.UUID, cmd domain.CreateTripCommand) (domain.TripView, error)
	ListTrips() ([]domain.TripView, error)
	GetTrip(tripID uuid.UUID) (domain.TripView, error)
	RequestToJoin(applicant, tripID uuid.UUID, cmd domain.JoinTripCommand) (domain.TripView, error)
	ApproveRequest(organizer, tripID, requestID uuid.UUID) (domain.TripView, error)
	SendTripMessage(sender, tripID uuid.UUID, cmd domain.SendMessageCommand) (domain.TripView, error)
}

// TripService owns the trip roster, the join-request workflow and the trip chat.
type TripService struct {
	store repositories.IStore
	log   *slog.Logger
	now   func() time.Time
}

func NewTripService(store repositories.IStore, log *slog.Logger) *TripService {
	return &TripService{store: store, log: log, now: utcNow}
}

// CreateTrip persists the trip and enrolls the organizer as its first participant.
func (s *TripService) CreateTrip(organizer uuid.UUID, cmd domain.CreateTripCommand) (domain.TripView, error) {
	if err := cmd.Validate(); err != nil {
		return domain.TripView{}, err
	}
	status, ok, err := domain.ParseTripStatus(cmd.Status)
	if err != nil {
		return domain.TripView{}, err
	}
	if !ok {
		status = domain.TripPlanned
	}

	now := s.now()
	trip := domain.Trip{
		Entity:      domain.NewEntity(now),
		Title:       cmd.Title,
		Destination: cmd.Destination,
		Description: cmd.Description,
		StartAt:     cmd.StartAt.UTC(),
		EndAt:       cmd.EndAt.UTC(),
		Status:      status,
		OrganizerID: organizer,
	}

	var view domain.TripView
	err = s.store.Update(func(tx *repositories.Tx) error {
		if err := tx.SaveTrip(trip); err != nil {
			return err
		}
		organizerRow := domain.NewParticipant(now, trip.ID, organizer, domain.RoleOrganizer)
		if err := tx.CreateParticipant(organizerRow); err != nil {
			return err
		}
		view, err = buildTripView(tx, trip)
		return err
	})
	if err != nil {
		return domain.TripView{}, err
	}
	s.log.Info("Trip created", "trip_id", trip.ID, "organizer_id", organizer, "status", status)
	return view, nil
}

func (s *TripService) ListTrips() ([]domain.TripView, error) {
	var views []domain.TripView
	err := s.store.View(func(tx *repositories.Tx) error {
		trips, err := tx.ListTrips()
		if err != nil {
			return err
		}
		views = make([]domain.TripView, 0, len(trips))
		for _, trip := range trips {
			view, err := buildTripView(tx, trip)
			if err != nil {
				return err
			}
			views = append(views, view)
		}
		return nil
	})
	return views, err
}

func (s *TripService) GetTrip(tripID uuid.UUID) (domain.TripView, error) {
	var view domain.TripView
	err := s.store.View(func(tx *repositories.Tx) error {
		trip, err := tx.GetTrip(tripID)
		if err != nil {
			return err
		}
		view, err = buildTripView(tx, trip)
		return err
	})
	return view, err
}

// RequestToJoin files a pending join request. Any earlier request of the same
// applicant, whatever its status, blocks a new one.
func (s *TripService) RequestToJoin(applicant, tripID uuid.UUID, cmd domain.JoinTripCommand) (domain.TripView, error) {
	if err := cmd.Validate(); err != nil {
		return domain.TripView{}, err
	}

	var view domain.TripView
	var requestID uuid.UUID
	err := s.store.Update(func(tx *repositories.Tx) error {
		trip, err := tx.GetTrip(tripID)
		if err != nil {
			return err
		}
		participant, err := tx.GetParticipant(trip.ID, applicant)
		if err != nil {
			return err
		}
		if domain.IsTripMember(trip, participant, applicant) {
			return fmt.Errorf("%w: user %s on trip %s", errors.ErrAlreadyJoined, applicant, trip.ID)
		}
		existing, err := tx.FindJoinRequest(trip.ID, applicant)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: request %s is %s", errors.ErrDuplicateRequest, existing.ID, existing.Status)
		}

		now := s.now()
		request := domain.JoinRequest{
			Entity:      domain.NewEntity(now),
			TripID:      trip.ID,
			ApplicantID: applicant,
			Status:      domain.RequestPending,
			Message:     strings.TrimSpace(cmd.Message),
		}
		if err = tx.CreateJoinRequest(request); err != nil {
			return err
		}
		if trip, err = touchTrip(tx, trip, now); err != nil {
			return err
		}
		requestID = request.ID
		view, err = buildTripView(tx, trip)
		return err
	})
	if err != nil {
		return domain.TripView{}, err
	}
	s.log.Info("Join request submitted", "trip_id", tripID, "applicant_id", applicant, "request_id", requestID)
	return view, nil
}

// ApproveRequest moves a pending request to approved and enrolls the applicant as a member.
// Only the organizer may approve; anyone else gets ErrForbidden even when the trip exists.
func (s *TripService) ApproveRequest(organizer, tripID, requestID uuid.UUID) (domain.TripView, error) {
	var view domain.TripView
	var applicant uuid.UUID
	err := s.store.Update(func(tx *repositories.Tx) error {
		trip, err := tx.GetTrip(tripID)
		if errors.Is(err, errors.ErrNotFound) || (err == nil && !domain.IsOrganizer(trip, organizer)) {
			return fmt.Errorf("%w: only the organizer can approve requests", errors.ErrForbidden)
		}
		if err != nil {
			return err
		}
		request, err := tx.GetJoinRequest(requestID)
		if err != nil {
			return err
		}
		if request.TripID != trip.ID {
			return fmt.Errorf("%w: request %s belongs to another trip", errors.ErrForbidden, request.ID)
		}
		if !request.IsPending() {
			return fmt.Errorf("%w: request %s is %s", errors.ErrAlreadyProcessed, request.ID, request.Status)
		}

		now := s.now()
		request.Status = domain.RequestApproved
		request.Touch(now)
		if err = tx.UpdateJoinRequest(request); err != nil {
			return err
		}
		participant, err := tx.GetParticipant(trip.ID, request.ApplicantID)
		if err != nil {
			return err
		}
		if participant == nil {
			member := domain.NewParticipant(now, trip.ID, request.ApplicantID, domain.RoleMember)
			if err = tx.CreateParticipant(member); err != nil {
				return err
			}
		}
		if trip, err = touchTrip(tx, trip, now); err != nil {
			return err
		}
		applicant = request.ApplicantID
		view, err = buildTripView(tx, trip)
		return err
	})
	if err != nil {
		return domain.TripView{}, err
	}
	s.log.Info("Join request approved", "trip_id", tripID, "request_id", requestID, "applicant_id", applicant)
	return view, nil
}

// SendTripMessage appends a message to the trip chat. Only the organizer and
// participants may post.
func (s *TripService) SendTripMessage(sender, tripID uuid.UUID, cmd domain.SendMessageCommand) (domain.TripView, error) {
	if err := cmd.Validate(); err != nil {
		return domain.TripView{}, err
	}

	var view domain.TripView
	err := s.store.Update(func(tx *repositories.Tx) error {
		trip, err := tx.GetTrip(tripID)
		if err != nil {
			return err
		}
		participant, err := tx.GetParticipant(trip.ID, sender)
		if err != nil {
			return err
		}
		if !domain.IsTripMember(trip, participant, sender) {
			return fmt.Errorf("%w: user %s is not part of trip %s", errors.ErrForbidden, sender, trip.ID)
		}

		now := s.now()
		message := domain.TripMessage{
			Entity:   domain.NewEntity(now),
			TripID:   trip.ID,
			SenderID: sender,
			Content:  strings.TrimSpace(cmd.Content),
			SentAt:   now,
		}
		if err = tx.AppendTripMessage(message); err != nil {
			return err
		}
		if trip, err = touchTrip(tx, trip, now); err != nil {
			return err
		}
		view, err = buildTripView(tx, trip)
		return err
	})
	if err != nil {
		return domain.TripView{}, err
	}
	s.log.Debug("Trip message sent", "trip_id", tripID, "sender_id", sender)
	return view, nil
}

// touchTrip refreshes the trip's last-modified time. Writing the trip key also
// serializes concurrent mutations of one trip, so its chat is stored in commit order.
func touchTrip(tx *repositories.Tx, trip domain.Trip, now time.Time) (domain.Trip, error) {
	trip.Touch(now)
	return trip, tx.SaveTrip(trip)
}

func buildTripView(tx *repositories.Tx, trip domain.Trip) (domain.TripView, error) {
	participants, err := tx.ListParticipants(trip.ID)
	if err != nil {
		return domain.TripView{}, err
	}
	requests, err := tx.ListJoinRequests(trip.ID)
	if err != nil {
		return domain.TripView{}, err
	}
	messages, err := tx.ListTripMessages(trip.ID)
	if err != nil {
		return domain.TripView{}, err
	}

	roster := lo.KeyBy(participants, func(p domain.Participant) uuid.UUID {
		return p.UserID
	})
	roleOf := func(user uuid.UUID) domain.Role {
		if p, ok := roster[user]; ok {
			return domain.ResolveRole(trip, &p, user)
		}
		return domain.ResolveRole(trip, nil, user)
	}

	return domain.TripView{
		Trip:      trip,
		Organizer: domain.Member{UserID: trip.OrganizerID, Role: domain.RoleOrganizer},
		Participants: lo.Map(participants, func(p domain.Participant, _ int) domain.Member {
			return domain.Member{UserID: p.UserID, Role: roleOf(p.UserID)}
		}),
		PendingRequests: lo.Filter(requests, func(r domain.JoinRequest, _ int) bool {
			return r.IsPending()
		}),
		Messages: lo.Map(messages, func(m domain.TripMessage, _ int) domain.TripMessageView {
			return domain.TripMessageView{TripMessage: m, SenderRole: roleOf(m.SenderID)}
		}),
	}, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
