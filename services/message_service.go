//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
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
)

type IMessageService interface {
	ListThreads(user uuid.UUID) ([]domain.ThreadView, error)
	GetThread(user, threadID uuid.UUID) (domain.ThreadView, error)
	CreateThread(buyer uuid.UUID, cmd domain.CreateThreadCommand) (domain.ThreadView, error)
	SendMessage(sender, threadID uuid.UUID, cmd domain.SendMessageCommand) (domain.ThreadView, error)
}

// MessageService keeps one buyer-seller thread per listing and buyer.
type MessageService struct {
	store repositories.IStore
	log   *slog.Logger
	now   func() time.Time
}

func NewMessageService(store repositories.IStore, log *slog.Logger) *MessageService {
	return &MessageService{store: store, log: log, now: utcNow}
}

// ListThreads returns the threads of user, most recently active first.
func (s *MessageService) ListThreads(user uuid.UUID) ([]domain.ThreadView, error) {
	var views []domain.ThreadView
	err := s.store.View(func(tx *repositories.Tx) error {
		threads, err := tx.ListThreadsForUser(user)
		if err != nil {
			return err
		}
		views = make([]domain.ThreadView, 0, len(threads))
		for _, thread := range threads {
			view, err := buildThreadView(tx, thread, user)
			if err != nil {
				return err
			}
			views = append(views, view)
		}
		return nil
	})
	return views, err
}

// GetThread returns ErrNotFound both for a missing thread and for a thread
// the user is not part of.
func (s *MessageService) GetThread(user, threadID uuid.UUID) (domain.ThreadView, error) {
	var view domain.ThreadView
	err := s.store.View(func(tx *repositories.Tx) error {
		thread, err := visibleThread(tx, user, threadID)
		if err != nil {
			return err
		}
		view, err = buildThreadView(tx, thread, user)
		return err
	})
	return view, err
}

// CreateThread opens the buyer's thread on a listing, or reuses the existing
// one, and appends the first message.
func (s *MessageService) CreateThread(buyer uuid.UUID, cmd domain.CreateThreadCommand) (domain.ThreadView, error) {
	listingID, err := domain.ParseID(cmd.ListingID, "listing")
	if err != nil {
		return domain.ThreadView{}, err
	}
	if err = cmd.Validate(); err != nil {
		return domain.ThreadView{}, err
	}

	var threadID uuid.UUID
	var created bool
	err = s.store.Update(func(tx *repositories.Tx) error {
		created = false
		listing, err := tx.GetListing(listingID)
		if err != nil {
			return err
		}
		if listing.SellerID == buyer {
			return fmt.Errorf("%w: listing %s is yours", errors.ErrSelfMessage, listing.ID)
		}

		now := s.now()
		existing, err := tx.FindThread(listing.ID, buyer)
		if err != nil {
			return err
		}
		var thread domain.MessageThread
		if existing != nil {
			thread = *existing
		} else {
			thread = domain.MessageThread{
				Entity:    domain.NewEntity(now),
				ListingID: listing.ID,
				SellerID:  listing.SellerID,
				BuyerID:   buyer,
				Subject:   listing.Title,
			}
			if err = tx.CreateThread(thread); err != nil {
				return err
			}
			created = true
		}

		threadID = thread.ID
		_, err = appendMessage(tx, thread, buyer, cmd.Message, now)
		return err
	})
	if err != nil {
		return domain.ThreadView{}, err
	}
	s.log.Info("Thread message posted", "thread_id", threadID, "listing_id", listingID, "buyer_id", buyer, "created", created)
	// The view is read after commit so the favorite and listing reads stay
	// out of the write transaction's conflict set.
	return s.GetThread(buyer, threadID)
}

func (s *MessageService) SendMessage(sender, threadID uuid.UUID, cmd domain.SendMessageCommand) (domain.ThreadView, error) {
	if err := cmd.Validate(); err != nil {
		return domain.ThreadView{}, err
	}

	err := s.store.Update(func(tx *repositories.Tx) error {
		thread, err := visibleThread(tx, sender, threadID)
		if err != nil {
			return err
		}
		_, err = appendMessage(tx, thread, sender, cmd.Content, s.now())
		return err
	})
	if err != nil {
		return domain.ThreadView{}, err
	}
	s.log.Debug("Thread message sent", "thread_id", threadID, "sender_id", sender)
	return s.GetThread(sender, threadID)
}

func visibleThread(tx *repositories.Tx, user, threadID uuid.UUID) (domain.MessageThread, error) {
	thread, err := tx.GetThread(threadID)
	if err != nil {
		return domain.MessageThread{}, err
	}
	if !domain.IsThreadParty(thread, user) {
		return domain.MessageThread{}, fmt.Errorf("%w: thread %s", errors.ErrNotFound, threadID)
	}
	return thread, nil
}

// appendMessage stores the message and touches the thread so it sorts first
// in the participants' thread lists.
func appendMessage(tx *repositories.Tx, thread domain.MessageThread, sender uuid.UUID, content string, now time.Time) (domain.MessageThread, error) {
	message := domain.Message{
		Entity:   domain.NewEntity(now),
		ThreadID: thread.ID,
		SenderID: sender,
		Content:  strings.TrimSpace(content),
		SentAt:   now,
	}
	if err := tx.AppendMessage(message); err != nil {
		return thread, err
	}
	thread.Touch(now)
	return thread, tx.SaveThread(thread)
}

func buildThreadView(tx *repositories.Tx, thread domain.MessageThread, viewer uuid.UUID) (domain.ThreadView, error) {
	listing, err := tx.GetListing(thread.ListingID)
	if err != nil {
		return domain.ThreadView{}, err
	}
	listingView, err := buildListingView(tx, listing, viewer)
	if err != nil {
		return domain.ThreadView{}, err
	}
	messages, err := tx.ListMessages(thread.ID)
	if err != nil {
		return domain.ThreadView{}, err
	}
	return domain.ThreadView{
		MessageThread: thread,
		Listing:       listingView,
		Messages:      messages,
	}, nil
}
