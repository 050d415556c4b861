package repositories

import (
	"basecamp/domain"
	"basecamp/errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

func (tx *Tx) GetThread(id uuid.UUID) (domain.MessageThread, error) {
	var thread domain.MessageThread
	found, err := tx.load(threadKey(id), &thread)
	if err != nil {
		return domain.MessageThread{}, err
	}
	if !found {
		return domain.MessageThread{}, fmt.Errorf("%w: thread %s", errors.ErrNotFound, id)
	}
	return thread, nil
}

// FindThread returns the thread the buyer opened on the listing, nil when there is none.
func (tx *Tx) FindThread(listingID, buyerID uuid.UUID) (*domain.MessageThread, error) {
	var threadID uuid.UUID
	found, err := tx.load(threadIndexKey(listingID, buyerID), &threadID)
	if err != nil || !found {
		return nil, err
	}
	thread, err := tx.GetThread(threadID)
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

// CreateThread inserts a thread. The (listing, buyer) key is unique.
func (tx *Tx) CreateThread(thread domain.MessageThread) error {
	indexKey := threadIndexKey(thread.ListingID, thread.BuyerID)
	exists, err := tx.exists(indexKey)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: buyer %s on listing %s", errors.ErrDuplicateThread, thread.BuyerID, thread.ListingID)
	}
	if err = tx.store(indexKey, thread.ID); err != nil {
		return err
	}
	for _, user := range []uuid.UUID{thread.BuyerID, thread.SellerID} {
		if err = tx.txn.Set([]byte(threadUserPrefix(user)+thread.ID.String()), nil); err != nil {
			return err
		}
	}
	return tx.store(threadKey(thread.ID), thread)
}

// SaveThread overwrites an existing thread, typically after a touch.
func (tx *Tx) SaveThread(thread domain.MessageThread) error {
	exists, err := tx.exists(threadKey(thread.ID))
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: thread %s", errors.ErrNotFound, thread.ID)
	}
	return tx.store(threadKey(thread.ID), thread)
}

// ListThreadsForUser returns the threads where user is buyer or seller,
// most recently active first.
func (tx *Tx) ListThreadsForUser(userID uuid.UUID) ([]domain.MessageThread, error) {
	ids, err := tx.scanKeys(threadUserPrefix(userID))
	if err != nil {
		return nil, err
	}
	threads := make([]domain.MessageThread, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("corrupted thread index %q: %w", raw, err)
		}
		thread, err := tx.GetThread(id)
		if err != nil {
			return nil, err
		}
		threads = append(threads, thread)
	}
	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].UpdatedAt.After(threads[j].UpdatedAt)
	})
	return threads, nil
}

// AppendMessage stores a message after every message already stored for the thread.
func (tx *Tx) AppendMessage(message domain.Message) error {
	seq, err := tx.nextSequence()
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return tx.store(threadMessageKey(message.ThreadID, seq), message)
}

// ListMessages returns the thread history in append order.
func (tx *Tx) ListMessages(threadID uuid.UUID) ([]domain.Message, error) {
	values, err := tx.scan(threadMessagePrefix(threadID))
	if err != nil {
		return nil, err
	}
	return decodeAll[domain.Message](values)
}
