package repositories

import (
	"basecamp/domain"
	"basecamp/errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestThreadRepository(t *testing.T) {
	now := clock()

	newThread := func(listingID, sellerID, buyerID uuid.UUID) domain.MessageThread {
		return domain.MessageThread{
			Entity:    domain.NewEntity(now()),
			ListingID: listingID,
			SellerID:  sellerID,
			BuyerID:   buyerID,
			Subject:   "Tent",
		}
	}

	t.Run("should keep one thread per listing and buyer", func(t *testing.T) {
		req := require.New(t)
		store := newTestStore(t)
		listingID, seller, buyer := uuid.New(), uuid.New(), uuid.New()
		thread := newThread(listingID, seller, buyer)

		req.NoError(store.Update(func(tx *Tx) error { return tx.CreateThread(thread) }))

		err := store.Update(func(tx *Tx) error { return tx.CreateThread(newThread(listingID, seller, buyer)) })
		req.ErrorIs(err, errors.ErrDuplicateThread)

		req.NoError(store.View(func(tx *Tx) error {
			found, err := tx.FindThread(listingID, buyer)
			req.NoError(err)
			req.NotNil(found)
			req.Equal(thread.ID, found.ID)

			none, err := tx.FindThread(listingID, uuid.New())
			req.NoError(err)
			req.Nil(none)
			return nil
		}))
	})

	t.Run("should list threads for both parties, most recent first", func(t *testing.T) {
		req := require.New(t)
		store := newTestStore(t)
		seller, buyer := uuid.New(), uuid.New()
		older := newThread(uuid.New(), seller, buyer)
		newer := newThread(uuid.New(), seller, buyer)

		req.NoError(store.Update(func(tx *Tx) error {
			if err := tx.CreateThread(older); err != nil {
				return err
			}
			return tx.CreateThread(newer)
		}))
		req.NoError(store.Update(func(tx *Tx) error {
			older.Touch(now())
			return tx.SaveThread(older)
		}))

		req.NoError(store.View(func(tx *Tx) error {
			for _, user := range []uuid.UUID{seller, buyer} {
				threads, err := tx.ListThreadsForUser(user)
				req.NoError(err)
				req.Len(threads, 2)
				req.Equal(older.ID, threads[0].ID)
				req.Equal(newer.ID, threads[1].ID)
			}
			threads, err := tx.ListThreadsForUser(uuid.New())
			req.NoError(err)
			req.Empty(threads)
			return nil
		}))
	})

	t.Run("should refuse to save a thread that was never created", func(t *testing.T) {
		req := require.New(t)
		store := newTestStore(t)
		err := store.Update(func(tx *Tx) error {
			return tx.SaveThread(newThread(uuid.New(), uuid.New(), uuid.New()))
		})
		req.ErrorIs(err, errors.ErrNotFound)
	})

	t.Run("should return messages in append order", func(t *testing.T) {
		req := require.New(t)
		store := newTestStore(t)
		thread := newThread(uuid.New(), uuid.New(), uuid.New())
		at := now()

		req.NoError(store.Update(func(tx *Tx) error {
			if err := tx.CreateThread(thread); err != nil {
				return err
			}
			for _, content := range []string{"first", "second", "third"} {
				err := tx.AppendMessage(domain.Message{
					Entity:   domain.NewEntity(at),
					ThreadID: thread.ID,
					SenderID: thread.BuyerID,
					Content:  content,
					SentAt:   at,
				})
				if err != nil {
					return err
				}
			}
			return nil
		}))

		req.NoError(store.View(func(tx *Tx) error {
			messages, err := tx.ListMessages(thread.ID)
			req.NoError(err)
			req.Len(messages, 3)
			req.Equal("first", messages[0].Content)
			req.Equal("third", messages[2].Content)
			return nil
		}))
	})
}
