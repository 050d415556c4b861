package services

import (
	"basecamp/domain"
	"basecamp/repositories"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *repositories.Store {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	store, err := repositories.NewStore(db, logs.GetLoggerFromLevel(slog.LevelDebug), repositories.DefaultConflictTimeout)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
		_ = db.Close()
	})
	return store
}

// clock hands out strictly increasing instants and is safe for concurrent use.
func clock() func() time.Time {
	var mu sync.Mutex
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

type serviceSet struct {
	store     *repositories.Store
	trips     *TripService
	messages  *MessageService
	favorites *FavoriteService
	listings  *ListingService
}

func newServices(t *testing.T) serviceSet {
	store := newTestStore(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	now := clock()

	trips := NewTripService(store, log)
	trips.now = now
	messages := NewMessageService(store, log)
	messages.now = now
	favorites := NewFavoriteService(store, log)
	favorites.now = now
	listings := NewListingService(store, log)
	listings.now = now
	return serviceSet{store: store, trips: trips, messages: messages, favorites: favorites, listings: listings}
}

func tripCommand(title string) domain.CreateTripCommand {
	start := time.Date(2026, 7, 10, 6, 0, 0, 0, time.UTC)
	return domain.CreateTripCommand{
		Title:       title,
		Destination: "Chamonix",
		Description: "Glacier walk",
		StartAt:     start,
		EndAt:       start.AddDate(0, 0, 2),
	}
}

func publish(t *testing.T, s serviceSet, seller uuid.UUID, title string) domain.ListingView {
	t.Helper()
	listing, err := s.listings.Publish(seller, domain.PublishListingCommand{
		Title:       title,
		Description: "Barely used",
		Condition:   "like_new",
		Price:       80,
		Location:    "Lyon",
		TradeOption: "courier",
	})
	require.NoError(t, err)
	return listing
}

// runConcurrently starts n calls of fn at once and returns their errors.
func runConcurrently(n int, fn func() error) []error {
	var wg sync.WaitGroup
	start := make(chan struct{})
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = fn()
		}(i)
	}
	close(start)
	wg.Wait()
	return errs
}
