package server

import (
	"basecamp/domain"
	"basecamp/errors"
	"basecamp/mocks"
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validToken = "valid-token"

type fixture struct {
	router        *gin.Engine
	authenticator *mocks.MockAuthenticator
	trips         *mocks.MockITripService
	messages      *mocks.MockIMessageService
	favorites     *mocks.MockIFavoriteService
	listings      *mocks.MockIListingService
	user          uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithLogger(t, logs.GetLoggerFromLevel(slog.LevelDebug))
}

func newFixtureWithLogger(t *testing.T, log *slog.Logger) *fixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	f := &fixture{
		authenticator: mocks.NewMockAuthenticator(ctrl),
		trips:         mocks.NewMockITripService(ctrl),
		messages:      mocks.NewMockIMessageService(ctrl),
		favorites:     mocks.NewMockIFavoriteService(ctrl),
		listings:      mocks.NewMockIListingService(ctrl),
		user:          uuid.New(),
	}
	f.authenticator.EXPECT().Authenticate(validToken).Return(f.user, nil).AnyTimes()
	f.router = NewRouter(log, f.authenticator, Services{
		Trips:     f.trips,
		Messages:  f.messages,
		Favorites: f.favorites,
		Listings:  f.listings,
	}, []string{"*"})
	return f
}

func (f *fixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&payload).Encode(body)
	}
	r := httptest.NewRequest(method, path, &payload)
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", "Bearer "+validToken)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, r)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	var body errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func sampleTrip(organizer uuid.UUID) domain.TripView {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	trip := domain.Trip{
		Entity:      domain.NewEntity(now),
		Title:       "Mont Blanc",
		Destination: "Chamonix",
		Description: "Three days on the ridge",
		StartAt:     now.AddDate(0, 1, 0),
		EndAt:       now.AddDate(0, 1, 3),
		Status:      domain.TripPlanned,
		OrganizerID: organizer,
	}
	owner := domain.Member{UserID: organizer, Role: domain.RoleOrganizer}
	return domain.TripView{Trip: trip, Organizer: owner, Participants: []domain.Member{owner}}
}

func TestRouter_Authentication(t *testing.T) {
	t.Run("should answer the health check without a token", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		req.Equal(http.StatusOK, w.Code)
	})

	t.Run("should reject a request without a bearer token", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/trips", nil))

		req.Equal(http.StatusUnauthorized, w.Code)
		req.Equal("unauthenticated", decodeError(t, w).Error)
	})

	t.Run("should reject a token the authenticator refuses", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		f.authenticator.EXPECT().Authenticate("forged").
			Return(uuid.Nil, fmt.Errorf("%w: bad signature", errors.ErrUnauthenticated))

		r := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
		r.Header.Set("Authorization", "Bearer forged")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, r)

		req.Equal(http.StatusUnauthorized, w.Code)
	})
}

func TestRouter_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{errors.ErrNotFound, http.StatusNotFound, "not_found"},
		{errors.ErrForbidden, http.StatusForbidden, "forbidden"},
		{errors.ErrInvalidStatus, http.StatusUnprocessableEntity, "invalid_status"},
		{errors.ErrAlreadyJoined, http.StatusConflict, "already_joined"},
		{errors.ErrDuplicateRequest, http.StatusConflict, "duplicate_request"},
		{errors.ErrAlreadyProcessed, http.StatusConflict, "already_processed"},
		{errors.ErrSelfMessage, http.StatusUnprocessableEntity, "self_message"},
		{errors.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{fmt.Errorf("disk on fire"), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		t.Run("should map "+tc.code, func(t *testing.T) {
			req := require.New(t)
			f := newFixture(t)
			tripID := uuid.New()
			f.trips.EXPECT().GetTrip(tripID).Return(domain.TripView{}, fmt.Errorf("get trip: %w", tc.err))

			w := f.do(http.MethodGet, "/api/trips/"+tripID.String(), nil)

			req.Equal(tc.status, w.Code)
			body := decodeError(t, w)
			req.Equal(tc.code, body.Error)
			req.Equal(tc.status, body.Status)
		})
	}

	t.Run("should hide the cause of an internal error", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		f.trips.EXPECT().ListTrips().Return(nil, fmt.Errorf("badger: value log corrupted"))

		w := f.do(http.MethodGet, "/api/trips", nil)

		req.Equal(http.StatusInternalServerError, w.Code)
		req.NotContains(w.Body.String(), "badger")
	})

	t.Run("should log the cause of an internal error with its handler", func(t *testing.T) {
		req := require.New(t)
		var output bytes.Buffer
		f := newFixtureWithLogger(t, slog.New(slog.NewJSONHandler(&output, nil)))
		f.trips.EXPECT().ListTrips().Return(nil, fmt.Errorf("badger: value log corrupted"))
		tripID := uuid.New()
		f.trips.EXPECT().GetTrip(tripID).Return(domain.TripView{}, errors.ErrNotFound)

		w := f.do(http.MethodGet, "/api/trips", nil)
		req.Equal(http.StatusInternalServerError, w.Code)
		req.Contains(output.String(), `"msg":"Handler failed"`)
		req.Contains(output.String(), "ListTrips")
		req.Contains(output.String(), "value log corrupted")

		output.Reset()
		w = f.do(http.MethodGet, "/api/trips/"+tripID.String(), nil)
		req.Equal(http.StatusNotFound, w.Code)
		req.NotContains(output.String(), "Handler failed")
	})

	t.Run("should reject a malformed path id before reaching the service", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		w := f.do(http.MethodGet, "/api/trips/not-a-uuid", nil)

		req.Equal(http.StatusUnprocessableEntity, w.Code)
		req.Equal("invalid_reference", decodeError(t, w).Error)
	})

	t.Run("should reject a body that is not json", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		r := httptest.NewRequest(http.MethodPost, "/api/trips", bytes.NewBufferString("{title"))
		r.Header.Set("Authorization", "Bearer "+validToken)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, r)

		req.Equal(http.StatusBadRequest, w.Code)
	})
}

func TestRouter_Trips(t *testing.T) {
	t.Run("should create a trip for the caller", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
		view := sampleTrip(f.user)

		f.trips.EXPECT().
			CreateTrip(f.user, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, cmd domain.CreateTripCommand) (domain.TripView, error) {
				req.Equal("Mont Blanc", cmd.Title)
				req.True(cmd.StartAt.Equal(start))
				req.Equal("planning", cmd.Status)
				return view, nil
			})

		w := f.do(http.MethodPost, "/api/trips", gin.H{
			"title":       "Mont Blanc",
			"destination": "Chamonix",
			"description": "Three days on the ridge",
			"start_at":    start,
			"end_at":      start.AddDate(0, 0, 3),
			"status":      "planning",
		})

		req.Equal(http.StatusCreated, w.Code)
		var body tripResponse
		req.NoError(json.Unmarshal(w.Body.Bytes(), &body))
		req.Equal(view.ID.String(), body.TripID)
		req.Equal(string(domain.TripPlanned), body.Status)
		req.Equal(f.user.String(), body.Organizer.UserID)
		req.Len(body.Participants, 1)
	})

	t.Run("should submit a join request without a body", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		tripID := uuid.New()

		f.trips.EXPECT().
			RequestToJoin(f.user, tripID, domain.JoinTripCommand{}).
			Return(sampleTrip(uuid.New()), nil)

		w := f.do(http.MethodPost, "/api/trips/"+tripID.String()+"/requests", nil)

		req.Equal(http.StatusCreated, w.Code)
	})

	t.Run("should approve a request with both path ids", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		tripID, requestID := uuid.New(), uuid.New()

		f.trips.EXPECT().ApproveRequest(f.user, tripID, requestID).Return(sampleTrip(f.user), nil)

		w := f.do(http.MethodPost, fmt.Sprintf("/api/trips/%s/requests/%s/approve", tripID, requestID), nil)

		req.Equal(http.StatusOK, w.Code)
	})

	t.Run("should pass the trip message content through", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		tripID := uuid.New()

		f.trips.EXPECT().
			SendTripMessage(f.user, tripID, domain.SendMessageCommand{Content: "see you at 6"}).
			Return(sampleTrip(f.user), nil)

		w := f.do(http.MethodPost, "/api/trips/"+tripID.String()+"/messages", gin.H{"content": "see you at 6"})

		req.Equal(http.StatusCreated, w.Code)
	})
}

func TestRouter_MessagesAndFavorites(t *testing.T) {
	t.Run("should open a thread with the listing id from the body", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		listingID := uuid.New()
		thread := domain.ThreadView{
			MessageThread: domain.MessageThread{
				Entity:    domain.NewEntity(time.Now().UTC()),
				ListingID: listingID,
				SellerID:  uuid.New(),
				BuyerID:   f.user,
				Subject:   "Tent",
			},
		}

		f.messages.EXPECT().
			CreateThread(f.user, domain.CreateThreadCommand{ListingID: listingID.String(), Message: "still available?"}).
			Return(thread, nil)

		w := f.do(http.MethodPost, "/api/messages", gin.H{"listing_id": listingID.String(), "message": "still available?"})

		req.Equal(http.StatusCreated, w.Code)
		var body threadResponse
		req.NoError(json.Unmarshal(w.Body.Bytes(), &body))
		req.Equal(thread.ID.String(), body.ThreadID)
		req.Equal(f.user.String(), body.BuyerID)
		req.Zero(body.UnreadCount)
	})

	t.Run("should answer 404 for a thread the caller cannot see", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		threadID := uuid.New()

		f.messages.EXPECT().GetThread(f.user, threadID).Return(domain.ThreadView{}, errors.ErrNotFound)

		w := f.do(http.MethodGet, "/api/messages/"+threadID.String(), nil)

		req.Equal(http.StatusNotFound, w.Code)
	})

	t.Run("should answer 204 when removing a favorite", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		listingID := uuid.New()

		f.favorites.EXPECT().Remove(f.user, listingID).Return(nil)

		w := f.do(http.MethodDelete, "/api/favorites/"+listingID.String(), nil)

		req.Equal(http.StatusNoContent, w.Code)
		req.Empty(w.Body.Bytes())
	})

	t.Run("should mark the listing of an active favorite", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		listingID := uuid.New()
		favorite := domain.FavoriteView{
			Favorite: domain.Favorite{Entity: domain.NewEntity(time.Now().UTC()), UserID: f.user, ListingID: listingID},
			Listing:  domain.Listing{Entity: domain.Entity{ID: listingID}, Title: "Stove"},
		}

		f.favorites.EXPECT().Add(f.user, listingID).Return(favorite, nil)

		w := f.do(http.MethodPost, "/api/favorites/"+listingID.String(), nil)

		req.Equal(http.StatusOK, w.Code)
		var body favoriteResponse
		req.NoError(json.Unmarshal(w.Body.Bytes(), &body))
		req.True(body.Listing.IsFavorite)
		req.Equal(listingID.String(), body.Listing.ListingID)
	})

	t.Run("should list listings for the caller", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		f.listings.EXPECT().ListListings(f.user).Return([]domain.ListingView{
			{Listing: domain.Listing{Entity: domain.NewEntity(time.Now().UTC()), Title: "Rope"}, Favorite: true},
		}, nil)

		w := f.do(http.MethodGet, "/api/listings", nil)

		req.Equal(http.StatusOK, w.Code)
		var body []listingResponse
		req.NoError(json.Unmarshal(w.Body.Bytes(), &body))
		req.Len(body, 1)
		req.True(body[0].IsFavorite)
	})
}
