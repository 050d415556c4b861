package server

import (
	"basecamp/domain"
	"time"

	"github.com/samber/lo"
)

type createTripRequest struct {
	Title       string     `json:"title"`
	Destination string     `json:"destination"`
	Description string     `json:"description"`
	StartAt     *time.Time `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
	Status      string     `json:"status"`
}

func (r createTripRequest) toCommand() domain.CreateTripCommand {
	return domain.CreateTripCommand{
		Title:       r.Title,
		Destination: r.Destination,
		Description: r.Description,
		StartAt:     lo.FromPtr(r.StartAt),
		EndAt:       lo.FromPtr(r.EndAt),
		Status:      r.Status,
	}
}

type joinTripRequest struct {
	Message string `json:"message"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

type createThreadRequest struct {
	ListingID string `json:"listing_id"`
	Message   string `json:"message"`
}

type publishListingRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Condition   string  `json:"condition"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	TradeOption string  `json:"trade_option"`
	ImageURL    string  `json:"image_url"`
}

func (r publishListingRequest) toCommand() domain.PublishListingCommand {
	return domain.PublishListingCommand{
		Title:       r.Title,
		Description: r.Description,
		Condition:   r.Condition,
		Price:       r.Price,
		Location:    r.Location,
		TradeOption: r.TradeOption,
		ImageURL:    r.ImageURL,
	}
}

type memberResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type joinRequestResponse struct {
	RequestID string         `json:"request_id"`
	Applicant memberResponse `json:"applicant"`
	Status    string         `json:"status"`
	Message   string         `json:"message"`
	CreatedAt time.Time      `json:"created_at"`
}

type tripMessageResponse struct {
	MessageID string         `json:"message_id"`
	Sender    memberResponse `json:"sender"`
	Content   string         `json:"content"`
	SentAt    time.Time      `json:"sent_at"`
}

type tripResponse struct {
	TripID          string                `json:"trip_id"`
	Title           string                `json:"title"`
	Destination     string                `json:"destination"`
	Description     string                `json:"description"`
	StartAt         time.Time             `json:"start_at"`
	EndAt           time.Time             `json:"end_at"`
	Status          string                `json:"status"`
	Organizer       memberResponse        `json:"organizer"`
	Participants    []memberResponse      `json:"participants"`
	PendingRequests []joinRequestResponse `json:"pending_requests"`
	Messages        []tripMessageResponse `json:"messages"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

func toMemberResponse(m domain.Member) memberResponse {
	return memberResponse{UserID: m.UserID.String(), Role: string(m.Role)}
}

func toTripResponse(v domain.TripView) tripResponse {
	return tripResponse{
		TripID:       v.ID.String(),
		Title:        v.Title,
		Destination:  v.Destination,
		Description:  v.Description,
		StartAt:      v.StartAt,
		EndAt:        v.EndAt,
		Status:       string(v.Status),
		Organizer:    toMemberResponse(v.Organizer),
		Participants: lo.Map(v.Participants, func(m domain.Member, _ int) memberResponse { return toMemberResponse(m) }),
		PendingRequests: lo.Map(v.PendingRequests, func(r domain.JoinRequest, _ int) joinRequestResponse {
			return joinRequestResponse{
				RequestID: r.ID.String(),
				Applicant: toMemberResponse(domain.Member{UserID: r.ApplicantID, Role: domain.RoleMember}),
				Status:    string(r.Status),
				Message:   r.Message,
				CreatedAt: r.CreatedAt,
			}
		}),
		Messages: lo.Map(v.Messages, func(m domain.TripMessageView, _ int) tripMessageResponse {
			return tripMessageResponse{
				MessageID: m.ID.String(),
				Sender:    toMemberResponse(domain.Member{UserID: m.SenderID, Role: m.SenderRole}),
				Content:   m.Content,
				SentAt:    m.SentAt,
			}
		}),
		UpdatedAt: v.UpdatedAt,
	}
}

type listingResponse struct {
	ListingID   string    `json:"listing_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Condition   string    `json:"condition"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	TradeOption string    `json:"trade_option"`
	IsFavorite  bool      `json:"is_favorite"`
	ImageURL    string    `json:"image_url,omitempty"`
	SellerID    string    `json:"seller_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func toListingResponse(v domain.ListingView) listingResponse {
	return listingResponse{
		ListingID:   v.ID.String(),
		Title:       v.Title,
		Description: v.Description,
		Condition:   string(v.Condition),
		Price:       v.Price,
		Location:    v.Location,
		TradeOption: string(v.TradeOption),
		IsFavorite:  v.Favorite,
		ImageURL:    v.ImageURL,
		SellerID:    v.SellerID.String(),
		CreatedAt:   v.CreatedAt,
	}
}

type messageResponse struct {
	MessageID string    `json:"message_id"`
	SenderID  string    `json:"sender_id"`
	Content   string    `json:"content"`
	SentAt    time.Time `json:"sent_at"`
}

type threadResponse struct {
	ThreadID    string            `json:"thread_id"`
	Subject     string            `json:"subject"`
	Listing     listingResponse   `json:"listing"`
	BuyerID     string            `json:"buyer_id"`
	SellerID    string            `json:"seller_id"`
	Messages    []messageResponse `json:"messages"`
	UnreadCount int               `json:"unread_count"`
	Archived    bool              `json:"archived"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Read receipts are not tracked, so unread_count stays 0.
func toThreadResponse(v domain.ThreadView) threadResponse {
	return threadResponse{
		ThreadID: v.ID.String(),
		Subject:  v.Subject,
		Listing:  toListingResponse(v.Listing),
		BuyerID:  v.BuyerID.String(),
		SellerID: v.SellerID.String(),
		Messages: lo.Map(v.Messages, func(m domain.Message, _ int) messageResponse {
			return messageResponse{
				MessageID: m.ID.String(),
				SenderID:  m.SenderID.String(),
				Content:   m.Content,
				SentAt:    m.SentAt,
			}
		}),
		Archived:  v.Archived,
		UpdatedAt: v.UpdatedAt,
	}
}

type favoriteResponse struct {
	FavoriteID string          `json:"favorite_id"`
	Listing    listingResponse `json:"listing"`
	CreatedAt  time.Time       `json:"created_at"`
}

func toFavoriteResponse(v domain.FavoriteView) favoriteResponse {
	return favoriteResponse{
		FavoriteID: v.ID.String(),
		Listing:    toListingResponse(domain.ListingView{Listing: v.Listing, Favorite: !v.Archived}),
		CreatedAt:  v.CreatedAt,
	}
}
