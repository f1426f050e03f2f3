package booking

import (
	"context"

	"mezbaan/models"

	"go.uber.org/zap"
)

// CatalogAPI fetches offering records from the remote catalog.
type CatalogAPI interface {
	FetchOffering(ctx context.Context, t models.ServiceType, id int) (*models.Offering, error)
}

// BookingAPI is the remote booking collaborator. Create and Update take one of
// the per-type payload structs from the models package.
type BookingAPI interface {
	FetchBooking(ctx context.Context, t models.ServiceType, id int) (*models.BookingDetail, error)
	CreateBooking(ctx context.Context, t models.ServiceType, payload any) error
	UpdateBooking(ctx context.Context, t models.ServiceType, id int, payload any) error
	DeleteBooking(ctx context.Context, t models.ServiceType, id int) error
	FetchBookings(ctx context.Context) ([]models.BookingSummary, error)
}

// RatingAPI submits ratings for fulfilled bookings.
type RatingAPI interface {
	SubmitRating(ctx context.Context, req models.RatingRequest) error
}

// CredentialProvider yields the bearer token for authorized calls. It is
// injected rather than read from ambient state so the core can be tested
// without a live session store.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// BookingService is the client-side booking core: form construction in create
// and edit mode, the authenticated user's booking overview, cancellation, and
// rating submission.
type BookingService interface {
	NewForm(t models.ServiceType, offering *models.Offering) (*Form, error)
	LoadForm(ctx context.Context, t models.ServiceType, bookingID int) (*Form, error)
	Overview(ctx context.Context) (*Overview, error)
	Cancel(ctx context.Context, summary models.BookingSummary) error
	SubmitRating(ctx context.Context, t models.ServiceType, bookingID, rating int, comments string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Catalog  CatalogAPI
	Bookings BookingAPI
	Ratings  RatingAPI
	Logger   *zap.Logger
}
