package booking

import (
	"context"
	"fmt"

	"mezbaan/models"

	"go.uber.org/zap"
)

// SubmitRating rates a fulfilled booking. The service id is resolved from the
// fetched booking detail for every category, so the rating always references
// the offering the booking was made against.
func (s *DefaultBookingService) SubmitRating(ctx context.Context, t models.ServiceType, bookingID, rating int, comments string) error {
	desc, ok := DescriptorFor(t)
	if !ok {
		return NewValidationError(fmt.Sprintf("unknown service type %q", t))
	}
	if rating < 1 || rating > 5 {
		return NewValidationError("rating must be between 1 and 5")
	}

	detail, err := s.Bookings.FetchBooking(ctx, t, bookingID)
	if err != nil {
		return err
	}
	if detail.Booking.Status != models.StatusFulfilled {
		return NewValidationError("only fulfilled bookings can be rated")
	}

	serviceID, ok := ratedServiceID(detail)
	if !ok {
		return NewNotFoundError("booking has no service attached")
	}

	req := models.RatingRequest{
		BookingID:   bookingID,
		ServiceID:   serviceID,
		ServiceType: desc.RatingType,
		Rating:      rating,
		Comments:    comments,
	}
	if err := s.Ratings.SubmitRating(ctx, req); err != nil {
		return err
	}

	s.logger().Info("rating submitted",
		zap.String("type", string(t)),
		zap.Int("bookingId", bookingID),
		zap.Int("rating", rating),
	)
	return nil
}

// ratedServiceID resolves the offering id a rating references. Decoration
// envelopes embed no offering record, only the foreign key on the booking row.
func ratedServiceID(detail *models.BookingDetail) (int, bool) {
	if off := detail.Offering(); off != nil {
		return off.ID, true
	}
	if detail.DecorationBooking != nil {
		return detail.DecorationBooking.DecorationServiceID, true
	}
	return 0, false
}
