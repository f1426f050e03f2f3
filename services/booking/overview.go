package booking

import (
	"context"
	"fmt"

	"mezbaan/models"

	"go.uber.org/zap"
)

// BookingsPerPage is the page size of the booking overview.
const BookingsPerPage = 4

// Overview is the authenticated user's bookings grouped by service category,
// in the order the backend returned them.
type Overview struct {
	Groups map[models.ServiceType][]models.BookingSummary
}

// Overview fetches and groups the user's bookings.
func (s *DefaultBookingService) Overview(ctx context.Context) (*Overview, error) {
	summaries, err := s.Bookings.FetchBookings(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[models.ServiceType][]models.BookingSummary)
	for _, summary := range summaries {
		groups[summary.Type] = append(groups[summary.Type], summary)
	}

	s.logger().Debug("fetched booking overview",
		zap.Int("total", len(summaries)),
		zap.Int("categories", len(groups)),
	)
	return &Overview{Groups: groups}, nil
}

// TotalPages returns how many pages a category spans.
func (o *Overview) TotalPages(t models.ServiceType) int {
	n := len(o.Groups[t])
	return (n + BookingsPerPage - 1) / BookingsPerPage
}

// Page returns one page of a category, 1-based. Out-of-range pages are empty.
func (o *Overview) Page(t models.ServiceType, page int) []models.BookingSummary {
	group := o.Groups[t]
	start := (page - 1) * BookingsPerPage
	if page < 1 || start >= len(group) {
		return nil
	}
	end := start + BookingsPerPage
	if end > len(group) {
		end = len(group)
	}
	return group[start:end]
}

// Cancel deletes a booking. Only bookings still in REQUESTED can be
// cancelled; everything past that is owned by the vendor side.
func (s *DefaultBookingService) Cancel(ctx context.Context, summary models.BookingSummary) error {
	if summary.Status != models.StatusRequested {
		return NewValidationError("only requested bookings can be deleted")
	}
	if _, ok := DescriptorFor(summary.Type); !ok {
		return NewValidationError(fmt.Sprintf("unknown service type %q", summary.Type))
	}

	if err := s.Bookings.DeleteBooking(ctx, summary.Type, summary.BookingID); err != nil {
		return err
	}

	s.logger().Info("booking cancelled",
		zap.String("type", string(summary.Type)),
		zap.Int("bookingId", summary.BookingID),
	)
	return nil
}
