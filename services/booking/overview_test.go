package booking

import (
	"context"
	"testing"

	"mezbaan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverviewGroupsByCategory(t *testing.T) {
	backend := newFakeBackend()
	backend.summaries = []models.BookingSummary{
		{BookingID: 1, Type: models.ServiceVenue, Status: models.StatusRequested},
		{BookingID: 2, Type: models.ServiceCatering, Status: models.StatusApproved},
		{BookingID: 3, Type: models.ServiceVenue, Status: models.StatusFulfilled},
	}
	svc := newTestService(backend)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	require.Len(t, overview.Groups[models.ServiceVenue], 2)
	assert.Equal(t, 1, overview.Groups[models.ServiceVenue][0].BookingID)
	assert.Equal(t, 3, overview.Groups[models.ServiceVenue][1].BookingID)
	require.Len(t, overview.Groups[models.ServiceCatering], 1)
	assert.Empty(t, overview.Groups[models.ServiceDecoration])
}

func TestOverviewPaging(t *testing.T) {
	overview := &Overview{Groups: map[models.ServiceType][]models.BookingSummary{
		models.ServiceVenue: {
			{BookingID: 1}, {BookingID: 2}, {BookingID: 3},
			{BookingID: 4}, {BookingID: 5},
		},
	}}

	assert.Equal(t, 2, overview.TotalPages(models.ServiceVenue))
	assert.Equal(t, 0, overview.TotalPages(models.ServiceCatering))

	first := overview.Page(models.ServiceVenue, 1)
	require.Len(t, first, BookingsPerPage)
	assert.Equal(t, 1, first[0].BookingID)

	second := overview.Page(models.ServiceVenue, 2)
	require.Len(t, second, 1)
	assert.Equal(t, 5, second[0].BookingID)

	assert.Nil(t, overview.Page(models.ServiceVenue, 3))
	assert.Nil(t, overview.Page(models.ServiceVenue, 0))
}

func TestCancelOnlyRequestedBookings(t *testing.T) {
	backend := newFakeBackend()
	svc := newTestService(backend)

	err := svc.Cancel(context.Background(), models.BookingSummary{
		BookingID: 7, Type: models.ServiceVenue, Status: models.StatusApproved,
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Empty(t, backend.deleted)

	err = svc.Cancel(context.Background(), models.BookingSummary{
		BookingID: 7, Type: models.ServiceVenue, Status: models.StatusRequested,
	})
	require.NoError(t, err)
	assert.Equal(t, []int{7}, backend.deleted)
}

func TestSubmitRatingResolvesServiceFromBooking(t *testing.T) {
	backend := newFakeBackend()
	backend.detail = &models.BookingDetail{
		Booking: models.Booking{ID: 11, Status: models.StatusFulfilled},
		Venue:   &models.Offering{ID: 5, Name: "Grand Marquee"},
	}
	svc := newTestService(backend)

	err := svc.SubmitRating(context.Background(), models.ServiceVenue, 11, 4, "Lovely lawn")
	require.NoError(t, err)

	require.Len(t, backend.ratings, 1)
	rating := backend.ratings[0]
	assert.Equal(t, 11, rating.BookingID)
	assert.Equal(t, 5, rating.ServiceID)
	assert.Equal(t, models.RatingTypeVenue, rating.ServiceType)
	assert.Equal(t, 4, rating.Rating)
	assert.Equal(t, "Lovely lawn", rating.Comments)
}

func TestSubmitRatingDecorationResolvesServiceFromForeignKey(t *testing.T) {
	// Decoration detail envelopes carry no embedded offering record, only the
	// foreign key on the booking row.
	backend := newFakeBackend()
	backend.detail = &models.BookingDetail{
		Booking:           models.Booking{ID: 31, Status: models.StatusFulfilled},
		DecorationBooking: &models.DecorationBooking{DecorationServiceID: 3},
		BookedAmenities: []models.BookedAmenity{
			{DecorationAmenityID: 1, Count: 2},
		},
	}
	svc := newTestService(backend)

	err := svc.SubmitRating(context.Background(), models.ServiceDecoration, 31, 5, "Beautiful stage")
	require.NoError(t, err)

	require.Len(t, backend.ratings, 1)
	rating := backend.ratings[0]
	assert.Equal(t, 31, rating.BookingID)
	assert.Equal(t, 3, rating.ServiceID)
	assert.Equal(t, models.RatingTypeDecoration, rating.ServiceType)
	assert.Equal(t, 5, rating.Rating)
}

func TestSubmitRatingRequiresFulfilledBooking(t *testing.T) {
	backend := newFakeBackend()
	backend.detail = &models.BookingDetail{
		Booking: models.Booking{ID: 11, Status: models.StatusRequested},
		Venue:   &models.Offering{ID: 5},
	}
	svc := newTestService(backend)

	err := svc.SubmitRating(context.Background(), models.ServiceVenue, 11, 4, "")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Empty(t, backend.ratings)
}

func TestSubmitRatingBounds(t *testing.T) {
	backend := newFakeBackend()
	svc := newTestService(backend)

	for _, rating := range []int{0, 6, -1} {
		err := svc.SubmitRating(context.Background(), models.ServiceVenue, 11, rating, "")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	}
	assert.Empty(t, backend.ratings)
}
