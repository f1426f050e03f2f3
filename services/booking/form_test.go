package booking

import (
	"context"
	"testing"
	"time"

	"mezbaan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func TestNewFormRequiresOffering(t *testing.T) {
	svc := newTestService(newFakeBackend())

	_, err := svc.NewForm(models.ServiceCatering, nil)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	_, err = svc.NewForm(models.ServiceType("limousine"), &models.Offering{ID: 1})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestCateringPackageAndItemsAreExclusive(t *testing.T) {
	svc := newTestService(newFakeBackend())
	form, err := svc.NewForm(models.ServiceCatering, cateringOffering())
	require.NoError(t, err)

	form.SetGuestCount(10)
	form.SelectPackage(9)
	assert.Equal(t, 2000.0, form.Bill())
	assert.Empty(t, form.SelectedItems())

	// Item selection is a no-op while a package is active.
	form.SelectLineItem(1)
	assert.Empty(t, form.SelectedItems())
	assert.Equal(t, 2000.0, form.Bill())

	// Re-selecting the package toggles it off.
	form.SelectPackage(9)
	assert.Zero(t, form.SelectedPackage())
	assert.Equal(t, 0.0, form.Bill())

	form.SelectLineItem(1)
	form.SelectLineItem(2)
	assert.Equal(t, []int{1, 2}, form.SelectedItems())
	assert.Equal(t, 800.0, form.Bill())

	// Selecting a package clears the items in the same transition.
	form.SelectPackage(9)
	assert.Empty(t, form.SelectedItems())
	assert.Equal(t, 2000.0, form.Bill())
}

func TestBillRecomputeIsIdempotent(t *testing.T) {
	svc := newTestService(newFakeBackend())
	form, err := svc.NewForm(models.ServiceCatering, cateringOffering())
	require.NoError(t, err)

	form.SelectLineItem(1)
	form.SetGuestCount(10)
	first := form.Bill()
	form.SetGuestCount(10)
	assert.Equal(t, first, form.Bill())
}

func TestVenueGuestCountClampsToCapacity(t *testing.T) {
	svc := newTestService(newFakeBackend())
	form, err := svc.NewForm(models.ServiceVenue, &models.Offering{
		ID: 5, Name: "Grand Marquee", Capacity: 500, PriceDay: 50000, PriceNight: 75000,
	})
	require.NoError(t, err)

	form.SetGuestCount(800)
	assert.Equal(t, 500, form.GuestCount())

	form.SetGuestCount(0)
	assert.Equal(t, 1, form.GuestCount())
}

func TestVenueRateSelectionDrivesBill(t *testing.T) {
	svc := newTestService(newFakeBackend())
	form, err := svc.NewForm(models.ServiceVenue, &models.Offering{
		ID: 5, Capacity: 500, PriceDay: 50000, PriceNight: 75000,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, form.Bill())
	form.SelectRate(RateNight)
	assert.Equal(t, 75000.0, form.Bill())
	form.SelectRate(RateDay)
	assert.Equal(t, 50000.0, form.Bill())
}

func TestDecorationQuantities(t *testing.T) {
	svc := newTestService(newFakeBackend())
	form, err := svc.NewForm(models.ServiceDecoration, decorationOffering())
	require.NoError(t, err)

	form.SelectLineItem(1)
	form.SetQuantity(1, 2)
	form.SelectLineItem(2)
	assert.Equal(t, 1300.0, form.Bill())

	// Counts floor at 1 and are only tracked for selected amenities.
	form.SetQuantity(1, -3)
	assert.Equal(t, 1, form.Quantity(1))
	form.SetQuantity(99, 5)
	assert.Zero(t, form.Quantity(99))

	form.DeselectLineItem(2)
	assert.Equal(t, 500.0, form.Bill())
}

func TestOtherServiceBillScalesWithCount(t *testing.T) {
	svc := newTestService(newFakeBackend())
	form, err := svc.NewForm(models.ServiceOther, &models.Offering{ID: 4, Cost: 1500, Duration: 3})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, form.Bill())
	form.SetServiceCount(3)
	assert.Equal(t, 4500.0, form.Bill())
	form.SetServiceCount(0)
	assert.Equal(t, 1, form.ServiceCount())
	assert.Equal(t, 1500.0, form.Bill())
}

func TestLoadFormCateringReconstructsSelection(t *testing.T) {
	backend := newFakeBackend()
	backend.addOffering(models.ServiceCatering, cateringOffering())
	backend.detail = &models.BookingDetail{
		Booking: models.Booking{
			ID:        21,
			Date:      "2031-05-01T00:00:00.000Z",
			StartTime: "19:00",
			Address:   "12 Shadman Road",
			Status:    models.StatusRequested,
		},
		CateringService: &models.Offering{ID: 7},
		CateringBooking: &models.CateringBooking{GuestCount: 10},
		BookedPackages:  []models.Package{{ID: 9, Name: "Wedding Special", Price: 200}},
	}
	svc := newTestService(backend)

	form, err := svc.LoadForm(context.Background(), models.ServiceCatering, 21)
	require.NoError(t, err)

	assert.True(t, form.EditMode())
	assert.Equal(t, PhaseReady, form.Phase())
	assert.Equal(t, "2031-05-01", form.Date())
	assert.Equal(t, 10, form.GuestCount())
	assert.Equal(t, 9, form.SelectedPackage())
	assert.Empty(t, form.SelectedItems())
	assert.Equal(t, 2000.0, form.Bill())

	payload, ok := form.Payload().(models.CateringBookingPayload)
	require.True(t, ok)
	assert.Nil(t, payload.CateringServiceID, "edit payloads must omit the offering key")
	assert.Equal(t, []int{9}, payload.PackageIDs)
}

func TestLoadFormVenueNormalizesWireTimes(t *testing.T) {
	backend := newFakeBackend()
	backend.detail = &models.BookingDetail{
		Booking: models.Booking{
			ID:         8,
			Date:       "2031-06-10T00:00:00.000Z",
			StartTime:  "02:30 pm",
			EndTime:    "11:00 pm",
			GuestCount: 350,
			Bill:       75000,
			Status:     models.StatusRequested,
		},
		Venue: &models.Offering{ID: 5, Capacity: 500, PriceDay: 50000, PriceNight: 75000},
	}
	svc := newTestService(backend)

	form, err := svc.LoadForm(context.Background(), models.ServiceVenue, 8)
	require.NoError(t, err)

	assert.Equal(t, "14:30", form.StartTime())
	assert.Equal(t, "23:00", form.EndTime())
	assert.Equal(t, RateNight, form.Rate())
	assert.Equal(t, 75000.0, form.Bill())

	payload, ok := form.Payload().(models.VenueBookingPayload)
	require.True(t, ok)
	assert.Equal(t, "02:30 pm", payload.StartTime)
	assert.Equal(t, "11:00 pm", payload.EndTime)
}

func TestLoadFormMissingBooking(t *testing.T) {
	svc := newTestService(newFakeBackend())

	_, err := svc.LoadForm(context.Background(), models.ServiceVenue, 404)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestSubmitCreateCarriesOfferingKeyAndSentinel(t *testing.T) {
	backend := newFakeBackend()
	svc := newTestService(backend)
	form, err := svc.NewForm(models.ServiceCatering, cateringOffering())
	require.NoError(t, err)

	form.SetDate(futureDate())
	form.SetStartTime("19:00")
	form.SetAddress("12 Shadman Road")
	form.SetGuestCount(10)
	form.SelectLineItem(1)

	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, PhaseSucceeded, form.Phase())
	require.Len(t, backend.created, 1)

	payload, ok := backend.created[0].Payload.(models.CateringBookingPayload)
	require.True(t, ok)
	require.NotNil(t, payload.CateringServiceID)
	assert.Equal(t, 7, *payload.CateringServiceID)
	assert.Equal(t, []int{1}, payload.MenuItemIDs)
	// No package selected: the documented packageIds fallback applies.
	assert.Equal(t, []int{1}, payload.PackageIDs)
	assert.Equal(t, 500.0, payload.Bill)
}

func TestSubmitBlockedByValidation(t *testing.T) {
	backend := newFakeBackend()
	svc := newTestService(backend)
	form, err := svc.NewForm(models.ServiceCatering, cateringOffering())
	require.NoError(t, err)

	err = form.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, PhaseReady, form.Phase())
	assert.Empty(t, backend.created)
}

func TestFailedSubmitReturnsToReadyWithStateIntact(t *testing.T) {
	backend := newFakeBackend()
	backend.createErr = NewRemoteError("caterer unavailable on that date")
	svc := newTestService(backend)
	form, err := svc.NewForm(models.ServiceCatering, cateringOffering())
	require.NoError(t, err)

	form.SetDate(futureDate())
	form.SetStartTime("19:00")
	form.SetAddress("12 Shadman Road")
	form.SetGuestCount(10)
	form.SelectPackage(9)

	err = form.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, IsRemoteFailure(err))
	assert.Equal(t, PhaseReady, form.Phase())
	assert.Equal(t, 9, form.SelectedPackage())
	assert.Equal(t, 2000.0, form.Bill())

	// The user can correct and resubmit.
	backend.createErr = nil
	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, PhaseSucceeded, form.Phase())
}
