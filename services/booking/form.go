package booking

import (
	"context"
	"fmt"
	"strings"

	"mezbaan/models"

	"go.uber.org/zap"
)

// Phase tracks where a form is in its lifecycle. Mutations are only possible
// once the form is Ready: construction does not return until the edit-mode
// fetch has completed or failed.
type Phase int

const (
	PhaseFetching Phase = iota
	PhaseReady
	PhaseSubmitting
	PhaseSucceeded
)

// RateChoice is the venue day/night rate selection.
type RateChoice string

const (
	RateNone  RateChoice = ""
	RateDay   RateChoice = "day"
	RateNight RateChoice = "night"
)

// Form holds the in-progress selection state for one booking and derives the
// bill from it. The bill is never entered by hand: every mutation recomputes
// it synchronously from the current selection and the offering's price model.
type Form struct {
	desc     Descriptor
	offering *models.Offering

	bookingID int
	editMode  bool
	phase     Phase

	selectedItems   []int       // catering menu item ids, in selection order
	selectedPackage int         // catering package id, 0 = none
	amenityCounts   map[int]int // decoration amenity id -> count
	rateChoice      RateChoice  // venue day/night pick

	date         string // "YYYY-MM-DD"
	startTime    string // "HH:MM"
	endTime      string
	address      string
	eventType    string
	guestCount   int
	serviceCount int

	bill float64

	bookings BookingAPI
	logger   *zap.Logger
}

// NewForm builds a create-mode form around an already-fetched offering.
func (s *DefaultBookingService) NewForm(t models.ServiceType, offering *models.Offering) (*Form, error) {
	desc, ok := DescriptorFor(t)
	if !ok {
		return nil, NewValidationError(fmt.Sprintf("unknown service type %q", t))
	}
	if offering == nil {
		return nil, NewNotFoundError(fmt.Sprintf("No %s data provided for booking", t))
	}
	f := s.newForm(desc, offering)
	f.recalc()
	f.phase = PhaseReady
	return f, nil
}

// LoadForm builds an edit-mode form: it fetches the persisted booking (and,
// where the envelope does not embed it, the offering) and reconstructs the
// selection state from the booked line items.
func (s *DefaultBookingService) LoadForm(ctx context.Context, t models.ServiceType, bookingID int) (*Form, error) {
	desc, ok := DescriptorFor(t)
	if !ok {
		return nil, NewValidationError(fmt.Sprintf("unknown service type %q", t))
	}

	detail, err := s.Bookings.FetchBooking(ctx, t, bookingID)
	if err != nil {
		return nil, err
	}

	offering, err := s.resolveOffering(ctx, desc, detail)
	if err != nil {
		return nil, err
	}

	f := s.newForm(desc, offering)
	f.editMode = true
	f.bookingID = bookingID
	f.seedFromDetail(detail)
	f.recalc()
	f.phase = PhaseReady

	s.logger().Debug("loaded booking into edit form",
		zap.String("type", string(t)),
		zap.Int("bookingId", bookingID),
		zap.Float64("bill", f.bill),
	)
	return f, nil
}

func (s *DefaultBookingService) newForm(desc Descriptor, offering *models.Offering) *Form {
	return &Form{
		desc:          desc,
		offering:      offering,
		phase:         PhaseFetching,
		amenityCounts: make(map[int]int),
		guestCount:    1,
		serviceCount:  1,
		bookings:      s.Bookings,
		logger:        s.logger(),
	}
}

// resolveOffering finds the offering behind a booking detail. Venue,
// photography and other-service envelopes embed it; catering and decoration
// envelopes only reference it, so those take a second catalog fetch.
func (s *DefaultBookingService) resolveOffering(ctx context.Context, desc Descriptor, detail *models.BookingDetail) (*models.Offering, error) {
	if desc.OfferingEmbedded {
		off := detail.Offering()
		if off == nil {
			return nil, NewNotFoundError(fmt.Sprintf("booking has no %s attached", desc.Type))
		}
		return off, nil
	}

	var offeringID int
	switch desc.Type {
	case models.ServiceCatering:
		if detail.CateringService == nil {
			return nil, NewNotFoundError("booking has no catering service attached")
		}
		offeringID = detail.CateringService.ID
	case models.ServiceDecoration:
		if detail.DecorationBooking == nil {
			return nil, NewNotFoundError("booking has no decoration service attached")
		}
		offeringID = detail.DecorationBooking.DecorationServiceID
	}

	off, err := s.Catalog.FetchOffering(ctx, desc.Type, offeringID)
	if err != nil {
		return nil, err
	}
	return off, nil
}

// seedFromDetail copies a persisted booking's scalars and line items into the
// form. Venue wire times arrive as "hh:mm am/pm" and are normalized to 24h.
func (f *Form) seedFromDetail(detail *models.BookingDetail) {
	b := detail.Booking

	f.date = datePart(b.Date)
	f.address = b.Address
	f.eventType = b.EventType

	if f.desc.Type == models.ServiceVenue {
		f.startTime = to24Hour(b.StartTime)
		f.endTime = to24Hour(b.EndTime)
	} else {
		f.startTime = b.StartTime
		f.endTime = b.EndTime
	}

	switch f.desc.Type {
	case models.ServiceVenue:
		if b.GuestCount > 0 {
			f.guestCount = b.GuestCount
		}
		day, night := VenueRates(f.offering)
		switch float64(b.Bill) {
		case night:
			f.rateChoice = RateNight
		case day:
			f.rateChoice = RateDay
		}
	case models.ServiceCatering:
		if detail.CateringBooking != nil && detail.CateringBooking.GuestCount > 0 {
			f.guestCount = detail.CateringBooking.GuestCount
		}
		if len(detail.BookedPackages) > 0 {
			// A persisted package wins over any persisted menu items.
			f.selectedPackage = detail.BookedPackages[0].ID
		} else {
			for _, item := range detail.BookedMenuItems {
				f.selectedItems = append(f.selectedItems, item.ID)
			}
		}
	case models.ServiceDecoration:
		for _, a := range detail.BookedAmenities {
			count := a.Count
			if count < 1 {
				count = 1
			}
			f.amenityCounts[a.DecorationAmenityID] = count
		}
	case models.ServiceOther:
		switch {
		case b.ServiceCount > 0:
			f.serviceCount = b.ServiceCount
		case detail.OtherServiceBooking != nil && detail.OtherServiceBooking.ServiceCount > 0:
			f.serviceCount = detail.OtherServiceBooking.ServiceCount
		}
	}
}

// recalc rederives the bill from the current selection state.
func (f *Form) recalc() {
	switch f.desc.Pricing {
	case PriceFlat:
		f.bill = CalculateFlatPrice(f.offering, 1)
	case PriceFlatPerUnit:
		f.bill = CalculateFlatPrice(f.offering, f.serviceCount)
	case PricePerGuest:
		if f.selectedPackage != 0 {
			f.bill = CalculatePackagePrice(f.offering, f.selectedPackage, f.guestCount)
		} else {
			f.bill = CalculateMenuPrice(f.offering, f.selectedItems, f.guestCount)
		}
	case PricePerItemSum:
		f.bill = CalculateAmenityPrice(f.offering, f.amenityCounts)
	case PriceDayNight:
		day, night := VenueRates(f.offering)
		switch f.rateChoice {
		case RateDay:
			f.bill = day
		case RateNight:
			f.bill = night
		default:
			f.bill = 0
		}
	}
}

// Submit validates the form and sends it to the backend. While a submit is in
// flight further submits are no-ops. A failed submit leaves the selection
// state untouched and returns the form to Ready so the user can correct and
// resubmit.
func (f *Form) Submit(ctx context.Context) error {
	if f.phase == PhaseSubmitting {
		return nil
	}
	if f.phase != PhaseReady {
		return NewValidationError("form is not ready to submit")
	}

	if violations := f.Validate(); len(violations) > 0 {
		msgs := make([]string, len(violations))
		for i, v := range violations {
			msgs[i] = v.Message
		}
		return NewValidationError(strings.Join(msgs, "; "))
	}

	f.phase = PhaseSubmitting
	payload := f.Payload()

	var err error
	if f.editMode {
		err = f.bookings.UpdateBooking(ctx, f.desc.Type, f.bookingID, payload)
	} else {
		err = f.bookings.CreateBooking(ctx, f.desc.Type, payload)
	}
	if err != nil {
		f.phase = PhaseReady
		f.logger.Warn("booking submit failed",
			zap.String("type", string(f.desc.Type)),
			zap.Bool("edit", f.editMode),
			zap.Error(err),
		)
		return err
	}

	f.phase = PhaseSucceeded
	f.logger.Info("booking submitted",
		zap.String("type", string(f.desc.Type)),
		zap.Bool("edit", f.editMode),
		zap.Float64("bill", f.bill),
	)
	return nil
}

// maxGuests is the upper clamp for the guest slider: the venue's capacity, or
// the category's fixed limit for everything else.
func (f *Form) maxGuests() int {
	if f.desc.MaxGuests > 0 {
		return f.desc.MaxGuests
	}
	if f.offering.Capacity > 0 {
		return f.offering.Capacity
	}
	return defaultVenueCapacity
}

func (f *Form) Type() models.ServiceType     { return f.desc.Type }
func (f *Form) Offering() *models.Offering   { return f.offering }
func (f *Form) EditMode() bool               { return f.editMode }
func (f *Form) BookingID() int               { return f.bookingID }
func (f *Form) Phase() Phase                 { return f.phase }
func (f *Form) Bill() float64                { return f.bill }
func (f *Form) GuestCount() int              { return f.guestCount }
func (f *Form) ServiceCount() int            { return f.serviceCount }
func (f *Form) Date() string                 { return f.date }
func (f *Form) StartTime() string            { return f.startTime }
func (f *Form) EndTime() string              { return f.endTime }
func (f *Form) Address() string              { return f.address }
func (f *Form) EventType() string            { return f.eventType }
func (f *Form) SelectedPackage() int         { return f.selectedPackage }
func (f *Form) Rate() RateChoice             { return f.rateChoice }

// SelectedItems returns the selected menu item ids in selection order.
func (f *Form) SelectedItems() []int {
	out := make([]int, len(f.selectedItems))
	copy(out, f.selectedItems)
	return out
}

// Quantity returns the count for a selected amenity, zero when unselected.
func (f *Form) Quantity(id int) int { return f.amenityCounts[id] }

// SelectedAmenities returns a copy of the amenity id -> count map.
func (f *Form) SelectedAmenities() map[int]int {
	out := make(map[int]int, len(f.amenityCounts))
	for id, count := range f.amenityCounts {
		out[id] = count
	}
	return out
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// datePart trims the time component off an ISO timestamp.
func datePart(iso string) string {
	if i := strings.IndexByte(iso, 'T'); i >= 0 {
		return iso[:i]
	}
	return iso
}
