package models

// BookingStatus is the lifecycle state of a booking on the backend.
type BookingStatus string

const (
	StatusRequested BookingStatus = "REQUESTED"
	StatusApproved  BookingStatus = "APPROVED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusFulfilled BookingStatus = "FULFILLED"
	StatusReviewed  BookingStatus = "REVIEWED"
)

// Booking is the common booking row shared by every service category.
type Booking struct {
	ID           int           `json:"id"`
	Date         string        `json:"date"` // ISO timestamp; only the date part is meaningful
	StartTime    string        `json:"startTime"`
	EndTime      string        `json:"endTime,omitempty"`
	Address      string        `json:"address,omitempty"`
	Bill         Money         `json:"bill"`
	Status       BookingStatus `json:"status"`
	GuestCount   int           `json:"guestCount,omitempty"`   // venue bookings
	ServiceCount int           `json:"serviceCount,omitempty"` // other-service bookings
	EventType    string        `json:"eventType,omitempty"`    // photography bookings
}

// Customer identifies who placed a booking.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// CateringBooking carries the catering-specific columns of a booking.
type CateringBooking struct {
	GuestCount int `json:"guestCount"`
}

// DecorationBooking carries the decoration-specific columns of a booking.
type DecorationBooking struct {
	DecorationServiceID int `json:"decorationServiceId"`
}

// OtherServiceBooking carries the other-service-specific columns of a booking.
type OtherServiceBooking struct {
	ServiceCount int `json:"serviceCount"`
}

// BookedAmenity is a decoration amenity attached to a persisted booking.
type BookedAmenity struct {
	ID                  int    `json:"id,omitempty"`
	DecorationAmenityID int    `json:"decorationAmenityId"`
	Count               int    `json:"count"`
	Amenity             string `json:"amenity,omitempty"`
	Cost                Money  `json:"cost,omitempty"`
}

// BookingDetail is the envelope returned by GET /bookings/{type}/{id}.
// Exactly one of the offering pointers is set, depending on the type;
// catering details carry only the offering id and require a catalog fetch.
type BookingDetail struct {
	Booking  Booking   `json:"booking"`
	Customer *Customer `json:"customer,omitempty"`

	Venue             *Offering `json:"venue,omitempty"`
	Photography       *Offering `json:"photography,omitempty"`
	CateringService   *Offering `json:"cateringService,omitempty"`
	DecorationService *Offering `json:"decorationService,omitempty"`
	OtherService      *Offering `json:"otherService,omitempty"`

	CateringBooking     *CateringBooking     `json:"cateringBooking,omitempty"`
	DecorationBooking   *DecorationBooking   `json:"decorationBooking,omitempty"`
	OtherServiceBooking *OtherServiceBooking `json:"otherServiceBooking,omitempty"`

	BookedMenuItems []MenuItem      `json:"bookedMenuItems,omitempty"`
	BookedPackages  []Package       `json:"bookedPackages,omitempty"`
	BookedAmenities []BookedAmenity `json:"bookedAmenities,omitempty"`
}

// Offering returns whichever offering record the detail envelope carries.
func (d *BookingDetail) Offering() *Offering {
	switch {
	case d.Venue != nil:
		return d.Venue
	case d.Photography != nil:
		return d.Photography
	case d.CateringService != nil:
		return d.CateringService
	case d.DecorationService != nil:
		return d.DecorationService
	case d.OtherService != nil:
		return d.OtherService
	}
	return nil
}

// BookingSummary is one row of the authenticated user's booking overview
// as returned by GET /appUser/bookings.
type BookingSummary struct {
	BookingID   int           `json:"bookingId"`
	Type        ServiceType   `json:"type"`
	ServiceName string        `json:"serviceName"`
	Cover       string        `json:"cover,omitempty"`
	Date        string        `json:"date"`
	Bill        Money         `json:"bill"`
	Status      BookingStatus `json:"status"`
}
