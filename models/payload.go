package models

// Outbound booking request bodies, one per service category. The offering
// foreign key is a pointer: set when creating, nil when updating (the server
// infers it from the existing booking).

// VenueBookingPayload books a venue for a day or night slot.
type VenueBookingPayload struct {
	VenueID    *int    `json:"venueId,omitempty"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"` // "hh:mm am/pm" wire format
	EndTime    string  `json:"endTime"`
	GuestCount int     `json:"guestCount"`
	Bill       float64 `json:"bill"`
}

// CateringBookingPayload books a caterer with either a package or a set of
// menu items, both priced per guest.
type CateringBookingPayload struct {
	CateringServiceID *int    `json:"cateringServiceId,omitempty"`
	GuestCount        int     `json:"guestCount"`
	PackageIDs        []int   `json:"packageIds"`
	MenuItemIDs       []int   `json:"menuItemIds"`
	Date              string  `json:"date"`
	StartTime         string  `json:"startTime"`
	Address           string  `json:"address"`
	Bill              float64 `json:"bill"`
}

// BookingAmenity is one decoration amenity line in a booking request.
type BookingAmenity struct {
	DecorationAmenityID int `json:"decorationAmenityId"`
	Count               int `json:"count"`
}

// DecorationBookingPayload books a decorator with per-amenity counts.
type DecorationBookingPayload struct {
	DecorationServiceID *int             `json:"decorationServiceId,omitempty"`
	Date                string           `json:"date"`
	StartTime           string           `json:"startTime"`
	EndTime             string           `json:"endTime"`
	Address             string           `json:"address"`
	Bill                float64          `json:"bill"`
	Amenities           []BookingAmenity `json:"amenities"`
}

// PhotographyBookingPayload books a photographer at their flat cost.
type PhotographyBookingPayload struct {
	PhotographyID *int    `json:"photographyId,omitempty"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Address       string  `json:"address"`
	Bill          float64 `json:"bill"`
	EventType     string  `json:"eventType"`
}

// OtherServiceBookingPayload books a miscellaneous service by unit count.
type OtherServiceBookingPayload struct {
	OtherServiceID *int    `json:"otherServiceId,omitempty"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Address        string  `json:"address"`
	Bill           float64 `json:"bill"`
	ServiceCount   int     `json:"serviceCount"`
}
