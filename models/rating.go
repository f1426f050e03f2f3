package models

// Rating service-type discriminators as the backend spells them.
const (
	RatingTypeVenue       = "VENUE"
	RatingTypePhotography = "PHOTOGRAPHER"
	RatingTypeCatering    = "CATERINGSERVICE"
	RatingTypeDecoration  = "DECORATIONSERVICE"
	RatingTypeOther       = "OTHERSERVICE"
)

// RatingRequest is the body of POST /ratings. Ratings are only accepted for
// bookings whose status is FULFILLED.
type RatingRequest struct {
	BookingID   int    `json:"bookingId"`
	ServiceID   int    `json:"serviceId"`
	ServiceType string `json:"serviceType"`
	Rating      int    `json:"rating"` // 1..5
	Comments    string `json:"comments,omitempty"`
}
