package booking

import (
	"fmt"
	"time"

	"mezbaan/models"
)

// Violation is one reason a form cannot be submitted.
type Violation struct {
	Field   string
	Message string
}

// Validate returns every violation in a fixed order: past date, missing
// scalars, non-positive bill, empty selection, duration overrun, capacity
// overrun. An empty result means the form may be submitted.
func (f *Form) Validate() []Violation {
	var vs []Violation

	if f.date != "" && f.date < today() {
		vs = append(vs, Violation{Field: "date", Message: "Booking date cannot be in the past."})
	}

	if f.date == "" {
		vs = append(vs, Violation{Field: "date", Message: "Date cannot be empty."})
	}
	if f.startTime == "" {
		vs = append(vs, Violation{Field: "startTime", Message: "Start time cannot be empty."})
	}
	if f.desc.NeedsEndTime && f.endTime == "" {
		vs = append(vs, Violation{Field: "endTime", Message: "End time cannot be empty."})
	}
	if f.desc.NeedsAddress && f.address == "" {
		vs = append(vs, Violation{Field: "address", Message: "Address cannot be empty."})
	}
	if f.desc.NeedsEventType && f.eventType == "" {
		vs = append(vs, Violation{Field: "eventType", Message: "Please select an event type."})
	}

	// Flat-cost categories always carry the offering's price, so a zero bill
	// only signals a missing selection for the other price models.
	if f.desc.Pricing != PriceFlat && f.desc.Pricing != PriceFlatPerUnit && f.bill <= 0 {
		vs = append(vs, Violation{Field: "bill", Message: "Bill must be greater than 0."})
	}

	switch f.desc.Pricing {
	case PricePerGuest:
		if f.selectedPackage == 0 && len(f.selectedItems) == 0 {
			vs = append(vs, Violation{Field: "selection", Message: "Please select either a package or at least one menu item."})
		}
	case PricePerItemSum:
		if len(f.amenityCounts) == 0 {
			vs = append(vs, Violation{Field: "selection", Message: "Please select at least one amenity."})
		}
	}

	if f.desc.Type == models.ServiceOther && f.offering.Duration > 0 {
		if hours, ok := bookedHours(f.startTime, f.endTime); ok && hours > f.offering.Duration {
			vs = append(vs, Violation{
				Field: "endTime",
				Message: fmt.Sprintf("Booking duration (%.1f hours) exceeds the service duration limit (%g hours).",
					hours, f.offering.Duration),
			})
		}
	}

	if f.desc.Type == models.ServiceVenue && f.guestCount > f.maxGuests() {
		vs = append(vs, Violation{Field: "guestCount", Message: "Guest count should not exceed maximum capacity."})
	}

	return vs
}

// bookedHours computes the span between two "HH:MM" clock times in hours,
// wrapping past midnight when the end precedes the start.
func bookedHours(start, end string) (float64, bool) {
	s, err := time.Parse("15:04", start)
	if err != nil {
		return 0, false
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return 0, false
	}
	if e.Before(s) {
		e = e.Add(24 * time.Hour)
	}
	return e.Sub(s).Hours(), true
}

// today returns the current date in the form's "YYYY-MM-DD" format; the date
// check is a lexical comparison, which is exact for this format.
func today() string {
	return time.Now().Format("2006-01-02")
}
