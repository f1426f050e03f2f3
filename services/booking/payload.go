package booking

import (
	"fmt"
	"strconv"
	"strings"

	"mezbaan/models"
)

// Payload builds the outbound request body for the form's service category.
// In create mode it carries the offering's foreign key; in edit mode the key
// is omitted and the server infers it from the booking being updated.
func (f *Form) Payload() any {
	switch f.desc.Type {
	case models.ServiceVenue:
		return models.VenueBookingPayload{
			VenueID:    f.offeringFK(),
			Date:       f.date,
			StartTime:  to12Hour(f.startTime),
			EndTime:    to12Hour(f.endTime),
			GuestCount: f.guestCount,
			Bill:       f.bill,
		}
	case models.ServiceCatering:
		packageIDs := []int{f.selectedPackage}
		if f.selectedPackage == 0 {
			// The backend rejects an empty packageIds array; [1] is the
			// documented fallback when no package is picked. Validation
			// blocks fully empty selections upstream.
			packageIDs = []int{1}
		}
		menuItemIDs := make([]int, len(f.selectedItems))
		copy(menuItemIDs, f.selectedItems)
		return models.CateringBookingPayload{
			CateringServiceID: f.offeringFK(),
			GuestCount:        f.guestCount,
			PackageIDs:        packageIDs,
			MenuItemIDs:       menuItemIDs,
			Date:              f.date,
			StartTime:         f.startTime,
			Address:           f.address,
			Bill:              f.bill,
		}
	case models.ServiceDecoration:
		amenities := make([]models.BookingAmenity, 0, len(f.amenityCounts))
		for _, a := range f.offering.Amenities {
			if count, selected := f.amenityCounts[a.ID]; selected {
				amenities = append(amenities, models.BookingAmenity{
					DecorationAmenityID: a.ID,
					Count:               count,
				})
			}
		}
		return models.DecorationBookingPayload{
			DecorationServiceID: f.offeringFK(),
			Date:                f.date,
			StartTime:           f.startTime,
			EndTime:             f.endTime,
			Address:             f.address,
			Bill:                f.bill,
			Amenities:           amenities,
		}
	case models.ServicePhotography:
		return models.PhotographyBookingPayload{
			PhotographyID: f.offeringFK(),
			Date:          f.date,
			StartTime:     f.startTime,
			EndTime:       f.endTime,
			Address:       f.address,
			Bill:          f.bill,
			EventType:     f.eventType,
		}
	default:
		return models.OtherServiceBookingPayload{
			OtherServiceID: f.offeringFK(),
			Date:           f.date,
			StartTime:      f.startTime,
			EndTime:        f.endTime,
			Address:        f.address,
			Bill:           f.bill,
			ServiceCount:   f.serviceCount,
		}
	}
}

func (f *Form) offeringFK() *int {
	if f.editMode {
		return nil
	}
	id := f.offering.ID
	return &id
}

// The backend stores venue times as "hh:mm am/pm" while the form holds the
// 24-hour "HH:MM" the time inputs produce.

func to12Hour(t string) string {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return t
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return t
	}
	period := "am"
	if hours >= 12 {
		period = "pm"
	}
	hours = hours % 12
	if hours == 0 {
		hours = 12
	}
	return fmt.Sprintf("%02d:%s %s", hours, parts[1], period)
}

func to24Hour(t string) string {
	fields := strings.Fields(t)
	if len(fields) != 2 {
		return t
	}
	parts := strings.SplitN(fields[0], ":", 2)
	if len(parts) != 2 {
		return t
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return t
	}
	period := strings.ToLower(fields[1])
	if period == "pm" && hours != 12 {
		hours += 12
	} else if period == "am" && hours == 12 {
		hours = 0
	}
	return fmt.Sprintf("%02d:%s", hours, parts[1])
}
