package booking

// Selection mutations. Each one recomputes the bill before returning; none of
// them are legal while a submit is in flight.

// SelectLineItem adds a menu item (catering) or an amenity at count 1
// (decoration) to the selection. Selecting a menu item while a package is
// active is a no-op, as is selecting an id the offering does not carry.
func (f *Form) SelectLineItem(id int) {
	switch f.desc.Pricing {
	case PricePerGuest:
		if f.selectedPackage != 0 {
			return
		}
		if _, ok := f.offering.MenuItemByID(id); !ok {
			return
		}
		for _, existing := range f.selectedItems {
			if existing == id {
				return
			}
		}
		f.selectedItems = append(f.selectedItems, id)
	case PricePerItemSum:
		if _, ok := f.offering.AmenityByID(id); !ok {
			return
		}
		if _, selected := f.amenityCounts[id]; !selected {
			f.amenityCounts[id] = 1
		}
	default:
		return
	}
	f.recalc()
}

// DeselectLineItem removes a menu item or amenity from the selection.
func (f *Form) DeselectLineItem(id int) {
	switch f.desc.Pricing {
	case PricePerGuest:
		for i, existing := range f.selectedItems {
			if existing == id {
				f.selectedItems = append(f.selectedItems[:i], f.selectedItems[i+1:]...)
				f.recalc()
				return
			}
		}
	case PricePerItemSum:
		if _, selected := f.amenityCounts[id]; selected {
			delete(f.amenityCounts, id)
			f.recalc()
		}
	}
}

// SelectPackage activates a catering package, clearing any individual menu
// item selection in the same transition. Re-selecting the active package
// deselects it.
func (f *Form) SelectPackage(id int) {
	if f.desc.Pricing != PricePerGuest {
		return
	}
	if f.selectedPackage == id {
		f.selectedPackage = 0
		f.selectedItems = nil
		f.recalc()
		return
	}
	if _, ok := f.offering.PackageByID(id); !ok {
		return
	}
	f.selectedPackage = id
	f.selectedItems = nil
	f.recalc()
}

// SetQuantity sets the count for an already-selected amenity, floored at 1.
// Counts for unselected amenities are not tracked.
func (f *Form) SetQuantity(id, count int) {
	if f.desc.Pricing != PricePerItemSum {
		return
	}
	if _, selected := f.amenityCounts[id]; !selected {
		return
	}
	if count < 1 {
		count = 1
	}
	f.amenityCounts[id] = count
	f.recalc()
}

// SelectRate picks the venue's day or night rate.
func (f *Form) SelectRate(choice RateChoice) {
	if f.desc.Pricing != PriceDayNight {
		return
	}
	f.rateChoice = choice
	f.recalc()
}

// SetDate sets the booking date ("YYYY-MM-DD").
func (f *Form) SetDate(date string) {
	f.date = date
}

// SetStartTime sets the start time ("HH:MM").
func (f *Form) SetStartTime(t string) {
	f.startTime = t
}

// SetEndTime sets the end time ("HH:MM").
func (f *Form) SetEndTime(t string) {
	f.endTime = t
}

func (f *Form) SetAddress(address string) {
	f.address = address
}

func (f *Form) SetEventType(eventType string) {
	f.eventType = eventType
}

// SetGuestCount clamps the guest count to [1, capacity] for venues and to the
// category limit elsewhere, then recomputes the bill.
func (f *Form) SetGuestCount(n int) {
	if max := f.maxGuests(); n > max {
		n = max
	}
	if n < 1 {
		n = 1
	}
	f.guestCount = n
	f.recalc()
}

// SetServiceCount floors the unit count at 1 and recomputes the bill.
func (f *Form) SetServiceCount(n int) {
	if n < 1 {
		n = 1
	}
	f.serviceCount = n
	f.recalc()
}
