package booking

import "mezbaan/models"

// CalculatePackagePrice computes the bill for a catering package: the package
// price scaled by guest count. Unknown package ids price at zero.
func CalculatePackagePrice(off *models.Offering, packageID, guestCount int) float64 {
	pkg, ok := off.PackageByID(packageID)
	if !ok {
		return 0
	}
	return float64(pkg.Price) * float64(guestCount)
}

// CalculateMenuPrice computes the a-la-carte catering bill: the sum of the
// selected menu items' costs, scaled by guest count. Menu items are priced
// per guest, so there is no per-item quantity.
func CalculateMenuPrice(off *models.Offering, itemIDs []int, guestCount int) float64 {
	total := 0.0
	for _, id := range itemIDs {
		if item, ok := off.MenuItemByID(id); ok {
			total += float64(item.Cost)
		}
	}
	return total * float64(guestCount)
}

// CalculateAmenityPrice computes the decoration bill: each selected amenity's
// cost times its count, summed.
func CalculateAmenityPrice(off *models.Offering, counts map[int]int) float64 {
	total := 0.0
	for id, count := range counts {
		if a, ok := off.AmenityByID(id); ok {
			total += float64(a.Cost) * float64(count)
		}
	}
	return total
}

// VenueRates returns the venue's day and night rates, substituting the backend
// fallbacks for legacy records that omit them.
func VenueRates(off *models.Offering) (day, night float64) {
	day = float64(off.PriceDay)
	if day == 0 {
		day = defaultDayPrice
	}
	night = float64(off.PriceNight)
	if night == 0 {
		night = defaultNightPrice
	}
	return day, night
}

// CalculateFlatPrice returns the flat-cost bill scaled by unit count.
func CalculateFlatPrice(off *models.Offering, units int) float64 {
	return float64(off.Cost) * float64(units)
}
