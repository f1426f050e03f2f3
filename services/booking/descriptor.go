package booking

import "mezbaan/models"

// PriceModel tags how a service category derives its bill from the
// selection state.
type PriceModel int

const (
	// PriceFlat bills the offering's cost as-is (photography).
	PriceFlat PriceModel = iota
	// PriceFlatPerUnit bills cost x serviceCount (other services).
	PriceFlatPerUnit
	// PricePerGuest bills a package price or the menu-item sum, scaled by
	// guest count (catering).
	PricePerGuest
	// PricePerItemSum bills the sum of selected line items times their
	// counts (decoration).
	PricePerItemSum
	// PriceDayNight bills the offering's day or night rate (venues).
	PriceDayNight
)

// Fallback rates when a venue record omits them, matching what the backend
// seeds for legacy venues.
const (
	defaultVenueCapacity   = 1000
	defaultDayPrice        = 50000
	defaultNightPrice      = 75000
	defaultGuestCountLimit = 3000
)

// Descriptor parametrizes the booking form for one service category.
type Descriptor struct {
	Type        models.ServiceType
	Pricing     PriceModel
	CatalogPath string // URL segment of the catalog collection
	RatingType  string // discriminator for POST /ratings

	NeedsEndTime   bool
	NeedsAddress   bool
	NeedsEventType bool
	UsesGuestCount bool

	// MaxGuests caps the guest slider. Zero means the offering's own
	// capacity governs (venues).
	MaxGuests int

	// OfferingEmbedded marks categories whose booking detail envelope carries
	// the full offering inline, so edit mode needs no second catalog fetch.
	OfferingEmbedded bool
}

var descriptors = map[models.ServiceType]Descriptor{
	models.ServiceVenue: {
		Type:             models.ServiceVenue,
		Pricing:          PriceDayNight,
		CatalogPath:      "venues",
		RatingType:       models.RatingTypeVenue,
		NeedsEndTime:     true,
		UsesGuestCount:   true,
		OfferingEmbedded: true,
	},
	models.ServiceCatering: {
		Type:           models.ServiceCatering,
		Pricing:        PricePerGuest,
		CatalogPath:    "cateringServices",
		RatingType:     models.RatingTypeCatering,
		NeedsAddress:   true,
		UsesGuestCount: true,
		MaxGuests:      defaultGuestCountLimit,
	},
	models.ServiceDecoration: {
		Type:         models.ServiceDecoration,
		Pricing:      PricePerItemSum,
		CatalogPath:  "decorationServices",
		RatingType:   models.RatingTypeDecoration,
		NeedsEndTime: true,
		NeedsAddress: true,
	},
	models.ServicePhotography: {
		Type:             models.ServicePhotography,
		Pricing:          PriceFlat,
		CatalogPath:      "photography",
		RatingType:       models.RatingTypePhotography,
		NeedsEndTime:     true,
		NeedsAddress:     true,
		NeedsEventType:   true,
		OfferingEmbedded: true,
	},
	models.ServiceOther: {
		Type:             models.ServiceOther,
		Pricing:          PriceFlatPerUnit,
		CatalogPath:      "otherServices",
		RatingType:       models.RatingTypeOther,
		NeedsEndTime:     true,
		NeedsAddress:     true,
		OfferingEmbedded: true,
	},
}

// DescriptorFor returns the descriptor for a service type.
func DescriptorFor(t models.ServiceType) (Descriptor, bool) {
	d, ok := descriptors[t]
	return d, ok
}

// ServiceTypes lists every bookable category.
func ServiceTypes() []models.ServiceType {
	return []models.ServiceType{
		models.ServiceVenue,
		models.ServiceCatering,
		models.ServiceDecoration,
		models.ServicePhotography,
		models.ServiceOther,
	}
}
