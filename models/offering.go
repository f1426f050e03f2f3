package models

import (
	"bytes"
	"strconv"
)

// ServiceType discriminates the five bookable service categories, spelled the
// way the backend's URL segments and overview rows spell them.
type ServiceType string

const (
	ServiceVenue       ServiceType = "venue"
	ServiceCatering    ServiceType = "cateringService"
	ServiceDecoration  ServiceType = "decorationService"
	ServicePhotography ServiceType = "photography"
	ServiceOther       ServiceType = "otherService"
)

// Money is a price field. The backend stores prices as decimal strings on
// some records and as plain numbers on others, so both decode.
type Money float64

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		if s == "" {
			*m = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*m = Money(v)
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*m = Money(v)
	return nil
}

// MenuItem is one dish on a catering service's menu, priced per guest.
type MenuItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"` // course, e.g. "Main Course"
	Cost Money  `json:"cost"`
}

// Package is a fixed catering menu, priced per guest.
type Package struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price Money  `json:"price"`
}

// Amenity is one decoration line item, priced per unit.
type Amenity struct {
	ID      int    `json:"id"`
	Amenity string `json:"amenity"`
	Cost    Money  `json:"cost"`
}

// Offering is one catalog record. It is a union across the five categories:
// venues carry capacity and the day/night rates, photography and other
// services carry a flat cost, catering carries menu items and packages, and
// decoration carries amenities. Fields outside a record's category are zero.
type Offering struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Address     string   `json:"address,omitempty"`
	Images      []string `json:"images,omitempty"`

	Capacity   int   `json:"capacity,omitempty"`
	PriceDay   Money `json:"priceDay,omitempty"`
	PriceNight Money `json:"priceNight,omitempty"`

	Cost     Money   `json:"cost,omitempty"`
	Duration float64 `json:"duration,omitempty"` // other services: max booking hours

	MenuItems []MenuItem `json:"menuItems,omitempty"`
	Packages  []Package  `json:"packages,omitempty"`
	Amenities []Amenity  `json:"amenities,omitempty"`
}

// MenuItemByID finds a menu item on the offering.
func (o *Offering) MenuItemByID(id int) (MenuItem, bool) {
	for _, item := range o.MenuItems {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

// PackageByID finds a package on the offering.
func (o *Offering) PackageByID(id int) (Package, bool) {
	for _, pkg := range o.Packages {
		if pkg.ID == id {
			return pkg, true
		}
	}
	return Package{}, false
}

// AmenityByID finds an amenity on the offering.
func (o *Offering) AmenityByID(id int) (Amenity, bool) {
	for _, a := range o.Amenities {
		if a.ID == id {
			return a, true
		}
	}
	return Amenity{}, false
}
