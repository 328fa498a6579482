package models

import "time"

// DateFormat and TimeFormat are the wire formats for calendar dates and
// times of day used across the booking flow.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// OperatingHours describes when a salon takes appointments and the slot cadence.
type OperatingHours struct {
	Open        string `bson:"open" json:"open"`               // "09:00"
	Close       string `bson:"close" json:"close"`             // "18:00", exclusive
	SlotMinutes int    `bson:"slotMinutes" json:"slotMinutes"` // e.g. 30
}

// Salon is the tenant a catalog belongs to.
type Salon struct {
	ID          string         `bson:"id" json:"id"`
	Slug        string         `bson:"slug" json:"slug"`
	Name        string         `bson:"name" json:"name"`
	Description string         `bson:"description" json:"description"`
	Address     string         `bson:"address" json:"address"`
	Phone       string         `bson:"phone" json:"phone"`
	Email       string         `bson:"email" json:"email"`
	Logo        string         `bson:"logo,omitempty" json:"logo,omitempty"`
	CoverImage  string         `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	TaxRate     float64        `bson:"taxRate" json:"taxRate"`
	// PricesIncludeTax selects the pricing convention for the whole salon:
	// false = tax is added on top of listed prices, true = listed prices
	// already contain tax. The chosen convention applies to every screen.
	PricesIncludeTax bool           `bson:"pricesIncludeTax" json:"pricesIncludeTax"`
	Hours            OperatingHours `bson:"hours" json:"hours"`
	CreatedAt        time.Time      `bson:"createdAt" json:"createdAt"`
}

// Service is a bookable salon service. Reference data, read-only to the
// booking core.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	Duration    int     `bson:"duration" json:"duration"` // minutes
	Category    string  `bson:"category" json:"category"`
	Image       string  `bson:"image,omitempty" json:"image,omitempty"`
	Featured    bool    `bson:"featured" json:"featured"`
	Order       int     `bson:"order" json:"order"`
	Active      bool    `bson:"active" json:"active"`
}

// Stylist is a member of a salon's roster. ServiceIDs lists the services the
// stylist can perform.
type Stylist struct {
	ID         string   `bson:"id" json:"id"`
	Name       string   `bson:"name" json:"name"`
	Specialty  string   `bson:"specialty" json:"specialty"`
	Bio        string   `bson:"bio,omitempty" json:"bio,omitempty"`
	Avatar     string   `bson:"avatar,omitempty" json:"avatar,omitempty"`
	ServiceIDs []string `bson:"serviceIds" json:"serviceIds"`
	Active     bool     `bson:"active" json:"active"`
}

// CanPerform reports whether the stylist offers the given service.
func (s *Stylist) CanPerform(serviceID string) bool {
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
