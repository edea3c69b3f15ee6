package models

import "time"

// Event is immutable once created: there is no update endpoint, only
// seeding and the authenticated creation call.
type Event struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	Title          string     `json:"title"`
	Slug           string     `gorm:"index" json:"slug,omitempty"`
	Description    string     `json:"description"`
	ImageURL       string     `json:"image_url"`
	Venue          string     `json:"venue"`
	Address        string     `json:"address"`
	CityID         uint       `gorm:"index" json:"city_id"`
	CategoryID     uint       `gorm:"index" json:"category_id"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	IsFeatured     bool       `gorm:"default:false" json:"is_featured"`
	IsTrending     bool       `gorm:"default:false" json:"is_trending"`
	AgeRestriction *string    `json:"age_restriction,omitempty"`
	EntryPolicy    *string    `json:"entry_policy,omitempty"`

	City        City         `gorm:"foreignKey:CityID" json:"-"`
	Category    Category     `gorm:"foreignKey:CategoryID" json:"-"`
	TicketTypes []TicketType `gorm:"foreignKey:EventID" json:"ticket_types,omitempty"`
}
