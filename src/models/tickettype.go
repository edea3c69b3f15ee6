package models

import "github.com/shopspring/decimal"

// TicketType is a purchasable tier for one event. AvailableQuantity is
// the only mutable column in the whole model: order creation decrements
// it and nothing increments it back.
type TicketType struct {
	ID                uint            `gorm:"primarykey" json:"id"`
	EventID           uint            `gorm:"index" json:"event_id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	AvailableQuantity int             `json:"available_quantity"`
	MaxPerOrder       int             `gorm:"default:10" json:"max_per_order"`

	Event Event `json:"-"`
}
