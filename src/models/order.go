package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order totals are always computed server-side from the ticket type
// prices at purchase time. Caller-supplied amounts are ignored.
type Order struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	UserID      uint            `gorm:"index" json:"user_id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`
	ServiceFee  decimal.Decimal `gorm:"type:decimal(10,2)" json:"service_fee"`
	Reference   uuid.UUID       `gorm:"type:uuid" json:"reference"`
	CreatedAt   time.Time       `json:"created_at"`

	User  User        `gorm:"foreignKey:UserID" json:"-"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// OrderItem snapshots PricePerItem so later price edits can never
// change a historical order.
type OrderItem struct {
	ID           uint            `gorm:"primarykey" json:"id"`
	OrderID      uint            `gorm:"index" json:"order_id"`
	TicketTypeID uint            `json:"ticket_type_id"`
	Quantity     int             `json:"quantity"`
	PricePerItem decimal.Decimal `gorm:"type:decimal(10,2)" json:"price_per_item"`

	TicketType TicketType `json:"-"`
}
