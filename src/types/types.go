package types

import (
	"github.com/golang-jwt/jwt/v4"
)

type OrderStatus string

const (
	ORDER_COMPLETED OrderStatus = "completed"
	ORDER_PENDING   OrderStatus = "pending"
)

type RegisterUserRequestBody struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginUserRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateEventRequestBody struct {
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	ImageURL       string  `json:"image_url" binding:"required,url"`
	Venue          string  `json:"venue" binding:"required"`
	Address        string  `json:"address" binding:"required"`
	CityID         uint    `json:"city_id" binding:"required"`
	CategoryID     uint    `json:"category_id" binding:"required"`
	StartDate      string  `json:"start_date" binding:"required" time_format:"2006-01-02 15:04:05 -07:00"`
	EndDate        *string `json:"end_date,omitempty" binding:"omitempty,afterfield=StartDate" time_format:"2006-01-02 15:04:05 -07:00"`
	IsFeatured     bool    `json:"is_featured,omitempty"`
	IsTrending     bool    `json:"is_trending,omitempty"`
	AgeRestriction *string `json:"age_restriction,omitempty"`
	EntryPolicy    *string `json:"entry_policy,omitempty"`
}

type CreateTicketTypeRequestBody struct {
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description" binding:"required"`
	Price             float64 `json:"price" binding:"min=0"`
	AvailableQuantity int     `json:"available_quantity" binding:"min=0"`
	MaxPerOrder       int     `json:"max_per_order,omitempty" binding:"omitempty,min=1"`
}

type OrderItemRequest struct {
	TicketTypeID uint `json:"ticketTypeId" binding:"required"`
	Quantity     int  `json:"quantity" binding:"required,min=1"`
	// Accepted for wire compatibility with the storefront client but
	// never trusted: the server snapshots the real price.
	PricePerItem float64 `json:"pricePerItem,omitempty"`
}

type CreateOrderRequestBody struct {
	Status      string             `json:"status,omitempty"`
	TotalAmount float64            `json:"totalAmount,omitempty"`
	ServiceFee  float64            `json:"serviceFee,omitempty"`
	Items       []OrderItemRequest `json:"items" binding:"required,dive"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
