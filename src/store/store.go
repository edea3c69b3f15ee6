package store

import (
	"errors"
	"fmt"

	"ets/src/models"
)

// Store is the repository surface the handlers run against. The gorm
// implementation backs the real service; the in-memory one backs tests
// and the STORE_DRIVER=memory dev mode.
type Store interface {
	CreateUser(user *models.User) error
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)

	CreateCategory(category *models.Category) error
	GetCategories() ([]models.Category, error)
	CreateCity(city *models.City) error
	GetCities() ([]models.City, error)

	CreateEvent(event *models.Event) error
	GetEvents() ([]models.Event, error)
	GetEvent(id uint) (*models.Event, error)
	GetFeaturedEvents() ([]models.Event, error)
	GetTrendingEvents() ([]models.Event, error)
	GetEventsByCategory(categoryID uint) ([]models.Event, error)
	GetEventsByCity(cityID uint) ([]models.Event, error)

	CreateTicketType(ticketType *models.TicketType) error
	GetTicketTypes(eventID uint) ([]models.TicketType, error)
	GetTicketType(id uint) (*models.TicketType, error)

	// CreateOrder validates every line before writing anything: the
	// whole order commits with its inventory decrements, or nothing
	// does.
	CreateOrder(userID uint, status string, lines []OrderLine) (*models.Order, []models.OrderItem, error)
	GetOrders(userID uint) ([]models.Order, error)
	GetOrder(id uint) (*models.Order, error)
	GetOrderItems(orderID uint) ([]models.OrderItem, error)
}

// OrderLine is one requested (ticket type, quantity) pair of an order.
type OrderLine struct {
	TicketTypeID uint
	Quantity     int
}

var ErrEmptyOrder = errors.New("order must contain at least one item")
var ErrInvalidQuantity = errors.New("item quantity must be a positive number")
var ErrDuplicateUser = errors.New("username or email is already registered")

type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

// InsufficientStockError carries the ticket type name and the remaining
// count so the storefront can tell the user what to adjust.
type InsufficientStockError struct {
	TicketType string
	Remaining  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Not enough tickets available for %s. Only %d remaining.", e.TicketType, e.Remaining)
}

type QuantityCapError struct {
	TicketType string
	Max        int
}

func (e *QuantityCapError) Error() string {
	return fmt.Sprintf("quantity for %s exceeds the limit of %d per order", e.TicketType, e.Max)
}

var active Store

func Get() Store {
	return active
}

// Use replaces the active store. Boot wires the gorm store here; tests
// swap in a seeded memory store.
func Use(s Store) Store {
	active = s
	return active
}
