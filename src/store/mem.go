package store

import (
	"log"
	"sync"
	"time"

	"ets/src/models"
)

// MemStore keeps every collection in process memory with monotonically
// assigned integer IDs, guarded by a single mutex. The mutex is what
// makes the check-then-decrement in CreateOrder atomic: concurrent
// orders for the same ticket type serialize on it.
type MemStore struct {
	mu sync.Mutex

	users       map[uint]*models.User
	categories  map[uint]*models.Category
	cities      map[uint]*models.City
	events      map[uint]*models.Event
	ticketTypes map[uint]*models.TicketType
	orders      map[uint]*models.Order
	orderItems  map[uint]*models.OrderItem

	nextUserID       uint
	nextCategoryID   uint
	nextCityID       uint
	nextEventID      uint
	nextTicketTypeID uint
	nextOrderID      uint
	nextOrderItemID  uint
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:            make(map[uint]*models.User),
		categories:       make(map[uint]*models.Category),
		cities:           make(map[uint]*models.City),
		events:           make(map[uint]*models.Event),
		ticketTypes:      make(map[uint]*models.TicketType),
		orders:           make(map[uint]*models.Order),
		orderItems:       make(map[uint]*models.OrderItem),
		nextUserID:       1,
		nextCategoryID:   1,
		nextCityID:       1,
		nextEventID:      1,
		nextTicketTypeID: 1,
		nextOrderID:      1,
		nextOrderItemID:  1,
	}
}

func (s *MemStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return ErrDuplicateUser
		}
	}
	user.ID = s.nextUserID
	s.nextUserID++
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *MemStore) GetUser(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, &NotFoundError{Resource: "User", ID: id}
	}
	u := *user
	return &u, nil
}

func (s *MemStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username {
			u := *user
			return &u, nil
		}
	}
	return nil, &NotFoundError{Resource: "User"}
}

func (s *MemStore) CreateCategory(category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	category.ID = s.nextCategoryID
	s.nextCategoryID++
	stored := *category
	s.categories[category.ID] = &stored
	return nil
}

func (s *MemStore) GetCategories() ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	categories := make([]models.Category, 0, len(s.categories))
	for id := uint(1); id < s.nextCategoryID; id++ {
		if c, ok := s.categories[id]; ok {
			categories = append(categories, *c)
		}
	}
	return categories, nil
}

func (s *MemStore) CreateCity(city *models.City) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	city.ID = s.nextCityID
	s.nextCityID++
	stored := *city
	s.cities[city.ID] = &stored
	return nil
}

func (s *MemStore) GetCities() ([]models.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cities := make([]models.City, 0, len(s.cities))
	for id := uint(1); id < s.nextCityID; id++ {
		if c, ok := s.cities[id]; ok {
			cities = append(cities, *c)
		}
	}
	return cities, nil
}

func (s *MemStore) CreateEvent(event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	event.ID = s.nextEventID
	s.nextEventID++
	stored := *event
	s.events[event.ID] = &stored
	return nil
}

func (s *MemStore) GetEvents() ([]models.Event, error) {
	return s.filterEvents(func(*models.Event) bool { return true })
}

func (s *MemStore) GetEvent(id uint) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[id]
	if !ok {
		return nil, &NotFoundError{Resource: "Event", ID: id}
	}
	e := *event
	return &e, nil
}

func (s *MemStore) GetFeaturedEvents() ([]models.Event, error) {
	return s.filterEvents(func(e *models.Event) bool { return e.IsFeatured })
}

func (s *MemStore) GetTrendingEvents() ([]models.Event, error) {
	return s.filterEvents(func(e *models.Event) bool { return e.IsTrending })
}

func (s *MemStore) GetEventsByCategory(categoryID uint) ([]models.Event, error) {
	return s.filterEvents(func(e *models.Event) bool { return e.CategoryID == categoryID })
}

func (s *MemStore) GetEventsByCity(cityID uint) ([]models.Event, error) {
	return s.filterEvents(func(e *models.Event) bool { return e.CityID == cityID })
}

// filterEvents re-scans the whole collection in insertion order. There
// is no pagination or caching contract on the catalog.
func (s *MemStore) filterEvents(keep func(*models.Event) bool) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := make([]models.Event, 0)
	for id := uint(1); id < s.nextEventID; id++ {
		if e, ok := s.events[id]; ok && keep(e) {
			events = append(events, *e)
		}
	}
	return events, nil
}

func (s *MemStore) CreateTicketType(ticketType *models.TicketType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[ticketType.EventID]; !ok {
		return &NotFoundError{Resource: "Event", ID: ticketType.EventID}
	}
	ticketType.ID = s.nextTicketTypeID
	s.nextTicketTypeID++
	stored := *ticketType
	s.ticketTypes[ticketType.ID] = &stored
	return nil
}

func (s *MemStore) GetTicketTypes(eventID uint) ([]models.TicketType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ticketTypes := make([]models.TicketType, 0)
	for id := uint(1); id < s.nextTicketTypeID; id++ {
		if tt, ok := s.ticketTypes[id]; ok && tt.EventID == eventID {
			ticketTypes = append(ticketTypes, *tt)
		}
	}
	return ticketTypes, nil
}

func (s *MemStore) GetTicketType(id uint) (*models.TicketType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ticketType, ok := s.ticketTypes[id]
	if !ok {
		return nil, &NotFoundError{Resource: "Ticket type", ID: id}
	}
	tt := *ticketType
	return &tt, nil
}

func (s *MemStore) CreateOrder(userID uint, status string, lines []OrderLine) (*models.Order, []models.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, items, err := buildOrder(userID, status, lines, s.ticketTypes)
	if err != nil {
		return nil, nil, err
	}

	order.ID = s.nextOrderID
	s.nextOrderID++
	order.CreatedAt = time.Now()
	stored := *order
	s.orders[order.ID] = &stored

	for i := range items {
		items[i].ID = s.nextOrderItemID
		s.nextOrderItemID++
		items[i].OrderID = order.ID
		storedItem := items[i]
		s.orderItems[items[i].ID] = &storedItem
	}

	for id, qty := range lineTotals(items) {
		tt := s.ticketTypes[id]
		tt.AvailableQuantity -= qty
		if tt.AvailableQuantity < 0 {
			// buildOrder ran under the same lock, so this is a
			// data race worth shouting about, not a user error.
			log.Printf("invariant violation: inventory underflow on ticket type [%d]\n", id)
			tt.AvailableQuantity = 0
		}
	}

	return order, items, nil
}

func (s *MemStore) GetOrders(userID uint) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]models.Order, 0)
	for id := uint(1); id < s.nextOrderID; id++ {
		o, ok := s.orders[id]
		if !ok || o.UserID != userID {
			continue
		}
		order := *o
		order.Items = s.itemsFor(order.ID)
		orders = append(orders, order)
	}
	return orders, nil
}

func (s *MemStore) GetOrder(id uint) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, &NotFoundError{Resource: "Order", ID: id}
	}
	order := *o
	order.Items = s.itemsFor(order.ID)
	return &order, nil
}

func (s *MemStore) GetOrderItems(orderID uint) ([]models.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsFor(orderID), nil
}

// itemsFor expects the lock to be held.
func (s *MemStore) itemsFor(orderID uint) []models.OrderItem {
	items := make([]models.OrderItem, 0)
	for id := uint(1); id < s.nextOrderItemID; id++ {
		if item, ok := s.orderItems[id]; ok && item.OrderID == orderID {
			items = append(items, *item)
		}
	}
	return items
}
