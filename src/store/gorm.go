package store

import (
	"errors"
	"fmt"
	"log"

	"ets/src/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore runs against postgres. The order transaction takes row
// locks on every referenced ticket type before the availability check,
// so two concurrent orders for the last remaining tickets serialize and
// at most one can succeed.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

func (s *GormStore) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Where(&models.User{ID: id}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "User", ID: id}
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where(&models.User{Username: username}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "User"}
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CreateCategory(category *models.Category) error {
	return s.db.Create(category).Error
}

func (s *GormStore) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *GormStore) CreateCity(city *models.City) error {
	return s.db.Create(city).Error
}

func (s *GormStore) GetCities() ([]models.City, error) {
	var cities []models.City
	if err := s.db.Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (s *GormStore) CreateEvent(event *models.Event) error {
	return s.db.Create(event).Error
}

func (s *GormStore) GetEvents() ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *GormStore) GetEvent(id uint) (*models.Event, error) {
	var event models.Event
	if err := s.db.Where(&models.Event{ID: id}).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Event", ID: id}
		}
		return nil, err
	}
	return &event, nil
}

func (s *GormStore) GetFeaturedEvents() ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Where("is_featured = ?", true).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *GormStore) GetTrendingEvents() ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Where("is_trending = ?", true).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *GormStore) GetEventsByCategory(categoryID uint) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Where(&models.Event{CategoryID: categoryID}).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *GormStore) GetEventsByCity(cityID uint) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Where(&models.Event{CityID: cityID}).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *GormStore) CreateTicketType(ticketType *models.TicketType) error {
	return s.db.Create(ticketType).Error
}

func (s *GormStore) GetTicketTypes(eventID uint) ([]models.TicketType, error) {
	var ticketTypes []models.TicketType
	if err := s.db.Where(&models.TicketType{EventID: eventID}).Find(&ticketTypes).Error; err != nil {
		return nil, err
	}
	return ticketTypes, nil
}

func (s *GormStore) GetTicketType(id uint) (*models.TicketType, error) {
	var ticketType models.TicketType
	if err := s.db.Where(&models.TicketType{ID: id}).First(&ticketType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Ticket type", ID: id}
		}
		return nil, err
	}
	return &ticketType, nil
}

func (s *GormStore) CreateOrder(userID uint, status string, lines []OrderLine) (*models.Order, []models.OrderItem, error) {
	if len(lines) == 0 {
		return nil, nil, ErrEmptyOrder
	}
	var order *models.Order
	var items []models.OrderItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		ticketTypes := make(map[uint]*models.TicketType, len(lines))
		for _, line := range lines {
			if _, ok := ticketTypes[line.TicketTypeID]; ok {
				continue
			}
			var tt models.TicketType
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where(&models.TicketType{ID: line.TicketTypeID}).
				First(&tt).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NotFoundError{Resource: "Ticket type", ID: line.TicketTypeID}
				}
				return err
			}
			ticketTypes[tt.ID] = &tt
		}
		built, builtItems, err := buildOrder(userID, status, lines, ticketTypes)
		if err != nil {
			return err
		}
		if err := tx.Create(built).Error; err != nil {
			return err
		}
		for i := range builtItems {
			builtItems[i].OrderID = built.ID
		}
		if err := tx.Create(&builtItems).Error; err != nil {
			return err
		}
		for id, qty := range lineTotals(builtItems) {
			res := tx.
				Model(&models.TicketType{}).
				Where("id = ? AND available_quantity >= ?", id, qty).
				UpdateColumn("available_quantity", gorm.Expr("available_quantity - ?", qty))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// The pre-check under FOR UPDATE makes this
				// unreachable; hitting it means the lock was
				// bypassed somewhere.
				err := fmt.Errorf("inventory underflow on ticket type [%d]", id)
				log.Printf("invariant violation: %s\n", err.Error())
				return err
			}
		}
		order = built
		items = builtItems
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

func (s *GormStore) GetOrders(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where(&models.Order{UserID: userID}).Preload("Items").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormStore) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Where(&models.Order{ID: id}).Preload("Items").First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Order", ID: id}
		}
		return nil, err
	}
	return &order, nil
}

func (s *GormStore) GetOrderItems(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := s.db.Where(&models.OrderItem{OrderID: orderID}).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
