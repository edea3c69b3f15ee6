package boot

import (
	"log"
	"os"

	"ets/src/db"
	"ets/src/models"
	"ets/src/store"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	d := db.GetDb()

	err := d.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.City{},
		&models.Event{},
		&models.TicketType{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return d
}

// InitStore wires the active repository. STORE_DRIVER=memory runs the
// whole storefront without postgres; anything else uses gorm.
func InitStore() store.Store {
	driver := os.Getenv("STORE_DRIVER")
	if driver == "memory" {
		s := store.Use(store.NewMemStore())
		if err := Seed(s); err != nil {
			log.Fatalf("error seeding store: %s", err.Error())
		}
		return s
	}
	s := store.Use(store.NewGormStore(InitDb()))
	if err := Seed(s); err != nil {
		log.Fatalf("error seeding store: %s", err.Error())
	}
	return s
}
