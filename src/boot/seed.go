package boot

import (
	"log"
	"time"

	"ets/src/models"
	"ets/src/store"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

func dt(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		log.Fatalf("bad seed timestamp %q: %s", value, err.Error())
	}
	return t
}

func dtp(value string) *time.Time {
	t := dt(value)
	return &t
}

func strp(value string) *string {
	return &value
}

// Seed loads the storefront fixtures. Idempotent: a store that already
// has categories is left alone.
func Seed(s store.Store) error {
	existing, err := s.GetCategories()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Concerts", Icon: "music", IconBgColor: "bg-blue-50"},
		{Name: "Sports", Icon: "basketball-ball", IconBgColor: "bg-orange-50"},
		{Name: "Theater", Icon: "theater-masks", IconBgColor: "bg-purple-50"},
		{Name: "Festivals", Icon: "umbrella-beach", IconBgColor: "bg-green-50"},
	}
	for i := range categories {
		if err := s.CreateCategory(&categories[i]); err != nil {
			return err
		}
	}

	cities := []models.City{
		{Name: "New York"},
		{Name: "Los Angeles"},
		{Name: "Chicago"},
		{Name: "Miami"},
		{Name: "Dallas"},
		{Name: "Seattle"},
	}
	for i := range cities {
		if err := s.CreateCity(&cities[i]); err != nil {
			return err
		}
	}

	events := []models.Event{
		{
			Title:          "The Soundwaves Tour 2023",
			Description:    "Experience the magical Soundwaves Tour with incredible artists and amazing music. This concert brings together some of the best musicians for an unforgettable night.",
			ImageURL:       "https://images.unsplash.com/photo-1501281668745-f7f57925c3b4?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400&q=80",
			Venue:          "Madison Square Garden",
			Address:        "4 Pennsylvania Plaza, New York, NY 10001",
			CityID:         1,
			CategoryID:     1,
			StartDate:      dt("2023-10-15T20:00:00"),
			EndDate:        dtp("2023-10-15T23:00:00"),
			IsFeatured:     true,
			AgeRestriction: strp("All ages welcome"),
			EntryPolicy:    strp("Gates open at 6:00 PM. All attendees must have a valid ticket for entry."),
		},
		{
			Title:          "Electric Dreams Festival",
			Description:    "The ultimate electronic music festival featuring world-famous DJs and incredible light shows. Dance the night away with electrifying beats and amazing visuals.",
			ImageURL:       "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400&q=80",
			Venue:          "Staples Center",
			Address:        "1111 S Figueroa St, Los Angeles, CA 90015",
			CityID:         2,
			CategoryID:     1,
			StartDate:      dt("2023-09-22T21:00:00"),
			EndDate:        dtp("2023-09-23T02:00:00"),
			IsFeatured:     true,
			AgeRestriction: strp("18+"),
			EntryPolicy:    strp("Gates open at 7:00 PM. ID check required at entrance."),
		},
		{
			Title:          "Hamilton: The Musical",
			Description:    "The iconic musical about Alexander Hamilton's extraordinary life story. Experience this revolutionary musical that has changed Broadway forever with its unique blend of hip-hop, jazz, R&B, and Broadway.",
			ImageURL:       "https://images.unsplash.com/photo-1507676184212-d03ab07a01bf?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400&q=80",
			Venue:          "Richard Rodgers Theatre",
			Address:        "226 W 46th St, New York, NY 10036",
			CityID:         1,
			CategoryID:     3,
			StartDate:      dt("2023-11-08T19:30:00"),
			EndDate:        dtp("2023-11-08T22:30:00"),
			IsFeatured:     true,
			AgeRestriction: strp("Recommended for ages 10+"),
			EntryPolicy:    strp("Doors open 1 hour before performance. Latecomers will be seated at an appropriate break."),
		},
		{
			Title:          "Lakers vs. Bulls",
			Description:    "Witness this exciting basketball matchup between two legendary NBA teams. The Lakers face off against the Bulls in what promises to be an action-packed game with thrilling moments.",
			ImageURL:       "https://images.unsplash.com/photo-1504450758481-7338eba7524a?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400&q=80",
			Venue:          "United Center",
			Address:        "1901 W Madison St, Chicago, IL 60612",
			CityID:         3,
			CategoryID:     2,
			StartDate:      dt("2023-10-19T19:00:00"),
			EndDate:        dtp("2023-10-19T22:00:00"),
			IsFeatured:     true,
			AgeRestriction: strp("All ages welcome"),
			EntryPolicy:    strp("Gates open 2 hours before game time. Enhanced security screening in effect."),
		},
		{
			Title:          "Jazz Night: The Quartet",
			Description:    "Experience an intimate evening of jazz with The Quartet, featuring some of the finest jazz musicians on the scene today. Enjoy smooth melodies and improvised solos in a cozy atmosphere.",
			ImageURL:       "https://images.unsplash.com/photo-1511192336575-5a79af67a629?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400&q=80",
			Venue:          "Blue Note",
			Address:        "131 W 3rd St, New York, NY 10012",
			CityID:         1,
			CategoryID:     1,
			StartDate:      dt("2023-08-15T20:00:00"),
			EndDate:        dtp("2023-08-15T23:00:00"),
			IsTrending:     true,
			AgeRestriction: strp("21+"),
			EntryPolicy:    strp("Seating begins at 6:30 PM. Two drink minimum per person."),
		},
		{
			Title:          "Philharmonic Orchestra",
			Description:    "The world-renowned Philharmonic Orchestra presents an evening of classical masterpieces. Conducted by Maestro James Reynolds, the program includes works by Mozart, Beethoven, and Tchaikovsky.",
			ImageURL:       "https://images.unsplash.com/photo-1465847899084-d164df4dedc6?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400&q=80",
			Venue:          "Symphony Hall",
			Address:        "301 Massachusetts Ave, Boston, MA 02115",
			CityID:         3,
			CategoryID:     1,
			StartDate:      dt("2023-09-10T19:00:00"),
			EndDate:        dtp("2023-09-10T21:30:00"),
			IsTrending:     true,
			AgeRestriction: strp("All ages welcome"),
			EntryPolicy:    strp("Doors open at 6:30 PM. No late seating during performances."),
		},
		{
			Title:          "Comedy Night: Dave Phillips",
			Description:    "Laugh until your sides hurt with comedian Dave Phillips, known for his quick wit and hilarious observations. Join us for a night of top-tier comedy entertainment.",
			ImageURL:       "https://images.unsplash.com/photo-1527224538127-2104bb71c51b?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400&q=80",
			Venue:          "The Comedy Store",
			Address:        "8433 Sunset Blvd, Los Angeles, CA 90069",
			CityID:         2,
			CategoryID:     3,
			StartDate:      dt("2023-07-28T21:00:00"),
			EndDate:        dtp("2023-07-28T23:00:00"),
			IsTrending:     true,
			AgeRestriction: strp("18+"),
			EntryPolicy:    strp("Doors open at 7:00 PM. Two item minimum purchase required."),
		},
		{
			Title:          "NFL: Eagles vs. Cowboys",
			Description:    "The rivalry continues as the Philadelphia Eagles face off against the Dallas Cowboys in this exciting NFL game. Feel the energy as two legendary teams compete for victory.",
			ImageURL:       "https://images.unsplash.com/photo-1596727147705-61a532a659bd?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300&q=80",
			Venue:          "Lincoln Financial Field",
			Address:        "1 Lincoln Financial Field Way, Philadelphia, PA 19148",
			CityID:         1,
			CategoryID:     2,
			StartDate:      dt("2023-10-22T13:00:00"),
			EndDate:        dtp("2023-10-22T16:00:00"),
			AgeRestriction: strp("All ages welcome"),
			EntryPolicy:    strp("Gates open 2 hours before kickoff. Clear bag policy in effect."),
		},
		{
			Title:          "Summer Sound Festival 2023",
			Description:    "The ultimate summer music festival with multiple stages and dozens of performers across all genres. Three days of non-stop music, food, art, and amazing experiences.",
			ImageURL:       "https://images.unsplash.com/photo-1429962714451-bb934ecdc4ec?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300&q=80",
			Venue:          "Randall's Island Park",
			Address:        "Randall's Island, New York, NY 10035",
			CityID:         1,
			CategoryID:     4,
			StartDate:      dt("2023-08-18T10:00:00"),
			EndDate:        dtp("2023-08-20T23:00:00"),
			AgeRestriction: strp("All ages. Children under 10 free with paying adult."),
			EntryPolicy:    strp("Gates open at 10:00 AM daily. Re-entry allowed with valid wristband."),
		},
		{
			Title:          "The Phantom of the Opera",
			Description:    "The longest-running show in Broadway history, this unforgettable musical combines spectacular scenery with haunting music. Experience the magic of Andrew Lloyd Webber's masterpiece.",
			ImageURL:       "https://images.unsplash.com/photo-1503095396549-807759245b35?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300&q=80",
			Venue:          "Majestic Theatre",
			Address:        "245 W 44th St, New York, NY 10036",
			CityID:         1,
			CategoryID:     3,
			StartDate:      dt("2023-11-15T19:30:00"),
			EndDate:        dtp("2023-11-15T22:30:00"),
			AgeRestriction: strp("Recommended for ages 8+"),
			EntryPolicy:    strp("Doors open 45 minutes before performance. No late seating until intermission."),
		},
		{
			Title:          "Coldplay: Music of the Spheres World Tour",
			Description:    "Coldplay brings their spectacular Music of the Spheres World Tour to the Rose Bowl! Experience an unforgettable night of music, lights, and special effects as the band performs their greatest hits along with new music from their latest album. The tour has been acclaimed for its groundbreaking sustainability initiatives and interactive elements that create a unique concert experience for fans. Don't miss your chance to see one of the world's biggest bands live in concert!",
			ImageURL:       "https://images.unsplash.com/photo-1540039155733-5bb30b53aa14?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=400&q=80",
			Venue:          "Rose Bowl Stadium",
			Address:        "1001 Rose Bowl Dr, Pasadena, CA 91103",
			CityID:         2,
			CategoryID:     1,
			StartDate:      dt("2023-11-12T20:00:00"),
			EndDate:        dtp("2023-11-12T23:30:00"),
			IsFeatured:     true,
			IsTrending:     true,
			AgeRestriction: strp("All ages welcome. Children under 2 years do not require a ticket."),
			EntryPolicy:    strp("Gates open at 6:00 PM. All attendees must have a valid ticket for entry."),
		},
	}
	for i := range events {
		events[i].Slug = slug.Make(events[i].Title)
		if err := s.CreateEvent(&events[i]); err != nil {
			return err
		}
	}

	price := func(v string) decimal.Decimal {
		return decimal.RequireFromString(v)
	}
	ticketTypes := []models.TicketType{
		{EventID: 11, Name: "General Admission", Description: "Standing room only, first come first served", Price: price("99.00"), AvailableQuantity: 1000, MaxPerOrder: 8},
		{EventID: 11, Name: "Premium Seats", Description: "Reserved seating, Best views, Exclusive entrance", Price: price("179.00"), AvailableQuantity: 500, MaxPerOrder: 6},
		{EventID: 11, Name: "VIP Package", Description: "Front row, Meet & greet, Exclusive merchandise", Price: price("349.00"), AvailableQuantity: 100, MaxPerOrder: 4},
		{EventID: 1, Name: "Standard", Description: "Regular seating with good views", Price: price("59.00"), AvailableQuantity: 500, MaxPerOrder: 6},
		{EventID: 1, Name: "Premium", Description: "Better seating with excellent views", Price: price("89.00"), AvailableQuantity: 300, MaxPerOrder: 4},
		{EventID: 2, Name: "General Entry", Description: "Basic festival entry", Price: price("75.00"), AvailableQuantity: 2000, MaxPerOrder: 8},
		{EventID: 2, Name: "VIP Entry", Description: "VIP area access, express entry, premium viewing areas", Price: price("150.00"), AvailableQuantity: 500, MaxPerOrder: 4},
		{EventID: 3, Name: "Balcony", Description: "Upper level seating", Price: price("120.00"), AvailableQuantity: 200, MaxPerOrder: 6},
		{EventID: 3, Name: "Orchestra", Description: "Main floor seating", Price: price("220.00"), AvailableQuantity: 300, MaxPerOrder: 4},
		{EventID: 4, Name: "Upper Level", Description: "Upper section seating", Price: price("85.00"), AvailableQuantity: 800, MaxPerOrder: 8},
		{EventID: 4, Name: "Lower Level", Description: "Lower section seating with better views", Price: price("150.00"), AvailableQuantity: 400, MaxPerOrder: 6},
		{EventID: 4, Name: "Courtside", Description: "Premium courtside seating", Price: price("450.00"), AvailableQuantity: 50, MaxPerOrder: 2},
	}
	for i := range ticketTypes {
		if err := s.CreateTicketType(&ticketTypes[i]); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d categories, %d cities, %d events, %d ticket types\n", len(categories), len(cities), len(events), len(ticketTypes))
	return nil
}
