package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"ets/src/config"
	"ets/src/models"
	"ets/src/store"
	"ets/src/types"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

func respondEvents(ctx *gin.Context, events []models.Event, err error) {
	if err != nil {
		log.Printf("Error retrieving Events: %s\n", err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": events, "count": len(events)})
}

func eventHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/events", func(ctx *gin.Context) {
			events, err := store.Get().GetEvents()
			respondEvents(ctx, events, err)
		}).
		GET("/events/featured", func(ctx *gin.Context) {
			events, err := store.Get().GetFeaturedEvents()
			respondEvents(ctx, events, err)
		}).
		GET("/events/trending", func(ctx *gin.Context) {
			events, err := store.Get().GetTrendingEvents()
			respondEvents(ctx, events, err)
		}).
		GET("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
				return
			}
			event, err := store.Get().GetEvent(params.ID)
			if err != nil {
				var nf *store.NotFoundError
				if errors.As(err, &nf) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
					return
				}
				log.Printf("Error retrieving Event [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": event})
		}).
		GET("/events/:id/tickets", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
				return
			}
			ticketTypes, err := store.Get().GetTicketTypes(params.ID)
			if err != nil {
				log.Printf("Error retrieving TicketTypes for Event [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ticket types"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": ticketTypes})
		}).
		GET("/events/category/:categoryId", func(ctx *gin.Context) {
			var params struct {
				CategoryID uint `uri:"categoryId" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
				return
			}
			events, err := store.Get().GetEventsByCategory(params.CategoryID)
			respondEvents(ctx, events, err)
		}).
		GET("/events/city/:cityId", func(ctx *gin.Context) {
			var params struct {
				CityID uint `uri:"cityId" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid city ID"})
				return
			}
			events, err := store.Get().GetEventsByCity(params.CityID)
			respondEvents(ctx, events, err)
		})
	return g
}

// eventAdminHandlers carries the authenticated creation calls. The
// catalog has no update or delete path: records are immutable once
// created.
func eventAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/events", func(ctx *gin.Context) {
			var body types.CreateEventRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			startDate, err := time.Parse(config.TIME_PARSE_FORMAT, body.StartDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
				return
			}
			var endDate *time.Time
			if body.EndDate != nil {
				parsed, err := time.Parse(config.TIME_PARSE_FORMAT, *body.EndDate)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
					return
				}
				endDate = &parsed
			}
			event := models.Event{
				Title:          body.Title,
				Slug:           slug.Make(body.Title),
				Description:    body.Description,
				ImageURL:       body.ImageURL,
				Venue:          body.Venue,
				Address:        body.Address,
				CityID:         body.CityID,
				CategoryID:     body.CategoryID,
				StartDate:      startDate,
				EndDate:        endDate,
				IsFeatured:     body.IsFeatured,
				IsTrending:     body.IsTrending,
				AgeRestriction: body.AgeRestriction,
				EntryPolicy:    body.EntryPolicy,
			}
			if err := store.Get().CreateEvent(&event); err != nil {
				log.Printf("Error creating Event: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": event.ID})
		}).
		POST("/events/:id/tickets", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
				return
			}
			var body types.CreateTicketTypeRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if _, err := store.Get().GetEvent(params.ID); err != nil {
				var nf *store.NotFoundError
				if errors.As(err, &nf) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
				return
			}
			maxPerOrder := body.MaxPerOrder
			if maxPerOrder == 0 {
				maxPerOrder = 10
			}
			ticketType := models.TicketType{
				EventID:           params.ID,
				Name:              body.Name,
				Description:       body.Description,
				Price:             decimal.NewFromFloat(body.Price).Round(2),
				AvailableQuantity: body.AvailableQuantity,
				MaxPerOrder:       maxPerOrder,
			}
			if err := store.Get().CreateTicketType(&ticketType); err != nil {
				log.Printf("Error creating TicketType: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": ticketType.ID})
		})
	return g
}
