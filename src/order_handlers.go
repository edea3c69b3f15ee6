package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"

	"ets/src/lib/mailer"
	"ets/src/monitoring"
	"ets/src/store"
	"ets/src/types"
	"ets/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/yeqown/go-qrcode"
)

// orderErrorStatus maps a store failure to an HTTP status and a
// metrics label. Inventory shortfalls are a client problem, not ours.
func orderErrorStatus(err error) (int, string) {
	var nf *store.NotFoundError
	var is *store.InsufficientStockError
	var qc *store.QuantityCapError
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound, "not_found"
	case errors.As(err, &is):
		return http.StatusBadRequest, "insufficient_inventory"
	case errors.As(err, &qc):
		return http.StatusBadRequest, "quantity_cap"
	case errors.Is(err, store.ErrEmptyOrder), errors.Is(err, store.ErrInvalidQuantity):
		return http.StatusBadRequest, "invalid_request"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func orderHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/orders", func(ctx *gin.Context) {
			var body types.CreateOrderRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				monitoring.RecordOrderFailure("invalid_request")
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			lines := make([]store.OrderLine, 0, len(body.Items))
			for _, item := range body.Items {
				lines = append(lines, store.OrderLine{
					TicketTypeID: item.TicketTypeID,
					Quantity:     item.Quantity,
				})
			}
			order, items, err := store.Get().CreateOrder(userId, body.Status, lines)
			if err != nil {
				status, reason := orderErrorStatus(err)
				monitoring.RecordOrderFailure(reason)
				if status == http.StatusInternalServerError {
					log.Printf("Error creating Order for User [%d]: %s\n", userId, err.Error())
					ctx.JSON(status, gin.H{"error": "Failed to create order"})
					return
				}
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ticketCount := 0
			for _, item := range items {
				ticketCount += item.Quantity
			}
			monitoring.RecordOrder(ticketCount)
			if user, err := store.Get().GetUser(userId); err == nil {
				go func() {
					if err := mailer.SendOrderConfirmation(user, order, items); err != nil {
						log.Printf("Error sending confirmation for Order [%d]: %s\n", order.ID, err.Error())
					}
				}()
			}
			ctx.JSON(http.StatusCreated, gin.H{"order": order, "items": items})
		}).
		GET("/orders", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			orders, err := store.Get().GetOrders(userId)
			if err != nil {
				log.Printf("Error retrieving Orders for User [%d]: %s\n", userId, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": orders, "count": len(orders)})
		}).
		GET("/orders/:id/code", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
				return
			}
			userId := ctx.GetUint("id")
			order, err := store.Get().GetOrder(params.ID)
			if err != nil || order.UserID != userId {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			secretKey := os.Getenv("API_QRC_SECRET")
			key, err := hex.DecodeString(secretKey)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate code"})
				return
			}
			payload, _ := json.Marshal(gin.H{"orderId": order.ID, "ref": order.Reference.String()})
			encrypted, err := utils.EncryptMessage(key, string(payload))
			if err != nil {
				log.Printf("Error encrypting code for Order [%d]: %s\n", order.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate code"})
				return
			}
			qrc, err := qrcode.New(encrypted)
			if err != nil {
				log.Printf("Error generating QR for Order [%d]: %s\n", order.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate code"})
				return
			}
			filename := fmt.Sprintf("ordercode_%d.jpeg", order.ID)
			tmpPath := path.Join(os.TempDir(), filename)
			if err := qrc.Save(tmpPath); err != nil {
				log.Printf("Error saving QR for Order [%d]: %s\n", order.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate code"})
				return
			}
			defer os.Remove(tmpPath)
			ctx.FileAttachment(tmpPath, filename)
		})
	return g
}
