package store

import (
	"ets/src/config"
	"ets/src/models"
	"ets/src/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// buildOrder checks every line of the request against the ticket types
// already loaded (and locked) by the caller, then computes the totals
// from the stored prices. It writes nothing: a failed line rejects the
// whole order before any state changes.
//
// Quantities are summed per ticket type so a request with the same tier
// on two lines cannot slip past the availability check.
func buildOrder(userID uint, status string, lines []OrderLine, ticketTypes map[uint]*models.TicketType) (*models.Order, []models.OrderItem, error) {
	if len(lines) == 0 {
		return nil, nil, ErrEmptyOrder
	}
	subtotal := decimal.Zero
	items := make([]models.OrderItem, 0, len(lines))
	taken := make(map[uint]int, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, nil, ErrInvalidQuantity
		}
		tt, ok := ticketTypes[line.TicketTypeID]
		if !ok {
			return nil, nil, &NotFoundError{Resource: "Ticket type", ID: line.TicketTypeID}
		}
		if tt.MaxPerOrder > 0 && line.Quantity+taken[tt.ID] > tt.MaxPerOrder {
			return nil, nil, &QuantityCapError{TicketType: tt.Name, Max: tt.MaxPerOrder}
		}
		if line.Quantity+taken[tt.ID] > tt.AvailableQuantity {
			return nil, nil, &InsufficientStockError{TicketType: tt.Name, Remaining: tt.AvailableQuantity - taken[tt.ID]}
		}
		taken[tt.ID] += line.Quantity
		subtotal = subtotal.Add(tt.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, models.OrderItem{
			TicketTypeID: tt.ID,
			Quantity:     line.Quantity,
			PricePerItem: tt.Price,
		})
	}
	if status == "" {
		status = string(types.ORDER_COMPLETED)
	}
	fee := subtotal.Mul(config.ServiceFeeRate).Round(2)
	order := &models.Order{
		UserID:      userID,
		Status:      status,
		TotalAmount: subtotal.Add(fee),
		ServiceFee:  fee,
		Reference:   uuid.New(),
	}
	return order, items, nil
}

// lineTotals aggregates the validated items into per-ticket-type
// decrement amounts.
func lineTotals(items []models.OrderItem) map[uint]int {
	totals := make(map[uint]int, len(items))
	for _, item := range items {
		totals[item.TicketTypeID] += item.Quantity
	}
	return totals
}
