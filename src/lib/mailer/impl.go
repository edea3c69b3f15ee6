package mailer

import (
	"fmt"
	"os"
	"strings"

	"ets/src/lib"
	"ets/src/models"
)

// SendOrderConfirmation emails a receipt after a successful checkout.
// Best-effort: with no SMTP_HOST configured it is a no-op.
func SendOrderConfirmation(user *models.User, order *models.Order, items []models.OrderItem) error {
	if os.Getenv("SMTP_HOST") == "" {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", user.FullName)
	fmt.Fprintf(&b, "Your order %s is confirmed.\n\n", order.Reference.String())
	for _, item := range items {
		fmt.Fprintf(&b, "  %d x ticket type %d at %s each\n", item.Quantity, item.TicketTypeID, item.PricePerItem.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nService fee: %s\n", order.ServiceFee.StringFixed(2))
	fmt.Fprintf(&b, "Total charged: %s\n", order.TotalAmount.StringFixed(2))
	return lib.SendMail(&lib.SendMailInput{
		From:     os.Getenv("MAIL_FROM"),
		FromName: "Ticket Storefront",
		To:       []string{user.Email},
		Subject:  fmt.Sprintf("Your order #%d", order.ID),
		Body:     b.String(),
	})
}
