package internal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/waxline/waxmart/internal/model"
)

// ReconstructTimeline infers the lifecycle history of an order from its
// current snapshot. The system keeps no event log, so every milestone is
// derived from the fields present on the order and its distributor: the same
// snapshot always yields the same list in the same order. Steps whose
// condition does not hold are skipped, not padded.
func ReconstructTimeline(order model.Order, distributor model.Distributor) []model.TimelineEvent {
	events := make([]model.TimelineEvent, 0, 11)

	createdAt := order.CreatedAt
	paid := order.PaymentStatus == model.PaymentStatusPaid

	events = append(events, model.TimelineEvent{
		ID:          "order_placed",
		Title:       "Order placed",
		Description: fmt.Sprintf("Order #%d placed by %s", order.OrderNumber, order.CustomerName),
		Timestamp:   &createdAt,
		Status:      model.EventStatusCompleted,
	})

	if order.StripeCheckoutSessionID != "" {
		events = append(events, model.TimelineEvent{
			ID:          "checkout_session_created",
			Title:       "Checkout session created",
			Description: "Stripe checkout session opened for payment",
			Timestamp:   &createdAt,
			Status:      model.EventStatusCompleted,
		})
	}

	switch {
	case paid:
		events = append(events, model.TimelineEvent{
			ID:          "payment_successful",
			Title:       "Payment successful",
			Description: "Payment confirmed by the payment provider",
			Timestamp:   order.PaidAt,
			Status:      model.EventStatusCompleted,
		})
	case order.PaymentStatus == model.PaymentStatusFailed:
		events = append(events, model.TimelineEvent{
			ID:          "payment_failed",
			Title:       "Payment failed",
			Description: "The payment attempt was declined",
			Status:      model.EventStatusFailed,
		})
	case order.StripeCheckoutSessionID != "":
		events = append(events, model.TimelineEvent{
			ID:          "awaiting_payment",
			Title:       "Awaiting payment",
			Description: "Waiting for the buyer to complete checkout",
			Status:      model.EventStatusAwaiting,
		})
	}

	fee := decimal.Zero
	if order.PlatformFeeAmount != nil {
		fee = *order.PlatformFeeAmount
	}

	if paid && order.PlatformFeeAmount != nil {
		events = append(events, model.TimelineEvent{
			ID:          "platform_fee_collected",
			Title:       "Platform fee collected",
			Description: "Platform fee withheld from the order total",
			Timestamp:   order.PaidAt,
			Status:      model.EventStatusCompleted,
			Detail:      fee.StringFixed(2),
		})
	}

	if paid {
		payout := order.TotalAmount.Sub(fee)
		payoutEvent := model.TimelineEvent{
			ID:          "distributor_payout",
			Title:       "Distributor payout",
			Description: fmt.Sprintf("Payout to %s", distributor.Name),
			Status:      model.EventStatusAwaiting,
			Detail:      payout.StringFixed(2),
		}
		if distributor.PayoutEnabled() {
			payoutEvent.Status = model.EventStatusCompleted
			payoutEvent.Timestamp = order.PaidAt
		}
		events = append(events, payoutEvent)

		events = append(events, model.TimelineEvent{
			ID:          "customer_confirmation_email",
			Title:       "Customer confirmation email",
			Description: fmt.Sprintf("Order confirmation sent to %s", order.ViewerEmail),
			Timestamp:   order.PaidAt,
			Status:      model.EventStatusCompleted,
		})

		events = append(events, model.TimelineEvent{
			ID:          "distributor_notification",
			Title:       "Distributor notification",
			Description: fmt.Sprintf("New order notification sent to %s", distributor.ContactEmail),
			Timestamp:   order.PaidAt,
			Status:      model.EventStatusCompleted,
		})
	}

	switch {
	case order.Status == model.OrderStatusProcessing || order.Status == model.OrderStatusShipped:
		updatedAt := order.UpdatedAt
		events = append(events, model.TimelineEvent{
			ID:          "processing",
			Title:       "Processing",
			Description: "Order picked up for fulfilment",
			Timestamp:   &updatedAt,
			Status:      model.EventStatusCompleted,
		})
	case paid && order.Status == model.OrderStatusPaid:
		events = append(events, model.TimelineEvent{
			ID:          "processing",
			Title:       "Awaiting processing",
			Description: "Paid order waiting to be picked up for fulfilment",
			Status:      model.EventStatusAwaiting,
		})
	}

	if order.Status == model.OrderStatusShipped {
		events = append(events, model.TimelineEvent{
			ID:          "shipped",
			Title:       "Shipped",
			Description: shippedDescription(order),
			Timestamp:   order.ShippedAt,
			Status:      model.EventStatusCompleted,
		})

		emailEvent := model.TimelineEvent{
			ID:          "shipping_email",
			Title:       "Shipping confirmation email",
			Description: fmt.Sprintf("Tracking details sent to %s", order.ViewerEmail),
			Status:      model.EventStatusPending,
		}
		if order.TrackingNumber != "" {
			emailEvent.Status = model.EventStatusCompleted
			emailEvent.Timestamp = order.ShippedAt
		}
		events = append(events, emailEvent)
	} else if paid && order.Status != model.OrderStatusCancelled {
		events = append(events, model.TimelineEvent{
			ID:          "shipped",
			Title:       "Shipment pending",
			Description: "Order not yet handed to a carrier",
			Status:      model.EventStatusPending,
		})
	}

	if order.Status == model.OrderStatusCancelled {
		updatedAt := order.UpdatedAt
		events = append(events, model.TimelineEvent{
			ID:          "cancelled",
			Title:       "Cancelled",
			Description: "Order was cancelled",
			Timestamp:   &updatedAt,
			Status:      model.EventStatusFailed,
		})
	}

	return events
}

func shippedDescription(order model.Order) string {
	if order.Carrier != "" && order.TrackingNumber != "" {
		return fmt.Sprintf("Shipped via %s, tracking %s", order.Carrier, order.TrackingNumber)
	}
	return "Order handed to the carrier"
}
