package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending         = "pending"
	OrderStatusAwaitingPayment = "awaiting_payment"
	OrderStatusPaid            = "paid"
	OrderStatusProcessing      = "processing"
	OrderStatusShipped         = "shipped"
	OrderStatusOnHold          = "on_hold"
	OrderStatusCancelled       = "cancelled"
)

const (
	PaymentStatusPaid   = "paid"
	PaymentStatusFailed = "failed"
)

// OrderItem is a snapshot of a catalog record at checkout time.
// PriceAtTimeOfOrder never changes after the order is created, whatever
// happens to the catalog price later.
type OrderItem struct {
	RecordID           string          `json:"recordId"`
	Title              string          `json:"title"`
	Artist             string          `json:"artist"`
	Quantity           int             `json:"quantity"`
	PriceAtTimeOfOrder decimal.Decimal `json:"priceAtTimeOfOrder"`
	CoverURL           string          `json:"cover_url,omitempty"`
}

type Order struct {
	ID                      string           `json:"id"`
	OrderNumber             int64            `json:"orderNumber"`
	DistributorID           string           `json:"distributorId"`
	ViewerID                string           `json:"viewerId"`
	CustomerName            string           `json:"customerName"`
	ViewerEmail             string           `json:"viewerEmail"`
	PhoneNumber             string           `json:"phoneNumber,omitempty"`
	ShippingAddress         string           `json:"shippingAddress"`
	BillingAddress          string           `json:"billingAddress,omitempty"`
	Items                   []OrderItem      `json:"items"`
	TotalAmount             decimal.Decimal  `json:"totalAmount"`
	TotalWeight             int              `json:"totalWeight,omitempty"` // grams
	Status                  string           `json:"status"`
	PaymentStatus           string           `json:"paymentStatus,omitempty"`
	PlatformFeeAmount       *decimal.Decimal `json:"platformFeeAmount,omitempty"`
	StripeCheckoutSessionID string           `json:"stripeCheckoutSessionId,omitempty"`
	StripePaymentIntentID   string           `json:"stripePaymentIntentId,omitempty"`
	Carrier                 string           `json:"carrier,omitempty"`
	TrackingNumber          string           `json:"trackingNumber,omitempty"`
	TrackingURL             string           `json:"trackingUrl,omitempty"`
	CreatedAt               time.Time        `json:"createdAt"`
	UpdatedAt               time.Time        `json:"updatedAt"`
	PaidAt                  *time.Time       `json:"paidAt,omitempty"`
	ShippedAt               *time.Time       `json:"shippedAt,omitempty"`
}

// ItemsTotal is the sum of price × quantity over all line items.
func (o Order) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.PriceAtTimeOfOrder.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// centTolerance covers rounding drift of the smallest currency unit.
var centTolerance = decimal.New(1, -2)

// Reconciles reports whether TotalAmount matches the line item sum.
func (o Order) Reconciles() bool {
	return o.TotalAmount.Sub(o.ItemsTotal()).Abs().LessThanOrEqual(centTolerance)
}

type TransitionInput struct {
	Status string `json:"status"`
}

type TrackingInput struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
	TrackingURL    string `json:"trackingUrl,omitempty"`
}
