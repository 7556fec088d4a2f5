package model

import "github.com/shopspring/decimal"

// Invoice is the data shape consumed by the invoice renderer: the order, the
// selling distributor and the settlement split.
type Invoice struct {
	Order             Order           `json:"order"`
	Distributor       Distributor     `json:"distributor"`
	PlatformFeeAmount decimal.Decimal `json:"platformFeeAmount"`
	DistributorPayout decimal.Decimal `json:"distributorPayout"`
	PayoutTransferred bool            `json:"payoutTransferred"`
}

// PackingSlipLine pairs a line item with its storage location from the
// inventory system, when one is known.
type PackingSlipLine struct {
	Item            OrderItem `json:"item"`
	StorageLocation string    `json:"storageLocation,omitempty"`
}

type PackingSlip struct {
	OrderNumber     int64             `json:"orderNumber"`
	CustomerName    string            `json:"customerName"`
	ShippingAddress string            `json:"shippingAddress"`
	TotalWeight     int               `json:"totalWeight,omitempty"`
	Lines           []PackingSlipLine `json:"lines"`
}

// DashboardStats is a fold over a distributor's orders for the admin
// dashboard: headline counts and money sums, no per-order detail.
type DashboardStats struct {
	OrdersByStatus map[string]int  `json:"ordersByStatus"`
	TotalOrders    int             `json:"totalOrders"`
	PaidRevenue    decimal.Decimal `json:"paidRevenue"`
	CollectedFees  decimal.Decimal `json:"collectedFees"`
	PendingPayout  decimal.Decimal `json:"pendingPayout"`
}
