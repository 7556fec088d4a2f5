package internal

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/waxline/waxmart/internal/model"
)

// allowedTransitions is the order lifecycle graph. The key is the current
// status, the value the set of statuses reachable from it. shipped and
// cancelled are terminal. on_hold has no defined inbound edge here: it is a
// manual-intervention state an order can only be observed in, and cancelled
// out of.
var allowedTransitions = map[string][]string{
	model.OrderStatusPending:         {model.OrderStatusPaid, model.OrderStatusCancelled},
	model.OrderStatusAwaitingPayment: {model.OrderStatusPaid, model.OrderStatusCancelled},
	model.OrderStatusPaid:            {model.OrderStatusProcessing, model.OrderStatusCancelled},
	model.OrderStatusProcessing:      {model.OrderStatusShipped, model.OrderStatusCancelled},
	model.OrderStatusOnHold:          {model.OrderStatusCancelled},
	model.OrderStatusShipped:         {},
	model.OrderStatusCancelled:       {},
}

// CanTransition checks if the edge from one status to another exists in the
// lifecycle graph. Self-transitions and anything out of a terminal status do
// not.
func CanTransition(from, to string) bool {
	allowed, exists := allowedTransitions[from]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IInventory is the external inventory system consulted for per-item storage
// locations on packing slips. Platforms without inventory data plug in
// NoInventory.
type IInventory interface {
	StorageLocation(ctx context.Context, recordID string) (string, error)
}

type NoInventory struct{}

func (NoInventory) StorageLocation(context.Context, string) (string, error) { return "", nil }

type IService interface {
	Transition(ctx context.Context, orderID, requestedStatus string, actor model.Actor) (model.Order, error)
	UpdateTracking(ctx context.Context, orderID string, in model.TrackingInput, actor model.Actor) (model.Order, error)
	GetOrder(ctx context.Context, orderID string, actor model.Actor) (model.Order, error)
	GetOrders(ctx context.Context, actor model.Actor) ([]model.Order, error)
	Timeline(ctx context.Context, orderID string, actor model.Actor) ([]model.TimelineEvent, error)
	Invoice(ctx context.Context, orderID string, actor model.Actor) (model.Invoice, error)
	PackingSlip(ctx context.Context, orderID string, actor model.Actor) (model.PackingSlip, error)
	Dashboard(ctx context.Context, actor model.Actor) (model.DashboardStats, error)
}

func NewService(repository IRepository, inventory IInventory, calc *SettlementCalculator, logger *zap.SugaredLogger) *Service {
	return &Service{Repository: repository, Inventory: inventory, calc: calc, logger: logger}
}

type Service struct {
	Repository IRepository
	Inventory  IInventory
	calc       *SettlementCalculator
	logger     *zap.SugaredLogger
}

// Transition moves an order along one lifecycle edge on behalf of an actor.
// It mutates nothing on any failure path: the order is loaded, validated in
// memory and persisted exactly once, with the write conditional on the
// status observed at read time so that concurrent operators cannot stack
// conflicting transitions.
func (s Service) Transition(ctx context.Context, orderID, requestedStatus string, actor model.Actor) (model.Order, error) {
	order, err := s.Repository.GetOrderByID(ctx, orderID)
	if err != nil {
		return model.Order{}, err
	}

	if !actor.CanSee(order) {
		return model.Order{}, ErrOrderNotFound
	}

	if !Allows(actor, requestedStatus) {
		return model.Order{}, ErrForbidden
	}

	if !CanTransition(order.Status, requestedStatus) {
		return model.Order{}, ErrInvalidTransition
	}

	if !order.Reconciles() {
		return model.Order{}, ErrValidation
	}

	readStatus := order.Status
	now := time.Now().UTC()

	order.Status = requestedStatus
	order.UpdatedAt = now

	switch requestedStatus {
	case model.OrderStatusPaid:
		if order.PlatformFeeAmount == nil {
			settlement, err := s.calc.ComputeSettlement(order.TotalAmount)
			if err != nil {
				return model.Order{}, err
			}
			fee := settlement.PlatformFeeAmount
			order.PlatformFeeAmount = &fee
			order.PaidAt = &now
		}
	case model.OrderStatusShipped:
		if order.ShippedAt == nil {
			order.ShippedAt = &now
		}
	}

	err = s.Repository.UpdateOrder(ctx, order, readStatus)
	if err != nil {
		return model.Order{}, err
	}

	s.logger.Infow("order transitioned",
		"order", order.ID, "from", readStatus, "to", requestedStatus, "actor", actor.ID)
	return order, nil
}

// UpdateTracking sets carrier/tracking fields on a shipped order. Fulfillment
// tracking is the one mutation still open after the terminal shipped status;
// the status itself never changes here.
func (s Service) UpdateTracking(ctx context.Context, orderID string, in model.TrackingInput, actor model.Actor) (model.Order, error) {
	order, err := s.Repository.GetOrderByID(ctx, orderID)
	if err != nil {
		return model.Order{}, err
	}

	if !actor.CanSee(order) {
		return model.Order{}, ErrOrderNotFound
	}

	if !Allows(actor, model.OrderStatusShipped) {
		return model.Order{}, ErrForbidden
	}

	if order.Status != model.OrderStatusShipped {
		return model.Order{}, ErrInvalidTransition
	}

	if in.TrackingNumber == "" {
		return model.Order{}, ErrValidation
	}

	order.Carrier = in.Carrier
	order.TrackingNumber = in.TrackingNumber
	order.TrackingURL = in.TrackingURL
	order.UpdatedAt = time.Now().UTC()

	err = s.Repository.UpdateOrder(ctx, order, model.OrderStatusShipped)
	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (s Service) GetOrder(ctx context.Context, orderID string, actor model.Actor) (model.Order, error) {
	order, err := s.Repository.GetOrderByID(ctx, orderID)
	if err != nil {
		return model.Order{}, err
	}

	if !actor.CanSee(order) {
		return model.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (s Service) GetOrders(ctx context.Context, actor model.Actor) ([]model.Order, error) {
	orders, err := s.Repository.GetOrders(ctx, actor.DistributorID)
	if err != nil {
		return nil, err
	}

	// viewers only see their own purchase history, never the whole book
	if actor.Role == model.RoleViewer {
		own := orders[:0]
		for _, o := range orders {
			if o.ViewerID == actor.ID {
				own = append(own, o)
			}
		}
		orders = own
	}

	if len(orders) == 0 {
		return nil, ErrNoRecords
	}
	return orders, nil
}

// Timeline reconstructs the lifecycle history of an order from its current
// snapshot. Read-only.
func (s Service) Timeline(ctx context.Context, orderID string, actor model.Actor) ([]model.TimelineEvent, error) {
	order, err := s.GetOrder(ctx, orderID, actor)
	if err != nil {
		return nil, err
	}

	distributor, err := s.Repository.GetDistributorByID(ctx, order.DistributorID)
	if err != nil {
		return nil, err
	}

	return ReconstructTimeline(order, distributor), nil
}

func (s Service) Invoice(ctx context.Context, orderID string, actor model.Actor) (model.Invoice, error) {
	order, err := s.GetOrder(ctx, orderID, actor)
	if err != nil {
		return model.Invoice{}, err
	}

	distributor, err := s.Repository.GetDistributorByID(ctx, order.DistributorID)
	if err != nil {
		return model.Invoice{}, err
	}

	fee := decimal.Zero
	if order.PlatformFeeAmount != nil {
		fee = *order.PlatformFeeAmount
	}

	return model.Invoice{
		Order:             order,
		Distributor:       distributor,
		PlatformFeeAmount: fee,
		DistributorPayout: order.TotalAmount.Sub(fee),
		PayoutTransferred: order.PaymentStatus == model.PaymentStatusPaid && distributor.PayoutEnabled(),
	}, nil
}

func (s Service) PackingSlip(ctx context.Context, orderID string, actor model.Actor) (model.PackingSlip, error) {
	order, err := s.GetOrder(ctx, orderID, actor)
	if err != nil {
		return model.PackingSlip{}, err
	}

	lines := make([]model.PackingSlipLine, 0, len(order.Items))
	for _, item := range order.Items {
		location, err := s.Inventory.StorageLocation(ctx, item.RecordID)
		if err != nil {
			return model.PackingSlip{}, err
		}
		lines = append(lines, model.PackingSlipLine{Item: item, StorageLocation: location})
	}

	return model.PackingSlip{
		OrderNumber:     order.OrderNumber,
		CustomerName:    order.CustomerName,
		ShippingAddress: order.ShippingAddress,
		TotalWeight:     order.TotalWeight,
		Lines:           lines,
	}, nil
}

// Dashboard folds the distributor's orders into headline numbers: status
// counts, paid revenue, collected fees and the payout not yet transferable.
func (s Service) Dashboard(ctx context.Context, actor model.Actor) (model.DashboardStats, error) {
	if actor.Role == model.RoleViewer {
		return model.DashboardStats{}, ErrForbidden
	}

	orders, err := s.Repository.GetOrders(ctx, actor.DistributorID)
	if err != nil {
		return model.DashboardStats{}, err
	}

	stats := model.DashboardStats{
		OrdersByStatus: make(map[string]int),
		PaidRevenue:    decimal.Zero,
		CollectedFees:  decimal.Zero,
		PendingPayout:  decimal.Zero,
	}

	distributor, err := s.Repository.GetDistributorByID(ctx, actor.DistributorID)
	if err != nil {
		return model.DashboardStats{}, err
	}

	for _, order := range orders {
		stats.OrdersByStatus[order.Status]++
		stats.TotalOrders++

		if order.PaymentStatus != model.PaymentStatusPaid {
			continue
		}

		stats.PaidRevenue = stats.PaidRevenue.Add(order.TotalAmount)

		fee := decimal.Zero
		if order.PlatformFeeAmount != nil {
			fee = *order.PlatformFeeAmount
		}
		stats.CollectedFees = stats.CollectedFees.Add(fee)

		if !distributor.PayoutEnabled() {
			stats.PendingPayout = stats.PendingPayout.Add(order.TotalAmount.Sub(fee))
		}
	}

	return stats, nil
}
