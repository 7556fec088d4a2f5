package internal

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/waxline/waxmart/internal/model"
	"github.com/waxline/waxmart/pkg/metrics"
)

type Handlers struct {
	Service   IService
	jwtSecret string
	logger    *zap.SugaredLogger
}

func NewHandlers(service IService, jwtSecret string, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: service, jwtSecret: jwtSecret, logger: logger}
}

func (h *Handlers) Transition(c *fiber.Ctx) error {
	actor, err := h.actorFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var i model.TransitionInput
	if err = c.BodyParser(&i); err != nil || i.Status == "" {
		h.logger.Errorf("Error on transition request: bad body: %v", err)
		return c.SendStatus(fiber.StatusBadRequest)
	}

	order, err := h.Service.Transition(c.Context(), c.Params("id"), i.Status, actor)
	if err != nil {
		metrics.RecordTransition(i.Status, "error")
		return h.sendError(c, "Error on transition request", err)
	}

	metrics.RecordTransition(i.Status, "ok")
	if i.Status == model.OrderStatusPaid && order.PlatformFeeAmount != nil {
		fee, _ := order.PlatformFeeAmount.Float64()
		metrics.RecordPlatformFee(fee)
	}
	return c.Status(fiber.StatusOK).JSON(order)
}

func (h *Handlers) UpdateTracking(c *fiber.Ctx) error {
	actor, err := h.actorFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var i model.TrackingInput
	if err = c.BodyParser(&i); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	order, err := h.Service.UpdateTracking(c.Context(), c.Params("id"), i, actor)
	if err != nil {
		return h.sendError(c, "Error on tracking update request", err)
	}

	return c.Status(fiber.StatusOK).JSON(order)
}

func (h *Handlers) GetOrder(c *fiber.Ctx) error {
	actor, err := h.actorFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	order, err := h.Service.GetOrder(c.Context(), c.Params("id"), actor)
	if err != nil {
		return h.sendError(c, "Error on order request", err)
	}

	return c.Status(fiber.StatusOK).JSON(order)
}

func (h *Handlers) GetOrders(c *fiber.Ctx) error {
	actor, err := h.actorFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	orders, err := h.Service.GetOrders(c.Context(), actor)
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return h.sendError(c, "Error on orders request", err)
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *Handlers) GetTimeline(c *fiber.Ctx) error {
	actor, err := h.actorFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	events, err := h.Service.Timeline(c.Context(), c.Params("id"), actor)
	if err != nil {
		return h.sendError(c, "Error on timeline request", err)
	}

	metrics.TimelineReconstructTotal.Inc()
	return c.Status(fiber.StatusOK).JSON(events)
}

func (h *Handlers) GetInvoice(c *fiber.Ctx) error {
	actor, err := h.actorFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	invoice, err := h.Service.Invoice(c.Context(), c.Params("id"), actor)
	if err != nil {
		return h.sendError(c, "Error on invoice request", err)
	}

	return c.Status(fiber.StatusOK).JSON(invoice)
}

func (h *Handlers) GetPackingSlip(c *fiber.Ctx) error {
	actor, err := h.actorFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	slip, err := h.Service.PackingSlip(c.Context(), c.Params("id"), actor)
	if err != nil {
		return h.sendError(c, "Error on packing slip request", err)
	}

	return c.Status(fiber.StatusOK).JSON(slip)
}

func (h *Handlers) GetDashboard(c *fiber.Ctx) error {
	actor, err := h.actorFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	stats, err := h.Service.Dashboard(c.Context(), actor)
	if err != nil {
		return h.sendError(c, "Error on dashboard request", err)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *Handlers) sendError(c *fiber.Ctx, message string, err error) error {
	h.logger.Errorf("%s: %s", message, err.Error())

	switch {
	case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrDistributorNotFound):
		return c.SendStatus(fiber.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		return c.SendStatus(fiber.StatusForbidden)
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrTransitionConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": message, "data": err.Error()})
	case errors.Is(err, ErrValidation):
		return c.SendStatus(fiber.StatusUnprocessableEntity)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": message, "data": err.Error()})
	}
}

// actorFromToken decodes the calling operator from the session token cookie
// issued by the platform's auth layer.
func (h *Handlers) actorFromToken(c *fiber.Ctx) (model.Actor, error) {
	tokenString := c.Cookies("token")
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.jwtSecret), nil
	})
	if err != nil {
		return model.Actor{}, err
	}

	actor := model.Actor{}
	if v, ok := claims["sub"].(string); ok {
		actor.ID = v
	}
	if v, ok := claims["role"].(string); ok {
		actor.Role = v
	}
	if v, ok := claims["distributor_id"].(string); ok {
		actor.DistributorID = v
	}
	if v, ok := claims["can_manage_orders"].(bool); ok {
		actor.CanManageOrders = v
	}

	if actor.Role == "" {
		return model.Actor{}, ErrForbidden
	}
	return actor, nil
}
