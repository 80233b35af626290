package api

import (
	"net/http"

	"github.com/google/uuid"

	"bistro/pkg/order"
	"bistro/pkg/otel"
)

// ordersResponse is the full order list.
type ordersResponse struct {
	Orders []order.Order `json:"orders"`
}

type createOrderRequest struct {
	TableNumber *int        `json:"table_number"`
	Dishes      []uuid.UUID `json:"dishes"`
}

// updateOrderRequest is the body of PATCH /orders/{id}. Both fields are required.
type updateOrderRequest struct {
	Status   *bool       `json:"status"`
	DishesID []uuid.UUID `json:"dishes_id"`
}

// listOrdersHandler lists orders.
// @Summary List orders
// @Description Responds 404 when there are no orders.
// @Produce json
// @Success 200 {object} ordersResponse
// @Failure 404 {object} errorResponse
// @Router /orders [get]
func (h *Handlers) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listOrdersHandler")
	defer span.End()

	orders, err := h.orders.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list orders", err)
		return
	}
	jsonResponse(w, http.StatusOK, ordersResponse{Orders: orders})
}

// getOrderHandler retrieves an order by ID.
// @Summary Get order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} order.Order
// @Failure 404 {object} errorResponse
// @Router /orders/{id} [get]
func (h *Handlers) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getOrderHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "get order", err)
		return
	}
	o, err := h.orders.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get order", err)
		return
	}
	jsonResponse(w, http.StatusOK, o)
}

// orderDishesHandler returns the menu records an order refers to.
// @Summary Get order dishes
// @Description Dishes removed from the menu since the order was placed are left out.
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {array} menu.Dish
// @Failure 404 {object} errorResponse
// @Router /orders/{id}/dishes [get]
func (h *Handlers) orderDishesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "orderDishesHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "order dishes", err)
		return
	}
	dishes, missing, err := order.ResolveDishes(ctx, h.orders, h.menu, id)
	if err != nil {
		h.fail(ctx, w, "order dishes", err)
		return
	}
	if len(missing) > 0 {
		h.log.Warn(ctx, "order refers to dishes no longer on the menu", "order_id", id.String(), "missing", missing)
	}
	jsonResponse(w, http.StatusOK, dishes)
}

// createOrderHandler places a new order. It always starts open.
// @Summary Create order
// @Accept json
// @Produce json
// @Param order body order.Input true "Order"
// @Success 200 {object} ordersResponse
// @Failure 400 {object} errorResponse
// @Router /orders [post]
func (h *Handlers) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrderHandler")
	defer span.End()

	var req createOrderRequest
	if err := decode(r, &req); err != nil {
		h.fail(ctx, w, "create order", err)
		return
	}
	if req.TableNumber == nil {
		h.fail(ctx, w, "create order", badRequest("table_number is required"))
		return
	}
	if err := checkDishIDs("dishes", req.Dishes); err != nil {
		h.fail(ctx, w, "create order", err)
		return
	}
	o, err := h.orders.Create(ctx, order.Input{TableNumber: *req.TableNumber, Dishes: req.Dishes})
	if err != nil {
		h.fail(ctx, w, "create order", err)
		return
	}
	h.log.Info(ctx, "order created", "order_id", o.ID.String(), "table_number", o.TableNumber, "dishes", len(o.Dishes))

	orders, err := h.orders.List(ctx)
	if err != nil {
		h.fail(ctx, w, "create order", err)
		return
	}
	jsonResponse(w, http.StatusOK, ordersResponse{Orders: orders})
}

// updateOrderHandler replaces the status and dish list of an order.
// @Summary Update order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param body body updateOrderRequest true "New status and dishes"
// @Success 200 {object} order.Order
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /orders/{id} [patch]
func (h *Handlers) updateOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateOrderHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "update order", err)
		return
	}
	var req updateOrderRequest
	if err := decode(r, &req); err != nil {
		h.fail(ctx, w, "update order", err)
		return
	}
	if req.Status == nil || req.DishesID == nil {
		h.fail(ctx, w, "update order", badRequest("status and dishes_id are required"))
		return
	}
	if err := checkDishIDs("dishes_id", req.DishesID); err != nil {
		h.fail(ctx, w, "update order", err)
		return
	}
	o, err := h.orders.Update(ctx, id, order.Update{Status: *req.Status, Dishes: req.DishesID})
	if err != nil {
		h.fail(ctx, w, "update order", err)
		return
	}
	h.log.Info(ctx, "order updated", "order_id", o.ID.String(), "status", o.Status)
	jsonResponse(w, http.StatusOK, o)
}

// deleteOrderHandler removes an order.
// @Summary Delete order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {string} string "Deleted order ID"
// @Failure 404 {object} errorResponse
// @Router /orders/{id} [delete]
func (h *Handlers) deleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteOrderHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "delete order", err)
		return
	}
	if err := h.orders.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete order", err)
		return
	}
	h.log.Info(ctx, "order deleted", "order_id", id.String())
	jsonResponse(w, http.StatusOK, id)
}
