// Package api exposes the menu and order repositories over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	_ "bistro/docs"
	"bistro/pkg/logger"
	"bistro/pkg/menu"
	"bistro/pkg/order"
)

// Handlers serves the REST API on top of the two repositories.
type Handlers struct {
	log    *logger.Logger
	menu   menu.Repository
	orders order.Repository
	tracer trace.Tracer
}

// New returns handlers backed by the given repositories. A nil tracer
// disables span creation.
func New(log *logger.Logger, dishes menu.Repository, orders order.Repository, tracer trace.Tracer) *Handlers {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &Handlers{log: log, menu: dishes, orders: orders, tracer: tracer}
}

// Routes builds the router.
func (h *Handlers) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(h.traceMiddleware, h.logMiddleware)

	// Subrouters hide method mismatches from MethodNotAllowedHandler, so routes stay flat.
	r.HandleFunc("/dishes", h.listDishesHandler).Methods(http.MethodGet)
	r.HandleFunc("/dishes", h.createDishHandler).Methods(http.MethodPost)
	r.HandleFunc("/dishes/{id}", h.getDishHandler).Methods(http.MethodGet)
	r.HandleFunc("/dishes/{id}", h.updateDishHandler).Methods(http.MethodPatch)
	r.HandleFunc("/dishes/{id}", h.deleteDishHandler).Methods(http.MethodDelete)

	r.HandleFunc("/orders", h.listOrdersHandler).Methods(http.MethodGet)
	r.HandleFunc("/orders", h.createOrderHandler).Methods(http.MethodPost)
	r.HandleFunc("/orders/{id}", h.getOrderHandler).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id}", h.updateOrderHandler).Methods(http.MethodPatch)
	r.HandleFunc("/orders/{id}", h.deleteOrderHandler).Methods(http.MethodDelete)
	r.HandleFunc("/orders/{id}/dishes", h.orderDishesHandler).Methods(http.MethodGet)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonError(w, http.StatusNotFound, errNoRoute)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonError(w, http.StatusMethodNotAllowed, errMethod)
	})
	return r
}

// fail writes the response for err and logs unexpected failures.
func (h *Handlers) fail(ctx context.Context, w http.ResponseWriter, op string, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		h.log.Error(ctx, op, "error", err)
	}
	jsonError(w, code, err)
}
