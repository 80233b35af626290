package api

import (
	"net/http"
	"strconv"

	"bistro/pkg/menu"
	"bistro/pkg/otel"
)

// menuResponse is the full menu, returned for staff views and after a dish is added.
type menuResponse struct {
	Dishes []menu.Dish `json:"dishes"`
}

// updateDishRequest is the body of PATCH /dishes/{id}.
type updateDishRequest struct {
	Quantity *int `json:"quantity"`
}

// listDishesHandler lists the menu.
// @Summary List dishes
// @Description With a non-zero token the whole menu is returned wrapped in {"dishes": [...]}; otherwise a bare list of the dishes still in stock.
// @Produce json
// @Param token query int false "Staff token, non-zero for the full menu"
// @Success 200 {array} menu.Dish
// @Failure 400 {object} errorResponse
// @Router /dishes [get]
func (h *Handlers) listDishesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listDishesHandler")
	defer span.End()

	token := 0
	if raw := r.URL.Query().Get("token"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(ctx, w, "list dishes", badRequest("token must be an integer"))
			return
		}
		token = v
	}

	if token != 0 {
		dishes, err := h.menu.List(ctx, false)
		if err != nil {
			h.fail(ctx, w, "list dishes", err)
			return
		}
		jsonResponse(w, http.StatusOK, menuResponse{Dishes: dishes})
		return
	}

	dishes, err := h.menu.List(ctx, true)
	if err != nil {
		h.fail(ctx, w, "list dishes", err)
		return
	}
	jsonResponse(w, http.StatusOK, dishes)
}

// getDishHandler retrieves a dish by ID.
// @Summary Get dish
// @Produce json
// @Param id path string true "Dish ID"
// @Success 200 {object} menu.Dish
// @Failure 404 {object} errorResponse
// @Router /dishes/{id} [get]
func (h *Handlers) getDishHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getDishHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "get dish", err)
		return
	}
	d, err := h.menu.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get dish", err)
		return
	}
	jsonResponse(w, http.StatusOK, d)
}

// createDishHandler adds a dish to the menu.
// @Summary Create dish
// @Description The identifier is generated by the server.
// @Accept json
// @Produce json
// @Param dish body menu.DishInput true "Dish"
// @Success 200 {object} menuResponse
// @Failure 400 {object} errorResponse
// @Router /dishes [post]
func (h *Handlers) createDishHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createDishHandler")
	defer span.End()

	var in menu.DishInput
	if err := decode(r, &in); err != nil {
		h.fail(ctx, w, "create dish", err)
		return
	}
	if err := in.Validate(); err != nil {
		h.fail(ctx, w, "create dish", badRequest("%v", err))
		return
	}
	d, err := h.menu.Create(ctx, in)
	if err != nil {
		h.fail(ctx, w, "create dish", err)
		return
	}
	h.log.Info(ctx, "dish created", "dish_id", d.ID.String(), "name", d.Name)

	dishes, err := h.menu.List(ctx, false)
	if err != nil {
		h.fail(ctx, w, "create dish", err)
		return
	}
	jsonResponse(w, http.StatusOK, menuResponse{Dishes: dishes})
}

// updateDishHandler sets the remaining stock of a dish.
// @Summary Update dish quantity
// @Accept json
// @Produce json
// @Param id path string true "Dish ID"
// @Param body body updateDishRequest true "New quantity"
// @Success 200 {object} menu.Dish
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /dishes/{id} [patch]
func (h *Handlers) updateDishHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateDishHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "update dish", err)
		return
	}
	var req updateDishRequest
	if err := decode(r, &req); err != nil {
		h.fail(ctx, w, "update dish", err)
		return
	}
	if req.Quantity == nil {
		h.fail(ctx, w, "update dish", badRequest("quantity is required"))
		return
	}
	if *req.Quantity < 0 {
		h.fail(ctx, w, "update dish", badRequest("quantity must be non-negative, got %d", *req.Quantity))
		return
	}
	d, err := h.menu.UpdateQuantity(ctx, id, *req.Quantity)
	if err != nil {
		h.fail(ctx, w, "update dish", err)
		return
	}
	jsonResponse(w, http.StatusOK, d)
}

// deleteDishHandler removes a dish from the menu. Orders keep their references.
// @Summary Delete dish
// @Produce json
// @Param id path string true "Dish ID"
// @Success 200 {string} string "Deleted dish ID"
// @Failure 404 {object} errorResponse
// @Router /dishes/{id} [delete]
func (h *Handlers) deleteDishHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteDishHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.fail(ctx, w, "delete dish", err)
		return
	}
	if err := h.menu.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete dish", err)
		return
	}
	h.log.Info(ctx, "dish deleted", "dish_id", id.String())
	jsonResponse(w, http.StatusOK, id)
}
