package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"bistro/pkg/menu"
	"bistro/pkg/order"
)

var (
	errBadRequest = errors.New("bad request")
	errNoRoute    = errors.New("no such route")
	errMethod     = errors.New("method not allowed")
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func jsonResponse(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, code int, err error) {
	jsonResponse(w, code, errorResponse{Error: err.Error(), Code: code})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, menu.ErrNotFound),
		errors.Is(err, order.ErrNotFound),
		errors.Is(err, order.ErrEmpty):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return badRequest("invalid body: %v", err)
	}
	return nil
}

// checkDishIDs rejects null or nil dish references.
func checkDishIDs(field string, ids []uuid.UUID) error {
	for i, id := range ids {
		if id == uuid.Nil {
			return badRequest("%s[%d] must be a dish id", field, i)
		}
	}
	return nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, badRequest("invalid id %q", raw)
	}
	return id, nil
}
