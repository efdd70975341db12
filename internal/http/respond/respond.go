// Package respond writes JSON bodies and maps application errors onto HTTP statuses.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
)

// BadRequestError is a request the server could not read at all: a malformed body or
// an unparseable path parameter. It is answered with 400 instead of 422.
type BadRequestError struct {
	Field   string
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Field + ": " + e.Message
}

type errorResponse struct {
	Detail string              `json:"detail"`
	Errors []apperr.FieldError `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes the status and body for err. Unclassified errors are logged and
// answered with a generic 500 so internals never leak to the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation *apperr.ValidationError
		badRequest *BadRequestError
		notFound   *apperr.NotFoundError
		conflict   *apperr.ConflictError
	)

	switch {
	case errors.As(err, &validation):
		JSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: "validation failed", Errors: validation.Fields})
	case errors.As(err, &badRequest):
		JSON(w, http.StatusBadRequest, errorResponse{
			Detail: "bad request",
			Errors: []apperr.FieldError{{Field: badRequest.Field, Message: badRequest.Message}},
		})
	case errors.As(err, &notFound):
		JSON(w, http.StatusNotFound, errorResponse{Detail: notFound.Error()})
	case errors.As(err, &conflict):
		JSON(w, http.StatusConflict, errorResponse{Detail: conflict.Error()})
	default:
		slog.Error("failed to handle request",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
		)
		JSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal error"})
	}
}

// NotFound answers for an entity id the store had no row for.
func NotFound(w http.ResponseWriter, entity string, id int64) {
	err := &apperr.NotFoundError{Entity: entity, ID: id}
	JSON(w, http.StatusNotFound, errorResponse{Detail: err.Error()})
}

// Decode reads a JSON body into v.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &BadRequestError{Field: "body", Message: err.Error()}
	}

	return nil
}

// ID reads a positive integer path parameter.
func ID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &BadRequestError{Field: name, Message: "must be a positive integer"}
	}

	return id, nil
}

// Money renders an amount with exactly two decimal places as a JSON number.
func Money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

// Quantity renders a measured amount without trailing zeros as a JSON number.
func Quantity(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
