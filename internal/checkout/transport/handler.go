package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dwikikusuma/shoping-pos/internal/checkout/app"
	"github.com/dwikikusuma/shoping-pos/internal/checkout/domain"
	"github.com/dwikikusuma/shoping-pos/pkg/httpx"
)

type Handler struct {
	co  *app.Coordinator
	log *slog.Logger
}

func NewHandler(co *app.Coordinator, log *slog.Logger) *Handler {
	return &Handler{co: co, log: log}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/checkout", httpx.Handle(h.log, h.view)).Methods(http.MethodGet)
	r.HandleFunc("/checkout/open", httpx.Handle(h.log, h.open)).Methods(http.MethodPost)
	r.HandleFunc("/checkout/confirm", httpx.Handle(h.log, h.confirm)).Methods(http.MethodPost)
	r.HandleFunc("/checkout/cancel", httpx.Handle(h.log, h.cancel)).Methods(http.MethodPost)
}

type viewResponse struct {
	State       domain.State    `json:"state"`
	Loading     bool            `json:"loading"`
	Quote       *domain.Quote   `json:"quote,omitempty"`
	LastReceipt *domain.Receipt `json:"last_receipt,omitempty"`
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request) error {
	httpx.WriteJSON(w, http.StatusOK, h.snapshot(r.Context()))
	return nil
}

func (h *Handler) open(w http.ResponseWriter, r *http.Request) error {
	if err := h.co.OpenCheckout(r.Context()); err != nil {
		return mapErr(err)
	}
	return h.view(w, r)
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) error {
	if err := h.co.Cancel(r.Context()); err != nil {
		return mapErr(err)
	}
	return h.view(w, r)
}

// confirm accepts an empty body: walk-in customer paying cash.
func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) error {
	var req domain.ConfirmRequest
	if r.ContentLength != 0 {
		if err := httpx.DecodeJSON(r, &req); err != nil {
			return err
		}
	}

	receipt, err := h.co.Confirm(r.Context(), req)
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, receipt)
	return nil
}

// snapshot omits the quote when the cart is empty or a product in it has
// since been removed from the catalog.
func (h *Handler) snapshot(ctx context.Context) viewResponse {
	state := h.co.State()
	v := viewResponse{State: state, Loading: state == domain.StateProcessing}

	q, err := h.co.Quote(ctx)
	switch {
	case err == nil:
		v.Quote = &q
	case !errors.Is(err, domain.ErrEmptyCart):
		h.log.Warn("checkout quote unavailable", slog.Any("err", err))
	}

	if rec, ok := h.co.LastReceipt(); ok {
		v.LastReceipt = &rec
	}
	return v
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return status.Error(codes.FailedPrecondition, "cart is empty")
	case errors.Is(err, domain.ErrCheckoutInProgress):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, domain.ErrNotConfirming):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "payment aborted")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "payment timed out")
	}
	return status.Error(codes.Unavailable, "payment could not be completed")
}
