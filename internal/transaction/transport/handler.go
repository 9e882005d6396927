package transport

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dwikikusuma/shoping-pos/internal/receipt"
	"github.com/dwikikusuma/shoping-pos/internal/transaction/app"
	"github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
	"github.com/dwikikusuma/shoping-pos/pkg/httpx"
)

// CustomerNamer resolves a customer id for printing. Unknown ids print nothing.
type CustomerNamer interface {
	CustomerName(ctx context.Context, id string) string
}

type Handler struct {
	svc      *app.Service
	names    CustomerNamer
	shopName string
	log      *slog.Logger
}

func NewHandler(svc *app.Service, names CustomerNamer, shopName string, log *slog.Logger) *Handler {
	return &Handler{svc: svc, names: names, shopName: shopName, log: log}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/transactions", httpx.Handle(h.log, h.list)).Methods(http.MethodGet)
	r.HandleFunc("/transactions/{id}", httpx.Handle(h.log, h.get)).Methods(http.MethodGet)
	r.HandleFunc("/transactions/{id}/refund", httpx.Handle(h.log, h.refund)).Methods(http.MethodPost)
	r.HandleFunc("/transactions/{id}/cancel", httpx.Handle(h.log, h.cancel)).Methods(http.MethodPost)
	r.HandleFunc("/transactions/{id}/receipt", httpx.Handle(h.log, h.receipt)).Methods(http.MethodGet)
}

type listResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) error {
	from, err := httpx.QueryTime(r, "from")
	if err != nil {
		return err
	}
	to, err := httpx.QueryTime(r, "to")
	if err != nil {
		return err
	}

	q := r.URL.Query()
	f := domain.Filter{
		Status:     domain.Status(q.Get("status")),
		CustomerID: q.Get("customer_id"),
		From:       from,
		To:         to,
	}
	switch f.Status {
	case "", domain.StatusCompleted, domain.StatusRefunded, domain.StatusCanceled:
	default:
		return status.Errorf(codes.InvalidArgument, "unknown status %q", f.Status)
	}

	txs, err := h.svc.List(r.Context(), f)
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, listResponse{Transactions: txs})
	return nil
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) error {
	tx, err := h.svc.Get(r.Context(), httpx.Var(r, "id"))
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, tx)
	return nil
}

func (h *Handler) refund(w http.ResponseWriter, r *http.Request) error {
	tx, err := h.svc.Refund(r.Context(), httpx.Var(r, "id"))
	if err != nil {
		return mapErr(err)
	}
	h.log.Info("transaction refunded", slog.String("transaction_id", tx.ID), slog.String("amount", tx.Amount.String()))
	httpx.WriteJSON(w, http.StatusOK, tx)
	return nil
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) error {
	tx, err := h.svc.Cancel(r.Context(), httpx.Var(r, "id"))
	if err != nil {
		return mapErr(err)
	}
	h.log.Info("transaction canceled", slog.String("transaction_id", tx.ID))
	httpx.WriteJSON(w, http.StatusOK, tx)
	return nil
}

func (h *Handler) receipt(w http.ResponseWriter, r *http.Request) error {
	tx, err := h.svc.Get(r.Context(), httpx.Var(r, "id"))
	if err != nil {
		return mapErr(err)
	}

	opts := receipt.Options{ShopName: h.shopName}
	if h.names != nil && tx.CustomerID != "" {
		opts.CustomerName = h.names.CustomerName(r.Context(), tx.CustomerID)
	}

	var buf bytes.Buffer
	if err := receipt.Render(&buf, tx, opts); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
	return nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrNotFound):
		return status.Error(codes.NotFound, "transaction not found")
	case errors.Is(err, domain.ErrInvalidTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
