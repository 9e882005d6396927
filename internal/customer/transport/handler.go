package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dwikikusuma/shoping-pos/internal/customer/app"
	"github.com/dwikikusuma/shoping-pos/internal/customer/domain"
	"github.com/dwikikusuma/shoping-pos/pkg/httpx"
)

type Handler struct {
	svc *app.Service
	log *slog.Logger
}

func NewHandler(svc *app.Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/customers", httpx.Handle(h.log, h.list)).Methods(http.MethodGet)
	r.HandleFunc("/customers", httpx.Handle(h.log, h.create)).Methods(http.MethodPost)
	r.HandleFunc("/customers/{id}", httpx.Handle(h.log, h.get)).Methods(http.MethodGet)
	r.HandleFunc("/customers/{id}", httpx.Handle(h.log, h.update)).Methods(http.MethodPut)
	r.HandleFunc("/customers/{id}", httpx.Handle(h.log, h.delete)).Methods(http.MethodDelete)
}

type listResponse struct {
	Customers []domain.Customer `json:"customers"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) error {
	cs, err := h.svc.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		return mapErr(err)
	}
	if cs == nil {
		cs = []domain.Customer{}
	}
	httpx.WriteJSON(w, http.StatusOK, listResponse{Customers: cs})
	return nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) error {
	var in domain.CustomerInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		return err
	}
	c, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, http.StatusCreated, c)
	return nil
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) error {
	c, err := h.svc.Get(r.Context(), httpx.Var(r, "id"))
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, c)
	return nil
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) error {
	var in domain.CustomerInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		return err
	}
	c, err := h.svc.Update(r.Context(), httpx.Var(r, "id"), in)
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, c)
	return nil
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) error {
	if err := h.svc.Delete(r.Context(), httpx.Var(r, "id")); err != nil {
		return mapErr(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrNotFound):
		return status.Error(codes.NotFound, "customer not found")
	case errors.Is(err, app.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}

// Names adapts the service for receipt printing.
type Names struct{ Svc *app.Service }

func (n Names) CustomerName(ctx context.Context, id string) string {
	c, err := n.Svc.Get(ctx, id)
	if err != nil {
		return ""
	}
	return c.Name
}
