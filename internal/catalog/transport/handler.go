package transport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dwikikusuma/shoping-pos/internal/catalog/app"
	"github.com/dwikikusuma/shoping-pos/internal/catalog/domain"
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
	r.HandleFunc("/products", httpx.Handle(h.log, h.listProducts)).Methods(http.MethodGet)
	r.HandleFunc("/products", httpx.Handle(h.log, h.createProduct)).Methods(http.MethodPost)
	r.HandleFunc("/products/{id}", httpx.Handle(h.log, h.getProduct)).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", httpx.Handle(h.log, h.updateProduct)).Methods(http.MethodPut)
	r.HandleFunc("/products/{id}", httpx.Handle(h.log, h.deleteProduct)).Methods(http.MethodDelete)
	r.HandleFunc("/products/{id}/stock", httpx.Handle(h.log, h.adjustStock)).Methods(http.MethodPost)
	r.HandleFunc("/categories", httpx.Handle(h.log, h.categories)).Methods(http.MethodGet)
}

type listResponse struct {
	Products []domain.Product `json:"products"`
}

type stockRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	products, err := h.svc.ListProducts(r.Context(), q.Get("search"), q.Get("category"))
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, listResponse{Products: products})
	return nil
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) error {
	var in domain.ProductInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		return err
	}
	p, err := h.svc.CreateProduct(r.Context(), in)
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
	return nil
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) error {
	p, err := h.svc.GetProduct(r.Context(), httpx.Var(r, "id"))
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, p)
	return nil
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) error {
	var in domain.ProductInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		return err
	}
	p, err := h.svc.UpdateProduct(r.Context(), httpx.Var(r, "id"), in)
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, p)
	return nil
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) error {
	if err := h.svc.DeleteProduct(r.Context(), httpx.Var(r, "id")); err != nil {
		return mapErr(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request) error {
	var req stockRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}
	p, err := h.svc.AdjustStock(r.Context(), httpx.Var(r, "id"), req.Delta)
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, p)
	return nil
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) error {
	cats, err := h.svc.Categories(r.Context())
	if err != nil {
		return mapErr(err)
	}
	if cats == nil {
		cats = []string{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string][]string{"categories": append([]string{app.CategoryAll}, cats...)})
	return nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrNotFound):
		return status.Error(codes.NotFound, "product not found")
	case errors.Is(err, app.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, app.ErrInsufficientStock):
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
