package transport

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dwikikusuma/shoping-pos/internal/cart/app"
	"github.com/dwikikusuma/shoping-pos/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/shoping-pos/internal/catalog/app"
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
	r.HandleFunc("/cart", httpx.Handle(h.log, h.getCart)).Methods(http.MethodGet)
	r.HandleFunc("/cart", httpx.Handle(h.log, h.clearCart)).Methods(http.MethodDelete)
	r.HandleFunc("/cart/items", httpx.Handle(h.log, h.addItem)).Methods(http.MethodPost)
	r.HandleFunc("/cart/items/{id}", httpx.Handle(h.log, h.setQuantity)).Methods(http.MethodPut)
	r.HandleFunc("/cart/items/{id}", httpx.Handle(h.log, h.removeItem)).Methods(http.MethodDelete)
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

type setQuantityRequest struct {
	Qty *int `json:"qty"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) error {
	httpx.WriteJSON(w, http.StatusOK, toResponse(h.svc.Snapshot(r.Context())))
	return nil
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) error {
	cart, err := h.svc.Clear(r.Context())
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(cart))
	return nil
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) error {
	var req addItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}
	if strings.TrimSpace(req.ProductID) == "" {
		return status.Error(codes.InvalidArgument, "product_id is required")
	}

	cart, err := h.svc.AddItem(r.Context(), req.ProductID)
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(cart))
	return nil
}

func (h *Handler) setQuantity(w http.ResponseWriter, r *http.Request) error {
	var req setQuantityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}
	if req.Qty == nil {
		return status.Error(codes.InvalidArgument, "qty is required")
	}

	cart, err := h.svc.SetQuantity(r.Context(), httpx.Var(r, "id"), *req.Qty)
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(cart))
	return nil
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) error {
	cart, err := h.svc.RemoveItem(r.Context(), httpx.Var(r, "id"))
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(cart))
	return nil
}

type cartResponse struct {
	domain.Cart
	Currency string `json:"currency"`
}

func toResponse(c domain.Cart) cartResponse {
	if c.Lines == nil {
		c.Lines = []domain.CartLine{}
	}
	return cartResponse{Cart: c, Currency: "THB"}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrCartLocked):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrOutOfStock), errors.Is(err, domain.ErrInsufficientStock):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, catalogapp.ErrNotFound):
		return status.Error(codes.NotFound, "product not found")
	case errors.Is(err, catalogapp.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
