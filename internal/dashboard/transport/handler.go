package transport

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dwikikusuma/shoping-pos/internal/dashboard/app"
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
	r.HandleFunc("/dashboard", httpx.Handle(h.log, h.summary)).Methods(http.MethodGet)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) error {
	from, err := httpx.QueryTime(r, "from")
	if err != nil {
		return err
	}
	to, err := httpx.QueryTime(r, "to")
	if err != nil {
		return err
	}
	if !from.IsZero() && !to.IsZero() && !to.After(from) {
		return status.Error(codes.InvalidArgument, "to must be after from")
	}

	sum, err := h.svc.Summary(r.Context(), app.Range{From: from, To: to})
	if err != nil {
		return status.Errorf(codes.Unavailable, "dashboard: %v", err)
	}
	httpx.WriteJSON(w, http.StatusOK, sum)
	return nil
}
