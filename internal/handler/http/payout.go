package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/havenbrook/realty-backend-go/internal/domain/payout"
	"github.com/havenbrook/realty-backend-go/internal/handler/http/response"
)

type PayoutHandler interface {
	Settle(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type PayoutHandlerImpl struct {
	payoutService payout.PayoutService
}

func NewPayoutHandler(payoutService payout.PayoutService) PayoutHandler {
	return &PayoutHandlerImpl{payoutService: payoutService}
}

// Settle implements PayoutHandler.
func (h *PayoutHandlerImpl) Settle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	settled, err := h.payoutService.Settle(r.Context(), id)
	if err != nil {
		slog.Error("Payout settle service error", "error", err, "payout_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payout settled", "payout_id", id)
	response.SuccessWithMessage(w, "Payout settled", payout.ToRequestResponse(settled))
}

// Cancel implements PayoutHandler.
func (h *PayoutHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cancelled, err := h.payoutService.Cancel(r.Context(), id)
	if err != nil {
		slog.Error("Payout cancel service error", "error", err, "payout_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payout cancelled", "payout_id", id)
	response.SuccessWithMessage(w, "Payout cancelled", payout.ToRequestResponse(cancelled))
}
