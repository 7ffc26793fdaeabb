package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/havenbrook/realty-backend-go/internal/domain/commission"
	"github.com/havenbrook/realty-backend-go/internal/handler/http/response"
)

type CommissionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type CommissionHandlerImpl struct {
	commissionService commission.CommissionService
}

func NewCommissionHandler(commissionService commission.CommissionService) CommissionHandler {
	return &CommissionHandlerImpl{commissionService: commissionService}
}

// Create implements CommissionHandler.
func (h *CommissionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq commission.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Commission create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.commissionService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Commission create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Commission recorded", "commission_id", created.ID, "realtor_id", created.RealtorID, "amount", created.Amount)
	response.Created(w, "Commission recorded", commission.ToCommissionResponse(created))
}

// UpdateStatus implements CommissionHandler.
func (h *CommissionHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq commission.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Commission status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.commissionService.UpdateStatus(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Commission status service error", "error", err, "commission_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Commission status updated", "commission_id", id, "status", updated.Status)
	response.SuccessWithMessage(w, "Commission status updated", commission.ToCommissionResponse(updated))
}
