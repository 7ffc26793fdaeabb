package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/havenbrook/realty-backend-go/internal/domain/commission"
	"github.com/havenbrook/realty-backend-go/internal/domain/lead"
	"github.com/havenbrook/realty-backend-go/internal/domain/payout"
	"github.com/havenbrook/realty-backend-go/internal/domain/realtor"
	"github.com/havenbrook/realty-backend-go/internal/handler/http/response"
)

type RealtorHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetBySlug(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Leads(w http.ResponseWriter, r *http.Request)
	Commissions(w http.ResponseWriter, r *http.Request)
	CommissionSummary(w http.ResponseWriter, r *http.Request)
	Payouts(w http.ResponseWriter, r *http.Request)
	RequestPayout(w http.ResponseWriter, r *http.Request)
}

type RealtorHandlerImpl struct {
	realtorService    realtor.RealtorService
	leadService       lead.LeadService
	commissionService commission.CommissionService
	payoutService     payout.PayoutService
}

func NewRealtorHandler(
	realtorService realtor.RealtorService,
	leadService lead.LeadService,
	commissionService commission.CommissionService,
	payoutService payout.PayoutService,
) RealtorHandler {
	return &RealtorHandlerImpl{
		realtorService:    realtorService,
		leadService:       leadService,
		commissionService: commissionService,
		payoutService:     payoutService,
	}
}

// List implements RealtorHandler.
func (h *RealtorHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	realtors, err := h.realtorService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]realtor.ProfileResponse, 0, len(realtors))
	for _, rl := range realtors {
		responses = append(responses, realtor.ToProfileResponse(rl, true))
	}

	response.Success(w, responses)
}

// GetByID implements RealtorHandler. Bank details only show on the guarded
// owner/admin route, so they are always included here.
func (h *RealtorHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rl, err := h.realtorService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, realtor.ToProfileResponse(rl, true))
}

// GetBySlug implements RealtorHandler. Public profile, no bank details.
func (h *RealtorHandlerImpl) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	rl, err := h.realtorService.GetBySlug(r.Context(), slug)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, realtor.ToProfileResponse(rl, false))
}

// UpdateProfile implements RealtorHandler.
func (h *RealtorHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq realtor.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Realtor update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.realtorService.UpdateProfile(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Realtor update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Realtor profile updated", "realtor_id", id)
	response.SuccessWithMessage(w, "Profile updated", realtor.ToProfileResponse(updated, true))
}

// Delete implements RealtorHandler.
func (h *RealtorHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.realtorService.Delete(r.Context(), id); err != nil {
		slog.Error("Realtor delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Realtor deleted", "realtor_id", id)
	response.SuccessWithMessage(w, "Realtor deleted", nil)
}

// Leads implements RealtorHandler.
func (h *RealtorHandlerImpl) Leads(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	leads, err := h.leadService.ListByRealtor(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]lead.LeadResponse, 0, len(leads))
	for _, l := range leads {
		responses = append(responses, lead.ToLeadResponse(l))
	}

	response.Success(w, responses)
}

// Commissions implements RealtorHandler.
func (h *RealtorHandlerImpl) Commissions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	commissions, err := h.commissionService.ListByRealtor(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]commission.CommissionResponse, 0, len(commissions))
	for _, c := range commissions {
		responses = append(responses, commission.ToCommissionResponse(c))
	}

	response.Success(w, responses)
}

// CommissionSummary implements RealtorHandler.
func (h *RealtorHandlerImpl) CommissionSummary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	summary, err := h.commissionService.Summary(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, commission.ToSummaryResponse(summary))
}

// Payouts implements RealtorHandler.
func (h *RealtorHandlerImpl) Payouts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	requests, err := h.payoutService.ListByRealtor(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]payout.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, payout.ToRequestResponse(req))
	}

	response.Success(w, responses)
}

// RequestPayout implements RealtorHandler. Admins cannot open requests on a
// realtor's behalf; the route guard already ensures the caller is the owner,
// this check keeps an admin from slipping through it.
func (h *RealtorHandlerImpl) RequestPayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Authentication required")
		return
	}
	if realtorID, ok := claims["realtor_id"].(string); !ok || realtorID != id {
		response.Forbidden(w, "Only the realtor can request their own payout")
		return
	}

	request, err := h.payoutService.Request(r.Context(), id)
	if err != nil {
		slog.Error("Payout request service error", "error", err, "realtor_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payout requested", "payout_id", request.ID, "realtor_id", id, "amount", request.Amount)
	response.Created(w, "Payout requested", payout.ToRequestResponse(request))
}
