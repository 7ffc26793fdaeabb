package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/havenbrook/realty-backend-go/internal/domain/lead"
	"github.com/havenbrook/realty-backend-go/internal/handler/http/response"
	"github.com/havenbrook/realty-backend-go/internal/pkg/referral"
)

type LeadHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LeadHandlerImpl struct {
	leadService   lead.LeadService
	referralStore referral.Store
}

func NewLeadHandler(leadService lead.LeadService, referralStore referral.Store) LeadHandler {
	return &LeadHandlerImpl{
		leadService:   leadService,
		referralStore: referralStore,
	}
}

// Create implements LeadHandler. An explicit referral code in the body wins
// over the visitor's attribution cookie. Once a cookie-sourced code has been
// spent on a lead it is cleared, even if it no longer resolved to a realtor.
func (h *LeadHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq lead.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Lead create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	fromCookie := false
	if createReq.ReferralCode == "" {
		if code, ok := h.referralStore.Get(r); ok {
			createReq.ReferralCode = code
			fromCookie = true
		}
	}

	createResponse, err := h.leadService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Lead create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if fromCookie {
		h.referralStore.Clear(w)
	}

	slog.Info("Lead created",
		"lead_id", createResponse.Lead.ID,
		"source", createResponse.Lead.Source,
		"referral_used", createResponse.ReferralUsed,
	)
	response.Created(w, "Inquiry received", lead.ToLeadResponse(createResponse.Lead))
}

// List implements LeadHandler.
func (h *LeadHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadService.List(r.Context())
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
