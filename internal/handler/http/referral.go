package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/havenbrook/realty-backend-go/internal/domain/realtor"
	"github.com/havenbrook/realty-backend-go/internal/handler/http/response"
	"github.com/havenbrook/realty-backend-go/internal/pkg/referral"
)

type ReferralHandler interface {
	Capture(w http.ResponseWriter, r *http.Request)
}

type ReferralHandlerImpl struct {
	realtorService realtor.RealtorService
	referralStore  referral.Store
}

func NewReferralHandler(realtorService realtor.RealtorService, referralStore referral.Store) ReferralHandler {
	return &ReferralHandlerImpl{
		realtorService: realtorService,
		referralStore:  referralStore,
	}
}

// Capture implements ReferralHandler. Visiting a referral link attributes
// the browser to the realtor and returns their public profile. An unknown
// slug writes nothing.
func (h *ReferralHandlerImpl) Capture(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	rl, err := h.realtorService.GetBySlug(r.Context(), slug)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.referralStore.Set(w, rl.Slug)

	slog.Info("Referral visit captured", "slug", rl.Slug)
	response.Success(w, realtor.ToProfileResponse(rl, false))
}
