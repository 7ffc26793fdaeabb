package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/havenbrook/realty-backend-go/internal/domain/invitation"
	"github.com/havenbrook/realty-backend-go/internal/handler/http/response"
)

type InvitationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByToken(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Resend(w http.ResponseWriter, r *http.Request)
	Revoke(w http.ResponseWriter, r *http.Request)
}

type InvitationHandlerImpl struct {
	invitationService invitation.InvitationService
}

func NewInvitationHandler(invitationService invitation.InvitationService) InvitationHandler {
	return &InvitationHandlerImpl{invitationService: invitationService}
}

// Create implements InvitationHandler.
func (h *InvitationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq invitation.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Invitation create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.invitationService.CreateAndSend(r.Context(), createReq)
	if err != nil {
		slog.Error("Invitation create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Invitation created", "invitation_id", created.ID, "email", created.Email)
	response.Created(w, "Invitation sent", invitation.InvitationDetailResponse{
		Token:     created.Token,
		Email:     created.Email,
		FirstName: created.FirstName,
		LastName:  created.LastName,
		Status:    string(created.EffectiveStatus()),
		ExpiresAt: created.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
		IsExpired: created.IsExpired(),
	})
}

// GetByToken implements InvitationHandler. Public: the invitee opens the
// onboarding link before they have any credentials.
func (h *InvitationHandlerImpl) GetByToken(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	detail, err := h.invitationService.GetByToken(r.Context(), token)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// Accept implements InvitationHandler.
func (h *InvitationHandlerImpl) Accept(w http.ResponseWriter, r *http.Request) {
	var acceptReq invitation.AcceptRequest

	if err := json.NewDecoder(r.Body).Decode(&acceptReq); err != nil {
		slog.Error("Invitation accept decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	acceptReq.Token = chi.URLParam(r, "token")

	acceptResponse, err := h.invitationService.Accept(r.Context(), acceptReq)
	if err != nil {
		slog.Error("Invitation accept service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Invitation accepted", "realtor_id", acceptResponse.RealtorID, "slug", acceptResponse.Slug)
	response.Created(w, "Invitation accepted", acceptResponse)
}

// Resend implements InvitationHandler.
func (h *InvitationHandlerImpl) Resend(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.invitationService.Resend(r.Context(), id); err != nil {
		slog.Error("Invitation resend service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Invitation resent", "invitation_id", id)
	response.SuccessWithMessage(w, "Invitation resent", nil)
}

// Revoke implements InvitationHandler.
func (h *InvitationHandlerImpl) Revoke(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.invitationService.Revoke(r.Context(), id); err != nil {
		slog.Error("Invitation revoke service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Invitation revoked", "invitation_id", id)
	response.SuccessWithMessage(w, "Invitation revoked", nil)
}
