package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/havenbrook/realty-backend-go/internal/domain/property"
	"github.com/havenbrook/realty-backend-go/internal/handler/http/response"
)

type PropertyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PropertyHandlerImpl struct {
	propertyService property.PropertyService
}

func NewPropertyHandler(propertyService property.PropertyService) PropertyHandler {
	return &PropertyHandlerImpl{propertyService: propertyService}
}

// Create implements PropertyHandler.
func (h *PropertyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq property.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Property create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.propertyService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Property create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Property created", "property_id", created.ID)
	response.Created(w, "Property created", property.ToPropertyResponse(created))
}

// GetByID implements PropertyHandler.
func (h *PropertyHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.propertyService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, property.ToPropertyResponse(p))
}

// List implements PropertyHandler.
func (h *PropertyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	properties, err := h.propertyService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]property.PropertyResponse, 0, len(properties))
	for _, p := range properties {
		responses = append(responses, property.ToPropertyResponse(p))
	}

	response.Success(w, responses)
}
