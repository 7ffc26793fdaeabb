package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/havenbrook/realty-backend-go/internal/domain/lead"
	"github.com/havenbrook/realty-backend-go/internal/pkg/referral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLeadService records the request the handler forwarded.
type stubLeadService struct {
	gotReq       lead.CreateRequest
	referralUsed bool
}

func (s *stubLeadService) Create(_ context.Context, req lead.CreateRequest) (lead.CreateResponse, error) {
	s.gotReq = req
	return lead.CreateResponse{
		Lead: lead.Lead{
			ID:          "lead-1",
			FullName:    req.FullName,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			PropertyID:  req.PropertyID,
			Source:      lead.SourceDirectInquiry,
			CreatedAt:   time.Now(),
		},
		ReferralUsed: s.referralUsed,
	}, nil
}

func (s *stubLeadService) List(context.Context) ([]lead.Lead, error) {
	return nil, nil
}

func (s *stubLeadService) ListByRealtor(context.Context, string) ([]lead.Lead, error) {
	return nil, nil
}

func postLead(t *testing.T, handler LeadHandler, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)
	return rec
}

func TestLeadHandler_Create_BodyCodeWinsOverCookie(t *testing.T) {
	svc := &stubLeadService{}
	store := referral.NewMemoryStore(time.Hour)
	store.Set(nil, "cookie-realtor")
	handler := NewLeadHandler(svc, store)

	rec := postLead(t, handler, map[string]interface{}{
		"full_name":     "Tunde Okafor",
		"email":         "tunde@example.com",
		"phone_number":  "08031234567",
		"property_id":   "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		"referral_code": "body-realtor",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "body-realtor", svc.gotReq.ReferralCode)

	// The cookie was never spent, so it survives
	code, ok := store.Get(nil)
	require.True(t, ok)
	assert.Equal(t, "cookie-realtor", code)
}

func TestLeadHandler_Create_CookieFallbackAndClear(t *testing.T) {
	svc := &stubLeadService{}
	store := referral.NewMemoryStore(time.Hour)
	store.Set(nil, "cookie-realtor")
	handler := NewLeadHandler(svc, store)

	rec := postLead(t, handler, map[string]interface{}{
		"full_name":    "Tunde Okafor",
		"email":        "tunde@example.com",
		"phone_number": "08031234567",
		"property_id":  "f47ac10b-58cc-4372-a567-0e02b2c3d479",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "cookie-realtor", svc.gotReq.ReferralCode)

	// Spent on this lead, cleared even though it did not resolve
	_, ok := store.Get(nil)
	assert.False(t, ok)
}

func TestLeadHandler_Create_NoAttribution(t *testing.T) {
	svc := &stubLeadService{}
	handler := NewLeadHandler(svc, referral.NewMemoryStore(time.Hour))

	rec := postLead(t, handler, map[string]interface{}{
		"full_name":    "Tunde Okafor",
		"email":        "tunde@example.com",
		"phone_number": "08031234567",
		"property_id":  "f47ac10b-58cc-4372-a567-0e02b2c3d479",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, svc.gotReq.ReferralCode)
}

func TestLeadHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewLeadHandler(&stubLeadService{}, referral.NewMemoryStore(time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
