package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/havenbrook/realty-backend-go/internal/domain/payout"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPayoutService records which realtors opened requests.
type stubPayoutService struct {
	requested []string
}

func (s *stubPayoutService) Request(_ context.Context, realtorID string) (payout.Request, error) {
	s.requested = append(s.requested, realtorID)
	return payout.Request{
		ID:          "payout-1",
		RealtorID:   realtorID,
		Amount:      decimal.RequireFromString("150000.00"),
		Status:      payout.StatusOpen,
		RequestedAt: time.Now(),
	}, nil
}

func (s *stubPayoutService) ListByRealtor(context.Context, string) ([]payout.Request, error) {
	return nil, nil
}

func (s *stubPayoutService) Settle(context.Context, string) (payout.Request, error) {
	return payout.Request{}, nil
}

func (s *stubPayoutService) Cancel(context.Context, string) (payout.Request, error) {
	return payout.Request{}, nil
}

func requestPayoutReq(t *testing.T, id string, claims map[string]interface{}, claimsErr error) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/realtors/"+id+"/payout-requests", nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)

	var token jwt.Token
	if claims != nil {
		ja := jwtauth.New("HS256", []byte("test-secret"), nil)
		var err error
		token, _, err = ja.Encode(claims)
		require.NoError(t, err)
	}
	ctx = jwtauth.NewContext(ctx, token, claimsErr)

	return req.WithContext(ctx)
}

func TestRealtorHandler_RequestPayout_Owner(t *testing.T) {
	svc := &stubPayoutService{}
	handler := NewRealtorHandler(nil, nil, nil, svc)

	req := requestPayoutReq(t, "realtor-1", map[string]interface{}{
		"user_id": "user-1", "role": "realtor", "realtor_id": "realtor-1", "type": "access",
	}, nil)
	rec := httptest.NewRecorder()
	handler.RequestPayout(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"realtor-1"}, svc.requested)
}

func TestRealtorHandler_RequestPayout_AdminRejected(t *testing.T) {
	svc := &stubPayoutService{}
	handler := NewRealtorHandler(nil, nil, nil, svc)

	req := requestPayoutReq(t, "realtor-1", map[string]interface{}{
		"user_id": "user-1", "role": "admin", "type": "access",
	}, nil)
	rec := httptest.NewRecorder()
	handler.RequestPayout(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, svc.requested)
}

func TestRealtorHandler_RequestPayout_OtherRealtorRejected(t *testing.T) {
	svc := &stubPayoutService{}
	handler := NewRealtorHandler(nil, nil, nil, svc)

	req := requestPayoutReq(t, "realtor-1", map[string]interface{}{
		"user_id": "user-2", "role": "realtor", "realtor_id": "realtor-2", "type": "access",
	}, nil)
	rec := httptest.NewRecorder()
	handler.RequestPayout(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, svc.requested)
}

// A claims read failure rejects the request instead of falling through to
// the service.
func TestRealtorHandler_RequestPayout_ClaimsErrorRejected(t *testing.T) {
	svc := &stubPayoutService{}
	handler := NewRealtorHandler(nil, nil, nil, svc)

	req := requestPayoutReq(t, "realtor-1", nil, jwtauth.ErrUnauthorized)
	rec := httptest.NewRecorder()
	handler.RequestPayout(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, svc.requested)
}
