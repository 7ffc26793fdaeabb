package referral

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithCookies copies the cookies a recorder captured onto a fresh
// request, simulating the browser's next visit.
func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
	return req
}

func TestCookieStore_SetAndGet(t *testing.T) {
	store := NewCookieStore("hb_referral", 30*24*time.Hour)

	rec := httptest.NewRecorder()
	store.Set(rec, "jane-smith")

	code, ok := store.Get(requestWithCookies(t, rec))
	require.True(t, ok)
	assert.Equal(t, "jane-smith", code)
}

func TestCookieStore_GetMissing(t *testing.T) {
	store := NewCookieStore("hb_referral", 30*24*time.Hour)

	_, ok := store.Get(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestCookieStore_StaleAttribution(t *testing.T) {
	now := time.Now()
	store := &cookieStore{
		name:   "hb_referral",
		window: 30 * 24 * time.Hour,
		now:    func() time.Time { return now },
	}

	rec := httptest.NewRecorder()
	store.Set(rec, "jane-smith")
	req := requestWithCookies(t, rec)

	// Still fresh one day before the window closes
	now = now.Add(29 * 24 * time.Hour)
	code, ok := store.Get(req)
	require.True(t, ok)
	assert.Equal(t, "jane-smith", code)

	// Stale once the window has passed
	now = now.Add(2 * 24 * time.Hour)
	_, ok = store.Get(req)
	assert.False(t, ok)
}

func TestCookieStore_NewerReferralOverwrites(t *testing.T) {
	store := NewCookieStore("hb_referral", 30*24*time.Hour)

	rec := httptest.NewRecorder()
	store.Set(rec, "jane-smith")
	store.Set(rec, "ade-bello")

	// The browser keeps only the last cookie with a given name
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	cookies := rec.Result().Cookies()
	req.AddCookie(cookies[len(cookies)-1])

	code, ok := store.Get(req)
	require.True(t, ok)
	assert.Equal(t, "ade-bello", code)
}

func TestCookieStore_Clear(t *testing.T) {
	store := NewCookieStore("hb_referral", 30*24*time.Hour)

	rec := httptest.NewRecorder()
	store.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "hb_referral", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestCookieStore_MalformedValue(t *testing.T) {
	store := NewCookieStore("hb_referral", 30*24*time.Hour)

	for _, value := range []string{"", "no-timestamp", ".123", "code.not-a-number"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "hb_referral", Value: value})

		_, ok := store.Get(req)
		assert.False(t, ok, "value %q", value)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	_, ok := store.Get(nil)
	assert.False(t, ok)

	store.Set(nil, "jane-smith")
	code, ok := store.Get(nil)
	require.True(t, ok)
	assert.Equal(t, "jane-smith", code)

	store.Set(nil, "ade-bello")
	code, _ = store.Get(nil)
	assert.Equal(t, "ade-bello", code)

	store.Clear(nil)
	_, ok = store.Get(nil)
	assert.False(t, ok)
}

func TestMemoryStore_Stale(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore(time.Hour)
	store.Now = func() time.Time { return now }

	store.Set(nil, "jane-smith")

	now = now.Add(2 * time.Hour)
	_, ok := store.Get(nil)
	assert.False(t, ok)
}
