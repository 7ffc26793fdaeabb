package referral

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Store is the capability a handler uses to track which realtor's referral
// link brought the current visitor in. The attribution lives with the client
// (a cookie), is overwritten by newer referrals, goes stale after the
// freshness window, and is cleared exactly once when it attributes a lead.
type Store interface {
	Set(w http.ResponseWriter, code string)
	Get(r *http.Request) (code string, ok bool)
	Clear(w http.ResponseWriter)
}

type cookieStore struct {
	name   string
	window time.Duration
	now    func() time.Time
}

// NewCookieStore returns a Store backed by a client cookie holding the
// referral code and its capture timestamp.
func NewCookieStore(name string, window time.Duration) Store {
	return &cookieStore{name: name, window: window, now: time.Now}
}

func (s *cookieStore) Set(w http.ResponseWriter, code string) {
	capturedAt := s.now()
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    code + "." + strconv.FormatInt(capturedAt.Unix(), 10),
		Path:     "/",
		Expires:  capturedAt.Add(s.window),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *cookieStore) Get(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return "", false
	}

	sep := strings.LastIndex(cookie.Value, ".")
	if sep <= 0 {
		return "", false
	}

	code := cookie.Value[:sep]
	capturedUnix, err := strconv.ParseInt(cookie.Value[sep+1:], 10, 64)
	if err != nil {
		return "", false
	}

	if s.now().Sub(time.Unix(capturedUnix, 0)) > s.window {
		return "", false
	}

	return code, true
}

func (s *cookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
