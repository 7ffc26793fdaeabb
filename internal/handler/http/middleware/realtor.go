package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/havenbrook/realty-backend-go/internal/domain/auth"
	"github.com/havenbrook/realty-backend-go/internal/domain/user"
	"github.com/havenbrook/realty-backend-go/internal/handler/http/response"
)

// RealtorOwnerOrAdmin guards routes keyed by a realtor id URL param. Admins
// pass through; realtors only reach their own resource.
func RealtorOwnerOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, _ := claims["role"].(string)
		if user.Role(role) == user.RoleAdmin {
			next.ServeHTTP(w, r)
			return
		}

		realtorID, ok := claims["realtor_id"].(string)
		if !ok || realtorID == "" || realtorID != chi.URLParam(r, "id") {
			response.Forbidden(w, "You can only access your own realtor resources")
			return
		}

		next.ServeHTTP(w, r)
	})
}
