package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/havenbrook/realty-backend-go/internal/handler/http/middleware"
	"github.com/havenbrook/realty-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	JWTService jwt.Service,
	authHandler AuthHandler,
	invitationHandler InvitationHandler,
	referralHandler ReferralHandler,
	leadHandler LeadHandler,
	realtorHandler RealtorHandler,
	propertyHandler PropertyHandler,
	commissionHandler CommissionHandler,
	payoutHandler PayoutHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "havenbrook-realty"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Public: invitees and marketplace visitors
		r.Get("/invitations/{token}", invitationHandler.GetByToken)
		r.Post("/invitations/{token}/accept", invitationHandler.Accept)
		r.Get("/referrals/{slug}", referralHandler.Capture)
		r.Post("/leads", leadHandler.Create)
		r.Get("/properties", propertyHandler.List)
		r.Get("/properties/{id}", propertyHandler.GetByID)
		r.Get("/realtors/slug/{slug}", realtorHandler.GetBySlug)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/invitations", func(r chi.Router) {
					r.Post("/", invitationHandler.Create)
					r.Post("/{id}/resend", invitationHandler.Resend)
					r.Delete("/{id}", invitationHandler.Revoke)
				})

				r.Get("/leads", leadHandler.List)
				r.Post("/properties", propertyHandler.Create)
				r.Get("/realtors", realtorHandler.List)

				r.Route("/commissions", func(r chi.Router) {
					r.Post("/", commissionHandler.Create)
					r.Put("/{id}/status", commissionHandler.UpdateStatus)
				})

				r.Route("/payout-requests", func(r chi.Router) {
					r.Put("/{id}/settle", payoutHandler.Settle)
					r.Put("/{id}/cancel", payoutHandler.Cancel)
				})
			})

			// Realtor's own resources, admin can read them too. Delete lives
			// here rather than in the admin group: a method route on
			// /realtors/{id} elsewhere would be shadowed by this mount.
			r.Route("/realtors/{id}", func(r chi.Router) {
				r.Use(middleware.RealtorOwnerOrAdmin)

				r.Get("/", realtorHandler.GetByID)
				r.Put("/", realtorHandler.UpdateProfile)
				r.With(middleware.AdminOnly).Delete("/", realtorHandler.Delete)
				r.Get("/leads", realtorHandler.Leads)
				r.Get("/commissions", realtorHandler.Commissions)
				r.Get("/commissions/summary", realtorHandler.CommissionSummary)
				r.Get("/payout-requests", realtorHandler.Payouts)
				r.Post("/payout-requests", realtorHandler.RequestPayout)
			})
		})
	})

	return r
}
