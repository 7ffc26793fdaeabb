package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/havenbrook/realty-backend-go/internal/config"
	appHTTP "github.com/havenbrook/realty-backend-go/internal/handler/http"
	"github.com/havenbrook/realty-backend-go/internal/pkg/database"
	"github.com/havenbrook/realty-backend-go/internal/pkg/email"
	"github.com/havenbrook/realty-backend-go/internal/pkg/jwt"
	"github.com/havenbrook/realty-backend-go/internal/pkg/referral"
	"github.com/havenbrook/realty-backend-go/internal/repository/postgresql"
	authService "github.com/havenbrook/realty-backend-go/internal/service/auth"
	commissionService "github.com/havenbrook/realty-backend-go/internal/service/commission"
	invitationService "github.com/havenbrook/realty-backend-go/internal/service/invitation"
	leadService "github.com/havenbrook/realty-backend-go/internal/service/lead"
	payoutService "github.com/havenbrook/realty-backend-go/internal/service/payout"
	propertyService "github.com/havenbrook/realty-backend-go/internal/service/property"
	realtorService "github.com/havenbrook/realty-backend-go/internal/service/realtor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	invitationRepo := postgresql.NewInvitationRepository(db)
	realtorRepo := postgresql.NewRealtorRepository(db)
	propertyRepo := postgresql.NewPropertyRepository(db)
	leadRepo := postgresql.NewLeadRepository(db)
	commissionRepo := postgresql.NewCommissionRepository(db)
	payoutRepo := postgresql.NewPayoutRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	referralStore := referral.NewCookieStore(cfg.Referral.CookieName, cfg.Referral.FreshnessWindow)

	authSvc := authService.NewAuthService(db, userRepo, realtorRepo, JWTService, JWTRepository)
	invitationSvc := invitationService.NewInvitationService(
		db,
		invitationRepo,
		userRepo,
		realtorRepo,
		emailService,
		cfg.Invitation.TTL,
		cfg.App.FrontendURL,
	)
	realtorSvc := realtorService.NewRealtorService(db, realtorRepo)
	propertySvc := propertyService.NewPropertyService(propertyRepo, realtorRepo)
	leadSvc := leadService.NewLeadService(leadRepo, propertyRepo, realtorRepo)
	commissionSvc := commissionService.NewCommissionService(commissionRepo, realtorRepo, leadRepo)
	payoutSvc := payoutService.NewPayoutService(db, payoutRepo, realtorRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	invitationHandler := appHTTP.NewInvitationHandler(invitationSvc)
	referralHandler := appHTTP.NewReferralHandler(realtorSvc, referralStore)
	leadHandler := appHTTP.NewLeadHandler(leadSvc, referralStore)
	realtorHandler := appHTTP.NewRealtorHandler(realtorSvc, leadSvc, commissionSvc, payoutSvc)
	propertyHandler := appHTTP.NewPropertyHandler(propertySvc)
	commissionHandler := appHTTP.NewCommissionHandler(commissionSvc)
	payoutHandler := appHTTP.NewPayoutHandler(payoutSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env, FrontendURL: cfg.App.FrontendURL},
		JWTService,
		authHandler,
		invitationHandler,
		referralHandler,
		leadHandler,
		realtorHandler,
		propertyHandler,
		commissionHandler,
		payoutHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
