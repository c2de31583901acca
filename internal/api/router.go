/**
 * @description
 * This file sets up the HTTP router using the `chi` routing library. It
 * defines all the API routes and applies the necessary middleware. Route
 * shapes follow the reference-data API: `/pup/organisations`,
 * `/pup/professional-users` and `/pup/payment-accounts`.
 *
 * @dependencies
 * - github.com/go-chi/chi/v5: The routing library.
 * - The service's internal packages for handlers and middleware.
 */
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lexref/pup-service/internal/app"
	"github.com/lexref/pup-service/internal/config"
	"github.com/lexref/pup-service/pkg/middleware"
)

// Services bundles the application services the router exposes.
type Services struct {
	Organisations *app.OrganisationService
	Users         *app.ProfessionalUserService
	Accounts      *app.PaymentAccountService
	AddressTypes  *app.AddressTypeService
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(cfg *config.Config, db *pgxpool.Pool, services Services) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RateLimit(cfg.RateLimitPerMinute))

	// Health check endpoint with a database ping.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})

	orgHandler := NewOrganisationHandler(services.Organisations)
	userHandler := NewProfessionalUserHandler(services.Users)
	accountHandler := NewPaymentAccountHandler(services.Accounts)
	addressTypeHandler := NewAddressTypeHandler(services.AddressTypes)

	// Group routes that require authentication
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(middleware.AuthConfig{
			JWKSURL:             cfg.JWKSURL,
			ExpectedIssuer:      cfg.JWTIssuer,
			AllowHeaderFallback: cfg.AuthHeaderFallback,
		}))

		r.Route("/pup/organisations", func(r chi.Router) {
			r.Post("/", orgHandler.CreateOrganisation)
			r.Get("/{orgID}", orgHandler.GetOrganisation)
			r.Delete("/{orgID}", orgHandler.DeleteOrganisation)
		})

		r.Route("/pup/professional-users", func(r chi.Router) {
			r.Post("/", userHandler.CreateProfessionalUser)
			r.Get("/{userID}", userHandler.GetProfessionalUser)
			r.Delete("/{userID}", userHandler.DeleteProfessionalUser)
			r.Get("/{userID}/payment-accounts", userHandler.ListAssignedAccounts)
		})

		r.Route("/pup/payment-accounts", func(r chi.Router) {
			r.Post("/", accountHandler.CreatePaymentAccount)
			r.Get("/mine", accountHandler.MyPaymentAccounts)
			r.Get("/{pbaNumber}", accountHandler.GetPaymentAccount)
			r.Delete("/{pbaNumber}", accountHandler.DeletePaymentAccount)
			r.Post("/{pbaNumber}/assign", accountHandler.AssignPaymentAccount)
			r.Post("/{pbaNumber}/unassign", accountHandler.UnassignPaymentAccount)
		})

		r.Route("/pup/address-types", func(r chi.Router) {
			r.Get("/", addressTypeHandler.ListAddressTypes)
			r.Get("/{addressTypeID}", addressTypeHandler.GetAddressType)
		})
	})

	return r
}
