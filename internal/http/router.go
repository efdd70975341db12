package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/ledger/internal/http/auth"
	"github.com/MrJamesThe3rd/ledger/internal/http/customer"
	"github.com/MrJamesThe3rd/ledger/internal/http/inventory"
	"github.com/MrJamesThe3rd/ledger/internal/http/invoice"
	"github.com/MrJamesThe3rd/ledger/internal/http/purchasing"
	"github.com/MrJamesThe3rd/ledger/internal/http/report"
	"github.com/MrJamesThe3rd/ledger/internal/http/respond"
	"github.com/MrJamesThe3rd/ledger/internal/http/sales"
	"github.com/MrJamesThe3rd/ledger/internal/http/supplier"
)

type Options struct {
	ServiceName    string
	JWTSecret      string
	AllowedOrigins []string
}

type Handlers struct {
	Invoices   *invoice.Handler
	Customers  *customer.Handler
	Suppliers  *supplier.Handler
	Inventory  *inventory.Handler
	Sales      *sales.Handler
	Purchasing *purchasing.Handler
	Reports    *report.Handler
}

type welcomeResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func New(opts Options, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, welcomeResponse{Message: "Welcome to the ERP API"})
	})

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, healthResponse{Status: "healthy", Service: opts.ServiceName})
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(opts.JWTSecret))
		r.Use(middleware.AllowContentType("application/json", "multipart/form-data"))

		r.Route("/invoices", h.Invoices.Routes)

		r.Route("/customers", func(r chi.Router) {
			h.Customers.Routes(r)
			r.Get("/{id}/invoices", h.Invoices.ListByCustomer)
		})

		r.Route("/suppliers", h.Suppliers.Routes)
		r.Route("/inventory", h.Inventory.Routes)
		r.Route("/sales", h.Sales.Routes)
		r.Route("/purchasing", h.Purchasing.Routes)
		r.Route("/reports", h.Reports.Routes)
	})

	return router
}
