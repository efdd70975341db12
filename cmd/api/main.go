package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/ledger/internal/config"
	"github.com/MrJamesThe3rd/ledger/internal/customer"
	customerStore "github.com/MrJamesThe3rd/ledger/internal/customer/store"
	"github.com/MrJamesThe3rd/ledger/internal/database"
	erpHttp "github.com/MrJamesThe3rd/ledger/internal/http"
	customerHandler "github.com/MrJamesThe3rd/ledger/internal/http/customer"
	inventoryHandler "github.com/MrJamesThe3rd/ledger/internal/http/inventory"
	invoiceHandler "github.com/MrJamesThe3rd/ledger/internal/http/invoice"
	purchasingHandler "github.com/MrJamesThe3rd/ledger/internal/http/purchasing"
	reportHandler "github.com/MrJamesThe3rd/ledger/internal/http/report"
	salesHandler "github.com/MrJamesThe3rd/ledger/internal/http/sales"
	supplierHandler "github.com/MrJamesThe3rd/ledger/internal/http/supplier"
	"github.com/MrJamesThe3rd/ledger/internal/importer"
	"github.com/MrJamesThe3rd/ledger/internal/inventory"
	inventoryStore "github.com/MrJamesThe3rd/ledger/internal/inventory/store"
	"github.com/MrJamesThe3rd/ledger/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/ledger/internal/invoice/store"
	"github.com/MrJamesThe3rd/ledger/internal/purchasing"
	purchasingStore "github.com/MrJamesThe3rd/ledger/internal/purchasing/store"
	"github.com/MrJamesThe3rd/ledger/internal/report"
	reportStore "github.com/MrJamesThe3rd/ledger/internal/report/store"
	"github.com/MrJamesThe3rd/ledger/internal/sales"
	salesStore "github.com/MrJamesThe3rd/ledger/internal/sales/store"
	"github.com/MrJamesThe3rd/ledger/internal/supplier"
	supplierStore "github.com/MrJamesThe3rd/ledger/internal/supplier/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetLogLoggerLevel(cfg.LogLevel())

	db, err := database.New(cfg.ConnectionString(), cfg.DB.MaxOpenConns)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DB.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	var (
		invoiceService    = invoice.NewService(invoiceStore.New(db))
		customerService   = customer.NewService(customerStore.New(db))
		supplierService   = supplier.NewService(supplierStore.New(db))
		inventoryService  = inventory.NewService(inventoryStore.New(db))
		salesService      = sales.NewService(salesStore.New(db))
		purchasingService = purchasing.NewService(purchasingStore.New(db))
		reportService     = report.NewService(reportStore.New(db))
		importService     = importer.NewService()
	)

	router := erpHttp.New(erpHttp.Options{
		ServiceName:    cfg.App.Name,
		JWTSecret:      cfg.Auth.JWTSecret,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}, erpHttp.Handlers{
		Invoices:   invoiceHandler.NewHandler(invoiceService),
		Customers:  customerHandler.NewHandler(customerService),
		Suppliers:  supplierHandler.NewHandler(supplierService),
		Inventory:  inventoryHandler.NewHandler(inventoryService, importService),
		Sales:      salesHandler.NewHandler(salesService),
		Purchasing: purchasingHandler.NewHandler(purchasingService),
		Reports:    reportHandler.NewHandler(reportService),
	})

	if cfg.Auth.JWTSecret == "" {
		slog.Warn("AUTH_JWT_SECRET is empty, API is unauthenticated")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down server", "error", err)
		}
	}()

	slog.Info("starting server", "addr", srv.Addr, "service", cfg.App.Name)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
