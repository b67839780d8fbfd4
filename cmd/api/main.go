package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/hospitalsanjose/billing/internal/billing"
	billingStore "github.com/hospitalsanjose/billing/internal/billing/store"
	"github.com/hospitalsanjose/billing/internal/catalog"
	catalogStore "github.com/hospitalsanjose/billing/internal/catalog/store"
	"github.com/hospitalsanjose/billing/internal/config"
	"github.com/hospitalsanjose/billing/internal/database"
	billingHttp "github.com/hospitalsanjose/billing/internal/http"
	catalogHandler "github.com/hospitalsanjose/billing/internal/http/catalog"
	chargeHandler "github.com/hospitalsanjose/billing/internal/http/charge"
	invoiceHandler "github.com/hospitalsanjose/billing/internal/http/invoice"
	"github.com/hospitalsanjose/billing/internal/invoice"
	invoiceStore "github.com/hospitalsanjose/billing/internal/invoice/store"
	"github.com/hospitalsanjose/billing/internal/money"
	"github.com/hospitalsanjose/billing/internal/pricelist"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	calc := money.NewCalculator(decimal.NewFromFloat(cfg.Billing.TaxRate))

	var (
		catalogService   = catalog.NewService(catalogStore.New(db))
		pricelistService = pricelist.NewService(catalogService)
		billingService   = billing.NewService(billingStore.New(db), catalogService, calc, cfg.Billing.PaymentMethods)
		invoiceService   = invoice.NewService(invoiceStore.New(db), calc,
			cfg.App.Name, cfg.Billing.EmissionPoint, cfg.Billing.PaymentMethods)
	)

	var (
		chargeH  = chargeHandler.NewHandler(billingService, calc)
		invoiceH = invoiceHandler.NewHandler(invoiceService)
		catalogH = catalogHandler.NewHandler(catalogService, pricelistService)
	)

	router := billingHttp.New(chargeH, invoiceH, catalogH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
