package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hospitalsanjose/billing/internal/http/catalog"
	"github.com/hospitalsanjose/billing/internal/http/charge"
	"github.com/hospitalsanjose/billing/internal/http/invoice"
)

func New(
	chargesV1 *charge.Handler,
	invoicesV1 *invoice.Handler,
	catalogV1 *catalog.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/charges", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			chargesV1.Routes(r)
			invoicesV1.IssueRoutes(r)
		})

		r.Route("/stays", chargesV1.StayRoutes)
		r.Get("/tax/quote", chargesV1.TaxQuote)

		r.Route("/invoices", invoicesV1.Routes)
		r.Route("/invoice-ranges", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			invoicesV1.RangeRoutes(r)
		})

		r.Route("/catalog", catalogV1.Routes)
		r.Route("/pricelist", catalogV1.PriceListRoutes)
	})

	return router
}
