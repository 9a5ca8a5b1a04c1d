package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mgoncalo/centavo/internal/http/auth"
	budgetHandler "github.com/mgoncalo/centavo/internal/http/budget"
	categoryHandler "github.com/mgoncalo/centavo/internal/http/category"
	importHandler "github.com/mgoncalo/centavo/internal/http/importcsv"
	insightHandler "github.com/mgoncalo/centavo/internal/http/insight"
	ledgerHandler "github.com/mgoncalo/centavo/internal/http/ledger"
)

type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func New(
	opts Options,
	categories *categoryHandler.Handler,
	income *ledgerHandler.Handler,
	expenses *ledgerHandler.Handler,
	budgets *budgetHandler.Handler,
	insights *insightHandler.Handler,
	importCSV *importHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	// The timeout context aborts in-flight repository reads; handlers then
	// return an error instead of a partial response.
	router.Use(middleware.Timeout(opts.RequestTimeout))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	router.Use(auth.Middleware(opts.JWTSecret))

	router.Route("/finance", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categories.Routes(r)
		})

		r.Route("/income", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			income.Routes(r)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			expenses.Routes(r)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			budgets.Routes(r)
		})

		r.Route("/import", importCSV.Routes)
	})

	router.Route("/intelligence/insights", insights.Routes)

	return router
}
