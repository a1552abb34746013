package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/shopledger/internal/http/ledger"
	"github.com/MrJamesThe3rd/shopledger/internal/http/page"
)

type Options struct {
	Timeout        time.Duration
	AllowedOrigins []string
}

func New(ledgerH *ledger.Handler, pageH *page.Handler, opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.NotFound(ledger.NotFound)
	// A route is method plus path, so a known path with another method is not found.
	router.MethodNotAllowed(ledger.NotFound)

	pageH.Routes(router)
	ledgerH.Routes(router)

	return router
}
