package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	assethttp "github.com/onion2907/nivesh/internal/http/asset"
	balancesheethttp "github.com/onion2907/nivesh/internal/http/balancesheet"
	exportcsvhttp "github.com/onion2907/nivesh/internal/http/exportcsv"
	importcsvhttp "github.com/onion2907/nivesh/internal/http/importcsv"
	liabilityhttp "github.com/onion2907/nivesh/internal/http/liability"
	portfoliohttp "github.com/onion2907/nivesh/internal/http/portfolio"
	proxyhttp "github.com/onion2907/nivesh/internal/http/proxy"
	scalarshttp "github.com/onion2907/nivesh/internal/http/scalars"
)

func New(
	portfolioV1 *portfoliohttp.Handler,
	assetsV1 *assethttp.Handler,
	liabilitiesV1 *liabilityhttp.Handler,
	balanceSheetV1 *balancesheethttp.Handler,
	scalarsV1 *scalarshttp.Handler,
	importV1 *importcsvhttp.Handler,
	exportV1 *exportcsvhttp.Handler,
	proxy *proxyhttp.Handler,
	staticDir string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/transactions", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				portfolioV1.TransactionRoutes(r)
			})

			r.Route("/portfolio", portfolioV1.PortfolioRoutes)
			r.Route("/symbols", portfolioV1.SymbolRoutes)

			r.Route("/assets", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				assetsV1.Routes(r)
			})

			r.Route("/liabilities", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				liabilitiesV1.Routes(r)
			})

			r.Route("/balance-sheet", balanceSheetV1.Routes)
			r.Route("/scalars", scalarsV1.Routes)
			r.Route("/import", importV1.Routes)
			r.Route("/export", exportV1.Routes)
		})

		proxy.Routes(r)
	})

	if staticDir != "" {
		router.NotFound(spaHandler(staticDir))
	}

	return router
}

// spaHandler serves files from dir, falling back to index.html for any
// path without a file so client-side routing keeps working.
func spaHandler(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
