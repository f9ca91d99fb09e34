package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/onion2907/nivesh/internal/asset"
	assetStore "github.com/onion2907/nivesh/internal/asset/store"
	"github.com/onion2907/nivesh/internal/balancesheet"
	"github.com/onion2907/nivesh/internal/config"
	"github.com/onion2907/nivesh/internal/database"
	"github.com/onion2907/nivesh/internal/export"
	niveshHttp "github.com/onion2907/nivesh/internal/http"
	assetHandler "github.com/onion2907/nivesh/internal/http/asset"
	balanceSheetHandler "github.com/onion2907/nivesh/internal/http/balancesheet"
	exportHandler "github.com/onion2907/nivesh/internal/http/exportcsv"
	importHandler "github.com/onion2907/nivesh/internal/http/importcsv"
	liabilityHandler "github.com/onion2907/nivesh/internal/http/liability"
	portfolioHandler "github.com/onion2907/nivesh/internal/http/portfolio"
	proxyHandler "github.com/onion2907/nivesh/internal/http/proxy"
	scalarsHandler "github.com/onion2907/nivesh/internal/http/scalars"
	"github.com/onion2907/nivesh/internal/importer"
	"github.com/onion2907/nivesh/internal/liability"
	liabilityStore "github.com/onion2907/nivesh/internal/liability/store"
	"github.com/onion2907/nivesh/internal/portfolio"
	portfolioStore "github.com/onion2907/nivesh/internal/portfolio/store"
	"github.com/onion2907/nivesh/internal/price"
	"github.com/onion2907/nivesh/internal/price/alphavantage"
	"github.com/onion2907/nivesh/internal/price/indianapi"
	"github.com/onion2907/nivesh/internal/price/metals"
	"github.com/onion2907/nivesh/internal/refresh"
	"github.com/onion2907/nivesh/internal/scalars"
	scalarsStore "github.com/onion2907/nivesh/internal/scalars/store"
	"github.com/onion2907/nivesh/internal/scheduler"
)

func main() {
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

	metalsClient := metals.New(cfg.Prices.MetalBaseURL, cfg.Prices.FXBaseURL, cfg.Prices.CacheTTL)
	alphaClient := alphavantage.New(cfg.Prices.AlphaVantageKey, cfg.Prices.CacheTTL)

	quoteProvider := price.Provider(&price.Fallback{
		Primary:   indianapi.New(cfg.Prices.IndianAPIKey, cfg.Prices.CacheTTL),
		Secondary: alphaClient,
	})

	var (
		portfolioService    = portfolio.NewService(portfolioStore.New(db))
		assetService        = asset.NewService(assetStore.New(db), metalsClient)
		liabilityService    = liability.NewService(liabilityStore.New(db))
		scalarService       = scalars.NewService(scalarsStore.New(db))
		balanceSheetService = balancesheet.NewService(portfolioService, liabilityService, assetService, scalarService)
		importService       = importer.NewService()
		exportService       = export.NewService(portfolioService)
		orchestrator        = refresh.NewOrchestrator(quoteProvider)
	)

	var (
		portfolioH    = portfolioHandler.NewHandler(portfolioService, orchestrator, alphaClient)
		assetH        = assetHandler.NewHandler(assetService)
		liabilityH    = liabilityHandler.NewHandler(liabilityService)
		balanceSheetH = balanceSheetHandler.NewHandler(balanceSheetService)
		scalarsH      = scalarsHandler.NewHandler(scalarService)
		importH       = importHandler.NewHandler(importService, portfolioService)
		exportH       = exportHandler.NewHandler(exportService)
		proxyH        = proxyHandler.NewHandler(metalsClient)
	)

	router := niveshHttp.New(
		portfolioH,
		assetH,
		liabilityH,
		balanceSheetH,
		scalarsH,
		importH,
		exportH,
		proxyH,
		cfg.App.StaticDir,
	)

	if cfg.Refresh.Schedule != "" {
		sched := scheduler.New()

		job := refresh.NewJob(orchestrator, portfolioService, cfg.Server.Timeout)
		if err := sched.AddJob(cfg.Refresh.Schedule, job); err != nil {
			slog.Error("failed to schedule refresh", "error", err)
			os.Exit(1)
		}

		sched.Start()
		defer sched.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
