package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/onion2907/nivesh/cmd/tui/internal/view"
	"github.com/onion2907/nivesh/internal/asset"
	assetStore "github.com/onion2907/nivesh/internal/asset/store"
	"github.com/onion2907/nivesh/internal/balancesheet"
	"github.com/onion2907/nivesh/internal/config"
	"github.com/onion2907/nivesh/internal/database"
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
)

type model struct {
	ledgerService       *portfolio.Service
	liabilityService    *liability.Service
	balanceSheetService *balancesheet.Service
	orchestrator        *refresh.Orchestrator

	currentView View

	holdingsView     view.HoldingsModel
	transactionsView view.TransactionsModel
	liabilitiesView  view.LiabilitiesModel
	balanceSheetView view.BalanceSheetModel
}

type View int

const (
	ViewMenu         View = 0
	ViewHoldings     View = 1
	ViewTransactions View = 2
	ViewLiabilities  View = 3
	ViewBalanceSheet View = 4
)

func initialModel() model {
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

	metalsClient := metals.New(cfg.Prices.MetalBaseURL, cfg.Prices.FXBaseURL, cfg.Prices.CacheTTL)

	quoteProvider := price.Provider(&price.Fallback{
		Primary:   indianapi.New(cfg.Prices.IndianAPIKey, cfg.Prices.CacheTTL),
		Secondary: alphavantage.New(cfg.Prices.AlphaVantageKey, cfg.Prices.CacheTTL),
	})

	ledgerSvc := portfolio.NewService(portfolioStore.New(db))
	assetSvc := asset.NewService(assetStore.New(db), metalsClient)
	liabilitySvc := liability.NewService(liabilityStore.New(db))
	scalarSvc := scalars.NewService(scalarsStore.New(db))
	sheetSvc := balancesheet.NewService(ledgerSvc, liabilitySvc, assetSvc, scalarSvc)
	orchestrator := refresh.NewOrchestrator(quoteProvider)

	return model{
		ledgerService:       ledgerSvc,
		liabilityService:    liabilitySvc,
		balanceSheetService: sheetSvc,
		orchestrator:        orchestrator,
		currentView:         ViewMenu,
		holdingsView:        view.NewHoldingsModel(ledgerSvc, orchestrator),
		transactionsView:    view.NewTransactionsModel(ledgerSvc),
		liabilitiesView:     view.NewLiabilitiesModel(liabilitySvc),
		balanceSheetView:    view.NewBalanceSheetModel(sheetSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewHoldings
				m.holdingsView = view.NewHoldingsModel(m.ledgerService, m.orchestrator)

				return m, m.holdingsView.Init()
			case "2":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.ledgerService)

				return m, m.transactionsView.Init()
			case "3":
				m.currentView = ViewLiabilities
				m.liabilitiesView = view.NewLiabilitiesModel(m.liabilityService)

				return m, m.liabilitiesView.Init()
			case "4":
				m.currentView = ViewBalanceSheet
				m.balanceSheetView = view.NewBalanceSheetModel(m.balanceSheetService)

				return m, m.balanceSheetView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewHoldings:
		var newModel tea.Model
		newModel, cmd = m.holdingsView.Update(msg)
		m.holdingsView = newModel.(view.HoldingsModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewLiabilities:
		var newModel tea.Model
		newModel, cmd = m.liabilitiesView.Update(msg)
		m.liabilitiesView = newModel.(view.LiabilitiesModel)
	case ViewBalanceSheet:
		var newModel tea.Model
		newModel, cmd = m.balanceSheetView.Update(msg)
		m.balanceSheetView = newModel.(view.BalanceSheetModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Nivesh TUI\n\n" +
				"1. Holdings\n" +
				"2. Transaction Ledger\n" +
				"3. Liabilities\n" +
				"4. Balance Sheet\n\n" +
				"q. Quit",
		)
	case ViewHoldings:
		return m.holdingsView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewLiabilities:
		return m.liabilitiesView.View()
	case ViewBalanceSheet:
		return m.balanceSheetView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
