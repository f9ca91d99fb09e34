package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/onion2907/nivesh/internal/portfolio"
	"github.com/onion2907/nivesh/internal/refresh"
)

type HoldingsModel struct {
	CommonModel
	ledger       *portfolio.Service
	orchestrator *refresh.Orchestrator

	table    table.Model
	snapshot *portfolio.Snapshot

	loading    bool
	refreshing bool
	err        error
}

func NewHoldingsModel(ledger *portfolio.Service, orchestrator *refresh.Orchestrator) HoldingsModel {
	columns := []table.Column{
		{Title: "Symbol", Width: 12},
		{Title: "Qty", Width: 8},
		{Title: "Avg Cost", Width: 12},
		{Title: "LTP", Width: 12},
		{Title: "Value", Width: 14},
		{Title: "P&L", Width: 14},
		{Title: "P&L %", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return HoldingsModel{
		ledger:       ledger,
		orchestrator: orchestrator,
		table:        t,
		loading:      true,
	}
}

func (m HoldingsModel) Title() string { return "Holdings" }
func (m HoldingsModel) ShortHelp() string {
	return "Esc: back | r: refresh prices"
}

type loadSnapshotMsg struct {
	snapshot *portfolio.Snapshot
	err      error
}

func (m HoldingsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		snap, err := m.ledger.Portfolio(ctx)
		return loadSnapshotMsg{snapshot: snap, err: err}
	}
}

func (m HoldingsModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.ledger.List(ctx)
		if err != nil {
			return loadSnapshotMsg{err: err}
		}

		holdings, metrics := m.orchestrator.Refresh(ctx, txs)

		snap, err := m.ledger.SaveRefreshed(ctx, holdings, metrics)
		return loadSnapshotMsg{snapshot: snap, err: err}
	}
}

func (m HoldingsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m HoldingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadSnapshotMsg:
		m.loading = false
		m.refreshing = false

		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.snapshot = msg.snapshot
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.refreshing = true
			return m, m.refreshCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *HoldingsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.snapshot.Holdings))

	for _, h := range m.snapshot.Holdings {
		rows = append(rows, table.Row{
			h.Symbol,
			fmt.Sprintf("%g", h.Quantity),
			FormatINR(h.AverageCost),
			FormatINR(h.LastTradedPrice),
			FormatINR(h.CurrentValue),
			FormatINR(h.ProfitLoss),
			FormatPercent(h.ProfitLossPercent),
		})
	}

	m.table.SetRows(rows)
}

func (m HoldingsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading portfolio...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	metrics := m.snapshot.Metrics
	summary := fmt.Sprintf(
		"Value: %s | Cost: %s | P&L: %s (%s)",
		FormatINR(metrics.TotalValue),
		FormatINR(metrics.TotalCost),
		FormatINR(metrics.TotalGainLoss),
		FormatPercent(metrics.TotalGainLossPercentage),
	)

	if m.snapshot.LastRefreshTime != nil {
		summary += " | Refreshed: " + m.snapshot.LastRefreshTime.Format("2006-01-02 15:04")
	}

	if m.refreshing {
		summary += " | fetching prices..."
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.JoinVertical(lipgloss.Left, summary, tableView, m.ShortHelp())
}
