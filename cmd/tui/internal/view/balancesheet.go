package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/onion2907/nivesh/internal/balancesheet"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	lineStyle    = lipgloss.NewStyle().PaddingLeft(2)
	totalStyle   = lipgloss.NewStyle().Bold(true).PaddingLeft(2)
	worthStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("120"))
	debtStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

type BalanceSheetModel struct {
	CommonModel
	svc *balancesheet.Service

	sheet   balancesheet.BalanceSheet
	loading bool
	err     error
}

func NewBalanceSheetModel(svc *balancesheet.Service) BalanceSheetModel {
	return BalanceSheetModel{svc: svc, loading: true}
}

func (m BalanceSheetModel) Title() string     { return "Balance Sheet" }
func (m BalanceSheetModel) ShortHelp() string { return "Esc: back | r: recompute" }

type loadSheetMsg struct {
	sheet balancesheet.BalanceSheet
	err   error
}

func (m BalanceSheetModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		sheet, err := m.svc.Compose(ctx)
		return loadSheetMsg{sheet: sheet, err: err}
	}
}

func (m BalanceSheetModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m BalanceSheetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadSheetMsg:
		m.loading = false
		m.err = msg.err
		m.sheet = msg.sheet

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m BalanceSheetModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Composing balance sheet...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	a := m.sheet.Assets
	l := m.sheet.Liabilities

	netStyle := worthStyle
	if m.sheet.NetWorth < 0 {
		netStyle = debtStyle
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Assets"),
		lineStyle.Render("Stocks       "+FormatINR(a.Stocks)),
		lineStyle.Render("Cash         "+FormatINR(a.Cash)),
		lineStyle.Render("Misc assets  "+FormatINR(a.MiscAssets)),
		lineStyle.Render("Other        "+FormatINR(a.Other)),
		totalStyle.Render("Total        "+FormatINR(a.Total)),
		"",
		sectionStyle.Render("Liabilities"),
		lineStyle.Render("Loans        "+FormatINR(l.Loans)),
		lineStyle.Render("Credit cards "+FormatINR(l.CreditCards)),
		lineStyle.Render("Payables     "+FormatINR(l.Payables)),
		lineStyle.Render("Other        "+FormatINR(l.Other)),
		totalStyle.Render("Total        "+FormatINR(l.Total)),
		"",
		netStyle.Render("Net worth    "+FormatINR(m.sheet.NetWorth)),
		"",
		m.ShortHelp(),
	)

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}
