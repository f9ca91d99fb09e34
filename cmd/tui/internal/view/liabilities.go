package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/onion2907/nivesh/internal/liability"
)

type LiabilitiesModel struct {
	CommonModel
	svc *liability.Service

	table       table.Model
	liabilities []liability.Liability
	metrics     liability.Metrics

	loading bool
	err     error
}

func NewLiabilitiesModel(svc *liability.Service) LiabilitiesModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Type", Width: 18},
		{Title: "Balance", Width: 14},
		{Title: "Rate", Width: 8},
		{Title: "EMI", Width: 12},
		{Title: "Term", Width: 12},
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

	return LiabilitiesModel{
		svc:     svc,
		table:   t,
		loading: true,
	}
}

func (m LiabilitiesModel) Title() string     { return "Liabilities" }
func (m LiabilitiesModel) ShortHelp() string { return "Esc: back | r: reload" }

type loadLiabilitiesMsg struct {
	liabilities []liability.Liability
	metrics     liability.Metrics
	err         error
}

func (m LiabilitiesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		liabilities, err := m.svc.List(ctx)
		if err != nil {
			return loadLiabilitiesMsg{err: err}
		}

		return loadLiabilitiesMsg{
			liabilities: liabilities,
			metrics:     liability.ComputeMetrics(liabilities),
		}
	}
}

func (m LiabilitiesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m LiabilitiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadLiabilitiesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.liabilities = msg.liabilities
		m.metrics = msg.metrics
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
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *LiabilitiesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.liabilities))

	for _, l := range m.liabilities {
		rows = append(rows, table.Row{
			l.Name,
			string(l.Type),
			FormatINR(l.CurrentBalance),
			fmt.Sprintf("%.2f%%", l.InterestRate),
			FormatINR(l.MonthlyPayment),
			string(l.Term),
		})
	}

	m.table.SetRows(rows)
}

func (m LiabilitiesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading liabilities...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	summary := fmt.Sprintf(
		"Total: %s | Secured: %s | Unsecured: %s | Monthly: %s | Avg rate: %.2f%%",
		FormatINR(m.metrics.TotalLiabilities),
		FormatINR(m.metrics.SecuredDebt),
		FormatINR(m.metrics.UnsecuredDebt),
		FormatINR(m.metrics.TotalMonthlyPayment),
		m.metrics.AverageInterestRate,
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.JoinVertical(lipgloss.Left, summary, tableView, m.ShortHelp())
}
