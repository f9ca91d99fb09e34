package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/onion2907/nivesh/internal/portfolio"
)

type transactionsState int

const (
	transactionsStateBrowse transactionsState = iota
	transactionsStateAdd
)

type TransactionsModel struct {
	CommonModel
	ledger *portfolio.Service

	state transactionsState
	table table.Model
	txs   []*portfolio.Transaction
	form  *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formSymbol   string
	formKind     string
	formQuantity string
	formPrice    string
	formDate     string
	formExchange string
}

func NewTransactionsModel(ledger *portfolio.Service) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Symbol", Width: 12},
		{Title: "Kind", Width: 6},
		{Title: "Qty", Width: 8},
		{Title: "Price", Width: 12},
		{Title: "Exchange", Width: 10},
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

	return TransactionsModel{
		ledger:  ledger,
		table:   t,
		loading: true,
	}
}

func (m TransactionsModel) Title() string { return "Transaction Ledger" }
func (m TransactionsModel) ShortHelp() string {
	if m.state == transactionsStateAdd {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | a: add | x: delete | r: reload"
}

type loadLedgerMsg struct {
	txs []*portfolio.Transaction
	err error
}

type ledgerSaveMsg struct {
	err error
}

func (m TransactionsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.ledger.List(ctx)
		return loadLedgerMsg{txs: txs, err: err}
	}
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadLedgerMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.txs = msg.txs
		m.refreshTable()

		return m, nil

	case ledgerSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}

		m.state = transactionsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case transactionsStateBrowse:
		return m.updateBrowse(msg)
	case transactionsStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			return m.enterAddMode()
		case "x":
			return m, m.deleteCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TransactionsModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formSymbol = ""
	m.formKind = string(portfolio.KindBuy)
	m.formQuantity = ""
	m.formPrice = ""
	m.formDate = FormatDate(time.Now())
	m.formExchange = "NSE"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("symbol").
				Title("Symbol").
				Value(&m.formSymbol).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("symbol cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("kind").
				Title("Kind").
				Options(
					huh.NewOption("Buy", string(portfolio.KindBuy)),
					huh.NewOption("Sell", string(portfolio.KindSell)),
				).
				Value(&m.formKind),

			huh.NewInput().
				Key("quantity").
				Title("Quantity").
				Value(&m.formQuantity).
				Validate(validatePositiveNumber),

			huh.NewInput().
				Key("price").
				Title("Price").
				Value(&m.formPrice).
				Validate(validatePositiveNumber),

			huh.NewInput().
				Key("date").
				Title("Date (YYYY-MM-DD)").
				Value(&m.formDate).
				Validate(func(s string) error {
					_, err := time.Parse("2006-01-02", s)
					return err
				}),

			huh.NewInput().
				Key("exchange").
				Title("Exchange").
				Value(&m.formExchange),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = transactionsStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func validatePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func (m TransactionsModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = transactionsStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m TransactionsModel) saveCmd() tea.Cmd {
	qty, _ := strconv.ParseFloat(m.formQuantity, 64)
	price, _ := strconv.ParseFloat(m.formPrice, 64)
	date, _ := time.Parse("2006-01-02", m.formDate)

	params := portfolio.CreateParams{
		Symbol:   strings.ToUpper(strings.TrimSpace(m.formSymbol)),
		Kind:     portfolio.Kind(m.formKind),
		Quantity: qty,
		Price:    price,
		Date:     date,
		Currency: "INR",
		Exchange: m.formExchange,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.ledger.Create(ctx, params)
		return ledgerSaveMsg{err: err}
	}
}

func (m TransactionsModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return nil
	}

	id := m.txs[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return ledgerSaveMsg{err: m.ledger.Delete(ctx, id)}
	}
}

func (m *TransactionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))

	for _, tx := range m.txs {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			tx.Symbol,
			string(tx.Kind),
			fmt.Sprintf("%g", tx.Quantity),
			FormatINR(tx.Price),
			tx.Exchange,
		})
	}

	m.table.SetRows(rows)
}

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading ledger...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == transactionsStateAdd && m.form != nil {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	parts := []string{tableView, m.ShortHelp()}
	if m.status != "" {
		parts = append([]string{m.status}, parts...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
