// Package balancesheet derives a unified personal balance sheet from the
// stock portfolio, miscellaneous assets, liabilities and manual scalar
// values. The sheet is ephemeral: it is recomputed on demand and never
// stored as its own entity.
package balancesheet

import (
	"time"

	"github.com/onion2907/nivesh/internal/asset"
	"github.com/onion2907/nivesh/internal/liability"
	"github.com/onion2907/nivesh/internal/portfolio"
)

// Assets is the asset side of the sheet.
type Assets struct {
	Stocks     float64
	Cash       float64
	MiscAssets float64
	Other      float64
	Total      float64
}

// Liabilities is the liability side, bucketed by type for display.
type Liabilities struct {
	Loans       float64
	CreditCards float64
	Payables    float64
	Other       float64
	Total       float64
}

// BalanceSheet combines every asset and liability source into totals and
// a net worth figure.
type BalanceSheet struct {
	Assets           Assets
	Liabilities      Liabilities
	NetWorth         float64
	PortfolioMetrics portfolio.Metrics
	LiabilityMetrics liability.Metrics
	GeneratedAt      time.Time
}

// loanTypes are the liability types bucketed under "loans".
var loanTypes = map[liability.Type]bool{
	liability.TypeLoan:         true,
	liability.TypeMortgage:     true,
	liability.TypePersonalLoan: true,
	liability.TypeStudentLoan:  true,
	liability.TypeCarLoan:      true,
}

// Compose builds the balance sheet. Miscellaneous assets always
// participate in totalAssets; only active assets should be passed in.
// Liability types outside the known buckets count toward the total but
// land in the Other bucket.
func Compose(holdings []portfolio.Holding, liabilities []liability.Liability, cash, otherAssets, otherLiabilities float64, miscAssets []asset.Asset) BalanceSheet {
	var sheet BalanceSheet

	for _, h := range holdings {
		sheet.Assets.Stocks += h.CurrentValue
	}
	for _, a := range miscAssets {
		sheet.Assets.MiscAssets += a.CurrentValue
	}
	sheet.Assets.Cash = cash
	sheet.Assets.Other = otherAssets
	sheet.Assets.Total = sheet.Assets.Stocks + sheet.Assets.Cash + sheet.Assets.MiscAssets + sheet.Assets.Other

	for _, l := range liabilities {
		switch {
		case loanTypes[l.Type]:
			sheet.Liabilities.Loans += l.CurrentBalance
		case l.Type == liability.TypeCreditCard:
			sheet.Liabilities.CreditCards += l.CurrentBalance
		case l.Type == liability.TypePayable || l.Type == liability.TypeCommittedExpense:
			sheet.Liabilities.Payables += l.CurrentBalance
		default:
			sheet.Liabilities.Other += l.CurrentBalance
		}
	}
	sheet.Liabilities.Total = sheet.Liabilities.Loans + sheet.Liabilities.CreditCards +
		sheet.Liabilities.Payables + sheet.Liabilities.Other + otherLiabilities

	sheet.NetWorth = sheet.Assets.Total - sheet.Liabilities.Total

	sheet.PortfolioMetrics = portfolio.ComputeMetrics(holdings)
	sheet.LiabilityMetrics = liability.ComputeMetrics(liabilities)
	sheet.GeneratedAt = time.Now().UTC()

	return sheet
}
