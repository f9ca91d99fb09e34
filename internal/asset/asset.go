package asset

import (
	"time"

	"github.com/google/uuid"
)

// Type is the closed enumeration of miscellaneous asset kinds. It selects
// which Detail variant an asset carries.
type Type string

const (
	TypeFixedDeposit     Type = "FIXED_DEPOSIT"
	TypeRecurringDeposit Type = "RECURRING_DEPOSIT"
	TypeBonds            Type = "BONDS"
	TypeMutualFunds      Type = "MUTUAL_FUNDS"
	TypeGold             Type = "GOLD"
	TypeSilver           Type = "SILVER"
	TypeJewels           Type = "JEWELS"
	TypeRealEstate       Type = "REAL_ESTATE"
	TypeProvidentFund    Type = "PROVIDENT_FUND"
	TypePensionFund      Type = "PENSION_FUND"
	TypeReceivables      Type = "RECEIVABLES"
	TypeStocks           Type = "STOCKS"
	TypeInsuranceLinked  Type = "INSURANCE_LINKED"
	TypeCashBank         Type = "CASH_BANK"
)

// Asset is a non-tradable holding: deposits, bonds, metals, real estate and
// the like. The common envelope carries the fields every asset has; the
// type-specific fields live in the Detail variant.
type Asset struct {
	ID           uuid.UUID
	Name         string
	Type         Type
	Currency     string
	Active       bool
	CurrentValue float64
	LastUpdated  time.Time
	Detail       Detail
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
