package asset

import (
	"encoding/json"
	"fmt"
	"time"
)

// Detail is the variant part of an Asset. Exactly one variant applies per
// asset type; the mapping is fixed in detailFor.
type Detail interface {
	isDetail()
}

// DepositDetail covers FIXED_DEPOSIT and RECURRING_DEPOSIT.
type DepositDetail struct {
	Institution  string     `json:"institution,omitempty"`
	Principal    float64    `json:"principal"`
	InterestRate float64    `json:"interest_rate"`
	MaturityDate *time.Time `json:"maturity_date,omitempty"`
}

// BondDetail covers BONDS.
type BondDetail struct {
	Issuer       string     `json:"issuer,omitempty"`
	FaceValue    float64    `json:"face_value"`
	CouponRate   float64    `json:"coupon_rate"`
	MaturityDate *time.Time `json:"maturity_date,omitempty"`
}

// FundDetail covers MUTUAL_FUNDS, PROVIDENT_FUND and PENSION_FUND.
type FundDetail struct {
	FundName    string  `json:"fund_name,omitempty"`
	Units       float64 `json:"units"`
	NAV         float64 `json:"nav"`
	FolioNumber string  `json:"folio_number,omitempty"`
}

// MetalDetail covers GOLD, SILVER and JEWELS. For GOLD and SILVER the
// asset's current value is derived as WeightGrams times the live
// price-per-gram rather than entered by the user.
type MetalDetail struct {
	WeightGrams  float64 `json:"weight_grams"`
	Purity       string  `json:"purity,omitempty"`
	PricePerGram float64 `json:"price_per_gram,omitempty"`
}

// RealEstateDetail covers REAL_ESTATE.
type RealEstateDetail struct {
	Location      string     `json:"location,omitempty"`
	PurchasePrice float64    `json:"purchase_price"`
	PurchaseDate  *time.Time `json:"purchase_date,omitempty"`
}

// ReceivableDetail covers RECEIVABLES.
type ReceivableDetail struct {
	Counterparty string     `json:"counterparty,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
}

// EquityDetail covers STOCKS held outside the transaction ledger.
type EquityDetail struct {
	Symbol   string  `json:"symbol,omitempty"`
	Quantity float64 `json:"quantity"`
}

// InsuranceDetail covers INSURANCE_LINKED.
type InsuranceDetail struct {
	PolicyNumber string     `json:"policy_number,omitempty"`
	Insurer      string     `json:"insurer,omitempty"`
	SumAssured   float64    `json:"sum_assured"`
	MaturityDate *time.Time `json:"maturity_date,omitempty"`
}

// BankDetail covers CASH_BANK.
type BankDetail struct {
	Institution string `json:"institution,omitempty"`
	AccountType string `json:"account_type,omitempty"`
}

func (DepositDetail) isDetail()    {}
func (BondDetail) isDetail()       {}
func (FundDetail) isDetail()       {}
func (MetalDetail) isDetail()      {}
func (RealEstateDetail) isDetail() {}
func (ReceivableDetail) isDetail() {}
func (EquityDetail) isDetail()     {}
func (InsuranceDetail) isDetail()  {}
func (BankDetail) isDetail()       {}

// detailFor returns a zero value of the variant matching the asset type.
func detailFor(t Type) (Detail, error) {
	switch t {
	case TypeFixedDeposit, TypeRecurringDeposit:
		return DepositDetail{}, nil
	case TypeBonds:
		return BondDetail{}, nil
	case TypeMutualFunds, TypeProvidentFund, TypePensionFund:
		return FundDetail{}, nil
	case TypeGold, TypeSilver, TypeJewels:
		return MetalDetail{}, nil
	case TypeRealEstate:
		return RealEstateDetail{}, nil
	case TypeReceivables:
		return ReceivableDetail{}, nil
	case TypeStocks:
		return EquityDetail{}, nil
	case TypeInsuranceLinked:
		return InsuranceDetail{}, nil
	case TypeCashBank:
		return BankDetail{}, nil
	}

	return nil, fmt.Errorf("unknown asset type %q", t)
}

// MarshalDetail serializes a detail variant for storage.
func MarshalDetail(d Detail) ([]byte, error) {
	if d == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(d)
}

// UnmarshalDetail decodes a stored detail blob into the variant matching the
// asset type.
func UnmarshalDetail(t Type, raw []byte) (Detail, error) {
	variant, err := detailFor(t)
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return variant, nil
	}

	switch v := variant.(type) {
	case DepositDetail:
		err = json.Unmarshal(raw, &v)
		return v, err
	case BondDetail:
		err = json.Unmarshal(raw, &v)
		return v, err
	case FundDetail:
		err = json.Unmarshal(raw, &v)
		return v, err
	case MetalDetail:
		err = json.Unmarshal(raw, &v)
		return v, err
	case RealEstateDetail:
		err = json.Unmarshal(raw, &v)
		return v, err
	case ReceivableDetail:
		err = json.Unmarshal(raw, &v)
		return v, err
	case EquityDetail:
		err = json.Unmarshal(raw, &v)
		return v, err
	case InsuranceDetail:
		err = json.Unmarshal(raw, &v)
		return v, err
	case BankDetail:
		err = json.Unmarshal(raw, &v)
		return v, err
	}

	return nil, fmt.Errorf("unknown asset type %q", t)
}
