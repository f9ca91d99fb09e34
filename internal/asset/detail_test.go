package asset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onion2907/nivesh/internal/asset"
)

func TestUnmarshalDetail_VariantPerType(t *testing.T) {
	type testCase struct {
		name string
		typ  asset.Type
		raw  string
		want asset.Detail
	}

	tests := []testCase{
		{
			name: "Deposit",
			typ:  asset.TypeFixedDeposit,
			raw:  `{"institution":"SBI","principal":100000,"interest_rate":7.1}`,
			want: asset.DepositDetail{Institution: "SBI", Principal: 100000, InterestRate: 7.1},
		},
		{
			name: "Metal",
			typ:  asset.TypeGold,
			raw:  `{"weight_grams":10,"purity":"24K","price_per_gram":7250}`,
			want: asset.MetalDetail{WeightGrams: 10, Purity: "24K", PricePerGram: 7250},
		},
		{
			name: "Fund",
			typ:  asset.TypeMutualFunds,
			raw:  `{"fund_name":"Index Fund","units":120.5,"nav":88.4}`,
			want: asset.FundDetail{FundName: "Index Fund", Units: 120.5, NAV: 88.4},
		},
		{
			name: "EmptyBlobYieldsZeroVariant",
			typ:  asset.TypeCashBank,
			raw:  "",
			want: asset.BankDetail{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := asset.UnmarshalDetail(tt.typ, []byte(tt.raw))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnmarshalDetail_UnknownType(t *testing.T) {
	_, err := asset.UnmarshalDetail("CRYPTO", []byte(`{}`))
	assert.Error(t, err)
}

func TestUnmarshalDetail_MalformedJSON(t *testing.T) {
	_, err := asset.UnmarshalDetail(asset.TypeGold, []byte(`{"weight_grams":`))
	assert.Error(t, err)
}

func TestMarshalDetail_RoundTrip(t *testing.T) {
	in := asset.InsuranceDetail{PolicyNumber: "LIC-123", Insurer: "LIC", SumAssured: 2000000}

	raw, err := asset.MarshalDetail(in)
	require.NoError(t, err)

	out, err := asset.UnmarshalDetail(asset.TypeInsuranceLinked, raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
