package zerodha_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onion2907/nivesh/internal/importer/zerodha"
	"github.com/onion2907/nivesh/internal/portfolio"
)

const tradebook = `symbol,isin,trade_date,exchange,segment,series,trade_type,auction,quantity,price,trade_id,order_id,order_execution_time
INFY,INE009A01021,2024-01-15,NSE,EQ,EQ,buy,false,10,1520.50,200001,110001,2024-01-15T09:30:12
TCS,INE467B01029,2024-02-02,NSE,EQ,EQ,buy,false,5,3890.00,200002,110002,2024-02-02T10:05:44
INFY,INE009A01021,2024-03-10,NSE,EQ,EQ,sell,false,4,1610.00,200003,110003,2024-03-10T14:22:01
`

func TestParser_Parse(t *testing.T) {
	params, err := zerodha.NewParser().Parse(strings.NewReader(tradebook))
	require.NoError(t, err)
	require.Len(t, params, 3)

	first := params[0]
	assert.Equal(t, "INFY", first.Symbol)
	assert.Equal(t, portfolio.KindBuy, first.Kind)
	assert.InDelta(t, 10, first.Quantity, 1e-9)
	assert.InDelta(t, 1520.50, first.Price, 1e-9)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "INR", first.Currency)
	assert.Equal(t, "NSE", first.Exchange)
	assert.Equal(t, "ISIN INE009A01021", first.Notes)

	assert.Equal(t, portfolio.KindSell, params[2].Kind)
	assert.InDelta(t, 4, params[2].Quantity, 1e-9)
}

func TestParser_PreambleAndFooterRows(t *testing.T) {
	input := "Tradebook for Aug 2024\nClient ID: AB1234\n\n" + tradebook + "\nTotal,,,,,,,,19,,,\n"

	params, err := zerodha.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, params, 3)
}

func TestParser_SkipsMalformedRows(t *testing.T) {
	input := `symbol,isin,trade_date,exchange,segment,trade_type,quantity,price
INFY,INE009A01021,2024-01-15,NSE,EQ,buy,10,1520.50
TCS,INE467B01029,not-a-date,NSE,EQ,buy,5,3890.00
WIPRO,INE075A01022,2024-01-20,NSE,EQ,hold,5,500
SBIN,INE062A01020,2024-01-21,NSE,EQ,buy,zero,810
`

	params, err := zerodha.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "INFY", params[0].Symbol)
}

func TestParser_NoHeader(t *testing.T) {
	params, err := zerodha.NewParser().Parse(strings.NewReader("just,some,random\ncsv,content,here\n"))
	require.NoError(t, err)
	assert.Empty(t, params)
}
