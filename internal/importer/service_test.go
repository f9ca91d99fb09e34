package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onion2907/nivesh/internal/importer"
)

func TestService_Import(t *testing.T) {
	input := `symbol,isin,trade_date,exchange,segment,trade_type,quantity,price
INFY,INE009A01021,2024-01-15,NSE,EQ,buy,10,1520.50
`

	params, err := importer.NewService().Import(importer.BrokerZerodha, strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "INFY", params[0].Symbol)
}

func TestService_Import_UnknownBroker(t *testing.T) {
	_, err := importer.NewService().Import(importer.Broker("upstox"), strings.NewReader(""))
	assert.ErrorContains(t, err, "unknown broker")
}
