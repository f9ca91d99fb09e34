package export_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onion2907/nivesh/internal/export"
	"github.com/onion2907/nivesh/internal/portfolio"
)

type stubLister struct {
	txs []*portfolio.Transaction
	err error
}

func (s *stubLister) List(context.Context) ([]*portfolio.Transaction, error) {
	return s.txs, s.err
}

func TestService_Export(t *testing.T) {
	lister := &stubLister{txs: []*portfolio.Transaction{
		{
			ID:       uuid.New(),
			Symbol:   "INFY",
			Name:     "Infosys",
			Kind:     portfolio.KindBuy,
			Quantity: 10,
			Price:    1520.5,
			Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Currency: "INR",
			Exchange: "NSE",
		},
		{
			ID:       uuid.New(),
			Symbol:   "INFY",
			Kind:     portfolio.KindSell,
			Quantity: 4,
			Price:    1610,
			Date:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			Currency: "INR",
			Exchange: "NSE",
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, export.NewService(lister).Export(context.Background(), &buf))

	want := "symbol,name,trade_type,quantity,price,trade_date,currency,exchange,notes\n" +
		"INFY,Infosys,buy,10,1520.5,2024-01-15,INR,NSE,\n" +
		"INFY,,sell,4,1610,2024-03-10,INR,NSE,\n"
	assert.Equal(t, want, buf.String())
}

func TestService_Export_EmptyLedger(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.NewService(&stubLister{}).Export(context.Background(), &buf))
	assert.Equal(t, "symbol,name,trade_type,quantity,price,trade_date,currency,exchange,notes\n", buf.String())
}

func TestService_Export_ListError(t *testing.T) {
	lister := &stubLister{err: errors.New("db error")}

	err := export.NewService(lister).Export(context.Background(), &bytes.Buffer{})
	assert.ErrorContains(t, err, "listing transactions")
}
