// Package zerodha parses Zerodha Console tradebook CSV exports.
package zerodha

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	enc "github.com/onion2907/nivesh/internal/encoding"
	"github.com/onion2907/nivesh/internal/portfolio"
)

const (
	colSymbol    = "symbol"
	colISIN      = "isin"
	colTradeDate = "trade_date"
	colExchange  = "exchange"
	colSegment   = "segment"
	colTradeType = "trade_type"
	colQuantity  = "quantity"
	colPrice     = "price"
)

// Parser reads a Zerodha tradebook export. The tradebook lists one row
// per fill, oldest first, which matches the ledger's append order.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]portfolio.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	idx := map[string]int{}
	headerFound := false

	var params []portfolio.CreateParams

	for _, row := range rows {
		// Console exports carry preamble rows before the real header,
		// so scan until a row containing the known column names.
		if !headerFound {
			for i, col := range row {
				switch strings.ToLower(strings.TrimSpace(col)) {
				case colSymbol, colISIN, colTradeDate, colExchange, colSegment, colTradeType, colQuantity, colPrice:
					idx[strings.ToLower(strings.TrimSpace(col))] = i
				}
			}

			if _, ok := idx[colSymbol]; ok {
				if _, ok := idx[colTradeType]; ok {
					headerFound = true
				}
			}
			if !headerFound {
				idx = map[string]int{}
			}
			continue
		}

		symbol := field(row, idx, colSymbol)
		if symbol == "" {
			continue
		}

		date, err := time.Parse("2006-01-02", field(row, idx, colTradeDate))
		if err != nil {
			// Footer or summary row.
			continue
		}

		kind, err := parseTradeType(field(row, idx, colTradeType))
		if err != nil {
			continue
		}

		qty, err := strconv.ParseFloat(field(row, idx, colQuantity), 64)
		if err != nil || qty <= 0 {
			continue
		}

		price, err := strconv.ParseFloat(field(row, idx, colPrice), 64)
		if err != nil || price <= 0 {
			continue
		}

		params = append(params, portfolio.CreateParams{
			Symbol:   symbol,
			Name:     symbol,
			Kind:     kind,
			Quantity: qty,
			Price:    price,
			Date:     date,
			Currency: "INR",
			Exchange: field(row, idx, colExchange),
			Notes:    isinNote(field(row, idx, colISIN)),
		})
	}

	return params, nil
}

func field(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseTradeType(s string) (portfolio.Kind, error) {
	switch strings.ToLower(s) {
	case "buy":
		return portfolio.KindBuy, nil
	case "sell":
		return portfolio.KindSell, nil
	default:
		return "", fmt.Errorf("unknown trade type: %q", s)
	}
}

func isinNote(isin string) string {
	if isin == "" {
		return ""
	}
	return "ISIN " + isin
}
