// Package importer turns broker tradebook exports into ledger
// transaction params.
package importer

import (
	"io"

	"github.com/onion2907/nivesh/internal/portfolio"
)

type Broker string

const (
	BrokerZerodha Broker = "zerodha"
)

type Importer interface {
	Parse(r io.Reader) ([]portfolio.CreateParams, error)
}
