package importer

import (
	"fmt"
	"io"

	"github.com/onion2907/nivesh/internal/importer/zerodha"
	"github.com/onion2907/nivesh/internal/portfolio"
)

type Service struct {
	zerodhaImporter Importer
}

func NewService() *Service {
	return &Service{
		zerodhaImporter: zerodha.NewParser(),
	}
}

func (s *Service) Import(broker Broker, r io.Reader) ([]portfolio.CreateParams, error) {
	var imp Importer

	switch broker {
	case BrokerZerodha:
		imp = s.zerodhaImporter
	default:
		return nil, fmt.Errorf("unknown broker: %s", broker)
	}

	return imp.Parse(r)
}
