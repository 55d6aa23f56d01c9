// Package market serves the mock price board shown on the dashboard.
package market

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed prices.yaml
var defaultPrices []byte

type Quote struct {
	Price     float64 `json:"price" yaml:"price"`
	Change24h float64 `json:"change24h" yaml:"change24h"`
}

// PriceBoard is a fixed symbol -> quote table.
type PriceBoard struct {
	quotes map[string]Quote
}

// DefaultPriceBoard returns the embedded table.
func DefaultPriceBoard() *PriceBoard {
	board, err := ParsePrices(defaultPrices)
	if err != nil {
		panic("market: embedded prices.yaml is invalid: " + err.Error())
	}
	return board
}

// LoadPriceBoard reads a table from path, or the embedded one when path is empty.
func LoadPriceBoard(path string) (*PriceBoard, error) {
	if path == "" {
		return DefaultPriceBoard(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read price table: %w", err)
	}
	return ParsePrices(data)
}

func ParsePrices(data []byte) (*PriceBoard, error) {
	var quotes map[string]Quote
	if err := yaml.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("parse price table: %w", err)
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("parse price table: no symbols")
	}
	return &PriceBoard{quotes: quotes}, nil
}

// Prices returns a copy of the table.
func (b *PriceBoard) Prices() map[string]Quote {
	out := make(map[string]Quote, len(b.quotes))
	for symbol, q := range b.quotes {
		out[symbol] = q
	}
	return out
}

func (b *PriceBoard) Quote(symbol string) (Quote, bool) {
	q, ok := b.quotes[symbol]
	return q, ok
}
