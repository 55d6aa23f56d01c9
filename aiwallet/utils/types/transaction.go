package types

import (
	"aiwallet/aiwallet/sources/psql/models"
	"aiwallet/aiwallet/utils/apperr"
	"strings"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the raw body of POST /api/transactions.
type CreateTransactionRequest struct {
	Type      string  `json:"type"`
	Amount    string  `json:"amount"`
	Symbol    string  `json:"symbol"`
	ToAddress *string `json:"toAddress,omitempty"`
	Memo      *string `json:"memo,omitempty"`
	ToSymbol  *string `json:"toSymbol,omitempty"`
	Validator *string `json:"validator,omitempty"`
}

// TransactionInput is a validated transaction request. Build it with
// CreateTransactionRequest.Parse or NewTransactionInput.
type TransactionInput struct {
	Type      models.TransactionType
	Amount    models.Amount
	Symbol    string
	ToAddress string
	ToSymbol  string
	Memo      string
	Validator string
}

// publicTypes are the transaction kinds a client may create directly;
// receive and unstake only happen through internal paths.
var publicTypes = map[models.TransactionType]bool{
	models.TxSend:  true,
	models.TxSwap:  true,
	models.TxStake: true,
}

// Parse validates the request as submitted by an API client.
func (r CreateTransactionRequest) Parse() (TransactionInput, error) {
	typ := models.TransactionType(strings.TrimSpace(r.Type))
	if !publicTypes[typ] {
		return TransactionInput{}, apperr.Invalid("type", "Invalid enum value. Expected 'send' | 'swap' | 'stake', received '%s'", r.Type)
	}
	in := TransactionInput{
		Type:      typ,
		Symbol:    strings.TrimSpace(r.Symbol),
		ToAddress: deref(r.ToAddress),
		ToSymbol:  strings.TrimSpace(deref(r.ToSymbol)),
		Memo:      deref(r.Memo),
		Validator: deref(r.Validator),
	}
	amount, err := parseAmount(r.Amount)
	if err != nil {
		return TransactionInput{}, err
	}
	in.Amount = amount
	return in, in.Validate()
}

// NewTransactionInput builds an input for internal callers, which may use
// every transaction type.
func NewTransactionInput(typ models.TransactionType, symbol, amount string) (TransactionInput, error) {
	a, err := parseAmount(amount)
	if err != nil {
		return TransactionInput{}, err
	}
	in := TransactionInput{Type: typ, Symbol: strings.TrimSpace(symbol), Amount: a}
	return in, in.Validate()
}

func (in TransactionInput) Validate() error {
	if !in.Type.Valid() {
		return apperr.Invalid("type", "unknown transaction type %q", in.Type)
	}
	if in.Symbol == "" {
		return apperr.Invalid("symbol", "symbol is required")
	}
	if in.Amount.IsNegative() {
		return apperr.Invalid("amount", "amount must not be negative")
	}
	if in.Type == models.TxSwap && in.ToSymbol == "" {
		return apperr.Invalid("toSymbol", "toSymbol is required for swaps")
	}
	return nil
}

// maxAmount is the first value a numeric(20,8) column cannot hold.
var maxAmount = decimal.New(1, models.AmountScale+4)

// parseAmount rejects values the ledger columns would round or overflow:
// at most 8 fractional and 12 integer digits.
func parseAmount(s string) (models.Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Amount{}, apperr.Invalid("amount", "amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return models.Amount{}, apperr.Invalid("amount", "amount must be a decimal number")
	}
	if !d.Equal(d.Round(models.AmountScale)) {
		return models.Amount{}, apperr.Invalid("amount", "amount must have at most %d decimal places", models.AmountScale)
	}
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return models.Amount{}, apperr.Invalid("amount", "amount must be less than %s", maxAmount.String())
	}
	return models.NewAmount(d), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
