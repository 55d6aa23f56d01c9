package types

import (
	"aiwallet/aiwallet/sources/psql/models"
	"aiwallet/aiwallet/utils/apperr"
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestCreateTransactionRequestParse(t *testing.T) {
	in, err := CreateTransactionRequest{Type: "send", Amount: "2.0", Symbol: " ETH ", Memo: strPtr("rent")}.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if in.Type != models.TxSend || in.Symbol != "ETH" || in.Memo != "rent" {
		t.Errorf("unexpected input %+v", in)
	}
	if in.Amount.String() != "2.00000000" {
		t.Errorf("expected amount 2.00000000, got %s", in.Amount)
	}
}

func TestCreateTransactionRequestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		req   CreateTransactionRequest
		field string
	}{
		{"unknown type", CreateTransactionRequest{Type: "burn", Amount: "1", Symbol: "ETH"}, "type"},
		{"receive is internal", CreateTransactionRequest{Type: "receive", Amount: "1", Symbol: "ETH"}, "type"},
		{"missing amount", CreateTransactionRequest{Type: "send", Symbol: "ETH"}, "amount"},
		{"bad amount", CreateTransactionRequest{Type: "send", Amount: "two", Symbol: "ETH"}, "amount"},
		{"negative amount", CreateTransactionRequest{Type: "send", Amount: "-1", Symbol: "ETH"}, "amount"},
		{"rounds to zero", CreateTransactionRequest{Type: "send", Amount: "0.000000004", Symbol: "ETH"}, "amount"},
		{"nine decimals", CreateTransactionRequest{Type: "send", Amount: "0.123456789", Symbol: "ETH"}, "amount"},
		{"exponent overflow", CreateTransactionRequest{Type: "send", Amount: "1e20", Symbol: "ETH"}, "amount"},
		{"too many digits", CreateTransactionRequest{Type: "send", Amount: "99999999999999999999", Symbol: "ETH"}, "amount"},
		{"one past column max", CreateTransactionRequest{Type: "send", Amount: "1000000000000", Symbol: "ETH"}, "amount"},
		{"blank symbol", CreateTransactionRequest{Type: "send", Amount: "1", Symbol: "  "}, "symbol"},
		{"swap without target", CreateTransactionRequest{Type: "swap", Amount: "1", Symbol: "NEAR"}, "toSymbol"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.req.Parse()
			var verr *apperr.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}

func TestZeroAmountIsAllowed(t *testing.T) {
	if _, err := (CreateTransactionRequest{Type: "stake", Amount: "0", Symbol: "NEAR"}).Parse(); err != nil {
		t.Fatalf("zero amount should be valid: %v", err)
	}
}

func TestAmountBounds(t *testing.T) {
	for _, amount := range []string{"0.10000000000", "0.00000001", "999999999999.99999999"} {
		in, err := (CreateTransactionRequest{Type: "send", Amount: amount, Symbol: "ETH"}).Parse()
		if err != nil {
			t.Errorf("%s: unexpected error %v", amount, err)
			continue
		}
		if in.Amount.IsZero() {
			t.Errorf("%s: parsed to zero", amount)
		}
	}
}

func TestNewTransactionInputAllowsInternalTypes(t *testing.T) {
	in, err := NewTransactionInput(models.TxReceive, "NEAR", "100")
	if err != nil {
		t.Fatalf("NewTransactionInput: %v", err)
	}
	if in.Type != models.TxReceive {
		t.Errorf("expected receive, got %s", in.Type)
	}
}

func TestChatRequestValidate(t *testing.T) {
	if err := (ChatRequest{Message: "hi"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (ChatRequest{Message: "   "}).Validate(); err == nil {
		t.Error("expected blank message to fail")
	}
	zero := uint(0)
	if err := (ChatRequest{Message: "hi", ChatID: &zero}).Validate(); err == nil {
		t.Error("expected zero chat id to fail")
	}
}
