package getters

import (
	"aiwallet/aiwallet/services/market"
	"aiwallet/aiwallet/sources/psql/dao"
	"aiwallet/aiwallet/sources/psql/models"
	"aiwallet/aiwallet/sources/psql/psqltest"
	"context"
	"strings"
	"testing"
)

func TestDescribeEmptyPortfolio(t *testing.T) {
	ledger := dao.NewLedgerDAO(psqltest.NewDatabase(t).DB)
	got := NewDataGetters(ledger, nil).Describe(context.Background(), "u1")
	if got != "The user holds no wallets yet." {
		t.Errorf("unexpected description %q", got)
	}
}

func TestDescribePortfolio(t *testing.T) {
	ctx := context.Background()
	ledger := dao.NewLedgerDAO(psqltest.NewDatabase(t).DB)
	if _, err := ledger.CreateWallet(ctx, &models.Wallet{UserID: "u1", Symbol: "NEAR", Balance: models.MustAmount("150.5")}); err != nil {
		t.Fatal(err)
	}
	symbol := "NEAR"
	amount := models.MustAmount("2")
	if _, err := ledger.CreateTransaction(ctx, &models.Transaction{UserID: "u1", Type: models.TxSend, Symbol: &symbol, Amount: &amount, Status: models.StatusCompleted}); err != nil {
		t.Fatal(err)
	}

	got := NewDataGetters(ledger, market.DefaultPriceBoard()).Describe(ctx, "u1")
	for _, want := range []string{
		"- NEAR: 150.50000000",
		"- send 2.00000000 NEAR (completed,",
		"- BTC: 64200 (+1.2%)",
		"- ETH: 3450 (-0.5%)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in:\n%s", want, got)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	g := NewDataGetters(dao.NewLedgerDAO(psqltest.NewDatabase(t).DB), nil)
	if _, err := g.Get(context.Background(), "market_prices", "u1"); err == nil {
		t.Error("market_prices should not be registered without a price board")
	}
	if _, err := g.Get(context.Background(), "wallet_balances", "u1"); err != nil {
		t.Errorf("wallet_balances: %v", err)
	}
}
