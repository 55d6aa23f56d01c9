package controllers

import (
	"aiwallet/aiwallet/sources/psql/models"
	"aiwallet/aiwallet/utils/types"
	"context"
)

// DemoBalances are the wallets a fresh account is funded with.
var DemoBalances = []struct {
	Symbol string
	Amount string
}{
	{"NEAR", "150.5"},
	{"USDC", "500"},
	{"ETH", "1.25"},
	{"SOL", "12"},
}

// Fund credits amount of symbol to the user through a completed receive.
func (c *TransactionController) Fund(ctx context.Context, userID, symbol, amount string) (*models.Transaction, error) {
	in, err := types.NewTransactionInput(models.TxReceive, symbol, amount)
	if err != nil {
		return nil, err
	}
	return c.Process(ctx, userID, in, models.StatusCompleted, nil)
}

// SeedDemoWallets funds the demo balances the user does not hold yet.
func (c *TransactionController) SeedDemoWallets(ctx context.Context, userID string) ([]models.Transaction, error) {
	var seeded []models.Transaction
	for _, b := range DemoBalances {
		existing, err := c.ledger.GetWalletBySymbol(ctx, userID, b.Symbol)
		if err != nil {
			return seeded, err
		}
		if existing != nil {
			continue
		}
		tx, err := c.Fund(ctx, userID, b.Symbol, b.Amount)
		if err != nil {
			return seeded, err
		}
		seeded = append(seeded, *tx)
	}
	return seeded, nil
}
