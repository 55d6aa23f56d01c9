package controllers

import (
	"aiwallet/aiwallet/sources/psql/dao"
	"aiwallet/aiwallet/sources/psql/models"
	"aiwallet/aiwallet/utils/apperr"
	"context"
)

type WalletController struct {
	ledger dao.Ledger
}

func NewWalletController(ledger dao.Ledger) *WalletController {
	return &WalletController{ledger: ledger}
}

func (c *WalletController) GetWallets(ctx context.Context, userID string) ([]models.Wallet, error) {
	return c.ledger.GetWallets(ctx, userID)
}

func (c *WalletController) GetWallet(ctx context.Context, userID, symbol string) (*models.Wallet, error) {
	wallet, err := c.ledger.GetWalletBySymbol(ctx, userID, symbol)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, apperr.NotFound("Wallet")
	}
	return wallet, nil
}
