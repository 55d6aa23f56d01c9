package dao

import (
	"aiwallet/aiwallet/sources/psql/models"
	"aiwallet/aiwallet/utils/apperr"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

func (dao *LedgerDAO) GetWallets(ctx context.Context, userID string) ([]models.Wallet, error) {
	wallets := []models.Wallet{}
	err := dao.DB.WithContext(ctx).Where("user_id = ?", userID).Order("symbol asc").Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("get wallets: %w", err)
	}
	return wallets, nil
}

func (dao *LedgerDAO) GetWalletBySymbol(ctx context.Context, userID, symbol string) (*models.Wallet, error) {
	var wallet models.Wallet
	err := dao.DB.WithContext(ctx).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get wallet %s: %w", symbol, err)
	}
	return &wallet, nil
}

// CreateWallet fails with apperr.ErrConstraint when the user already holds
// a wallet for the symbol.
func (dao *LedgerDAO) CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	if wallet.Name == "" {
		wallet.Name = wallet.Symbol
	}
	if wallet.Decimals == 0 {
		wallet.Decimals = 24
	}
	if err := dao.DB.WithContext(ctx).Create(wallet).Error; err != nil {
		return nil, translateErr("create wallet", err)
	}
	return wallet, nil
}

func (dao *LedgerDAO) UpdateWalletBalance(ctx context.Context, id uint, balance models.Amount) (*models.Wallet, error) {
	db := dao.DB.WithContext(ctx)
	var wallet models.Wallet
	if err := db.First(&wallet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Wallet")
		}
		return nil, fmt.Errorf("load wallet %d: %w", id, err)
	}
	err := db.Model(&wallet).Updates(map[string]interface{}{
		"balance":    balance,
		"updated_at": time.Now().UTC(),
	}).Error
	if err != nil {
		return nil, fmt.Errorf("update wallet %d balance: %w", id, err)
	}
	wallet.Balance = balance
	return &wallet, nil
}
