package dao

import (
	"aiwallet/aiwallet/sources/psql/models"
	"context"

	"gorm.io/gorm"
)

// Ledger is the wallet and transaction store. InTx hands fn a Ledger bound
// to one database transaction; an error from fn rolls back all its writes.
type Ledger interface {
	GetWallets(ctx context.Context, userID string) ([]models.Wallet, error)
	GetWalletBySymbol(ctx context.Context, userID, symbol string) (*models.Wallet, error)
	CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error)
	UpdateWalletBalance(ctx context.Context, id uint, balance models.Amount) (*models.Wallet, error)
	GetTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	InTx(ctx context.Context, fn func(Ledger) error) error
}

// TransactionFilter narrows GetTransactions. Zero values mean no filter.
type TransactionFilter struct {
	Symbol string
	Limit  int
}

type LedgerDAO struct {
	DB *gorm.DB
}

func NewLedgerDAO(db *gorm.DB) *LedgerDAO {
	return &LedgerDAO{DB: db}
}

func (dao *LedgerDAO) InTx(ctx context.Context, fn func(Ledger) error) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&LedgerDAO{DB: tx})
	})
}
