package dao

import (
	"aiwallet/aiwallet/sources/psql/models"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm/clause"
)

// GetTransactions returns the user's ledger newest first. A symbol filter
// matches transfers and either side of a swap.
func (dao *LedgerDAO) GetTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]models.Transaction, error) {
	txs := []models.Transaction{}
	q := dao.DB.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Symbol != "" {
		q = q.Where("(symbol = ? OR from_symbol = ? OR to_symbol = ?)", filter.Symbol, filter.Symbol, filter.Symbol)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if err := q.Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).Order("id desc").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}
	return txs, nil
}

// CreateTransaction assigns the id, stamps the time when the caller left it
// unset, and defaults the status to pending.
func (dao *LedgerDAO) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now().UTC()
	}
	if tx.Status == "" {
		tx.Status = models.StatusPending
	}
	if err := dao.DB.WithContext(ctx).Create(tx).Error; err != nil {
		return nil, translateErr("create transaction", err)
	}
	return tx, nil
}
