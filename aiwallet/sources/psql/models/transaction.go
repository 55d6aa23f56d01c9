package models

import (
	"time"

	"gorm.io/datatypes"
)

type TransactionType string

const (
	TxSend    TransactionType = "send"
	TxReceive TransactionType = "receive"
	TxSwap    TransactionType = "swap"
	TxStake   TransactionType = "stake"
	TxUnstake TransactionType = "unstake"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TxSend, TxReceive, TxSwap, TxStake, TxUnstake:
		return true
	}
	return false
}

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is an append-only ledger entry. Transfers use Symbol/Amount,
// swaps use the From*/To* pairs.
type Transaction struct {
	ID          uint              `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      string            `json:"userId" gorm:"type:varchar(36);not null;index"`
	Type        TransactionType   `json:"type" gorm:"type:varchar(16);not null"`
	FromAddress *string           `json:"fromAddress" gorm:"type:varchar(255)"`
	ToAddress   *string           `json:"toAddress" gorm:"type:varchar(255)"`
	Amount      *Amount           `json:"amount" gorm:"type:numeric(20,8)"`
	Symbol      *string           `json:"symbol" gorm:"type:varchar(32)"`
	FromSymbol  *string           `json:"fromSymbol" gorm:"type:varchar(32)"`
	FromAmount  *Amount           `json:"fromAmount" gorm:"type:numeric(20,8)"`
	ToSymbol    *string           `json:"toSymbol" gorm:"type:varchar(32)"`
	ToAmount    *Amount           `json:"toAmount" gorm:"type:numeric(20,8)"`
	Status      TransactionStatus `json:"status" gorm:"type:varchar(16);not null;default:pending"`
	Hash        *string           `json:"hash" gorm:"type:varchar(128)"`
	NetworkFee  *Amount           `json:"networkFee" gorm:"type:numeric(20,8)"`
	Timestamp   time.Time         `json:"timestamp" gorm:"not null;index"`
	Metadata    datatypes.JSON    `json:"metadata"`
}

func (Transaction) TableName() string {
	return "transactions"
}
