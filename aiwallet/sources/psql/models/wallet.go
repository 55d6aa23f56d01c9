package models

import "time"

// Wallet is a per-user, per-asset balance. (user_id, symbol) is unique.
type Wallet struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);not null;uniqueIndex:idx_wallets_user_symbol"`
	Symbol    string    `json:"symbol" gorm:"type:varchar(32);not null;uniqueIndex:idx_wallets_user_symbol"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Balance   Amount    `json:"balance" gorm:"type:numeric(20,8);not null;default:0"`
	Decimals  int       `json:"decimals" gorm:"not null;default:24"`
	IconURL   *string   `json:"iconUrl" gorm:"type:varchar(512)"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Wallet) TableName() string {
	return "wallets"
}
