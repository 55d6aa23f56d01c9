package controllers

import (
	"aiwallet/aiwallet/sources/psql/dao"
	"aiwallet/aiwallet/sources/psql/models"
	"aiwallet/aiwallet/utils/logging"
	"aiwallet/aiwallet/utils/types"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// MockNetworkFee is charged on every transaction recorded through the API.
var MockNetworkFee = models.MustAmount("0.001")

// TransactionController applies transaction requests to the ledger.
type TransactionController struct {
	ledger dao.Ledger
}

func NewTransactionController(ledger dao.Ledger) *TransactionController {
	return &TransactionController{ledger: ledger}
}

func (c *TransactionController) ListTransactions(ctx context.Context, userID string, filter dao.TransactionFilter) ([]models.Transaction, error) {
	return c.ledger.GetTransactions(ctx, userID, filter)
}

// CreateTransaction records a client-submitted transaction as completed with
// the mock network fee and applies its balance effect.
func (c *TransactionController) CreateTransaction(ctx context.Context, userID string, in types.TransactionInput) (*models.Transaction, error) {
	fee := MockNetworkFee
	return c.Process(ctx, userID, in, models.StatusCompleted, &fee)
}

// Process writes one transaction row and applies its balance effect in a
// single database transaction:
//
//	send     balance -= amount, only when the wallet exists; may go negative
//	receive  balance += amount, creating the wallet on first funding
//	swap, stake, unstake  recorded without touching any balance
func (c *TransactionController) Process(ctx context.Context, userID string, in types.TransactionInput, status models.TransactionStatus, fee *models.Amount) (*models.Transaction, error) {
	defer logging.LogDuration(ctx, "transaction_process")()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	row, err := buildTransaction(userID, in, status, fee)
	if err != nil {
		return nil, err
	}

	var created *models.Transaction
	err = c.ledger.InTx(ctx, func(l dao.Ledger) error {
		var err error
		created, err = l.CreateTransaction(ctx, row)
		if err != nil {
			return err
		}
		return applyBalanceEffect(ctx, l, userID, in)
	})
	if err != nil {
		return nil, fmt.Errorf("process %s transaction: %w", in.Type, err)
	}

	logging.AppLogger.Info("transaction recorded",
		zap.Uint("tx_id", created.ID),
		zap.String("user_id", userID),
		zap.String("type", string(in.Type)),
		zap.String("symbol", in.Symbol),
		zap.String("amount", in.Amount.String()),
	)
	return created, nil
}

func applyBalanceEffect(ctx context.Context, l dao.Ledger, userID string, in types.TransactionInput) error {
	switch in.Type {
	case models.TxSend, models.TxReceive:
	default:
		// TODO: swap/stake/unstake balance semantics are pending a product decision.
		return nil
	}

	wallet, err := l.GetWalletBySymbol(ctx, userID, in.Symbol)
	if err != nil {
		return err
	}
	if wallet == nil {
		if in.Type == models.TxReceive {
			_, err = l.CreateWallet(ctx, &models.Wallet{UserID: userID, Symbol: in.Symbol, Balance: in.Amount})
			return err
		}
		logging.AppLogger.Warn("send from missing wallet, balance untouched",
			zap.String("user_id", userID), zap.String("symbol", in.Symbol))
		return nil
	}

	balance := wallet.Balance
	if in.Type == models.TxSend {
		balance = balance.Sub(in.Amount)
	} else {
		balance = balance.Add(in.Amount)
	}
	_, err = l.UpdateWalletBalance(ctx, wallet.ID, balance)
	return err
}

func buildTransaction(userID string, in types.TransactionInput, status models.TransactionStatus, fee *models.Amount) (*models.Transaction, error) {
	amount := in.Amount
	symbol := in.Symbol
	row := &models.Transaction{
		UserID:     userID,
		Type:       in.Type,
		Symbol:     &symbol,
		Amount:     &amount,
		Status:     status,
		NetworkFee: fee,
	}
	if in.ToAddress != "" {
		to := in.ToAddress
		row.ToAddress = &to
	}
	if in.ToSymbol != "" {
		toSymbol := in.ToSymbol
		row.ToSymbol = &toSymbol
	}
	if in.Type == models.TxSwap {
		fromAmount := in.Amount
		row.FromSymbol = &symbol
		row.FromAmount = &fromAmount
	}

	meta := map[string]string{}
	if in.Memo != "" {
		meta["memo"] = in.Memo
	}
	if in.Validator != "" {
		meta["validator"] = in.Validator
	}
	if len(meta) > 0 {
		raw, err := json.Marshal(meta)
		if err != nil {
			return nil, err
		}
		row.Metadata = datatypes.JSON(raw)
	}
	return row, nil
}
