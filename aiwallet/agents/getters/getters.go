// Package getters collects the user's wallet state as plain text for the
// assistant's system prompt.
package getters

import (
	"aiwallet/aiwallet/services/market"
	"aiwallet/aiwallet/sources/psql/dao"
	"aiwallet/aiwallet/utils/logging"
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const recentTransactionCount = 5

type getterFn func(ctx context.Context, userID string) (string, error)

type DataGetters struct {
	ledger dao.Ledger
	prices *market.PriceBoard
	fnMaps map[string]getterFn
	order  []string
}

// NewDataGetters wires the portfolio getters. prices may be nil.
func NewDataGetters(ledger dao.Ledger, prices *market.PriceBoard) *DataGetters {
	g := &DataGetters{ledger: ledger, prices: prices, fnMaps: make(map[string]getterFn)}
	g.register("wallet_balances", g.walletBalances)
	g.register("recent_transactions", g.recentTransactions)
	if prices != nil {
		g.register("market_prices", g.marketPrices)
	}
	return g
}

func (g *DataGetters) register(name string, fn getterFn) {
	g.fnMaps[name] = fn
	g.order = append(g.order, name)
}

// Get runs a single getter by name.
func (g *DataGetters) Get(ctx context.Context, name, userID string) (string, error) {
	fn, ok := g.fnMaps[name]
	if !ok {
		return "", fmt.Errorf("unknown getter %q", name)
	}
	return fn(ctx, userID)
}

// Describe runs every getter and joins the non-empty sections. A failing
// getter is logged and left out so the chat still gets an answer.
func (g *DataGetters) Describe(ctx context.Context, userID string) string {
	defer logging.LogDuration(ctx, "getters_describe")()
	var sections []string
	for _, name := range g.order {
		out, err := g.fnMaps[name](ctx, userID)
		if err != nil {
			logging.ErrorLogger.Error("getter failed", zap.String("getter", name), zap.String("user_id", userID), zap.Error(err))
			continue
		}
		if out != "" {
			sections = append(sections, out)
		}
	}
	return strings.Join(sections, "\n\n")
}

func (g *DataGetters) walletBalances(ctx context.Context, userID string) (string, error) {
	wallets, err := g.ledger.GetWallets(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(wallets) == 0 {
		return "The user holds no wallets yet.", nil
	}
	var b strings.Builder
	b.WriteString("Current balances:")
	for _, w := range wallets {
		fmt.Fprintf(&b, "\n- %s: %s", w.Symbol, w.Balance.String())
	}
	return b.String(), nil
}

func (g *DataGetters) recentTransactions(ctx context.Context, userID string) (string, error) {
	txs, err := g.ledger.GetTransactions(ctx, userID, dao.TransactionFilter{Limit: recentTransactionCount})
	if err != nil {
		return "", err
	}
	if len(txs) == 0 {
		return "", nil
	}
	var b strings.Builder
	b.WriteString("Recent transactions (newest first):")
	for _, tx := range txs {
		symbol, amount := "", ""
		if tx.Symbol != nil {
			symbol = *tx.Symbol
		}
		if tx.Amount != nil {
			amount = tx.Amount.String()
		}
		fmt.Fprintf(&b, "\n- %s %s %s (%s, %s)", tx.Type, amount, symbol, tx.Status, tx.Timestamp.Format("2006-01-02"))
	}
	return b.String(), nil
}

func (g *DataGetters) marketPrices(ctx context.Context, userID string) (string, error) {
	prices := g.prices.Prices()
	symbols := make([]string, 0, len(prices))
	for symbol := range prices {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	var b strings.Builder
	b.WriteString("Market prices (USD, 24h change):")
	for _, symbol := range symbols {
		q := prices[symbol]
		fmt.Fprintf(&b, "\n- %s: %g (%+.1f%%)", symbol, q.Price, q.Change24h)
	}
	return b.String(), nil
}
