// Command-line interface for seeding demo wallets and chatting with the assistant.
package main

import (
	"aiwallet/aiwallet/agents/configs"
	"aiwallet/aiwallet/agents/getters"
	"aiwallet/aiwallet/config"
	"aiwallet/aiwallet/controllers"
	"aiwallet/aiwallet/services/llm"
	"aiwallet/aiwallet/services/market"
	"aiwallet/aiwallet/sources/psql"
	"aiwallet/aiwallet/sources/psql/dao"
	"aiwallet/aiwallet/utils/apperr"
	"aiwallet/aiwallet/utils/color"
	"aiwallet/aiwallet/utils/jsonutils"
	"aiwallet/aiwallet/utils/logging"
	"aiwallet/aiwallet/utils/types"
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logging.InitLogger(cfg.LogDir)
	defer logging.Sync()

	args := os.Args[1:]
	if len(args) != 2 {
		usage()
		os.Exit(1)
	}
	command, userID := args[0], args[1]

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		fmt.Println(color.ColorError("database connection error: " + err.Error()))
		os.Exit(1)
	}
	defer db.Close()
	ledger := dao.NewLedgerDAO(db.DB)

	switch command {
	case "seed":
		err = seed(context.Background(), controllers.NewTransactionController(ledger), ledger, userID)
	case "wallets":
		err = printWallets(context.Background(), ledger, userID)
	case "chat":
		err = chat(cfg, ledger, dao.NewChatMessageDAO(db.DB), userID)
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Println(color.ColorError(err.Error()))
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("AiWallet CLI usage:")
	fmt.Println("  aiwallet seed <user_id>      # fund the demo wallets the user does not hold yet")
	fmt.Println("  aiwallet wallets <user_id>   # print balances")
	fmt.Println("  aiwallet chat <user_id>      # chat with the wallet assistant")
}

func seed(ctx context.Context, txCtrl *controllers.TransactionController, ledger dao.Ledger, userID string) error {
	seeded, err := txCtrl.SeedDemoWallets(ctx, userID)
	if err != nil {
		return fmt.Errorf("seed wallets: %w", err)
	}
	if len(seeded) == 0 {
		fmt.Println(color.ColorWarning("All demo wallets already exist for " + userID))
	}
	for _, tx := range seeded {
		fmt.Println(color.ColorInfo(fmt.Sprintf("funded %s %s", tx.Amount, *tx.Symbol)))
	}
	return printWallets(ctx, ledger, userID)
}

func printWallets(ctx context.Context, ledger dao.Ledger, userID string) error {
	wallets, err := ledger.GetWallets(ctx, userID)
	if err != nil {
		return err
	}
	if len(wallets) == 0 {
		fmt.Println(color.ColorWarning("No wallets yet. Run: aiwallet seed " + userID))
		return nil
	}
	for _, w := range wallets {
		fmt.Printf("%-6s %s\n", w.Symbol, color.ColorBalance(w.Balance.String()))
	}
	return nil
}

func chat(cfg config.Config, ledger dao.Ledger, chats dao.ChatStore, userID string) error {
	runner, err := llm.NewRunner(cfg)
	if err != nil {
		return err
	}
	assistantCfg := configs.LoadConfig(cfg.AssistantFile).WithModel(cfg.LLMModel)
	ctrl := controllers.NewChatController(chats, llm.NewAssistant(runner, assistantCfg.Model), assistantCfg).
		WithPortfolio(getters.NewDataGetters(ledger, market.DefaultPriceBoard()))

	fmt.Printf("\n%s is ready. Type 'exit' to quit.\n\n", assistantCfg.AgentName)
	scanner := bufio.NewScanner(os.Stdin)
	var chatID *uint
	for {
		fmt.Print(color.ColorPrompt("aiwallet> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			fmt.Println("Goodbye!")
			break
		}
		if line == "" {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.LLMTimeout+10*time.Second)
		resp, err := ctrl.Send(ctx, userID, types.ChatRequest{Message: line, ChatID: chatID})
		cancel()
		if err != nil {
			_, msg := apperr.Status(err)
			fmt.Println(color.ColorError(msg))
			logging.ErrorLogger.Error("cli chat failed", zap.String("user_id", userID), zap.Error(err))
			continue
		}
		chatID = &resp.ChatID

		fmt.Println(color.ColorAssistant(resp.Response.Content))
		if len(resp.Response.Metadata) > 0 {
			var preview interface{}
			if err := json.Unmarshal(resp.Response.Metadata, &preview); err == nil {
				fmt.Println(color.ColorPreview("Proposed transaction (not executed):"))
				fmt.Println(color.ColorPreview(jsonutils.ToJSON(preview)))
			}
		}
		fmt.Println()
	}
	return scanner.Err()
}
