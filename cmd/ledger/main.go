package main

import (
	"log"

	"github.com/sheikh-saqib/account-ledger/internal/config"
	interfaces "github.com/sheikh-saqib/account-ledger/internal/interfaces"
	"github.com/sheikh-saqib/account-ledger/internal/ledger"
	"github.com/sheikh-saqib/account-ledger/internal/logging"
	"github.com/sheikh-saqib/account-ledger/internal/models"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(cfg)

	var svc interfaces.LedgerService = ledger.NewService(
		ledger.WithLogger(logger),
		ledger.WithScale(cfg.CurrencyScale),
	)

	mine := models.NewAccount(models.AccountConfig{
		AccountNumber: "100",
		Amount:        decimal.RequireFromString("877.34"),
	})

	if err := svc.Deposit(mine, decimal.RequireFromString("343.33")); err != nil {
		logger.Fatalf("deposit: %v", err)
	}
	logger.Info(mine)

	if err := svc.Withdraw(mine, decimal.RequireFromString("66.23")); err != nil {
		logger.Fatalf("withdraw: %v", err)
	}
	logger.Info(mine)

	yours := models.NewAccount(models.AccountConfig{
		AccountNumber: "2342",
		Amount:        decimal.NewFromInt(10),
	})

	if err := svc.Withdraw(yours, decimal.RequireFromString("5.66")); err != nil {
		logger.Fatalf("withdraw: %v", err)
	}
	logger.Info(yours)

	if err := svc.Transfer(mine, yours, decimal.RequireFromString("500.22")); err != nil {
		logger.Fatalf("transfer: %v", err)
	}
	logger.Infof("my account: %s -- your account: %s", mine, yours)
}
