package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account holds one account's identifier and its current balance.
// Balances are only changed through the ledger service.
type Account struct {
	Number  string          `json:"account_number"` // opaque, uniqueness is up to the caller
	Balance decimal.Decimal `json:"balance"`        // USD, 2 fractional digits
}

// AccountConfig lists the options recognised by NewAccount.
type AccountConfig struct {
	AccountNumber string
	Amount        decimal.Decimal // initial balance, zero when unset
}

// NewAccount creates an account from cfg.
func NewAccount(cfg AccountConfig) *Account {
	return &Account{
		Number:  cfg.AccountNumber,
		Balance: cfg.Amount,
	}
}

func (a Account) String() string {
	return fmt.Sprintf("Account(number=%s, balance=%s)", a.Number, a.Balance.String())
}
