package interfaces

import (
	"github.com/sheikh-saqib/account-ledger/internal/models"
	"github.com/shopspring/decimal"
)

type LedgerService interface {
	Deposit(account *models.Account, amount decimal.Decimal) error
	Withdraw(account *models.Account, amount decimal.Decimal) error
	Transfer(from, to *models.Account, amount decimal.Decimal) error
}
