package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrNilAccount is matched by every NilAccountError.
	ErrNilAccount = errors.New("nil account")

	// ErrNegativeAmount means a deposit, withdrawal or transfer amount was below zero.
	ErrNegativeAmount = errors.New("negative amount")

	// ErrInsufficientFunds means a debit would leave the balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// NilAccountError reports a missing account argument by parameter name.
type NilAccountError struct {
	Param string
}

func (e *NilAccountError) Error() string {
	return e.Param + " must not be nil"
}

func (e *NilAccountError) Is(target error) bool {
	return target == ErrNilAccount
}

// AccountError is a business rule violation. The account involved is left untouched.
type AccountError struct {
	Kind  error           // ErrNegativeAmount or ErrInsufficientFunds
	Value decimal.Decimal // rejected amount, or the balance the operation would have produced
	msg   string
}

func (e *AccountError) Error() string {
	return e.msg
}

func (e *AccountError) Unwrap() error {
	return e.Kind
}

func negativeAmount(op string, amount decimal.Decimal) *AccountError {
	return &AccountError{
		Kind:  ErrNegativeAmount,
		Value: amount,
		msg:   "can't " + op + " negative numbers: " + amount.String(),
	}
}

func overdraft(newBalance decimal.Decimal) *AccountError {
	return &AccountError{
		Kind:  ErrInsufficientFunds,
		Value: newBalance,
		msg:   "no overdraft protection. resulting balance: " + newBalance.String(),
	}
}
