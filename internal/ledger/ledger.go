package ledger

import (
	"io"

	"github.com/google/uuid"
	interfaces "github.com/sheikh-saqib/account-ledger/internal/interfaces"
	"github.com/sheikh-saqib/account-ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Service holds the business rules that keep an Account's balance valid:
// no negative amounts and no overdraft.
// It keeps no state between calls; accounts are owned by the caller and
// mutated in place. A Service is not safe for concurrent use on the same
// account, callers must serialise access themselves.
type Service struct {
	log   logrus.FieldLogger
	scale int32
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for diagnostic output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithScale sets the number of fractional digits balances are rounded to.
// Negative values are ignored.
func WithScale(places int32) Option {
	return func(s *Service) {
		if places >= 0 {
			s.scale = places
		}
	}
}

// NewService is a constructor function that creates a new ledger Service.
func NewService(opts ...Option) *Service {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Service{
		log:   discard,
		scale: DefaultScale,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Deposit adds amount to account. amount must not be negative.
func (s *Service) Deposit(account *models.Account, amount decimal.Decimal) error {
	if account == nil {
		return &NilAccountError{Param: "account"}
	}
	return s.deposit(s.log, account, amount)
}

// Withdraw removes amount from account. It fails when amount is negative or
// when the resulting balance would drop below zero; in both cases account is
// left unmodified.
func (s *Service) Withdraw(account *models.Account, amount decimal.Decimal) error {
	if account == nil {
		return &NilAccountError{Param: "account"}
	}
	return s.withdraw(s.log, account, amount)
}

// Transfer moves amount from one account to the other by withdrawing from
// `from` and then depositing into `to`.
//
// There is no rollback: a failed withdrawal means the deposit never runs.
// The deposit cannot fail after a successful withdrawal only because both
// reject negative amounts and nothing else. Changing either rule on its own
// breaks that.
func (s *Service) Transfer(from, to *models.Account, amount decimal.Decimal) error {
	if from == nil {
		return &NilAccountError{Param: "from"}
	}
	if to == nil {
		return &NilAccountError{Param: "to"}
	}

	log := s.log.WithFields(logrus.Fields{
		"transfer_id": uuid.New().String(),
		"from":        from.Number,
		"to":          to.Number,
	})

	if err := s.withdraw(log, from, amount); err != nil {
		return err
	}
	return s.deposit(log, to, amount)
}

func (s *Service) deposit(log logrus.FieldLogger, account *models.Account, amount decimal.Decimal) error {
	log = log.WithFields(logrus.Fields{"account": account.Number, "amount": amount.String()})

	if amount.IsNegative() {
		err := negativeAmount("deposit", amount)
		log.WithError(err).Warn("deposit rejected")
		return err
	}

	account.Balance = s.adjust(account, amount)
	log.WithField("balance", account.Balance.String()).Debug("deposit applied")
	return nil
}

func (s *Service) withdraw(log logrus.FieldLogger, account *models.Account, amount decimal.Decimal) error {
	log = log.WithFields(logrus.Fields{"account": account.Number, "amount": amount.String()})

	if amount.IsNegative() {
		err := negativeAmount("withdraw", amount)
		log.WithError(err).Warn("withdrawal rejected")
		return err
	}

	newBalance := s.adjust(account, amount.Neg())
	if newBalance.IsNegative() {
		err := overdraft(newBalance)
		log.WithError(err).Warn("withdrawal rejected")
		return err
	}

	account.Balance = newBalance
	log.WithField("balance", account.Balance.String()).Debug("withdrawal applied")
	return nil
}

// Compile-time check: ensure Service implements LedgerService interface
var _ interfaces.LedgerService = (*Service)(nil)
