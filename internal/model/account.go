package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultIncrement is the amount IncreaseBalance credits unless configured otherwise.
var DefaultIncrement = decimal.NewFromInt(10_000)

// Account holds the user's cash balance. The balance never goes below zero:
// every operation that would break that fails without changing anything.
type Account struct {
	balance   decimal.Decimal
	increment decimal.Decimal
}

// NewAccount returns an account with the given opening balance.
func NewAccount(balance decimal.Decimal) (*Account, error) {
	if balance.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBalance, balance.StringFixed(2))
	}
	return &Account{balance: balance, increment: DefaultIncrement}, nil
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Increment returns the amount credited by IncreaseBalance.
func (a *Account) Increment() decimal.Decimal {
	return a.increment
}

// SetIncrement changes the IncreaseBalance step. Non-positive values are ignored.
func (a *Account) SetIncrement(d decimal.Decimal) {
	if d.IsPositive() {
		a.increment = d
	}
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amount.StringFixed(2))
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Debit subtracts amount, failing with ErrInsufficientFunds when it exceeds the balance.
func (a *Account) Debit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amount.StringFixed(2))
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: need %s, have %s", ErrInsufficientFunds,
			amount.StringFixed(2), a.balance.StringFixed(2))
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// SetBalance replaces the balance.
func (a *Account) SetBalance(value decimal.Decimal) error {
	if value.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidBalance, value.StringFixed(2))
	}
	a.balance = value
	return nil
}

// IncreaseBalance credits the configured increment and returns the new balance.
func (a *Account) IncreaseBalance() decimal.Decimal {
	a.balance = a.balance.Add(a.increment)
	return a.balance
}
