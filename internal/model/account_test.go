package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

func mustAccount(t *testing.T, balance int64) *Account {
	t.Helper()
	a, err := NewAccount(decimal.NewFromInt(balance))
	if err != nil {
		t.Fatalf("NewAccount(%d): %v", balance, err)
	}
	return a
}

func TestNewAccountRejectsNegative(t *testing.T) {
	if _, err := NewAccount(decimal.NewFromInt(-1)); !errors.Is(err, ErrInvalidBalance) {
		t.Fatalf("err = %v, want ErrInvalidBalance", err)
	}
}

func TestDebit(t *testing.T) {
	a := mustAccount(t, 10_000)

	if err := a.Debit(decimal.NewFromInt(2_500)); err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if !a.Balance().Equal(decimal.NewFromInt(7_500)) {
		t.Errorf("Balance = %s, want 7500", a.Balance())
	}

	err := a.Debit(decimal.NewFromInt(7_501))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if !a.Balance().Equal(decimal.NewFromInt(7_500)) {
		t.Errorf("Balance after failed debit = %s, want 7500", a.Balance())
	}

	if err := a.Debit(decimal.NewFromInt(7_500)); err != nil {
		t.Fatalf("Debit of full balance: %v", err)
	}
	if !a.Balance().IsZero() {
		t.Errorf("Balance = %s, want 0", a.Balance())
	}
}

func TestCreditAndDebitRejectNegativeAmounts(t *testing.T) {
	a := mustAccount(t, 100)
	if err := a.Credit(decimal.NewFromInt(-5)); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Credit err = %v, want ErrInvalidAmount", err)
	}
	if err := a.Debit(decimal.NewFromInt(-5)); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Debit err = %v, want ErrInvalidAmount", err)
	}
	if !a.Balance().Equal(decimal.NewFromInt(100)) {
		t.Errorf("Balance = %s, want 100", a.Balance())
	}
}

func TestSetBalance(t *testing.T) {
	a := mustAccount(t, 0)
	if err := a.SetBalance(decimal.NewFromInt(-500)); !errors.Is(err, ErrInvalidBalance) {
		t.Fatalf("err = %v, want ErrInvalidBalance", err)
	}
	if !a.Balance().IsZero() {
		t.Errorf("Balance = %s, want 0 after rejected set", a.Balance())
	}
	if err := a.SetBalance(decimal.NewFromInt(42)); err != nil {
		t.Fatalf("SetBalance: %v", err)
	}
	if !a.Balance().Equal(decimal.NewFromInt(42)) {
		t.Errorf("Balance = %s, want 42", a.Balance())
	}
}

func TestIncreaseBalance(t *testing.T) {
	a := mustAccount(t, 0)
	if got := a.IncreaseBalance(); !got.Equal(decimal.NewFromInt(10_000)) {
		t.Errorf("IncreaseBalance = %s, want 10000", got)
	}

	a.SetIncrement(decimal.NewFromInt(250))
	a.SetIncrement(decimal.Zero) // ignored
	if got := a.IncreaseBalance(); !got.Equal(decimal.NewFromInt(10_250)) {
		t.Errorf("IncreaseBalance = %s, want 10250", got)
	}
}

func TestDebitNeverGoesNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := rapid.Int64Range(0, 5_000_000).Draw(t, "start")
		a, err := NewAccount(decimal.NewFromInt(start))
		if err != nil {
			t.Fatalf("NewAccount: %v", err)
		}

		amounts := rapid.SliceOf(rapid.Int64Range(0, 1_000_000)).Draw(t, "amounts")
		for _, amt := range amounts {
			before := a.Balance()
			err := a.Debit(decimal.NewFromInt(amt))
			switch {
			case err == nil:
				if !a.Balance().Equal(before.Sub(decimal.NewFromInt(amt))) {
					t.Fatalf("balance %s after debit %d from %s", a.Balance(), amt, before)
				}
			case errors.Is(err, ErrInsufficientFunds):
				if !a.Balance().Equal(before) {
					t.Fatalf("failed debit changed balance %s -> %s", before, a.Balance())
				}
			default:
				t.Fatalf("unexpected error: %v", err)
			}
			if a.Balance().IsNegative() {
				t.Fatalf("balance went negative: %s", a.Balance())
			}
		}
	})
}
