package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Variant selects the withdrawal policy for an account.
type Variant string

const (
	VariantGreen Variant = "green"
	VariantBlack Variant = "black"
	VariantGold  Variant = "gold"
)

// blackFloor is the lowest balance a Black Premium account may reach.
var blackFloor = decimal.NewFromInt(-4000)

// Label returns the human-readable account type for a variant.
func (v Variant) Label() string {
	switch v {
	case VariantGreen:
		return "Green Standard"
	case VariantBlack:
		return "Black Premium"
	case VariantGold:
		return "Gold Unlimited"
	}
	return string(v)
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	switch v {
	case VariantGreen, VariantBlack, VariantGold:
		return true
	}
	return false
}

// Account holds a balance and enforces a variant-specific overdraft policy:
// Green Standard may not go below zero, Black Premium may not go below -4000,
// Gold Unlimited has no floor.
type Account struct {
	number  string
	variant Variant
	balance decimal.Decimal
}

// NewAccount creates an account with an opening balance.
func NewAccount(number string, variant Variant, opening decimal.Decimal) *Account {
	return &Account{number: number, variant: variant, balance: opening}
}

// Deposit adds amount to the balance. Returns false for non-positive amounts,
// in which case the balance is untouched.
func (a *Account) Deposit(amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}
	a.balance = a.balance.Add(amount)
	return true
}

// Withdraw removes amount from the balance if the variant's policy permits it.
// Returns false for non-positive amounts or policy violations; the balance is
// untouched on failure.
func (a *Account) Withdraw(amount decimal.Decimal) bool {
	if !amount.IsPositive() || !a.mayWithdraw(amount) {
		return false
	}
	a.balance = a.balance.Sub(amount)
	return true
}

// mayWithdraw applies the overdraft floor for the account's variant.
// Callers have already checked amount > 0.
func (a *Account) mayWithdraw(amount decimal.Decimal) bool {
	switch a.variant {
	case VariantGreen:
		return a.balance.GreaterThanOrEqual(amount)
	case VariantBlack:
		return a.balance.Sub(amount).GreaterThanOrEqual(blackFloor)
	case VariantGold:
		return true
	}
	return false
}

// Number returns the account number.
func (a *Account) Number() string {
	return a.number
}

// Variant returns the account's variant tag.
func (a *Account) Variant() Variant {
	return a.variant
}

// Type returns the human-readable account type.
func (a *Account) Type() string {
	return a.variant.Label()
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// String renders the account's display line.
func (a *Account) String() string {
	return fmt.Sprintf("Account: %s | Type: %s | Balance: €%s",
		a.number, a.Type(), a.balance.StringFixed(2))
}
