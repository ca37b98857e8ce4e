// Package bank provides the session-scoped operation façade: a registry of
// clients, a single-session login register, and the deposit/withdraw/transfer
// operations gated on the logged-in client. Every operation reports its
// outcome as a boolean and writes at most one explanatory line to the
// configured sink; errors never escape an operation.
package bank

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/minibank-dev/minibank/internal/model"
)

// Bank is the aggregate root: client registry plus the at-most-one
// logged-in-client session slot.
type Bank struct {
	out     io.Writer
	clients map[string]*model.Client
	order   []string // registration order, for deterministic global lookup
	current *model.Client
}

// New creates an empty bank writing its messages to out.
func New(out io.Writer) *Bank {
	return &Bank{out: out, clients: make(map[string]*model.Client)}
}

// AddClient registers a client. Re-registering an ID replaces the client but
// keeps its original position in the lookup order.
func (b *Bank) AddClient(c *model.Client) {
	if _, ok := b.clients[c.ID()]; !ok {
		b.order = append(b.order, c.ID())
	}
	b.clients[c.ID()] = c
}

// Login authenticates a client by ID and PIN. Checks run in order: empty ID,
// unknown ID, PIN syntax, PIN value; the first failure wins and leaves any
// existing session untouched. A success supersedes the current session,
// announcing the auto-logout first.
func (b *Bank) Login(id, pin string) bool {
	if strings.TrimSpace(id) == "" {
		fmt.Fprintln(b.out, "Login failed! Client ID cannot be empty.")
		return false
	}

	c, ok := b.clients[id]
	if !ok {
		fmt.Fprintln(b.out, "Login failed! Client ID does not exist.")
		return false
	}

	if !isPINSyntax(pin) {
		fmt.Fprintln(b.out, "Login failed! PIN must be 4 digits.")
		return false
	}

	if !c.VerifyPIN(pin) {
		fmt.Fprintln(b.out, "Login failed! Invalid PIN.")
		return false
	}

	if b.current != nil {
		fmt.Fprintln(b.out, "Auto-logging out: "+b.current.Name())
	}
	b.current = c
	fmt.Fprintln(b.out, "Login successful! Welcome "+c.Name())
	return true
}

// Logout ends the current session; a no-op when nobody is logged in.
func (b *Bank) Logout() {
	if b.current == nil {
		fmt.Fprintln(b.out, "No client is currently logged in.")
		return
	}
	fmt.Fprintln(b.out, "Logging out: "+b.current.Name())
	b.current = nil
}

// ShowAccountOverview prints the logged-in client's accounts as a 1-based
// enumerated list. A pure read; requires a session.
func (b *Bank) ShowAccountOverview() {
	if !b.requireLogin() {
		return
	}

	fmt.Fprintf(b.out, "\n=== Account Overview for %s ===\n", b.current.Name())
	accounts := b.current.Accounts()
	if len(accounts) == 0 {
		fmt.Fprintln(b.out, "No accounts found.")
	} else {
		for i, a := range accounts {
			fmt.Fprintf(b.out, "%d. %s\n", i+1, a)
		}
	}
	fmt.Fprintln(b.out, "=================================")
}

// Deposit adds amount to one of the logged-in client's accounts.
func (b *Bank) Deposit(number string, amount decimal.Decimal) bool {
	if !b.requireLogin() {
		return false
	}

	a := b.current.Account(number)
	if a != nil && a.Deposit(amount) {
		fmt.Fprintf(b.out, "Deposit successful! New balance: €%s\n", a.Balance())
		return true
	}
	fmt.Fprintln(b.out, "Deposit failed!")
	return false
}

// Withdraw removes amount from one of the logged-in client's accounts,
// subject to the account's overdraft policy.
func (b *Bank) Withdraw(number string, amount decimal.Decimal) bool {
	if !b.requireLogin() {
		return false
	}

	a := b.current.Account(number)
	if a != nil && a.Withdraw(amount) {
		fmt.Fprintf(b.out, "Withdrawal successful! New balance: €%s\n", a.Balance())
		return true
	}
	fmt.Fprintln(b.out, "Withdrawal failed! Insufficient funds or invalid amount.")
	return false
}

// Transfer moves amount between accounts. The source must belong to the
// logged-in client; the destination may belong to any client. All-or-nothing:
// a failed withdrawal leaves the destination untouched.
func (b *Bank) Transfer(fromNumber, toNumber string, amount decimal.Decimal) bool {
	if !b.requireLogin() {
		return false
	}

	from := b.current.Account(fromNumber)
	if from == nil {
		fmt.Fprintln(b.out, "Source account not found!")
		return false
	}

	to := b.findAccount(toNumber)
	if to == nil {
		fmt.Fprintln(b.out, "Destination account not found!")
		return false
	}

	if !from.Withdraw(amount) {
		fmt.Fprintln(b.out, "Transfer failed! Insufficient funds or invalid amount.")
		return false
	}

	// Positivity is implied by the successful withdrawal.
	to.Deposit(amount)
	fmt.Fprintf(b.out, "Transfer successful! €%s transferred from %s to %s\n",
		amount, fromNumber, toNumber)
	return true
}

// ClientExists reports whether id is registered.
func (b *Bank) ClientExists(id string) bool {
	_, ok := b.clients[id]
	return ok
}

// LoggedInClient returns the client of the current session, or nil.
func (b *Bank) LoggedInClient() *model.Client {
	return b.current
}

// IsLoggedIn reports whether a session is active.
func (b *Bank) IsLoggedIn() bool {
	return b.current != nil
}

// findAccount searches all clients in registration order and returns the
// first account with the given number, or nil. Account numbers are assumed
// globally unique; collisions resolve to the earliest-registered client.
func (b *Bank) findAccount(number string) *model.Account {
	for _, id := range b.order {
		if a := b.clients[id].Account(number); a != nil {
			return a
		}
	}
	return nil
}

// requireLogin gates mutating operations on an active session.
func (b *Bank) requireLogin() bool {
	if b.current == nil {
		fmt.Fprintln(b.out, "No client is logged in. Please login first.")
		return false
	}
	return true
}

// isPINSyntax checks the 4-decimal-digit shape without consulting any client.
func isPINSyntax(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}
