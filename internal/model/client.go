package model

import (
	"fmt"
	"regexp"
)

var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

// Client is an authentication principal owning an ordered list of accounts.
type Client struct {
	id       string
	pin      string
	name     string
	accounts []*Account
}

// NewClient creates a client. The PIN must be exactly four decimal digits;
// anything else fails with ErrInvalidPIN.
func NewClient(id, pin, name string) (*Client, error) {
	if !pinPattern.MatchString(pin) {
		return nil, fmt.Errorf("client %s: %w", id, ErrInvalidPIN)
	}
	return &Client{id: id, pin: pin, name: name}, nil
}

// VerifyPIN reports whether candidate matches the stored PIN.
func (c *Client) VerifyPIN(candidate string) bool {
	return c.pin == candidate
}

// AddAccount appends an account to the client's list.
func (c *Client) AddAccount(a *Account) {
	c.accounts = append(c.accounts, a)
}

// Account returns the first account with the given number, or nil.
func (c *Client) Account(number string) *Account {
	for _, a := range c.accounts {
		if a.Number() == number {
			return a
		}
	}
	return nil
}

// Accounts returns a copy of the account list. Mutating the returned slice
// does not affect the client; the accounts themselves are shared.
func (c *Client) Accounts() []*Account {
	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// ID returns the client identifier.
func (c *Client) ID() string {
	return c.id
}

// Name returns the display name.
func (c *Client) Name() string {
	return c.name
}

// String renders the client's display line.
func (c *Client) String() string {
	return fmt.Sprintf("Client: %s (ID: %s) - %d account(s)", c.name, c.id, len(c.accounts))
}
