// Package fixtures defines the client/account seed data for a bank instance,
// either built in or loaded from a YAML file.
package fixtures

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/minibank-dev/minibank/internal/bank"
	"github.com/minibank-dev/minibank/internal/model"
)

// Fixture is the top-level fixture document.
type Fixture struct {
	Clients []ClientFixture `yaml:"clients"`
}

// ClientFixture seeds one client and its accounts.
type ClientFixture struct {
	ID       string           `yaml:"id"`
	PIN      string           `yaml:"pin"`
	Name     string           `yaml:"name"`
	Accounts []AccountFixture `yaml:"accounts"`
}

// AccountFixture seeds one account. Balance is a decimal string.
type AccountFixture struct {
	Number  string        `yaml:"number"`
	Variant model.Variant `yaml:"variant"`
	Balance string        `yaml:"balance"`
}

// Load reads a fixture file from disk.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("reading fixtures: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parsing fixtures: %w", err)
	}
	return f, nil
}

// Save writes a fixture file to disk.
func Save(path string, f Fixture) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling fixtures: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing fixtures: %w", err)
	}
	return nil
}

// Default returns the built-in demo fixture set: three clients holding five
// accounts across all three variants.
func Default() Fixture {
	return Fixture{
		Clients: []ClientFixture{
			{
				ID: "C001", PIN: "1234", Name: "Tommy Shelby",
				Accounts: []AccountFixture{
					{Number: "BE0001", Variant: model.VariantGreen, Balance: "1000"},
					{Number: "BE0002", Variant: model.VariantBlack, Balance: "500"},
				},
			},
			{
				ID: "C002", PIN: "5678", Name: "Grace Burgess",
				Accounts: []AccountFixture{
					{Number: "BE0003", Variant: model.VariantGold, Balance: "2000"},
					{Number: "BE0004", Variant: model.VariantGreen, Balance: "300"},
				},
			},
			{
				ID: "C003", PIN: "9999", Name: "Polly Gray",
				Accounts: []AccountFixture{
					{Number: "BE0005", Variant: model.VariantBlack, Balance: "1500"},
				},
			},
		},
	}
}

// Build constructs clients and accounts from f and registers them with b.
func Build(f Fixture, b *bank.Bank) error {
	for _, cf := range f.Clients {
		c, err := model.NewClient(cf.ID, cf.PIN, cf.Name)
		if err != nil {
			return err
		}
		for _, af := range cf.Accounts {
			if !af.Variant.Valid() {
				return fmt.Errorf("account %s: unknown variant %q", af.Number, af.Variant)
			}
			opening, err := decimal.NewFromString(af.Balance)
			if err != nil {
				return fmt.Errorf("account %s: parsing balance %q: %w", af.Number, af.Balance, err)
			}
			c.AddAccount(model.NewAccount(af.Number, af.Variant, opening))
		}
		b.AddClient(c)
	}
	return nil
}
