package fixtures

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minibank-dev/minibank/internal/bank"
	"github.com/minibank-dev/minibank/internal/model"
)

func TestDefault(t *testing.T) {
	f := Default()

	require.Len(t, f.Clients, 3)
	assert.Equal(t, "C001", f.Clients[0].ID)
	assert.Equal(t, "Tommy Shelby", f.Clients[0].Name)
	assert.Len(t, f.Clients[0].Accounts, 2)
	assert.Len(t, f.Clients[1].Accounts, 2)
	assert.Len(t, f.Clients[2].Accounts, 1)

	total := 0
	for _, c := range f.Clients {
		for _, a := range c.Accounts {
			assert.True(t, a.Variant.Valid(), "account %s has unknown variant", a.Number)
			total++
		}
	}
	assert.Equal(t, 5, total)
}

func TestBuild(t *testing.T) {
	var buf bytes.Buffer
	b := bank.New(&buf)
	require.NoError(t, Build(Default(), b))

	assert.True(t, b.ClientExists("C001"))
	assert.True(t, b.ClientExists("C002"))
	assert.True(t, b.ClientExists("C003"))

	require.True(t, b.Login("C001", "1234"))
	accounts := b.LoggedInClient().Accounts()
	require.Len(t, accounts, 2)
	assert.Equal(t, "BE0001", accounts[0].Number())
	assert.Equal(t, model.VariantGreen, accounts[0].Variant())
	assert.Equal(t, "1000", accounts[0].Balance().String())
	assert.Equal(t, "BE0002", accounts[1].Number())
	assert.Equal(t, model.VariantBlack, accounts[1].Variant())
}

func TestBuildRejectsBadPIN(t *testing.T) {
	f := Fixture{Clients: []ClientFixture{{ID: "C001", PIN: "12a4", Name: "Tommy Shelby"}}}

	err := Build(f, bank.New(&bytes.Buffer{}))
	assert.ErrorIs(t, err, model.ErrInvalidPIN)
}

func TestBuildRejectsBadVariant(t *testing.T) {
	f := Fixture{Clients: []ClientFixture{{
		ID: "C001", PIN: "1234", Name: "Tommy Shelby",
		Accounts: []AccountFixture{{Number: "BE0001", Variant: "platinum", Balance: "100"}},
	}}}

	err := Build(f, bank.New(&bytes.Buffer{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown variant")
}

func TestBuildRejectsBadBalance(t *testing.T) {
	f := Fixture{Clients: []ClientFixture{{
		ID: "C001", PIN: "1234", Name: "Tommy Shelby",
		Accounts: []AccountFixture{{Number: "BE0001", Variant: model.VariantGreen, Balance: "lots"}},
	}}}

	err := Build(f, bank.New(&bytes.Buffer{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing balance")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, Save(path, Default()))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoadFromYAML(t *testing.T) {
	doc := `clients:
  - id: C010
    pin: "0000"
    name: Ada Thorne
    accounts:
      - number: BE0010
        variant: gold
        balance: "12.50"
`
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Clients, 1)
	assert.Equal(t, "Ada Thorne", f.Clients[0].Name)
	require.Len(t, f.Clients[0].Accounts, 1)
	assert.Equal(t, model.VariantGold, f.Clients[0].Accounts[0].Variant)
	assert.Equal(t, "12.50", f.Clients[0].Accounts[0].Balance)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
