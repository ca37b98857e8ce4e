package commands

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/minibank-dev/minibank/internal/bank"
	"github.com/minibank-dev/minibank/internal/fixtures"
)

func newDemoCommand() *cobra.Command {
	var fixturesPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the scripted banking demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), fixturesPath)
		},
	}

	cmd.Flags().StringVar(&fixturesPath, "fixtures", "", "fixture YAML file (default: built-in demo set)")

	return cmd
}

func runDemo(out io.Writer, fixturesPath string) error {
	fix := fixtures.Default()
	if fixturesPath != "" {
		var err error
		fix, err = fixtures.Load(fixturesPath)
		if err != nil {
			return err
		}
	}

	b := bank.New(out)
	if err := fixtures.Build(fix, b); err != nil {
		return fmt.Errorf("building fixtures: %w", err)
	}

	amt := func(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

	fmt.Fprintln(out, "=== Bank System Demo ===")

	fmt.Fprintln(out, "\n1. Testing valid PIN login:")
	b.Login("C001", "1234")
	b.ShowAccountOverview()

	fmt.Fprintln(out, "\n2. Testing invalid PIN:")
	b.Login("C001", "9999")  // wrong PIN
	b.Login("C001", "123")   // too short
	b.Login("C001", "12345") // too long
	b.Login("C001", "12a4")  // contains letters

	fmt.Fprintln(out, "\n3. Normal Operations:")
	b.Login("C002", "5678")
	b.ShowAccountOverview()
	b.Deposit("BE0003", amt(500))
	b.Withdraw("BE0003", amt(100))
	b.ShowAccountOverview()

	fmt.Fprintln(out, "\n4. Testing account type limits:")
	b.Login("C001", "1234")
	fmt.Fprintln(out, "--- Testing Green Standard Account ---")
	b.Withdraw("BE0001", amt(1500)) // fails, cannot go negative
	fmt.Fprintln(out, "--- Testing Black Premium Account ---")
	b.Withdraw("BE0002", amt(3000)) // succeeds, within the -4000 limit
	b.ShowAccountOverview()

	fmt.Fprintln(out, "\n5. Transfer test:")
	b.Transfer("BE0002", "BE0003", amt(500)) // cross-client destination
	b.ShowAccountOverview()

	fmt.Fprintln(out, "\n6. Testing Gold Unlimited Account:")
	b.Login("C002", "5678")
	b.Withdraw("BE0003", amt(10000)) // succeeds, no floor
	b.ShowAccountOverview()

	fmt.Fprintln(out, "\n7. Final logout:")
	b.Logout()

	fmt.Fprintln(out, "\n=== Demo Completed ===")
	return nil
}
