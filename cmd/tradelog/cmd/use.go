package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradelog/analytics"
	"tradelog/journal"
)

var useCmd = &cobra.Command{
	Use:   "use",
	Short: "Select the active account or class filter",
	Long: `Persist which slice of the ledger stats and monthly report on by
default. The selection survives between runs.

Examples:
  tradelog use account <account-id>
  tradelog use class Cent
  tradelog use all`,
}

var useAccountCmd = &cobra.Command{
	Use:   "account <account-id>",
	Short: "Filter stats to one account",
	Args:  cobra.ExactArgs(1),
	RunE:  runUseAccount,
}

var useClassCmd = &cobra.Command{
	Use:   "class <Standard|Cent>",
	Short: "Filter stats to one account class",
	Args:  cobra.ExactArgs(1),
	RunE:  runUseClass,
}

var useAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Clear the active filter",
	Args:  cobra.NoArgs,
	RunE:  runUseAll,
}

func init() {
	rootCmd.AddCommand(useCmd)
	useCmd.AddCommand(useAccountCmd)
	useCmd.AddCommand(useClassCmd)
	useCmd.AddCommand(useAllCmd)
}

func runUseAccount(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	a, err := l.GetAccount(args[0])
	if err != nil {
		return err
	}
	if err := l.SetPref(journal.PrefActiveAccount, a.ID); err != nil {
		return err
	}
	// Selecting an account clears the class filter, as the dashboard does.
	if err := l.DeletePref(journal.PrefActiveClass); err != nil {
		return err
	}

	fmt.Printf("✓ Active account: %s (%s)\n", a.Name, a.ID)
	return nil
}

func runUseClass(cmd *cobra.Command, args []string) error {
	class := analytics.AccountClass(args[0])
	if class != analytics.Standard && class != analytics.Cent {
		return fmt.Errorf("class must be %s or %s", analytics.Standard, analytics.Cent)
	}

	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	if err := l.SetPref(journal.PrefActiveClass, string(class)); err != nil {
		return err
	}
	if err := l.DeletePref(journal.PrefActiveAccount); err != nil {
		return err
	}

	fmt.Printf("✓ Active class: %s\n", class)
	return nil
}

func runUseAll(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	if err := l.DeletePref(journal.PrefActiveAccount); err != nil {
		return err
	}
	if err := l.DeletePref(journal.PrefActiveClass); err != nil {
		return err
	}

	fmt.Println("✓ Filter cleared: all accounts")
	return nil
}
